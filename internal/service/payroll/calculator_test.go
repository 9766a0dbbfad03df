package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculator_Compute(t *testing.T) {
	t.Parallel()

	calc := Calculator{MonthlyPaidQuotaDays: 2, PaidLeaveDailyHours: 9}
	rate := decimal.NewFromInt(20)

	tests := []struct {
		name        string
		workedHours float64
		leaveDays   int
		wantPaid    int
		wantUnpaid  int
		wantPayable float64
		wantGross   string
	}{
		{"no leave", 40, 0, 0, 0, 40, "800.00"},
		{"one leave day credited", 40, 1, 1, 0, 49, "980.00"},
		{"leave capped at quota", 40, 3, 2, 1, 58, "1160.00"},
		{"leave only", 0, 2, 2, 0, 18, "360.00"},
		{"fractional hours rounded", 40.456, 0, 0, 0, 40.46, "809.20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := calc.Compute(tt.workedHours, tt.leaveDays, rate)

			assert.Equal(t, tt.leaveDays, b.LeaveDays)
			assert.Equal(t, tt.wantPaid, b.PaidLeaveDays)
			assert.Equal(t, tt.wantUnpaid, b.UnpaidLeaveDays)
			assert.Equal(t, tt.wantPaid*9, b.PaidLeaveHours)
			assert.InDelta(t, tt.wantPayable, b.TotalPayableHours, 1e-9)
			assert.Equal(t, tt.wantGross, b.GrossPay.StringFixed(2))
		})
	}
}

func TestCalculator_ComputeWorkedOnly(t *testing.T) {
	t.Parallel()

	calc := Calculator{MonthlyPaidQuotaDays: 2, PaidLeaveDailyHours: 9}
	rate := decimal.NewFromFloat(15.5)

	gross := calc.ComputeWorkedOnly(40, rate)
	assert.Equal(t, "620.00", gross.StringFixed(2))

	// The legacy figure ignores leave entirely.
	withLeave := calc.Compute(40, 2, rate)
	assert.NotEqual(t, gross.StringFixed(2), withLeave.GrossPay.StringFixed(2))
}
