package payroll

import (
	"math"

	"github.com/shopspring/decimal"
)

// Calculator turns a month's worked hours and approved leave days into a
// gross pay figure. Up to MonthlyPaidQuotaDays of leave are credited at
// PaidLeaveDailyHours each; the rest is unpaid.
type Calculator struct {
	MonthlyPaidQuotaDays int
	PaidLeaveDailyHours  int
}

type Breakdown struct {
	WorkedHours       float64
	LeaveDays         int
	PaidLeaveDays     int
	UnpaidLeaveDays   int
	PaidLeaveHours    int
	TotalPayableHours float64
	GrossPay          decimal.Decimal
}

// Compute applies the leave-aware formula. Payable hours are rounded to
// two decimals before the rate multiplication so the gross figure is an
// exact decimal product.
func (c Calculator) Compute(workedHours float64, leaveDays int, hourlyRate decimal.Decimal) Breakdown {
	paidDays := leaveDays
	if paidDays > c.MonthlyPaidQuotaDays {
		paidDays = c.MonthlyPaidQuotaDays
	}
	unpaidDays := leaveDays - paidDays

	paidHours := paidDays * c.PaidLeaveDailyHours
	payable := roundHours(workedHours + float64(paidHours))

	return Breakdown{
		WorkedHours:       roundHours(workedHours),
		LeaveDays:         leaveDays,
		PaidLeaveDays:     paidDays,
		UnpaidLeaveDays:   unpaidDays,
		PaidLeaveHours:    paidHours,
		TotalPayableHours: payable,
		GrossPay:          decimal.NewFromFloat(payable).Mul(hourlyRate),
	}
}

// ComputeWorkedOnly is the legacy figure: worked hours times the rate
// with no leave credit. It disagrees with Compute whenever approved
// leave exists; Compute is the canonical number.
func (c Calculator) ComputeWorkedOnly(workedHours float64, hourlyRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromFloat(roundHours(workedHours)).Mul(hourlyRate)
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
