package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWallClock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00:00", 0, false},
		{"09:00:00", 9 * 3600, false},
		{"09:10:00", 9*3600 + 10*60, false},
		{"18:00:00", 18 * 3600, false},
		{"23:59:59", 23*3600 + 59*60 + 59, false},
		{"24:00:00", 0, true},
		{"9:00", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseWallClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSecondsOfDay(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 03:30 UTC is 09:00 IST; the reading follows the value's location.
	utc := time.Date(2026, time.March, 2, 3, 30, 0, 0, time.UTC)
	assert.Equal(t, 3*3600+30*60, SecondsOfDay(utc))
	assert.Equal(t, 9*3600, SecondsOfDay(utc.In(loc)))
}
