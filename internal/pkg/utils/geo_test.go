package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHaversineDistance_ZeroAtSamePoint(t *testing.T) {
	t.Parallel()

	d := CalculateHaversineDistance(11.2588453, 75.7836825, 11.2588453, 75.7836825)
	assert.Equal(t, 0.0, d)
}

func TestCalculateHaversineDistance_KnownDistances(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantMeters             float64
		tolerance              float64
	}{
		{
			// One degree of latitude is ~111.19 km on a 6371 km sphere.
			name: "one degree latitude",
			lat1: 0, lon1: 0, lat2: 1, lon2: 0,
			wantMeters: 111194.9,
			tolerance:  10,
		},
		{
			// ~0.0018 degrees latitude is roughly 200 m.
			name: "about two hundred meters",
			lat1: 11.2588453, lon1: 75.7836825,
			lat2: 11.2606453, lon2: 75.7836825,
			wantMeters: 200.15,
			tolerance:  1,
		},
		{
			name: "antipodal points are half the circumference",
			lat1: 0, lon1: 0, lat2: 0, lon2: 180,
			wantMeters: 20015086.8,
			tolerance:  100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CalculateHaversineDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.wantMeters, got, tt.tolerance)
		})
	}
}

func TestCalculateHaversineDistance_Symmetric(t *testing.T) {
	t.Parallel()

	a := CalculateHaversineDistance(11.25, 75.78, 11.26, 75.79)
	b := CalculateHaversineDistance(11.26, 75.79, 11.25, 75.78)
	assert.InDelta(t, a, b, 1e-9)
}
