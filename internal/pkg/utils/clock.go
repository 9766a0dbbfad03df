package utils

import (
	"fmt"
	"time"
)

// ParseWallClock parses an "HH:MM:SS" string into seconds since midnight.
func ParseWallClock(s string) (int, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return 0, fmt.Errorf("invalid wall-clock time %q: %w", s, err)
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}

// SecondsOfDay returns t's wall-clock position as seconds since midnight,
// in t's own location.
func SecondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}
