package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	honolulu := time.FixedZone("HST", -10*3600)
	tokyo := time.FixedZone("JST", 9*3600)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"utc afternoon",
			time.Date(2025, 6, 15, 14, 45, 12, 0, time.UTC),
			time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			// 23:30 HST is already 09:30 next day in UTC; the local
			// date must not flip.
			"late evening west of utc",
			time.Date(2025, 6, 15, 23, 30, 0, 0, honolulu),
			time.Date(2025, 6, 15, 0, 0, 0, 0, honolulu),
		},
		{
			// 01:00 JST is still the previous day in UTC.
			"early morning east of utc",
			time.Date(2025, 6, 15, 1, 0, 0, 0, tokyo),
			time.Date(2025, 6, 15, 0, 0, 0, 0, tokyo),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := startOfDay(tt.in)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, tt.in.Format("2006-01-02"), got.Format("2006-01-02"),
				"the calendar date must match the input's local date")
		})
	}
}
