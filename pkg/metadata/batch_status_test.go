package metadata

import (
	"testing"
	"time"
)

func TestBatchStatusFor(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	date := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	tests := []struct {
		name   string
		expiry *time.Time
		want   BatchStatus
	}{
		{"expired last month", date(2024, 5, 1), BatchExpired},
		{"expires within the window", date(2024, 6, 20), BatchExpiringSoon},
		{"expires on the window edge", date(2024, 7, 1), BatchExpiringSoon},
		{"expires next year", date(2025, 1, 1), BatchValid},
		{"expires today", date(2024, 6, 1), BatchExpiringSoon},
		{"no expiry date", nil, BatchStatus("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BatchStatusFor(tt.expiry, now); got != tt.want {
				t.Errorf("BatchStatusFor() = %q, want %q", got, tt.want)
			}
		})
	}
}
