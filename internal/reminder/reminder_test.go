package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(day, hour, min int) time.Time {
	return time.Date(2026, time.October, day, hour, min, 0, 0, time.Local)
}

func TestShouldRemind(t *testing.T) {
	tests := []struct {
		name   string
		latest time.Time
		ok     bool
		now    time.Time
		want   bool
	}{
		{name: "no letters", ok: false, now: at(19, 9, 0), want: true},
		{name: "zero latest", latest: time.Time{}, ok: true, now: at(19, 9, 0), want: true},
		{name: "exactly three days", latest: at(16, 9, 0), ok: true, now: at(19, 9, 0), want: true},
		{name: "just under three days morning", latest: at(16, 10, 0), ok: true, now: at(19, 9, 0), want: false},
		{name: "more than three days", latest: at(1, 9, 0), ok: true, now: at(19, 9, 0), want: true},
		{name: "recent but evening", latest: at(19, 8, 0), ok: true, now: at(19, 18, 0), want: true},
		{name: "recent just before evening", latest: at(19, 8, 0), ok: true, now: at(19, 17, 59), want: false},
		{name: "recent late night", latest: at(19, 8, 0), ok: true, now: at(19, 23, 59), want: true},
		{name: "recent after midnight", latest: at(19, 22, 0), ok: true, now: at(20, 0, 30), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldRemind(tt.latest, tt.ok, tt.now))
		})
	}
}

func TestShouldRemind_Pure(t *testing.T) {
	latest, now := at(18, 9, 0), at(19, 10, 0)
	first := ShouldRemind(latest, true, now)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ShouldRemind(latest, true, now))
	}
}

func TestShouldRemind_WallClockAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}

	tests := []struct {
		name   string
		latest time.Time
		now    time.Time
		want   bool
	}{
		// 2026-03-08 spring forward: three calendar days are 71h elapsed
		{"spring forward three days", time.Date(2026, 3, 6, 9, 0, 0, 0, ny), time.Date(2026, 3, 9, 9, 0, 0, 0, ny), true},
		{"spring forward just short", time.Date(2026, 3, 6, 9, 0, 1, 0, ny), time.Date(2026, 3, 9, 9, 0, 0, 0, ny), false},
		// 2026-11-01 fall back: 73h elapsed but under three calendar days
		{"fall back just short", time.Date(2026, 10, 30, 9, 30, 0, 0, ny), time.Date(2026, 11, 2, 9, 0, 0, 0, ny), false},
		{"fall back three days", time.Date(2026, 10, 30, 9, 0, 0, 0, ny), time.Date(2026, 11, 2, 9, 0, 0, 0, ny), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldRemind(tt.latest, true, tt.now))
		})
	}
}
