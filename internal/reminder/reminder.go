// Package reminder decides whether the writer should be nudged to write.
package reminder

import "time"

// Threshold is how long since the newest letter before a reminder is due,
// measured on the wall clock.
const Threshold = 72 * time.Hour

// EveningHour is the local hour from which a reminder is always shown.
const EveningHour = 18

// ShouldRemind reports whether a reminder is due at now. latest is the
// timestamp of the newest letter; ok is false when nothing has been written.
// The evening rule applies regardless of how recent the last letter is.
func ShouldRemind(latest time.Time, ok bool, now time.Time) bool {
	if !ok || latest.IsZero() {
		return true
	}
	if wallClock(now.In(latest.Location())).Sub(wallClock(latest)) >= Threshold {
		return true
	}
	return now.Hour() >= EveningHour
}

// wallClock reinterprets the clock reading of t as UTC, so differences
// between two readings ignore DST shifts in between.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
