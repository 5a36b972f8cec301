// Package models defines the data model shared by the storage, service and
// presentation layers.
package models

import (
	"slices"
	"time"
)

// Feeling names the emotional theme of a letter.
type Feeling = string

const (
	FeelingLove      Feeling = "Love"
	FeelingRegret    Feeling = "Regret"
	FeelingHope      Feeling = "Hope"
	FeelingAnger     Feeling = "Anger"
	FeelingGratitude Feeling = "Gratitude"
	FeelingSadness   Feeling = "Sadness"
	FeelingOther     Feeling = "Other"
)

// Feelings is the closed set offered by the write and search pages, in
// display order. Storage does not enforce it.
var Feelings = []Feeling{
	FeelingLove,
	FeelingRegret,
	FeelingHope,
	FeelingAnger,
	FeelingGratitude,
	FeelingSadness,
	FeelingOther,
}

// IsKnownFeeling reports whether f is one of Feelings (exact, case-sensitive).
func IsKnownFeeling(f string) bool {
	return slices.Contains(Feelings, f)
}

// Letter is one persisted journal entry. Letters are immutable once stored.
type Letter struct {
	// ID is assigned by the store and never reused.
	ID int64 `json:"id"`

	// Feeling is the single category tag of the letter.
	Feeling string `json:"feeling"`

	// Message is the trimmed, non-empty body.
	Message string `json:"message"`

	// Timestamp is the creation time in the local zone, second precision.
	Timestamp time.Time `json:"timestamp"`
}

// FeelingCount is one row of the per-feeling aggregate.
type FeelingCount struct {
	Feeling string `json:"feeling"`
	Count   int    `json:"count"`
}
