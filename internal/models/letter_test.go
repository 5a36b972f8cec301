package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeelings_ClosedSetInDisplayOrder(t *testing.T) {
	assert.Equal(t,
		[]string{"Love", "Regret", "Hope", "Anger", "Gratitude", "Sadness", "Other"},
		Feelings)
}

func TestIsKnownFeeling(t *testing.T) {
	for _, f := range Feelings {
		assert.True(t, IsKnownFeeling(f), f)
	}

	assert.False(t, IsKnownFeeling("love"), "match is case-sensitive")
	assert.False(t, IsKnownFeeling(" Love"))
	assert.False(t, IsKnownFeeling(""))
	assert.False(t, IsKnownFeeling("Joy"))
}
