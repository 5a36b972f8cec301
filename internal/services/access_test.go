package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckAccess(t *testing.T) {
	gate := NewAccessGate("viewonly123")

	tests := []struct {
		submitted string
		want      bool
	}{
		{"viewonly123", true},
		{"VIEWONLY123", false},
		{"viewonly123 ", false},
		{"viewonly12", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gate.CheckAccess(tt.submitted), "%q", tt.submitted)
	}
	assert.True(t, gate.Enabled())
}

func TestCheckAccess_EmptySecretDeniesAll(t *testing.T) {
	gate := NewAccessGate("")

	assert.False(t, gate.Enabled())
	assert.False(t, gate.CheckAccess(""))
	assert.False(t, gate.CheckAccess("anything"))
}

func TestCheckAccess_Stateless(t *testing.T) {
	gate := NewAccessGate("s3cret")

	assert.False(t, gate.CheckAccess("wrong"))
	assert.True(t, gate.CheckAccess("s3cret"))
	assert.False(t, gate.CheckAccess("wrong"))
	assert.True(t, gate.CheckAccess("s3cret"))
}
