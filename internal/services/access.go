package services

import "crypto/subtle"

// AccessGate guards the view-all listing with one shared secret.
type AccessGate struct {
	secret []byte
}

func NewAccessGate(secret string) *AccessGate {
	return &AccessGate{secret: []byte(secret)}
}

// CheckAccess reports whether submitted equals the configured secret exactly.
// With no secret configured every attempt is denied.
func (g *AccessGate) CheckAccess(submitted string) bool {
	if len(g.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), g.secret) == 1
}

// Enabled reports whether a secret is configured at all.
func (g *AccessGate) Enabled() bool {
	return len(g.secret) > 0
}
