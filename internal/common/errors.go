// Package common defines shared constants and sentinel errors used across
// the storage, service and presentation layers of Unspoken. Callers should
// use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrValidation = errors.New("validation error")
	ErrStorage    = errors.New("storage error")

	// View pass errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrNoLetters is reported when a request needs at least one stored letter.
	ErrNoLetters = errors.New("no letters saved yet")
)
