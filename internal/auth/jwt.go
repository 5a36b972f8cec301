// Package auth issues and checks the short-lived view pass handed out after
// a successful access check, so the view-all page survives a reload.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/unspoken/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// ViewSubject is the only subject a view pass can carry.
const ViewSubject = "view-all"

// Claims of a view pass.
type Claims struct {
	jwt.RegisteredClaims
}

func GenerateViewToken(secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ViewSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateViewToken returns nil for a well-signed, unexpired view pass,
// common.ErrTokenExpired when it has expired and common.ErrInvalidToken
// otherwise.
func ValidateViewToken(tokenString string, secretKey []byte) error {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if errors.Is(err, jwt.ErrTokenExpired) {
		return common.ErrTokenExpired
	}
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject != ViewSubject {
		return common.ErrInvalidToken
	}

	return nil
}
