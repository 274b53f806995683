package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The backend mints and verifies every token; this side only inspects
// claims it already trusts to decide when a refresh is due.

// TokenExpiry extracts the exp claim without verifying the signature.
func TokenExpiry(tokenString string) (time.Time, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token carries no expiry")
	}
	return exp.Time, nil
}

// TokenExpired reports whether the token's exp claim is in the past.
// Malformed tokens count as expired.
func TokenExpired(tokenString string) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return true
	}
	return time.Until(exp) <= 0
}

// TokenNeedsRefresh reports whether the token expires within the
// margin, so the session can be refreshed before a request bounces.
func TokenNeedsRefresh(tokenString string, margin time.Duration) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return true
	}
	return time.Until(exp) <= margin
}
