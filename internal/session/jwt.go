package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry decodes the bearer token as a JWT without verifying its
// signature and returns the expiry claim. The token is opaque to this
// client; verification is the server's job. ok is false when the token is
// not a JWT or carries no expiry.
func TokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expired reports whether the token is a JWT whose expiry has passed.
// Opaque tokens are never reported as expired.
func Expired(token string, now time.Time) bool {
	exp, ok := TokenExpiry(token)
	if !ok {
		return false
	}
	return now.After(exp)
}
