package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by a session token: subject, issued-at and expiry.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues signed, time-bounded identity tokens and checks them.
// No record of issued tokens is kept; validity is signature plus expiry.
type TokenService interface {
	// Issue signs a token for subject that expires ttl after now. A negative
	// ttl yields a token that is already expired.
	Issue(subject string, ttl time.Duration) (string, error)

	// Validate reports whether the signature verifies under the current key
	// and the token has not expired. It never returns an error.
	Validate(token string) bool

	// GetSubject returns the subject after checking the signature only.
	// Expiry is Validate's job.
	GetSubject(token string) (string, error)

	// DefaultTTL is the lifetime used for login and registration tokens.
	DefaultTTL() time.Duration
}
