// Package jwtx checks the session tokens issued by the external auth
// provider. Tokens are HS256 signed with a secret shared with the provider.
package jwtx

import (
	"errors"
	"time"
)

// MinSecretLength is the shortest HMAC secret NewHS256 accepts.
const MinSecretLength = 32

// Verifier turns a bearer token into validated claims.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// VerifyOptions are the expectations checked after the signature. Zero
// values disable the matching check.
type VerifyOptions struct {
	Issuer   string
	Audience []string
	Leeway   time.Duration // clock skew tolerated on exp and nbf
}

// Every error returned by this package wraps one of these.
var (
	ErrWeakSecret   = errors.New("jwtx: secret must be at least 32 bytes")
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrAlgMismatch  = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
)
