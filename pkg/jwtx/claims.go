package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultSessionTTL matches the access token lifetime of the hosted auth
	// provider. Tokens minted locally (CLI, tests) use it unless told otherwise.
	DefaultSessionTTL = time.Hour

	// DefaultAudience is the audience the auth provider stamps on signed-in
	// user tokens.
	DefaultAudience = "authenticated"
)

// Claims are the session token claims issued by the auth provider. Only the
// fields the service reads are modelled, unknown claims are ignored.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the signed-in user. Companies and invitations are keyed by it.
	Email string `json:"email,omitempty"`

	// Role is the provider-level role ("authenticated", "anon"), not a
	// business role.
	Role string `json:"role,omitempty"`

	// SessionID identifies the login session.
	SessionID string `json:"session_id,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for a signed-in user.
func NewSessionClaims(
	subject, email string,
	ttl time.Duration,
	issuer string,
	audience []string,
	now time.Time,
) Claims {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Email:     email,
		Role:      DefaultAudience,
		SessionID: NewJTI(),
	}
}

// NewJTI returns a URL-safe random identifier.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer is a no-op when expected is empty.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateAudience passes when the token carries any of the expected
// audiences, or when none are expected.
func (c *Claims) ValidateAudience(expected []string) error {
	if len(expected) == 0 || slices.ContainsFunc(expected, func(aud string) bool {
		return slices.Contains(c.Audience, aud)
	}) {
		return nil
	}
	return ErrAudience
}

// ValidateSubject rejects tokens that do not identify a user. The provider
// issues anonymous tokens without an email and those never map to a session.
func (c *Claims) ValidateSubject() error {
	if c.Subject == "" || c.Email == "" {
		return ErrInvalidClaim
	}
	return nil
}

// ValidateExpiryWithLeeway checks exp and nbf against the current time.
func (c *Claims) ValidateExpiryWithLeeway(leeway time.Duration) error {
	now := time.Now().UTC()
	switch {
	case c.ExpiresAt != nil && now.After(c.ExpiresAt.Add(leeway)):
		return ErrExpired
	case c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)):
		return ErrNotYetValid
	}
	return nil
}
