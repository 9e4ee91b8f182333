// Package cryptox mints and fingerprints the opaque invitation tokens.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
)

// InvitationTokenBytes is the entropy behind every invitation token. Encoded
// it is 43 characters, safe for /accept-invitation/{token}.
const InvitationTokenBytes = 32

var encoding = base64.RawURLEncoding

// NewInvitationToken returns a random base64url token without padding.
func NewInvitationToken() (string, error) {
	var buf [InvitationTokenBytes]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", fmt.Errorf("cryptox: read random: %w", err)
	}
	return encoding.EncodeToString(buf[:]), nil
}

// Fingerprint is a short stable digest of token for logs. The token itself
// is a bearer credential and never logged.
func Fingerprint(token string) string {
	if token == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(token))
	return encoding.EncodeToString(sum[:8])
}
