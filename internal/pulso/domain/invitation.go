package domain

import "time"

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationExpired  InvitationStatus = "expired"
	InvitationRevoked  InvitationStatus = "revoked"
)

type Invitation struct {
	ID         string
	Email      string
	EmpresaID  string
	RoleID     string
	SucursalID *string
	Token      string
	Status     InvitationStatus
	InvitedBy  string
	ExpiresAt  time.Time
	AcceptedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsExpired reports whether the invitation is past its expiry at now.
func (i Invitation) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// AcceptPath is the page the invitee is sent to.
func (i Invitation) AcceptPath() string {
	return "/accept-invitation/" + i.Token
}
