package service

import "errors"

var (
	ErrUnauthenticated = errors.New("no authenticated user")
	ErrInvalidSession  = errors.New("invalid session token")
	ErrForbidden       = errors.New("forbidden")

	ErrInvalidCompany = errors.New("invalid company")
	ErrCompanyExists  = errors.New("user already owns a company")

	ErrInvalidInvitation    = errors.New("invalid invitation request")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvitationPending    = errors.New("email already has a pending invitation")
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationNotPending = errors.New("invitation is no longer pending")
	ErrInvitationExpired    = errors.New("invitation has expired")
	ErrInvitationMismatch   = errors.New("invitation was issued for a different email")

	ErrMemberNotFound = errors.New("membership not found")

	ErrInvalidChecklist = errors.New("invalid checklist")
)
