package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/metrics"
	"github.com/pulsohoreca/pulso/internal/pulso/store"
	"github.com/pulsohoreca/pulso/pkg/cryptox"
	"github.com/pulsohoreca/pulso/pkg/idx"
	"github.com/pulsohoreca/pulso/pkg/slogx"
)

// PermissionInvite lets a member invite others into their company.
const PermissionInvite = "users.invite"

// DefaultInvitationTTL is how long an invitation stays acceptable.
const DefaultInvitationTTL = 7 * 24 * time.Hour

type InvitationService struct {
	Store       store.Store
	Permissions *PermissionManager
	Metrics     *metrics.Metrics
	TTL         time.Duration
}

// CreateInvitationInput describes who to invite and with which role.
type CreateInvitationInput struct {
	Email      string
	EmpresaID  string
	RoleName   string
	SucursalID *string
}

// Create invites email into a company. The inviter needs users.invite there
// and must outrank the offered role.
func (s *InvitationService) Create(
	ctx context.Context,
	inviter *domain.User,
	in CreateInvitationInput,
) (domain.Invitation, error) {
	if inviter == nil {
		return domain.Invitation{}, ErrUnauthenticated
	}
	log := slogx.FromContext(ctx)

	email, err := parseEmail(in.Email)
	if err != nil || in.EmpresaID == "" || in.RoleName == "" {
		log.Warn("invitation request missing or invalid fields",
			slog.String("empresa_id", in.EmpresaID),
			slog.String("role", in.RoleName),
		)
		return domain.Invitation{}, ErrInvalidInvitation
	}
	if email == normalizeEmail(inviter.Email) {
		return domain.Invitation{}, ErrInvalidInvitation
	}

	allowed, err := s.Permissions.HasPermission(ctx, inviter.ID, PermissionInvite, in.EmpresaID)
	if err != nil {
		return domain.Invitation{}, err
	}
	if !allowed {
		log.Warn("invitation attempted without permission",
			slog.String("user_id", inviter.ID),
			slog.String("empresa_id", in.EmpresaID),
		)
		return domain.Invitation{}, ErrForbidden
	}

	role, err := s.Store.Roles().GetRoleByName(ctx, in.RoleName)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, ErrInvalidRole
		}
		return domain.Invitation{}, err
	}

	level, err := s.Permissions.GetMaxHierarchyLevel(ctx, inviter.ID, in.EmpresaID)
	if err != nil {
		return domain.Invitation{}, err
	}
	if role.HierarchyLevel >= level {
		log.Warn("invitation role outranks inviter",
			slog.String("user_id", inviter.ID),
			slog.String("role", role.Name),
			slog.Int("inviter_level", level),
		)
		return domain.Invitation{}, ErrForbidden
	}

	sucursalID := in.SucursalID
	if sucursalID != nil && strings.TrimSpace(*sucursalID) == "" {
		sucursalID = nil
	}

	inv, err := newInvitation(email, in.EmpresaID, role.ID, sucursalID, inviter.ID, s.ttl())
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	var freed int64
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if sucursalID != nil {
			if err := checkSucursal(ctx, tx, *sucursalID, in.EmpresaID); err != nil {
				return err
			}
		}
		var err error
		freed, err = insertInvitation(ctx, tx, inv, time.Now())
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Invitation{}, ErrInvitationPending
		case errors.Is(err, ErrInvalidInvitation):
			log.Warn("invitation branch does not belong to the company",
				slog.String("empresa_id", in.EmpresaID),
			)
			return domain.Invitation{}, err
		}
		log.Error("failed to create invitation", slog.Any("error", err))
		return domain.Invitation{}, err
	}

	for range freed {
		s.Metrics.InvitationEvent("expired")
	}
	s.Metrics.InvitationEvent("created")
	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("empresa_id", inv.EmpresaID),
		slog.String("role", role.Name),
		slog.String("token_fp", cryptox.Fingerprint(inv.Token)),
		slog.Time("expires_at", inv.ExpiresAt),
	)
	return inv, nil
}

// GetByToken looks up an invitation in any state.
func (s *InvitationService) GetByToken(ctx context.Context, token string) (domain.Invitation, error) {
	if token == "" {
		return domain.Invitation{}, ErrInvitationNotFound
	}
	inv, err := s.Store.Invitations().GetInvitationByToken(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Invitation{}, ErrInvitationNotFound
	}
	return inv, err
}

// Accept joins user to the invitation's company with the invited role.
func (s *InvitationService) Accept(ctx context.Context, user *domain.User, token string) (domain.UserRole, error) {
	if user == nil {
		return domain.UserRole{}, ErrUnauthenticated
	}
	log := slogx.FromContext(ctx)

	inv, err := s.GetByToken(ctx, token)
	if err != nil {
		return domain.UserRole{}, err
	}

	now := time.Now().UTC()
	switch {
	case inv.Status != domain.InvitationPending:
		return domain.UserRole{}, ErrInvitationNotPending
	case inv.IsExpired(now):
		return domain.UserRole{}, ErrInvitationExpired
	case normalizeEmail(inv.Email) != normalizeEmail(user.Email):
		log.Warn("invitation accepted by a different user",
			slog.String("invitation_id", inv.ID),
			slog.String("user_id", user.ID),
		)
		return domain.UserRole{}, ErrInvitationMismatch
	}

	assignment := domain.UserRole{
		ID:         idx.New().String(),
		UserID:     user.ID,
		RoleID:     inv.RoleID,
		EmpresaID:  inv.EmpresaID,
		SucursalID: inv.SucursalID,
		Active:     true,
		AssignedBy: inv.InvitedBy,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// An identical active assignment already grants what was offered.
		if err := tx.UserRoles().AssignRole(ctx, assignment); err != nil && !errors.Is(err, store.ErrAlreadyExists) {
			return err
		}
		if err := tx.Invitations().MarkInvitationAccepted(ctx, inv.ID, now); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationNotPending
			}
			return err
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvitationNotPending) {
			log.Error("failed to accept invitation",
				slog.String("invitation_id", inv.ID),
				slog.Any("error", err),
			)
		}
		return domain.UserRole{}, err
	}

	s.Permissions.ClearCache(user.ID)
	s.Metrics.InvitationEvent("accepted")
	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("user_id", user.ID),
		slog.String("empresa_id", inv.EmpresaID),
	)
	return assignment, nil
}

// Revoke withdraws a pending invitation. The actor needs users.invite in the
// invitation's company.
func (s *InvitationService) Revoke(ctx context.Context, actor *domain.User, token string) error {
	if actor == nil {
		return ErrUnauthenticated
	}
	inv, err := s.GetByToken(ctx, token)
	if err != nil {
		return err
	}

	allowed, err := s.Permissions.HasPermission(ctx, actor.ID, PermissionInvite, inv.EmpresaID)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrForbidden
	}

	if err := s.Store.Invitations().RevokeInvitation(ctx, inv.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotPending
		}
		return err
	}

	s.Metrics.InvitationEvent("revoked")
	slogx.FromContext(ctx).Info("invitation revoked",
		slog.String("invitation_id", inv.ID),
		slog.String("user_id", actor.ID),
	)
	return nil
}

// ListByEmpresa returns every invitation of a company, newest first.
func (s *InvitationService) ListByEmpresa(ctx context.Context, actor *domain.User, empresaID string) ([]domain.Invitation, error) {
	if actor == nil {
		return nil, ErrUnauthenticated
	}
	allowed, err := s.Permissions.HasPermission(ctx, actor.ID, PermissionInvite, empresaID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrForbidden
	}
	return s.Store.Invitations().ListInvitationsByEmpresa(ctx, empresaID)
}

// ExpireStale marks pending invitations past their expiry as expired.
func (s *InvitationService) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.Store.Invitations().ExpireInvitations(ctx, now)
	if err != nil {
		return 0, err
	}
	for range n {
		s.Metrics.InvitationEvent("expired")
	}
	return n, nil
}

func (s *InvitationService) ttl() time.Duration {
	if s.TTL <= 0 {
		return DefaultInvitationTTL
	}
	return s.TTL
}

func newInvitation(email, empresaID, roleID string, sucursalID *string, invitedBy string, ttl time.Duration) (domain.Invitation, error) {
	token, err := cryptox.NewInvitationToken()
	if err != nil {
		return domain.Invitation{}, err
	}
	return domain.Invitation{
		ID:         idx.New().String(),
		Email:      email,
		EmpresaID:  empresaID,
		RoleID:     roleID,
		SucursalID: sucursalID,
		Token:      token,
		Status:     domain.InvitationPending,
		InvitedBy:  invitedBy,
		ExpiresAt:  time.Now().UTC().Add(ttl),
	}, nil
}

// insertInvitation stores inv after expiring any lapsed pending invitation
// for the same email, which would otherwise still hold the one pending
// invitation per email slot. It returns how many were expired.
func insertInvitation(ctx context.Context, tx store.Tx, inv domain.Invitation, now time.Time) (int64, error) {
	freed, err := tx.Invitations().ExpireInvitationsForEmail(ctx, inv.Email, now)
	if err != nil {
		return 0, err
	}
	return freed, tx.Invitations().CreateInvitation(ctx, inv)
}

// checkSucursal rejects branches that do not exist or belong to another
// company.
func checkSucursal(ctx context.Context, st store.Store, sucursalID, empresaID string) error {
	suc, err := st.Sucursales().GetSucursalByID(ctx, sucursalID)
	if errors.Is(err, store.ErrNotFound) || (err == nil && suc.EmpresaID != empresaID) {
		return ErrInvalidInvitation
	}
	return err
}

// pendingInvitation returns the unexpired pending invitation for email, if
// any.
func pendingInvitation(ctx context.Context, st store.Store, email string, now time.Time) (domain.Invitation, bool, error) {
	inv, err := st.Invitations().GetPendingInvitationByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Invitation{}, false, nil
	}
	if err != nil {
		return domain.Invitation{}, false, err
	}
	if inv.IsExpired(now) {
		return domain.Invitation{}, false, nil
	}
	return inv, true, nil
}

// parseEmail accepts a bare address and returns it normalised.
func parseEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	if addr.Name != "" || addr.Address != strings.TrimSpace(raw) {
		return "", ErrInvalidInvitation
	}
	return normalizeEmail(addr.Address), nil
}
