package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store/drivers/sqlite/gen"
)

type invitationsRepo struct {
	q *gen.Queries
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	err := r.q.CreateInvitation(ctx, gen.CreateInvitationParams{
		ID:              inv.ID,
		Email:           inv.Email,
		EmpresaID:       inv.EmpresaID,
		RoleID:          inv.RoleID,
		SucursalID:      mapOptionalString(inv.SucursalID),
		InvitationToken: inv.Token,
		InvitedBy:       inv.InvitedBy,
		ExpiresAt:       inv.ExpiresAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByToken(ctx context.Context, token string) (domain.Invitation, error) {
	row, err := r.q.GetInvitationByToken(ctx, token)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return mapInvitation(row), nil
}

func (r *invitationsRepo) GetPendingInvitationByEmail(ctx context.Context, email string) (domain.Invitation, error) {
	row, err := r.q.GetPendingInvitationByEmail(ctx, email)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return mapInvitation(row), nil
}

func (r *invitationsRepo) ListInvitationsByEmpresa(ctx context.Context, empresaID string) ([]domain.Invitation, error) {
	rows, err := r.q.ListInvitationsByEmpresa(ctx, empresaID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Invitation, len(rows))
	for i, row := range rows {
		out[i] = mapInvitation(row)
	}
	return out, nil
}

func (r *invitationsRepo) MarkInvitationAccepted(ctx context.Context, id string, at time.Time) error {
	return mapRowsAffected(r.q.MarkInvitationAccepted(ctx, gen.MarkInvitationAcceptedParams{
		AcceptedAt: sql.NullTime{Time: at.UTC(), Valid: true},
		ID:         id,
	}))
}

func (r *invitationsRepo) RevokeInvitation(ctx context.Context, id string) error {
	return mapRowsAffected(r.q.RevokeInvitation(ctx, id))
}

func (r *invitationsRepo) ExpireInvitations(ctx context.Context, now time.Time) (int64, error) {
	return r.q.ExpireInvitations(ctx, now.UTC())
}

func (r *invitationsRepo) ExpireInvitationsForEmail(ctx context.Context, email string, now time.Time) (int64, error) {
	return r.q.ExpireInvitationsForEmail(ctx, gen.ExpireInvitationsForEmailParams{
		Email:     email,
		ExpiresAt: now.UTC(),
	})
}
