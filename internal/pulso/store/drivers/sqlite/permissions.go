package sqlite

import (
	"context"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store/drivers/sqlite/gen"
)

type permissionsRepo struct {
	q *gen.Queries
}

func (r *permissionsRepo) CreatePermission(ctx context.Context, p domain.Permission) error {
	err := r.q.CreatePermission(ctx, gen.CreatePermissionParams{
		ID:               p.ID,
		Name:             p.Name,
		Category:         p.Category,
		Resource:         p.Resource,
		Action:           p.Action,
		CriticalityLevel: int64(p.CriticalityLevel),
	})
	return mapConstraint(err)
}

func (r *permissionsRepo) GetPermissionByName(ctx context.Context, name string) (domain.Permission, error) {
	row, err := r.q.GetPermissionByName(ctx, name)
	if err != nil {
		return domain.Permission{}, mapNotFound(err)
	}
	return mapPermission(row), nil
}

func (r *permissionsRepo) ListForUser(ctx context.Context, userID, empresaID string) ([]domain.Permission, error) {
	rows, err := r.q.ListPermissionsForUser(ctx, gen.ListPermissionsForUserParams{
		UserID:    userID,
		EmpresaID: mapScope(empresaID),
	})
	if err != nil {
		return nil, err
	}
	return mapPermissions(rows), nil
}

func (r *permissionsRepo) UserHasPermission(ctx context.Context, userID, name, empresaID string) (bool, error) {
	found, err := r.q.UserHasPermission(ctx, gen.UserHasPermissionParams{
		UserID:    userID,
		Name:      name,
		EmpresaID: mapScope(empresaID),
	})
	if err != nil {
		return false, err
	}
	return found != 0, nil
}
