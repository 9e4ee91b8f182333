package sqlite

import (
	"context"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store/drivers/sqlite/gen"
)

type rolesRepo struct {
	q *gen.Queries
}

func (r *rolesRepo) GetRoleByID(ctx context.Context, id string) (domain.Role, error) {
	row, err := r.q.GetRoleByID(ctx, id)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return mapRole(row), nil
}

func (r *rolesRepo) GetRoleByName(ctx context.Context, name string) (domain.Role, error) {
	row, err := r.q.GetRoleByName(ctx, name)
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	return mapRole(row), nil
}

func (r *rolesRepo) ListAll(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.q.ListAllRoles(ctx)
	if err != nil {
		return nil, err
	}

	roles := make([]domain.Role, len(rows))
	for i, row := range rows {
		roles[i] = mapRole(row)
	}
	return roles, nil
}

func (r *rolesRepo) CreateRole(ctx context.Context, role domain.Role) error {
	err := r.q.CreateRole(ctx, gen.CreateRoleParams{
		ID:             role.ID,
		Name:           role.Name,
		DisplayName:    role.DisplayName,
		HierarchyLevel: int64(role.HierarchyLevel),
	})
	return mapConstraint(err)
}

func (r *rolesRepo) GrantPermission(ctx context.Context, roleID, permissionID string) error {
	return r.q.GrantPermission(ctx, gen.GrantPermissionParams{
		RoleID:       roleID,
		PermissionID: permissionID,
	})
}

func (r *rolesRepo) IsEmpty(ctx context.Context) (bool, error) {
	count, err := r.q.CountRoles(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
