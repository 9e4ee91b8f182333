package sqlite

import (
	"context"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store/drivers/sqlite/gen"
)

type userRolesRepo struct {
	q *gen.Queries
}

func (r *userRolesRepo) AssignRole(ctx context.Context, ur domain.UserRole) error {
	err := r.q.AssignRole(ctx, gen.AssignRoleParams{
		ID:         ur.ID,
		UserID:     ur.UserID,
		RoleID:     ur.RoleID,
		EmpresaID:  ur.EmpresaID,
		SucursalID: mapOptionalString(ur.SucursalID),
		AssignedBy: ur.AssignedBy,
	})
	return mapConstraint(err)
}

func (r *userRolesRepo) ListActiveForUser(ctx context.Context, userID, empresaID string) ([]domain.UserRole, error) {
	rows, err := r.q.ListActiveUserRoles(ctx, gen.ListActiveUserRolesParams{
		UserID:    userID,
		EmpresaID: mapScope(empresaID),
	})
	if err != nil {
		return nil, err
	}

	// Permissions are loaded per distinct role; a user rarely holds more
	// than a handful of assignments.
	byRole := make(map[string][]domain.Permission)
	out := make([]domain.UserRole, len(rows))
	for i, row := range rows {
		ur := mapUserRole(row)
		perms, ok := byRole[row.RoleID]
		if !ok {
			prow, err := r.q.ListPermissionsByRole(ctx, row.RoleID)
			if err != nil {
				return nil, err
			}
			perms = mapPermissions(prow)
			byRole[row.RoleID] = perms
		}
		ur.Permissions = perms
		out[i] = ur
	}
	return out, nil
}

func (r *userRolesRepo) GetUserRole(ctx context.Context, id string) (domain.UserRole, error) {
	row, err := r.q.GetUserRoleByID(ctx, id)
	if err != nil {
		return domain.UserRole{}, mapNotFound(err)
	}
	return mapUserRole(gen.ListActiveUserRolesRow(row)), nil
}

func (r *userRolesRepo) ListMembers(ctx context.Context, empresaID string) ([]domain.UserRole, error) {
	rows, err := r.q.ListEmpresaMembers(ctx, empresaID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.UserRole, len(rows))
	for i, row := range rows {
		out[i] = mapUserRole(gen.ListActiveUserRolesRow{
			ID:             row.ID,
			UserID:         row.UserID,
			RoleID:         row.RoleID,
			EmpresaID:      row.EmpresaID,
			SucursalID:     row.SucursalID,
			Active:         row.Active,
			AssignedBy:     row.AssignedBy,
			CreatedAt:      row.CreatedAt,
			RoleName:       row.RoleName,
			HierarchyLevel: row.HierarchyLevel,
		})
		out[i].UserEmail = row.UserEmail
	}
	return out, nil
}

func (r *userRolesRepo) DeactivateRole(ctx context.Context, id string) error {
	return mapRowsAffected(r.q.DeactivateUserRole(ctx, id))
}
