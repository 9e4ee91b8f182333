package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store"
	"github.com/pulsohoreca/pulso/pkg/idx"
	"github.com/pulsohoreca/pulso/pkg/slogx"
)

var ErrCatalogInvalid = errors.New("role catalog is invalid")

// Permission names used by the route policy and handlers.
const (
	PermChecklistView   = "checklist.view"
	PermChecklistCreate = "checklist.create"
	PermAutomationView  = "automation.view"
	PermAutomationEdit  = "automation.create"
	PermAuditView       = "audit.view"
	PermInventoryView   = "inventory.view"
	PermTicketsView     = "tickets.view"
	PermDashboardHoreca = "dashboard.horeca.view"
	PermReportsView     = "reports.view"
	PermUsersView       = "users.view"
	PermCompanyView     = "company.view"
)

// DefaultCatalog is the role hierarchy every installation starts with.
func DefaultCatalog() domain.Catalog {
	perm := func(name, category, resource, action string, criticality int) domain.Permission {
		return domain.Permission{
			Name: name, Category: category, Resource: resource, Action: action,
			CriticalityLevel: criticality,
		}
	}

	all := []string{
		PermChecklistView, PermChecklistCreate, PermAutomationView, PermAutomationEdit,
		PermAuditView, PermInventoryView, PermTicketsView, PermDashboardHoreca, PermissionInvite,
		PermReportsView, PermUsersView, PermCompanyView,
	}

	return domain.Catalog{
		Permissions: []domain.Permission{
			perm(PermChecklistView, "checklists", "checklist", "view", 1),
			perm(PermChecklistCreate, "checklists", "checklist", "create", 2),
			perm(PermAutomationView, "automation", "automation", "view", 1),
			perm(PermAutomationEdit, "automation", "automation", "create", 3),
			perm(PermAuditView, "audit", "audit", "view", 2),
			perm(PermInventoryView, "inventory", "inventory", "view", 1),
			perm(PermTicketsView, "tickets", "tickets", "view", 1),
			perm(PermDashboardHoreca, "dashboard", "dashboard.horeca", "view", 1),
			perm(PermissionInvite, "users", "users", "invite", 3),
			perm(PermReportsView, "reports", "reports", "view", 1),
			perm(PermUsersView, "users", "users", "view", 2),
			perm(PermCompanyView, "company", "company", "view", 3),
		},
		Roles: []domain.RoleDefinition{
			{Name: domain.RoleOwner, DisplayName: "Propietario", HierarchyLevel: 10, Permissions: all},
			{Name: domain.RoleGeneralManager, DisplayName: "Gerente General", HierarchyLevel: 8, Permissions: all},
			{
				Name: domain.RoleBranchManager, DisplayName: "Gerente de Sucursal", HierarchyLevel: 6,
				Permissions: []string{
					PermChecklistView, PermChecklistCreate, PermInventoryView, PermTicketsView,
					PermDashboardHoreca, PermAuditView, PermAutomationView, PermissionInvite,
					PermReportsView,
				},
			},
			{
				Name: domain.RoleSupervisor, DisplayName: "Supervisor", HierarchyLevel: 4,
				Permissions: []string{PermChecklistView, PermChecklistCreate, PermTicketsView, PermInventoryView},
			},
			{
				Name: domain.RoleEmployee, DisplayName: "Empleado", HierarchyLevel: 2,
				Permissions: []string{PermChecklistView},
			},
		},
	}
}

// CatalogService seeds roles and permissions into an empty store.
type CatalogService struct {
	Store store.Store
}

// IsSeeded reports whether any role exists.
func (s *CatalogService) IsSeeded(ctx context.Context) (bool, error) {
	empty, err := s.Store.Roles().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Seed writes c when no roles exist yet. It reports whether anything was
// written; a seeded store is left untouched.
func (s *CatalogService) Seed(ctx context.Context, c domain.Catalog) (bool, error) {
	l := slogx.FromContext(ctx)

	if seeded, err := s.IsSeeded(ctx); err != nil {
		return false, err
	} else if seeded {
		l.Debug("role catalog already present")
		return false, nil
	}

	if err := validateCatalog(c); err != nil {
		return false, err
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		permIDs := make(map[string]string, len(c.Permissions))
		for _, p := range c.Permissions {
			p.ID = idx.New().String()
			if err := tx.Permissions().CreatePermission(ctx, p); err != nil {
				l.Error("failed to create permission",
					slog.String("permission", p.Name),
					slog.Any("error", err),
				)
				return err
			}
			permIDs[p.Name] = p.ID
		}

		for _, def := range c.Roles {
			role := domain.Role{
				ID:             idx.New().String(),
				Name:           def.Name,
				DisplayName:    def.DisplayName,
				HierarchyLevel: def.HierarchyLevel,
			}
			if err := tx.Roles().CreateRole(ctx, role); err != nil {
				l.Error("failed to create role",
					slog.String("role_name", def.Name),
					slog.Any("error", err),
				)
				return err
			}
			for _, name := range def.Permissions {
				if err := tx.Roles().GrantPermission(ctx, role.ID, permIDs[name]); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	l.Info("seeded role catalog",
		slog.Int("roles", len(c.Roles)),
		slog.Int("permissions", len(c.Permissions)),
	)
	return true, nil
}

func validateCatalog(c domain.Catalog) error {
	perms := make(map[string]struct{}, len(c.Permissions))
	for _, p := range c.Permissions {
		if p.Name == "" {
			return fmt.Errorf("%w: unnamed permission", ErrCatalogInvalid)
		}
		perms[p.Name] = struct{}{}
	}

	var hasOwner bool
	for _, r := range c.Roles {
		if r.Name == domain.RoleOwner {
			hasOwner = true
		}
		if r.HierarchyLevel <= 0 {
			return fmt.Errorf("%w: role %q needs a positive hierarchy level", ErrCatalogInvalid, r.Name)
		}
		for _, name := range r.Permissions {
			if _, ok := perms[name]; !ok {
				return fmt.Errorf("%w: role %q grants unknown permission %q", ErrCatalogInvalid, r.Name, name)
			}
		}
	}
	if !hasOwner {
		return fmt.Errorf("%w: catalog must define the %q role", ErrCatalogInvalid, domain.RoleOwner)
	}
	return nil
}
