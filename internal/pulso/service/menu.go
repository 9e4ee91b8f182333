package service

import (
	"context"
	"errors"
	"slices"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store"
)

// MenuItem is one dashboard navigation entry. Permission and
// MinHierarchyLevel are only checked when set.
type MenuItem struct {
	Title             string
	Href              string
	Icon              string
	Permission        string
	MinHierarchyLevel int
}

// Visible reports whether a user with the given level and permission
// names sees the item.
func (m MenuItem) Visible(level int, permissions []string) bool {
	if m.MinHierarchyLevel > 0 && level < m.MinHierarchyLevel {
		return false
	}
	return m.Permission == "" || slices.Contains(permissions, m.Permission)
}

// DefaultMenu is the dashboard sidebar in display order.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Title: "Dashboard", Href: PathDashboard, Icon: "layout-dashboard", MinHierarchyLevel: 1},
		{Title: "Dashboard HORECA", Href: "/dashboard/horeca", Icon: "building-2", Permission: PermDashboardHoreca, MinHierarchyLevel: 6},
		{Title: "Checklists", Href: "/dashboard/checklists", Icon: "check-square", Permission: PermChecklistView},
		{Title: "Automatización", Href: "/dashboard/automation", Icon: "zap", Permission: PermAutomationView, MinHierarchyLevel: 6},
		{Title: "Inventario", Href: "/dashboard/inventory", Icon: "package", Permission: PermInventoryView},
		{Title: "Tickets", Href: "/dashboard/tickets", Icon: "ticket", Permission: PermTicketsView},
		{Title: "Flujos", Href: "/dashboard/flows", Icon: "git-branch", MinHierarchyLevel: 6},
		{Title: "Reportes", Href: "/dashboard/reportes", Icon: "bar-chart-3", Permission: PermReportsView},
		{Title: "Usuarios", Href: "/dashboard/usuarios", Icon: "users", Permission: PermUsersView, MinHierarchyLevel: 7},
		{Title: "Auditoría", Href: "/dashboard/automation/auditoria", Icon: "history", Permission: PermAuditView, MinHierarchyLevel: 8},
		{Title: "Configuración", Href: "/dashboard/configuracion", Icon: "settings", Permission: PermCompanyView, MinHierarchyLevel: 9},
	}
}

// Menu is the sidebar of one user in one company.
type Menu struct {
	EmpresaID string
	Items     []MenuItem
}

// Menu filters the dashboard sidebar by the user's roles in empresaID. With
// no empresaID the company the user owns is used, then the company of their
// highest ranked assignment. A user with neither gets an empty menu.
func (s *NavigationService) Menu(ctx context.Context, user *domain.User, empresaID string) (Menu, error) {
	if user == nil {
		return Menu{}, ErrUnauthenticated
	}
	if empresaID == "" {
		var err error
		if empresaID, err = s.homeEmpresa(ctx, user); err != nil {
			return Menu{}, err
		}
		if empresaID == "" {
			return Menu{}, nil
		}
	}

	roles, err := s.Permissions.UserRoles(ctx, user.ID, empresaID)
	if err != nil {
		return Menu{}, err
	}
	level, names := domain.MaxHierarchyLevel(roles), permissionNames(roles)

	items := s.menu()
	visible := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if item.Visible(level, names) {
			visible = append(visible, item)
		}
	}
	return Menu{EmpresaID: empresaID, Items: visible}, nil
}

func (s *NavigationService) menu() []MenuItem {
	if s.Items != nil {
		return s.Items
	}
	return DefaultMenu()
}

func (s *NavigationService) homeEmpresa(ctx context.Context, user *domain.User) (string, error) {
	e, err := s.Store.Empresas().GetEmpresaByOwnerEmail(ctx, normalizeEmail(user.Email))
	switch {
	case err == nil:
		return e.ID, nil
	case !errors.Is(err, store.ErrNotFound):
		return "", err
	}

	roles, err := s.Permissions.UserRoles(ctx, user.ID, "")
	if err != nil || len(roles) == 0 {
		return "", err
	}
	return roles[0].EmpresaID, nil
}
