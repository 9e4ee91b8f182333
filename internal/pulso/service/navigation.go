package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/metrics"
	"github.com/pulsohoreca/pulso/internal/pulso/store"
	"github.com/pulsohoreca/pulso/pkg/slogx"
)

// Navigation is the routing decision for a page request. An empty Redirect
// means the request may proceed.
type Navigation struct {
	Redirect string
}

// Proceed reports whether no redirect is needed.
func (n Navigation) Proceed() bool { return n.Redirect == "" }

// NavigationService applies the page access policy: sign-in, pending
// invitations, onboarding completion and per-route dashboard rules.
type NavigationService struct {
	Store       store.Store
	Permissions *PermissionManager
	Policy      RoutePolicy
	// Items is the sidebar Menu filters. Nil means DefaultMenu.
	Items   []MenuItem
	Metrics *metrics.Metrics
}

func (s *NavigationService) Route(ctx context.Context, user *domain.User, path string) Navigation {
	nav := s.route(ctx, user, path)
	if !nav.Proceed() {
		s.Metrics.NavigationRedirect(nav.Redirect)
	}
	return nav
}

func (s *NavigationService) route(ctx context.Context, user *domain.User, path string) Navigation {
	if user == nil {
		if IsPublicPath(path) {
			return Navigation{}
		}
		return Navigation{Redirect: PathLogin}
	}
	if hasPathPrefix(path, PathAcceptInvitation) {
		return Navigation{}
	}

	log := slogx.FromContext(ctx)
	onDashboard := hasPathPrefix(path, PathDashboard)
	onOnboarding := hasPathPrefix(path, PathOnboarding)
	email := normalizeEmail(user.Email)

	completed, err := s.companyCompleted(ctx, email)
	if err != nil {
		log.Error("navigation company lookup failed", slog.Any("error", err))
		return s.lookupFailed(onDashboard)
	}

	inv, pending, err := pendingInvitation(ctx, s.Store, email, time.Now())
	if err != nil {
		log.Error("navigation invitation lookup failed", slog.Any("error", err))
		return s.lookupFailed(onDashboard)
	}
	if pending {
		return Navigation{Redirect: inv.AcceptPath()}
	}

	roles, err := s.Permissions.UserRoles(ctx, user.ID, "")
	if err != nil {
		log.Error("navigation role lookup failed", slog.Any("error", err))
		return s.lookupFailed(onDashboard)
	}

	// Members who joined through an invitation have roles but no company of
	// their own; they count as onboarded.
	onboarded := completed || len(roles) > 0

	switch {
	case !onboarded && !onOnboarding:
		return Navigation{Redirect: PathOnboarding}
	case onboarded && onOnboarding:
		return Navigation{Redirect: PathDashboard}
	}

	if !onDashboard {
		return Navigation{}
	}
	if len(roles) == 0 {
		return Navigation{Redirect: PathUnauthorized}
	}
	if !s.Policy.Allows(path, domain.MaxHierarchyLevel(roles), permissionNames(roles)) {
		log.Info("dashboard route denied",
			slog.String("user_id", user.ID),
			slog.String("path", path),
		)
		return Navigation{Redirect: PathUnauthorized}
	}
	return Navigation{}
}

func (s *NavigationService) companyCompleted(ctx context.Context, email string) (bool, error) {
	e, err := s.Store.Empresas().GetEmpresaByOwnerEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return e.ConfiguracionInicialCompletada, nil
}

// lookupFailed fails closed on the dashboard and lets other pages through.
func (s *NavigationService) lookupFailed(onDashboard bool) Navigation {
	if onDashboard {
		return Navigation{Redirect: PathUnauthorized}
	}
	return Navigation{}
}

func permissionNames(roles []domain.UserRole) []string {
	var names []string
	for _, r := range roles {
		for _, p := range r.Permissions {
			names = append(names, p.Name)
		}
	}
	return names
}
