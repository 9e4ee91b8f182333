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

// Redirect is the onboarding decision. Exactly one of Destination or
// ShowWizard is set.
type Redirect struct {
	Destination string
	ShowWizard  bool
	User        *domain.User
}

// OnboardingService decides where a user landing on the onboarding page
// belongs.
type OnboardingService struct {
	Store   store.Store
	Metrics *metrics.Metrics
}

// Resolve never fails. A lookup error is logged and leaves the user on the
// wizard.
func (s *OnboardingService) Resolve(ctx context.Context, user *domain.User) Redirect {
	r := s.resolve(ctx, user)
	s.Metrics.OnboardingRedirect(r.Destination)
	return r
}

func (s *OnboardingService) resolve(ctx context.Context, user *domain.User) Redirect {
	if user == nil {
		return Redirect{Destination: PathLogin}
	}
	log := slogx.FromContext(ctx)
	email := normalizeEmail(user.Email)

	// An existing company wins over any invitation.
	_, err := s.Store.Empresas().GetEmpresaByOwnerEmail(ctx, email)
	switch {
	case err == nil:
		return Redirect{Destination: PathDashboard}
	case !errors.Is(err, store.ErrNotFound):
		log.Error("onboarding company lookup failed", slog.Any("error", err))
		return Redirect{ShowWizard: true, User: user}
	}

	inv, ok, err := pendingInvitation(ctx, s.Store, email, time.Now())
	switch {
	case err != nil:
		log.Error("onboarding invitation lookup failed", slog.Any("error", err))
	case ok:
		return Redirect{Destination: inv.AcceptPath()}
	}

	return Redirect{ShowWizard: true, User: user}
}
