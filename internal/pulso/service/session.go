package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/store"
	"github.com/pulsohoreca/pulso/pkg/jwtx"
	"github.com/pulsohoreca/pulso/pkg/slogx"
)

// SessionService resolves the signed-in user from the auth provider's
// session token.
type SessionService struct {
	Store    store.Store
	Verifier jwtx.Verifier
}

// CurrentUser returns the user for rawToken. An empty token means no session
// and yields (nil, nil). A token that fails verification yields
// ErrInvalidSession.
func (s *SessionService) CurrentUser(ctx context.Context, rawToken string) (*domain.User, error) {
	if rawToken == "" {
		return nil, nil
	}
	log := slogx.FromContext(ctx)

	claims, err := s.Verifier.Verify(rawToken)
	if err != nil {
		log.Debug("session token rejected", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	user := domain.User{
		ID:    claims.Subject,
		Email: normalizeEmail(claims.Email),
	}
	if err := s.Store.Users().UpsertUser(ctx, user); err != nil {
		log.Error("failed to record session user",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return &user, nil
}

// GetUserByID fetches a previously seen user.
func (s *SessionService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.User{}, ErrUnauthenticated
	}
	return u, err
}
