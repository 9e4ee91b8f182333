package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/domain"
	"github.com/pulsohoreca/pulso/internal/pulso/metrics"
	"github.com/pulsohoreca/pulso/pkg/slogx"
	"golang.org/x/sync/errgroup"
)

// errDenied stops the remaining checks once one has failed.
var errDenied = errors.New("check denied")

// Gate evaluates access criteria for a user. It fails closed: any checker
// error denies.
type Gate struct {
	Checker PermissionChecker
	Metrics *metrics.Metrics
}

type check struct {
	reason string
	run    func(ctx context.Context) (bool, error)
}

// Evaluate decides whether user satisfies every applicable check in c.
// Applicable checks run concurrently and the first denial cancels the rest.
// With a user and no applicable checks the decision is allow.
func (g *Gate) Evaluate(ctx context.Context, user *domain.User, c domain.Criteria) (d domain.Decision) {
	start := time.Now()
	defer func() {
		g.Metrics.GateDecision(d.Allowed, d.Reason, time.Since(start))
	}()

	if user == nil {
		return domain.Decision{Reason: domain.ReasonUnauthenticated}
	}

	checks := g.checks(user.ID, c)
	if len(checks) == 0 {
		return domain.Decision{Allowed: true, Reason: domain.ReasonAllowed}
	}

	var (
		mu     sync.Mutex
		reason string
	)
	eg, ectx := errgroup.WithContext(ctx)
	for _, chk := range checks {
		eg.Go(func() error {
			ok, err := chk.run(ectx)
			if err != nil {
				return err
			}
			if !ok {
				mu.Lock()
				if reason == "" {
					reason = chk.reason
				}
				mu.Unlock()
				return errDenied
			}
			return nil
		})
	}

	switch err := eg.Wait(); {
	case err == nil:
		return domain.Decision{Allowed: true, Reason: domain.ReasonAllowed}
	case errors.Is(err, errDenied):
		return domain.Decision{Reason: reason}
	default:
		slogx.FromContext(ctx).Error("permission check failed",
			slog.String("user_id", user.ID),
			slog.String("permission", c.Permission),
			slog.String("resource", c.Resource),
			slog.String("action", c.Action),
			slog.Int("min_hierarchy_level", c.MinHierarchyLevel),
			slog.Any("error", err),
		)
		return domain.Decision{Reason: domain.ReasonError}
	}
}

func (g *Gate) checks(userID string, c domain.Criteria) []check {
	var out []check

	if c.Permission != "" {
		out = append(out, check{
			reason: domain.ReasonPermission,
			run: func(ctx context.Context) (bool, error) {
				return g.Checker.HasPermission(ctx, userID, c.Permission, c.EmpresaID)
			},
		})
	}
	if c.Resource != "" && c.Action != "" {
		out = append(out, check{
			reason: domain.ReasonResource,
			run: func(ctx context.Context) (bool, error) {
				return g.Checker.CanAccessResource(ctx, userID, c.Resource, c.Action, c.EmpresaID)
			},
		})
	}
	if c.MinHierarchyLevel > 0 {
		out = append(out, check{
			reason: domain.ReasonHierarchy,
			run: func(ctx context.Context) (bool, error) {
				level, err := g.Checker.GetMaxHierarchyLevel(ctx, userID, c.EmpresaID)
				if err != nil {
					return false, err
				}
				return level >= c.MinHierarchyLevel, nil
			},
		})
	}
	return out
}
