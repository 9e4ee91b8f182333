package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/pulsohoreca/pulso/internal/pulso/cache"
	"github.com/pulsohoreca/pulso/internal/pulso/metrics"
)

// HousekeepingService periodically expires stale invitations and sweeps the
// permission cache.
type HousekeepingService struct {
	Invitations *InvitationService
	Cache       cache.PermissionCache
	Metrics     *metrics.Metrics
	Logger      *slog.Logger
	Interval    time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to 1 hour.
func NewHousekeepingService(
	invitations *InvitationService,
	c cache.PermissionCache,
	m *metrics.Metrics,
	logger *slog.Logger,
	interval time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{
		Invitations: invitations,
		Cache:       c,
		Metrics:     m,
		Logger:      logger,
		Interval:    interval,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs one cleanup pass. Each step is independent.
func (s *HousekeepingService) RunOnce(ctx context.Context) {
	s.Logger.Debug("starting housekeeping cleanup")

	expired, err := s.Invitations.ExpireStale(ctx, time.Now().UTC())
	if err != nil {
		s.Logger.Error("failed to expire stale invitations", "error", err)
	}

	var swept int
	if s.Cache != nil {
		swept = s.Cache.Sweep()
		s.Metrics.CacheSwept(swept)
	}

	s.Logger.Info("housekeeping cleanup completed",
		"expired_invitations", expired,
		"swept_cache_entries", swept,
	)
}
