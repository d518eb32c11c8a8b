// Package scheduler runs the periodic background jobs: pending-order
// nudges, abandoned-cart reminders, offer media expiry and the dedup sweep.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/infra/dedupe"
	"bazaar/internal/usecase"

	"go.uber.org/fx"
)

const defaultSweepInterval = 5 * time.Minute

type schedulerServer struct {
	interval  time.Duration
	logger    *slog.Logger
	reminders usecase.ReminderUsecase
	dedupGate *dedupe.Gate

	stop chan struct{}
}

// ServerParams holds dependencies for the scheduler server
type ServerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Reminders usecase.ReminderUsecase
	DedupGate *dedupe.Gate
}

// NewServer creates the scheduler server.
func NewServer(params ServerParams) delivery.Delivery {
	interval := defaultSweepInterval
	if params.Cfg.Scheduler != nil && params.Cfg.Scheduler.SweepInterval > 0 {
		interval = params.Cfg.Scheduler.SweepInterval
	}

	srv := &schedulerServer{
		interval:  interval,
		logger:    params.Logger,
		reminders: params.Reminders,
		dedupGate: params.DedupGate,
		stop:      make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			close(srv.stop)

			return nil
		},
	})

	return srv
}

// Serve runs the sweep loop until the context is cancelled or the server is
// stopped.
func (s *schedulerServer) Serve(ctx context.Context) error {
	s.logger.Info("Starting scheduler", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			s.logger.Info("Shutting down scheduler")

			return nil
		case <-ticker.C:
			s.runSweeps(ctx)
		}
	}
}

// runSweeps executes every job once. Jobs are independent; a failing job
// never blocks the others.
func (s *schedulerServer) runSweeps(ctx context.Context) {
	now := time.Now().UTC()

	if swept := s.dedupGate.Sweep(); swept > 0 {
		s.logger.Debug("Dedup entries expired", slog.Int("count", swept))
	}

	if nudged, err := s.reminders.SweepPendingConfirmations(ctx, now); err != nil {
		s.logger.Error("Pending confirmation sweep failed", slog.Any("error", err))
	} else if nudged > 0 {
		s.logger.Info("Pending confirmations nudged", slog.Int("count", nudged))
	}

	if reminded, err := s.reminders.SendAbandonedCartReminders(ctx, now); err != nil {
		s.logger.Error("Abandoned cart sweep failed", slog.Any("error", err))
	} else if reminded > 0 {
		s.logger.Info("Abandoned cart reminders sent", slog.Int("count", reminded))
	}

	if reminded, err := s.reminders.SendPickupReminders(ctx, now); err != nil {
		s.logger.Error("Pickup reminder sweep failed", slog.Any("error", err))
	} else if reminded > 0 {
		s.logger.Info("Pickup reminders sent", slog.Int("count", reminded))
	}

	if expired, err := s.reminders.ExpireOfferMedia(ctx, now); err != nil {
		s.logger.Error("Offer media expiry failed", slog.Any("error", err))
	} else if expired > 0 {
		s.logger.Info("Offer media expired", slog.Int("count", expired))
	}
}
