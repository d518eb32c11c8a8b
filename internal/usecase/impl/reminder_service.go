package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/lock"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// offerMediaPrefix is where generated referral QR images live; they are the
// only media with a bounded lifetime.
const offerMediaPrefix = "referrals/"

// Fallbacks used when the scheduler section is absent from configuration.
const (
	fallbackSweepInterval      = 5 * time.Minute
	fallbackAbandonedCartAfter = 2 * time.Hour
	fallbackPickupReminderHour = 9
)

type reminderService struct {
	locks        *lock.KeyedMutex
	customerRepo repository.CustomerRepository
	gateway      service.MessageGateway
	mediaStore   service.MediaStore
	scheduler    config.SchedulerConfig
	logger       *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	Locks        *lock.KeyedMutex
	CustomerRepo repository.CustomerRepository
	Gateway      service.MessageGateway
	MediaStore   service.MediaStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReminderService creates a new reminder service instance
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		locks:        params.Locks,
		customerRepo: params.CustomerRepo,
		gateway:      params.Gateway,
		mediaStore:   params.MediaStore,
		scheduler:    resolveSchedulerConfig(params.Config),
		logger:       params.Logger,
	}
}

// resolveSchedulerConfig fills in defaults so the sweep jobs never depend on
// the scheduler section being present.
func resolveSchedulerConfig(cfg *config.Config) config.SchedulerConfig {
	resolved := config.SchedulerConfig{
		SweepInterval:      fallbackSweepInterval,
		AbandonedCartAfter: fallbackAbandonedCartAfter,
		PickupReminderHour: fallbackPickupReminderHour,
	}
	if cfg == nil || cfg.Scheduler == nil {
		return resolved
	}

	if cfg.Scheduler.SweepInterval > 0 {
		resolved.SweepInterval = cfg.Scheduler.SweepInterval
	}
	if cfg.Scheduler.AbandonedCartAfter > 0 {
		resolved.AbandonedCartAfter = cfg.Scheduler.AbandonedCartAfter
	}
	if cfg.Scheduler.PickupReminderHour > 0 {
		resolved.PickupReminderHour = cfg.Scheduler.PickupReminderHour
	}
	// A missing TTL means media expiry stays off.
	resolved.OfferMediaTTL = cfg.Scheduler.OfferMediaTTL

	return resolved
}

// SweepPendingConfirmations nudges customers whose orders crossed the
// confirmation cutoff since the previous sweep. The one-interval window
// keeps each order to a single nudge without extra bookkeeping.
func (s *reminderService) SweepPendingConfirmations(ctx context.Context, now time.Time) (int, error) {
	interval := s.scheduler.SweepInterval
	cutoff := now.Add(-s.scheduler.AbandonedCartAfter)

	customers, err := s.customerRepo.FindPendingOrdersBefore(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list customers with pending orders")
	}

	sent := 0
	for _, customer := range customers {
		for i := range customer.Orders {
			order := &customer.Orders[i]
			if order.Status != entity.OrderStatusPending {
				continue
			}
			if !order.PlacedAt.Before(cutoff) || order.PlacedAt.Before(cutoff.Add(-interval)) {
				continue
			}

			msg := &entity.OutboundMessage{
				Recipient: customer.Phone,
				Text:      "Your order " + shortID(order.ID) + " is still awaiting confirmation. We're on it!",
			}
			if err := s.gateway.Send(ctx, msg); err != nil {
				s.logger.WarnContext(ctx, "failed to send pending order nudge",
					slog.String("customer", customer.Phone),
					slog.Any("error", err))

				continue
			}
			sent++
		}
	}

	return sent, nil
}

// SendAbandonedCartReminders messages customers whose non-empty cart went
// stale. ReminderSentAt is stamped under the customer's lock so the sweep
// never races a live conversation transition.
func (s *reminderService) SendAbandonedCartReminders(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-s.scheduler.AbandonedCartAfter)

	customers, err := s.customerRepo.FindWithAbandonedCarts(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list abandoned carts")
	}

	sent := 0
	for _, candidate := range customers {
		ok, err := s.remindAbandonedCart(ctx, candidate.Phone, cutoff, now)
		if err != nil {
			s.logger.WarnContext(ctx, "failed to remind abandoned cart",
				slog.String("customer", candidate.Phone),
				slog.Any("error", err))

			continue
		}
		if ok {
			sent++
		}
	}

	return sent, nil
}

// SendPickupReminders reminds customers whose pickup orders are still
// awaiting collection. The reminder fires once, at the configured hour the
// day after the order was placed; the one-interval window keeps repeat
// sweeps from re-sending it.
func (s *reminderService) SendPickupReminders(ctx context.Context, now time.Time) (int, error) {
	hour := s.scheduler.PickupReminderHour
	interval := s.scheduler.SweepInterval

	customers, err := s.customerRepo.FindPendingOrdersBefore(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list customers with pending orders")
	}

	sent := 0
	for _, customer := range customers {
		for i := range customer.Orders {
			order := &customer.Orders[i]
			if order.Status != entity.OrderStatusPending || order.DeliveryType != deliveryPickup {
				continue
			}

			day := order.PlacedAt.UTC().AddDate(0, 0, 1)
			remindAt := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
			if remindAt.After(now) || !remindAt.After(now.Add(-interval)) {
				continue
			}

			msg := &entity.OutboundMessage{
				Recipient: customer.Phone,
				Text:      "Reminder: order " + shortID(order.ID) + " is ready for pickup at the store today.",
			}
			if err := s.gateway.Send(ctx, msg); err != nil {
				s.logger.WarnContext(ctx, "failed to send pickup reminder",
					slog.String("customer", customer.Phone),
					slog.Any("error", err))

				continue
			}
			sent++
		}
	}

	return sent, nil
}

func (s *reminderService) remindAbandonedCart(ctx context.Context, phone string, cutoff, now time.Time) (bool, error) {
	unlock := s.locks.Lock(phone)
	defer unlock()

	// Re-read under the lock; the customer may have resumed shopping
	// between the query and this point.
	customer, err := s.customerRepo.FindByPhone(ctx, phone)
	if err != nil {
		return false, errors.Wrap(err, "failed to load customer")
	}
	if customer.Cart.IsEmpty() || customer.Cart.UpdatedAt.After(cutoff) {
		return false, nil
	}
	if customer.Session.ReminderSentAt != nil && customer.Session.ReminderSentAt.After(customer.Cart.UpdatedAt) {
		return false, nil
	}

	customer.Session.ReminderSentAt = &now
	if err := s.customerRepo.SaveSession(ctx, phone, customer.Session, customer.Cart); err != nil {
		return false, errors.Wrap(err, "failed to stamp reminder")
	}

	msg := &entity.OutboundMessage{
		Recipient: phone,
		Text:      "You left some items in your cart. Reply 0 and pick \"Checkout\" whenever you're ready!",
	}
	if err := s.gateway.Send(ctx, msg); err != nil {
		s.logger.WarnContext(ctx, "failed to send cart reminder",
			slog.String("customer", phone),
			slog.Any("error", err))
	}

	return true, nil
}

// ExpireOfferMedia deletes generated offer media older than the configured
// TTL. A fresh QR is generated on demand, so deletion is always safe.
func (s *reminderService) ExpireOfferMedia(ctx context.Context, now time.Time) (int, error) {
	ttl := s.scheduler.OfferMediaTTL
	if ttl <= 0 {
		return 0, nil
	}

	objects, err := s.mediaStore.List(ctx, offerMediaPrefix)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list offer media")
	}

	deleted := 0
	for _, object := range objects {
		if now.Sub(object.ModTime) < ttl {
			continue
		}
		if err := s.mediaStore.Delete(ctx, object.Key); err != nil {
			s.logger.WarnContext(ctx, "failed to delete expired media",
				slog.String("key", object.Key),
				slog.Any("error", err))

			continue
		}
		deleted++
	}

	return deleted, nil
}
