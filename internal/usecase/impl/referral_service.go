package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrSelfReferral is returned when a customer scans their own invite.
	ErrSelfReferral = errors.New("customer cannot refer themselves")
)

type referralService struct {
	txManager repository.TransactionManager
	gateway   service.MessageGateway
	config    *config.Config
	logger    *slog.Logger
}

// ReferralServiceParams holds dependencies for ReferralService, injected by Fx.
type ReferralServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Gateway   service.MessageGateway
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReferralService creates a new referral service instance
func NewReferralService(params ReferralServiceParams) usecase.ReferralUsecase {
	return &referralService{
		txManager: params.TxManager,
		gateway:   params.Gateway,
		config:    params.Config,
		logger:    params.Logger,
	}
}

// RegisterReferral links the referred customer to their referrer. The link on
// the referred aggregate is set in memory for the caller to commit; the
// referrer's edge and eligibility signal are committed here.
func (s *referralService) RegisterReferral(ctx context.Context, referrerPhone string, referred *entity.Customer, now time.Time) error {
	if referred.ReferredBy != nil {
		return nil
	}
	if referrerPhone == referred.Phone {
		return ErrSelfReferral
	}

	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		customerRepo := txRepoFactory.NewCustomerRepository()

		referrer, err := customerRepo.FindByPhone(ctx, referrerPhone)
		if err != nil {
			return errors.Wrap(err, "failed to find referrer")
		}

		referrer.EnsureReferralEdge(referred.Phone, now)
		if err := customerRepo.SaveReferralState(ctx, referrer.Phone, referrer.Referrals); err != nil {
			return errors.Wrap(err, "failed to save referrer edges")
		}

		referrer.Eligibility.Referrals = append(referrer.Eligibility.Referrals, entity.ReferralSignal{
			At:          now,
			CountryCode: referred.CountryCode,
		})

		return errors.Wrap(customerRepo.UpdateEligibility(ctx, referrer.Phone, referrer.Eligibility), "failed to save referrer eligibility")
	})
	if err != nil {
		return err
	}

	referredAt := now
	referred.ReferredBy = &entity.ReferralTracking{
		ReferrerPhone: referrerPhone,
		ReferredAt:    referredAt,
	}
	referred.Eligibility.ReferredAt = &referredAt

	// Courtesy notification; the referral stands even if it fails.
	notice := &entity.OutboundMessage{
		Recipient: referrerPhone,
		Text:      "Good news! Someone just joined Bazaar through your invite.",
	}
	if err := s.gateway.Send(ctx, notice); err != nil {
		s.logger.WarnContext(ctx, "failed to notify referrer", slog.Any("error", err))
	}

	return nil
}

// OnOrderCompleted attributes commission for a completed order to the
// referrer of the ordering customer. A ledger entry is appended even when
// the commission comes to zero, so a redelivered event is recognized and
// skipped.
func (s *referralService) OnOrderCompleted(ctx context.Context, customerPhone string, orderID uuid.UUID) (int64, error) {
	var delta int64
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		customerRepo := txRepoFactory.NewCustomerRepository()

		customer, err := customerRepo.FindByPhone(ctx, customerPhone)
		if err != nil {
			return errors.Wrap(err, "failed to find customer")
		}
		if customer.ReferredBy == nil {
			return nil
		}

		order := customer.Order(orderID)
		if order == nil {
			return errors.Wrapf(repository.ErrOrderNotFound, "order %s", orderID)
		}

		referrer, err := customerRepo.FindByPhone(ctx, customer.ReferredBy.ReferrerPhone)
		if err != nil {
			return errors.Wrap(err, "failed to find referrer")
		}

		edge := referrer.EnsureReferralEdge(customerPhone, order.PlacedAt)
		if edge.HasEntryForOrder(orderID, entity.CommissionEntryOrder) {
			return nil
		}

		edge.HasPlacedOrder = true
		edge.TotalOrdersCount++
		edge.TotalSpentAmount += order.TotalAmount

		amount := s.commissionFor(referrer, order)
		edge.Append(entity.CommissionEntry{
			ID:        uuid.New(),
			OrderID:   orderID,
			Kind:      entity.CommissionEntryOrder,
			Amount:    amount,
			CreatedAt: time.Now(),
		})
		delta = amount

		// Column-scoped on purpose: the referrer may be mid-conversation in
		// another process, and a full-row save would clobber their session.
		return errors.Wrap(customerRepo.SaveReferralState(ctx, referrer.Phone, referrer.Referrals), "failed to save referrer edges")
	})
	if err != nil {
		return 0, err
	}

	if delta != 0 {
		s.logger.InfoContext(ctx, "commission attributed",
			slog.String("customer", customerPhone),
			slog.String("order_id", orderID.String()),
			slog.Int64("amount", delta))
	}

	return delta, nil
}

// OnOrderRefunded claws back commission proportional to the refunded share
// of the order. The clawback is a negative ledger entry; the original entry
// is never edited.
func (s *referralService) OnOrderRefunded(ctx context.Context, customerPhone string, orderID uuid.UUID, refundAmount int64) (int64, error) {
	var delta int64
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		customerRepo := txRepoFactory.NewCustomerRepository()

		customer, err := customerRepo.FindByPhone(ctx, customerPhone)
		if err != nil {
			return errors.Wrap(err, "failed to find customer")
		}
		if customer.ReferredBy == nil {
			return nil
		}

		order := customer.Order(orderID)
		if order == nil {
			return errors.Wrapf(repository.ErrOrderNotFound, "order %s", orderID)
		}

		referrer, err := customerRepo.FindByPhone(ctx, customer.ReferredBy.ReferrerPhone)
		if err != nil {
			return errors.Wrap(err, "failed to find referrer")
		}

		edge := referrer.ReferralEdge(customerPhone)
		if edge == nil || edge.HasEntryForOrder(orderID, entity.CommissionEntryRefund) {
			return nil
		}

		var generated int64
		for _, entry := range edge.Entries {
			if entry.OrderID == orderID && entry.Kind == entity.CommissionEntryOrder {
				generated += entry.Amount
			}
		}

		var clawback int64
		if order.TotalAmount > 0 {
			clawback = -generated * refundAmount / order.TotalAmount
		}

		edge.TotalSpentAmount -= refundAmount
		edge.Append(entity.CommissionEntry{
			ID:        uuid.New(),
			OrderID:   orderID,
			Kind:      entity.CommissionEntryRefund,
			Amount:    clawback,
			CreatedAt: time.Now(),
		})
		delta = clawback

		return errors.Wrap(customerRepo.SaveReferralState(ctx, referrer.Phone, referrer.Referrals), "failed to save referrer edges")
	})
	if err != nil {
		return 0, err
	}

	return delta, nil
}

// commissionFor computes the commission a referrer earns from one order:
// the non-discounted portion of the total, times the referrer's rate.
// Orders placed before the referrer became commission-eligible earn nothing.
func (s *referralService) commissionFor(referrer *entity.Customer, order *entity.Order) int64 {
	if referrer.CommissionEligibleSince != nil && order.PlacedAt.Before(*referrer.CommissionEligibleSince) {
		return 0
	}

	rate := int64(referrer.CommissionRateBps)
	if rate == 0 && s.config.Referral != nil {
		rate = int64(s.config.Referral.CommissionRateBps)
	}

	return order.CommissionBase() * rate / 10000
}
