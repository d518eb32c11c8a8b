package postgres

import (
	"encoding/json"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// fromCustomerDomain maps the aggregate to its row shape, marshalling nested
// state to JSONB and refreshing the denormalized sweep columns.
func fromCustomerDomain(customer *entity.Customer) (*model.CustomerModel, error) {
	cart, err := json.Marshal(customer.Cart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal cart")
	}
	session, err := json.Marshal(customer.Session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}
	eligibility, err := json.Marshal(customer.Eligibility)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal eligibility")
	}

	var referredBy datatypes.JSON
	if customer.ReferredBy != nil {
		referredBy, err = json.Marshal(customer.ReferredBy)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal referral tracking")
		}
	}

	referrals, err := json.Marshal(customer.Referrals)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal referral edges")
	}
	orders, err := json.Marshal(customer.Orders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal orders")
	}

	customerM := &model.CustomerModel{
		Phone:                   customer.Phone,
		Name:                    customer.Name,
		Address:                 customer.Address,
		Area:                    customer.Area,
		CountryCode:             customer.CountryCode,
		Active:                  customer.Active,
		IsForeman:               customer.IsForeman,
		ForemanCommission:       customer.ForemanCommission,
		CommissionRateBps:       customer.CommissionRateBps,
		CommissionEligibleSince: customer.CommissionEligibleSince,
		Cart:                    cart,
		Session:                 session,
		ReferredBy:              referredBy,
		Referrals:               referrals,
		Eligibility:             eligibility,
		Orders:                  orders,
		CreatedAt:               customer.CreatedAt,
		UpdatedAt:               customer.UpdatedAt,
	}
	applySweepColumns(customerM, &customer.Cart, &customer.Session, customer.Orders)

	return customerM, nil
}

// applySweepColumns keeps the queryable reminder columns in step with the
// JSONB state they are derived from.
func applySweepColumns(customerM *model.CustomerModel, cart *entity.Cart, session *entity.Session, orders []entity.Order) {
	customerM.CartItemCount = len(cart.Items)
	customerM.CartUpdatedAt = nil
	if !cart.UpdatedAt.IsZero() {
		updatedAt := cart.UpdatedAt
		customerM.CartUpdatedAt = &updatedAt
	}
	customerM.ReminderSentAt = session.ReminderSentAt

	customerM.HasPendingOrder = false
	customerM.OldestPendingAt = nil
	for i := range orders {
		if orders[i].Status != entity.OrderStatusPending {
			continue
		}
		customerM.HasPendingOrder = true
		if customerM.OldestPendingAt == nil || orders[i].PlacedAt.Before(*customerM.OldestPendingAt) {
			placedAt := orders[i].PlacedAt
			customerM.OldestPendingAt = &placedAt
		}
	}
}

// toCustomerDomain maps a row back to the pure domain aggregate.
func toCustomerDomain(customerM *model.CustomerModel) (*entity.Customer, error) {
	customer := &entity.Customer{
		Phone:                   customerM.Phone,
		Name:                    customerM.Name,
		Address:                 customerM.Address,
		Area:                    customerM.Area,
		CountryCode:             customerM.CountryCode,
		Active:                  customerM.Active,
		IsForeman:               customerM.IsForeman,
		ForemanCommission:       customerM.ForemanCommission,
		CommissionRateBps:       customerM.CommissionRateBps,
		CommissionEligibleSince: customerM.CommissionEligibleSince,
		CreatedAt:               customerM.CreatedAt,
		UpdatedAt:               customerM.UpdatedAt,
	}

	if err := unmarshalColumn(customerM.Cart, &customer.Cart, "cart"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(customerM.Session, &customer.Session, "session"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(customerM.Eligibility, &customer.Eligibility, "eligibility"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(customerM.Referrals, &customer.Referrals, "referral edges"); err != nil {
		return nil, err
	}
	if err := unmarshalColumn(customerM.Orders, &customer.Orders, "orders"); err != nil {
		return nil, err
	}

	if len(customerM.ReferredBy) > 0 {
		tracking := &entity.ReferralTracking{}
		if err := unmarshalColumn(customerM.ReferredBy, tracking, "referral tracking"); err != nil {
			return nil, err
		}
		customer.ReferredBy = tracking
	}

	return customer, nil
}

func unmarshalColumn(data datatypes.JSON, target any, label string) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors.Wrapf(err, "failed to unmarshal %s", label)
	}

	return nil
}

// sessionUpdateColumns builds the column map of the session/cart hot path,
// including the derived sweep columns.
func sessionUpdateColumns(session entity.Session, cart entity.Cart, now time.Time) (map[string]any, error) {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}
	cartJSON, err := json.Marshal(cart)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal cart")
	}

	var cartUpdatedAt *time.Time
	if !cart.UpdatedAt.IsZero() {
		cartUpdatedAt = &cart.UpdatedAt
	}

	return map[string]any{
		"session":          datatypes.JSON(sessionJSON),
		"cart":             datatypes.JSON(cartJSON),
		"cart_item_count":  len(cart.Items),
		"cart_updated_at":  cartUpdatedAt,
		"reminder_sent_at": session.ReminderSentAt,
		"updated_at":       now,
	}, nil
}
