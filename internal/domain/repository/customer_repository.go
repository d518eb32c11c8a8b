// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when no customer exists for a phone number.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrOrderNotFound is returned when an order id is not in the customer's history.
var ErrOrderNotFound = errors.New("order not found")

// ErrDuplicateCustomer is returned when creating a customer whose phone number already exists.
var ErrDuplicateCustomer = errors.New("customer already exists")

// CustomerRepository defines persistence for the customer aggregate. All
// history mutations are append-style; historical sub-records are never
// edited in place.
type CustomerRepository interface {
	// FindByPhone retrieves the full customer aggregate.
	FindByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// Create persists a new customer created on first contact.
	Create(ctx context.Context, customer *entity.Customer) error

	// Save persists the full aggregate (profile, cart, session, referrals,
	// eligibility, history).
	Save(ctx context.Context, customer *entity.Customer) error

	// SaveSession persists only the conversation session and cart of a
	// customer, the hot path of every transition.
	SaveSession(ctx context.Context, phone string, session entity.Session, cart entity.Cart) error

	// AppendOrder appends a finalized order to the shopping history.
	AppendOrder(ctx context.Context, phone string, order *entity.Order) error

	// AppendRefund appends a signed refund sub-record to an existing order.
	AppendRefund(ctx context.Context, phone string, orderID uuid.UUID, refund entity.Refund) error

	// UpdateEligibility persists a recomputed eligibility record.
	UpdateEligibility(ctx context.Context, phone string, eligibility entity.DiscountEligibility) error

	// SaveReferralState persists only the referral edges of a customer.
	// Ledger writers run outside the conversation lock, so they must not
	// touch the session or cart columns.
	SaveReferralState(ctx context.Context, phone string, referrals []entity.ReferralEdge) error

	// FindWithAbandonedCarts lists customers whose non-empty cart was last
	// touched before the cutoff and who have not been reminded since.
	FindWithAbandonedCarts(ctx context.Context, cutoff time.Time) ([]*entity.Customer, error)

	// FindPendingOrdersBefore lists customers holding orders still pending
	// confirmation that were placed before the cutoff.
	FindPendingOrdersBefore(ctx context.Context, cutoff time.Time) ([]*entity.Customer, error)
}
