package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrComplaintNotFound is returned when a complaint id resolves to nothing.
var ErrComplaintNotFound = errors.New("complaint not found")

// ComplaintRepository persists support complaints captured by the support flow.
type ComplaintRepository interface {
	// Create persists a new complaint. Creation is idempotent on the
	// complaint id: re-creating an existing id is a no-op.
	Create(ctx context.Context, complaint *entity.Complaint) error

	// FindOpenByCustomer lists a customer's unresolved complaints.
	FindOpenByCustomer(ctx context.Context, phone string) ([]*entity.Complaint, error)

	// Resolve marks a complaint resolved.
	Resolve(ctx context.Context, id uuid.UUID) error
}
