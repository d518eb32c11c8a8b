package postgres

import (
	"context"
	"encoding/json"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// FindByPhone retrieves the full customer aggregate.
func (repo *customerRepository) FindByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by phone")
	}

	return toCustomerDomain(&customerM)
}

// Create persists a new customer created on first contact.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM, err := fromCustomerDomain(customer)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCustomer
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCustomerCreationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	return nil
}

// Save persists the full aggregate.
func (repo *customerRepository) Save(ctx context.Context, customer *entity.Customer) error {
	customerM, err := fromCustomerDomain(customer)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("phone = ?", customer.Phone).
		Select("*").
		Omit("phone", "created_at").
		Updates(customerM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save customer")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// SaveSession persists only the conversation session and cart, the hot path
// of every transition.
func (repo *customerRepository) SaveSession(ctx context.Context, phone string, session entity.Session, cart entity.Cart) error {
	columns, err := sessionUpdateColumns(session, cart, session.UpdatedAt)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("phone = ?", phone).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// AppendOrder appends a finalized order to the shopping history.
func (repo *customerRepository) AppendOrder(ctx context.Context, phone string, order *entity.Order) error {
	return repo.updateOrders(ctx, phone, func(orders []entity.Order) ([]entity.Order, error) {
		for i := range orders {
			if orders[i].ID == order.ID {
				// Idempotent replay of an already-appended order.
				return orders, nil
			}
		}

		return append(orders, *order), nil
	})
}

// AppendRefund appends a signed refund sub-record to an existing order.
func (repo *customerRepository) AppendRefund(ctx context.Context, phone string, orderID uuid.UUID, refund entity.Refund) error {
	return repo.updateOrders(ctx, phone, func(orders []entity.Order) ([]entity.Order, error) {
		for i := range orders {
			if orders[i].ID != orderID {
				continue
			}
			for _, existing := range orders[i].Refunds {
				if existing.ID == refund.ID {
					return orders, nil
				}
			}
			if err := orders[i].AppendRefund(refund); err != nil {
				return nil, err
			}

			return orders, nil
		}

		return nil, repository.ErrOrderNotFound
	})
}

// updateOrders loads the order history, applies the mutation and writes the
// history and its derived sweep columns back.
func (repo *customerRepository) updateOrders(ctx context.Context, phone string, mutate func([]entity.Order) ([]entity.Order, error)) error {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to load customer orders")
	}

	var orders []entity.Order
	if err := unmarshalColumn(customerM.Orders, &orders, "orders"); err != nil {
		return err
	}

	orders, err := mutate(orders)
	if err != nil {
		return err
	}

	ordersJSON, err := json.Marshal(orders)
	if err != nil {
		return errors.Wrap(err, "failed to marshal orders")
	}

	var hasPending bool
	var oldestPending *time.Time
	for i := range orders {
		if orders[i].Status != entity.OrderStatusPending {
			continue
		}
		hasPending = true
		if oldestPending == nil || orders[i].PlacedAt.Before(*oldestPending) {
			placedAt := orders[i].PlacedAt
			oldestPending = &placedAt
		}
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("phone = ?", phone).
		Updates(map[string]any{
			"orders":            datatypes.JSON(ordersJSON),
			"has_pending_order": hasPending,
			"oldest_pending_at": oldestPending,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update orders")
	}

	return nil
}

// UpdateEligibility persists a recomputed eligibility record.
func (repo *customerRepository) UpdateEligibility(ctx context.Context, phone string, eligibility entity.DiscountEligibility) error {
	eligibilityJSON, err := json.Marshal(eligibility)
	if err != nil {
		return errors.Wrap(err, "failed to marshal eligibility")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("phone = ?", phone).
		Update("eligibility", datatypes.JSON(eligibilityJSON))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update eligibility")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// SaveReferralState writes only the referrals column. The ledger worker runs
// concurrently with live conversations, so it must never rewrite the session
// or cart of the same row.
func (repo *customerRepository) SaveReferralState(ctx context.Context, phone string, referrals []entity.ReferralEdge) error {
	referralsJSON, err := json.Marshal(referrals)
	if err != nil {
		return errors.Wrap(err, "failed to marshal referrals")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("phone = ?", phone).
		Updates(map[string]any{
			"referrals":  datatypes.JSON(referralsJSON),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update referrals")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// FindWithAbandonedCarts lists customers whose non-empty cart was last
// touched before the cutoff and who have not been reminded since.
func (repo *customerRepository) FindWithAbandonedCarts(ctx context.Context, cutoff time.Time) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("active AND cart_item_count > 0 AND cart_updated_at < ?", cutoff).
		Where("reminder_sent_at IS NULL OR reminder_sent_at < cart_updated_at").
		Order("cart_updated_at ASC").
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find abandoned carts")
	}

	return toCustomerDomainList(customerModels)
}

// FindPendingOrdersBefore lists customers holding orders still pending
// confirmation that were placed before the cutoff.
func (repo *customerRepository) FindPendingOrdersBefore(ctx context.Context, cutoff time.Time) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("has_pending_order AND oldest_pending_at < ?", cutoff).
		Order("oldest_pending_at ASC").
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending orders")
	}

	return toCustomerDomainList(customerModels)
}

func toCustomerDomainList(customerModels []*model.CustomerModel) ([]*entity.Customer, error) {
	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customer, err := toCustomerDomain(customerM)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}

	return customers, nil
}
