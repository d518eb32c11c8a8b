package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// complaintRepository implements the repository.ComplaintRepository interface.
type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository is the constructor for complaintRepository.
func NewComplaintRepository(db *gorm.DB) repository.ComplaintRepository {
	return &complaintRepository{
		db: db,
	}
}

// Create persists a new complaint. Re-creating an existing id is a no-op so
// a replayed submission never opens a second ticket.
func (repo *complaintRepository) Create(ctx context.Context, complaint *entity.Complaint) error {
	complaintM := &model.ComplaintModel{
		ID:            complaint.ID,
		CustomerPhone: complaint.CustomerPhone,
		Text:          complaint.Text,
		Status:        string(complaint.Status),
		CreatedAt:     complaint.CreatedAt,
		ResolvedAt:    complaint.ResolvedAt,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(complaintM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create complaint")
	}

	return nil
}

// FindOpenByCustomer lists a customer's unresolved complaints.
func (repo *complaintRepository) FindOpenByCustomer(ctx context.Context, phone string) ([]*entity.Complaint, error) {
	var complaintModels []*model.ComplaintModel

	if err := repo.db.WithContext(ctx).
		Where("customer_phone = ? AND status = ?", phone, string(entity.ComplaintStatusOpen)).
		Order("created_at ASC").
		Find(&complaintModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open complaints")
	}

	complaints := make([]*entity.Complaint, 0, len(complaintModels))
	for _, complaintM := range complaintModels {
		complaints = append(complaints, toComplaintDomain(complaintM))
	}

	return complaints, nil
}

// Resolve marks a complaint resolved.
func (repo *complaintRepository) Resolve(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.ComplaintModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      string(entity.ComplaintStatusResolved),
			"resolved_at": &now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to resolve complaint")
	}
	if result.RowsAffected == 0 {
		return repository.ErrComplaintNotFound
	}

	return nil
}

func toComplaintDomain(complaintM *model.ComplaintModel) *entity.Complaint {
	return &entity.Complaint{
		ID:            complaintM.ID,
		CustomerPhone: complaintM.CustomerPhone,
		Text:          complaintM.Text,
		Status:        entity.ComplaintStatus(complaintM.Status),
		CreatedAt:     complaintM.CreatedAt,
		ResolvedAt:    complaintM.ResolvedAt,
	}
}
