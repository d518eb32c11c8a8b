package impl

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
)

func (s *conversationService) promptDescribeIssue(ctx context.Context, t *transition) error {
	if t.customer.Session.PendingComplaintID == "" {
		t.customer.Session.PendingComplaintID = uuid.NewString()
	}
	t.reply("Tell us what went wrong and our support team will get back to you.")

	return nil
}

func (s *conversationService) handleDescribeIssue(ctx context.Context, t *transition) error {
	if len(t.input) < 5 {
		return t.invalid(ctx, "Please describe the issue in a bit more detail.")
	}

	complaintID, err := uuid.Parse(t.customer.Session.PendingComplaintID)
	if err != nil {
		complaintID = uuid.New()
	}

	complaint := &entity.Complaint{
		ID:            complaintID,
		CustomerPhone: t.customer.Phone,
		Text:          t.input,
		Status:        entity.ComplaintStatusOpen,
		CreatedAt:     t.now,
	}
	t.txOps = append(t.txOps, func(ctx context.Context, f repository.RepositoryFactory) error {
		return f.NewComplaintRepository().Create(ctx, complaint)
	})

	t.reply("Thanks, your ticket %s is filed. We'll reach out soon.", shortID(complaint.ID))

	return t.reset(ctx, entity.FlowMenu, entity.StepRoot)
}
