package impl

import (
	"context"

	"bazaar/internal/domain/entity"
)

func (s *conversationService) promptAskName(ctx context.Context, t *transition) error {
	t.reply("What's your name?")

	return nil
}

func (s *conversationService) handleAskName(ctx context.Context, t *transition) error {
	if len(t.input) < 2 {
		return t.invalid(ctx, "Please tell me your name so I know how to address you.")
	}

	t.customer.Name = t.input
	t.customer.UpdatedAt = t.now
	t.reply("Nice to meet you, %s!", t.customer.Name)

	return t.enter(ctx, entity.FlowMenu, entity.StepRoot)
}
