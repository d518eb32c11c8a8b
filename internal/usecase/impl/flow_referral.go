package impl

import (
	"context"
	"fmt"
	"log/slog"

	"bazaar/internal/domain/entity"

	"github.com/pkg/errors"
)

func (s *conversationService) promptReferralRoot(ctx context.Context, t *transition) error {
	t.reply("Referral program — earn commission when friends you invite shop with us.\n1. Get my invite QR\n2. My referral stats\n3. Send us your intro video")

	return nil
}

func (s *conversationService) handleReferralRoot(ctx context.Context, t *transition) error {
	switch t.input {
	case "1":
		return s.sendReferralQR(ctx, t)
	case "2":
		t.reply("%s", referralStats(t.customer))

		return t.renderPrompt(ctx)
	case "3":
		return t.enter(ctx, entity.FlowReferral, entity.StepAwaitVideo)
	default:
		return t.invalid(ctx, "Please reply 1, 2 or 3.")
	}
}

func (s *conversationService) sendReferralQR(ctx context.Context, t *transition) error {
	png, err := s.qrcodes.GenerateReferralQR(t.customer.Phone)
	if err != nil {
		return errors.Wrap(err, "failed to generate referral QR")
	}

	key := fmt.Sprintf("referrals/%s.png", t.customer.Phone)
	ref, err := s.mediaStore.Put(ctx, key, png, "image/png")
	if err != nil {
		return errors.Wrap(err, "failed to store referral QR")
	}

	t.replyMedia(ref, "Share this QR with friends. When they scan it and shop, you earn commission!")

	return t.renderPrompt(ctx)
}

func referralStats(customer *entity.Customer) string {
	var (
		placed  int
		balance int64
	)
	for _, edge := range customer.Referrals {
		if edge.HasPlacedOrder {
			placed++
		}
		balance += edge.CommissionGenerated
	}

	return fmt.Sprintf("You invited %d friends, %d of them placed orders.\nCommission earned so far: %s",
		len(customer.Referrals), placed, formatMoney(balance))
}

func (s *conversationService) promptAwaitVideo(ctx context.Context, t *transition) error {
	t.reply("Send us a short video of you introducing Bazaar to your friends and we'll feature it.")

	return nil
}

func (s *conversationService) handleAwaitVideo(ctx context.Context, t *transition) error {
	if t.msg.MediaRef == "" {
		return t.invalid(ctx, "Please attach a video to your message.")
	}

	s.logger.InfoContext(ctx, "referral video received",
		slog.String("customer", t.customer.Phone),
		slog.String("media_ref", t.msg.MediaRef))
	t.reply("Thank you! Our team will take a look.")

	return t.enter(ctx, entity.FlowReferral, entity.StepReferralRoot)
}
