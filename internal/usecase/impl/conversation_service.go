package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
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

type conversationService struct {
	locks        *lock.KeyedMutex
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	catalogRepo  repository.CatalogRepository
	eligibility  usecase.EligibilityUsecase
	orders       usecase.OrderUsecase
	referrals    usecase.ReferralUsecase
	qrcodes      service.QRCodeService
	mediaStore   service.MediaStore
	gateway      service.MessageGateway
	config       *config.Config
	logger       *slog.Logger

	steps map[entity.StepKey]stepSpec
	now   func() time.Time
}

// ConversationServiceParams holds dependencies for ConversationService, injected by Fx.
type ConversationServiceParams struct {
	fx.In

	Locks        *lock.KeyedMutex
	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	CatalogRepo  repository.CatalogRepository
	Eligibility  usecase.EligibilityUsecase
	Orders       usecase.OrderUsecase
	Referrals    usecase.ReferralUsecase
	QRCodes      service.QRCodeService
	MediaStore   service.MediaStore
	Gateway      service.MessageGateway
	Config       *config.Config
	Logger       *slog.Logger
}

// NewConversationService creates a new conversation service instance
func NewConversationService(params ConversationServiceParams) usecase.ConversationUsecase {
	s := &conversationService{
		locks:        params.Locks,
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		catalogRepo:  params.CatalogRepo,
		eligibility:  params.Eligibility,
		orders:       params.Orders,
		referrals:    params.Referrals,
		qrcodes:      params.QRCodes,
		mediaStore:   params.MediaStore,
		gateway:      params.Gateway,
		config:       params.Config,
		logger:       params.Logger,
		now:          time.Now,
	}
	s.steps = s.newStepTable()

	return s
}

// stepSpec registers one conversation state: the prompt rendered when the
// state is entered, and the handler applied to the next inbound message.
type stepSpec struct {
	prompt func(ctx context.Context, t *transition) error
	handle func(ctx context.Context, t *transition) error
}

// transition carries the working state of exactly one inbound message:
// the loaded aggregate, accumulated replies, extra repository writes to run
// inside the commit transaction, and side effects to run after it.
type transition struct {
	svc      *conversationService
	customer *entity.Customer
	msg      *entity.InboundMessage
	input    string
	now      time.Time

	replies    []*entity.OutboundMessage
	txOps      []func(ctx context.Context, f repository.RepositoryFactory) error
	postCommit []func(ctx context.Context)
}

func (t *transition) reply(format string, args ...any) {
	t.replies = append(t.replies, &entity.OutboundMessage{
		Recipient: t.customer.Phone,
		Text:      fmt.Sprintf(format, args...),
	})
}

func (t *transition) replyMedia(mediaRef, caption string) {
	t.replies = append(t.replies, &entity.OutboundMessage{
		Recipient: t.customer.Phone,
		MediaRef:  mediaRef,
		Caption:   caption,
	})
}

// enter moves the session to another step and renders that step's entry
// prompt. Scratch selections survive; use reset for cross-flow jumps.
func (t *transition) enter(ctx context.Context, flow entity.Flow, step entity.Step) error {
	t.customer.Session.MoveTo(flow, step, t.now)

	return t.renderPrompt(ctx)
}

// reset moves the session and drops all scratch state.
func (t *transition) reset(ctx context.Context, flow entity.Flow, step entity.Step) error {
	t.customer.Session.ResetTo(flow, step, t.now)

	return t.renderPrompt(ctx)
}

// invalid replies with a correction and re-renders the current prompt. The
// session does not move; the transition is a no-op apart from the reply.
func (t *transition) invalid(ctx context.Context, text string) error {
	t.reply("%s", text)

	return t.renderPrompt(ctx)
}

func (t *transition) renderPrompt(ctx context.Context) error {
	spec, ok := t.svc.steps[t.customer.Session.Key()]
	if !ok || spec.prompt == nil {
		return nil
	}

	return spec.prompt(ctx, t)
}

// option resolves a numeric reply against the option ids snapshotted by the
// last prompt.
func (t *transition) option() (string, bool) {
	n, err := strconv.Atoi(t.input)
	if err != nil || n < 1 || n > len(t.customer.Session.OptionIDs) {
		return "", false
	}

	return t.customer.Session.OptionIDs[n-1], true
}

// HandleInbound runs exactly one state machine transition for the message.
// The per-customer lock serializes transitions; replies and other side
// effects run only after the new state is committed, and off the lock.
func (s *conversationService) HandleInbound(ctx context.Context, msg *entity.InboundMessage) error {
	unlock := s.locks.Lock(msg.Sender)
	t, err := s.process(ctx, msg)
	unlock()
	if err != nil {
		// The transition rolled back, so the session is exactly where it
		// was. Tell the customer before surfacing the error for retry.
		s.notifyFailure(ctx, msg.Sender)

		return err
	}

	s.deliver(ctx, t)

	return nil
}

// notifyFailure is a best-effort apology for a transition that did not
// commit. Same delivery rules as replies: a send failure is logged, never
// propagated.
func (s *conversationService) notifyFailure(ctx context.Context, recipient string) {
	notice := &entity.OutboundMessage{
		Recipient: recipient,
		Text:      "Sorry, something went wrong on our side. Your last message wasn't processed, please try again.",
	}
	if err := s.gateway.Send(ctx, notice); err != nil {
		s.logger.ErrorContext(ctx, "failed to send failure notice",
			slog.String("recipient", recipient),
			slog.Any("error", err))
	}
}

func (s *conversationService) process(ctx context.Context, msg *entity.InboundMessage) (*transition, error) {
	now := s.now()
	t := &transition{
		svc:   s,
		msg:   msg,
		input: strings.TrimSpace(msg.Body),
		now:   now,
	}

	customer, err := s.customerRepo.FindByPhone(ctx, msg.Sender)
	created := false
	switch {
	case err == nil:
		t.customer = customer
	case errors.Is(err, repository.ErrCustomerNotFound):
		created = true
		t.customer = entity.NewCustomer(msg.Sender, countryCodeFromPhone(msg.Sender), now)
		if err := s.linkReferralFromFirstMessage(ctx, t); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrap(err, "failed to load customer")
	}

	t.customer.Session.LastInboundAt = now

	if err := s.dispatch(ctx, t, created); err != nil {
		return nil, err
	}

	if err := s.commit(ctx, t, created); err != nil {
		return nil, errors.Wrap(err, "failed to commit transition")
	}

	return t, nil
}

func (s *conversationService) dispatch(ctx context.Context, t *transition, created bool) error {
	if created {
		t.reply("Welcome to Bazaar!")

		return t.enter(ctx, entity.FlowOnboarding, entity.StepAskName)
	}

	// Global escape: "0" always returns to the main menu, from any state.
	if t.input == "0" {
		return t.reset(ctx, entity.FlowMenu, entity.StepRoot)
	}

	spec, ok := s.steps[t.customer.Session.Key()]
	if !ok {
		s.logger.WarnContext(ctx, "session parked at unknown step",
			slog.String("flow", string(t.customer.Session.Flow)),
			slog.String("step", string(t.customer.Session.Step)))
		t.reply("Let's start over from the main menu.")

		return t.reset(ctx, entity.FlowMenu, entity.StepRoot)
	}

	return spec.handle(ctx, t)
}

// linkReferralFromFirstMessage checks whether a brand-new customer's first
// message is a referral invite payload and, if so, links them to the
// referrer. A broken or self-referring invite is ignored; onboarding
// continues either way.
func (s *conversationService) linkReferralFromFirstMessage(ctx context.Context, t *transition) error {
	referrerPhone, err := s.qrcodes.ParseReferralQR(t.input)
	if err != nil || referrerPhone == "" {
		return nil
	}

	if err := s.referrals.RegisterReferral(ctx, referrerPhone, t.customer, t.now); err != nil {
		s.logger.WarnContext(ctx, "failed to register referral",
			slog.String("referrer", referrerPhone),
			slog.Any("error", err))

		return nil
	}

	t.reply("You joined through a friend's invite. A welcome discount is waiting for you!")

	return nil
}

// commit persists the whole transition atomically: the aggregate plus any
// repository writes the handlers queued (e.g. a complaint). A failed commit
// leaves the stored state exactly as it was before the message.
func (s *conversationService) commit(ctx context.Context, t *transition, created bool) error {
	return s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		for _, op := range t.txOps {
			if err := op(ctx, txRepoFactory); err != nil {
				return err
			}
		}

		customerRepo := txRepoFactory.NewCustomerRepository()
		if created {
			return customerRepo.Create(ctx, t.customer)
		}

		return customerRepo.Save(ctx, t.customer)
	})
}

// deliver runs the post-commit side effects and sends the replies. Failures
// are logged, never propagated: the transition is already committed and the
// gateway owns delivery retries.
func (s *conversationService) deliver(ctx context.Context, t *transition) {
	for _, effect := range t.postCommit {
		effect(ctx)
	}

	for _, reply := range t.replies {
		if err := s.gateway.Send(ctx, reply); err != nil {
			s.logger.ErrorContext(ctx, "failed to send reply",
				slog.String("recipient", reply.Recipient),
				slog.Any("error", err))
		}
	}
}

// newStepTable wires every conversation state to its prompt and handler.
func (s *conversationService) newStepTable() map[entity.StepKey]stepSpec {
	return map[entity.StepKey]stepSpec{
		{Flow: entity.FlowOnboarding, Step: entity.StepAskName}: {prompt: s.promptAskName, handle: s.handleAskName},

		{Flow: entity.FlowMenu, Step: entity.StepRoot}: {prompt: s.promptMenu, handle: s.handleMenu},

		{Flow: entity.FlowShopping, Step: entity.StepChooseCategory}:    {prompt: s.promptChooseCategory, handle: s.handleChooseCategory},
		{Flow: entity.FlowShopping, Step: entity.StepChooseSubcategory}: {prompt: s.promptChooseSubcategory, handle: s.handleChooseSubcategory},
		{Flow: entity.FlowShopping, Step: entity.StepChooseProduct}:     {prompt: s.promptChooseProduct, handle: s.handleChooseProduct},
		{Flow: entity.FlowShopping, Step: entity.StepChooseVariant}:     {prompt: s.promptChooseVariant, handle: s.handleChooseVariant},
		{Flow: entity.FlowShopping, Step: entity.StepEnterQuantity}:     {prompt: s.promptEnterQuantity, handle: s.handleEnterQuantity},

		{Flow: entity.FlowCart, Step: entity.StepCartView}:   {prompt: s.promptCartView, handle: s.handleCartView},
		{Flow: entity.FlowCart, Step: entity.StepRemoveItem}: {prompt: s.promptRemoveItem, handle: s.handleRemoveItem},

		{Flow: entity.FlowCheckout, Step: entity.StepChooseDelivery}: {prompt: s.promptChooseDelivery, handle: s.handleChooseDelivery},
		{Flow: entity.FlowCheckout, Step: entity.StepChooseAddress}:  {prompt: s.promptChooseAddress, handle: s.handleChooseAddress},
		{Flow: entity.FlowCheckout, Step: entity.StepEnterAddress}:   {prompt: s.promptEnterAddress, handle: s.handleEnterAddress},
		{Flow: entity.FlowCheckout, Step: entity.StepChoosePayment}:  {prompt: s.promptChoosePayment, handle: s.handleChoosePayment},
		{Flow: entity.FlowCheckout, Step: entity.StepConfirmOrder}:   {prompt: s.promptConfirmOrder, handle: s.handleConfirmOrder},

		{Flow: entity.FlowDiscount, Step: entity.StepDiscountCategory}: {prompt: s.promptDiscountCategory, handle: s.handleDiscountCategory},
		{Flow: entity.FlowDiscount, Step: entity.StepDiscountProduct}:  {prompt: s.promptDiscountProduct, handle: s.handleDiscountProduct},
		{Flow: entity.FlowDiscount, Step: entity.StepDiscountQuantity}: {prompt: s.promptDiscountQuantity, handle: s.handleDiscountQuantity},

		{Flow: entity.FlowReferral, Step: entity.StepReferralRoot}: {prompt: s.promptReferralRoot, handle: s.handleReferralRoot},
		{Flow: entity.FlowReferral, Step: entity.StepAwaitVideo}:   {prompt: s.promptAwaitVideo, handle: s.handleAwaitVideo},

		{Flow: entity.FlowSupport, Step: entity.StepDescribeIssue}: {prompt: s.promptDescribeIssue, handle: s.handleDescribeIssue},

		{Flow: entity.FlowProfile, Step: entity.StepProfileRoot}: {prompt: s.promptProfileRoot, handle: s.handleProfileRoot},
		{Flow: entity.FlowProfile, Step: entity.StepEditName}:    {prompt: s.promptEditName, handle: s.handleEditName},
		{Flow: entity.FlowProfile, Step: entity.StepEditAddress}: {prompt: s.promptEditAddress, handle: s.handleEditAddress},
	}
}

// phonePrefixes maps dialing prefixes to ISO country codes, longest match
// first. Unknown prefixes yield an empty code, which the referral country
// policy rejects.
var phonePrefixes = []struct {
	prefix string
	code   string
}{
	{"+964", "IQ"},
	{"+966", "SA"},
	{"+971", "AE"},
	{"+90", "TR"},
	{"+93", "AF"},
	{"+98", "IR"},
	{"+44", "GB"},
	{"+1", "US"},
}

func countryCodeFromPhone(phone string) string {
	for _, p := range phonePrefixes {
		if strings.HasPrefix(phone, p.prefix) {
			return p.code
		}
	}

	return ""
}
