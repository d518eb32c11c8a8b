package entity

import "time"

// Flow names a sub-graph of conversation steps.
type Flow string

// Step names a single state within a flow.
type Step string

const (
	FlowOnboarding Flow = "onboarding"
	FlowMenu       Flow = "menu"
	FlowShopping   Flow = "shopping"
	FlowCart       Flow = "cart"
	FlowCheckout   Flow = "checkout"
	FlowDiscount   Flow = "discount"
	FlowReferral   Flow = "referral"
	FlowSupport    Flow = "support"
	FlowProfile    Flow = "profile"
)

const (
	// Onboarding
	StepAskName Step = "ask_name"

	// Menu
	StepRoot Step = "root"

	// Shopping
	StepChooseCategory    Step = "choose_category"
	StepChooseSubcategory Step = "choose_subcategory"
	StepChooseProduct     Step = "choose_product"
	StepChooseVariant     Step = "choose_variant"
	StepEnterQuantity     Step = "enter_quantity"

	// Cart
	StepCartView   Step = "view"
	StepRemoveItem Step = "remove_item"

	// Checkout
	StepChooseDelivery Step = "choose_delivery"
	StepChooseAddress  Step = "choose_address"
	StepEnterAddress   Step = "enter_address"
	StepChoosePayment  Step = "choose_payment"
	StepConfirmOrder   Step = "confirm_order"

	// Discount
	StepDiscountCategory Step = "choose_offer"
	StepDiscountProduct  Step = "choose_discount_product"
	StepDiscountQuantity Step = "enter_discount_quantity"

	// Referral
	StepReferralRoot Step = "root_referral"
	StepAwaitVideo   Step = "await_video"

	// Support
	StepDescribeIssue Step = "describe_issue"

	// Profile
	StepProfileRoot Step = "root_profile"
	StepEditName    Step = "edit_name"
	StepEditAddress Step = "edit_address"
)

// StepKey is the composite state of the conversation state machine. Every
// transition handler is registered under exactly one key.
type StepKey struct {
	Flow Flow
	Step Step
}

// Session is the durable per-customer conversation state: current position
// in the state graph plus the scratch values a multi-message flow needs.
type Session struct {
	Flow Flow `json:"flow"`
	Step Step `json:"step"`

	// OptionIDs snapshots the entity ids behind the numbered options of the
	// last prompt, so a numeric reply resolves against what the customer
	// actually saw even if the catalog changed in between.
	OptionIDs []string `json:"option_ids,omitempty"`

	SelectedCategoryID string `json:"selected_category_id,omitempty"`
	SelectedProductID  string `json:"selected_product_id,omitempty"`
	SelectedVariant    string `json:"selected_variant,omitempty"`
	SelectedDelivery   string `json:"selected_delivery,omitempty"`
	SelectedPayment    string `json:"selected_payment,omitempty"`

	// ActiveOffer is the discount category being browsed in the discount flow.
	ActiveOffer DiscountCategory `json:"active_offer,omitempty"`

	// PendingOrderID is assigned when the checkout confirmation step is
	// entered, so a replayed confirmation commits the same order exactly once.
	PendingOrderID string `json:"pending_order_id,omitempty"`

	// PendingComplaintID serves the same purpose for complaint submission.
	PendingComplaintID string `json:"pending_complaint_id,omitempty"`

	LastInboundAt time.Time `json:"last_inbound_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// ReminderSentAt marks the last abandoned-cart reminder, so the sweep
	// does not nag on every pass.
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`
}

// NewSession returns a session parked at the given step.
func NewSession(flow Flow, step Step, now time.Time) Session {
	return Session{
		Flow:      flow,
		Step:      step,
		UpdatedAt: now,
	}
}

// Key returns the composite state key.
func (s *Session) Key() StepKey {
	return StepKey{Flow: s.Flow, Step: s.Step}
}

// MoveTo advances the session to another step, keeping scratch state.
func (s *Session) MoveTo(flow Flow, step Step, now time.Time) {
	s.Flow = flow
	s.Step = step
	s.UpdatedAt = now
}

// ResetTo advances the session and drops all scratch state. Used for
// cross-flow transitions such as the global escape to the main menu.
func (s *Session) ResetTo(flow Flow, step Step, now time.Time) {
	*s = Session{
		Flow:           flow,
		Step:           step,
		LastInboundAt:  s.LastInboundAt,
		ReminderSentAt: s.ReminderSentAt,
		UpdatedAt:      now,
	}
}
