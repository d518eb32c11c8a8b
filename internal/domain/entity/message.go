package entity

import "time"

// InboundMessage is the normalized envelope of one webhook delivery. The
// engine is agnostic to the concrete gateway wire format; only these four
// fields matter.
type InboundMessage struct {
	Sender            string    `json:"sender"`                        // Phone number of the customer.
	Body              string    `json:"body"`                          // Text content, empty for pure media messages.
	MediaRef          string    `json:"media_ref,omitempty"`           // Gateway reference to attached media.
	ProviderMessageID string    `json:"provider_message_id,omitempty"` // May be absent on some gateways.
	Timestamp         time.Time `json:"timestamp"`
}

// OutboundMessage is one reply emitted by a transition. A transition may
// emit zero or more of these.
type OutboundMessage struct {
	Recipient string `json:"recipient"`
	Text      string `json:"text,omitempty"`
	MediaRef  string `json:"media_ref,omitempty"`
	Caption   string `json:"caption,omitempty"`
}
