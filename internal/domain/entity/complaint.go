package entity

import (
	"time"

	"github.com/google/uuid"
)

// ComplaintStatus is the lifecycle state of a support complaint.
type ComplaintStatus string

const (
	ComplaintStatusOpen     ComplaintStatus = "open"
	ComplaintStatusResolved ComplaintStatus = "resolved"
)

// Complaint is a support issue captured through the support flow.
type Complaint struct {
	ID            uuid.UUID       `json:"id"`
	CustomerPhone string          `json:"customer_phone"`
	Text          string          `json:"text"`
	Status        ComplaintStatus `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	ResolvedAt    *time.Time      `json:"resolved_at,omitempty"`
}
