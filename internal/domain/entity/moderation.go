package entity

import (
	"time"

	"github.com/google/uuid"
)

// ModerationSubject names what kind of entity a decision was taken on.
type ModerationSubject string

const (
	SubjectSeller      ModerationSubject = "seller"
	SubjectProduct     ModerationSubject = "product"
	SubjectCategory    ModerationSubject = "category"
	SubjectSubCategory ModerationSubject = "subcategory"
	SubjectBanner      ModerationSubject = "banner"
	SubjectBlog        ModerationSubject = "blog"
	SubjectWarehouse   ModerationSubject = "warehouse"
	SubjectTicket      ModerationSubject = "support_ticket"
)

// ModerationAction is the decision recorded in the audit trail.
type ModerationAction string

const (
	ActionApprove      ModerationAction = "approve"
	ActionReject       ModerationAction = "reject"
	ActionDelete       ModerationAction = "delete"
	ActionStatusChange ModerationAction = "status_change"
)

// ModerationRecord is one entry of the console's audit trail.
type ModerationRecord struct {
	ID         uuid.UUID         `json:"id"`
	Subject    ModerationSubject `json:"subject"`
	EntityID   string            `json:"entity_id"`
	Action     ModerationAction  `json:"action"`
	Reason     string            `json:"reason,omitempty"`
	Message    string            `json:"message"`
	AdminID    string            `json:"admin_id"`
	AdminEmail string            `json:"admin_email"`
	RequestID  string            `json:"request_id,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}
