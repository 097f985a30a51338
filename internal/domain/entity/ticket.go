package entity

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketClosed     TicketStatus = "closed"
	TicketResolved   TicketStatus = "resolved"
)

// IsValid checks if the status is a known value.
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketClosed, TicketResolved:
		return true
	default:
		return false
	}
}

// SupportTicket is a customer or seller request with its message thread.
type SupportTicket struct {
	ID             string           `json:"id"`
	Subject        string           `json:"subject"`
	Status         TicketStatus     `json:"status"`
	RequesterID    string           `json:"requester_id"`
	RequesterName  string           `json:"requester_name"`
	RequesterEmail string           `json:"requester_email"`
	Messages       []*TicketMessage `json:"messages"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// TicketMessage is one entry of a ticket thread.
type TicketMessage struct {
	ID         string    `json:"id"`
	SenderRole string    `json:"sender_role"`
	SenderName string    `json:"sender_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}
