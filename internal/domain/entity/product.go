package entity

import "time"

// ApprovalStatus is the moderation state of a product.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// IsValid checks if the status is a known value.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

// Product is a seller listing awaiting or past moderation.
type Product struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Price           float64        `json:"price"`
	DiscountPrice   float64        `json:"discount_price"`
	Stock           int            `json:"stock"`
	Images          []string       `json:"images"`
	Status          ApprovalStatus `json:"status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	SellerID        string         `json:"seller_id"`
	SellerName      string         `json:"seller_name"`
	CategoryID      string         `json:"category_id"`
	CategoryName    string         `json:"category_name"`
	CreatedAt       time.Time      `json:"created_at"`
}

// EntityID implements Identifiable.
func (p *Product) EntityID() string {
	return p.ID
}
