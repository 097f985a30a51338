package entity

import "time"

// SellerStatus is the account state an admin can put a seller into.
type SellerStatus string

const (
	SellerActive    SellerStatus = "active"
	SellerSuspended SellerStatus = "suspended"
	SellerDeactive  SellerStatus = "deactive"
)

// IsValid checks if the status is a known value.
func (s SellerStatus) IsValid() bool {
	switch s {
	case SellerActive, SellerSuspended, SellerDeactive:
		return true
	default:
		return false
	}
}

// Seller is a merchant account going through onboarding.
type Seller struct {
	ID              string       `json:"id"`
	ShopName        string       `json:"shop_name"`
	OwnerName       string       `json:"owner_name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	BusinessAddress string       `json:"business_address"`
	IsVerified      bool         `json:"is_verified"`
	IsApproved      bool         `json:"is_approved"`
	Status          SellerStatus `json:"status"`
	MembershipStart *time.Time   `json:"membership_start,omitempty"`
	MembershipEnd   *time.Time   `json:"membership_end,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

// EntityID implements Identifiable.
func (s *Seller) EntityID() string {
	return s.ID
}
