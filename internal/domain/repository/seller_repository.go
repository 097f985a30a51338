package repository

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
)

// SellerRepository defines the seller directory and onboarding endpoints.
type SellerRepository interface {
	ListSellers(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Seller], error)
	GetSeller(ctx context.Context, id string) (*entity.Seller, error)
	UpdateSellerStatus(ctx context.Context, id string, status entity.SellerStatus) (string, error)

	ListPendingSellers(ctx context.Context) ([]*entity.Seller, error)
	ApproveSeller(ctx context.Context, id string) (string, error)
	RejectSeller(ctx context.Context, id, reason string) (string, error)
}
