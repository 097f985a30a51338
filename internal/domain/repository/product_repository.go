package repository

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
)

// ProductRepository defines the product catalogue and approval endpoints.
type ProductRepository interface {
	ListProducts(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Product], error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) (string, error)

	ListPendingProducts(ctx context.Context) ([]*entity.Product, error)
	ApproveProduct(ctx context.Context, id string) (string, error)
	// RejectProduct forwards reason only when it is non-empty.
	RejectProduct(ctx context.Context, id, reason string) (string, error)
}
