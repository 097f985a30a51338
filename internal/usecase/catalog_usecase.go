package usecase

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
)

// Decision is the outcome of an approve or reject: the backend's message and the queue without the item.
type Decision[T entity.Identifiable] struct {
	Message string                  `json:"message"`
	Queue   *entity.PendingQueue[T] `json:"queue"`
}

// CategoryUsecase manages categories and their subcategories.
type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id string) (*entity.Category, error)
	CreateCategory(ctx context.Context, draft *entity.CategoryDraft) (string, error)
	// UpdateCategory keeps the existing image when draft.Image is nil.
	UpdateCategory(ctx context.Context, id string, draft *entity.CategoryDraft) (string, error)
	DeleteCategory(ctx context.Context, id string, confirmation entity.Confirmation) (string, error)
	BulkDeleteCategories(ctx context.Context, ids []string, confirmation entity.Confirmation) (string, error)

	ListSubCategories(ctx context.Context, categoryID string) ([]*entity.SubCategory, error)
	CreateSubCategory(ctx context.Context, draft *entity.SubCategoryDraft) (string, error)
	UpdateSubCategory(ctx context.Context, id string, draft *entity.SubCategoryDraft) (string, error)
	DeleteSubCategory(ctx context.Context, id string, confirmation entity.Confirmation) (string, error)
}

// ProductUsecase manages the product catalogue and its approval queue.
type ProductUsecase interface {
	ListProducts(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Product], error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string, confirmation entity.Confirmation) (string, error)

	PendingProducts(ctx context.Context) (*entity.PendingQueue[*entity.Product], error)
	ApproveProduct(ctx context.Context, id string) (*Decision[*entity.Product], error)
	// RejectProduct accepts an empty reason.
	RejectProduct(ctx context.Context, id, reason string) (*Decision[*entity.Product], error)
}

// SellerUsecase manages the seller directory and onboarding queue.
type SellerUsecase interface {
	ListSellers(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Seller], error)
	GetSeller(ctx context.Context, id string) (*entity.Seller, error)
	UpdateSellerStatus(ctx context.Context, id, status string) (string, error)

	PendingSellers(ctx context.Context) (*entity.PendingQueue[*entity.Seller], error)
	ApproveSeller(ctx context.Context, id string) (*Decision[*entity.Seller], error)
	// RejectSeller requires a reason of at least the configured length after trimming.
	RejectSeller(ctx context.Context, id, reason string) (*Decision[*entity.Seller], error)
}
