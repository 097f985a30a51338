package repository

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
)

// CategoryRepository defines the category and subcategory endpoints.
// Mutations return the backend's message.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id string) (*entity.Category, error)
	CreateCategory(ctx context.Context, draft *entity.CategoryDraft) (string, error)
	UpdateCategory(ctx context.Context, id string, draft *entity.CategoryDraft) (string, error)
	DeleteCategory(ctx context.Context, id string) (string, error)
	BulkDeleteCategories(ctx context.Context, ids []string) (string, error)

	ListSubCategories(ctx context.Context, categoryID string) ([]*entity.SubCategory, error)
	CreateSubCategory(ctx context.Context, draft *entity.SubCategoryDraft) (string, error)
	UpdateSubCategory(ctx context.Context, id string, draft *entity.SubCategoryDraft) (string, error)
	DeleteSubCategory(ctx context.Context, id string) (string, error)
}
