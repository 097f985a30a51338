package backend

import (
	"context"
	"net/http"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
)

type categoryRepository struct {
	client *Client
}

// NewCategoryRepository wraps the category and subcategory endpoints.
func NewCategoryRepository(client *Client) repository.CategoryRepository {
	return &categoryRepository{client: client}
}

func (repo *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var data []*categoryDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/general/categories",
	}, &data); err != nil {
		return nil, err
	}

	return mapSlice(data, toCategoryDomain), nil
}

func (repo *categoryRepository) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	var data categoryDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/general/categories/{id}",
		Params: []string{id},
	}, &data); err != nil {
		return nil, err
	}

	return toCategoryDomain(&data), nil
}

func (repo *categoryRepository) CreateCategory(ctx context.Context, draft *entity.CategoryDraft) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPost,
		Route:  "/admin/dashboard/categories/create-categories",
		Body:   multipartBody(categoryFields(draft), draft.Image),
	})
}

func (repo *categoryRepository) UpdateCategory(ctx context.Context, id string, draft *entity.CategoryDraft) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPut,
		Route:  "/admin/dashboard/categories/{id}",
		Params: []string{id},
		Body:   multipartBody(categoryFields(draft), draft.Image),
	})
}

func (repo *categoryRepository) DeleteCategory(ctx context.Context, id string) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodDelete,
		Route:  "/admin/dashboard/categories/{id}",
		Params: []string{id},
	})
}

func (repo *categoryRepository) BulkDeleteCategories(ctx context.Context, ids []string) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodDelete,
		Route:  "/admin/dashboard/categories/bulk-delete",
		Body:   jsonBody(map[string][]string{"ids": ids}),
	})
}

func (repo *categoryRepository) ListSubCategories(ctx context.Context, categoryID string) ([]*entity.SubCategory, error) {
	var data []*subCategoryDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/general/categories/{id}/subcategories",
		Params: []string{categoryID},
	}, &data); err != nil {
		return nil, err
	}

	subCategories := mapSlice(data, toSubCategoryDomain)
	for _, sub := range subCategories {
		if sub.CategoryID == "" {
			sub.CategoryID = categoryID
		}
	}

	return subCategories, nil
}

func (repo *categoryRepository) CreateSubCategory(ctx context.Context, draft *entity.SubCategoryDraft) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPost,
		Route:  "/admin/dashboard/subcategories/create",
		Body:   multipartBody(subCategoryFields(draft), draft.Image),
	})
}

func (repo *categoryRepository) UpdateSubCategory(ctx context.Context, id string, draft *entity.SubCategoryDraft) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPut,
		Route:  "/admin/dashboard/subcategories/{id}",
		Params: []string{id},
		Body:   multipartBody(subCategoryFields(draft), draft.Image),
	})
}

func (repo *categoryRepository) DeleteSubCategory(ctx context.Context, id string) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodDelete,
		Route:  "/admin/dashboard/subcategories/{id}",
		Params: []string{id},
	})
}

func categoryFields(draft *entity.CategoryDraft) map[string]string {
	return map[string]string{
		"name":        draft.Name,
		"description": draft.Description,
	}
}

func subCategoryFields(draft *entity.SubCategoryDraft) map[string]string {
	return map[string]string{
		"category":    draft.CategoryID,
		"name":        draft.Name,
		"description": draft.Description,
	}
}
