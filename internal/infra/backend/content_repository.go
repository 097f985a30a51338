package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
)

type bannerRepository struct {
	client *Client
}

// NewBannerRepository wraps the banner endpoints.
func NewBannerRepository(client *Client) repository.BannerRepository {
	return &bannerRepository{client: client}
}

func (repo *bannerRepository) ListBanners(ctx context.Context, bannerType entity.BannerType) ([]*entity.Banner, error) {
	req := request{
		Method: http.MethodGet,
		Route:  "/admin/dashboard/banners",
	}
	if bannerType != "" {
		req.Query = url.Values{"type": []string{string(bannerType)}}
	}

	var data []*bannerDTO
	if _, err := repo.client.do(ctx, req, &data); err != nil {
		return nil, err
	}

	return mapSlice(data, toBannerDomain), nil
}

func (repo *bannerRepository) CreateBanner(ctx context.Context, draft *entity.BannerDraft) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPost,
		Route:  "/admin/dashboard/banners/create",
		Body: multipartBody(map[string]string{
			"type":  string(draft.Type),
			"title": draft.Title,
		}, draft.Image),
	})
}

func (repo *bannerRepository) DeleteBanner(ctx context.Context, id string) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodDelete,
		Route:  "/admin/dashboard/banners/{id}",
		Params: []string{id},
	})
}

type blogRepository struct {
	client *Client
}

// NewBlogRepository wraps the blog endpoints.
func NewBlogRepository(client *Client) repository.BlogRepository {
	return &blogRepository{client: client}
}

func (repo *blogRepository) ListBlogs(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Blog], error) {
	var data blogsPageDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/general/blogs",
		Query:  listQuery(query.Page, query.Limit, query.Search, ""),
	}, &data); err != nil {
		return nil, err
	}

	return toPage(data.Blogs, data.Pagination, toBlogDomain), nil
}

func (repo *blogRepository) GetBlog(ctx context.Context, id string) (*entity.Blog, error) {
	var data blogDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/general/blogs/{id}",
		Params: []string{id},
	}, &data); err != nil {
		return nil, err
	}

	return toBlogDomain(&data), nil
}

func (repo *blogRepository) CreateBlog(ctx context.Context, draft *entity.BlogDraft) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPost,
		Route:  "/admin/dashboard/blogs/create",
		Body:   multipartBody(blogFields(draft), draft.Image),
	})
}

func (repo *blogRepository) UpdateBlog(ctx context.Context, id string, draft *entity.BlogDraft) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPut,
		Route:  "/admin/dashboard/blogs/{id}",
		Params: []string{id},
		Body:   multipartBody(blogFields(draft), draft.Image),
	})
}

func (repo *blogRepository) DeleteBlog(ctx context.Context, id string) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodDelete,
		Route:  "/admin/dashboard/blogs/{id}",
		Params: []string{id},
	})
}

func blogFields(draft *entity.BlogDraft) map[string]string {
	return map[string]string{
		"title":       draft.Title,
		"description": draft.Description,
	}
}

type warehouseRepository struct {
	client *Client
}

// NewWarehouseRepository wraps the warehouse endpoints.
func NewWarehouseRepository(client *Client) repository.WarehouseRepository {
	return &warehouseRepository{client: client}
}

func (repo *warehouseRepository) ListWarehouses(ctx context.Context) ([]*entity.Warehouse, error) {
	var data []*warehouseDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/dashboard/warehouses",
	}, &data); err != nil {
		return nil, err
	}

	return mapSlice(data, toWarehouseDomain), nil
}

func (repo *warehouseRepository) GetWarehouse(ctx context.Context, id string) (*entity.Warehouse, error) {
	var data warehouseDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/dashboard/warehouses/{id}",
		Params: []string{id},
	}, &data); err != nil {
		return nil, err
	}

	return toWarehouseDomain(&data), nil
}

func (repo *warehouseRepository) CreateWarehouse(ctx context.Context, draft *entity.WarehouseDraft) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPost,
		Route:  "/admin/dashboard/warehouses",
		Body:   jsonBody(fromWarehouseDraft(draft)),
	})
}

func (repo *warehouseRepository) UpdateWarehouse(ctx context.Context, id string, draft *entity.WarehouseDraft) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPut,
		Route:  "/admin/dashboard/warehouses/{id}",
		Params: []string{id},
		Body:   jsonBody(fromWarehouseDraft(draft)),
	})
}

func (repo *warehouseRepository) DeleteWarehouse(ctx context.Context, id string) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodDelete,
		Route:  "/admin/dashboard/warehouses/{id}",
		Params: []string{id},
	})
}
