package backend

import (
	"context"
	"net/http"
	"strings"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
)

type productRepository struct {
	client *Client
}

// NewProductRepository wraps the product catalogue and approval endpoints.
func NewProductRepository(client *Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (repo *productRepository) ListProducts(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Product], error) {
	var data productsPageDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/dashboard/products",
		Query:  listQuery(query.Page, query.Limit, query.Search, query.Status),
	}, &data); err != nil {
		return nil, err
	}

	return toPage(data.Products, data.Pagination, toProductDomain), nil
}

func (repo *productRepository) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	var data productDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/dashboard/products/{id}",
		Params: []string{id},
	}, &data); err != nil {
		return nil, err
	}

	return toProductDomain(&data), nil
}

func (repo *productRepository) DeleteProduct(ctx context.Context, id string) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodDelete,
		Route:  "/admin/dashboard/products/{id}",
		Params: []string{id},
	})
}

func (repo *productRepository) ListPendingProducts(ctx context.Context) ([]*entity.Product, error) {
	var data []*productDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/dashboard/pending-products",
	}, &data); err != nil {
		return nil, err
	}

	return mapSlice(data, toProductDomain), nil
}

func (repo *productRepository) ApproveProduct(ctx context.Context, id string) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPatch,
		Route:  "/admin/dashboard/pending-products/{id}/approve",
		Params: []string{id},
	})
}

func (repo *productRepository) RejectProduct(ctx context.Context, id, reason string) (string, error) {
	req := request{
		Method: http.MethodPatch,
		Route:  "/admin/dashboard/pending-products/{id}/reject",
		Params: []string{id},
	}
	if reason = strings.TrimSpace(reason); reason != "" {
		req.Body = jsonBody(map[string]string{"reason": reason})
	}

	return repo.client.mutate(ctx, req)
}
