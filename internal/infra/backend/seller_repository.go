package backend

import (
	"context"
	"net/http"
	"strings"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
)

type sellerRepository struct {
	client *Client
}

// NewSellerRepository wraps the seller directory and onboarding endpoints.
func NewSellerRepository(client *Client) repository.SellerRepository {
	return &sellerRepository{client: client}
}

func (repo *sellerRepository) ListSellers(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Seller], error) {
	var data sellersPageDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/dashboard/sellers",
		Query:  listQuery(query.Page, query.Limit, query.Search, query.Status),
	}, &data); err != nil {
		return nil, err
	}

	return toPage(data.Sellers, data.Pagination, toSellerDomain), nil
}

func (repo *sellerRepository) GetSeller(ctx context.Context, id string) (*entity.Seller, error) {
	var data sellerDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/dashboard/sellers/{id}",
		Params: []string{id},
	}, &data); err != nil {
		return nil, err
	}

	return toSellerDomain(&data), nil
}

func (repo *sellerRepository) UpdateSellerStatus(ctx context.Context, id string, status entity.SellerStatus) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPatch,
		Route:  "/admin/dashboard/sellers/{id}/status",
		Params: []string{id},
		Body:   jsonBody(map[string]string{"status": string(status)}),
	})
}

func (repo *sellerRepository) ListPendingSellers(ctx context.Context) ([]*entity.Seller, error) {
	var data []*sellerDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/dashboard/pending-seller",
	}, &data); err != nil {
		return nil, err
	}

	return mapSlice(data, toSellerDomain), nil
}

func (repo *sellerRepository) ApproveSeller(ctx context.Context, id string) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPatch,
		Route:  "/admin/dashboard/pending-seller/{id}/approve",
		Params: []string{id},
	})
}

func (repo *sellerRepository) RejectSeller(ctx context.Context, id, reason string) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPatch,
		Route:  "/admin/dashboard/pending-seller/{id}/reject",
		Params: []string{id},
		Body:   jsonBody(map[string]string{"reason": strings.TrimSpace(reason)}),
	})
}
