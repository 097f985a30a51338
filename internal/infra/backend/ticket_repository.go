package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
)

type supportTicketRepository struct {
	client *Client
}

// NewSupportTicketRepository wraps the support desk endpoints.
func NewSupportTicketRepository(client *Client) repository.SupportTicketRepository {
	return &supportTicketRepository{client: client}
}

func (repo *supportTicketRepository) ListTickets(ctx context.Context, status entity.TicketStatus) ([]*entity.SupportTicket, error) {
	req := request{
		Method: http.MethodGet,
		Route:  "/admin/dashboard/support-tickets",
	}
	if status != "" {
		req.Query = url.Values{"status": []string{string(status)}}
	}

	var data []*ticketDTO
	if _, err := repo.client.do(ctx, req, &data); err != nil {
		return nil, err
	}

	return mapSlice(data, toTicketDomain), nil
}

func (repo *supportTicketRepository) GetTicket(ctx context.Context, id string) (*entity.SupportTicket, error) {
	var data ticketDTO
	if _, err := repo.client.do(ctx, request{
		Method: http.MethodGet,
		Route:  "/admin/dashboard/support-tickets/{id}",
		Params: []string{id},
	}, &data); err != nil {
		return nil, err
	}

	return toTicketDomain(&data), nil
}

func (repo *supportTicketRepository) ReplyTicket(ctx context.Context, id, message string) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPost,
		Route:  "/admin/dashboard/support-tickets/{id}/reply",
		Params: []string{id},
		Body:   jsonBody(map[string]string{"message": message}),
	})
}

func (repo *supportTicketRepository) UpdateTicketStatus(ctx context.Context, id string, status entity.TicketStatus) (string, error) {
	return repo.client.mutate(ctx, request{
		Method: http.MethodPatch,
		Route:  "/admin/dashboard/support-tickets/{id}/status",
		Params: []string{id},
		Body:   jsonBody(map[string]string{"status": string(status)}),
	})
}
