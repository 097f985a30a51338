package usecase

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
)

// BannerUsecase manages the per-type banner tabs.
type BannerUsecase interface {
	// Tabs returns one tab per banner type in display order.
	Tabs(ctx context.Context) ([]*entity.BannerTab, error)
	// CreateBanner is refused once the tab of draft.Type is full.
	CreateBanner(ctx context.Context, draft *entity.BannerDraft) (string, error)
	DeleteBanner(ctx context.Context, id string, confirmation entity.Confirmation) (string, error)
}

// BlogUsecase manages blog posts.
type BlogUsecase interface {
	ListBlogs(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Blog], error)
	GetBlog(ctx context.Context, id string) (*entity.Blog, error)
	CreateBlog(ctx context.Context, draft *entity.BlogDraft) (string, error)
	UpdateBlog(ctx context.Context, id string, draft *entity.BlogDraft) (string, error)
	DeleteBlog(ctx context.Context, id string, confirmation entity.Confirmation) (string, error)
}

// WarehouseUsecase manages fulfilment locations.
type WarehouseUsecase interface {
	ListWarehouses(ctx context.Context) ([]*entity.Warehouse, error)
	GetWarehouse(ctx context.Context, id string) (*entity.Warehouse, error)
	CreateWarehouse(ctx context.Context, draft *entity.WarehouseDraft) (string, error)
	UpdateWarehouse(ctx context.Context, id string, draft *entity.WarehouseDraft) (string, error)
	DeleteWarehouse(ctx context.Context, id string, confirmation entity.Confirmation) (string, error)
}

// SupportTicketUsecase manages the support desk.
type SupportTicketUsecase interface {
	// ListTickets filters by status when status is non-empty.
	ListTickets(ctx context.Context, status string) ([]*entity.SupportTicket, error)
	GetTicket(ctx context.Context, id string) (*entity.SupportTicket, error)
	ReplyTicket(ctx context.Context, id, message string) (string, error)
	UpdateTicketStatus(ctx context.Context, id, status string) (string, error)
}
