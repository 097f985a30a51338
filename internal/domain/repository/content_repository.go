package repository

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
)

// BannerRepository defines the banner endpoints.
type BannerRepository interface {
	// ListBanners returns every banner, or those of one type when bannerType is set.
	ListBanners(ctx context.Context, bannerType entity.BannerType) ([]*entity.Banner, error)
	CreateBanner(ctx context.Context, draft *entity.BannerDraft) (string, error)
	DeleteBanner(ctx context.Context, id string) (string, error)
}

// BlogRepository defines the blog endpoints.
type BlogRepository interface {
	ListBlogs(ctx context.Context, query entity.ListQuery) (*entity.Page[*entity.Blog], error)
	GetBlog(ctx context.Context, id string) (*entity.Blog, error)
	CreateBlog(ctx context.Context, draft *entity.BlogDraft) (string, error)
	UpdateBlog(ctx context.Context, id string, draft *entity.BlogDraft) (string, error)
	DeleteBlog(ctx context.Context, id string) (string, error)
}

// WarehouseRepository defines the warehouse endpoints.
type WarehouseRepository interface {
	ListWarehouses(ctx context.Context) ([]*entity.Warehouse, error)
	GetWarehouse(ctx context.Context, id string) (*entity.Warehouse, error)
	CreateWarehouse(ctx context.Context, draft *entity.WarehouseDraft) (string, error)
	UpdateWarehouse(ctx context.Context, id string, draft *entity.WarehouseDraft) (string, error)
	DeleteWarehouse(ctx context.Context, id string) (string, error)
}

// SupportTicketRepository defines the support desk endpoints.
type SupportTicketRepository interface {
	// ListTickets returns every ticket, or those in one status when status is set.
	ListTickets(ctx context.Context, status entity.TicketStatus) ([]*entity.SupportTicket, error)
	GetTicket(ctx context.Context, id string) (*entity.SupportTicket, error)
	ReplyTicket(ctx context.Context, id, message string) (string, error)
	UpdateTicketStatus(ctx context.Context, id string, status entity.TicketStatus) (string, error)
}
