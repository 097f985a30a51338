package backend

import "go.uber.org/fx"

// Module provides the REST client and every backend-backed repository.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewAdminAuthRepository,
		NewStatsRepository,
		NewCategoryRepository,
		NewProductRepository,
		NewSellerRepository,
		NewBannerRepository,
		NewBlogRepository,
		NewWarehouseRepository,
		NewSupportTicketRepository,
	),
)
