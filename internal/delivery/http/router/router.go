// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/middleware"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/router/handler"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	DashboardHandler  *handler.DashboardHandler
	CategoryHandler   *handler.CategoryHandler
	ProductHandler    *handler.ProductHandler
	SellerHandler     *handler.SellerHandler
	ContentHandler    *handler.ContentHandler
	TicketHandler     *handler.TicketHandler
	SessionMiddleware *middleware.SessionMiddleware
	Metrics           *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up the login flow and the protected dashboard.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.GET("/health", handler.HealthCheck)
	if p.Metrics.Enabled() {
		e.GET("/metrics", echo.WrapHandler(p.Metrics.Handler()))
	}

	// Login steps are for guests only
	e.GET(middleware.LoginPath, p.AuthHandler.LoginPage, p.SessionMiddleware.GuestOnly)
	e.POST(middleware.LoginPath, p.AuthHandler.Login, p.SessionMiddleware.GuestOnly)
	e.POST(middleware.LoginPath+"/verify", p.AuthHandler.VerifyTwoFactor, p.SessionMiddleware.GuestOnly)
	e.POST("/logout", p.AuthHandler.Logout)

	dashboard := e.Group(middleware.DashboardPath, p.SessionMiddleware.Protect)
	{
		dashboard.GET("", p.DashboardHandler.Overview)
		dashboard.GET("/audit", p.DashboardHandler.RecentDecisions)
		dashboard.GET("/profile", p.AuthHandler.Profile)
		dashboard.GET("/security/two-factor/qr", p.AuthHandler.TwoFactorQR)
	}

	categories := dashboard.Group("/categories")
	{
		categories.GET("", p.CategoryHandler.ListCategories)
		categories.POST("", p.CategoryHandler.CreateCategory)
		categories.POST("/bulk-delete", p.CategoryHandler.BulkDeleteCategories)
		categories.GET("/:id", p.CategoryHandler.GetCategory)
		categories.PUT("/:id", p.CategoryHandler.UpdateCategory)
		categories.DELETE("/:id", p.CategoryHandler.DeleteCategory)
		categories.GET("/:id/subcategories", p.CategoryHandler.ListSubCategories)
		categories.POST("/:id/subcategories", p.CategoryHandler.CreateSubCategory)
	}

	subCategories := dashboard.Group("/subcategories")
	{
		subCategories.PUT("/:id", p.CategoryHandler.UpdateSubCategory)
		subCategories.DELETE("/:id", p.CategoryHandler.DeleteSubCategory)
	}

	products := dashboard.Group("/products")
	{
		products.GET("", p.ProductHandler.ListProducts)
		products.GET("/pending", p.ProductHandler.PendingProducts)
		products.POST("/pending/:id/approve", p.ProductHandler.ApproveProduct)
		products.POST("/pending/:id/reject", p.ProductHandler.RejectProduct)
		products.GET("/:id", p.ProductHandler.GetProduct)
		products.DELETE("/:id", p.ProductHandler.DeleteProduct)
	}

	sellers := dashboard.Group("/sellers")
	{
		sellers.GET("", p.SellerHandler.ListSellers)
		sellers.GET("/pending", p.SellerHandler.PendingSellers)
		sellers.POST("/pending/:id/approve", p.SellerHandler.ApproveSeller)
		sellers.POST("/pending/:id/reject", p.SellerHandler.RejectSeller)
		sellers.GET("/:id", p.SellerHandler.GetSeller)
		sellers.PATCH("/:id/status", p.SellerHandler.UpdateSellerStatus)
	}

	banners := dashboard.Group("/banners")
	{
		banners.GET("", p.ContentHandler.BannerTabs)
		banners.POST("", p.ContentHandler.CreateBanner)
		banners.DELETE("/:id", p.ContentHandler.DeleteBanner)
	}

	blogs := dashboard.Group("/blogs")
	{
		blogs.GET("", p.ContentHandler.ListBlogs)
		blogs.POST("", p.ContentHandler.CreateBlog)
		blogs.GET("/:id", p.ContentHandler.GetBlog)
		blogs.PUT("/:id", p.ContentHandler.UpdateBlog)
		blogs.DELETE("/:id", p.ContentHandler.DeleteBlog)
	}

	warehouses := dashboard.Group("/warehouses")
	{
		warehouses.GET("", p.ContentHandler.ListWarehouses)
		warehouses.POST("", p.ContentHandler.CreateWarehouse)
		warehouses.GET("/:id", p.ContentHandler.GetWarehouse)
		warehouses.PUT("/:id", p.ContentHandler.UpdateWarehouse)
		warehouses.DELETE("/:id", p.ContentHandler.DeleteWarehouse)
	}

	tickets := dashboard.Group("/tickets")
	{
		tickets.GET("", p.TicketHandler.ListTickets)
		tickets.GET("/:id", p.TicketHandler.GetTicket)
		tickets.POST("/:id/reply", p.TicketHandler.ReplyTicket)
		tickets.PATCH("/:id/status", p.TicketHandler.UpdateTicketStatus)
	}
}
