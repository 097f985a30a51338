package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/cookie"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/middleware"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/router"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/router/handler"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	mockUC "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockAuthUsecase) {
	t.Helper()

	cfg := &config.Config{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	jar := cookie.NewJar(cfg)
	authUC := mockUC.NewMockAuthUsecase(t)

	params := HTTPParams{
		Config:          cfg,
		Logger:          logger,
		ErrorMiddleware: middleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: authUC, Jar: jar, Logger: logger}),
			DashboardHandler: handler.NewDashboardHandler(handler.DashboardHandlerParams{
				DashboardUC: mockUC.NewMockDashboardUsecase(t),
			}),
			CategoryHandler: handler.NewCategoryHandler(handler.CategoryHandlerParams{
				CategoryUC: mockUC.NewMockCategoryUsecase(t),
				Config:     cfg,
			}),
			ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: mockUC.NewMockProductUsecase(t)}),
			SellerHandler:  handler.NewSellerHandler(handler.SellerHandlerParams{SellerUC: mockUC.NewMockSellerUsecase(t)}),
			ContentHandler: handler.NewContentHandler(handler.ContentHandlerParams{
				BannerUC:    mockUC.NewMockBannerUsecase(t),
				BlogUC:      mockUC.NewMockBlogUsecase(t),
				WarehouseUC: mockUC.NewMockWarehouseUsecase(t),
				Config:      cfg,
			}),
			TicketHandler: handler.NewTicketHandler(handler.TicketHandlerParams{TicketUC: mockUC.NewMockSupportTicketUsecase(t)}),
			SessionMiddleware: middleware.NewSessionMiddleware(middleware.SessionMiddlewareParams{
				AuthUC: authUC,
				Jar:    jar,
				Logger: logger,
			}),
		},
	}

	return newEcho(params), authUC
}

func TestDashboardRoutes_RedirectWithoutSession(t *testing.T) {
	e, authUC := newTestEcho(t)
	authUC.EXPECT().Authenticate("").Return(nil, domainerrors.ErrUnauthorized)

	var checked int
	for _, route := range e.Routes() {
		if !strings.HasPrefix(route.Path, middleware.DashboardPath) || strings.Contains(route.Path, "*") {
			continue
		}
		switch route.Method {
		case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			continue
		}
		checked++

		path := strings.ReplaceAll(route.Path, ":id", "x-1")
		t.Run(route.Method+" "+route.Path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(route.Method, path, nil))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, middleware.LoginPath, rec.Header().Get(echo.HeaderLocation))
		})
	}

	require.Greater(t, checked, 30)
}

func TestHealthAndRequestID(t *testing.T) {
	e, _ := newTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-Id"))
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}
