package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/cookie"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/middleware"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/http/router/handler"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/service"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/infra/auth"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/infra/backend"
	logs "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/infra/log"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/infra/metrics"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/infra/persistence/postgres"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/infra/pubsub"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/infra/qrcode"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase/impl"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/validation"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			validation.New,
			metrics.New,
			func(m *metrics.Metrics) service.DecisionObserver { return m },
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		backend.Module,
		fx.Provide(
			postgres.NewAuditRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewQRCodeServiceFromConfig,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewModerationRecorder,
			impl.NewAuthService,
			impl.NewDashboardService,
			impl.NewCategoryService,
			impl.NewProductService,
			impl.NewSellerService,
			impl.NewBannerService,
			impl.NewBlogService,
			impl.NewWarehouseService,
			impl.NewSupportTicketService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			cookie.NewJar,
			middleware.NewErrorMiddleware,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewDashboardHandler,
			handler.NewCategoryHandler,
			handler.NewProductHandler,
			handler.NewSellerHandler,
			handler.NewContentHandler,
			handler.NewTicketHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
