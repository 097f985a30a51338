package impl

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type dashboardService struct {
	statsRepo   repository.StatsRepository
	sellerRepo  repository.SellerRepository
	productRepo repository.ProductRepository
	auditRepo   repository.AuditRepository
	listLimit   int
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	statsRepo repository.StatsRepository,
	sellerRepo repository.SellerRepository,
	productRepo repository.ProductRepository,
	auditRepo repository.AuditRepository,
	cfg *config.Config,
) usecase.DashboardUsecase {
	listLimit := 50
	if cfg.Audit != nil && cfg.Audit.ListLimit > 0 {
		listLimit = cfg.Audit.ListLimit
	}

	return &dashboardService{
		statsRepo:   statsRepo,
		sellerRepo:  sellerRepo,
		productRepo: productRepo,
		auditRepo:   auditRepo,
		listLimit:   listLimit,
	}
}

// Overview fans the three reads out; the first failure cancels the rest.
func (s *dashboardService) Overview(ctx context.Context) (*usecase.Overview, error) {
	var (
		stats           *entity.DashboardStats
		pendingSellers  []*entity.Seller
		pendingProducts []*entity.Product
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats, err = s.statsRepo.Stats(gctx)

		return err
	})
	g.Go(func() error {
		var err error
		pendingSellers, err = s.sellerRepo.ListPendingSellers(gctx)

		return err
	})
	g.Go(func() error {
		var err error
		pendingProducts, err = s.productRepo.ListPendingProducts(gctx)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The live queues win over the backend's cached totals.
	stats.PendingSellers = len(pendingSellers)
	stats.PendingProducts = len(pendingProducts)

	return &usecase.Overview{
		Stats:           stats,
		PendingSellers:  len(pendingSellers),
		PendingProducts: len(pendingProducts),
	}, nil
}

// RecentDecisions lists the newest audit entries, capped by the configured limit.
func (s *dashboardService) RecentDecisions(ctx context.Context, limit int) ([]*entity.ModerationRecord, error) {
	if limit <= 0 || limit > s.listLimit {
		limit = s.listLimit
	}

	records, err := s.auditRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent decisions")
	}

	return records, nil
}
