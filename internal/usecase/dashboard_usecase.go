package usecase

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
)

// Overview is the landing page of the dashboard.
type Overview struct {
	Stats           *entity.DashboardStats `json:"stats"`
	PendingSellers  int                    `json:"pending_sellers"`
	PendingProducts int                    `json:"pending_products"`
}

// DashboardUsecase serves the overview page and the audit trail.
type DashboardUsecase interface {
	// Overview fetches stats and both pending queues concurrently.
	Overview(ctx context.Context) (*Overview, error)

	// RecentDecisions lists the newest audit entries.
	RecentDecisions(ctx context.Context, limit int) ([]*entity.ModerationRecord, error)
}
