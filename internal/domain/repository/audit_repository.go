package repository

import (
	"context"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
)

// AuditRepository persists the console's moderation audit trail.
// This is the only state the console owns.
type AuditRepository interface {
	Record(ctx context.Context, record *entity.ModerationRecord) error
	ListRecent(ctx context.Context, limit int) ([]*entity.ModerationRecord, error)
}
