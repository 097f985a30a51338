// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const maxAuditListLimit = 500

// auditRepository implements the repository.AuditRepository interface.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository returns the GORM-backed audit trail, or a no-op trail when no database is configured.
func NewAuditRepository(db *gorm.DB, logger *slog.Logger) repository.AuditRepository {
	if db == nil {
		logger.Info("Audit repository not configured, using no-op audit trail")

		return noopAuditRepository{}
	}

	return &auditRepository{db: db}
}

// Record appends a moderation decision. Replays of the same record ID are ignored.
func (repo *auditRepository) Record(ctx context.Context, record *entity.ModerationRecord) error {
	if record.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate audit record id")
		}
		record.ID = id
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	if err := repo.db.WithContext(ctx).Create(fromModerationRecordDomain(record)).Error; err != nil {
		if isDuplicateRecord(err) {
			return nil
		}

		return errors.Wrap(err, "failed to record moderation decision")
	}

	return nil
}

// ListRecent returns the newest decisions first.
func (repo *auditRepository) ListRecent(ctx context.Context, limit int) ([]*entity.ModerationRecord, error) {
	limit = clampLimit(limit)

	var recordModels []*model.ModerationRecordModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list moderation decisions")
	}

	records := make([]*entity.ModerationRecord, len(recordModels))
	for i, recordM := range recordModels {
		records[i] = toModerationRecordDomain(recordM)
	}

	return records, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > maxAuditListLimit {
		return maxAuditListLimit
	}

	return limit
}

// isDuplicateRecord reports a replayed record ID. 23505 is unique_violation
// when the driver error is not translated by GORM.
func isDuplicateRecord(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "23505")
}

type noopAuditRepository struct{}

func (noopAuditRepository) Record(context.Context, *entity.ModerationRecord) error {
	return nil
}

func (noopAuditRepository) ListRecent(context.Context, int) ([]*entity.ModerationRecord, error) {
	return []*entity.ModerationRecord{}, nil
}

// --- Mapper functions ---

func toModerationRecordDomain(data *model.ModerationRecordModel) *entity.ModerationRecord {
	if data == nil {
		return nil
	}

	return &entity.ModerationRecord{
		ID:         data.ID,
		Subject:    entity.ModerationSubject(data.Subject),
		EntityID:   data.EntityID,
		Action:     entity.ModerationAction(data.Action),
		Reason:     data.Reason,
		Message:    data.Message,
		AdminID:    data.AdminID,
		AdminEmail: data.AdminEmail,
		RequestID:  data.RequestID,
		CreatedAt:  data.CreatedAt,
	}
}

func fromModerationRecordDomain(data *entity.ModerationRecord) *model.ModerationRecordModel {
	if data == nil {
		return nil
	}

	return &model.ModerationRecordModel{
		ID:         data.ID,
		Subject:    string(data.Subject),
		EntityID:   data.EntityID,
		Action:     string(data.Action),
		Reason:     data.Reason,
		Message:    data.Message,
		AdminID:    data.AdminID,
		AdminEmail: data.AdminEmail,
		RequestID:  data.RequestID,
		CreatedAt:  data.CreatedAt,
	}
}
