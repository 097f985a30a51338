package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewAuditRepository_NilDBFallsBackToNoop(t *testing.T) {
	repo := NewAuditRepository(nil, newDiscardLogger())

	require.NoError(t, repo.Record(context.Background(), &entity.ModerationRecord{EntityID: "s1"}))

	records, err := repo.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestModerationRecordMappers(t *testing.T) {
	record := &entity.ModerationRecord{
		ID:         uuid.New(),
		Subject:    entity.SubjectSeller,
		EntityID:   "s1",
		Action:     entity.ActionReject,
		Reason:     "Documents are missing",
		Message:    "Seller rejected",
		AdminID:    "admin-1",
		AdminEmail: "ops@miorish.com",
		RequestID:  "req-1",
		CreatedAt:  time.Now().UTC(),
	}

	roundTripped := toModerationRecordDomain(fromModerationRecordDomain(record))
	assert.Equal(t, record, roundTripped)

	assert.Nil(t, toModerationRecordDomain(nil))
	assert.Nil(t, fromModerationRecordDomain(nil))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 50, clampLimit(0))
	assert.Equal(t, 20, clampLimit(20))
	assert.Equal(t, maxAuditListLimit, clampLimit(10_000))
}

func TestIsDuplicateRecord(t *testing.T) {
	assert.False(t, isDuplicateRecord(nil))
	assert.True(t, isDuplicateRecord(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateRecord(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.True(t, isDuplicateRecord(errors.New(`ERROR: duplicate key value violates unique constraint "moderation_records_pkey" (SQLSTATE 23505)`)))
	assert.False(t, isDuplicateRecord(errors.New("connection refused")))
}
