package model

import (
	"time"

	"github.com/google/uuid"
)

// ModerationRecordModel is the GORM-specific struct for the 'moderation_records' table.
// Rows are append-only.
type ModerationRecordModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Subject    string    `gorm:"type:varchar(32);not null;index:idx_moderation_subject_entity"`
	EntityID   string    `gorm:"type:varchar(64);not null;index:idx_moderation_subject_entity"`
	Action     string    `gorm:"type:varchar(32);not null"`
	Reason     string    `gorm:"type:text"`
	Message    string    `gorm:"type:text"`
	AdminID    string    `gorm:"type:varchar(64);not null;index"`
	AdminEmail string    `gorm:"type:varchar(255)"`
	RequestID  string    `gorm:"type:varchar(64)"`
	CreatedAt  time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ModerationRecordModel) TableName() string {
	return "moderation_records"
}
