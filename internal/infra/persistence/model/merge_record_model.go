package model

import (
	"time"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MergeRecordModel is the GORM-specific struct for the 'merge_records' table.
// Snapshots are stored verbatim as JSONB so undo is a restore.
type MergeRecordModel struct {
	ID                uuid.UUID                                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID          uuid.UUID                                   `gorm:"type:uuid;not null;index"`
	PrimaryID         uuid.UUID                                   `gorm:"type:uuid;not null;index"`
	SecondaryID       uuid.UUID                                   `gorm:"type:uuid;not null;index"`
	SecondarySnapshot datatypes.JSONType[entity.CustomerSnapshot] `gorm:"type:jsonb;not null"`
	PrimaryBefore     datatypes.JSONType[entity.CustomerSnapshot] `gorm:"type:jsonb;not null"`
	AppliedValues     datatypes.JSONType[entity.CustomerSnapshot] `gorm:"type:jsonb;not null"`
	TouchedFields     datatypes.JSONSlice[string]                 `gorm:"type:jsonb;not null"`
	MovedRecords      datatypes.JSONType[entity.MovedRecords]     `gorm:"type:jsonb;not null"`
	SeveredLineID     string                                      `gorm:"type:varchar(100);not null;default:''"`
	SeveredLineSide   string                                      `gorm:"type:varchar(20);not null;default:''"`
	Reason            string                                      `gorm:"type:text;not null;default:''"`
	PerformedBy       uuid.UUID                                   `gorm:"type:uuid;not null"`
	PerformedAt       time.Time                                   `gorm:"not null;index"`
	Status            string                                      `gorm:"type:varchar(20);not null"`
	UndoneBy          *uuid.UUID                                  `gorm:"type:uuid"`
	UndoneAt          *time.Time
}

// TableName explicitly sets the table name for GORM.
func (MergeRecordModel) TableName() string {
	return "merge_records"
}
