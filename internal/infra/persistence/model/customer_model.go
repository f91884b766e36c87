package model

import (
	"time"

	"crm/internal/domain/matching"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID       uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name           string                      `gorm:"type:varchar(255);not null"`
	Email          string                      `gorm:"type:varchar(255);not null;default:''"`
	Phone          string                      `gorm:"type:varchar(50);not null;default:''"`
	LineID         string                      `gorm:"type:varchar(100);not null;default:''"`
	Notes          string                      `gorm:"type:text;not null;default:''"`
	Status         string                      `gorm:"type:varchar(20);not null;default:'active'"`
	MoveInDate     *time.Time                  `gorm:"type:date"`
	BudgetMin      *int64                      `gorm:"type:bigint"`
	BudgetMax      *int64                      `gorm:"type:bigint"`
	PreferredAreas datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	Requirements   datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`

	// Normalized lookup keys for duplicate detection, maintained by BeforeSave.
	EmailNormalized string `gorm:"type:varchar(255);not null;default:''"`
	PhoneDigits     string `gorm:"type:varchar(50);not null;default:''"`
	NameNormalized  string `gorm:"type:varchar(255);not null;default:''"`

	MergedIntoID              *uuid.UUID `gorm:"type:uuid;index"`
	LineDisconnectedByMergeID *uuid.UUID `gorm:"type:uuid"`

	// LastActivityAt is computed by queries that join activities; never written.
	LastActivityAt *time.Time `gorm:"->;-:migration"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// BeforeSave keeps the normalized lookup keys in step with the raw values.
func (m *CustomerModel) BeforeSave(_ *gorm.DB) error {
	m.EmailNormalized = matching.NormalizeEmail(m.Email)
	m.PhoneDigits = matching.NormalizePhone(m.Phone)
	m.NameNormalized = matching.NormalizeName(m.Name)

	return nil
}
