package model

import (
	"time"

	"github.com/google/uuid"
)

// InquiryModel is the GORM-specific struct for the 'inquiries' table.
type InquiryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Subject    string    `gorm:"type:varchar(255);not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (InquiryModel) TableName() string {
	return "inquiries"
}

// PropertyInquiryModel is the GORM-specific struct for the 'property_inquiries' table.
type PropertyInquiryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null"`
	Message    string    `gorm:"type:text;not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PropertyInquiryModel) TableName() string {
	return "property_inquiries"
}

// ActivityModel is the GORM-specific struct for the 'activities' table.
type ActivityModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind       string    `gorm:"type:varchar(50);not null"`
	OccurredAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}

// AccessGrantModel is the GORM-specific struct for the 'access_grants' table.
type AccessGrantModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	PropertyID uuid.UUID `gorm:"type:uuid;not null"`
	ExpiresAt  *time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessGrantModel) TableName() string {
	return "access_grants"
}

// MessageDraftModel is the GORM-specific struct for the 'message_drafts' table.
type MessageDraftModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Channel    string    `gorm:"type:varchar(20);not null"`
	Body       string    `gorm:"type:text;not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageDraftModel) TableName() string {
	return "message_drafts"
}
