package model

import (
	"time"

	"github.com/google/uuid"
)

// MergeDismissalModel is the GORM-specific struct for the 'merge_dismissals' table.
// The pair is stored in canonical order, customer_a_id < customer_b_id.
type MergeDismissalModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_merge_dismissals_pair,priority:1"`
	CustomerAID uuid.UUID `gorm:"column:customer_a_id;type:uuid;not null;uniqueIndex:uq_merge_dismissals_pair,priority:2"`
	CustomerBID uuid.UUID `gorm:"column:customer_b_id;type:uuid;not null;uniqueIndex:uq_merge_dismissals_pair,priority:3"`
	Reason      string    `gorm:"type:text;not null;default:''"`
	DismissedBy uuid.UUID `gorm:"type:uuid;not null"`
	DismissedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MergeDismissalModel) TableName() string {
	return "merge_dismissals"
}
