package model

import (
	"time"

	"gorm.io/datatypes"
)

// MergedDonor records one source identity folded into a merge.
type MergedDonor struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// DonorChangeModel mirrors the append-only audit table 'donor_changes'.
type DonorChangeModel struct {
	ID                       int64                             `gorm:"primaryKey;autoIncrement"`
	OrganizationID           string                            `gorm:"type:varchar(64);not null;index"`
	OldEmail                 *string                           `gorm:"type:varchar(512)"`
	OldName                  *string                           `gorm:"type:varchar(255)"`
	NewEmail                 *string                           `gorm:"type:varchar(512)"`
	NewName                  *string                           `gorm:"type:varchar(255)"`
	ChangeType               string                            `gorm:"type:varchar(32);not null"`
	AffectedTransactionCount int                               `gorm:"not null;default:0"`
	ChangedBy                string                            `gorm:"type:varchar(255);not null"`
	AdminEmail               *string                           `gorm:"type:varchar(255)"`
	ChangedAt                time.Time                         `gorm:"not null;index"`
	IsReverted               bool                              `gorm:"not null;default:false"`
	RevertedAt               *time.Time                        `gorm:"column:reverted_at"`
	Notes                    *string                           `gorm:"type:text"`
	DonationID               *int64                            `gorm:"index"`
	MergedDonors             datatypes.JSONType[[]MergedDonor] `gorm:"type:jsonb;default:'[]'"`
}

// TableName explicitly sets the table name for GORM.
func (DonorChangeModel) TableName() string {
	return "donor_changes"
}
