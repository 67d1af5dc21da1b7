package model

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationModel mirrors the 'organizations' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type OrganizationModel struct {
	OrganizationID string `gorm:"column:organization_id;type:varchar(64);primaryKey"`
	MerchantID     string `gorm:"type:varchar(64);not null;index"`
	Name           string `gorm:"type:varchar(255)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrganizationModel) TableName() string {
	return "organizations"
}

// ConnectionModel mirrors the 'merchant_connections' table. Token columns hold sealed ciphertext.
type ConnectionModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrganizationID     string    `gorm:"type:varchar(64);not null;uniqueIndex:uq_connection_org_merchant_location"`
	MerchantID         string    `gorm:"type:varchar(64);not null;index;uniqueIndex:uq_connection_org_merchant_location"`
	LocationID         string    `gorm:"type:varchar(64);not null;default:'';uniqueIndex:uq_connection_org_merchant_location"`
	AccessTokenSealed  string    `gorm:"type:text;not null"`
	RefreshTokenSealed string    `gorm:"type:text"`
	ExpiresAt          *time.Time
	IsActive           bool `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConnectionModel) TableName() string {
	return "merchant_connections"
}
