package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DonationModel mirrors the primary ledger table 'donations'.
type DonationModel struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	OrganizationID string          `gorm:"type:varchar(64);not null;index:idx_donations_org_created"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency       string          `gorm:"type:varchar(3);not null;default:'USD'"`
	DonorName      *string         `gorm:"type:varchar(255);index"`
	DonorEmail     *string         `gorm:"type:varchar(512);index"`
	PaymentID      string          `gorm:"type:varchar(128);index"`
	OrderID        string          `gorm:"type:varchar(128)"`
	PaymentStatus  string          `gorm:"type:varchar(32);not null;index"`
	ReceiptSent    bool            `gorm:"not null;default:false"`
	IsRecurring    bool            `gorm:"not null;default:false"`
	IsCustomAmount bool            `gorm:"not null;default:false"`
	DonationType   *string         `gorm:"type:varchar(64)"`
	CreatedAt      time.Time       `gorm:"index:idx_donations_org_created"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationModel) TableName() string {
	return "donations"
}

// ReceiptDeliveryModel mirrors the legacy log 'receipt_deliveries'. The dashboard never writes it.
type ReceiptDeliveryModel struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	OrganizationID string          `gorm:"type:varchar(64);not null;index"`
	TransactionID  string          `gorm:"type:varchar(128);not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DonorEmail     *string         `gorm:"type:varchar(512)"`
	DeliveryStatus string          `gorm:"type:varchar(32);not null"`
	RequestedAt    time.Time       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReceiptDeliveryModel) TableName() string {
	return "receipt_deliveries"
}
