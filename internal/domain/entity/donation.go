package entity

import (
	"strings"
	"time"
)

// DonationSource identifies the physical table a canonical donation was read from.
type DonationSource string

const (
	// DonationSourceLedger is the primary donation ledger.
	DonationSourceLedger DonationSource = "ledger"
	// DonationSourceLegacy is the legacy receipt delivery log.
	DonationSourceLegacy DonationSource = "legacy"
)

const (
	// PaymentStatusCompleted is the only payment status the dashboard reports on.
	PaymentStatusCompleted = "COMPLETED"
	// LegacyDeliveryStatusSent marks a legacy receipt row that represents a completed payment.
	LegacyDeliveryStatusSent = "sent"
	// DefaultCurrency is used for legacy rows, which carry no currency.
	DefaultCurrency = "USD"
)

// Donation is the canonical donation record produced from either physical source.
type Donation struct {
	ID             int64
	Source         DonationSource
	OrganizationID string
	Amount         float64
	Currency       string
	DonorName      *string
	DonorEmail     *string
	PaymentID      string
	OrderID        string
	PaymentStatus  string
	ReceiptSent    bool
	IsRecurring    bool
	IsCustomAmount bool
	DonationType   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Email returns the donor email or an empty string.
func (d *Donation) Email() string {
	if d.DonorEmail == nil {
		return ""
	}

	return *d.DonorEmail
}

// Name returns the donor name or an empty string.
func (d *Donation) Name() string {
	if d.DonorName == nil {
		return ""
	}

	return *d.DonorName
}

// IsLegacy reports whether the row came from the read-only legacy log.
func (d *Donation) IsLegacy() bool {
	return d.Source == DonationSourceLegacy
}

// NullableString returns nil for blank input and a trimmed pointer otherwise.
func NullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}

// StringValue dereferences s, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
