package repository

import (
	"context"
	"errors"
	"time"

	"kioskdash/internal/domain/entity"
)

// ErrDonationNotFound is returned when a payment id matches no row in scope.
var ErrDonationNotFound = errors.New("donation not found")

// DonorUpdate carries the replacement identity fields. Nil fields are left
// untouched; a pointer to an empty string writes NULL.
type DonorUpdate struct {
	Email *string
	Name  *string
}

// IsEmpty reports whether the update changes nothing.
func (u DonorUpdate) IsEmpty() bool {
	return u.Email == nil && u.Name == nil
}

// DonationRepository reads both physical donation sources and mutates donor
// identity on the primary ledger. The legacy log is never written.
type DonationRepository interface {
	// FindLedgerDonations returns COMPLETED ledger rows in scope that satisfy the filter,
	// ordered by created_at descending.
	FindLedgerDonations(ctx context.Context, organizationIDs []string, filter entity.DonationFilter) ([]*entity.Donation, error)

	// FindLegacyDonations returns sent legacy rows in scope that satisfy the legacy-applicable
	// part of the filter and whose transaction id is not a ledger payment id in scope.
	FindLegacyDonations(ctx context.Context, organizationIDs []string, filter entity.DonationFilter) ([]*entity.Donation, error)

	// FindDonorDonations returns every canonical donation owned by the identity.
	// An email identity matches both sources case-insensitively; a name-only
	// identity matches ledger rows with that exact name and a NULL email.
	FindDonorDonations(ctx context.Context, organizationIDs []string, identity entity.DonorIdentity) ([]*entity.Donation, error)

	// FindLedgerByPaymentID returns the ledger row with the payment id.
	FindLedgerByPaymentID(ctx context.Context, organizationIDs []string, paymentID string) (*entity.Donation, error)

	// FindLegacyByTransactionID returns the legacy row with the transaction id.
	FindLegacyByTransactionID(ctx context.Context, organizationIDs []string, transactionID string) (*entity.Donation, error)

	// UpdateDonorIdentity rewrites every ledger row owned by the identity and
	// returns the number of rows changed.
	UpdateDonorIdentity(ctx context.Context, organizationIDs []string, identity entity.DonorIdentity, update DonorUpdate) (int64, error)

	// UpdateMatchingDonors rewrites every ledger row satisfying any of the exact
	// NULL-aware matches and returns the number of rows changed.
	UpdateMatchingDonors(ctx context.Context, organizationIDs []string, matches []entity.DonorMatch, update DonorUpdate) (int64, error)

	// UpdateDonationDonor rewrites a single ledger row by id.
	UpdateDonationDonor(ctx context.Context, organizationIDs []string, donationID int64, update DonorUpdate) (int64, error)

	// FindRecentlyUpdated returns the id of one ledger row currently holding
	// match whose updated_at lies within window of at.
	FindRecentlyUpdated(ctx context.Context, organizationIDs []string, match entity.DonorMatch, at time.Time, window time.Duration) (int64, error)
}
