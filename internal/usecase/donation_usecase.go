package usecase

import (
	"context"
	"io"

	"kioskdash/internal/domain/entity"
)

// DonationQuery is a filtered, sorted, paginated listing request.
type DonationQuery struct {
	Filter    entity.DonationFilter
	Page      entity.PageRequest
	SortBy    string
	SortOrder entity.SortOrder
}

// DonationList is one page of the canonical donation stream.
type DonationList struct {
	Donations      []*entity.Donation
	Pagination     entity.Pagination
	Statistics     entity.DonationStatistics
	FiltersApplied map[string]any
}

// DonationUsecase is the donation source adapter: one de-duplicated stream over
// the ledger and the legacy log.
type DonationUsecase interface {
	// CanonicalDonations returns the filtered union of both sources, ledger rows first.
	CanonicalDonations(ctx context.Context, scope *entity.Scope, filter entity.DonationFilter) ([]*entity.Donation, error)

	// ListDonations returns a page with statistics over the whole filtered union.
	ListDonations(ctx context.Context, scope *entity.Scope, query DonationQuery) (*DonationList, error)

	// GetDonation finds a donation by payment id, ledger first.
	GetDonation(ctx context.Context, scope *entity.Scope, paymentID string) (*entity.Donation, error)

	// ExportDonations writes the filtered, sorted union as CSV.
	ExportDonations(ctx context.Context, scope *entity.Scope, query DonationQuery, w io.Writer) error
}
