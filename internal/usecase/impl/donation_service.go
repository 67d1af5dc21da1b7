package impl

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	deliverycontext "kioskdash/internal/delivery/context"
	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/domain/repository"
	"kioskdash/internal/usecase"

	"github.com/pkg/errors"
)

const defaultDonationSort = "created_at"

// donationLess compares two donations by one sort key.
type donationLess func(a, b *entity.Donation) bool

var donationSorters = map[string]donationLess{
	"created_at":      func(a, b *entity.Donation) bool { return a.CreatedAt.Before(b.CreatedAt) },
	"amount":          func(a, b *entity.Donation) bool { return a.Amount < b.Amount },
	"donor_name":      func(a, b *entity.Donation) bool { return strings.ToLower(a.Name()) < strings.ToLower(b.Name()) },
	"donor_email":     func(a, b *entity.Donation) bool { return strings.ToLower(a.Email()) < strings.ToLower(b.Email()) },
	"organization_id": func(a, b *entity.Donation) bool { return a.OrganizationID < b.OrganizationID },
	"donation_type":   func(a, b *entity.Donation) bool { return a.DonationType < b.DonationType },
}

var exportHeader = []string{
	"payment_id", "created_at", "organization_id", "amount", "currency",
	"donor_name", "donor_email", "is_recurring", "receipt_sent", "donation_type", "source",
}

// donationService implements the DonationUsecase interface.
type donationService struct {
	donationRepo repository.DonationRepository
	logger       *slog.Logger
}

// NewDonationService is the constructor for donationService.
func NewDonationService(
	donationRepo repository.DonationRepository,
	logger *slog.Logger,
) usecase.DonationUsecase {
	return &donationService{
		donationRepo: donationRepo,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *donationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CanonicalDonations queries both sources with the predicates meaningful to each and unions them in memory.
func (srv *donationService) CanonicalDonations(ctx context.Context, scope *entity.Scope, filter entity.DonationFilter) ([]*entity.Donation, error) {
	organizationIDs, err := scopedOrganizationIDs(scope, filter.OrganizationID)
	if err != nil {
		return nil, err
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	ledger, err := srv.donationRepo.FindLedgerDonations(ctx, organizationIDs, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query donation ledger")
	}

	if !filter.LegacyApplicable() {
		return ledger, nil
	}

	legacy, err := srv.donationRepo.FindLegacyDonations(ctx, organizationIDs, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query legacy donations")
	}

	srv.log(ctx).Debug("Donation sources queried",
		slog.Int("ledger", len(ledger)),
		slog.Int("legacy", len(legacy)),
	)

	union := make([]*entity.Donation, 0, len(ledger)+len(legacy))
	union = append(union, ledger...)

	return append(union, legacy...), nil
}

// ListDonations sorts and paginates the union and computes statistics over all of it.
func (srv *donationService) ListDonations(ctx context.Context, scope *entity.Scope, query usecase.DonationQuery) (*usecase.DonationList, error) {
	page := query.Page.Normalize()

	donations, err := srv.CanonicalDonations(ctx, scope, query.Filter)
	if err != nil {
		return nil, err
	}

	sortDonations(donations, query.SortBy, query.SortOrder)

	return &usecase.DonationList{
		Donations:      entity.Paginate(donations, page),
		Pagination:     entity.NewPagination(page, len(donations)),
		Statistics:     donationStatistics(donations).Rounded(),
		FiltersApplied: query.Filter.Applied(),
	}, nil
}

// GetDonation looks in the ledger first and falls back to the legacy log.
func (srv *donationService) GetDonation(ctx context.Context, scope *entity.Scope, paymentID string) (*entity.Donation, error) {
	if scope == nil || len(scope.OrganizationIDs) == 0 {
		return nil, domainerrors.ErrUnauthorized
	}
	if strings.TrimSpace(paymentID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payment id is required")
	}

	donation, err := srv.donationRepo.FindLedgerByPaymentID(ctx, scope.OrganizationIDs, paymentID)
	if err == nil {
		return donation, nil
	}
	if !errors.Is(err, repository.ErrDonationNotFound) {
		return nil, errors.Wrap(err, "failed to find ledger donation")
	}

	donation, err = srv.donationRepo.FindLegacyByTransactionID(ctx, scope.OrganizationIDs, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, domainerrors.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find legacy donation")
	}

	return donation, nil
}

// ExportDonations writes every donation of the filtered, sorted union as CSV.
func (srv *donationService) ExportDonations(ctx context.Context, scope *entity.Scope, query usecase.DonationQuery, w io.Writer) error {
	donations, err := srv.CanonicalDonations(ctx, scope, query.Filter)
	if err != nil {
		return err
	}

	sortDonations(donations, query.SortBy, query.SortOrder)

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}

	for _, d := range donations {
		record := []string{
			d.PaymentID,
			d.CreatedAt.UTC().Format(time.RFC3339),
			d.OrganizationID,
			strconv.FormatFloat(d.Amount, 'f', 2, 64),
			d.Currency,
			d.Name(),
			d.Email(),
			strconv.FormatBool(d.IsRecurring),
			strconv.FormatBool(d.ReceiptSent),
			d.DonationType,
			string(d.Source),
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "failed to write csv record")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, "failed to flush csv")
	}

	srv.log(ctx).Info("Donations exported", slog.Int("rows", len(donations)))

	return nil
}

// scopedOrganizationIDs applies the organization sub-filter. It never widens the scope.
func scopedOrganizationIDs(scope *entity.Scope, organizationID string) ([]string, error) {
	if scope == nil || len(scope.OrganizationIDs) == 0 {
		return nil, domainerrors.ErrUnauthorized
	}
	if organizationID == "" {
		return scope.OrganizationIDs, nil
	}
	if !scope.Contains(organizationID) {
		return nil, domainerrors.ErrOrganizationOutOfScope
	}

	return []string{organizationID}, nil
}

func validateFilter(f entity.DonationFilter) error {
	if f.StartDate != nil && f.EndDate != nil && !f.StartDate.Before(*f.EndDate) {
		return domainerrors.ErrInvalidDateRange
	}
	if f.MinAmount != nil && f.MaxAmount != nil && *f.MinAmount > *f.MaxAmount {
		return domainerrors.ErrValidationFailed.WithDetails("min_amount exceeds max_amount")
	}

	return nil
}

// sortDonations is stable and has no secondary key, so ties keep ledger rows ahead of legacy rows.
// Unknown keys fall back to created_at.
func sortDonations(donations []*entity.Donation, sortBy string, order entity.SortOrder) {
	less, ok := donationSorters[sortBy]
	if !ok {
		less = donationSorters[defaultDonationSort]
	}

	sort.SliceStable(donations, func(i, j int) bool {
		if order == entity.SortAsc {
			return less(donations[i], donations[j])
		}

		return less(donations[j], donations[i])
	})
}

func donationStatistics(donations []*entity.Donation) entity.DonationStatistics {
	stats := entity.DonationStatistics{TotalCount: len(donations)}
	donors := map[string]struct{}{}
	orgs := map[string]struct{}{}

	for _, d := range donations {
		stats.TotalAmount += d.Amount
		orgs[d.OrganizationID] = struct{}{}
		if d.Email() == "" && d.Name() == "" {
			continue
		}
		donors[donorIdentityKey(d)] = struct{}{}
	}

	if stats.TotalCount > 0 {
		stats.AverageAmount = stats.TotalAmount / float64(stats.TotalCount)
	}
	stats.UniqueDonors = len(donors)
	stats.UniqueOrganizations = len(orgs)

	return stats
}
