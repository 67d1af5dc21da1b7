package postgres

import (
	"context"
	"strings"
	"time"

	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/domain/repository"
	"kioskdash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	emailIsNull = "COALESCE(donor_email, '') = ''"
	nameIsNull  = "COALESCE(donor_name, '') = ''"
)

// donationRepository reads the ledger ('donations') and the legacy log
// ('receipt_deliveries') and rewrites donor identity on the ledger only.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{db: db}
}

// FindLedgerDonations returns COMPLETED ledger rows in scope that satisfy the filter.
func (repo *donationRepository) FindLedgerDonations(ctx context.Context, organizationIDs []string, filter entity.DonationFilter) ([]*entity.Donation, error) {
	var rows []*model.DonationModel

	q := repo.ledger(ctx, organizationIDs).Where("payment_status = ?", entity.PaymentStatusCompleted)
	q = applyLedgerFilter(q, filter)

	if err := q.Order("created_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find ledger donations")
	}

	return toLedgerDomains(rows), nil
}

// FindLegacyDonations returns sent legacy rows in scope not already recorded in the ledger.
func (repo *donationRepository) FindLegacyDonations(ctx context.Context, organizationIDs []string, filter entity.DonationFilter) ([]*entity.Donation, error) {
	var rows []*model.ReceiptDeliveryModel

	q := applyLegacyFilter(repo.legacy(ctx, organizationIDs), filter)

	if err := q.Order("requested_at DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find legacy donations")
	}

	return toLegacyDomains(rows), nil
}

// FindDonorDonations returns every canonical donation owned by the identity, newest first.
func (repo *donationRepository) FindDonorDonations(ctx context.Context, organizationIDs []string, identity entity.DonorIdentity) ([]*entity.Donation, error) {
	var ledgerRows []*model.DonationModel

	q := repo.ledger(ctx, organizationIDs).Where("payment_status = ?", entity.PaymentStatusCompleted)
	if err := whereIdentity(q, identity).Order("created_at DESC, id DESC").Find(&ledgerRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find donor ledger donations")
	}

	donations := toLedgerDomains(ledgerRows)
	if identity.IsNameOnly() {
		// Legacy rows carry no donor name.
		return donations, nil
	}

	var legacyRows []*model.ReceiptDeliveryModel
	if err := repo.legacy(ctx, organizationIDs).
		Where("LOWER(donor_email) = LOWER(?)", identity.Email).
		Order("requested_at DESC, id DESC").
		Find(&legacyRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find donor legacy donations")
	}

	return append(donations, toLegacyDomains(legacyRows)...), nil
}

// FindLedgerByPaymentID returns the ledger row with the payment id.
func (repo *donationRepository) FindLedgerByPaymentID(ctx context.Context, organizationIDs []string, paymentID string) (*entity.Donation, error) {
	var row model.DonationModel

	if err := repo.ledger(ctx, organizationIDs).
		Where("payment_id = ?", paymentID).
		Order("id DESC").
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find ledger donation by payment id")
	}

	return toLedgerDomain(&row), nil
}

// FindLegacyByTransactionID returns the legacy row with the transaction id.
func (repo *donationRepository) FindLegacyByTransactionID(ctx context.Context, organizationIDs []string, transactionID string) (*entity.Donation, error) {
	var row model.ReceiptDeliveryModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("organization_id IN ?", organizationIDs).
		Where("delivery_status = ?", entity.LegacyDeliveryStatusSent).
		Where("transaction_id = ?", transactionID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find legacy donation by transaction id")
	}

	return toLegacyDomain(&row), nil
}

// UpdateDonorIdentity rewrites every ledger row owned by the identity.
func (repo *donationRepository) UpdateDonorIdentity(ctx context.Context, organizationIDs []string, identity entity.DonorIdentity, update repository.DonorUpdate) (int64, error) {
	q := repo.writer(ctx).Where("organization_id IN ?", organizationIDs)

	return repo.apply(whereIdentity(q, identity), update, "failed to update donor identity")
}

// UpdateMatchingDonors rewrites every ledger row satisfying any of the matches.
func (repo *donationRepository) UpdateMatchingDonors(ctx context.Context, organizationIDs []string, matches []entity.DonorMatch, update repository.DonorUpdate) (int64, error) {
	clauses := make([]string, 0, len(matches))
	args := make([]any, 0, len(matches)*2)
	for _, m := range matches {
		sql, matchArgs, ok := matchClause(m)
		if !ok {
			continue
		}
		clauses = append(clauses, sql)
		args = append(args, matchArgs...)
	}
	if len(clauses) == 0 {
		return 0, nil
	}

	q := repo.writer(ctx).
		Where("organization_id IN ?", organizationIDs).
		Where("("+strings.Join(clauses, " OR ")+")", args...)

	return repo.apply(q, update, "failed to merge donor identities")
}

// UpdateDonationDonor rewrites a single ledger row by id.
func (repo *donationRepository) UpdateDonationDonor(ctx context.Context, organizationIDs []string, donationID int64, update repository.DonorUpdate) (int64, error) {
	q := repo.writer(ctx).
		Where("organization_id IN ?", organizationIDs).
		Where("id = ?", donationID)

	return repo.apply(q, update, "failed to update donation donor")
}

// FindRecentlyUpdated returns one ledger row holding match updated within window of at.
func (repo *donationRepository) FindRecentlyUpdated(ctx context.Context, organizationIDs []string, match entity.DonorMatch, at time.Time, window time.Duration) (int64, error) {
	sql, args, ok := matchClause(match)
	if !ok {
		return 0, repository.ErrDonationNotFound
	}

	var row model.DonationModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("organization_id IN ?", organizationIDs).
		Where(sql, args...).
		Where("updated_at BETWEEN ? AND ?", at.Add(-window), at.Add(window)).
		Order("updated_at DESC").
		Limit(1).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, repository.ErrDonationNotFound
		}

		return 0, errors.Wrap(err, "failed to find recently updated donation")
	}

	return row.ID, nil
}

func (repo *donationRepository) ledger(ctx context.Context, organizationIDs []string) *gorm.DB {
	return repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.DonationModel{}).
		Where("organization_id IN ?", organizationIDs)
}

// legacy scopes the legacy log and excludes rows already recorded in the ledger.
func (repo *donationRepository) legacy(ctx context.Context, organizationIDs []string) *gorm.DB {
	ledgerPaymentIDs := repo.db.
		Model(&model.DonationModel{}).
		Select("payment_id").
		Where("organization_id IN ?", organizationIDs).
		Where("payment_id IS NOT NULL AND payment_id <> ''")

	return repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.ReceiptDeliveryModel{}).
		Where("organization_id IN ?", organizationIDs).
		Where("delivery_status = ?", entity.LegacyDeliveryStatusSent).
		Where("transaction_id NOT IN (?)", ledgerPaymentIDs)
}

func (repo *donationRepository) writer(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.DonationModel{})
}

func (repo *donationRepository) apply(q *gorm.DB, update repository.DonorUpdate, msg string) (int64, error) {
	values := map[string]any{"updated_at": time.Now()}
	if update.Email != nil {
		values["donor_email"] = nullIfBlank(*update.Email)
	}
	if update.Name != nil {
		values["donor_name"] = nullIfBlank(*update.Name)
	}

	result := q.Updates(values)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, msg)
	}

	return result.RowsAffected, nil
}

func nullIfBlank(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return s
}

func whereIdentity(q *gorm.DB, identity entity.DonorIdentity) *gorm.DB {
	if identity.IsNameOnly() {
		return q.Where("donor_name = ?", identity.Name).Where(emailIsNull)
	}

	return q.Where("LOWER(donor_email) = LOWER(?)", identity.Email)
}

// matchClause renders a NULL-aware exact donor predicate.
func matchClause(m entity.DonorMatch) (string, []any, bool) {
	switch {
	case m.Email != nil && m.Name != nil:
		return "(donor_email = ? AND donor_name = ?)", []any{*m.Email, *m.Name}, true
	case m.Email != nil:
		return "(donor_email = ? AND " + nameIsNull + ")", []any{*m.Email}, true
	case m.Name != nil:
		return "(donor_name = ? AND " + emailIsNull + ")", []any{*m.Name}, true
	default:
		return "", nil, false
	}
}

func applyLedgerFilter(q *gorm.DB, f entity.DonationFilter) *gorm.DB {
	if f.StartDate != nil {
		q = q.Where("created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("created_at < ?", *f.EndDate)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	if f.Donor != "" {
		pattern := containsPattern(f.Donor)
		q = q.Where("(LOWER(donor_name) LIKE ? OR LOWER(donor_email) LIKE ?)", pattern, pattern)
	}
	if f.IsRecurring != nil {
		q = q.Where("is_recurring = ?", *f.IsRecurring)
	}
	if f.ReceiptSent != nil {
		q = q.Where("receipt_sent = ?", *f.ReceiptSent)
	}
	if f.DonationType != "" {
		q = q.Where("donation_type = ?", f.DonationType)
	}
	if f.OrganizationID != "" {
		q = q.Where("organization_id = ?", f.OrganizationID)
	}

	return q
}

// applyLegacyFilter applies the predicates the legacy log can answer.
func applyLegacyFilter(q *gorm.DB, f entity.DonationFilter) *gorm.DB {
	if f.StartDate != nil {
		q = q.Where("requested_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("requested_at < ?", *f.EndDate)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	if f.Donor != "" {
		q = q.Where("LOWER(donor_email) LIKE ?", containsPattern(f.Donor))
	}
	if f.OrganizationID != "" {
		q = q.Where("organization_id = ?", f.OrganizationID)
	}

	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

// --- Mapper Functions ---

func toLedgerDomain(data *model.DonationModel) *entity.Donation {
	if data == nil {
		return nil
	}

	return &entity.Donation{
		ID:             data.ID,
		Source:         entity.DonationSourceLedger,
		OrganizationID: data.OrganizationID,
		Amount:         data.Amount.InexactFloat64(),
		Currency:       data.Currency,
		DonorName:      data.DonorName,
		DonorEmail:     data.DonorEmail,
		PaymentID:      data.PaymentID,
		OrderID:        data.OrderID,
		PaymentStatus:  data.PaymentStatus,
		ReceiptSent:    data.ReceiptSent,
		IsRecurring:    data.IsRecurring,
		IsCustomAmount: data.IsCustomAmount,
		DonationType:   entity.StringValue(data.DonationType),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toLedgerDomains(data []*model.DonationModel) []*entity.Donation {
	donations := make([]*entity.Donation, 0, len(data))
	for _, m := range data {
		donations = append(donations, toLedgerDomain(m))
	}

	return donations
}

// toLegacyDomain synthesizes the ledger shape for a sent legacy receipt.
func toLegacyDomain(data *model.ReceiptDeliveryModel) *entity.Donation {
	if data == nil {
		return nil
	}

	return &entity.Donation{
		ID:             data.ID,
		Source:         entity.DonationSourceLegacy,
		OrganizationID: data.OrganizationID,
		Amount:         data.Amount.InexactFloat64(),
		Currency:       entity.DefaultCurrency,
		DonorEmail:     data.DonorEmail,
		PaymentID:      data.TransactionID,
		PaymentStatus:  entity.PaymentStatusCompleted,
		ReceiptSent:    true,
		CreatedAt:      data.RequestedAt,
		UpdatedAt:      data.RequestedAt,
	}
}

func toLegacyDomains(data []*model.ReceiptDeliveryModel) []*entity.Donation {
	donations := make([]*entity.Donation, 0, len(data))
	for _, m := range data {
		donations = append(donations, toLegacyDomain(m))
	}

	return donations
}
