package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"kioskdash/internal/domain/entity"
	"kioskdash/internal/domain/repository"
	"kioskdash/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

// memoryDonationRepository mirrors the SQL predicates of the postgres repository over slices.
type memoryDonationRepository struct {
	mu     sync.Mutex
	nextID int64
	ledger []*entity.Donation
	legacy []*entity.Donation
	now    func() time.Time
}

func newMemoryDonationRepository() *memoryDonationRepository {
	return &memoryDonationRepository{nextID: 1, now: time.Now}
}

type ledgerSeed struct {
	org       string
	email     *string
	name      *string
	amount    float64
	recurring bool
	at        time.Time
	paymentID string
	status    string
}

func (r *memoryDonationRepository) addLedger(seed ledgerSeed) *entity.Donation {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seed.status == "" {
		seed.status = entity.PaymentStatusCompleted
	}
	id := r.nextID
	r.nextID++
	if seed.paymentID == "" {
		seed.paymentID = fmt.Sprintf("pay-%d", id)
	}

	d := &entity.Donation{
		ID:             id,
		Source:         entity.DonationSourceLedger,
		OrganizationID: seed.org,
		Amount:         seed.amount,
		Currency:       entity.DefaultCurrency,
		DonorEmail:     seed.email,
		DonorName:      seed.name,
		PaymentID:      seed.paymentID,
		PaymentStatus:  seed.status,
		ReceiptSent:    true,
		IsRecurring:    seed.recurring,
		CreatedAt:      seed.at,
		UpdatedAt:      seed.at,
	}
	r.ledger = append(r.ledger, d)

	return d
}

func (r *memoryDonationRepository) addLegacy(org, transactionID string, email *string, amount float64, at time.Time) *entity.Donation {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	d := &entity.Donation{
		ID:             id,
		Source:         entity.DonationSourceLegacy,
		OrganizationID: org,
		Amount:         amount,
		Currency:       entity.DefaultCurrency,
		DonorEmail:     email,
		PaymentID:      transactionID,
		PaymentStatus:  entity.PaymentStatusCompleted,
		ReceiptSent:    true,
		CreatedAt:      at,
		UpdatedAt:      at,
	}
	r.legacy = append(r.legacy, d)

	return d
}

func (r *memoryDonationRepository) FindLedgerDonations(_ context.Context, organizationIDs []string, filter entity.DonationFilter) ([]*entity.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Donation
	for _, d := range r.ledger {
		if d.PaymentStatus != entity.PaymentStatusCompleted || !slices.Contains(organizationIDs, d.OrganizationID) {
			continue
		}
		if !matchesFilter(d, filter, true) {
			continue
		}
		out = append(out, clone(d))
	}

	return newestFirst(out), nil
}

func (r *memoryDonationRepository) FindLegacyDonations(_ context.Context, organizationIDs []string, filter entity.DonationFilter) ([]*entity.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Donation
	for _, d := range r.visibleLegacy(organizationIDs) {
		if matchesFilter(d, filter, false) {
			out = append(out, clone(d))
		}
	}

	return newestFirst(out), nil
}

func (r *memoryDonationRepository) FindDonorDonations(_ context.Context, organizationIDs []string, identity entity.DonorIdentity) ([]*entity.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ledger []*entity.Donation
	for _, d := range r.ledger {
		if d.PaymentStatus == entity.PaymentStatusCompleted && slices.Contains(organizationIDs, d.OrganizationID) && ownsRow(d, identity) {
			ledger = append(ledger, clone(d))
		}
	}
	out := newestFirst(ledger)
	if identity.IsNameOnly() {
		return out, nil
	}

	var legacy []*entity.Donation
	for _, d := range r.visibleLegacy(organizationIDs) {
		if strings.EqualFold(d.Email(), identity.Email) {
			legacy = append(legacy, clone(d))
		}
	}

	return append(out, newestFirst(legacy)...), nil
}

func (r *memoryDonationRepository) FindLedgerByPaymentID(_ context.Context, organizationIDs []string, paymentID string) (*entity.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.ledger {
		if d.PaymentID == paymentID && slices.Contains(organizationIDs, d.OrganizationID) {
			return clone(d), nil
		}
	}

	return nil, repository.ErrDonationNotFound
}

func (r *memoryDonationRepository) FindLegacyByTransactionID(_ context.Context, organizationIDs []string, transactionID string) (*entity.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.legacy {
		if d.PaymentID == transactionID && slices.Contains(organizationIDs, d.OrganizationID) {
			return clone(d), nil
		}
	}

	return nil, repository.ErrDonationNotFound
}

func (r *memoryDonationRepository) UpdateDonorIdentity(_ context.Context, organizationIDs []string, identity entity.DonorIdentity, update repository.DonorUpdate) (int64, error) {
	return r.updateWhere(organizationIDs, func(d *entity.Donation) bool { return ownsRow(d, identity) }, update), nil
}

func (r *memoryDonationRepository) UpdateMatchingDonors(_ context.Context, organizationIDs []string, matches []entity.DonorMatch, update repository.DonorUpdate) (int64, error) {
	return r.updateWhere(organizationIDs, func(d *entity.Donation) bool {
		for _, m := range matches {
			if matchesDonor(d, m) {
				return true
			}
		}

		return false
	}, update), nil
}

func (r *memoryDonationRepository) UpdateDonationDonor(_ context.Context, organizationIDs []string, donationID int64, update repository.DonorUpdate) (int64, error) {
	return r.updateWhere(organizationIDs, func(d *entity.Donation) bool { return d.ID == donationID }, update), nil
}

func (r *memoryDonationRepository) FindRecentlyUpdated(_ context.Context, organizationIDs []string, match entity.DonorMatch, at time.Time, window time.Duration) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.ledger {
		if !slices.Contains(organizationIDs, d.OrganizationID) || !matchesDonor(d, match) {
			continue
		}
		if d.UpdatedAt.Before(at.Add(-window)) || d.UpdatedAt.After(at.Add(window)) {
			continue
		}

		return d.ID, nil
	}

	return 0, repository.ErrDonationNotFound
}

func (r *memoryDonationRepository) updateWhere(organizationIDs []string, pred func(*entity.Donation) bool, update repository.DonorUpdate) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, d := range r.ledger {
		if !slices.Contains(organizationIDs, d.OrganizationID) || !pred(d) {
			continue
		}
		if update.Email != nil {
			d.DonorEmail = entity.NullableString(*update.Email)
		}
		if update.Name != nil {
			d.DonorName = entity.NullableString(*update.Name)
		}
		d.UpdatedAt = r.now()
		n++
	}

	return n
}

func (r *memoryDonationRepository) visibleLegacy(organizationIDs []string) []*entity.Donation {
	paymentIDs := map[string]struct{}{}
	for _, d := range r.ledger {
		if slices.Contains(organizationIDs, d.OrganizationID) && d.PaymentID != "" {
			paymentIDs[d.PaymentID] = struct{}{}
		}
	}

	var out []*entity.Donation
	for _, d := range r.legacy {
		if !slices.Contains(organizationIDs, d.OrganizationID) {
			continue
		}
		if _, dup := paymentIDs[d.PaymentID]; dup {
			continue
		}
		out = append(out, d)
	}

	return out
}

// snapshot returns the ledger identities keyed by row id.
func (r *memoryDonationRepository) snapshot() map[int64][2]*string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := map[int64][2]*string{}
	for _, d := range r.ledger {
		out[d.ID] = [2]*string{d.DonorEmail, d.DonorName}
	}

	return out
}

func matchesFilter(d *entity.Donation, f entity.DonationFilter, ledger bool) bool {
	if f.StartDate != nil && d.CreatedAt.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && !d.CreatedAt.Before(*f.EndDate) {
		return false
	}
	if f.MinAmount != nil && d.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && d.Amount > *f.MaxAmount {
		return false
	}
	if f.OrganizationID != "" && d.OrganizationID != f.OrganizationID {
		return false
	}
	if f.Donor != "" {
		needle := strings.ToLower(strings.TrimSpace(f.Donor))
		hit := strings.Contains(strings.ToLower(d.Email()), needle)
		if ledger {
			hit = hit || strings.Contains(strings.ToLower(d.Name()), needle)
		}
		if !hit {
			return false
		}
	}
	if !ledger {
		return true
	}
	if f.IsRecurring != nil && d.IsRecurring != *f.IsRecurring {
		return false
	}
	if f.ReceiptSent != nil && d.ReceiptSent != *f.ReceiptSent {
		return false
	}

	return f.DonationType == "" || d.DonationType == f.DonationType
}

func ownsRow(d *entity.Donation, identity entity.DonorIdentity) bool {
	if identity.IsNameOnly() {
		return d.Name() == identity.Name && d.Email() == ""
	}

	return strings.EqualFold(d.Email(), identity.Email)
}

func matchesDonor(d *entity.Donation, m entity.DonorMatch) bool {
	switch {
	case m.Email != nil && m.Name != nil:
		return d.Email() == *m.Email && d.Name() == *m.Name
	case m.Email != nil:
		return d.Email() == *m.Email && d.Name() == ""
	case m.Name != nil:
		return d.Name() == *m.Name && d.Email() == ""
	default:
		return false
	}
}

func clone(d *entity.Donation) *entity.Donation {
	c := *d

	return &c
}

func newestFirst(ds []*entity.Donation) []*entity.Donation {
	sort.SliceStable(ds, func(i, j int) bool {
		if !ds[i].CreatedAt.Equal(ds[j].CreatedAt) {
			return ds[i].CreatedAt.After(ds[j].CreatedAt)
		}

		return ds[i].ID > ds[j].ID
	})

	return ds
}

// memoryChangeRepository is an append-only audit log in memory.
type memoryChangeRepository struct {
	mu          sync.Mutex
	nextID      int64
	changes     []*entity.DonorChange
	unavailable bool
	failCreate  error
}

func newMemoryChangeRepository() *memoryChangeRepository {
	return &memoryChangeRepository{nextID: 1}
}

func (r *memoryChangeRepository) Create(_ context.Context, change *entity.DonorChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.unavailable {
		return repository.ErrChangeHistoryUnavailable
	}
	if r.failCreate != nil {
		return r.failCreate
	}

	change.ID = r.nextID
	r.nextID++
	stored := *change
	r.changes = append(r.changes, &stored)

	return nil
}

func (r *memoryChangeRepository) FindByID(_ context.Context, organizationIDs []string, id int64) (*entity.DonorChange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.unavailable {
		return nil, repository.ErrChangeHistoryUnavailable
	}
	for _, c := range r.changes {
		if c.ID == id && slices.Contains(organizationIDs, c.OrganizationID) {
			stored := *c

			return &stored, nil
		}
	}

	return nil, repository.ErrChangeNotFound
}

func (r *memoryChangeRepository) FindByIdentity(_ context.Context, organizationIDs []string, identity entity.DonorIdentity) ([]*entity.DonorChange, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.unavailable {
		return nil, repository.ErrChangeHistoryUnavailable
	}

	var out []*entity.DonorChange
	for i := len(r.changes) - 1; i >= 0; i-- {
		c := r.changes[i]
		if !slices.Contains(organizationIDs, c.OrganizationID) {
			continue
		}
		var hit bool
		if identity.IsNameOnly() {
			hit = (entity.StringValue(c.OldName) == identity.Name && entity.StringValue(c.OldEmail) == "") ||
				(entity.StringValue(c.NewName) == identity.Name && entity.StringValue(c.NewEmail) == "")
		} else {
			hit = strings.EqualFold(entity.StringValue(c.OldEmail), identity.Email) ||
				strings.EqualFold(entity.StringValue(c.NewEmail), identity.Email)
		}
		if hit {
			stored := *c
			out = append(out, &stored)
		}
	}

	return out, nil
}

func (r *memoryChangeRepository) MarkReverted(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.changes {
		if c.ID == id {
			if c.IsReverted {
				return false, nil
			}
			now := time.Now()
			c.IsReverted = true
			c.RevertedAt = &now

			return true, nil
		}
	}

	return false, nil
}

func (r *memoryChangeRepository) Delete(_ context.Context, organizationIDs []string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.unavailable {
		return repository.ErrChangeHistoryUnavailable
	}
	for i, c := range r.changes {
		if c.ID == id && slices.Contains(organizationIDs, c.OrganizationID) {
			r.changes = append(r.changes[:i], r.changes[i+1:]...)

			return nil
		}
	}

	return repository.ErrChangeNotFound
}

func (r *memoryChangeRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.changes)
}

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.DonorChangeEvent
	err    error
}

func (p *recordingPublisher) PublishDonorChange(_ context.Context, event *service.DonorChangeEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error {
	return nil
}

var (
	_ repository.DonationRepository    = (*memoryDonationRepository)(nil)
	_ repository.DonorChangeRepository = (*memoryChangeRepository)(nil)
	_ service.EventPublisher           = (*recordingPublisher)(nil)
)
