package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func testScope(orgs ...string) *entity.Scope {
	return &entity.Scope{MerchantID: "merchant-1", ActiveOrganizationID: orgs[0], OrganizationIDs: orgs}
}

// seedDonationStream builds a ledger and legacy log that overlap on one payment.
func seedDonationStream(repo *memoryDonationRepository) {
	repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("a@x.com"), name: strPtr("A Smith"), amount: 50, at: baseTime, paymentID: "p-1"})
	repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("b@x.com"), name: strPtr("Bea"), amount: 20, recurring: true, at: baseTime.Add(time.Hour), paymentID: "p-2"})
	repo.addLedger(ledgerSeed{org: "org-2", name: strPtr("Jane Doe"), amount: 75, at: baseTime.Add(2 * time.Hour), paymentID: "p-3"})
	repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("c@x.com"), amount: 10, at: baseTime, paymentID: "p-4", status: "PENDING"})

	repo.addLegacy("org-1", "p-1", strPtr("a@x.com"), 50, baseTime)
	repo.addLegacy("org-1", "legacy-1", strPtr("old@x.com"), 30, baseTime.Add(-24*time.Hour))
	repo.addLegacy("org-2", "legacy-2", strPtr("A@X.com"), 25, baseTime.Add(-48*time.Hour))
	repo.addLegacy("org-9", "legacy-9", strPtr("other@x.com"), 99, baseTime)
}

func TestDonationService_ListDonations_UnionCompleteness(t *testing.T) {
	repo := newMemoryDonationRepository()
	seedDonationStream(repo)
	srv := NewDonationService(repo, newDiscardLogger())
	scope := testScope("org-1", "org-2")
	ctx := context.Background()

	start := baseTime.Add(-30 * time.Hour)
	minAmount := 25.0
	recurring := true
	notRecurring := false

	filters := map[string]entity.DonationFilter{
		"none":           {},
		"date range":     {StartDate: &start},
		"min amount":     {MinAmount: &minAmount},
		"donor text":     {Donor: "x.com"},
		"recurring":      {IsRecurring: &recurring},
		"one time":       {IsRecurring: &notRecurring},
		"organization":   {OrganizationID: "org-2"},
		"type only":      {DonationType: "custom"},
		"text and range": {Donor: "a@", StartDate: &start},
	}

	for name, filter := range filters {
		t.Run(name, func(t *testing.T) {
			orgs := scope.OrganizationIDs
			if filter.OrganizationID != "" {
				orgs = []string{filter.OrganizationID}
			}
			ledger, err := repo.FindLedgerDonations(ctx, orgs, filter)
			require.NoError(t, err)
			expected := len(ledger)
			if filter.LegacyApplicable() {
				legacy, err := repo.FindLegacyDonations(ctx, orgs, filter)
				require.NoError(t, err)
				expected += len(legacy)
			}

			list, err := srv.ListDonations(ctx, scope, usecase.DonationQuery{Filter: filter, Page: entity.PageRequest{Page: 1, Limit: 2}})

			require.NoError(t, err)
			assert.Equal(t, expected, list.Pagination.TotalCount)
			assert.Equal(t, expected, list.Statistics.TotalCount)
			assert.LessOrEqual(t, len(list.Donations), 2)
		})
	}
}

func TestDonationService_ListDonations_ExcludesLegacyDuplicates(t *testing.T) {
	repo := newMemoryDonationRepository()
	seedDonationStream(repo)
	srv := NewDonationService(repo, newDiscardLogger())

	list, err := srv.ListDonations(context.Background(), testScope("org-1", "org-2"), usecase.DonationQuery{})

	require.NoError(t, err)
	// 3 completed ledger rows + 2 legacy rows; p-1 is recorded in both sources and org-9 is out of scope.
	assert.Equal(t, 5, list.Pagination.TotalCount)
	for _, d := range list.Donations {
		if d.IsLegacy() {
			assert.NotEqual(t, "p-1", d.PaymentID)
			assert.NotEqual(t, "org-9", d.OrganizationID)
		}
	}

	assert.InDelta(t, 200.0, list.Statistics.TotalAmount, 0.001)
	assert.InDelta(t, 40.0, list.Statistics.AverageAmount, 0.001)
	// a@x.com (both sources, case-insensitive), b@x.com, Jane Doe, old@x.com
	assert.Equal(t, 4, list.Statistics.UniqueDonors)
	assert.Equal(t, 2, list.Statistics.UniqueOrganizations)
}

func TestDonationService_ListDonations_Sorting(t *testing.T) {
	repo := newMemoryDonationRepository()
	repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("a@x.com"), amount: 30, at: baseTime, paymentID: "ledger-a"})
	repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("b@x.com"), amount: 10, at: baseTime.Add(time.Hour), paymentID: "ledger-b"})
	repo.addLegacy("org-1", "legacy-a", strPtr("c@x.com"), 30, baseTime.Add(2*time.Hour))
	srv := NewDonationService(repo, newDiscardLogger())
	ctx := context.Background()
	scope := testScope("org-1")

	paymentIDs := func(list *usecase.DonationList) []string {
		ids := make([]string, 0, len(list.Donations))
		for _, d := range list.Donations {
			ids = append(ids, d.PaymentID)
		}

		return ids
	}

	t.Run("unknown key falls back to created_at", func(t *testing.T) {
		list, err := srv.ListDonations(ctx, scope, usecase.DonationQuery{SortBy: "'; DROP TABLE donations", SortOrder: entity.SortDesc})
		require.NoError(t, err)
		assert.Equal(t, []string{"legacy-a", "ledger-b", "ledger-a"}, paymentIDs(list))
	})

	t.Run("ties keep ledger rows first ascending", func(t *testing.T) {
		list, err := srv.ListDonations(ctx, scope, usecase.DonationQuery{SortBy: "amount", SortOrder: entity.SortAsc})
		require.NoError(t, err)
		assert.Equal(t, []string{"ledger-b", "ledger-a", "legacy-a"}, paymentIDs(list))
	})

	t.Run("ties keep ledger rows first descending", func(t *testing.T) {
		list, err := srv.ListDonations(ctx, scope, usecase.DonationQuery{SortBy: "amount", SortOrder: entity.SortDesc})
		require.NoError(t, err)
		assert.Equal(t, []string{"ledger-a", "legacy-a", "ledger-b"}, paymentIDs(list))
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		list, err := srv.ListDonations(ctx, scope, usecase.DonationQuery{Page: entity.PageRequest{Page: 5, Limit: 2}})
		require.NoError(t, err)
		assert.Empty(t, list.Donations)
		assert.Equal(t, 3, list.Pagination.TotalCount)
		assert.Equal(t, 2, list.Pagination.TotalPages)
		assert.False(t, list.Pagination.HasNext)
	})
}

func TestDonationService_CanonicalDonations_ScopeErrors(t *testing.T) {
	srv := NewDonationService(newMemoryDonationRepository(), newDiscardLogger())
	ctx := context.Background()
	end := baseTime
	start := baseTime.Add(time.Hour)

	tests := []struct {
		name   string
		scope  *entity.Scope
		filter entity.DonationFilter
		want   error
	}{
		{name: "nil scope", scope: nil, want: domainerrors.ErrUnauthorized},
		{name: "organization outside merchant", scope: testScope("org-1"), filter: entity.DonationFilter{OrganizationID: "org-9"}, want: domainerrors.ErrOrganizationOutOfScope},
		{name: "inverted date range", scope: testScope("org-1"), filter: entity.DonationFilter{StartDate: &start, EndDate: &end}, want: domainerrors.ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.CanonicalDonations(ctx, tt.scope, tt.filter)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDonationService_GetDonation(t *testing.T) {
	repo := newMemoryDonationRepository()
	seedDonationStream(repo)
	srv := NewDonationService(repo, newDiscardLogger())
	ctx := context.Background()
	scope := testScope("org-1", "org-2")

	donation, err := srv.GetDonation(ctx, scope, "p-1")
	require.NoError(t, err)
	assert.Equal(t, entity.DonationSourceLedger, donation.Source)

	donation, err = srv.GetDonation(ctx, scope, "legacy-1")
	require.NoError(t, err)
	assert.True(t, donation.IsLegacy())

	_, err = srv.GetDonation(ctx, scope, "legacy-9")
	assert.ErrorIs(t, err, domainerrors.ErrDonationNotFound)
}

func TestDonationService_ExportDonations(t *testing.T) {
	repo := newMemoryDonationRepository()
	seedDonationStream(repo)
	srv := NewDonationService(repo, newDiscardLogger())

	var buf bytes.Buffer
	err := srv.ExportDonations(context.Background(), testScope("org-1", "org-2"), usecase.DonationQuery{SortBy: "amount", SortOrder: entity.SortDesc}, &buf)
	require.NoError(t, err)

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)
	assert.Equal(t, exportHeader, records[0])
	assert.Equal(t, "p-3", records[1][0])
	assert.Equal(t, "75.00", records[1][3])
	assert.Equal(t, "Jane Doe", records[1][5])
	assert.Equal(t, "ledger", records[1][10])
}
