package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type donorFixture struct {
	repo      *memoryDonationRepository
	changes   *memoryChangeRepository
	publisher *recordingPublisher
	srv       usecase.DonorUsecase
	scope     *entity.Scope
	actor     *entity.Session
}

func newDonorFixture(t *testing.T) *donorFixture {
	t.Helper()

	repo := newMemoryDonationRepository()
	changes := newMemoryChangeRepository()
	publisher := &recordingPublisher{}
	logger := newDiscardLogger()

	return &donorFixture{
		repo:      repo,
		changes:   changes,
		publisher: publisher,
		srv:       NewDonorService(NewDonationService(repo, logger), repo, changes, publisher, logger),
		scope:     testScope("org-1", "org-2"),
		actor:     &entity.Session{OrganizationID: "org-1", MerchantID: "merchant-1", Email: "owner@x.com"},
	}
}

func (f *donorFixture) seedSmiths() {
	for i := range 3 {
		f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("a@x.com"), name: strPtr("A Smith"), amount: 50, at: baseTime.Add(time.Duration(i) * time.Hour)})
	}
	for i := range 2 {
		f.repo.addLedger(ledgerSeed{org: "org-2", name: strPtr("A Smith"), amount: 25, at: baseTime.Add(time.Duration(10+i) * time.Hour)})
	}
}

func TestDonorService_MergeDonors_Scenario(t *testing.T) {
	f := newDonorFixture(t)
	f.seedSmiths()
	ctx := context.Background()

	result, err := f.srv.MergeDonors(ctx, f.actor, f.scope, usecase.MergeDonorsInput{
		DonorsToMerge: []entity.DonorRef{
			{Email: "a@x.com", Name: "A Smith"},
			{Name: "A Smith"},
		},
		PrimaryDonor: entity.DonorRef{Email: "a@x.com", Name: "A. Smith"},
	})

	require.NoError(t, err)
	assert.Equal(t, 5, result.DonationsUpdated)
	assert.Equal(t, entity.DonorRef{Email: "a@x.com", Name: "A. Smith"}, result.MergedDonor)

	detail, err := f.srv.GetDonor(ctx, f.scope, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, 5, detail.Donor.DonationCount)
	assert.Equal(t, "A. Smith", detail.Donor.Name)
	assert.InDelta(t, 200.0, detail.Donor.TotalAmount, 0.001)
	assert.Equal(t, []string{"org-1", "org-2"}, detail.Donor.Organizations)

	_, err = f.srv.GetDonor(ctx, f.scope, entity.SyntheticIdentifierPrefix+"A Smith")
	assert.ErrorIs(t, err, domainerrors.ErrDonorNotFound)

	change, err := f.changes.FindByID(ctx, f.scope.OrganizationIDs, result.ChangeID)
	require.NoError(t, err)
	assert.Equal(t, entity.ChangeTypeMerge, change.ChangeType)
	assert.Len(t, change.MergedDonors, 2)
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, "merge", f.publisher.events[0].ChangeType)
}

func TestDonorService_MergeDonors_JoinsDistinctEmails(t *testing.T) {
	f := newDonorFixture(t)
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("a@x.com"), name: strPtr("Al"), amount: 10, at: baseTime})
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("al@y.com"), name: strPtr("Al"), amount: 10, at: baseTime})

	result, err := f.srv.MergeDonors(context.Background(), f.actor, f.scope, usecase.MergeDonorsInput{
		DonorsToMerge: []entity.DonorRef{{Email: "a@x.com", Name: "Al"}, {Email: "AL@y.com", Name: "Al"}, {Email: "al@y.com", Name: "Al"}},
		PrimaryDonor:  entity.DonorRef{Email: "a@x.com", Name: "Al"},
	})

	require.NoError(t, err)
	assert.Equal(t, "a@x.com,AL@y.com", result.MergedDonor.Email)
	assert.Equal(t, 2, result.DonationsUpdated)
}

func TestDonorService_MergeDonors_Validation(t *testing.T) {
	f := newDonorFixture(t)
	f.seedSmiths()
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.MergeDonorsInput
		want  error
	}{
		{
			name:  "single donor",
			input: usecase.MergeDonorsInput{DonorsToMerge: []entity.DonorRef{{Email: "a@x.com"}}, PrimaryDonor: entity.DonorRef{Name: "A"}},
			want:  domainerrors.ErrMergeRequiresTwoDonors,
		},
		{
			name:  "primary without name",
			input: usecase.MergeDonorsInput{DonorsToMerge: []entity.DonorRef{{Email: "a@x.com"}, {Name: "A Smith"}}, PrimaryDonor: entity.DonorRef{Email: "a@x.com", Name: "  "}},
			want:  domainerrors.ErrMergePrimaryNameRequired,
		},
		{
			name:  "nothing matches",
			input: usecase.MergeDonorsInput{DonorsToMerge: []entity.DonorRef{{Email: "nobody@x.com"}, {Name: "Nobody"}}, PrimaryDonor: entity.DonorRef{Name: "Nobody Else"}},
			want:  domainerrors.ErrNoMatchingDonations,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.srv.MergeDonors(ctx, f.actor, f.scope, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, 0, f.changes.count())
}

func TestDonorService_GetDonor_AnonymousIdentifier(t *testing.T) {
	f := newDonorFixture(t)
	f.repo.addLedger(ledgerSeed{org: "org-1", name: strPtr("Jane Doe"), amount: 40, at: baseTime})
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("jane@x.com"), name: strPtr("Jane D"), amount: 5, at: baseTime})
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("jane@x.com"), name: strPtr("Jane Doe"), amount: 5, at: baseTime})
	ctx := context.Background()

	list, err := f.srv.ListDonors(ctx, f.scope, usecase.DonorQuery{SortBy: "total_amount"})
	require.NoError(t, err)
	require.NotEmpty(t, list.Donors)
	assert.Equal(t, "name_without_email_Jane Doe", list.Donors[0].Identifier)

	detail, err := f.srv.GetDonor(ctx, f.scope, "name_without_email_Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, 1, detail.Donor.DonationCount)
	assert.Empty(t, detail.Donor.Email)

	groups, err := f.srv.DetectDuplicates(ctx, f.scope)
	require.NoError(t, err)
	for _, g := range groups {
		if g.Type != entity.DuplicateSameEmail {
			continue
		}
		for _, d := range g.Donors {
			assert.NotEqual(t, "name_without_email_Jane Doe", d.Identifier)
		}
	}
}

func TestDonorService_GetDonor_DisplayNameSkipsPlaceholders(t *testing.T) {
	f := newDonorFixture(t)
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("p@x.com"), name: strPtr("Anonymous"), amount: 5, at: baseTime.Add(time.Hour)})
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("P@x.com"), name: strPtr("Pat Lee"), amount: 5, at: baseTime})
	f.repo.addLegacy("org-1", "legacy-p", strPtr("p@X.com"), 5, baseTime.Add(-time.Hour))

	detail, err := f.srv.GetDonor(context.Background(), f.scope, "p@x.com")

	require.NoError(t, err)
	assert.Equal(t, "Pat Lee", detail.Donor.Name)
	assert.Equal(t, 3, detail.Donor.DonationCount)
	require.Len(t, detail.DonationHistory, 3)
	assert.True(t, detail.DonationHistory[0].CreatedAt.After(detail.DonationHistory[2].CreatedAt))
}

func TestDonorService_GetDonor_Errors(t *testing.T) {
	f := newDonorFixture(t)
	ctx := context.Background()

	_, err := f.srv.GetDonor(ctx, f.scope, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrDonorIdentifierInvalid)

	_, err = f.srv.GetDonor(ctx, f.scope, entity.SyntheticIdentifierPrefix)
	assert.ErrorIs(t, err, domainerrors.ErrDonorIdentifierInvalid)

	_, err = f.srv.GetDonor(ctx, f.scope, "ghost@x.com")
	assert.ErrorIs(t, err, domainerrors.ErrDonorNotFound)
}

func seedDuplicates(f *donorFixture) {
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("sam@x.com"), name: strPtr("Sam Green"), amount: 10, at: baseTime})
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("SAM@x.com"), name: strPtr("Samuel Green"), amount: 10, at: baseTime})
	// Same name as the email group above; must not be reported again.
	f.repo.addLedger(ledgerSeed{org: "org-1", name: strPtr("Sam Green"), amount: 10, at: baseTime})
	f.repo.addLedger(ledgerSeed{org: "org-2", email: strPtr("kim@x.com"), name: strPtr("Kim  Park"), amount: 10, at: baseTime})
	f.repo.addLedger(ledgerSeed{org: "org-1", name: strPtr("kim park"), amount: 10, at: baseTime})
	f.repo.addLedger(ledgerSeed{org: "org-1", name: strPtr("Anonymous"), amount: 10, at: baseTime})
	f.repo.addLedger(ledgerSeed{org: "org-2", email: strPtr("anon@x.com"), name: strPtr("anonymous"), amount: 10, at: baseTime})
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("solo@x.com"), amount: 10, at: baseTime})
	f.repo.addLegacy("org-1", "legacy-solo", strPtr("solo@x.com"), 10, baseTime)
}

func TestDonorService_DetectDuplicates(t *testing.T) {
	f := newDonorFixture(t)
	seedDuplicates(f)
	ctx := context.Background()

	first, err := f.srv.DetectDuplicates(ctx, f.scope)
	require.NoError(t, err)
	second, err := f.srv.DetectDuplicates(ctx, f.scope)
	require.NoError(t, err)

	t.Run("idempotent", func(t *testing.T) {
		assert.Equal(t, first, second)
	})

	t.Run("groups", func(t *testing.T) {
		require.Len(t, first, 2)
		assert.Equal(t, entity.DuplicateSameEmail, first[0].Type)
		assert.Equal(t, "sam@x.com", first[0].Key)
		assert.Len(t, first[0].Donors, 2)
		assert.Equal(t, entity.DuplicateSimilarName, first[1].Type)
		assert.Equal(t, "kim park", first[1].Key)
		assert.Len(t, first[1].Donors, 2)
	})

	t.Run("mutually exclusive", func(t *testing.T) {
		byEmail := map[string]struct{}{}
		for _, g := range first {
			if g.Type != entity.DuplicateSameEmail {
				continue
			}
			for _, d := range g.Donors {
				byEmail[d.Identifier] = struct{}{}
			}
		}
		for _, g := range first {
			if g.Type != entity.DuplicateSimilarName {
				continue
			}
			for _, d := range g.Donors {
				assert.NotContains(t, byEmail, d.Identifier)
			}
		}
	})
}

func TestDonorService_UpdateDonor_RevertRoundTrip(t *testing.T) {
	f := newDonorFixture(t)
	f.seedSmiths()
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("other@x.com"), name: strPtr("Other"), amount: 5, at: baseTime})
	ctx := context.Background()
	before := f.repo.snapshot()

	result, err := f.srv.UpdateDonor(ctx, f.actor, f.scope, "a@x.com", usecase.DonorEdit{NewEmail: strPtr("b@x.com"), NewName: strPtr("B Smith")})
	require.NoError(t, err)
	assert.Equal(t, 3, result.AffectedCount)
	assert.Equal(t, "a@x.com", entity.StringValue(result.OldEmail))
	assert.Equal(t, "A Smith", entity.StringValue(result.OldName))
	assert.NotEqual(t, before, f.repo.snapshot())

	reverted, err := f.srv.RevertChange(ctx, f.actor, f.scope, result.ChangeID, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, reverted.AffectedCount)
	assert.Equal(t, before, f.repo.snapshot())

	original, err := f.changes.FindByID(ctx, f.scope.OrganizationIDs, result.ChangeID)
	require.NoError(t, err)
	assert.True(t, original.IsReverted)
	assert.NotNil(t, original.RevertedAt)

	revert, err := f.changes.FindByID(ctx, f.scope.OrganizationIDs, reverted.ChangeID)
	require.NoError(t, err)
	assert.Equal(t, entity.ChangeTypeUpdate, revert.ChangeType)
	assert.False(t, revert.IsReverted)
	assert.Equal(t, "Revert of change #1", entity.StringValue(revert.Notes))
}

// A bulk change records one old name, so reverting it writes that name to every
// row it touched, including rows that carried a different name or none.
func TestDonorService_RevertBulkChange_RestoresRecordedName(t *testing.T) {
	f := newDonorFixture(t)
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("a@x.com"), name: strPtr("A Smith"), amount: 10, at: baseTime})
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("a@x.com"), name: strPtr("Alex"), amount: 10, at: baseTime.Add(time.Hour)})
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("a@x.com"), amount: 10, at: baseTime.Add(2 * time.Hour)})
	ctx := context.Background()

	result, err := f.srv.UpdateDonor(ctx, f.actor, f.scope, "a@x.com", usecase.DonorEdit{NewEmail: strPtr("b@x.com"), NewName: strPtr("B Smith")})
	require.NoError(t, err)
	require.NotNil(t, result.OldName)

	reverted, err := f.srv.RevertChange(ctx, f.actor, f.scope, result.ChangeID, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, reverted.AffectedCount)

	for id, identity := range f.repo.snapshot() {
		assert.Equal(t, "a@x.com", entity.StringValue(identity[0]), "row %d email", id)
		assert.Equal(t, *result.OldName, entity.StringValue(identity[1]), "row %d name", id)
	}
}

func TestDonorService_UpdateDonor_NameOnlyIdentity(t *testing.T) {
	f := newDonorFixture(t)
	f.seedSmiths()
	ctx := context.Background()
	before := f.repo.snapshot()

	result, err := f.srv.UpdateDonor(ctx, f.actor, f.scope, "name_without_email_A Smith", usecase.DonorEdit{NewEmail: strPtr("smith@x.com")})
	require.NoError(t, err)
	assert.Equal(t, 2, result.AffectedCount)
	assert.Nil(t, result.OldEmail)
	assert.Nil(t, result.NewName)

	detail, err := f.srv.GetDonor(ctx, f.scope, "smith@x.com")
	require.NoError(t, err)
	assert.Equal(t, 2, detail.Donor.DonationCount)

	_, err = f.srv.RevertChange(ctx, f.actor, f.scope, result.ChangeID, nil)
	require.NoError(t, err)
	assert.Equal(t, before, f.repo.snapshot())
}

func TestDonorService_RevertChange_OnlyOnce(t *testing.T) {
	f := newDonorFixture(t)
	f.seedSmiths()
	ctx := context.Background()

	result, err := f.srv.UpdateDonor(ctx, f.actor, f.scope, "a@x.com", usecase.DonorEdit{NewName: strPtr("Alex Smith")})
	require.NoError(t, err)

	_, err = f.srv.RevertChange(ctx, f.actor, f.scope, result.ChangeID, nil)
	require.NoError(t, err)
	rows := f.changes.count()

	_, err = f.srv.RevertChange(ctx, f.actor, f.scope, result.ChangeID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrChangeAlreadyReverted)
	assert.Equal(t, rows, f.changes.count())

	_, err = f.srv.RevertChange(ctx, f.actor, f.scope, 999, nil)
	assert.ErrorIs(t, err, domainerrors.ErrChangeNotFound)
}

func TestDonorService_UpdateDonor_Errors(t *testing.T) {
	f := newDonorFixture(t)
	f.repo.addLegacy("org-1", "legacy-only", strPtr("legacy@x.com"), 10, baseTime)
	ctx := context.Background()

	_, err := f.srv.UpdateDonor(ctx, f.actor, f.scope, "legacy@x.com", usecase.DonorEdit{NewName: strPtr(" ")})
	assert.ErrorIs(t, err, domainerrors.ErrNothingToUpdate)

	// Legacy rows are never rewritten, so a legacy-only donor has nothing to update.
	_, err = f.srv.UpdateDonor(ctx, f.actor, f.scope, "legacy@x.com", usecase.DonorEdit{NewName: strPtr("Lee")})
	assert.ErrorIs(t, err, domainerrors.ErrDonorNotFound)
	assert.Equal(t, 0, f.changes.count())
}

func TestDonorService_UpdateDonor_AuditFailureDoesNotFailMutation(t *testing.T) {
	f := newDonorFixture(t)
	f.seedSmiths()
	f.changes.failCreate = errors.New("audit table locked")
	f.publisher.err = errors.New("broker down")

	result, err := f.srv.UpdateDonor(context.Background(), f.actor, f.scope, "a@x.com", usecase.DonorEdit{NewName: strPtr("Alex")})

	require.NoError(t, err)
	assert.Equal(t, 3, result.AffectedCount)
	assert.Zero(t, result.ChangeID)
	assert.Equal(t, 0, f.changes.count())
}

func TestDonorService_UpdateTransaction(t *testing.T) {
	f := newDonorFixture(t)
	f.seedSmiths()
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("t@x.com"), amount: 12, at: baseTime, paymentID: "pay-target"})
	f.repo.addLegacy("org-1", "legacy-tx", strPtr("l@x.com"), 10, baseTime)
	ctx := context.Background()
	before := f.repo.snapshot()

	impersonating := &entity.Session{
		OrganizationID: "org-1",
		Email:          "admin@kiosk.dev",
		IsSuperAdmin:   true,
		Impersonating:  "org-1",
		Impersonator:   &entity.Impersonator{Email: "admin@kiosk.dev", OrganizationID: "org-admin"},
	}

	result, err := f.srv.UpdateTransaction(ctx, impersonating, f.scope, "pay-target", usecase.DonorEdit{NewName: strPtr("Tess")})
	require.NoError(t, err)
	assert.Equal(t, 1, result.AffectedCount)

	change, err := f.changes.FindByID(ctx, f.scope.OrganizationIDs, result.ChangeID)
	require.NoError(t, err)
	assert.Equal(t, entity.ChangeTypeTransactionUpdate, change.ChangeType)
	require.NotNil(t, change.DonationID)
	assert.Equal(t, "admin@kiosk.dev", entity.StringValue(change.AdminEmail))
	assert.Equal(t, "admin@kiosk.dev", change.ChangedBy)

	_, err = f.srv.RevertChange(ctx, f.actor, f.scope, result.ChangeID, nil)
	require.NoError(t, err)
	assert.Equal(t, before, f.repo.snapshot())

	_, err = f.srv.UpdateTransaction(ctx, f.actor, f.scope, "legacy-tx", usecase.DonorEdit{NewName: strPtr("L")})
	assert.ErrorIs(t, err, domainerrors.ErrLegacyDonationReadOnly)

	_, err = f.srv.UpdateTransaction(ctx, f.actor, f.scope, "missing", usecase.DonorEdit{NewName: strPtr("L")})
	assert.ErrorIs(t, err, domainerrors.ErrDonationNotFound)
}

func TestDonorService_RevertTransactionUpdate_WithoutStoredRow(t *testing.T) {
	f := newDonorFixture(t)
	target := f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("new@x.com"), name: strPtr("New"), amount: 12, at: baseTime})
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("new@x.com"), name: strPtr("New"), amount: 12, at: baseTime.Add(-time.Hour)})
	changedAt := time.Now()
	// Only the first row was touched by the edit being reverted.
	f.repo.ledger[0].UpdatedAt = changedAt
	ctx := context.Background()

	change := &entity.DonorChange{
		OrganizationID:           "org-1",
		OldEmail:                 strPtr("old@x.com"),
		OldName:                  nil,
		NewEmail:                 strPtr("new@x.com"),
		NewName:                  strPtr("New"),
		ChangeType:               entity.ChangeTypeTransactionUpdate,
		AffectedTransactionCount: 1,
		ChangedAt:                changedAt,
	}
	require.NoError(t, f.changes.Create(ctx, change))

	result, err := f.srv.RevertChange(ctx, f.actor, f.scope, change.ID, strPtr("typo"))
	require.NoError(t, err)
	assert.Equal(t, 1, result.AffectedCount)

	snapshot := f.repo.snapshot()
	assert.Equal(t, "old@x.com", entity.StringValue(snapshot[target.ID][0]))
	assert.Nil(t, snapshot[target.ID][1])
	assert.Equal(t, "new@x.com", entity.StringValue(snapshot[target.ID+1][0]))
}

func TestDonorService_History(t *testing.T) {
	f := newDonorFixture(t)
	f.seedSmiths()
	ctx := context.Background()

	result, err := f.srv.UpdateDonor(ctx, f.actor, f.scope, "a@x.com", usecase.DonorEdit{NewName: strPtr("Alex Smith")})
	require.NoError(t, err)

	history, err := f.srv.GetDonorHistory(ctx, f.scope, "a@x.com")
	require.NoError(t, err)
	require.Len(t, history.History, 1)
	assert.Equal(t, result.ChangeID, history.History[0].ID)
	assert.Empty(t, history.Message)

	require.NoError(t, f.srv.DeleteChange(ctx, f.scope, result.ChangeID))
	assert.ErrorIs(t, f.srv.DeleteChange(ctx, f.scope, result.ChangeID), domainerrors.ErrChangeNotFound)

	detail, err := f.srv.GetDonor(ctx, f.scope, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Alex Smith", detail.Donor.Name)

	f.changes.unavailable = true
	history, err = f.srv.GetDonorHistory(ctx, f.scope, "a@x.com")
	require.NoError(t, err)
	assert.Empty(t, history.History)
	assert.Equal(t, historyUnavailableMessage, history.Message)
}

func TestDonorService_ListDonors(t *testing.T) {
	f := newDonorFixture(t)
	f.seedSmiths()
	f.repo.addLedger(ledgerSeed{org: "org-1", email: strPtr("r@x.com"), name: strPtr("Rae"), amount: 500, recurring: true, at: baseTime})
	ctx := context.Background()

	list, err := f.srv.ListDonors(ctx, f.scope, usecase.DonorQuery{SortBy: "unknown", Page: entity.PageRequest{Page: 1, Limit: 2}})

	require.NoError(t, err)
	require.Len(t, list.Donors, 2)
	assert.Equal(t, "r@x.com", list.Donors[0].Identifier)
	assert.Equal(t, "a@x.com", list.Donors[1].Identifier)
	assert.Equal(t, 3, list.Pagination.TotalCount)
	assert.Equal(t, 3, list.Statistics.TotalDonors)
	assert.Equal(t, 1, list.Statistics.RecurringDonors)
	assert.Equal(t, 2, list.Statistics.DonorsWithEmail)
	assert.InDelta(t, 700.0, list.Statistics.TotalAmount, 0.001)
}
