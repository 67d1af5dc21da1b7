package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "kioskdash/internal/delivery/context"
	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/domain/repository"
	"kioskdash/internal/domain/service"
	"kioskdash/internal/usecase"

	"github.com/pkg/errors"
)

const historyUnavailableMessage = "Change history is not available for this organization"

// donorService implements the DonorUsecase interface.
type donorService struct {
	donations    usecase.DonationUsecase
	donationRepo repository.DonationRepository
	changeRepo   repository.DonorChangeRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// NewDonorService is the constructor for donorService.
func NewDonorService(
	donations usecase.DonationUsecase,
	donationRepo repository.DonationRepository,
	changeRepo repository.DonorChangeRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DonorUsecase {
	return &donorService{
		donations:    donations,
		donationRepo: donationRepo,
		changeRepo:   changeRepo,
		publisher:    publisher,
		logger:       logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *donorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDonors groups the filtered donation union into donors, then sorts and paginates them.
func (srv *donorService) ListDonors(ctx context.Context, scope *entity.Scope, query usecase.DonorQuery) (*usecase.DonorList, error) {
	page := query.Page.Normalize()

	donations, err := srv.donations.CanonicalDonations(ctx, scope, query.Filter)
	if err != nil {
		return nil, err
	}

	donors := aggregateDonors(donations)
	sortDonors(donors, query.SortBy, query.SortOrder)

	return &usecase.DonorList{
		Donors:     entity.Paginate(donors, page),
		Pagination: entity.NewPagination(page, len(donors)),
		Statistics: donorStatistics(donors),
	}, nil
}

// GetDonor aggregates every donation owned by the identifier.
func (srv *donorService) GetDonor(ctx context.Context, scope *entity.Scope, identifier string) (*usecase.DonorDetail, error) {
	if scope == nil || len(scope.OrganizationIDs) == 0 {
		return nil, domainerrors.ErrUnauthorized
	}

	identity, ok := entity.ParseDonorIdentifier(identifier)
	if !ok {
		return nil, domainerrors.ErrDonorIdentifierInvalid
	}

	donations, err := srv.donationRepo.FindDonorDonations(ctx, scope.OrganizationIDs, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find donor donations")
	}
	if len(donations) == 0 {
		return nil, domainerrors.ErrDonorNotFound
	}

	donor := aggregateIdentity(identity, donations)
	sortDonations(donations, defaultDonationSort, entity.SortDesc)

	return &usecase.DonorDetail{Donor: donor, DonationHistory: donations}, nil
}

// DetectDuplicates reports donors that probably describe the same person.
func (srv *donorService) DetectDuplicates(ctx context.Context, scope *entity.Scope) ([]*entity.DuplicateGroup, error) {
	donations, err := srv.donations.CanonicalDonations(ctx, scope, entity.DonationFilter{})
	if err != nil {
		return nil, err
	}

	groups := detectDuplicateGroups(aggregateDonors(donations))
	srv.log(ctx).Debug("Duplicate donors detected", slog.Int("groups", len(groups)))

	return groups, nil
}

// UpdateDonor rewrites the identity on every ledger row the donor owns. Legacy rows stay untouched.
func (srv *donorService) UpdateDonor(ctx context.Context, actor *entity.Session, scope *entity.Scope, identifier string, edit usecase.DonorEdit) (*entity.MutationResult, error) {
	if scope == nil || len(scope.OrganizationIDs) == 0 {
		return nil, domainerrors.ErrUnauthorized
	}

	identity, ok := entity.ParseDonorIdentifier(identifier)
	if !ok {
		return nil, domainerrors.ErrDonorIdentifierInvalid
	}

	update := editUpdate(edit)
	if update.IsEmpty() {
		return nil, domainerrors.ErrNothingToUpdate
	}

	oldName := entity.NullableString(identity.Name)
	if !identity.IsNameOnly() {
		donations, err := srv.donationRepo.FindDonorDonations(ctx, scope.OrganizationIDs, identity)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find donor donations")
		}
		oldName = entity.NullableString(displayName(donations))
	}

	affected, err := srv.donationRepo.UpdateDonorIdentity(ctx, scope.OrganizationIDs, identity, update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update donor")
	}
	if affected == 0 {
		return nil, domainerrors.ErrDonorNotFound
	}

	change := &entity.DonorChange{
		OrganizationID:           scope.ActiveOrganizationID,
		OldEmail:                 entity.NullableString(identity.Email),
		OldName:                  oldName,
		NewEmail:                 update.Email,
		NewName:                  update.Name,
		ChangeType:               entity.ChangeTypeUpdate,
		AffectedTransactionCount: int(affected),
		Notes:                    edit.Notes,
	}
	srv.recordChange(ctx, actor, change)

	return mutationResult(change), nil
}

// MergeDonors folds several donors into the primary identity in one statement.
func (srv *donorService) MergeDonors(ctx context.Context, actor *entity.Session, scope *entity.Scope, input usecase.MergeDonorsInput) (*usecase.MergeResult, error) {
	if scope == nil || len(scope.OrganizationIDs) == 0 {
		return nil, domainerrors.ErrUnauthorized
	}
	if len(input.DonorsToMerge) < 2 {
		return nil, domainerrors.ErrMergeRequiresTwoDonors
	}

	name := strings.TrimSpace(input.PrimaryDonor.Name)
	if name == "" {
		return nil, domainerrors.ErrMergePrimaryNameRequired
	}

	matches := make([]entity.DonorMatch, 0, len(input.DonorsToMerge)+1)
	for _, ref := range append([]entity.DonorRef{input.PrimaryDonor}, input.DonorsToMerge...) {
		if m := ref.Match(); !m.IsEmpty() {
			matches = append(matches, m)
		}
	}

	update := repository.DonorUpdate{Name: &name}
	email := mergedEmail(input.PrimaryDonor, input.DonorsToMerge)
	if email != "" {
		update.Email = &email
	}

	affected, err := srv.donationRepo.UpdateMatchingDonors(ctx, scope.OrganizationIDs, matches, update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to merge donors")
	}
	if affected == 0 {
		return nil, domainerrors.ErrNoMatchingDonations
	}

	first := input.DonorsToMerge[0]
	change := &entity.DonorChange{
		OrganizationID:           scope.ActiveOrganizationID,
		OldEmail:                 entity.NullableString(first.Email),
		OldName:                  entity.NullableString(first.Name),
		NewEmail:                 update.Email,
		NewName:                  update.Name,
		ChangeType:               entity.ChangeTypeMerge,
		AffectedTransactionCount: int(affected),
		Notes:                    input.Notes,
		MergedDonors:             input.DonorsToMerge,
	}
	srv.recordChange(ctx, actor, change)

	return &usecase.MergeResult{
		ChangeID:         change.ID,
		MergedDonor:      entity.DonorRef{Email: email, Name: name},
		DonationsUpdated: int(affected),
	}, nil
}

// UpdateTransaction rewrites the donor of a single ledger row.
func (srv *donorService) UpdateTransaction(ctx context.Context, actor *entity.Session, scope *entity.Scope, paymentID string, edit usecase.DonorEdit) (*entity.MutationResult, error) {
	if scope == nil || len(scope.OrganizationIDs) == 0 {
		return nil, domainerrors.ErrUnauthorized
	}

	update := editUpdate(edit)
	if update.IsEmpty() {
		return nil, domainerrors.ErrNothingToUpdate
	}

	donation, err := srv.donationRepo.FindLedgerByPaymentID(ctx, scope.OrganizationIDs, paymentID)
	if err != nil {
		if !errors.Is(err, repository.ErrDonationNotFound) {
			return nil, errors.Wrap(err, "failed to find donation")
		}
		if _, legacyErr := srv.donationRepo.FindLegacyByTransactionID(ctx, scope.OrganizationIDs, paymentID); legacyErr == nil {
			return nil, domainerrors.ErrLegacyDonationReadOnly
		}

		return nil, domainerrors.ErrDonationNotFound
	}

	affected, err := srv.donationRepo.UpdateDonationDonor(ctx, scope.OrganizationIDs, donation.ID, update)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update donation donor")
	}
	if affected == 0 {
		return nil, domainerrors.ErrDonationNotFound
	}

	donationID := donation.ID
	change := &entity.DonorChange{
		OrganizationID:           donation.OrganizationID,
		OldEmail:                 donation.DonorEmail,
		OldName:                  donation.DonorName,
		NewEmail:                 update.Email,
		NewName:                  update.Name,
		ChangeType:               entity.ChangeTypeTransactionUpdate,
		AffectedTransactionCount: int(affected),
		Notes:                    edit.Notes,
		DonationID:               &donationID,
	}
	srv.recordChange(ctx, actor, change)

	return mutationResult(change), nil
}

// RevertChange re-applies the old values of a change and appends the revert as a new change.
func (srv *donorService) RevertChange(ctx context.Context, actor *entity.Session, scope *entity.Scope, changeID int64, notes *string) (*entity.MutationResult, error) {
	if scope == nil || len(scope.OrganizationIDs) == 0 {
		return nil, domainerrors.ErrUnauthorized
	}

	original, err := srv.changeRepo.FindByID(ctx, scope.OrganizationIDs, changeID)
	if err != nil {
		return nil, changeLookupError(err)
	}
	if original.IsReverted {
		return nil, domainerrors.ErrChangeAlreadyReverted
	}

	// Only the fields the change wrote are restored. Blank old values restore NULL.
	var update repository.DonorUpdate
	if original.NewEmail != nil {
		oldEmail := entity.StringValue(original.OldEmail)
		update.Email = &oldEmail
	}
	if original.NewName != nil {
		oldName := entity.StringValue(original.OldName)
		update.Name = &oldName
	}
	if update.IsEmpty() {
		return nil, domainerrors.ErrNothingToUpdate
	}

	currentEmail, currentName := currentIdentity(original)

	var (
		affected   int64
		donationID *int64
	)
	if original.IsBulk() {
		identity := entity.DonorIdentity{Email: entity.StringValue(currentEmail), Name: entity.StringValue(currentName)}
		if identity.Email == "" && identity.Name == "" {
			return nil, domainerrors.ErrRevertTargetNotFound
		}
		affected, err = srv.donationRepo.UpdateDonorIdentity(ctx, scope.OrganizationIDs, identity, update)
	} else {
		var id int64
		id, err = srv.findRevertTarget(ctx, scope, original, entity.DonorMatch{Email: currentEmail, Name: currentName})
		if err != nil {
			return nil, err
		}
		donationID = &id
		affected, err = srv.donationRepo.UpdateDonationDonor(ctx, scope.OrganizationIDs, id, update)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to revert donor change")
	}
	if affected == 0 {
		return nil, domainerrors.ErrRevertTargetNotFound
	}

	flipped, err := srv.changeRepo.MarkReverted(ctx, original.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mark change reverted")
	}
	if !flipped {
		return nil, domainerrors.ErrChangeAlreadyReverted
	}

	if notes == nil {
		defaultNotes := fmt.Sprintf("Revert of change #%d", original.ID)
		notes = &defaultNotes
	}

	revert := &entity.DonorChange{
		OrganizationID:           original.OrganizationID,
		OldEmail:                 currentEmail,
		OldName:                  currentName,
		NewEmail:                 update.Email,
		NewName:                  update.Name,
		ChangeType:               entity.ChangeTypeUpdate,
		AffectedTransactionCount: int(affected),
		Notes:                    notes,
	}
	if !original.IsBulk() {
		revert.ChangeType = entity.ChangeTypeTransactionUpdate
		revert.DonationID = donationID
	}
	srv.recordChange(ctx, actor, revert)

	srv.log(ctx).Info("Donor change reverted",
		slog.Int64("change_id", original.ID),
		slog.Int64("affected", affected),
	)

	return mutationResult(revert), nil
}

// findRevertTarget prefers the stored row id and falls back to a value and updated_at match.
func (srv *donorService) findRevertTarget(ctx context.Context, scope *entity.Scope, change *entity.DonorChange, current entity.DonorMatch) (int64, error) {
	if change.DonationID != nil {
		return *change.DonationID, nil
	}

	id, err := srv.donationRepo.FindRecentlyUpdated(ctx, scope.OrganizationIDs, current, change.ChangedAt, entity.TransactionRevertWindow)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return 0, domainerrors.ErrRevertTargetNotFound
		}

		return 0, errors.Wrap(err, "failed to find revert target")
	}

	return id, nil
}

// DeleteChange removes an audit row without touching any donation.
func (srv *donorService) DeleteChange(ctx context.Context, scope *entity.Scope, changeID int64) error {
	if scope == nil || len(scope.OrganizationIDs) == 0 {
		return domainerrors.ErrUnauthorized
	}

	if err := srv.changeRepo.Delete(ctx, scope.OrganizationIDs, changeID); err != nil {
		return changeLookupError(err)
	}

	srv.log(ctx).Info("Donor change deleted", slog.Int64("change_id", changeID))

	return nil
}

// GetDonorHistory lists the changes touching the donor. A missing audit table yields an empty history.
func (srv *donorService) GetDonorHistory(ctx context.Context, scope *entity.Scope, identifier string) (*usecase.DonorHistory, error) {
	if scope == nil || len(scope.OrganizationIDs) == 0 {
		return nil, domainerrors.ErrUnauthorized
	}

	identity, ok := entity.ParseDonorIdentifier(identifier)
	if !ok {
		return nil, domainerrors.ErrDonorIdentifierInvalid
	}

	changes, err := srv.changeRepo.FindByIdentity(ctx, scope.OrganizationIDs, identity)
	if err != nil {
		if errors.Is(err, repository.ErrChangeHistoryUnavailable) {
			srv.log(ctx).Warn("Donor change history unavailable", slog.String("error", err.Error()))

			return &usecase.DonorHistory{History: []*entity.DonorChange{}, Message: historyUnavailableMessage}, nil
		}

		return nil, errors.Wrap(err, "failed to find donor history")
	}
	if changes == nil {
		changes = []*entity.DonorChange{}
	}

	return &usecase.DonorHistory{History: changes}, nil
}

// recordChange appends the audit row and publishes the event. Neither failure fails the mutation.
func (srv *donorService) recordChange(ctx context.Context, actor *entity.Session, change *entity.DonorChange) {
	change.ChangedBy = actor.Actor()
	change.AdminEmail = actor.AdminEmail()
	change.ChangedAt = srv.now()

	if err := srv.changeRepo.Create(ctx, change); err != nil {
		srv.log(ctx).Error("Failed to record donor change",
			slog.String("change_type", string(change.ChangeType)),
			slog.Int("affected", change.AffectedTransactionCount),
			slog.String("error", err.Error()),
		)
	}

	event := &service.DonorChangeEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		ChangeID:       change.ID,
		OrganizationID: change.OrganizationID,
		ChangeType:     string(change.ChangeType),
		OldEmail:       change.OldEmail,
		OldName:        change.OldName,
		NewEmail:       change.NewEmail,
		NewName:        change.NewName,
		AffectedCount:  change.AffectedTransactionCount,
		ChangedBy:      change.ChangedBy,
		ChangedAt:      change.ChangedAt,
	}
	if err := srv.publisher.PublishDonorChange(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish donor change event",
			slog.Int64("change_id", change.ID),
			slog.String("error", err.Error()),
		)
	}
}

// editUpdate treats blank replacement values as not provided.
func editUpdate(edit usecase.DonorEdit) repository.DonorUpdate {
	return repository.DonorUpdate{
		Email: entity.NullableString(entity.StringValue(edit.NewEmail)),
		Name:  entity.NullableString(entity.StringValue(edit.NewName)),
	}
}

// currentIdentity is the identity the change left behind on the rows it touched.
func currentIdentity(change *entity.DonorChange) (email, name *string) {
	email, name = change.OldEmail, change.OldName
	if change.NewEmail != nil {
		email = entity.NullableString(*change.NewEmail)
	}
	if change.NewName != nil {
		name = entity.NullableString(*change.NewName)
	}

	return email, name
}

func changeLookupError(err error) error {
	switch {
	case errors.Is(err, repository.ErrChangeNotFound):
		return domainerrors.ErrChangeNotFound
	case errors.Is(err, repository.ErrChangeHistoryUnavailable):
		return domainerrors.ErrChangeNotFound.WithDetails(historyUnavailableMessage)
	default:
		return errors.Wrap(err, "failed to load donor change")
	}
}

func mutationResult(change *entity.DonorChange) *entity.MutationResult {
	return &entity.MutationResult{
		ChangeID:      change.ID,
		AffectedCount: change.AffectedTransactionCount,
		OldEmail:      change.OldEmail,
		OldName:       change.OldName,
		NewEmail:      change.NewEmail,
		NewName:       change.NewName,
	}
}
