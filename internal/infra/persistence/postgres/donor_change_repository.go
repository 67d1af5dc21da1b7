package postgres

import (
	"context"
	"time"

	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/domain/repository"
	"kioskdash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// donorChangeRepository implements the append-only audit log on 'donor_changes'.
type donorChangeRepository struct {
	db *gorm.DB
}

// NewDonorChangeRepository is the constructor for donorChangeRepository.
func NewDonorChangeRepository(db *gorm.DB) repository.DonorChangeRepository {
	return &donorChangeRepository{db: db}
}

// Create appends a change and fills its id.
func (repo *donorChangeRepository) Create(ctx context.Context, change *entity.DonorChange) error {
	changeM := fromDonorChangeDomain(change)

	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Create(changeM).Error; err != nil {
		if isUndefinedTable(err) {
			return repository.ErrChangeHistoryUnavailable
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record donor change")
	}

	change.ID = changeM.ID

	return nil
}

// FindByID retrieves one change within the organizations in scope.
func (repo *donorChangeRepository) FindByID(ctx context.Context, organizationIDs []string, id int64) (*entity.DonorChange, error) {
	var changeM model.DonorChangeModel

	// Read from the primary so a revert sees its own earlier writes.
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("organization_id IN ?", organizationIDs).
		Where("id = ?", id).
		First(&changeM).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, repository.ErrChangeNotFound
		case isUndefinedTable(err):
			return nil, repository.ErrChangeHistoryUnavailable
		}

		return nil, errors.Wrap(err, "failed to find donor change")
	}

	return toDonorChangeDomain(&changeM), nil
}

// FindByIdentity lists changes whose old or new identity matches, newest first.
func (repo *donorChangeRepository) FindByIdentity(ctx context.Context, organizationIDs []string, identity entity.DonorIdentity) ([]*entity.DonorChange, error) {
	q := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("organization_id IN ?", organizationIDs)

	if identity.IsNameOnly() {
		q = q.Where("((old_name = ? AND COALESCE(old_email, '') = '') OR (new_name = ? AND COALESCE(new_email, '') = ''))",
			identity.Name, identity.Name)
	} else {
		q = q.Where("(LOWER(old_email) = LOWER(?) OR LOWER(new_email) = LOWER(?))", identity.Email, identity.Email)
	}

	var changeModels []*model.DonorChangeModel
	if err := q.Order("changed_at DESC, id DESC").Find(&changeModels).Error; err != nil {
		if isUndefinedTable(err) {
			return nil, repository.ErrChangeHistoryUnavailable
		}

		return nil, errors.Wrap(err, "failed to list donor changes")
	}

	changes := make([]*entity.DonorChange, 0, len(changeModels))
	for _, m := range changeModels {
		changes = append(changes, toDonorChangeDomain(m))
	}

	return changes, nil
}

// MarkReverted flips is_reverted with a conditional update so that only one
// concurrent revert wins.
func (repo *donorChangeRepository) MarkReverted(ctx context.Context, id int64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.DonorChangeModel{}).
		Where("id = ? AND is_reverted = ?", id, false).
		Updates(map[string]any{
			"is_reverted": true,
			"reverted_at": time.Now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark donor change reverted")
	}

	return result.RowsAffected == 1, nil
}

// Delete hard-removes a change row.
func (repo *donorChangeRepository) Delete(ctx context.Context, organizationIDs []string, id int64) error {
	result := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("organization_id IN ?", organizationIDs).
		Where("id = ?", id).
		Delete(&model.DonorChangeModel{})
	if result.Error != nil {
		if isUndefinedTable(result.Error) {
			return repository.ErrChangeHistoryUnavailable
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete donor change")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChangeNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDonorChangeDomain(data *model.DonorChangeModel) *entity.DonorChange {
	if data == nil {
		return nil
	}

	var merged []entity.DonorRef
	for _, d := range data.MergedDonors.Data() {
		merged = append(merged, entity.DonorRef{Email: d.Email, Name: d.Name})
	}

	return &entity.DonorChange{
		ID:                       data.ID,
		OrganizationID:           data.OrganizationID,
		OldEmail:                 data.OldEmail,
		OldName:                  data.OldName,
		NewEmail:                 data.NewEmail,
		NewName:                  data.NewName,
		ChangeType:               entity.ChangeType(data.ChangeType),
		AffectedTransactionCount: data.AffectedTransactionCount,
		ChangedBy:                data.ChangedBy,
		AdminEmail:               data.AdminEmail,
		ChangedAt:                data.ChangedAt,
		IsReverted:               data.IsReverted,
		RevertedAt:               data.RevertedAt,
		Notes:                    data.Notes,
		DonationID:               data.DonationID,
		MergedDonors:             merged,
	}
}

func fromDonorChangeDomain(data *entity.DonorChange) *model.DonorChangeModel {
	if data == nil {
		return nil
	}

	merged := make([]model.MergedDonor, 0, len(data.MergedDonors))
	for _, d := range data.MergedDonors {
		merged = append(merged, model.MergedDonor{Email: d.Email, Name: d.Name})
	}

	return &model.DonorChangeModel{
		ID:                       data.ID,
		OrganizationID:           data.OrganizationID,
		OldEmail:                 data.OldEmail,
		OldName:                  data.OldName,
		NewEmail:                 data.NewEmail,
		NewName:                  data.NewName,
		ChangeType:               string(data.ChangeType),
		AffectedTransactionCount: data.AffectedTransactionCount,
		ChangedBy:                data.ChangedBy,
		AdminEmail:               data.AdminEmail,
		ChangedAt:                data.ChangedAt,
		IsReverted:               data.IsReverted,
		RevertedAt:               data.RevertedAt,
		Notes:                    data.Notes,
		DonationID:               data.DonationID,
		MergedDonors:             datatypes.NewJSONType(merged),
	}
}
