package postgres

import (
	"context"

	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/domain/repository"
	"kioskdash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// organizationRepository implements the repository.OrganizationRepository interface.
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository is the constructor for organizationRepository.
func NewOrganizationRepository(db *gorm.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

// FindByID retrieves one organization.
func (repo *organizationRepository) FindByID(ctx context.Context, organizationID string) (*entity.Organization, error) {
	var orgM model.OrganizationModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("organization_id = ?", organizationID).
		First(&orgM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization by id")
	}

	return toOrganizationDomain(&orgM), nil
}

// FindByIDs retrieves the organizations among ids, ordered by name.
func (repo *organizationRepository) FindByIDs(ctx context.Context, organizationIDs []string) ([]*entity.Organization, error) {
	if len(organizationIDs) == 0 {
		return []*entity.Organization{}, nil
	}

	var orgModels []*model.OrganizationModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("organization_id IN ?", organizationIDs).
		Order("name ASC").
		Find(&orgModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find organizations by ids")
	}

	return toOrganizationDomains(orgModels), nil
}

// ListAll retrieves every organization, ordered by name.
func (repo *organizationRepository) ListAll(ctx context.Context) ([]*entity.Organization, error) {
	var orgModels []*model.OrganizationModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Order("name ASC").
		Find(&orgModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list organizations")
	}

	return toOrganizationDomains(orgModels), nil
}

// Upsert creates the organization or refreshes its merchant and name.
func (repo *organizationRepository) Upsert(ctx context.Context, org *entity.Organization) error {
	orgM := fromOrganizationDomain(org)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "organization_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"merchant_id", "name", "updated_at"}),
		}).
		Create(orgM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required organization information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert organization")
	}

	org.CreatedAt = orgM.CreatedAt
	org.UpdatedAt = orgM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toOrganizationDomain(data *model.OrganizationModel) *entity.Organization {
	if data == nil {
		return nil
	}

	return &entity.Organization{
		ID:         data.OrganizationID,
		MerchantID: data.MerchantID,
		Name:       data.Name,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toOrganizationDomains(data []*model.OrganizationModel) []*entity.Organization {
	orgs := make([]*entity.Organization, 0, len(data))
	for _, m := range data {
		orgs = append(orgs, toOrganizationDomain(m))
	}

	return orgs
}

func fromOrganizationDomain(data *entity.Organization) *model.OrganizationModel {
	if data == nil {
		return nil
	}

	return &model.OrganizationModel{
		OrganizationID: data.ID,
		MerchantID:     data.MerchantID,
		Name:           data.Name,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
