package postgres

import (
	"context"

	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/domain/repository"
	"kioskdash/internal/domain/service"
	"kioskdash/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// connectionRepository implements the repository.ConnectionRepository interface.
// Provider tokens are sealed before they reach the table.
type connectionRepository struct {
	db     *gorm.DB
	sealer service.CredentialSealer
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *gorm.DB, sealer service.CredentialSealer) repository.ConnectionRepository {
	return &connectionRepository{db: db, sealer: sealer}
}

// FindActiveByOrganizationID returns the newest active connection of an organization.
func (repo *connectionRepository) FindActiveByOrganizationID(ctx context.Context, organizationID string) (*entity.Connection, error) {
	var connM model.ConnectionModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("organization_id = ? AND is_active = ?", organizationID, true).
		Order("updated_at DESC").
		First(&connM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, errors.Wrap(err, "failed to find connection by organization")
	}

	return repo.toDomain(&connM)
}

// FindOrganizationIDsByMerchantID returns the distinct organizations actively connected to the merchant.
func (repo *connectionRepository) FindOrganizationIDsByMerchantID(ctx context.Context, merchantID string) ([]string, error) {
	var ids []string

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.ConnectionModel{}).
		Where("merchant_id = ? AND is_active = ?", merchantID, true).
		Distinct().
		Order("organization_id").
		Pluck("organization_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list merchant organizations")
	}

	return ids, nil
}

// Upsert stores the connection keyed by (organization, merchant, location).
func (repo *connectionRepository) Upsert(ctx context.Context, conn *entity.Connection) error {
	connM, err := repo.fromDomain(conn)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "organization_id"}, {Name: "merchant_id"}, {Name: "location_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"access_token_sealed", "refresh_token_sealed", "expires_at", "is_active", "updated_at",
			}),
		}).
		Create(connM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required connection information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert connection")
	}

	conn.ID = connM.ID
	conn.CreatedAt = connM.CreatedAt
	conn.UpdatedAt = connM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func (repo *connectionRepository) toDomain(data *model.ConnectionModel) (*entity.Connection, error) {
	access, err := repo.sealer.Open(data.AccessTokenSealed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open access token")
	}

	var refresh string
	if data.RefreshTokenSealed != "" {
		if refresh, err = repo.sealer.Open(data.RefreshTokenSealed); err != nil {
			return nil, errors.Wrap(err, "failed to open refresh token")
		}
	}

	conn := &entity.Connection{
		ID:             data.ID,
		OrganizationID: data.OrganizationID,
		MerchantID:     data.MerchantID,
		LocationID:     data.LocationID,
		AccessToken:    access,
		RefreshToken:   refresh,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if data.ExpiresAt != nil {
		conn.ExpiresAt = *data.ExpiresAt
	}

	return conn, nil
}

func (repo *connectionRepository) fromDomain(data *entity.Connection) (*model.ConnectionModel, error) {
	access, err := repo.sealer.Seal(data.AccessToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to seal access token")
	}

	var refresh string
	if data.RefreshToken != "" {
		if refresh, err = repo.sealer.Seal(data.RefreshToken); err != nil {
			return nil, errors.Wrap(err, "failed to seal refresh token")
		}
	}

	connM := &model.ConnectionModel{
		ID:                 data.ID,
		OrganizationID:     data.OrganizationID,
		MerchantID:         data.MerchantID,
		LocationID:         data.LocationID,
		AccessTokenSealed:  access,
		RefreshTokenSealed: refresh,
		IsActive:           data.IsActive,
	}
	if !data.ExpiresAt.IsZero() {
		expiresAt := data.ExpiresAt
		connM.ExpiresAt = &expiresAt
	}

	return connM, nil
}
