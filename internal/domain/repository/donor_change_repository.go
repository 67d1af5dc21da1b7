package repository

import (
	"context"
	"errors"

	"kioskdash/internal/domain/entity"
)

var (
	// ErrChangeNotFound is returned when a change id does not exist in scope.
	ErrChangeNotFound = errors.New("donor change not found")
	// ErrChangeHistoryUnavailable is returned when the audit table does not exist.
	ErrChangeHistoryUnavailable = errors.New("donor change history unavailable")
)

// DonorChangeRepository is the append-only audit log of donor identity mutations.
type DonorChangeRepository interface {
	// Create appends a change and fills its id.
	Create(ctx context.Context, change *entity.DonorChange) error

	// FindByID retrieves one change within the organizations in scope.
	FindByID(ctx context.Context, organizationIDs []string, id int64) (*entity.DonorChange, error)

	// FindByIdentity lists changes whose old or new identity matches, newest first.
	FindByIdentity(ctx context.Context, organizationIDs []string, identity entity.DonorIdentity) ([]*entity.DonorChange, error)

	// MarkReverted flips is_reverted from false to true and reports whether this call flipped it.
	MarkReverted(ctx context.Context, id int64) (bool, error)

	// Delete hard-removes a change row.
	Delete(ctx context.Context, organizationIDs []string, id int64) error
}
