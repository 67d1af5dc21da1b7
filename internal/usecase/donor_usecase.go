package usecase

import (
	"context"

	"kioskdash/internal/domain/entity"
)

// DonorQuery is a filtered, sorted, paginated donor listing request.
type DonorQuery struct {
	Filter    entity.DonationFilter
	Page      entity.PageRequest
	SortBy    string
	SortOrder entity.SortOrder
}

// DonorList is one page of donors.
type DonorList struct {
	Donors     []*entity.Donor
	Pagination entity.Pagination
	Statistics entity.DonorStatistics
}

// DonorDetail is a donor and every donation attributed to it.
type DonorDetail struct {
	Donor           *entity.Donor
	DonationHistory []*entity.Donation
}

// DonorHistory is the audit trail of one donor. Message explains an empty trail.
type DonorHistory struct {
	History []*entity.DonorChange
	Message string
}

// DonorEdit carries the optional replacement identity for a donor or a transaction.
type DonorEdit struct {
	NewEmail *string
	NewName  *string
	Notes    *string
}

// MergeDonorsInput lists the donors to fold into the primary identity.
type MergeDonorsInput struct {
	DonorsToMerge []entity.DonorRef
	PrimaryDonor  entity.DonorRef
	Notes         *string
}

// MergeResult describes the identity every merged row now carries.
type MergeResult struct {
	ChangeID         int64
	MergedDonor      entity.DonorRef
	DonationsUpdated int
}

// DonorUsecase is the donor identity resolver.
type DonorUsecase interface {
	ListDonors(ctx context.Context, scope *entity.Scope, query DonorQuery) (*DonorList, error)
	GetDonor(ctx context.Context, scope *entity.Scope, identifier string) (*DonorDetail, error)
	DetectDuplicates(ctx context.Context, scope *entity.Scope) ([]*entity.DuplicateGroup, error)
	UpdateDonor(ctx context.Context, actor *entity.Session, scope *entity.Scope, identifier string, edit DonorEdit) (*entity.MutationResult, error)
	MergeDonors(ctx context.Context, actor *entity.Session, scope *entity.Scope, input MergeDonorsInput) (*MergeResult, error)
	UpdateTransaction(ctx context.Context, actor *entity.Session, scope *entity.Scope, paymentID string, edit DonorEdit) (*entity.MutationResult, error)
	RevertChange(ctx context.Context, actor *entity.Session, scope *entity.Scope, changeID int64, notes *string) (*entity.MutationResult, error)
	DeleteChange(ctx context.Context, scope *entity.Scope, changeID int64) error
	GetDonorHistory(ctx context.Context, scope *entity.Scope, identifier string) (*DonorHistory, error)
}
