package entity

import "time"

// ChangeType is the kind of donor identity mutation an audit row records.
type ChangeType string

const (
	ChangeTypeUpdate            ChangeType = "update"
	ChangeTypeMerge             ChangeType = "merge"
	ChangeTypeTransactionUpdate ChangeType = "transaction_update"
)

// TransactionRevertWindow bounds the updated_at match used to find the row a
// transaction_update touched.
const TransactionRevertWindow = time.Minute

// DonorChange is one append-only audit row. A change can be reverted once;
// the revert itself is recorded as a new row.
type DonorChange struct {
	ID                       int64      `json:"id"`
	OrganizationID           string     `json:"organization_id"`
	OldEmail                 *string    `json:"old_email"`
	OldName                  *string    `json:"old_name"`
	NewEmail                 *string    `json:"new_email"`
	NewName                  *string    `json:"new_name"`
	ChangeType               ChangeType `json:"change_type"`
	AffectedTransactionCount int        `json:"affected_transaction_count"`
	ChangedBy                string     `json:"changed_by"`
	AdminEmail               *string    `json:"admin_email"`
	ChangedAt                time.Time  `json:"changed_at"`
	IsReverted               bool       `json:"is_reverted"`
	RevertedAt               *time.Time `json:"reverted_at"`
	Notes                    *string    `json:"notes"`
	DonationID               *int64     `json:"donation_id,omitempty"` // Set for transaction_update rows.
	MergedDonors             []DonorRef `json:"merged_donors,omitempty"`
}

// IsBulk reports whether the change rewrote every row of an identity.
func (c *DonorChange) IsBulk() bool {
	return c.ChangeType != ChangeTypeTransactionUpdate
}

// MutationResult is returned by every donor identity mutation.
type MutationResult struct {
	ChangeID      int64   `json:"change_id,omitempty"`
	AffectedCount int     `json:"affected_count"`
	OldEmail      *string `json:"old_email"`
	OldName       *string `json:"old_name"`
	NewEmail      *string `json:"new_email"`
	NewName       *string `json:"new_name"`
}
