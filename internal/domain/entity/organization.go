// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Organization is a tenant of the dashboard. One payments merchant may own many organizations.
type Organization struct {
	ID         string    // Stable organization identifier.
	MerchantID string    // The payments provider merchant that owns the organization.
	Name       string    // Display name, usually the merchant business name.
	CreatedAt  time.Time // Timestamp of the first successful connection.
	UpdatedAt  time.Time
}

// Connection binds an organization to a merchant's provider credentials and a physical location.
type Connection struct {
	ID             uuid.UUID
	OrganizationID string
	MerchantID     string
	LocationID     string
	AccessToken    string // Plain provider access token. Sealed by the persistence layer.
	RefreshToken   string // Plain provider refresh token. Sealed by the persistence layer.
	ExpiresAt      time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Scope is the set of organizations a request may read or mutate.
// It is resolved from the active organization through its merchant.
type Scope struct {
	MerchantID           string
	ActiveOrganizationID string
	OrganizationIDs      []string
}

// Contains reports whether organizationID belongs to the scope.
func (s *Scope) Contains(organizationID string) bool {
	if s == nil {
		return false
	}

	for _, id := range s.OrganizationIDs {
		if id == organizationID {
			return true
		}
	}

	return false
}

// Narrow returns a copy of the scope restricted to a single organization.
func (s *Scope) Narrow(organizationID string) *Scope {
	return &Scope{
		MerchantID:           s.MerchantID,
		ActiveOrganizationID: s.ActiveOrganizationID,
		OrganizationIDs:      []string{organizationID},
	}
}
