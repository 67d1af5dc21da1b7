// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"kioskdash/internal/domain/entity"
)

// Domain-specific errors for tenant persistence.
var (
	// ErrOrganizationNotFound is returned when an organization row does not exist.
	ErrOrganizationNotFound = errors.New("organization not found")
	// ErrConnectionNotFound is returned when no active connection exists for an organization.
	ErrConnectionNotFound = errors.New("connection not found")
)

// OrganizationRepository defines persistence operations for organizations.
type OrganizationRepository interface {
	// FindByID retrieves one organization.
	FindByID(ctx context.Context, organizationID string) (*entity.Organization, error)

	// FindByIDs retrieves the organizations among ids, ordered by name.
	FindByIDs(ctx context.Context, organizationIDs []string) ([]*entity.Organization, error)

	// ListAll retrieves every organization, ordered by name.
	ListAll(ctx context.Context) ([]*entity.Organization, error)

	// Upsert creates the organization or refreshes its merchant and name.
	Upsert(ctx context.Context, org *entity.Organization) error
}

// ConnectionRepository defines persistence operations for merchant connections.
// Token fields on entity.Connection are plaintext; implementations seal them at rest.
type ConnectionRepository interface {
	// FindActiveByOrganizationID returns the newest active connection of an organization.
	FindActiveByOrganizationID(ctx context.Context, organizationID string) (*entity.Connection, error)

	// FindOrganizationIDsByMerchantID returns the distinct organizations with an
	// active connection to the merchant.
	FindOrganizationIDsByMerchantID(ctx context.Context, merchantID string) ([]string, error)

	// Upsert stores the connection keyed by (organization, merchant, location).
	Upsert(ctx context.Context, conn *entity.Connection) error
}
