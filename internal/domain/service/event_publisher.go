package service

import (
	"context"
	"time"
)

// DonorChangeEvent announces a committed donor identity mutation to downstream consumers.
type DonorChangeEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	ChangeID       int64     `json:"change_id,omitempty"`
	OrganizationID string    `json:"organization_id"`
	ChangeType     string    `json:"change_type"`
	OldEmail       *string   `json:"old_email,omitempty"`
	OldName        *string   `json:"old_name,omitempty"`
	NewEmail       *string   `json:"new_email,omitempty"`
	NewName        *string   `json:"new_name,omitempty"`
	AffectedCount  int       `json:"affected_count"`
	ChangedBy      string    `json:"changed_by"`
	ChangedAt      time.Time `json:"changed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDonorChange publishes a donor change event
	PublishDonorChange(ctx context.Context, event *DonorChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
