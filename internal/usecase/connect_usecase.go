package usecase

import "context"

// ConnectUsecase links an organization to a payments provider merchant through OAuth.
type ConnectUsecase interface {
	// AuthorizationURL starts a handshake. An empty organizationID creates a new organization.
	AuthorizationURL(ctx context.Context, organizationID string) string

	// HandleCallback completes the handshake, stores the connection and returns a new session.
	HandleCallback(ctx context.Context, state, code string) (*SessionToken, error)
}
