package service

import (
	"context"
	"time"
)

// ProviderToken is the credential set returned by the payments provider token exchange.
type ProviderToken struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	MerchantID   string
}

// MerchantProfile is the subset of the provider merchant record the dashboard needs.
type MerchantProfile struct {
	ID           string
	BusinessName string
	Email        string
}

// Location is a physical point of sale registered with the provider.
type Location struct {
	ID     string
	Name   string
	Active bool
}

// PaymentsOAuthService is the black-box OAuth handshake with the payments provider.
type PaymentsOAuthService interface {
	// AuthCodeURL returns the provider consent URL carrying state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for provider credentials.
	Exchange(ctx context.Context, code string) (*ProviderToken, error)

	// MerchantProfile fetches the merchant owning the access token.
	MerchantProfile(ctx context.Context, accessToken string) (*MerchantProfile, error)

	// Locations lists the merchant's locations.
	Locations(ctx context.Context, accessToken string) ([]Location, error)
}

// CredentialSealer encrypts provider secrets before they are stored.
type CredentialSealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// OAuthStateStore remembers in-flight authorization requests for CSRF protection.
type OAuthStateStore interface {
	// Put remembers state together with the organization the connection is for.
	Put(state, organizationID string)

	// Take consumes state, returning its organization and whether it was valid.
	Take(state string) (organizationID string, ok bool)
}
