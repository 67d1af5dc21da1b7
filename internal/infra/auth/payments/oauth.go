// Package payments adapts the payments provider OAuth handshake and merchant API.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kioskdash/config"
	"kioskdash/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	merchantProfilePath = "/v2/merchants/me"
	locationsPath       = "/v2/locations"
	locationStatusLive  = "ACTIVE"
)

// OAuthService exchanges authorization codes with the payments provider and reads merchant data.
type OAuthService struct {
	oauth      *oauth2.Config
	apiBaseURL string
	httpClient *http.Client
}

// NewOAuthService creates the payments provider OAuth adapter.
func NewOAuthService(cfg *config.Config) service.PaymentsOAuthService {
	p := cfg.PaymentsOAuth
	if p == nil {
		p = &config.PaymentsOAuthConfig{}
	}

	return &OAuthService{
		oauth: &oauth2.Config{
			ClientID:     p.ClientID,
			ClientSecret: p.ClientSecret,
			RedirectURL:  p.RedirectURI,
			Scopes:       p.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   p.AuthURL,
				TokenURL:  p.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		apiBaseURL: strings.TrimRight(p.APIBaseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// AuthCodeURL returns the provider consent URL carrying state.
func (s *OAuthService) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades an authorization code for provider credentials.
func (s *OAuthService) Exchange(ctx context.Context, code string) (*service.ProviderToken, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange authorization code")
	}

	merchantID, _ := token.Extra("merchant_id").(string)
	if merchantID == "" {
		return nil, errors.New("token response did not include a merchant id")
	}

	expiresAt := token.Expiry
	if raw, ok := token.Extra("expires_at").(string); ok && expiresAt.IsZero() {
		if parsed, perr := time.Parse(time.RFC3339, raw); perr == nil {
			expiresAt = parsed
		}
	}

	return &service.ProviderToken{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    expiresAt,
		MerchantID:   merchantID,
	}, nil
}

// MerchantProfile fetches the merchant owning the access token.
func (s *OAuthService) MerchantProfile(ctx context.Context, accessToken string) (*service.MerchantProfile, error) {
	var body struct {
		Merchant struct {
			ID           string `json:"id"`
			BusinessName string `json:"business_name"`
		} `json:"merchant"`
	}
	if err := s.get(ctx, accessToken, merchantProfilePath, &body); err != nil {
		return nil, errors.Wrap(err, "failed to fetch merchant profile")
	}

	profile := &service.MerchantProfile{
		ID:           body.Merchant.ID,
		BusinessName: body.Merchant.BusinessName,
	}

	// The merchant record has no contact email; the first location that has one supplies it.
	locations, err := s.locations(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	for _, loc := range locations {
		if loc.BusinessEmail != "" {
			profile.Email = loc.BusinessEmail

			break
		}
	}

	return profile, nil
}

// Locations lists the merchant's locations.
func (s *OAuthService) Locations(ctx context.Context, accessToken string) ([]service.Location, error) {
	raw, err := s.locations(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	locations := make([]service.Location, 0, len(raw))
	for _, loc := range raw {
		locations = append(locations, service.Location{
			ID:     loc.ID,
			Name:   loc.Name,
			Active: loc.Status == locationStatusLive,
		})
	}

	return locations, nil
}

type providerLocation struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	BusinessEmail string `json:"business_email"`
}

func (s *OAuthService) locations(ctx context.Context, accessToken string) ([]providerLocation, error) {
	var body struct {
		Locations []providerLocation `json:"locations"`
	}
	if err := s.get(ctx, accessToken, locationsPath, &body); err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return body.Locations, nil
}

func (s *OAuthService) get(ctx context.Context, accessToken, path string, out any) error {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	client := s.oauth.Client(ctx, &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.apiBaseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

		return fmt.Errorf("%s returned status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}
