package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"kioskdash/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"token_type":    "bearer",
			"expires_at":    "2030-01-01T00:00:00Z",
			"merchant_id":   "MERCHANT1",
		})
	})
	mux.HandleFunc(merchantProfilePath, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"merchant":{"id":"MERCHANT1","business_name":"Corner Bakery"}}`))
	})
	mux.HandleFunc(locationsPath, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"locations":[
			{"id":"L1","name":"Main","status":"INACTIVE"},
			{"id":"L2","name":"Annex","status":"ACTIVE","business_email":"owner@bakery.test"}
		]}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func newTestOAuthService(srvURL string) *OAuthService {
	cfg := &config.Config{
		PaymentsOAuth: &config.PaymentsOAuthConfig{
			ClientID:     "client",
			ClientSecret: "secret",
			RedirectURI:  "https://dash.test/oauth/callback",
			Scopes:       []string{"MERCHANT_PROFILE_READ", "PAYMENTS_READ"},
			AuthURL:      srvURL + "/oauth2/authorize",
			TokenURL:     srvURL + "/oauth2/token",
			APIBaseURL:   srvURL + "/",
		},
	}

	return NewOAuthService(cfg).(*OAuthService)
}

func TestOAuthService_AuthCodeURL(t *testing.T) {
	svc := newTestOAuthService("https://provider.test")

	raw := svc.AuthCodeURL("state-123")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "/oauth2/authorize", u.Path)
	assert.Equal(t, "state-123", u.Query().Get("state"))
	assert.Equal(t, "client", u.Query().Get("client_id"))
	assert.Equal(t, "MERCHANT_PROFILE_READ PAYMENTS_READ", u.Query().Get("scope"))
}

func TestOAuthService_ExchangeAndProfile(t *testing.T) {
	srv := newTestProvider(t)
	svc := newTestOAuthService(srv.URL)
	ctx := context.Background()

	token, err := svc.Exchange(ctx, "good-code")
	require.NoError(t, err)
	assert.Equal(t, "access-1", token.AccessToken)
	assert.Equal(t, "refresh-1", token.RefreshToken)
	assert.Equal(t, "MERCHANT1", token.MerchantID)
	assert.Equal(t, 2030, token.ExpiresAt.Year())

	profile, err := svc.MerchantProfile(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "MERCHANT1", profile.ID)
	assert.Equal(t, "Corner Bakery", profile.BusinessName)
	assert.Equal(t, "owner@bakery.test", profile.Email)

	locations, err := svc.Locations(ctx, token.AccessToken)
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.False(t, locations[0].Active)
	assert.True(t, locations[1].Active)
}

func TestOAuthService_ExchangeRejected(t *testing.T) {
	srv := newTestProvider(t)
	svc := newTestOAuthService(srv.URL)

	_, err := svc.Exchange(context.Background(), "bad-code")
	assert.Error(t, err)
}
