package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"paymentsOAuth": map[string]any{
			"clientId": "",
		},
		"secretKey": map[string]any{
			"session": "",
		},
		"auth": map[string]any{
			"superAdminEmails": []any{},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PAYMENTSOAUTH_CLIENTID", want: "paymentsOAuth.clientId"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "AUTH_SUPERADMINEMAILS", want: "auth.superAdminEmails"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, time.Hour, cfg.Auth.ImpersonationTTL)
	assert.Equal(t, defaultCookieName, cfg.Auth.CookieName)
	assert.Equal(t, "UTC", cfg.Reporting.Timezone)
	assert.Equal(t, 10, cfg.Reporting.TopDonorsLimit)
}

func TestAuthConfig_IsSuperAdminEmail(t *testing.T) {
	cfg := &AuthConfig{SuperAdminEmails: []string{" Ops@Kiosk.org ", "root@kiosk.org"}}

	assert.True(t, cfg.IsSuperAdminEmail("ops@kiosk.org"))
	assert.True(t, cfg.IsSuperAdminEmail("ROOT@kiosk.org"))
	assert.False(t, cfg.IsSuperAdminEmail("merchant@shop.com"))
	assert.False(t, cfg.IsSuperAdminEmail(""))

	var nilCfg *AuthConfig
	assert.False(t, nilCfg.IsSuperAdminEmail("ops@kiosk.org"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, splitList(" a@x.com, ,b@x.com "))
	assert.Empty(t, splitList(""))
}
