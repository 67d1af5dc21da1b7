package auth

import (
	"strings"
	"testing"
	"time"

	"kioskdash/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "test_session_secret_key_very_long_for_testing"

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTokenService(t *testing.T) (*sessionTokenService, *fakeClock) {
	t.Helper()

	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := newSessionTokenService(testSessionSecret, clock.Now)
	require.NoError(t, err)

	return svc, clock
}

func TestSessionTokenService_IssueAndVerify(t *testing.T) {
	svc, clock := newTestTokenService(t)

	session := &entity.Session{
		OrganizationID: "org-1",
		MerchantID:     "merchant-1",
		MerchantName:   "Corner Bakery",
		Email:          "owner@example.com",
	}

	token, err := svc.Issue(session, 30*24*time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, clock.t, session.IssuedAt)
	assert.Equal(t, clock.t.Add(30*24*time.Hour), session.ExpiresAt)

	got := svc.Verify(token)
	require.NotNil(t, got)
	assert.Equal(t, "org-1", got.OrganizationID)
	assert.Equal(t, "merchant-1", got.MerchantID)
	assert.Equal(t, "Corner Bakery", got.MerchantName)
	assert.Equal(t, "owner@example.com", got.Email)
	assert.False(t, got.IsSuperAdmin)
	assert.False(t, got.IsImpersonating())
	assert.Nil(t, got.Impersonator)
}

func TestSessionTokenService_NormalSessionTTL(t *testing.T) {
	svc, clock := newTestTokenService(t)

	token, err := svc.Issue(&entity.Session{OrganizationID: "org-1", MerchantID: "m-1"}, 30*24*time.Hour)
	require.NoError(t, err)

	clock.Advance(30*24*time.Hour - time.Minute)
	assert.NotNil(t, svc.Verify(token), "token should still verify on day 30")

	clock.Advance(24 * time.Hour)
	assert.Nil(t, svc.Verify(token), "token must fail on day 31")
}

func TestSessionTokenService_ImpersonationTTL(t *testing.T) {
	svc, clock := newTestTokenService(t)

	session := &entity.Session{
		OrganizationID: "org-target",
		MerchantID:     "m-target",
		Email:          "admin@example.com",
		IsSuperAdmin:   true,
		Impersonating:  "org-target",
		Impersonator: &entity.Impersonator{
			Email:          "admin@example.com",
			OrganizationID: "org-admin",
			MerchantID:     "m-admin",
		},
	}
	token, err := svc.Issue(session, time.Hour)
	require.NoError(t, err)

	clock.Advance(59 * time.Minute)
	got := svc.Verify(token)
	require.NotNil(t, got)
	assert.True(t, got.IsImpersonating())
	assert.Equal(t, "org-target", got.CurrentOrganizationID())
	require.NotNil(t, got.Impersonator)
	assert.Equal(t, "org-admin", got.Impersonator.OrganizationID)

	clock.Advance(2 * time.Minute)
	assert.Nil(t, svc.Verify(token))
}

func TestSessionTokenService_RejectsInvalidTokens(t *testing.T) {
	svc, _ := newTestTokenService(t)

	token, err := svc.Issue(&entity.Session{OrganizationID: "org-1", MerchantID: "m-1"}, time.Hour)
	require.NoError(t, err)

	other, err := newSessionTokenService("another_secret_key_that_is_long_enough", time.Now)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name  string
		token string
		svc   *sessionTokenService
	}{
		{name: "empty", token: "", svc: svc},
		{name: "malformed", token: "clearly-not-a-jwt-token-format", svc: svc},
		{name: "tampered payload", token: tampered, svc: svc},
		{name: "wrong secret", token: token, svc: other},
		{name: "unsigned", token: "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJvcmdhbml6YXRpb25faWQiOiJvcmctMSJ9.", svc: svc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, tt.svc.Verify(tt.token))
		})
	}
}

func TestNewSessionTokenService_RequiresSecret(t *testing.T) {
	_, err := newSessionTokenService("", time.Now)
	assert.Error(t, err)
}
