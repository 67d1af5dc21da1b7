package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_CurrentOrganizationID(t *testing.T) {
	var nilSession *Session
	assert.Empty(t, nilSession.CurrentOrganizationID())

	s := &Session{OrganizationID: "org-1"}
	assert.Equal(t, "org-1", s.CurrentOrganizationID())
	assert.False(t, s.IsImpersonating())

	s.Impersonating = "org-x"
	assert.Equal(t, "org-x", s.CurrentOrganizationID())
	assert.True(t, s.IsImpersonating())
}

func TestSession_Actor(t *testing.T) {
	assert.Equal(t, "owner@x.com", (&Session{Email: "owner@x.com", MerchantID: "m-1"}).Actor())
	assert.Equal(t, "m-1", (&Session{MerchantID: "m-1"}).Actor())
}

func TestSession_AdminEmail(t *testing.T) {
	assert.Nil(t, (&Session{Email: "owner@x.com"}).AdminEmail())

	s := &Session{Impersonating: "org-x", Impersonator: &Impersonator{Email: "admin@kiosk.dev"}}
	assert.Equal(t, "admin@kiosk.dev", StringValue(s.AdminEmail()))
}

func TestScope(t *testing.T) {
	scope := &Scope{MerchantID: "m-1", ActiveOrganizationID: "org-1", OrganizationIDs: []string{"org-1", "org-2"}}

	assert.True(t, scope.Contains("org-2"))
	assert.False(t, scope.Contains("org-3"))
	assert.False(t, (*Scope)(nil).Contains("org-1"))

	narrow := scope.Narrow("org-2")
	assert.Equal(t, []string{"org-2"}, narrow.OrganizationIDs)
	assert.Equal(t, "org-1", narrow.ActiveOrganizationID)
}
