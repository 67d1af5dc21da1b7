package entity

import "time"

// Impersonator records the super-admin identity behind an impersonation session.
type Impersonator struct {
	Email          string
	OrganizationID string
	MerchantID     string
	MerchantName   string
}

// Session is the decoded content of a signed, stateless session token.
type Session struct {
	OrganizationID string
	MerchantID     string
	MerchantName   string
	Email          string
	IsSuperAdmin   bool
	Impersonating  string        // Target organization ID while impersonating, empty otherwise.
	Impersonator   *Impersonator // Originating admin while impersonating.
	IssuedAt       time.Time
	ExpiresAt      time.Time
}

// IsImpersonating reports whether the session is a super-admin impersonation session.
func (s *Session) IsImpersonating() bool {
	return s != nil && s.Impersonating != ""
}

// CurrentOrganizationID resolves the organization every data query must be scoped to.
func (s *Session) CurrentOrganizationID() string {
	if s == nil {
		return ""
	}
	if s.Impersonating != "" {
		return s.Impersonating
	}

	return s.OrganizationID
}

// Actor returns the identity recorded as "changed_by" on audit rows.
func (s *Session) Actor() string {
	if s == nil {
		return ""
	}
	if s.Email != "" {
		return s.Email
	}

	return s.MerchantID
}

// AdminEmail returns the impersonating admin's email, or nil for regular sessions.
func (s *Session) AdminEmail() *string {
	if s == nil || s.Impersonator == nil || s.Impersonator.Email == "" {
		return nil
	}

	email := s.Impersonator.Email

	return &email
}
