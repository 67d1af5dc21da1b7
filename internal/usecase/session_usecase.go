// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"kioskdash/internal/domain/entity"
)

// SessionToken is a freshly minted credential and the session it encodes.
type SessionToken struct {
	Token   string
	Session *entity.Session
}

// SessionUsecase is the session authority: it mints and interprets stateless
// sessions and resolves the organization scope every data query runs under.
type SessionUsecase interface {
	// CreateSession mints a normal-length session. Super admin status comes from the email allow-list.
	CreateSession(ctx context.Context, organizationID, merchantID, merchantName, email string) (*SessionToken, error)

	// VerifySession returns nil for any token that does not verify.
	VerifySession(token string) *entity.Session

	// RequireAuth fails with Unauthorized without a session and Forbidden when super admin is required but absent.
	RequireAuth(session *entity.Session, requireSuperAdmin bool) (*entity.Session, error)

	// ImpersonateOrganization mints a short-lived session scoped to the target organization.
	ImpersonateOrganization(ctx context.Context, admin *entity.Session, targetOrganizationID string) (*SessionToken, error)

	// EndImpersonation mints a fresh normal session from the originating admin identity.
	EndImpersonation(ctx context.Context, session *entity.Session) (*SessionToken, error)

	// CurrentOrganizationID is the impersonated organization if set, else the session organization.
	CurrentOrganizationID(session *entity.Session) string

	// ResolveScope expands the current organization to every organization of its merchant.
	ResolveScope(ctx context.Context, session *entity.Session) (*entity.Scope, error)

	// SwitchOrganization re-issues the session for another organization of the same merchant.
	SwitchOrganization(ctx context.Context, session *entity.Session, organizationID string) (*SessionToken, error)

	// ListOrganizations lists the organizations of the session's merchant.
	ListOrganizations(ctx context.Context, session *entity.Session) ([]*entity.Organization, error)

	// ListAllOrganizations lists every organization. Super admin only.
	ListAllOrganizations(ctx context.Context, session *entity.Session) ([]*entity.Organization, error)
}
