// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"slices"

	"kioskdash/config"
	deliverycontext "kioskdash/internal/delivery/context"
	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/domain/repository"
	"kioskdash/internal/domain/service"
	"kioskdash/internal/usecase"

	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	authConfig *config.AuthConfig
	tokens     service.SessionTokenService
	txManager  repository.TransactionManager
	logger     *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	cfg *config.Config,
	tokens service.SessionTokenService,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		authConfig: cfg.Auth,
		tokens:     tokens,
		txManager:  txManager,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession mints a normal session. Super admin status is recomputed from the allow-list every time.
func (srv *sessionService) CreateSession(ctx context.Context, organizationID, merchantID, merchantName, email string) (*usecase.SessionToken, error) {
	if organizationID == "" || merchantID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("organization_id and merchant_id are required")
	}

	session := &entity.Session{
		OrganizationID: organizationID,
		MerchantID:     merchantID,
		MerchantName:   merchantName,
		Email:          email,
		IsSuperAdmin:   srv.authConfig.IsSuperAdminEmail(email),
	}

	token, err := srv.tokens.Issue(session, srv.authConfig.SessionTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Session created",
		slog.String("organization_id", organizationID),
		slog.Bool("is_super_admin", session.IsSuperAdmin),
	)

	return &usecase.SessionToken{Token: token, Session: session}, nil
}

// VerifySession returns nil for a missing, malformed, tampered or expired token.
func (srv *sessionService) VerifySession(token string) *entity.Session {
	if token == "" {
		return nil
	}

	return srv.tokens.Verify(token)
}

// RequireAuth enforces the two authorization tiers.
func (srv *sessionService) RequireAuth(session *entity.Session, requireSuperAdmin bool) (*entity.Session, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if requireSuperAdmin && !session.IsSuperAdmin {
		return nil, domainerrors.ErrSuperAdminRequired
	}

	return session, nil
}

// ImpersonateOrganization mints a short-lived session scoped to the target organization.
func (srv *sessionService) ImpersonateOrganization(ctx context.Context, admin *entity.Session, targetOrganizationID string) (*usecase.SessionToken, error) {
	if _, err := srv.RequireAuth(admin, true); err != nil {
		return nil, err
	}
	if targetOrganizationID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("organization_id is required")
	}

	var (
		conn *entity.Connection
		org  *entity.Organization
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		conn, err = repoFactory.NewConnectionRepository().FindActiveByOrganizationID(ctx, targetOrganizationID)
		if err != nil {
			if errors.Is(err, repository.ErrConnectionNotFound) {
				return domainerrors.ErrConnectionNotFound
			}

			return errors.Wrap(err, "failed to find target connection")
		}

		org, err = repoFactory.NewOrganizationRepository().FindByID(ctx, targetOrganizationID)
		if err != nil && !errors.Is(err, repository.ErrOrganizationNotFound) {
			return errors.Wrap(err, "failed to find target organization")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Nested impersonation keeps pointing at the original admin identity.
	impersonator := admin.Impersonator
	if impersonator == nil {
		impersonator = &entity.Impersonator{
			Email:          admin.Email,
			OrganizationID: admin.OrganizationID,
			MerchantID:     admin.MerchantID,
			MerchantName:   admin.MerchantName,
		}
	}

	session := &entity.Session{
		OrganizationID: conn.OrganizationID,
		MerchantID:     conn.MerchantID,
		Email:          impersonator.Email,
		IsSuperAdmin:   true,
		Impersonating:  targetOrganizationID,
		Impersonator:   impersonator,
	}
	if org != nil {
		session.MerchantName = org.Name
	}

	token, err := srv.tokens.Issue(session, srv.authConfig.ImpersonationTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue impersonation token")
	}

	srv.log(ctx).Info("Impersonation started",
		slog.String("admin_email", impersonator.Email),
		slog.String("organization_id", targetOrganizationID),
	)

	return &usecase.SessionToken{Token: token, Session: session}, nil
}

// EndImpersonation mints a fresh normal session from the impersonator identity rather than clearing a flag.
func (srv *sessionService) EndImpersonation(ctx context.Context, session *entity.Session) (*usecase.SessionToken, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if !session.IsImpersonating() || session.Impersonator == nil {
		return nil, domainerrors.ErrNotImpersonating
	}

	admin := session.Impersonator
	srv.log(ctx).Info("Impersonation ended",
		slog.String("admin_email", admin.Email),
		slog.String("organization_id", session.Impersonating),
	)

	return srv.CreateSession(ctx, admin.OrganizationID, admin.MerchantID, admin.MerchantName, admin.Email)
}

// CurrentOrganizationID is the single place the impersonation target overrides the session organization.
func (srv *sessionService) CurrentOrganizationID(session *entity.Session) string {
	return session.CurrentOrganizationID()
}

// ResolveScope expands the current organization to all organizations connected to the same merchant.
func (srv *sessionService) ResolveScope(ctx context.Context, session *entity.Session) (*entity.Scope, error) {
	organizationID := srv.CurrentOrganizationID(session)
	if organizationID == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	scope := &entity.Scope{ActiveOrganizationID: organizationID}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		connRepo := repoFactory.NewConnectionRepository()

		conn, err := connRepo.FindActiveByOrganizationID(ctx, organizationID)
		if err != nil {
			if errors.Is(err, repository.ErrConnectionNotFound) {
				return domainerrors.ErrConnectionNotFound
			}

			return errors.Wrap(err, "failed to find connection")
		}
		scope.MerchantID = conn.MerchantID

		ids, err := connRepo.FindOrganizationIDsByMerchantID(ctx, conn.MerchantID)
		if err != nil {
			return errors.Wrap(err, "failed to find merchant organizations")
		}
		scope.OrganizationIDs = ids

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !slices.Contains(scope.OrganizationIDs, organizationID) {
		scope.OrganizationIDs = append(scope.OrganizationIDs, organizationID)
	}

	return scope, nil
}

// SwitchOrganization re-issues a normal session for another organization of the same merchant.
func (srv *sessionService) SwitchOrganization(ctx context.Context, session *entity.Session, organizationID string) (*usecase.SessionToken, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthorized
	}
	if session.IsImpersonating() {
		return nil, domainerrors.ErrForbidden.WithDetails("end impersonation before switching organization")
	}

	scope, err := srv.ResolveScope(ctx, session)
	if err != nil {
		return nil, err
	}
	if !scope.Contains(organizationID) {
		return nil, domainerrors.ErrOrganizationOutOfScope
	}

	return srv.CreateSession(ctx, organizationID, session.MerchantID, session.MerchantName, session.Email)
}

// ListOrganizations lists the organizations connected to the session's merchant.
func (srv *sessionService) ListOrganizations(ctx context.Context, session *entity.Session) ([]*entity.Organization, error) {
	scope, err := srv.ResolveScope(ctx, session)
	if err != nil {
		return nil, err
	}

	var orgs []*entity.Organization
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orgs, err = repoFactory.NewOrganizationRepository().FindByIDs(ctx, scope.OrganizationIDs)

		return errors.Wrap(err, "failed to find organizations")
	})
	if err != nil {
		return nil, err
	}

	return orgs, nil
}

// ListAllOrganizations backs the impersonation picker.
func (srv *sessionService) ListAllOrganizations(ctx context.Context, session *entity.Session) ([]*entity.Organization, error) {
	if _, err := srv.RequireAuth(session, true); err != nil {
		return nil, err
	}

	var orgs []*entity.Organization
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		orgs, err = repoFactory.NewOrganizationRepository().ListAll(ctx)

		return errors.Wrap(err, "failed to list organizations")
	})
	if err != nil {
		return nil, err
	}

	return orgs, nil
}
