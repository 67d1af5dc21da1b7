package impl

import (
	"context"
	"log/slog"

	deliverycontext "kioskdash/internal/delivery/context"
	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/domain/repository"
	"kioskdash/internal/domain/service"
	"kioskdash/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// connectService implements the ConnectUsecase interface.
type connectService struct {
	oauth     service.PaymentsOAuthService
	states    service.OAuthStateStore
	sessions  usecase.SessionUsecase
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewConnectService is the constructor for connectService.
func NewConnectService(
	oauth service.PaymentsOAuthService,
	states service.OAuthStateStore,
	sessions usecase.SessionUsecase,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ConnectUsecase {
	return &connectService{
		oauth:     oauth,
		states:    states,
		sessions:  sessions,
		txManager: txManager,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *connectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AuthorizationURL remembers a fresh state for the organization and returns the provider consent URL.
func (srv *connectService) AuthorizationURL(ctx context.Context, organizationID string) string {
	state := uuid.NewString()
	srv.states.Put(state, organizationID)

	srv.log(ctx).Debug("OAuth handshake started", slog.String("organization_id", organizationID))

	return srv.oauth.AuthCodeURL(state)
}

// HandleCallback completes the handshake and signs the merchant in.
func (srv *connectService) HandleCallback(ctx context.Context, state, code string) (*usecase.SessionToken, error) {
	if code == "" {
		return nil, domainerrors.ErrOAuthCodeInvalid
	}

	organizationID, ok := srv.states.Take(state)
	if !ok {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	token, err := srv.oauth.Exchange(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.String("error", err.Error()))

		return nil, domainerrors.ErrOAuthFailed.WithDetails("code exchange failed")
	}

	profile, err := srv.oauth.MerchantProfile(ctx, token.AccessToken)
	if err != nil {
		srv.log(ctx).Warn("Merchant profile lookup failed", slog.String("error", err.Error()))

		return nil, domainerrors.ErrOAuthFailed.WithDetails("merchant profile unavailable")
	}

	locations, err := srv.oauth.Locations(ctx, token.AccessToken)
	if err != nil {
		srv.log(ctx).Warn("Merchant locations lookup failed", slog.String("error", err.Error()))

		return nil, domainerrors.ErrOAuthFailed.WithDetails("merchant locations unavailable")
	}

	merchantID := token.MerchantID
	if merchantID == "" {
		merchantID = profile.ID
	}
	if merchantID == "" {
		return nil, domainerrors.ErrOAuthFailed.WithDetails("provider returned no merchant id")
	}
	if organizationID == "" {
		organizationID = uuid.NewString()
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		org := &entity.Organization{
			ID:         organizationID,
			MerchantID: merchantID,
			Name:       profile.BusinessName,
		}
		if err := repoFactory.NewOrganizationRepository().Upsert(ctx, org); err != nil {
			return errors.Wrap(err, "failed to save organization")
		}

		conn := &entity.Connection{
			OrganizationID: organizationID,
			MerchantID:     merchantID,
			LocationID:     primaryLocationID(locations),
			AccessToken:    token.AccessToken,
			RefreshToken:   token.RefreshToken,
			ExpiresAt:      token.ExpiresAt,
			IsActive:       true,
		}
		if err := repoFactory.NewConnectionRepository().Upsert(ctx, conn); err != nil {
			return errors.Wrap(err, "failed to save connection")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to save merchant connection",
			slog.String("merchant_id", merchantID),
			slog.String("error", err.Error()),
		)

		return nil, errors.WithStack(domainerrors.ErrTransactionFailed)
	}

	srv.log(ctx).Info("Merchant connected",
		slog.String("organization_id", organizationID),
		slog.String("merchant_id", merchantID),
	)

	return srv.sessions.CreateSession(ctx, organizationID, merchantID, profile.BusinessName, profile.Email)
}

// primaryLocationID picks the first active location, then any location.
func primaryLocationID(locations []service.Location) string {
	for _, loc := range locations {
		if loc.Active {
			return loc.ID
		}
	}
	if len(locations) > 0 {
		return locations[0].ID
	}

	return ""
}
