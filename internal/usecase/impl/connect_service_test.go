package impl

import (
	"context"
	"testing"
	"time"

	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/domain/repository"
	"kioskdash/internal/domain/service"
	mockRepo "kioskdash/internal/mocks/repository"
	mockService "kioskdash/internal/mocks/service"
	mockUsecase "kioskdash/internal/mocks/usecase"
	"kioskdash/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type connectServiceFixture struct {
	service   usecase.ConnectUsecase
	oauth     *mockService.MockPaymentsOAuthService
	states    *mockService.MockOAuthStateStore
	sessions  *mockUsecase.MockSessionUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestConnectService(t *testing.T) *connectServiceFixture {
	t.Helper()

	fx := &connectServiceFixture{
		oauth:     mockService.NewMockPaymentsOAuthService(t),
		states:    mockService.NewMockOAuthStateStore(t),
		sessions:  mockUsecase.NewMockSessionUsecase(t),
		txManager: mockRepo.NewMockTransactionManager(t),
	}
	fx.service = NewConnectService(fx.oauth, fx.states, fx.sessions, fx.txManager, newDiscardLogger())

	return fx
}

func TestConnectService_AuthorizationURL(t *testing.T) {
	fx := createTestConnectService(t)

	var remembered string
	fx.states.EXPECT().Put(mock.AnythingOfType("string"), "org-1").
		Run(func(state, _ string) { remembered = state }).
		Return()
	fx.oauth.EXPECT().AuthCodeURL(mock.AnythingOfType("string")).
		RunAndReturn(func(state string) string { return "https://provider.test/authorize?state=" + state })

	url := fx.service.AuthorizationURL(context.Background(), "org-1")

	_, err := uuid.Parse(remembered)
	require.NoError(t, err)
	assert.Equal(t, "https://provider.test/authorize?state="+remembered, url)
}

func TestConnectService_HandleCallback_Success(t *testing.T) {
	fx := createTestConnectService(t)
	ctx := context.Background()
	expires := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	fx.states.EXPECT().Take("state-1").Return("org-1", true)
	fx.oauth.EXPECT().Exchange(ctx, "code-1").
		Return(&service.ProviderToken{AccessToken: "access", RefreshToken: "refresh", ExpiresAt: expires, MerchantID: "m-1"}, nil)
	fx.oauth.EXPECT().MerchantProfile(ctx, "access").
		Return(&service.MerchantProfile{ID: "m-1", BusinessName: "Animal Shelter", Email: "owner@shelter.org"}, nil)
	fx.oauth.EXPECT().Locations(ctx, "access").
		Return([]service.Location{{ID: "loc-closed"}, {ID: "loc-main", Active: true}}, nil)

	fx.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			orgRepo := mockRepo.NewMockOrganizationRepository(t)
			connRepo := mockRepo.NewMockConnectionRepository(t)
			factory.EXPECT().NewOrganizationRepository().Return(orgRepo)
			factory.EXPECT().NewConnectionRepository().Return(connRepo)
			orgRepo.EXPECT().Upsert(ctx, &entity.Organization{ID: "org-1", MerchantID: "m-1", Name: "Animal Shelter"}).Return(nil)
			connRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(conn *entity.Connection) bool {
				return conn.OrganizationID == "org-1" &&
					conn.LocationID == "loc-main" &&
					conn.AccessToken == "access" &&
					conn.RefreshToken == "refresh" &&
					conn.ExpiresAt.Equal(expires) &&
					conn.IsActive
			})).Return(nil)

			return fn(factory)
		})

	want := &usecase.SessionToken{Token: "session", Session: &entity.Session{OrganizationID: "org-1"}}
	fx.sessions.EXPECT().CreateSession(ctx, "org-1", "m-1", "Animal Shelter", "owner@shelter.org").Return(want, nil)

	got, err := fx.service.HandleCallback(ctx, "state-1", "code-1")

	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestConnectService_HandleCallback_NewOrganization(t *testing.T) {
	fx := createTestConnectService(t)
	ctx := context.Background()

	fx.states.EXPECT().Take("state-1").Return("", true)
	fx.oauth.EXPECT().Exchange(ctx, "code-1").Return(&service.ProviderToken{AccessToken: "access"}, nil)
	fx.oauth.EXPECT().MerchantProfile(ctx, "access").Return(&service.MerchantProfile{ID: "m-2", BusinessName: "Food Bank"}, nil)
	fx.oauth.EXPECT().Locations(ctx, "access").Return(nil, nil)

	var minted string
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			orgRepo := mockRepo.NewMockOrganizationRepository(t)
			connRepo := mockRepo.NewMockConnectionRepository(t)
			factory.EXPECT().NewOrganizationRepository().Return(orgRepo)
			factory.EXPECT().NewConnectionRepository().Return(connRepo)
			orgRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Organization")).
				RunAndReturn(func(_ context.Context, org *entity.Organization) error {
					minted = org.ID

					return nil
				})
			connRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Connection")).Return(nil)

			return fn(factory)
		})
	fx.sessions.EXPECT().CreateSession(ctx, mock.AnythingOfType("string"), "m-2", "Food Bank", "").
		Return(&usecase.SessionToken{Token: "session"}, nil)

	_, err := fx.service.HandleCallback(ctx, "state-1", "code-1")

	require.NoError(t, err)
	_, parseErr := uuid.Parse(minted)
	assert.NoError(t, parseErr)
}

func TestConnectService_HandleCallback_Errors(t *testing.T) {
	ctx := context.Background()
	providerDown := errors.New("provider unavailable")

	tests := []struct {
		name  string
		state string
		code  string
		setup func(fx *connectServiceFixture)
		want  error
	}{
		{
			name: "missing code",
			code: "",
			want: domainerrors.ErrOAuthCodeInvalid,
		},
		{
			name:  "unknown state",
			state: "forged",
			code:  "code-1",
			setup: func(fx *connectServiceFixture) {
				fx.states.EXPECT().Take("forged").Return("", false)
			},
			want: domainerrors.ErrOAuthStateInvalid,
		},
		{
			name:  "exchange fails",
			state: "state-1",
			code:  "code-1",
			setup: func(fx *connectServiceFixture) {
				fx.states.EXPECT().Take("state-1").Return("org-1", true)
				fx.oauth.EXPECT().Exchange(ctx, "code-1").Return(nil, providerDown)
			},
			want: domainerrors.ErrOAuthFailed,
		},
		{
			name:  "profile fails",
			state: "state-1",
			code:  "code-1",
			setup: func(fx *connectServiceFixture) {
				fx.states.EXPECT().Take("state-1").Return("org-1", true)
				fx.oauth.EXPECT().Exchange(ctx, "code-1").Return(&service.ProviderToken{AccessToken: "access"}, nil)
				fx.oauth.EXPECT().MerchantProfile(ctx, "access").Return(nil, providerDown)
			},
			want: domainerrors.ErrOAuthFailed,
		},
		{
			name:  "no merchant id",
			state: "state-1",
			code:  "code-1",
			setup: func(fx *connectServiceFixture) {
				fx.states.EXPECT().Take("state-1").Return("org-1", true)
				fx.oauth.EXPECT().Exchange(ctx, "code-1").Return(&service.ProviderToken{AccessToken: "access"}, nil)
				fx.oauth.EXPECT().MerchantProfile(ctx, "access").Return(&service.MerchantProfile{}, nil)
				fx.oauth.EXPECT().Locations(ctx, "access").Return(nil, nil)
			},
			want: domainerrors.ErrOAuthFailed,
		},
		{
			name:  "store fails",
			state: "state-1",
			code:  "code-1",
			setup: func(fx *connectServiceFixture) {
				fx.states.EXPECT().Take("state-1").Return("org-1", true)
				fx.oauth.EXPECT().Exchange(ctx, "code-1").Return(&service.ProviderToken{AccessToken: "access"}, nil)
				fx.oauth.EXPECT().MerchantProfile(ctx, "access").Return(&service.MerchantProfile{ID: "m-1"}, nil)
				fx.oauth.EXPECT().Locations(ctx, "access").Return(nil, nil)
				fx.txManager.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("connection reset"))
			},
			want: domainerrors.ErrTransactionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestConnectService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			got, err := fx.service.HandleCallback(ctx, tt.state, tt.code)

			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, got)
		})
	}
}

func TestPrimaryLocationID(t *testing.T) {
	assert.Equal(t, "", primaryLocationID(nil))
	assert.Equal(t, "a", primaryLocationID([]service.Location{{ID: "a"}, {ID: "b"}}))
	assert.Equal(t, "b", primaryLocationID([]service.Location{{ID: "a"}, {ID: "b", Active: true}}))
}
