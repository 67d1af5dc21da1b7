package handler

import (
	"net/http"
	"testing"
	"time"

	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	mockUsecase "kioskdash/internal/mocks/usecase"
	"kioskdash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newOAuthHandlerTest(t *testing.T) (*handlerTest, *mockUsecase.MockConnectUsecase) {
	ht := newHandlerTest(t)
	connect := mockUsecase.NewMockConnectUsecase(t)

	h := NewOAuthHandler(connect, NewSessionCookie(testCookieConfig()), testCookieConfig())
	ht.e.GET("/oauth/authorize", h.Authorize)
	ht.e.GET("/oauth/callback", h.Callback)

	return ht, connect
}

func TestOAuthHandler_Authorize(t *testing.T) {
	ht, connect := newOAuthHandlerTest(t)

	connect.EXPECT().
		AuthorizationURL(mock.Anything, "org-1").
		Return("https://provider.test/oauth2/authorize?state=abc")

	rec := ht.do(http.MethodGet, "/oauth/authorize?organization_id=org-1", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://provider.test/oauth2/authorize?state=abc", rec.Header().Get("Location"))
}

func TestOAuthHandler_Callback(t *testing.T) {
	ht, connect := newOAuthHandlerTest(t)

	connect.EXPECT().
		HandleCallback(mock.Anything, "state-1", "code-1").
		Return(&usecase.SessionToken{
			Token:   "fresh-token",
			Session: &entity.Session{OrganizationID: "org-1", ExpiresAt: time.Now().Add(time.Hour)},
		}, nil)

	rec := ht.do(http.MethodGet, "/oauth/callback?code=code-1&state=state-1", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://dash.kiosk.test/dashboard", rec.Header().Get("Location"))
	assert.Equal(t, "fresh-token", findCookie(t, rec.Result().Cookies(), "kiosk_session").Value)
}

func TestOAuthHandler_Callback_Errors(t *testing.T) {
	t.Run("provider denied", func(t *testing.T) {
		ht, _ := newOAuthHandlerTest(t)

		rec := ht.do(http.MethodGet, "/oauth/callback?error=access_denied&error_description=user+denied", "")

		requireErrorCode(t, rec, http.StatusUnauthorized, "OAUTH_FAILED")
	})

	t.Run("unknown state", func(t *testing.T) {
		ht, connect := newOAuthHandlerTest(t)
		connect.EXPECT().
			HandleCallback(mock.Anything, "stale", "code-1").
			Return(nil, domainerrors.ErrOAuthStateInvalid)

		rec := ht.do(http.MethodGet, "/oauth/callback?code=code-1&state=stale", "")

		requireErrorCode(t, rec, http.StatusBadRequest, "OAUTH_STATE_INVALID")
		assert.Empty(t, rec.Result().Cookies())
	})
}
