package handler

import (
	"net/http"

	"kioskdash/config"
	"kioskdash/internal/delivery/api/response"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/errors"
	"kioskdash/internal/usecase"

	"github.com/labstack/echo/v4"
)

// OAuthHandler drives the payments provider connection handshake in the browser.
type OAuthHandler struct {
	connect      usecase.ConnectUsecase
	cookie       *SessionCookie
	dashboardURL string
}

// NewOAuthHandler is the constructor for OAuthHandler.
func NewOAuthHandler(connect usecase.ConnectUsecase, cookie *SessionCookie, cfg *config.Config) *OAuthHandler {
	return &OAuthHandler{
		connect:      connect,
		cookie:       cookie,
		dashboardURL: cfg.PaymentsOAuth.DashboardURL,
	}
}

// AuthorizeRequest optionally connects an additional location to an existing organization.
type AuthorizeRequest struct {
	OrganizationID string `query:"organization_id"`
}

// CallbackRequest is what the provider appends to the redirect URI.
type CallbackRequest struct {
	Code             string `query:"code"`
	State            string `query:"state"`
	Error            string `query:"error"`
	ErrorDescription string `query:"error_description"`
}

// Authorize redirects the browser to the provider's consent page.
func (h *OAuthHandler) Authorize(c echo.Context) error {
	var req AuthorizeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid authorization input")
	}

	return c.Redirect(http.StatusFound, h.connect.AuthorizationURL(c.Request().Context(), req.OrganizationID))
}

// Callback completes the handshake, sets the session cookie and sends the browser to the dashboard.
func (h *OAuthHandler) Callback(c echo.Context) error {
	var req CallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid callback input")
	}
	if req.Error != "" {
		return errors.WithStack(domainerrors.ErrOAuthFailed.WithDetails(req.Error + ": " + req.ErrorDescription))
	}

	token, err := h.connect.HandleCallback(c.Request().Context(), req.State, req.Code)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookie.Set(c, token.Token, token.Session.ExpiresAt)

	return c.Redirect(http.StatusFound, h.dashboardURL)
}
