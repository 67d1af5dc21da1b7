package handler

import (
	"net/http"

	"kioskdash/internal/delivery/api/response"
	deliverycontext "kioskdash/internal/delivery/context"
	"kioskdash/internal/errors"
	"kioskdash/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler exposes the caller's session and the organizations it may switch to.
type SessionHandler struct {
	sessions usecase.SessionUsecase
	cookie   *SessionCookie
}

// NewSessionHandler is the constructor for SessionHandler.
func NewSessionHandler(sessions usecase.SessionUsecase, cookie *SessionCookie) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		cookie:   cookie,
	}
}

// SwitchOrganizationRequest selects another organization of the same merchant.
type SwitchOrganizationRequest struct {
	OrganizationID string `json:"organization_id" validate:"required"`
}

// GetSession returns the verified session, or {authenticated: false} for anonymous callers.
func (h *SessionHandler) GetSession(c echo.Context) error {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return response.Success(c, http.StatusOK, AnonymousSessionView{Authenticated: false})
	}

	return response.Success(c, http.StatusOK, toSessionView(session))
}

// SwitchOrganization re-issues the session for another organization.
func (h *SessionHandler) SwitchOrganization(c echo.Context) error {
	session, err := requestSession(c)
	if err != nil {
		return err
	}

	var req SwitchOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid organization input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	token, err := h.sessions.SwitchOrganization(c.Request().Context(), session, req.OrganizationID)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookie.Set(c, token.Token, token.Session.ExpiresAt)

	return response.Success(c, http.StatusOK, toSessionTokenResponse(token))
}

// ListOrganizations lists the organizations of the caller's merchant.
func (h *SessionHandler) ListOrganizations(c echo.Context) error {
	session, err := requestSession(c)
	if err != nil {
		return err
	}

	orgs, err := h.sessions.ListOrganizations(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrganizationViews(orgs))
}

// Logout clears the session cookie. Sessions are stateless, so nothing is revoked server side.
func (h *SessionHandler) Logout(c echo.Context) error {
	h.cookie.Clear(c)

	return response.Success(c, http.StatusOK, map[string]bool{"logged_out": true})
}
