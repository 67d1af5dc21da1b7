package handler

import (
	"log/slog"
	"net/http"

	"kioskdash/internal/delivery/api/response"
	deliverycontext "kioskdash/internal/delivery/context"
	"kioskdash/internal/errors"
	"kioskdash/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AdminHandler holds the super admin endpoints.
type AdminHandler struct {
	sessions usecase.SessionUsecase
	cookie   *SessionCookie
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(sessions usecase.SessionUsecase, cookie *SessionCookie, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		sessions: sessions,
		cookie:   cookie,
		logger:   logger,
	}
}

// ImpersonateRequest names the organization to view as.
type ImpersonateRequest struct {
	OrganizationID string `json:"organization_id" validate:"required"`
}

// Impersonate swaps the admin's cookie for a short-lived session scoped to the target organization.
func (h *AdminHandler) Impersonate(c echo.Context) error {
	session, err := requestSession(c)
	if err != nil {
		return err
	}

	var req ImpersonateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid impersonation input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	token, err := h.sessions.ImpersonateOrganization(ctx, session, req.OrganizationID)
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Impersonation started",
		slog.String("admin_email", session.Email),
		slog.String("organization_id", req.OrganizationID),
	)

	h.cookie.Set(c, token.Token, token.Session.ExpiresAt)

	return response.Success(c, http.StatusOK, toSessionTokenResponse(token))
}

// EndImpersonation restores the admin's own session.
func (h *AdminHandler) EndImpersonation(c echo.Context) error {
	session, err := requestSession(c)
	if err != nil {
		return err
	}

	token, err := h.sessions.EndImpersonation(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookie.Set(c, token.Token, token.Session.ExpiresAt)

	return response.Success(c, http.StatusOK, toSessionTokenResponse(token))
}

// ListOrganizations lists every connected organization for the impersonation picker.
func (h *AdminHandler) ListOrganizations(c echo.Context) error {
	session, err := requestSession(c)
	if err != nil {
		return err
	}

	orgs, err := h.sessions.ListAllOrganizations(c.Request().Context(), session)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrganizationViews(orgs))
}
