package middleware

import (
	"strings"

	"kioskdash/config"
	deliverycontext "kioskdash/internal/delivery/context"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/errors"
	"kioskdash/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// SessionMiddleware verifies the session credential and resolves the
// organization scope data endpoints run under.
type SessionMiddleware struct {
	sessions   usecase.SessionUsecase
	cookieName string
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, cfg *config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		cookieName: cfg.Auth.CookieName,
	}
}

// Authenticate rejects requests without a valid session with 401. A credential
// that was presented but does not verify is reported as SESSION_INVALID.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.token(c)
		session := m.sessions.VerifySession(token)
		if session == nil && token != "" {
			return errors.WithStack(domainerrors.ErrSessionInvalid)
		}

		session, err := m.sessions.RequireAuth(session, false)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

// OptionalAuth stores a verified session when one is presented and never rejects.
func (m *SessionMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if session := m.sessions.VerifySession(m.token(c)); session != nil {
			deliverycontext.SetSession(c, session)
		}

		return next(c)
	}
}

// RequireSuperAdmin must be used after Authenticate.
func (m *SessionMiddleware) RequireSuperAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, _ := deliverycontext.GetSession(c)
		if _, err := m.sessions.RequireAuth(session, true); err != nil {
			return errors.WithStack(err)
		}

		return next(c)
	}
}

// ResolveScope expands the session's current organization into its merchant scope.
// It must be used after Authenticate.
func (m *SessionMiddleware) ResolveScope(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, ok := deliverycontext.GetSession(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		scope, err := m.sessions.ResolveScope(c.Request().Context(), session)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetScope(c, scope)

		return next(c)
	}
}

// token prefers the session cookie and falls back to a Bearer header.
func (m *SessionMiddleware) token(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(authHeader, bearerPrefix); ok {
		return strings.TrimSpace(token)
	}

	return ""
}
