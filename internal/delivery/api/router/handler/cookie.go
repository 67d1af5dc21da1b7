package handler

import (
	"net/http"
	"time"

	"kioskdash/config"

	"github.com/labstack/echo/v4"
)

// SessionCookie writes and clears the session cookie.
type SessionCookie struct {
	name   string
	secure bool
}

// NewSessionCookie reads the cookie settings from the auth config.
func NewSessionCookie(cfg *config.Config) *SessionCookie {
	return &SessionCookie{
		name:   cfg.Auth.CookieName,
		secure: cfg.Auth.CookieSecure,
	}
}

// Set stores token until expiresAt.
func (sc *SessionCookie) Set(c echo.Context, token string, expiresAt time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     sc.name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   sc.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the cookie immediately.
func (sc *SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sc.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sc.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
