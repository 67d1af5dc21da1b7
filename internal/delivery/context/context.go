// Package context carries per-request values between the echo delivery layer
// and the use cases: the request id, the request logger, the verified session
// and the resolved organization scope.
package context

import (
	"context"
	"log/slog"

	"kioskdash/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeySession   ContextKey = "session"
	KeyScope     ContextKey = "scope"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored on c, or a fresh UUID when the
// request-id middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when no request id was attached.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetSession stores the verified session on c.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the verified session, if the session middleware ran.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(string(KeySession)).(*entity.Session)

	return session, ok && session != nil
}

// SetScope stores the organization scope resolved for the session on c.
func SetScope(c echo.Context, scope *entity.Scope) {
	c.Set(string(KeyScope), scope)
}

// GetScope returns the resolved organization scope.
func GetScope(c echo.Context) (*entity.Scope, bool) {
	scope, ok := c.Get(string(KeyScope)).(*entity.Scope)

	return scope, ok && scope != nil
}
