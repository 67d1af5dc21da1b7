package handler

import (
	"net/url"
	"strings"

	deliverycontext "kioskdash/internal/delivery/context"
	"kioskdash/internal/domain/entity"
	domainerrors "kioskdash/internal/domain/errors"
	"kioskdash/internal/errors"

	"github.com/labstack/echo/v4"
)

// requestSession returns the session stored by the Authenticate middleware.
func requestSession(c echo.Context) (*entity.Session, error) {
	session, ok := deliverycontext.GetSession(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return session, nil
}

// requestScope returns the session and the scope stored by the ResolveScope middleware.
func requestScope(c echo.Context) (*entity.Session, *entity.Scope, error) {
	session, err := requestSession(c)
	if err != nil {
		return nil, nil, err
	}

	scope, ok := deliverycontext.GetScope(c)
	if !ok {
		return nil, nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return session, scope, nil
}

// pathParam returns a decoded path parameter. Synthetic donor identifiers carry spaces.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}

	return raw
}

// trimPtr trims an optional body field. Blank values become nil so omitempty
// rules skip them and the field counts as not provided.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}

	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}

	return &t
}
