package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "kioskdash/internal/delivery/api/middleware"
	"kioskdash/internal/delivery/api/validator"
	deliverycontext "kioskdash/internal/delivery/context"
	"kioskdash/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// handlerTest routes requests through a real echo instance with the
// production error handler and validator.
type handlerTest struct {
	t       *testing.T
	e       *echo.Echo
	session *entity.Session
	scope   *entity.Scope
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandlerTest(t *testing.T) *handlerTest {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return &handlerTest{
		t: t,
		e: e,
		session: &entity.Session{
			OrganizationID: "org-1",
			MerchantID:     "merchant-1",
			MerchantName:   "Corner Cafe",
			Email:          "owner@cafe.test",
			ExpiresAt:      time.Now().Add(time.Hour),
		},
		scope: &entity.Scope{
			MerchantID:           "merchant-1",
			ActiveOrganizationID: "org-1",
			OrganizationIDs:      []string{"org-1", "org-2"},
		},
	}
}

// identity stands in for the Authenticate and ResolveScope middleware.
func (ht *handlerTest) identity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		deliverycontext.SetSession(c, ht.session)
		deliverycontext.SetScope(c, ht.scope)

		return next(c)
	}
}

func (ht *handlerTest) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ht.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, v))
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	require.Equal(t, code, env.Error.Code)
}

func ptr[T any](v T) *T {
	return &v
}

