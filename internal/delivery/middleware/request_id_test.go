package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "kioskdash/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id is reused", header: "edge-7f3a", wantSame: true},
		{name: "missing id is minted", header: ""},
		{name: "oversized id is replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "id with spaces is replaced", header: "two words"},
		{name: "non ascii id is replaced", header: "id-é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&logs, nil))

			e := echo.New()
			e.Use(NewRequestIDMiddleware(logger).Process)

			var seen, seenCtx string
			e.GET("/", func(c echo.Context) error {
				seen = deliverycontext.GetRequestID(c)
				seenCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), slog.Default()).Info("handled")

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, seen, seenCtx)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Contains(t, logs.String(), `"request_id":"`+seen+`"`)

			if tt.wantSame {
				assert.Equal(t, tt.header, seen)
			} else {
				_, err := uuid.Parse(seen)
				assert.NoError(t, err)
			}
		})
	}
}
