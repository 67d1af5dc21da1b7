package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"kioskdash/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: " DEBUG ", want: slog.LevelDebug},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_RedactsCredentials(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, &config.Env{Env: "test", ServiceName: "kiosk-dashboard", Log: config.Log{Level: "info"}})
	require.NoError(t, err)

	logger.Info("oauth callback", slog.String("access_token", "sq0atp-secret"), slog.String("organization_id", "org-1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, redacted, line["access_token"])
	assert.Equal(t, "org-1", line["organization_id"])
	assert.Equal(t, "kiosk-dashboard", line["service"])
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, &config.Env{Log: config.Log{Level: "loud"}})

	assert.Error(t, err)
}
