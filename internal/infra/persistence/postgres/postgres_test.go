package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitSince(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: 100 * time.Millisecond}

	t.Run("no new waits", func(t *testing.T) {
		_, ok := waitSince(prev, prev)
		assert.False(t, ok)
	})

	t.Run("short waits log at debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 14, WaitDuration: 120 * time.Millisecond}

		wait, ok := waitSince(prev, cur)

		assert.True(t, ok)
		assert.Equal(t, int64(4), wait.count)
		assert.Equal(t, 5*time.Millisecond, wait.average())
		assert.Equal(t, slog.LevelDebug, wait.level())
	})

	t.Run("long waits escalate to warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: 100*time.Millisecond + dbPoolWarnDurationThreshold}

		wait, ok := waitSince(prev, cur)

		assert.True(t, ok)
		assert.Equal(t, slog.LevelWarn, wait.level())
	})
}

func TestModelsCoverEveryTable(t *testing.T) {
	assert.Len(t, Models(), 5)
}
