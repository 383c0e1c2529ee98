package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("writes to file and echoes warnings", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "aliasusage.log")
		var console bytes.Buffer

		logger, level, err := New("info", logFile, &console)
		require.NoError(t, err)
		assert.Equal(t, zapcore.InfoLevel, level.Level())

		logger.Debug("hidden")
		logger.Info("started", zap.String("history", "/tmp/h"))
		logger.Warn("alias source unavailable")
		require.NoError(t, logger.Sync())

		content, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"msg":"started"`)
		assert.Contains(t, string(content), `"msg":"alias source unavailable"`)
		assert.NotContains(t, string(content), "hidden")

		assert.Contains(t, console.String(), "alias source unavailable")
		assert.NotContains(t, console.String(), "started")
	})

	t.Run("console only without a log file", func(t *testing.T) {
		var console bytes.Buffer

		logger, _, err := New("debug", "", &console)
		require.NoError(t, err)

		logger.Info("quiet")
		logger.Warn("loud")
		logger.Error("reported by caller")
		assert.Contains(t, console.String(), "loud")
		assert.NotContains(t, console.String(), "quiet")
		assert.NotContains(t, console.String(), "reported by caller")
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, _, err := New("chatty", "", &bytes.Buffer{})
		assert.Error(t, err)
	})
}
