package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/edge-classic/EDGE-classic-sub008/internal/errors"
	"github.com/edge-classic/EDGE-classic-sub008/internal/logging"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		level   string
		format  string
		enabled zapcore.Level
		quiet   zapcore.Level
	}{
		{"console info", "info", "console", zapcore.InfoLevel, zapcore.DebugLevel},
		{"json warn", "warn", "json", zapcore.WarnLevel, zapcore.InfoLevel},
		{"upper case json", "ERROR", "JSON", zapcore.ErrorLevel, zapcore.WarnLevel},
		{"empty format", "debug", "", zapcore.DebugLevel, zapcore.DebugLevel - 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, err := logging.New(tc.level, tc.format)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tc.enabled))
			assert.False(t, logger.Core().Enabled(tc.quiet))
		})
	}
}

func TestNewRejects(t *testing.T) {
	_, err := logging.New("loud", "console")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = logging.New("info", "xml")
	assert.True(t, errors.IsInvalidArgument(err))
}
