package log_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/benchnet-io/benchmarker/log"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	level, err := log.ParseLogLevel("trace")
	require.NoError(t, err)
	require.Equal(t, zapcore.DebugLevel, level)

	level, err = log.ParseLogLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, zapcore.WarnLevel, level)

	_, err = log.ParseLogLevel("verbose")
	require.ErrorContains(t, err, "unsupported log level")
}

func TestNewRootLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := log.NewRootLogger("logfmt", zapcore.InfoLevel, &buf)
	require.NoError(t, err)

	logger.Info("benchmark submitted")
	require.NoError(t, logger.Sync())
	require.Contains(t, buf.String(), "benchmark submitted")

	_, err = log.NewRootLogger("xml", zapcore.InfoLevel, &buf)
	require.ErrorContains(t, err, "unsupported log format")
}
