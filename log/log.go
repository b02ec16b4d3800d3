package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benchnet-io/benchmarker/util"
)

// ParseLogLevel converts a config-level string into a zap level. "trace" is
// accepted as an alias for debug.
func ParseLogLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "trace", "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "fatal":
		return zapcore.FatalLevel, nil
	default:
		return 0, fmt.Errorf("unsupported log level: %s", level)
	}
}

// NewRootLogger builds a root logger writing to w. Supported formats are
// "json", "logfmt" and "console".
func NewRootLogger(format string, level zapcore.Level, w io.Writer) (*zap.Logger, error) {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch format {
	case "json":
		encoder = zapcore.NewJSONEncoder(ec)
	case "logfmt":
		encoder = zaplogfmt.NewEncoder(ec)
	case "console":
		encoder = zapcore.NewConsoleEncoder(ec)
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)

	return zap.New(core), nil
}

// NewRootLoggerWithFile builds the root logger teeing output to stdout and
// the given log file, creating the log directory if needed.
func NewRootLoggerWithFile(logFile string, level string) (*zap.Logger, error) {
	if err := util.MakeDirectory(filepath.Dir(logFile)); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logFile, err)
	}

	logLevel, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}

	return NewRootLogger("logfmt", logLevel, io.MultiWriter(os.Stdout, f))
}
