package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mdrepo/mdrmeta/pkg/mdrmeta"
)

var _ mdrmeta.Logger = (*ZapLogger)(nil)

// Log output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ZapLogger emits structured JSON log entries through zap.
// Verbose maps to the debug level.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger creates a ZapLogger writing JSON lines to w.
func NewZapLogger(w io.Writer, verbose bool) *ZapLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return &ZapLogger{sugar: zap.New(core).Sugar().Named("mdrmeta")}
}

// Verbose logs at debug level.
func (l *ZapLogger) Verbose(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Info logs at info level.
func (l *ZapLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Error logs at error level.
func (l *ZapLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

// New returns the logger for the given output format writing to stderr.
// An empty format selects text.
func New(format string, verbose bool) (mdrmeta.Logger, error) {
	return NewTo(os.Stderr, format, verbose)
}

// NewTo returns the logger for the given output format writing to w.
func NewTo(w io.Writer, format string, verbose bool) (mdrmeta.Logger, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return NewConsoleLoggerTo(w, verbose), nil
	case FormatJSON:
		return NewZapLogger(w, verbose), nil
	default:
		return nil, fmt.Errorf("%w: unknown log format %q (expected text or json)", mdrmeta.ErrInvalidConfig, format)
	}
}
