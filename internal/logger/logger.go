package logger

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2/data/binding"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ConserveLee/gui-cropper/internal/config"
	"github.com/ConserveLee/gui-cropper/internal/constants"
)

// LogLevel defines the severity of the log
type LogLevel int

const (
	LevelInfo LogLevel = iota
	LevelError
	LevelDebug
)

func (l LogLevel) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelDebug:
		return "DEBUG"
	default:
		return "INFO"
	}
}

// AppLogger handles application logging to the UI log list and to the console.
type AppLogger struct {
	dataBinding binding.StringList
	zap         *zap.Logger
	maxLines    int
	now         func() time.Time
}

// NewZap builds the console logger described by cfg.
func NewZap(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zcfg := zap.NewDevelopmentConfig()
	if cfg.Encoding == "json" {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	z, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return z, nil
}

// NewAppLogger creates a new logger instance. A nil zap logger discards console output.
func NewAppLogger(data binding.StringList, z *zap.Logger, maxLines int) *AppLogger {
	if z == nil {
		z = zap.NewNop()
	}
	if maxLines < 1 {
		maxLines = constants.MaxLogLines
	}
	return &AppLogger{
		dataBinding: data,
		zap:         z,
		maxLines:    maxLines,
		now:         time.Now,
	}
}

// Zap exposes the structured logger.
func (l *AppLogger) Zap() *zap.Logger {
	return l.zap
}

// Info logs an informational message
func (l *AppLogger) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.zap.Info(msg)
	l.append(LevelInfo, msg)
}

// Error logs an error message
func (l *AppLogger) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.zap.Error(msg)
	l.append(LevelError, msg)
}

// Debug logs a debug message to the console only (to keep UI clean)
func (l *AppLogger) Debug(format string, args ...interface{}) {
	l.zap.Debug(fmt.Sprintf(format, args...))
}

// Record logs msg with structured fields to the console. The UI line is msg
// followed by detail, a readable rendering of the same fields.
func (l *AppLogger) Record(msg, detail string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
	if detail != "" {
		msg = msg + ": " + detail
	}
	l.append(LevelInfo, msg)
}

// Lines returns the lines currently shown in the UI log.
func (l *AppLogger) Lines() ([]string, error) {
	if l.dataBinding == nil {
		return nil, nil
	}
	return l.dataBinding.Get()
}

// Sync flushes buffered console output.
func (l *AppLogger) Sync() {
	_ = l.zap.Sync()
}

// append adds a formatted line and trims the list to maxLines.
func (l *AppLogger) append(level LogLevel, msg string) {
	if l.dataBinding == nil {
		return
	}
	timestamp := l.now().Format("15:04:05")
	l.dataBinding.Append(fmt.Sprintf("[%s] %s: %s", timestamp, level, msg))

	list, _ := l.dataBinding.Get()
	if len(list) > l.maxLines {
		l.dataBinding.Set(list[len(list)-l.maxLines:])
	}
}
