package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used by the library.
type Logger interface {
	Info(msg string, obj any)
	Warn(msg string, obj any)
	Debug(msg string, obj any)
	Error(msg string, obj any)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, any)  {}
func (NopLogger) Warn(string, any)  {}
func (NopLogger) Debug(string, any) {}
func (NopLogger) Error(string, any) {}

type zapLogger struct {
	z *zap.Logger
}

func (l zapLogger) fields(obj any) []zap.Field {
	if obj == nil {
		return nil
	}
	return []zap.Field{zap.Any("obj", obj)}
}

// NewWriterLogger builds a console logger that writes to an io.Writer.
func NewWriterLogger(w io.Writer) Logger {
	if w == nil {
		return NopLogger{}
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zapLogger{z: zap.New(core)}
}

func (l zapLogger) Info(msg string, obj any)  { l.z.Info(msg, l.fields(obj)...) }
func (l zapLogger) Warn(msg string, obj any)  { l.z.Warn(msg, l.fields(obj)...) }
func (l zapLogger) Debug(msg string, obj any) { l.z.Debug(msg, l.fields(obj)...) }
func (l zapLogger) Error(msg string, obj any) { l.z.Error(msg, l.fields(obj)...) }

// Debug writes a debug log when enabled and logger is non-nil.
func Debug(enabled bool, logger Logger, msg string, obj any) {
	if !enabled || logger == nil {
		return
	}
	logger.Debug(msg, obj)
}

// Debugf is a compatibility helper for format-style debug logging.
func Debugf(enabled bool, logger Logger, format string, args ...any) {
	Debug(enabled, logger, fmt.Sprintf(format, args...), nil)
}

// Warn writes a warning log when logger is non-nil.
func Warn(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, obj)
}
