package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Logger carries key-value context; use With to scope it to a request.
type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// New picks the encoder by APP_ENV: JSON at info level in production, console
// at debug level in development, and a no-op logger for "test".
func New(mode string) (*Logger, error) {
	mode = strings.ToLower(mode)
	if mode == "test" {
		return &Logger{SugaredLogger: zap.NewNop().Sugar()}, nil
	}

	cfg := zap.NewDevelopmentConfig()
	if mode == "prod" || mode == "production" {
		cfg = zap.NewProductionConfig()
	}
	zapLogger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: zapLogger.Sugar()}, nil
}

func (l *Logger) Sync() { _ = l.SugaredLogger.Sync() }

func (l *Logger) Info(msg string, kv ...interface{})  { l.SugaredLogger.Infow(msg, kv...) }
func (l *Logger) Warn(msg string, kv ...interface{})  { l.SugaredLogger.Warnw(msg, kv...) }
func (l *Logger) Error(msg string, kv ...interface{}) { l.SugaredLogger.Errorw(msg, kv...) }
func (l *Logger) Fatal(msg string, kv ...interface{}) { l.SugaredLogger.Fatalw(msg, kv...) }

func (l *Logger) With(kv ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(kv...)}
}
