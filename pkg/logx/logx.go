// Package logx is the process-wide logging facade, backed by zap.
package logx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level mirrors zap's levels for callers that don't import zap directly
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

var (
	atomicLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	sugar       = mustBuild()
)

func mustBuild() *zap.SugaredLogger {
	cfg := zap.Config{
		Encoding:         "console",
		Level:            atomicLevel,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:  "msg",
			LevelKey:    "level",
			EncodeLevel: zapcore.CapitalLevelEncoder,
			TimeKey:     "time",
			EncodeTime:  zapcore.RFC3339TimeEncoder,
		},
	}
	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	return logger.Sugar()
}

// SetLevel adjusts the minimum enabled level at runtime
func SetLevel(level Level) {
	atomicLevel.SetLevel(level)
}

func Debug(args ...any)                   { sugar.Debug(args...) }
func Debugf(template string, args ...any) { sugar.Debugf(template, args...) }
func Info(args ...any)                    { sugar.Info(args...) }
func Infof(template string, args ...any)  { sugar.Infof(template, args...) }
func Warn(args ...any)                    { sugar.Warn(args...) }
func Warnf(template string, args ...any)  { sugar.Warnf(template, args...) }
func Error(args ...any)                   { sugar.Error(args...) }
func Errorf(template string, args ...any) { sugar.Errorf(template, args...) }
func Fatal(args ...any)                   { sugar.Fatal(args...) }
func Fatalf(template string, args ...any) { sugar.Fatalf(template, args...) }
