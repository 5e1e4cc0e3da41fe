// Package log is a thin wrapper around zap that keeps the same call
// shapes the rest of this module is written against (Debugf, Infoln,
// Errorln, Fatalf, ...) regardless of which concrete sugared logger is
// installed underneath.
package log

import (
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type severity int32

const (
	DEBUG severity = iota
	INFO
	WARNING
	ERROR
)

var names = []string{
	DEBUG:   "DEBUG",
	INFO:    "INFO",
	WARNING: "WARNING",
	ERROR:   "ERROR",
}

// Set implements flag.Value so callers can wire --log_level the way the
// original paxi logger did.
func (s *severity) Set(value string) error {
	threshold := DEBUG
	value = strings.ToUpper(value)
	for i, name := range names {
		if name == value {
			threshold = severity(i)
		}
	}
	*s = threshold
	return nil
}

func (s *severity) String() string {
	return names[int(*s)]
}

func (s severity) zapLevel() zapcore.Level {
	switch s {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARNING:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

var (
	once  sync.Once
	sugar *zap.SugaredLogger
	Level severity = INFO
)

func setup() {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(Level.zapLevel()),
	)
	sugar = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// SetLevel configures the minimum severity before the first log call.
// Calling it after the logger has been lazily initialized has no effect.
func SetLevel(s severity) {
	Level = s
}

func get() *zap.SugaredLogger {
	once.Do(setup)
	return sugar
}

func Debug(v ...interface{})                 { get().Debug(v...) }
func Debugln(v ...interface{})               { get().Debug(v...) }
func Debugf(format string, v ...interface{}) { get().Debugf(format, v...) }

func Info(v ...interface{})                 { get().Info(v...) }
func Infoln(v ...interface{})               { get().Info(v...) }
func Infof(format string, v ...interface{}) { get().Infof(format, v...) }

func Warning(v ...interface{})                 { get().Warn(v...) }
func Warningln(v ...interface{})               { get().Warn(v...) }
func Warningf(format string, v ...interface{}) { get().Warnf(format, v...) }

func Error(v ...interface{})                 { get().Error(v...) }
func Errorln(v ...interface{})               { get().Error(v...) }
func Errorf(format string, v ...interface{}) { get().Errorf(format, v...) }

func Fatal(v ...interface{})                 { get().Fatal(v...) }
func Fatalln(v ...interface{})               { get().Fatal(v...) }
func Fatalf(format string, v ...interface{}) { get().Fatalf(format, v...) }
