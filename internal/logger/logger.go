package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It discards everything until Init runs,
// so packages can log from tests without setup.
var Logger = zap.NewNop()

// Init replaces Logger with a production JSON logger when env is
// "production" and a development console logger otherwise.
func Init(env string) error {
	var (
		l   *zap.Logger
		err error
	)
	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	Logger = l
	return nil
}

// Sync flushes buffered log entries.
func Sync() {
	_ = Logger.Sync()
}

func Info(msg string, fields ...zapcore.Field) {
	Logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	Logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	Logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zapcore.Field) {
	Logger.Fatal(msg, fields...)
}
