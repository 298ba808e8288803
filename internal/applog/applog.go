// Package applog builds the file-backed logger used across the app.
// The TUI owns the terminal, so nothing may log to stdout or stderr;
// warnings from generation fallbacks and store errors go to a rotated
// file instead.
package applog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a logger writing to the given path. An empty path returns
// a no-op logger, which is also the default everywhere in library code.
func New(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     28, // days
	})

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		w,
		zap.WarnLevel,
	)
	return zap.New(core)
}
