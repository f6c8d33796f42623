// Package logger is a thin context-aware facade over zap. The context
// argument is part of every call so request-scoped fields can be attached
// later without touching call sites.
package logger

import (
	"context"

	"go.uber.org/zap"
)

var global = zap.Must(zap.NewProduction()).Sugar()

// Init replaces the process logger. Called once from main before anything
// else logs.
func Init(debug bool) {
	var l *zap.Logger
	if debug {
		l = zap.Must(zap.NewDevelopment())
	} else {
		l = zap.Must(zap.NewProduction())
	}
	global = l.Sugar()
}

func Sync() { _ = global.Sync() }

func Info(_ context.Context, args ...interface{}) { global.Info(args...) }

func Infof(_ context.Context, format string, args ...interface{}) { global.Infof(format, args...) }

func Warnf(_ context.Context, format string, args ...interface{}) { global.Warnf(format, args...) }

func Error(_ context.Context, args ...interface{}) { global.Error(args...) }

func Errorf(_ context.Context, format string, args ...interface{}) { global.Errorf(format, args...) }

func Debugf(_ context.Context, format string, args ...interface{}) { global.Debugf(format, args...) }

// Fatal logs err and exits when err is non-nil.
func Fatal(_ context.Context, err error) {
	if err != nil {
		global.Fatal(err)
	}
}
