// Package logging builds the CLI's logr.Logger on top of controller-runtime's
// zap integration and carries it through context.Context.
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// ParseLevel maps a settings log level to a zap level. logr V(1) output is
// only shown at debug.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// New creates a console logger writing to w at the given level.
func New(w io.Writer, level string) (logr.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return logr.Discard(), err
	}

	return zap.New(
		zap.WriteTo(w),
		zap.ConsoleEncoder(),
		zap.Level(lvl),
		zap.StacktraceLevel(zapcore.PanicLevel),
	).WithName("launchpad"), nil
}

// IntoContext returns a copy of ctx carrying logger.
func IntoContext(ctx context.Context, logger logr.Logger) context.Context {
	return log.IntoContext(ctx, logger)
}

// FromContext returns the logger carried by ctx.
func FromContext(ctx context.Context) logr.Logger {
	return log.FromContext(ctx)
}
