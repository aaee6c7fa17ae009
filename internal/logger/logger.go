package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
)

var Module = fx.Provide(NewLogger, sugar)

// FxEvent routes fx lifecycle events through the application logger.
func FxEvent(l *zap.Logger) fxevent.Logger {
	return &fxevent.ZapLogger{Logger: l.Named("fx")}
}

// NewLogger builds a JSON production logger, or a console one when
// LOG_DEVELOPMENT is set.
func NewLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	l, err := build(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		_ = l.Sync()
	}))
	return l, nil
}

func build(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", cfg.LogLevel)
	}

	zc := zap.NewProductionConfig()
	if cfg.LogDevelopment {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	l, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return l, nil
}

// NewSugared is for callers outside the fx graph.
func NewSugared(cfg *config.Config) (*zap.SugaredLogger, error) {
	l, err := build(cfg)
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func sugar(l *zap.Logger) *zap.SugaredLogger {
	return l.Sugar()
}
