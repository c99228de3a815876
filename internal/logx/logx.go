// Package logx builds the zap logger used by the advent command.
package logx

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Khighness/advent/internal/config"
)

// @Author KHighness
// @Update 2026-10-19

// New builds a logger writing to stderr at the configured level and format.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.Level = level
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true

	return zc.Build(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return NewElapsedCore(core)
	}))
}

// ElapsedCore renders time.Duration fields named "elapsed" as strings so
// that production JSON keeps them human readable.
type ElapsedCore struct {
	zapcore.Core
}

// NewElapsedCore wraps core.
func NewElapsedCore(core zapcore.Core) *ElapsedCore {
	return &ElapsedCore{Core: core}
}

func (c *ElapsedCore) Write(en zapcore.Entry, fields []zapcore.Field) error {
	for i, fd := range fields {
		if fd.Key == "elapsed" && fd.Type == zapcore.DurationType {
			fields[i] = zap.String(fd.Key, time.Duration(fd.Integer).String())
		}
	}
	return c.Core.Write(en, fields)
}

func (c *ElapsedCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *ElapsedCore) With(fields []zapcore.Field) zapcore.Core {
	return &ElapsedCore{Core: c.Core.With(fields)}
}
