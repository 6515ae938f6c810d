// Package logger builds the process-wide zap logger.
package logger

import (
	"fmt"

	"github.com/gomantics/gitbrowse/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a colored console logger at debug level when cfg.IsDev() is
// set, and an info-level JSON logger otherwise.
func New(cfg config.Config) (*zap.Logger, error) {
	var zcfg zap.Config

	if cfg.IsDev() {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg = zap.NewProductionConfig()
	}

	zcfg.EncoderConfig.TimeKey = "timestamp"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return l, nil
}
