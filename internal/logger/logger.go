package logger

import (
	"fmt"

	"github.com/phambaophuc/logo-gilding/internal/config"
	"go.uber.org/zap"
)

// New builds the process logger: zap's production JSON logger at cfg.Level,
// or the human readable development logger.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zapCfg.Level = level
	}

	return zapCfg.Build()
}
