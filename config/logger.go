package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger from the logging section: zap's production
// config, or its development config when Development is set, with Level and
// Encoding applied on top. An empty Level or Encoding keeps zap's default.
func (c *Config) NewLogger(opts ...zap.Option) (*zap.Logger, error) {
	lvl, err := c.Logging.level()
	if err != nil {
		return nil, fmt.Errorf("%w: logging.level: %w", ErrInvalid, err)
	}

	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	if c.Logging.Level != "" {
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}
	if c.Logging.Encoding != "" {
		zc.Encoding = c.Logging.Encoding
	}

	log, err := zc.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("config: building logger: %w", err)
	}

	return log, nil
}

func (l LoggingConfig) level() (zapcore.Level, error) {
	if l.Level == "" {
		return zapcore.InfoLevel, nil
	}

	return zapcore.ParseLevel(l.Level)
}
