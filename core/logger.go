package core

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger: JSON at info level in production,
// console output at debug level everywhere else.
func NewLogger(cfg *Config) (*zap.SugaredLogger, error) {
	zapConfig := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapConfig = zap.NewProductionConfig()
	}

	zapConfig.InitialFields = map[string]any{"environment": cfg.Environment}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

// Component returns the logger for one part of the service, e.g. "fmp" or
// "fetcher".
func Component(logger *zap.SugaredLogger, name string) *zap.SugaredLogger {
	return logger.Named(name).With("component", name)
}
