// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/catalog-service/config"
	"github.com/guttosm/catalog-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
