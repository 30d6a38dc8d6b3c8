// Package commands implements the timepicker CLI subcommands.
package commands

import (
	"fmt"

	"github.com/agiangrant/timepicker/config"
	"github.com/agiangrant/timepicker/internal/logger"
)

// loadConfig reads the config file and sets up logging from it.
func loadConfig(path string) (config.File, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	logger.SetLevel(cfg.Log.Level)
	if err := logger.Init(cfg.Log.Dir); err != nil {
		return cfg, fmt.Errorf("failed to set up logging: %w", err)
	}
	logger.Debugf("Loaded config from %s", path)
	return cfg, nil
}
