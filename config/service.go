package config

import (
	"fmt"

	"github.com/kbukum/seqkit/logger"
)

// AppConfig is BaseConfig plus logging. Programs embed it and add their
// own sections.
//
//	type Config struct {
//	    config.AppConfig `yaml:",inline" mapstructure:",squash"`
//	    Recipe recipe.Recipe `yaml:"recipe" mapstructure:"recipe"`
//	}
type AppConfig struct {
	BaseConfig `yaml:",inline" mapstructure:",squash"`
	Logging    logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills base and logging defaults. Debug mode lowers an
// unset log level to debug.
func (c *AppConfig) ApplyDefaults() {
	c.BaseConfig.ApplyDefaults()
	if c.Debug && c.Logging.Level == "" {
		c.Logging.Level = "debug"
	}
	c.Logging.ApplyDefaults()
}

// Validate validates base and logging configuration.
func (c *AppConfig) Validate() error {
	if err := c.BaseConfig.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}
