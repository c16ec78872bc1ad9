package main

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
	"github.com/kbukum/seqkit/observability"
	"github.com/kbukum/seqkit/recipe"
	"github.com/kbukum/seqkit/util"
)

const (
	appName = "seqkit"

	configFlag  = "config"
	envFileFlag = "env-file"
	runIDFlag   = "run-id"
)

// Config is the seqkit configuration file.
type Config struct {
	config.AppConfig `yaml:",inline" mapstructure:",squash"`
	Observability    ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Recipe           recipe.Recipe       `yaml:"recipe" mapstructure:"recipe"`
}

// ObservabilityConfig groups the OTLP exporters. Both are off by default.
type ObservabilityConfig struct {
	Metrics observability.MeterConfig  `yaml:"metrics" mapstructure:"metrics"`
	Tracing observability.TracerConfig `yaml:"tracing" mapstructure:"tracing"`
}

// ApplyDefaults fills app defaults and names the exporters after the program.
func (c *Config) ApplyDefaults() {
	c.Name = util.Coalesce(c.Name, appName)
	c.AppConfig.ApplyDefaults()

	m := &c.Observability.Metrics
	defaults := observability.DefaultMeterConfig(c.Name)
	m.ServiceName = util.Coalesce(m.ServiceName, c.Name)
	m.ServiceVersion = util.Coalesce(m.ServiceVersion, c.Version, defaults.ServiceVersion)
	m.Environment = util.Coalesce(m.Environment, c.Environment)
	if m.Endpoint == "" {
		m.Endpoint, m.Insecure = defaults.Endpoint, defaults.Insecure
	}
	m.Interval = util.Coalesce(m.Interval, defaults.Interval)

	tr := &c.Observability.Tracing
	tdefaults := observability.DefaultTracerConfig(c.Name)
	tr.ServiceName = util.Coalesce(tr.ServiceName, c.Name)
	tr.ServiceVersion = util.Coalesce(tr.ServiceVersion, c.Version, tdefaults.ServiceVersion)
	tr.Environment = util.Coalesce(tr.Environment, c.Environment)
	if tr.Endpoint == "" {
		tr.Endpoint, tr.Insecure = tdefaults.Endpoint, tdefaults.Insecure
	}
	tr.SampleRate = util.Coalesce(tr.SampleRate, tdefaults.SampleRate)
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Run lazy sequence recipes over integers",
		Long: `seqkit compiles the recipe from its config file into a chain of lazy,
single-pass sequence combinators and runs it over the integers given as
arguments (or one per line on stdin).`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.String(configFlag, "", "path to the YAML config file (default: searched)")
	flags.String(envFileFlag, "", "path to a .env file (default: searched)")

	root.AddCommand(newRunCommand(), newValidateCommand(), newVersionCommand())
	return root
}

// loadConfig reads, defaults and validates the config named by the
// persistent flags.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	var opts []config.LoaderOption
	if path, _ := cmd.Flags().GetString(configFlag); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	if path, _ := cmd.Flags().GetString(envFileFlag); path != "" {
		opts = append(opts, config.WithEnvFile(path))
	}

	var cfg Config
	if err := config.LoadConfig(appName, &cfg, opts...); err != nil {
		return nil, errors.Internal(err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.InvalidArgument("config", err.Error()).WithCause(err)
	}
	return &cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *Config) *logger.Logger {
	log := logger.NewWithWriter(&cfg.Logging, cfg.Name, cmd.ErrOrStderr())
	logger.SetGlobalLogger(log)
	return log
}
