// Package config loads and validates the TransferBench configuration. It
// layers sources the same way throughout: built-in defaults, an optional
// .env file in the working directory, a YAML config file, and finally
// TRANSFERBENCH_-prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"transferbench/internal/logger"
	"transferbench/internal/suite"
	"transferbench/internal/tools"
	"transferbench/internal/transfer"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "TRANSFERBENCH"

// Tool kinds accepted in the tools list.
const (
	KindAWS        = "aws"
	KindGoCommands = "gocommands"
	KindICommands  = "icommands"
)

// Actions accepted in the actions list.
const (
	ActionUpload   = "upload"
	ActionDownload = "download"
)

// ToolConfig selects and parameterizes one tool adapter. Tools are measured
// in list order.
type ToolConfig struct {
	Kind               string `mapstructure:"kind"`
	Bucket             string `mapstructure:"bucket"`
	ReadTimeoutSeconds int    `mapstructure:"read_timeout_seconds"`
}

// Config is the full harness configuration.
type Config struct {
	Runs                  int          `mapstructure:"runs"`
	DataSizes             []int64      `mapstructure:"data_sizes"`
	Actions               []string     `mapstructure:"actions"`
	Tools                 []ToolConfig `mapstructure:"tools"`
	CommandTimeoutSeconds int          `mapstructure:"command_timeout_seconds"`
	Report                string       `mapstructure:"report"`
}

// Load reads the configuration. If path is empty, transferbench.yaml in the
// working directory is used when present; having no config file at all is
// fine and yields the defaults (which still need a tools list to validate).
func Load(path string) (*Config, error) {
	// A local .env provides credentials and session settings for the
	// external CLIs; missing is fine.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	v := viper.New()
	v.SetDefault("runs", 5)
	v.SetDefault("data_sizes", []int64{1048576})
	v.SetDefault("actions", []string{ActionUpload, ActionDownload})
	v.SetDefault("command_timeout_seconds", 600)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("transferbench")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		logger.Debug("loaded config file", "file", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values the suite cannot run with.
func (c *Config) Validate() error {
	if c.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", c.Runs)
	}
	if len(c.DataSizes) == 0 {
		return errors.New("at least one data size is required")
	}
	for _, size := range c.DataSizes {
		if size <= 0 {
			return fmt.Errorf("data sizes must be positive, got %d", size)
		}
	}
	if len(c.Actions) == 0 {
		return errors.New("at least one action is required")
	}
	for _, action := range c.Actions {
		if action != ActionUpload && action != ActionDownload {
			return fmt.Errorf("unknown action %q", action)
		}
	}
	if len(c.Tools) == 0 {
		return errors.New("at least one tool is required")
	}
	for _, tool := range c.Tools {
		switch tool.Kind {
		case KindAWS:
			if tool.Bucket == "" {
				return errors.New("the aws tool requires a bucket")
			}
		case KindGoCommands, KindICommands:
		default:
			return fmt.Errorf("unknown tool kind %q", tool.Kind)
		}
	}
	return nil
}

// CommandTimeout returns the per-subprocess timeout.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.CommandTimeoutSeconds) * time.Second
}

// BuildTools materializes the tool adapters in configured order.
func (c *Config) BuildTools() ([]suite.Tool, error) {
	built := make([]suite.Tool, 0, len(c.Tools))
	for _, tc := range c.Tools {
		switch tc.Kind {
		case KindAWS:
			readTimeout := time.Duration(tc.ReadTimeoutSeconds) * time.Second
			built = append(built, tools.NewAWS(tc.Bucket, readTimeout, c.CommandTimeout()))
		case KindGoCommands:
			built = append(built, tools.NewGoCommands(c.CommandTimeout()))
		case KindICommands:
			built = append(built, tools.NewICommands(c.CommandTimeout()))
		default:
			return nil, fmt.Errorf("unknown tool kind %q", tc.Kind)
		}
	}
	return built, nil
}

// BuildFactories materializes one test factory per action and data size, in
// configured order: all sizes of the first action, then the next action.
func (c *Config) BuildFactories(store transfer.ObjectStore) []suite.TestFactory {
	factories := make([]suite.TestFactory, 0, len(c.Actions)*len(c.DataSizes))
	for _, action := range c.Actions {
		for _, size := range c.DataSizes {
			switch action {
			case ActionUpload:
				factories = append(factories, transfer.NewUploadTestFactory(store, size))
			case ActionDownload:
				factories = append(factories, transfer.NewDownloadTestFactory(store, size))
			}
		}
	}
	return factories
}
