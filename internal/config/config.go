// Package config assembles the configuration of the kdtree command.
package config

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-sod/kdtree/internal/bench"
	"github.com/go-sod/kdtree/internal/database"
	"github.com/go-sod/kdtree/internal/logging"
	"github.com/go-sod/kdtree/internal/setup"
	"github.com/kelseyhightower/envconfig"
)

var (
	_ setup.DatabaseConfigProvider = (*Config)(nil)
	_ setup.BenchConfigProvider    = (*Config)(nil)
)

type Config struct {
	Bench    bench.Config    `toml:"bench"`
	Database database.Config `toml:"database"`
	Logging  logging.Config  `toml:"logging"`
}

// Load reads the environment and then, when path is set, the toml file on
// top of it.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := logging.FromContext(ctx)
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}
	if path == "" {
		return &cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("error loading config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in config file %s: %v", path, undecoded)
	}
	logger.Debugf("loaded config file %s", path)

	return &cfg, nil
}

func (c *Config) BenchConfig() *bench.Config {
	return &c.Bench
}

func (c *Config) DatabaseConfig() *database.Config {
	return &c.Database
}

func (c *Config) LoggingConfig() *logging.Config {
	return &c.Logging
}
