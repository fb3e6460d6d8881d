package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"sigs.k8s.io/yaml"

	"github.com/opservo/adminkit/internal/core/defaults"
	"github.com/opservo/adminkit/internal/core/logger"
	"github.com/opservo/adminkit/internal/infrastructure/s3"
	"github.com/opservo/adminkit/internal/infrastructure/valkey"
)

// ToolkitConfig carries the policy every command inherits. Strict is the
// explicit enableException value threaded into each invocation; there is no
// ambient fallback.
type ToolkitConfig struct {
	Prefix string `mapstructure:"prefix" default:"adminkit"`
	Strict bool   `mapstructure:"strict"`
}

type Config struct {
	Logger  logger.Config  `mapstructure:"logger"`
	Toolkit ToolkitConfig  `mapstructure:"toolkit"`
	Valkey  *valkey.Config `mapstructure:"valkey"`
	S3      *s3.Config     `mapstructure:"s3"`
}

// Load reads a YAML config file and decodes it through the mapstructure tags
// the subsystem Config structs already carry.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if raw == nil {
		raw = map[string]any{}
	}

	cfg := &Config{}
	if err := mapstructure.Decode(raw, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	cfg.Toolkit.Prefix = defaults.StringOrDefault(cfg.Toolkit.Prefix, "adminkit")
	cfg.Logger.LogMod = logger.LogMod(
		defaults.StringOrDefault(string(cfg.Logger.LogMod), string(logger.ProductionMod)),
	)
	cfg.Logger.LogLevel = defaults.StringOrDefault(cfg.Logger.LogLevel, "info")
}
