package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// CustomRule is one user-supplied contains rule, appended after the built-in
// strategies. First substring hit assigns the category.
type CustomRule struct {
	Category string   `yaml:"category"`
	Contains []string `yaml:"contains"`
}

// Config is the daemon configuration file.
type Config struct {
	Addr      string `yaml:"addr"`
	DBPath    string `yaml:"db_path"`
	ModelPath string `yaml:"model_path"`

	CacheSize              int    `yaml:"cache_size"`
	BreakerFailures        uint32 `yaml:"breaker_failures"`
	BreakerCooldownSeconds int    `yaml:"breaker_cooldown_seconds"`

	// AnthropicModel selects the semantic matcher model. The matcher is only
	// enabled when ANTHROPIC_API_KEY is set in the environment.
	AnthropicModel string `yaml:"anthropic_model"`

	CustomRules []CustomRule `yaml:"custom_rules"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:      ":8787",
		DBPath:    "data/classify.db",
		ModelPath: "data/model.gob",
	}
}

// Load reads a YAML config file, layering it over the defaults. A missing
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parse config")
	}
	if cfg.Addr == "" {
		cfg.Addr = Default().Addr
	}
	if cfg.DBPath == "" {
		cfg.DBPath = Default().DBPath
	}
	return cfg, nil
}
