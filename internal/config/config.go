package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration for the importer.
type Config struct {
	HTTPTimeout   Duration `yaml:"http_timeout"`
	SimctlTimeout Duration `yaml:"simctl_timeout"`
	TempDir       string   `yaml:"temp_dir"`
	Catalog       string   `yaml:"catalog"`
}

// Duration wraps time.Duration for YAML unmarshalling from strings like "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		HTTPTimeout:   Duration{30 * time.Second},
		SimctlTimeout: Duration{10 * time.Second},
		TempDir:       filepath.Join(os.TempDir(), "wanderlog_test_images"),
	}
}

// Load reads the config file and merges with defaults.
// Missing file is not an error — defaults are used silently.
func Load() (Config, error) {
	return LoadFrom(configPath())
}

// LoadFrom reads config from a specific path.
func LoadFrom(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Defaults(), fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	ht := c.HTTPTimeout.Duration
	if ht < time.Second || ht > 5*time.Minute {
		return fmt.Errorf("http_timeout must be between 1s and 5m, got %s", ht)
	}

	st := c.SimctlTimeout.Duration
	if st < time.Second || st > 5*time.Minute {
		return fmt.Errorf("simctl_timeout must be between 1s and 5m, got %s", st)
	}

	if c.TempDir == "" {
		return fmt.Errorf("temp_dir must not be empty")
	}

	return nil
}

func configPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "simphotos", "config.yml")
}
