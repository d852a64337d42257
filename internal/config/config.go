// Package config loads projectdeck configuration.
//
// Precedence (highest to lowest):
//  1. PROJECTDECK_* environment variables (PROJECTDECK_API_BASE_URL -> api.base_url)
//  2. YAML config file (~/.config/projectdeck/config.yaml by default)
//  3. Defaults
package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PROJECTDECK_"

const maxConfigFileSize = 1024 * 1024

// Config is the full projectdeck configuration.
type Config struct {
	API     APIConfig     `koanf:"api"`
	Log     LogConfig     `koanf:"log"`
	Tracing TracingConfig `koanf:"tracing"`
	// Demo runs against an in-memory store instead of the API.
	Demo bool `koanf:"demo"`
}

// APIConfig points at the project service.
type APIConfig struct {
	BaseURL string        `koanf:"base_url"`
	Token   string        `koanf:"token"`
	Timeout time.Duration `koanf:"timeout"`
}

// LogConfig selects the log file and level.
type LogConfig struct {
	File  string `koanf:"file"`
	Level string `koanf:"level"`
}

// TracingConfig configures the OTLP exporter. Empty endpoint disables it.
type TracingConfig struct {
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
	// Insecure exports over plain HTTP even for a scheme-less endpoint.
	Insecure bool `koanf:"insecure"`
}

// DefaultPath returns ~/.config/projectdeck/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "projectdeck", "config.yaml"), nil
}

// Override adjusts the loaded configuration before defaults and
// validation. Command-line flags are applied this way.
type Override func(*Config)

// Load reads the YAML file at path (default path if empty; a missing file
// is not an error), applies environment overrides, then overrides, then
// defaults, then validates.
func Load(path string, overrides ...Override) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	content, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	if content != nil {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	for _, o := range overrides {
		o(&cfg)
	}
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// envKey maps PROJECTDECK_API_BASE_URL to api.base_url: the first
// underscore after the prefix separates section from field.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, field, ok := strings.Cut(lower, "_")
	if !ok {
		return lower
	}
	return section + "." + field
}

func readConfigFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}
	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return content, nil
}

func applyDefaults(cfg *Config) {
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = 10 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.File == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Log.File = filepath.Join(home, ".projectdeck", "projectdeck.log")
		}
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = "projectdeck"
	}
	cfg.API.BaseURL = strings.TrimSuffix(cfg.API.BaseURL, "/")
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.API.Timeout <= 0 {
		return errors.New("api timeout must be positive")
	}
	if c.Demo {
		return nil
	}
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required (or enable demo mode)")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid api.base_url %q", c.API.BaseURL)
	}
	return nil
}
