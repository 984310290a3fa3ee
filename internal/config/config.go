package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL  = "http://localhost:5000/api"
	DefaultTimeout = 10 * time.Second

	configDirName  = ".notes"
	configFileName = "config.yaml"
)

// Config holds client settings. Zero values mean "use the default".
type Config struct {
	APIURL   string        `yaml:"api_url,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
	Theme    string        `yaml:"theme,omitempty"`
	LogLevel string        `yaml:"log_level,omitempty"`
	LogFile  string        `yaml:"log_file,omitempty"`
}

func Default() Config {
	return Config{
		APIURL:   DefaultAPIURL,
		Timeout:  DefaultTimeout,
		Theme:    "classic",
		LogLevel: "info",
	}
}

// Path returns the settings file location: $NOTES_CONFIG, else ~/.notes/config.yaml.
func Path() (string, error) {
	if p := strings.TrimSpace(os.Getenv("NOTES_CONFIG")); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// Load resolves defaults, then the file at path (a missing file is fine),
// then environment overrides. An empty path means Path().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	file, err := ReadFile(path)
	if err != nil {
		return cfg, err
	}
	cfg = cfg.merge(file)

	// env wins over the file
	if v := strings.TrimSpace(os.Getenv("NOTES_API_URL")); v != "" {
		cfg.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv("NOTES_THEME")); v != "" {
		cfg.Theme = v
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	return cfg, nil
}

// ReadFile returns only what the file at path sets. A missing file yields
// the zero Config.
func ReadFile(path string) (Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return c, nil
	case err != nil:
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// Keys lists the settings Set accepts, in file order.
var Keys = []string{"api_url", "timeout", "theme", "log_level", "log_file"}

// Set assigns one setting by its file key. An empty value resets it to
// the default.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "api_url":
		c.APIURL = strings.TrimRight(value, "/")
	case "timeout":
		if value == "" {
			c.Timeout = 0
			return nil
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		if d < 0 {
			return fmt.Errorf("timeout: must not be negative")
		}
		c.Timeout = d
	case "theme":
		c.Theme = value
	case "log_level":
		c.LogLevel = value
	case "log_file":
		c.LogFile = value
	default:
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}

// merge overlays the non-zero fields of o on c.
func (c Config) merge(o Config) Config {
	if o.APIURL != "" {
		c.APIURL = o.APIURL
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
	return c
}

// Save writes c as YAML, creating the directory with owner-only access.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
