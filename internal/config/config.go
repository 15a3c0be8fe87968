// Package config handles XDG configuration directory, the config file and
// session persistence paths.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "tdo"

	// ConfigFile is the service configuration filename.
	ConfigFile = "config.toml"

	// SessionFile is the persisted session filename.
	SessionFile = "session.json"
)

// Service holds the hosted backend coordinates read from config.toml.
type Service struct {
	// URL is the base URL of the hosted todo service.
	URL string `toml:"url"`

	// AnonKey is the public API key sent with every request.
	AnonKey string `toml:"anon_key"`

	// SiteURL is where confirmation and reset e-mails redirect to.
	// Defaults to URL when empty.
	SiteURL string `toml:"site_url"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Service is the hosted backend configuration.
	Service Service

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a Config with the default or specified config directory and
// loads config.toml if present. TDO_URL and TDO_ANON_KEY override the file.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}

	path := cfg.ConfigPath()
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg.Service); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	}

	// Env overrides win over the file.
	if v := strings.TrimSpace(os.Getenv("TDO_URL")); v != "" {
		cfg.Service.URL = v
	}
	if v := strings.TrimSpace(os.Getenv("TDO_ANON_KEY")); v != "" {
		cfg.Service.AnonKey = v
	}

	cfg.Service.URL = strings.TrimRight(cfg.Service.URL, "/")
	if cfg.Service.SiteURL == "" {
		cfg.Service.SiteURL = cfg.Service.URL
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// HasService reports whether the backend coordinates are configured.
func (c *Config) HasService() bool {
	return c.Service.URL != "" && c.Service.AnonKey != ""
}

// RedirectURL computes the address embedded in provider e-mails.
func (c *Config) RedirectURL(path string) string {
	return strings.TrimRight(c.Service.SiteURL, "/") + path
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// SessionPath returns the path to the persisted session file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
