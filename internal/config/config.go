package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/tintz/tintz/internal/theme"
)

// Config holds Tintz runtime configuration loaded from TOML.
type Config struct {
	ConfigVersion int         `toml:"config_version"`
	UI            UIConfig    `toml:"ui"`
	State         StateConfig `toml:"state"`
}

type UIConfig struct {
	Theme   string `toml:"theme"`
	NoColor bool   `toml:"no_color"`
}

// StateConfig holds theme persistence settings.
type StateConfig struct {
	Persist bool   `toml:"persist"`
	Path    string `toml:"path"`
}

// Load reads configuration from disk. If path is empty, a default
// OS-specific location is used. A missing file yields the defaults.
func Load(path string) (*Config, string, error) {
	cfgPath := path
	if cfgPath == "" {
		var err error
		cfgPath, err = defaultPath()
		if err != nil {
			return nil, "", fmt.Errorf("resolve config path: %w", err)
		}
	}

	var cfg Config
	data, err := os.ReadFile(cfgPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No config file is fine; run on defaults.
	case err != nil:
		return nil, cfgPath, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, cfgPath, fmt.Errorf("parse config: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := Validate(cfg); err != nil {
		return nil, cfgPath, err
	}

	return &cfg, cfgPath, nil
}

func defaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	base := filepath.Join(dir, "tintz")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(base, "config.toml"), nil
}

func applyDefaults(cfg *Config) {
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = "light"
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.UI.NoColor = true
	}
}

// Validate performs semantic validation of config.
func Validate(cfg Config) error {
	if !theme.Valid(cfg.UI.Theme) {
		return fmt.Errorf("unknown theme: %s", cfg.UI.Theme)
	}
	return nil
}
