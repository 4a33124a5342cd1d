package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Toolbar sizes.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
)

const defaultFrame = 16 * time.Millisecond

type Config struct {
	Log       LogConfig       `koanf:"log"`
	Toolbar   ToolbarConfig   `koanf:"toolbar"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	State     StateConfig     `koanf:"state"`
	Export    ExportConfig    `koanf:"export"`

	// Keys overrides the keys of an action, by action name.
	// An empty list unbinds the action.
	Keys map[string][]string `koanf:"keys"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // default: $XDG_STATE_HOME/drawbar/drawbar.log
}

// ToolbarConfig controls toolbar rendering and timing.
type ToolbarConfig struct {
	Size    string `koanf:"size"`     // "small" or "medium" (default: "medium")
	FrameMS int    `koanf:"frame_ms"` // pointer-type reset delay (default: 16)
}

// AnalyticsConfig controls the usage event sink.
type AnalyticsConfig struct {
	Enabled      bool   `koanf:"enabled"`
	OTLPEndpoint string `koanf:"otlp_endpoint"` // e.g. "localhost:4317"
	Insecure     bool   `koanf:"insecure"`
}

// StateConfig controls preference persistence.
type StateConfig struct {
	Persist *bool `koanf:"persist"` // default: true
}

// ExportConfig controls scene export.
type ExportConfig struct {
	Dir string `koanf:"dir"` // default: current directory
}

// Load reads the config files in priority order (last wins).
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order, skipping missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Log.File = expandPath(cfg.Log.File)
	cfg.Export.Dir = expandPath(cfg.Export.Dir)

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/drawbar/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "drawbar", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// LogLevel returns the configured log level, defaulting to "info".
func (c *Config) LogLevel() string {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		return c.Log.Level
	default:
		return "info"
	}
}

// ToolbarSize returns the configured toolbar size, defaulting to medium.
func (c *Config) ToolbarSize() string {
	if c.Toolbar.Size == SizeSmall {
		return SizeSmall
	}
	return SizeMedium
}

// FrameInterval returns the delay used for "next frame" work.
func (c *Config) FrameInterval() time.Duration {
	if c.Toolbar.FrameMS <= 0 {
		return defaultFrame
	}
	return time.Duration(c.Toolbar.FrameMS) * time.Millisecond
}

// PersistState reports whether preferences are saved between runs.
func (c *Config) PersistState() bool {
	return c.State.Persist == nil || *c.State.Persist
}

// ExportDir returns the export directory, defaulting to ".".
func (c *Config) ExportDir() string {
	if c.Export.Dir == "" {
		return "."
	}
	return c.Export.Dir
}
