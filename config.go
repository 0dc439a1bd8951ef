package stamp

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownConfigFormat is returned for config files that are neither
// YAML nor TOML.
var ErrUnknownConfigFormat = errors.New("stamp: unknown config format")

// Config is the program configuration.
type Config struct {
	Title     string   `yaml:"title" toml:"title"`
	Width     int      `yaml:"width" toml:"width"`
	Height    int      `yaml:"height" toml:"height"`
	Image     string   `yaml:"image" toml:"image"`
	Layout    string   `yaml:"layout" toml:"layout"`
	ExportDir string   `yaml:"export_dir" toml:"export_dir"`
	Script    string   `yaml:"script" toml:"script"`
	Debug     bool     `yaml:"debug" toml:"debug"`
	Settings  Settings `yaml:"settings" toml:"settings"`
	// ApplySettings applies the settings block at startup, as if the text
	// and font size forms had been submitted.
	ApplySettings bool `yaml:"apply_settings" toml:"apply_settings"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Title:     "Screenshot Timestamp Editor",
		Width:     960,
		Height:    540,
		Layout:    "full",
		ExportDir: "exports",
		Settings:  DefaultSettings(),
	}
}

// LoadConfig reads a YAML (.yaml, .yml) or TOML (.toml) file over the
// defaults. Fields missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("stamp: read config: %w", err)
	}
	if err := ParseConfig(data, filepath.Ext(path), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ParseConfig decodes data in the format named by ext into cfg.
func ParseConfig(data []byte, ext string, cfg *Config) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("stamp: parse yaml config: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("stamp: parse toml config: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownConfigFormat, ext)
	}
	if _, err := ParseLayout(cfg.Layout); err != nil {
		return err
	}
	return nil
}
