package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const EnvConfig = "AMP_CONFIG"

const (
	StyleLitter  = "litter"
	StyleCompact = "compact"
)

var (
	logLevels    = []string{"debug", "info", "warn", "error"}
	outputStyles = []string{StyleLitter, StyleCompact}
)

// Config holds the complete amp configuration
type Config struct {
	Repl   ReplConfig   `toml:"repl" yaml:"repl"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Output OutputConfig `toml:"output" yaml:"output"`
}

// ReplConfig holds interactive front end settings
type ReplConfig struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	Banner      string `toml:"banner" yaml:"banner"`
	NoColor     bool   `toml:"no_color" yaml:"no_color"`
}

// LogConfig holds logger settings. An empty File disables the JSON file sink.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// OutputConfig selects how parsed programs are printed
type OutputConfig struct {
	Style string `toml:"style" yaml:"style"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Resolve picks the config file to use. An explicit path wins, then
// AMP_CONFIG, then the first default location that exists. It returns ""
// when there is nothing to load.
func Resolve(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// LoadFrom resolves the config path and loads it, falling back to defaults
// when no file is found
func LoadFrom(explicit string) (*Config, error) {
	path := Resolve(explicit)
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

func defaultPaths() []string {
	paths := []string{"./amp.toml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "amp", "config.toml"))
	}
	return paths
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// Repl
	if c.Repl.Prompt == "" {
		c.Repl.Prompt = "=> "
	}
	if c.Repl.Banner == "" {
		c.Repl.Banner = "amp"
	}
	if c.Repl.HistoryFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.Repl.HistoryFile = filepath.Join(home, ".amp_history")
		}
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	// Output
	if c.Output.Style == "" {
		c.Output.Style = StyleLitter
	}
}

// Validate rejects values no component knows how to use
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %s, got %q", strings.Join(logLevels, ", "), c.Log.Level)
	}
	if !slices.Contains(outputStyles, c.Output.Style) {
		return fmt.Errorf("output.style must be one of %s, got %q", strings.Join(outputStyles, ", "), c.Output.Style)
	}

	return nil
}
