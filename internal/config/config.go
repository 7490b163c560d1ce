// Package config provides reading and writing of nexus configuration.
// Supports both global (~/.nexus/config.yaml) and local
// (<workspace>/.nexus/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.nexus/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is workspace-specific config in .nexus/config.yaml
	ScopeLocal
)

// Dir is the name of the nexus state directory, both in the home directory
// and inside a workspace.
const Dir = ".nexus"

// Author represents the author recorded in the audit log.
type Author struct {
	Name  string `yaml:"name,omitempty"`
	Email string `yaml:"email,omitempty"`
}

// Limits holds size limit configuration options.
type Limits struct {
	MaxPath    *int   `yaml:"max_path,omitempty"`
	MaxContent *int64 `yaml:"max_content,omitempty"`
}

// Diff holds diff output options.
type Diff struct {
	Colour string `yaml:"colour,omitempty"`
}

// Colour modes for diff output.
const (
	ColourAuto   = "auto"
	ColourAlways = "always"
	ColourNever  = "never"
)

// Default limits applied when not configured.
const (
	DefaultMaxPath    = 1024
	DefaultMaxContent = 100 * 1024 * 1024 // 100 MB
)

// Validation bounds for configuration values.
const (
	MinMaxPath    = 1
	MaxMaxPath    = 65536 // 64 KB
	MinMaxContent = 1
	MaxMaxContent = 10 * 1024 * 1024 * 1024 // 10 GB
)

// Config contains configuration for nexus.
type Config struct {
	Author Author `yaml:"author,omitempty"`
	Limits Limits `yaml:"limits,omitempty"`
	Diff   Diff   `yaml:"diff,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	dir   string
	scope Scope
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.MaxPath != nil {
		v := *c.Limits.MaxPath
		if v < MinMaxPath || v > MaxMaxPath {
			return fmt.Errorf("%w: max_path must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxPath, MaxMaxPath, v)
		}
	}
	if c.Limits.MaxContent != nil {
		v := *c.Limits.MaxContent
		if v < MinMaxContent || v > MaxMaxContent {
			return fmt.Errorf("%w: max_content must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxContent, MaxMaxContent, v)
		}
	}
	switch c.Diff.Colour {
	case "", ColourAuto, ColourAlways, ColourNever:
	default:
		return fmt.Errorf("%w: diff.colour must be auto, always or never, got %q",
			ErrInvalidValue, c.Diff.Colour)
	}
	return nil
}

// MaxPath returns the maximum path length in bytes (defaults to 1024).
func (c *Config) MaxPath() int {
	if c.Limits.MaxPath == nil {
		return DefaultMaxPath
	}
	return *c.Limits.MaxPath
}

// MaxContent returns the maximum file size in bytes (defaults to 100 MB).
func (c *Config) MaxContent() int64 {
	if c.Limits.MaxContent == nil {
		return DefaultMaxContent
	}
	return *c.Limits.MaxContent
}

// Colour returns the diff colour mode (defaults to auto).
func (c *Config) Colour() string {
	if c.Diff.Colour == "" {
		return ColourAuto
	}
	return c.Diff.Colour
}

// UseColour resolves the colour mode against whether output is a terminal.
func (c *Config) UseColour(tty bool) bool {
	switch c.Colour() {
	case ColourAlways:
		return true
	case ColourNever:
		return false
	default:
		return tty
	}
}

// LocalPath returns the path to the local config file of the workspace dir.
func LocalPath(dir string) string {
	return filepath.Join(dir, Dir, "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.nexus/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, Dir, "config.yaml")
}

// Load reads configuration for the workspace dir: uses local if it exists,
// otherwise global.
func Load(dir string) (*Config, error) {
	if _, err := os.Stat(LocalPath(dir)); err == nil {
		return LoadScope(dir, ScopeLocal)
	}
	return LoadScope(dir, ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(dir string, scope Scope) (*Config, error) {
	path := pathForScope(dir, scope)
	if path == "" {
		return &Config{dir: dir, scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, dir: dir, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.dir = dir
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.dir, c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(c.dir, scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func pathForScope(dir string, scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath(dir)
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
