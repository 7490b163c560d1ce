// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go so that file can focus on YAML structure and
// loading, while this file handles the CLI and MCP interface where config is
// addressed by string keys (e.g., "limits.max_content").
//
// Pointers are used for optional limits so "not set" (nil) differs from an
// explicit value; defaults only apply to unset keys.

package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"author.name", "author.email",
		"limits.max_path", "limits.max_content",
		"diff.colour",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "author.name":
		return c.Author.Name, nil
	case "author.email":
		return c.Author.Email, nil
	case "limits.max_path":
		return strconv.Itoa(c.MaxPath()), nil
	case "limits.max_content":
		return strconv.FormatInt(c.MaxContent(), 10), nil
	case "diff.colour":
		return c.Colour(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "author.name":
		c.Author.Name = value
	case "author.email":
		c.Author.Email = value
	case "limits.max_path":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinMaxPath || n > MaxMaxPath {
			return fmt.Errorf("%w: limits.max_path must be an integer between %d and %d", ErrInvalidValue, MinMaxPath, MaxMaxPath)
		}
		c.Limits.MaxPath = &n
	case "limits.max_content":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < MinMaxContent || n > MaxMaxContent {
			return fmt.Errorf("%w: limits.max_content must be an integer between %d and %d", ErrInvalidValue, MinMaxContent, int64(MaxMaxContent))
		}
		c.Limits.MaxContent = &n
	case "diff.colour":
		v := strings.ToLower(value)
		if v != ColourAuto && v != ColourAlways && v != ColourNever {
			return fmt.Errorf("%w: diff.colour must be auto, always or never", ErrInvalidValue)
		}
		c.Diff.Colour = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"author.name":        c.Author.Name,
		"author.email":       c.Author.Email,
		"limits.max_path":    strconv.Itoa(c.MaxPath()),
		"limits.max_content": strconv.FormatInt(c.MaxContent(), 10),
		"diff.colour":        c.Colour(),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "author.name":
		return c.Author.Name != ""
	case "author.email":
		return c.Author.Email != ""
	case "limits.max_path":
		return c.Limits.MaxPath != nil
	case "limits.max_content":
		return c.Limits.MaxContent != nil
	case "diff.colour":
		return c.Diff.Colour != ""
	default:
		return false
	}
}
