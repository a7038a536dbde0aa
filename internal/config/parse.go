package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Validate checks a pinning config for errors.
func Validate(c *Config) error { return validate(c) }

// Save validates and writes a pinning config to disk.
func Save(path string, c *Config) error {
	if err := validate(c); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Load reads and validates a pinning.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates pinning.yaml content.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func validate(c *Config) error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", c.Version)
	}
	if c.Output == "" {
		return fmt.Errorf("config: output is required")
	}
	if err := validateOutput(c.Output); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Exclude))
	for i, pat := range c.Exclude {
		if err := validatePattern(i, pat); err != nil {
			return err
		}
		if seen[pat] {
			return fmt.Errorf("config: duplicate exclude pattern %q", pat)
		}
		seen[pat] = true
	}
	return nil
}

// validateOutput ensures the output path is relative and does not escape
// the repository root.
func validateOutput(p string) error {
	if filepath.IsAbs(p) {
		return fmt.Errorf("config: output: absolute path is not allowed: %s", p)
	}
	cleaned := filepath.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("config: output: path must not escape the repository (contains ..): %s", p)
	}
	return nil
}

func validatePattern(i int, pat string) error {
	if err := CheckPattern(pat); err != nil {
		return fmt.Errorf("config: exclude[%d]: %w", i, err)
	}
	return nil
}

// CheckPattern ensures an exclude entry is an exact package name or a
// trailing-star prefix, in normalized form (lowercase, hyphen-separated).
func CheckPattern(pat string) error {
	if pat == "" {
		return fmt.Errorf("pattern is empty")
	}
	name := strings.TrimSuffix(pat, "*")
	if strings.Contains(name, "*") {
		return fmt.Errorf("%q: * is only allowed as a trailing wildcard", pat)
	}
	if name == "" {
		return fmt.Errorf("bare * would exclude everything")
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '.', r == '_':
		default:
			return fmt.Errorf("%q: patterns must use the normalized package name (lowercase)", pat)
		}
	}
	return nil
}
