// Package config loads mirage configuration from TOML, YAML, or JSON
// files via koanf, with defaults that work without any config file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for mirage.
type Config struct {
	// Validation settings: mode and per-file overrides
	Validation ValidationConfig `koanf:"validation"`

	// Project symbol index settings
	Index IndexConfig `koanf:"index"`

	// File exclusion patterns
	Exclude ExcludeConfig `koanf:"exclude"`

	// Vocabulary asset locations
	Vocab VocabConfig `koanf:"vocab"`

	// Output settings
	Output OutputConfig `koanf:"output"`
}

// ValidationConfig controls the validator's mode and symbol lists.
type ValidationConfig struct {
	// Mode is one of off, warn, strict, adaptive. WARN is the safe default.
	Mode string `koanf:"mode"`
	// Whitelist holds user-accepted false positives, never flagged.
	Whitelist []string `koanf:"whitelist"`
	// StrictFiles always validate in STRICT mode regardless of path heuristics.
	StrictFiles []string `koanf:"strict_files"`
	// IgnoreFiles are never validated.
	IgnoreFiles []string `koanf:"ignore_files"`
}

// IndexConfig controls the project symbol index.
type IndexConfig struct {
	TTLMinutes  int    `koanf:"ttl_minutes"`
	MaxFileSize int64  `koanf:"max_file_size"`
	Persist     bool   `koanf:"persist"`
	CacheDir    string `koanf:"cache_dir"`
	Workers     int    `koanf:"workers"`
}

// ExcludeConfig defines file exclusion patterns for index scans.
type ExcludeConfig struct {
	Patterns  []string `koanf:"patterns"`
	Dirs      []string `koanf:"dirs"`
	Gitignore bool     `koanf:"gitignore"`
}

// VocabConfig points at external vocabulary assets.
type VocabConfig struct {
	// PHPBuiltins is the path to the generated PHP vocabulary JSON.
	// Missing file degrades to the compiled-in core set.
	PHPBuiltins string `koanf:"php_builtins"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format string `koanf:"format"` // text, json, markdown
	Color  bool   `koanf:"color"`
}

// DefaultSkipDirs are directory names never scanned for definitions:
// dependency trees, VCS metadata, build output, and tool caches.
var DefaultSkipDirs = []string{
	"node_modules", "vendor", ".git", "__pycache__", ".venv", "venv",
	"env", ".env", "dist", "build", "target", "bin", "obj", ".idea",
	".vscode", "coverage", ".pytest_cache", ".mypy_cache", ".tox",
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Validation: ValidationConfig{
			Mode: "warn",
		},
		Index: IndexConfig{
			TTLMinutes:  5,
			MaxFileSize: 1 << 20,
			Persist:     false,
			CacheDir:    ".mirage/cache",
		},
		Exclude: ExcludeConfig{
			Dirs:      append([]string(nil), DefaultSkipDirs...),
			Gitignore: true,
		},
		Vocab: VocabConfig{
			PHPBuiltins: "data/php_builtins.json",
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries to load config from standard locations or returns
// defaults.
func LoadOrDefault() *Config {
	configNames := []string{
		"mirage.toml",
		"mirage.yaml",
		"mirage.yml",
		"mirage.json",
		".mirage.toml",
		".mirage.yaml",
		".mirage.yml",
		".mirage.json",
	}

	searchDirs := []string{".", ".mirage"}

	for _, dir := range searchDirs {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				cfg, err := Load(path)
				if err == nil {
					return cfg
				}
			}
		}
	}

	return DefaultConfig()
}

// ShouldExclude checks if a path should be excluded from index scans.
func (c *Config) ShouldExclude(path string) bool {
	sep := string(filepath.Separator)
	for _, dir := range c.Exclude.Dirs {
		if strings.Contains(path, sep+dir+sep) ||
			strings.HasPrefix(path, dir+sep) {
			return true
		}
	}

	base := filepath.Base(path)
	for _, pattern := range c.Exclude.Patterns {
		if matched, _ := filepath.Match(pattern, base); matched {
			return true
		}
	}

	return false
}
