package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.Validation.Mode != "warn" {
		t.Errorf("Validation.Mode = %q, want warn", cfg.Validation.Mode)
	}
	if len(cfg.Validation.Whitelist) != 0 {
		t.Errorf("Validation.Whitelist should default empty, got %v", cfg.Validation.Whitelist)
	}

	if cfg.Index.TTLMinutes != 5 {
		t.Errorf("Index.TTLMinutes = %d, want 5", cfg.Index.TTLMinutes)
	}
	if cfg.Index.MaxFileSize != 1<<20 {
		t.Errorf("Index.MaxFileSize = %d, want 1MB", cfg.Index.MaxFileSize)
	}
	if cfg.Index.Persist {
		t.Error("Index.Persist should be false by default")
	}

	if !cfg.Exclude.Gitignore {
		t.Error("Exclude.Gitignore should be true by default")
	}
	if len(cfg.Exclude.Dirs) == 0 {
		t.Error("Exclude.Dirs should have default values")
	}

	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %s, want text", cfg.Output.Format)
	}
	if !cfg.Output.Color {
		t.Error("Output.Color should be true by default")
	}
}

func TestLoadTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "mirage.toml")

	content := `
[validation]
mode = "strict"
whitelist = ["legacy_helper"]
strict_files = ["core/billing.py"]

[index]
ttl_minutes = 10

[output]
format = "json"
`

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Validation.Mode != "strict" {
		t.Errorf("Validation.Mode = %q, want strict", cfg.Validation.Mode)
	}
	if len(cfg.Validation.Whitelist) != 1 || cfg.Validation.Whitelist[0] != "legacy_helper" {
		t.Errorf("Validation.Whitelist = %v", cfg.Validation.Whitelist)
	}
	if len(cfg.Validation.StrictFiles) != 1 {
		t.Errorf("Validation.StrictFiles = %v", cfg.Validation.StrictFiles)
	}
	if cfg.Index.TTLMinutes != 10 {
		t.Errorf("Index.TTLMinutes = %d, want 10", cfg.Index.TTLMinutes)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %s, want json", cfg.Output.Format)
	}

	// Untouched sections keep their defaults.
	if cfg.Index.MaxFileSize != 1<<20 {
		t.Errorf("Index.MaxFileSize lost its default: %d", cfg.Index.MaxFileSize)
	}
}

func TestLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "mirage.yaml")

	content := `
validation:
  mode: "off"

index:
  ttl_minutes: 30

output:
  format: markdown
`

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Validation.Mode != "off" {
		t.Errorf("Validation.Mode = %q, want off", cfg.Validation.Mode)
	}
	if cfg.Index.TTLMinutes != 30 {
		t.Errorf("Index.TTLMinutes = %d, want 30", cfg.Index.TTLMinutes)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Output.Format = %s, want markdown", cfg.Output.Format)
	}
}

func TestLoadJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "mirage.json")

	content := `{
  "validation": {
    "mode": "adaptive"
  },
  "index": {
    "persist": true,
    "cache_dir": "/tmp/mirage-cache"
  }
}`

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Validation.Mode != "adaptive" {
		t.Errorf("Validation.Mode = %q, want adaptive", cfg.Validation.Mode)
	}
	if !cfg.Index.Persist {
		t.Error("Index.Persist should be true")
	}
	if cfg.Index.CacheDir != "/tmp/mirage-cache" {
		t.Errorf("Index.CacheDir = %q", cfg.Index.CacheDir)
	}
}

func TestLoadNonExistentFile(t *testing.T) {
	_, err := Load("/nonexistent/path/mirage.toml")
	if err == nil {
		t.Error("Load() should return error for non-existent file")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "mirage.toml")

	// Invalid TOML
	content := `[validation
invalid toml`

	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Error("Load() should return error for invalid config")
	}
}

func TestLoadOrDefault(t *testing.T) {
	// In a directory without config files, should return defaults
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	cfg := LoadOrDefault()
	if cfg == nil {
		t.Fatal("LoadOrDefault() returned nil")
	}

	if cfg.Validation.Mode != "warn" {
		t.Errorf("LoadOrDefault() returned non-default mode: %q", cfg.Validation.Mode)
	}
}

func TestLoadOrDefaultWithConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)

	content := `
[index]
ttl_minutes = 999
`
	if err := os.WriteFile(filepath.Join(tmpDir, "mirage.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}

	cfg := LoadOrDefault()
	if cfg.Index.TTLMinutes != 999 {
		t.Errorf("LoadOrDefault() should load from file, got TTLMinutes=%d", cfg.Index.TTLMinutes)
	}
}

func TestShouldExclude(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Exclude.Patterns = []string{"*.min.js"}

	tests := []struct {
		path string
		want bool
	}{
		// Excluded directories
		{"vendor/pkg/file.php", true},
		{"node_modules/pkg/file.js", true},
		{".git/objects/file", true},
		{"app/__pycache__/mod.pyc", true},

		// Excluded patterns
		{"assets/app.min.js", true},

		// Not excluded
		{"main.py", false},
		{"src/util/helper.ts", false},
		{"app.js", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := cfg.ShouldExclude(tt.path)
			if got != tt.want {
				t.Errorf("ShouldExclude(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestShouldExcludeCustomPatterns(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Exclude.Patterns = append(cfg.Exclude.Patterns, "*_generated.py", "*.pb.go")
	cfg.Exclude.Dirs = append(cfg.Exclude.Dirs, "custom_exclude")

	tests := []struct {
		path string
		want bool
	}{
		{"model_generated.py", true},
		{"service.pb.go", true},
		{"custom_exclude/file.py", true},
		{"main.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := cfg.ShouldExclude(tt.path)
			if got != tt.want {
				t.Errorf("ShouldExclude(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestShouldExcludePathsWithSeparators(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join("src", "vendor", "pkg", "file.php"), true},
		{filepath.Join("vendor", "file.php"), true},
		{filepath.Join("src", "main.py"), false},
		{filepath.Join("pkg", "vendor_utils.py"), false}, // "vendor" in name, not directory
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := cfg.ShouldExclude(tt.path)
			if got != tt.want {
				t.Errorf("ShouldExclude(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
