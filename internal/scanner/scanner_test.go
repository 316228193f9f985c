package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"mirage/pkg/config"
	"mirage/pkg/lang"
)

func TestNew(t *testing.T) {
	// With nil config
	s := New(nil)
	if s == nil {
		t.Fatal("New(nil) returned nil")
	}
	if s.config == nil {
		t.Error("scanner.config should not be nil when passing nil")
	}

	// With explicit config
	cfg := config.DefaultConfig()
	s = New(cfg)
	if s.config != cfg {
		t.Error("scanner.config should be the provided config")
	}
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", name, err)
		}
	}
}

func TestScanDir(t *testing.T) {
	tmpDir := t.TempDir()

	files := map[string]string{
		"app.py":          "def main(): pass\n",
		"lib.php":         "<?php\n",
		"src/index.ts":    "export {}\n",
		"src/helper.js":   "function x() {}\n",
		"core/main.rs":    "fn main() {}\n",
		"README.md":       "# readme\n", // unsupported, skipped
		"assets/logo.svg": "<svg/>\n",   // unsupported, skipped
	}
	writeFiles(t, tmpDir, files)

	s := New(nil)
	result, err := s.ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}

	if len(result) != 5 {
		t.Errorf("ScanDir() found %d files, want 5", len(result))
		for _, f := range result {
			t.Logf("  Found: %s", f)
		}
	}

	found := make(map[string]bool)
	for _, f := range result {
		rel, _ := filepath.Rel(tmpDir, f)
		found[rel] = true
	}
	for _, name := range []string{"app.py", "lib.php", filepath.Join("src", "index.ts")} {
		if !found[name] {
			t.Errorf("File %s was not found", name)
		}
	}
}

func TestScanDirExcludesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	for _, dir := range []string{"vendor", "node_modules", ".git", "__pycache__"} {
		writeFiles(t, tmpDir, map[string]string{
			filepath.Join(dir, "file.py"): "x = 1\n",
		})
	}
	writeFiles(t, tmpDir, map[string]string{"main.py": "def main(): pass\n"})

	s := New(nil)
	result, err := s.ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}

	if len(result) != 1 {
		t.Errorf("ScanDir() found %d files, want 1 (excluded dirs should be skipped)", len(result))
		for _, f := range result {
			t.Logf("  Found: %s", f)
		}
	}
}

func TestScanDirExcludesPatterns(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"app.js":     "function x() {}\n",
		"app.min.js": "function x(){}\n",
	})

	cfg := config.DefaultConfig()
	cfg.Exclude.Patterns = []string{"*.min.js"}

	s := New(cfg)
	result, err := s.ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}

	if len(result) != 1 || filepath.Base(result[0]) != "app.js" {
		t.Errorf("ScanDir() = %v, want only app.js", result)
	}
}

func TestScanDirWithGitignore(t *testing.T) {
	tmpDir := t.TempDir()

	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0755); err != nil {
		t.Fatalf("Failed to create .git dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ".gitignore"), []byte("generated/\n"), 0644); err != nil {
		t.Fatalf("Failed to create .gitignore: %v", err)
	}
	writeFiles(t, tmpDir, map[string]string{
		"main.py":            "def main(): pass\n",
		"generated/stubs.py": "def stub(): pass\n",
	})

	s := New(nil)
	result, err := s.ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}

	for _, f := range result {
		if filepath.Base(f) == "stubs.py" {
			t.Error("ScanDir() should honor .gitignore")
		}
	}
	if len(result) != 1 {
		t.Errorf("ScanDir() found %d files, want 1", len(result))
	}
}

func TestScanDirDisabledGitignore(t *testing.T) {
	tmpDir := t.TempDir()

	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0755); err != nil {
		t.Fatalf("Failed to create .git dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, ".gitignore"), []byte("ignored/\n"), 0644); err != nil {
		t.Fatalf("Failed to create .gitignore: %v", err)
	}
	writeFiles(t, tmpDir, map[string]string{
		filepath.Join("ignored", "file.py"): "x = 1\n",
	})

	cfg := config.DefaultConfig()
	cfg.Exclude.Gitignore = false

	s := New(cfg)
	result, err := s.ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}

	found := false
	for _, f := range result {
		if filepath.Base(f) == "file.py" {
			found = true
			break
		}
	}
	if !found {
		t.Error("With gitignore disabled, should find files in 'ignored' directory")
	}
}

func TestScanDirEmptyDirectory(t *testing.T) {
	s := New(nil)
	result, err := s.ScanDir(t.TempDir())
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("ScanDir() on empty dir returned %d files, want 0", len(result))
	}
}

func TestScanDirForLanguage(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"a.py":  "x = 1\n",
		"b.py":  "y = 2\n",
		"c.php": "<?php\n",
	})

	s := New(nil)
	result, err := s.ScanDirForLanguage(tmpDir, lang.Python)
	if err != nil {
		t.Fatalf("ScanDirForLanguage() error: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("ScanDirForLanguage(python) found %d files, want 2", len(result))
	}
}

func TestFilterByLanguage(t *testing.T) {
	files := []string{
		"/path/to/main.py",
		"/path/to/lib.py",
		"/path/to/app.ts",
		"/path/to/index.php",
	}

	if got := FilterByLanguage(files, lang.Python); len(got) != 2 {
		t.Errorf("FilterByLanguage(python) returned %d files, want 2", len(got))
	}
	if got := FilterByLanguage(files, lang.TypeScript); len(got) != 1 {
		t.Errorf("FilterByLanguage(typescript) returned %d files, want 1", len(got))
	}
	if got := FilterByLanguage(files, lang.Rust); len(got) != 0 {
		t.Errorf("FilterByLanguage(rust) returned %d files, want 0", len(got))
	}
	if got := FilterByLanguage(nil, lang.Python); got != nil {
		t.Errorf("FilterByLanguage(nil) should return nil, got %v", got)
	}
}

func TestGroupByLanguage(t *testing.T) {
	files := []string{
		"/path/to/main.py",
		"/path/to/lib.py",
		"/path/to/app.ts",
		"/path/to/readme.txt", // unknown language
	}

	groups := GroupByLanguage(files)

	if len(groups[lang.Python]) != 2 {
		t.Errorf("GroupByLanguage()[python] has %d files, want 2", len(groups[lang.Python]))
	}
	if len(groups[lang.TypeScript]) != 1 {
		t.Errorf("GroupByLanguage()[typescript] has %d files, want 1", len(groups[lang.TypeScript]))
	}
	if len(groups) != 2 {
		t.Errorf("GroupByLanguage() has %d groups, want 2", len(groups))
	}
}

func TestFilterBySize(t *testing.T) {
	tmpDir := t.TempDir()

	smallFile := filepath.Join(tmpDir, "small.py")
	largeFile := filepath.Join(tmpDir, "large.py")

	if err := os.WriteFile(smallFile, []byte("small"), 0644); err != nil {
		t.Fatalf("Failed to create small file: %v", err)
	}
	large := make([]byte, 1024)
	for i := range large {
		large[i] = 'x'
	}
	if err := os.WriteFile(largeFile, large, 0644); err != nil {
		t.Fatalf("Failed to create large file: %v", err)
	}

	t.Run("no limit", func(t *testing.T) {
		filtered, skipped := FilterBySize([]string{smallFile, largeFile}, 0)
		if len(filtered) != 2 || skipped != 0 {
			t.Errorf("FilterBySize(0) = %d files, %d skipped", len(filtered), skipped)
		}
	})

	t.Run("with limit", func(t *testing.T) {
		filtered, skipped := FilterBySize([]string{smallFile, largeFile}, 100)
		if len(filtered) != 1 || skipped != 1 {
			t.Errorf("FilterBySize(100) = %d files, %d skipped", len(filtered), skipped)
		}
		if filtered[0] != smallFile {
			t.Errorf("FilterBySize should keep small file, got %s", filtered[0])
		}
	})

	t.Run("with stat error", func(t *testing.T) {
		nonExistent := filepath.Join(tmpDir, "nonexistent.py")
		filtered, skipped := FilterBySize([]string{smallFile, nonExistent}, 100)
		if len(filtered) != 1 || skipped != 1 {
			t.Errorf("FilterBySize with missing file = %d files, %d skipped", len(filtered), skipped)
		}
	})
}

func TestIsWithinRoot(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		path string
		root string
		want bool
	}{
		{"same path", tmpDir, tmpDir, true},
		{"child path", filepath.Join(tmpDir, "subdir", "file.py"), tmpDir, true},
		{"path outside root", "/some/other/path", tmpDir, false},
		{"parent path", filepath.Dir(tmpDir), tmpDir, false},
		{"similar prefix but different dir", tmpDir + "2/file.py", tmpDir, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isWithinRoot(tt.path, tt.root); got != tt.want {
				t.Errorf("isWithinRoot(%q, %q) = %v, want %v", tt.path, tt.root, got, tt.want)
			}
		})
	}
}

func TestFindGitRoot(t *testing.T) {
	tmpDir := t.TempDir()
	if result := findGitRoot(tmpDir); result != "" {
		t.Errorf("findGitRoot() on non-git dir should return empty string, got %q", result)
	}

	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0755); err != nil {
		t.Fatalf("Failed to create .git dir: %v", err)
	}
	if result := findGitRoot(tmpDir); result != tmpDir {
		t.Errorf("findGitRoot() should return %q, got %q", tmpDir, result)
	}

	subDir := filepath.Join(tmpDir, "src", "pkg")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}
	if result := findGitRoot(subDir); result != tmpDir {
		t.Errorf("findGitRoot() from subdir should return %q, got %q", tmpDir, result)
	}
}

func TestScanDirWithUnresolvableSymlink(t *testing.T) {
	tmpDir := t.TempDir()

	symlinkPath := filepath.Join(tmpDir, "dangling.py")
	if err := os.Symlink("/nonexistent/path/file.py", symlinkPath); err != nil {
		t.Skip("Symlinks not supported on this system")
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "real.py"), []byte("x = 1\n"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	s := New(nil)
	result, err := s.ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}

	if len(result) != 1 {
		t.Errorf("ScanDir() should find 1 file (skipping dangling symlink), got %d", len(result))
	}
}

func TestScanDirWithSymlinkDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	writeFiles(t, tmpDir, map[string]string{
		filepath.Join("real", "file.py"): "x = 1\n",
	})

	// Symlink pointing outside the scan root must not be followed.
	outsideDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(outsideDir, "outside.py"), []byte("y = 2\n"), 0644); err != nil {
		t.Fatalf("Failed to create outside file: %v", err)
	}
	if err := os.Symlink(outsideDir, filepath.Join(tmpDir, "linked")); err != nil {
		t.Skip("Symlinks not supported on this system")
	}

	s := New(nil)
	result, err := s.ScanDir(tmpDir)
	if err != nil {
		t.Fatalf("ScanDir() error: %v", err)
	}

	for _, f := range result {
		if filepath.Base(f) == "outside.py" {
			t.Error("ScanDir() should not follow symlinks outside the root directory")
		}
	}
}
