package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mirage/internal/cache"
	"mirage/pkg/config"
	"mirage/pkg/lang"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestDefinitions(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"lib.py":     "def process_data(x):\n    return x\n\nclass Widget:\n    pass\n",
		"sub/app.py": "async def fetch_items():\n    pass\n",
	})

	ix := New(nil)
	defs, err := ix.Definitions(context.Background(), root, lang.Python)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"process_data", "Widget", "fetch_items"} {
		if !defs.Has(name) {
			t.Errorf("definitions missing %q: %v", name, defs.Names())
		}
	}
}

func TestDefinitionsSkipDependencyDirs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"app.js":                    "function realThing() {}\n",
		"node_modules/pkg/index.js": "function vendoredThing() {}\n",
	})

	ix := New(nil)
	defs, err := ix.Definitions(context.Background(), root, lang.JavaScript)
	if err != nil {
		t.Fatal(err)
	}

	if !defs.Has("realThing") {
		t.Error("app.js definitions missing")
	}
	if defs.Has("vendoredThing") {
		t.Error("node_modules should never be indexed")
	}
}

func TestSnapshotMetadata(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.py": "def alpha(): pass\n",
		"b.py": "def beta(): pass\n",
	})

	ix := New(nil)
	snap, err := ix.Snapshot(context.Background(), root, lang.Python)
	if err != nil {
		t.Fatal(err)
	}

	if snap.Files != 2 {
		t.Errorf("snapshot files = %d, want 2", snap.Files)
	}
	if snap.Lang != lang.Python {
		t.Errorf("snapshot lang = %v", snap.Lang)
	}
	if len(snap.Symbols) != 2 {
		t.Errorf("snapshot symbols = %v, want alpha and beta", snap.Symbols)
	}
	// Symbols come back sorted.
	if snap.Symbols[0] != "alpha" || snap.Symbols[1] != "beta" {
		t.Errorf("symbols not sorted: %v", snap.Symbols)
	}
	if snap.BuiltAt.IsZero() {
		t.Error("snapshot BuiltAt not set")
	}
}

func TestSnapshotCachedUntilTTL(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.py": "def alpha(): pass\n"})

	ix := New(nil)
	ctx := context.Background()

	first, err := ix.Snapshot(ctx, root, lang.Python)
	if err != nil {
		t.Fatal(err)
	}

	// A file added after the scan is invisible until refresh.
	writeFiles(t, root, map[string]string{"b.py": "def beta(): pass\n"})

	second, err := ix.Snapshot(ctx, root, lang.Python)
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Error("fresh snapshot should be served from cache")
	}

	ix.Invalidate(root)
	third, err := ix.Snapshot(ctx, root, lang.Python)
	if err != nil {
		t.Fatal(err)
	}
	if len(third.Symbols) != 2 {
		t.Errorf("rescan after Invalidate found %v, want alpha and beta", third.Symbols)
	}
}

func TestExpiredSnapshotRefreshes(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.py": "def alpha(): pass\n"})

	ix := New(nil, WithTTL(time.Nanosecond))
	ctx := context.Background()

	if _, err := ix.Snapshot(ctx, root, lang.Python); err != nil {
		t.Fatal(err)
	}

	writeFiles(t, root, map[string]string{"b.py": "def beta(): pass\n"})
	time.Sleep(time.Millisecond)

	snap, err := ix.Snapshot(ctx, root, lang.Python)
	if err != nil {
		t.Fatal(err)
	}
	if len(snap.Symbols) != 2 {
		t.Errorf("expired snapshot not refreshed: %v", snap.Symbols)
	}
}

func TestMaxFileSizeSkipsLargeFiles(t *testing.T) {
	root := t.TempDir()
	large := "def huge(): pass\n"
	for len(large) < 256 {
		large += "# padding line to push the file over the limit\n"
	}
	writeFiles(t, root, map[string]string{
		"small.py": "def tiny(): pass\n",
		"large.py": large,
	})

	cfg := config.DefaultConfig()
	cfg.Index.MaxFileSize = 64

	ix := New(cfg)
	snap, err := ix.Snapshot(context.Background(), root, lang.Python)
	if err != nil {
		t.Fatal(err)
	}

	if snap.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", snap.Skipped)
	}
	if len(snap.Symbols) != 1 || snap.Symbols[0] != "tiny" {
		t.Errorf("symbols = %v, want only tiny", snap.Symbols)
	}
}

func TestEntries(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.py": "def alpha(): pass\n"})

	ix := New(nil)
	if got := ix.Entries(); len(got) != 0 {
		t.Errorf("new index has %d entries, want 0", len(got))
	}

	if _, err := ix.Snapshot(context.Background(), root, lang.Python); err != nil {
		t.Fatal(err)
	}

	entries := ix.Entries()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Lang != lang.Python || entries[0].Symbols != 1 || !entries[0].Fresh {
		t.Errorf("entry = %+v", entries[0])
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.py": "def alpha(): pass\n"})

	disk, err := cache.New(filepath.Join(t.TempDir(), "cache"), time.Hour, true)
	if err != nil {
		t.Fatal(err)
	}

	first := New(nil, WithDiskCache(disk))
	if _, err := first.Snapshot(context.Background(), root, lang.Python); err != nil {
		t.Fatal(err)
	}

	// Remove the source file: a second index with the same disk cache
	// must serve the persisted snapshot without rescanning.
	if err := os.Remove(filepath.Join(root, "a.py")); err != nil {
		t.Fatal(err)
	}

	second := New(nil, WithDiskCache(disk))
	defs, err := second.Definitions(context.Background(), root, lang.Python)
	if err != nil {
		t.Fatal(err)
	}
	if !defs.Has("alpha") {
		t.Errorf("persisted snapshot not used: %v", defs.Names())
	}
}

func TestCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"a.py": "def alpha(): pass\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ix := New(nil)
	if _, err := ix.Definitions(ctx, root, lang.Python); err == nil {
		t.Error("cancelled context should fail the scan")
	}
}
