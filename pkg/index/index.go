// Package index maintains a per-project symbol index: every function,
// class, and method name defined under a project root, per language.
// Snapshots are cached in memory with a TTL and refreshed on demand, so
// repeated validations of the same project share one scan.
package index

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"mirage/internal/cache"
	"mirage/internal/fileproc"
	"mirage/internal/scanner"
	"mirage/pkg/config"
	"mirage/pkg/extractor"
	"mirage/pkg/lang"
)

// DefaultTTL is how long a snapshot stays fresh without a refresh.
const DefaultTTL = 5 * time.Minute

// Snapshot is one scan result for a (root, language) pair.
type Snapshot struct {
	Root     string        `json:"root"`
	Lang     lang.Language `json:"lang"`
	Symbols  []string      `json:"symbols"`
	Files    int           `json:"files"`
	Skipped  int           `json:"skipped"`
	BuiltAt  time.Time     `json:"built_at"`
	Duration time.Duration `json:"duration"`
}

type entry struct {
	snapshot *Snapshot
	symbols  lang.Set
	expires  time.Time
}

// fileMemo caches per-file extraction keyed by content hash, so an
// unchanged file is never re-parsed across refreshes.
type fileMemo struct {
	mu sync.Mutex
	m  map[uint64][]string
}

func (fm *fileMemo) get(h uint64) ([]string, bool) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	syms, ok := fm.m[h]
	return syms, ok
}

func (fm *fileMemo) put(h uint64, syms []string) {
	fm.mu.Lock()
	fm.m[h] = syms
	fm.mu.Unlock()
}

// Index builds and caches project symbol snapshots. Safe for concurrent
// use; concurrent refreshes of the same (root, language) pair are
// collapsed into a single scan.
type Index struct {
	cfg    *config.Config
	logger *zap.Logger
	ttl    time.Duration
	disk   *cache.Cache

	mu      sync.RWMutex
	entries map[string]*entry
	group   singleflight.Group
	memo    fileMemo
}

// Option configures an Index.
type Option func(*Index)

// WithTTL overrides the snapshot TTL.
func WithTTL(ttl time.Duration) Option {
	return func(ix *Index) {
		if ttl > 0 {
			ix.ttl = ttl
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(ix *Index) { ix.logger = l }
}

// WithDiskCache enables persistence of snapshots across processes.
func WithDiskCache(c *cache.Cache) Option {
	return func(ix *Index) { ix.disk = c }
}

// New creates a symbol index. A nil config uses defaults.
func New(cfg *config.Config, opts ...Option) *Index {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ix := &Index{
		cfg:     cfg,
		logger:  zap.NewNop(),
		ttl:     DefaultTTL,
		entries: make(map[string]*entry),
		memo:    fileMemo{m: make(map[uint64][]string)},
	}
	if cfg.Index.TTLMinutes > 0 {
		ix.ttl = time.Duration(cfg.Index.TTLMinutes) * time.Minute
	}
	for _, opt := range opts {
		opt(ix)
	}

	if ix.disk == nil && cfg.Index.Persist {
		if disk, err := cache.New(cfg.Index.CacheDir, ix.ttl, true); err == nil {
			ix.disk = disk
		} else {
			ix.logger.Warn("index disk cache unavailable", zap.Error(err))
		}
	}

	return ix
}

func key(root string, l lang.Language) string {
	return root + "\x00" + string(l)
}

// Definitions returns the set of symbol names defined under root for
// the given language, refreshing the snapshot when stale. The returned
// set must not be mutated.
func (ix *Index) Definitions(ctx context.Context, root string, l lang.Language) (lang.Set, error) {
	_, syms, err := ix.lookup(ctx, root, l)
	if err != nil {
		return nil, err
	}
	return syms, nil
}

// Snapshot returns the current snapshot for root and language,
// refreshing when stale.
func (ix *Index) Snapshot(ctx context.Context, root string, l lang.Language) (*Snapshot, error) {
	snap, _, err := ix.lookup(ctx, root, l)
	return snap, err
}

func (ix *Index) lookup(ctx context.Context, root string, l lang.Language) (*Snapshot, lang.Set, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, nil, err
	}
	k := key(absRoot, l)

	ix.mu.RLock()
	e, ok := ix.entries[k]
	ix.mu.RUnlock()
	if ok && time.Now().Before(e.expires) {
		return e.snapshot, e.symbols, nil
	}

	v, err, _ := ix.group.Do(k, func() (any, error) {
		// Re-check under singleflight: a concurrent caller may have
		// refreshed while we waited.
		ix.mu.RLock()
		e, ok := ix.entries[k]
		ix.mu.RUnlock()
		if ok && time.Now().Before(e.expires) {
			return e, nil
		}

		if cached, ok := ix.loadDisk(k); ok {
			ix.store(k, cached)
			return ix.getEntry(k), nil
		}

		snap, err := ix.build(ctx, absRoot, l)
		if err != nil {
			return nil, err
		}
		ix.store(k, snap)
		ix.saveDisk(k, snap)
		return ix.getEntry(k), nil
	})
	if err != nil {
		return nil, nil, err
	}

	ent := v.(*entry)
	return ent.snapshot, ent.symbols, nil
}

func (ix *Index) getEntry(k string) *entry {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.entries[k]
}

func (ix *Index) store(k string, snap *Snapshot) {
	syms := make(lang.Set, len(snap.Symbols))
	for _, s := range snap.Symbols {
		syms[s] = struct{}{}
	}

	ix.mu.Lock()
	ix.entries[k] = &entry{
		snapshot: snap,
		symbols:  syms,
		expires:  snap.BuiltAt.Add(ix.ttl),
	}
	ix.mu.Unlock()
}

// build scans root and extracts definitions from every file of the
// language, in parallel.
func (ix *Index) build(ctx context.Context, absRoot string, l lang.Language) (*Snapshot, error) {
	start := time.Now()

	sc := scanner.New(ix.cfg)
	files, err := sc.ScanDirForLanguage(absRoot, l)
	if err != nil {
		return nil, err
	}
	files, skipped := scanner.FilterBySize(files, ix.cfg.Index.MaxFileSize)

	results, procErrs := fileproc.ForEachFileWithContext(ctx, files, func(path string) ([]string, error) {
		return ix.extractFile(path, l)
	})
	if procErrs != nil {
		for _, pe := range procErrs.Errors {
			if errors.Is(pe.Err, context.Canceled) || errors.Is(pe.Err, context.DeadlineExceeded) {
				return nil, pe.Err
			}
		}
		ix.logger.Debug("index scan skipped unreadable files",
			zap.Int("count", len(procErrs.Errors)))
	}

	seen := make(lang.Set)
	for _, syms := range results {
		for _, s := range syms {
			seen[s] = struct{}{}
		}
	}

	symbols := seen.Names()

	snap := &Snapshot{
		Root:     absRoot,
		Lang:     l,
		Symbols:  symbols,
		Files:    len(files),
		Skipped:  skipped,
		BuiltAt:  time.Now(),
		Duration: time.Since(start),
	}

	ix.logger.Info("symbol index built",
		zap.String("root", absRoot),
		zap.String("lang", string(l)),
		zap.Int("files", snap.Files),
		zap.Int("symbols", len(symbols)),
		zap.Duration("took", snap.Duration))

	return snap, nil
}

func (ix *Index) extractFile(path string, l lang.Language) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	h := xxhash.Sum64(data)
	if syms, ok := ix.memo.get(h); ok {
		return syms, nil
	}

	defs := extractor.New(l).Definitions(string(data))
	syms := make([]string, 0, len(defs))
	for s := range defs {
		syms = append(syms, s)
	}

	ix.memo.put(h, syms)
	return syms, nil
}

// Invalidate drops the cached snapshot for root, forcing the next
// lookup to rescan. Invalidates all languages for that root.
func (ix *Index) Invalidate(root string) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return
	}

	ix.mu.Lock()
	for _, l := range lang.All() {
		delete(ix.entries, key(absRoot, l))
	}
	ix.mu.Unlock()

	if ix.disk != nil {
		for _, l := range lang.All() {
			_ = ix.disk.Invalidate(key(absRoot, l))
		}
	}
}

// EntryInfo describes one cached snapshot for diagnostics.
type EntryInfo struct {
	Root    string        `json:"root"`
	Lang    lang.Language `json:"lang"`
	Symbols int           `json:"symbols"`
	Files   int           `json:"files"`
	Age     time.Duration `json:"age"`
	Fresh   bool          `json:"fresh"`
}

// Entries lists the cached snapshots, oldest first.
func (ix *Index) Entries() []EntryInfo {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	now := time.Now()
	infos := make([]EntryInfo, 0, len(ix.entries))
	for _, e := range ix.entries {
		infos = append(infos, EntryInfo{
			Root:    e.snapshot.Root,
			Lang:    e.snapshot.Lang,
			Symbols: len(e.snapshot.Symbols),
			Files:   e.snapshot.Files,
			Age:     now.Sub(e.snapshot.BuiltAt),
			Fresh:   now.Before(e.expires),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Age > infos[j].Age })
	return infos
}

func (ix *Index) loadDisk(k string) (*Snapshot, bool) {
	if ix.disk == nil {
		return nil, false
	}
	data, ok := ix.disk.Get(k)
	if !ok {
		return nil, false
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false
	}
	if time.Since(snap.BuiltAt) > ix.ttl {
		return nil, false
	}
	return &snap, true
}

func (ix *Index) saveDisk(k string, snap *Snapshot) {
	if ix.disk == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := ix.disk.Set(k, data); err != nil {
		ix.logger.Debug("index snapshot not persisted", zap.Error(err))
	}
}
