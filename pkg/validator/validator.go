// Package validator detects hallucinated symbol references: call sites
// that resolve to nothing in the language's builtin vocabulary, the
// local file, the session, or the project symbol index. Unresolved
// names are scored rather than hard-flagged, and blocking is gated
// behind an explicit strict mode.
package validator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"mirage/internal/fileproc"
	"mirage/pkg/config"
	"mirage/pkg/confidence"
	"mirage/pkg/extractor"
	"mirage/pkg/index"
	"mirage/pkg/lang"
	"mirage/pkg/similarity"
)

// Severity is a derived three-tier view of confidence.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
)

// Issue is one unresolved symbol reference.
type Issue struct {
	Name        string   `json:"name"`
	File        string   `json:"file"`
	Line        int      `json:"line"`
	Confidence  float64  `json:"confidence"`
	MatchType   string   `json:"match_type"`
	Context     string   `json:"context,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Reason      string   `json:"reason"`
}

// Severity buckets the confidence: HIGH above 0.8, MEDIUM above 0.5,
// LOW otherwise.
func (i Issue) Severity() Severity {
	switch {
	case i.Confidence > 0.8:
		return SeverityHigh
	case i.Confidence > 0.5:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Result is the outcome of one validation call.
type Result struct {
	Issues []Issue `json:"issues"`
	// Confidence is the maximum issue confidence, 0.0 with no issues.
	Confidence  float64 `json:"confidence"`
	ShouldBlock bool    `json:"should_block"`
}

const defaultReason = "Symbol not found in codebase"

// Validator resolves extracted call sites against the known-symbol
// universe and emits issues for the rest. Each instance carries its own
// mode; safe for concurrent use.
type Validator struct {
	root    string
	cfg     *config.Config
	logger  *zap.Logger
	calc    *confidence.Calculator
	index   *index.Index
	session lang.Set
	white   lang.Set

	mu   sync.RWMutex
	mode Mode
}

// Option configures a Validator.
type Option func(*Validator)

// WithMode sets the initial validation mode.
func WithMode(m Mode) Option {
	return func(v *Validator) { v.mode = m }
}

// WithSessionSymbols registers names defined earlier in the current
// session. Never flagged.
func WithSessionSymbols(names ...string) Option {
	return func(v *Validator) {
		for _, n := range names {
			v.session[n] = struct{}{}
		}
	}
}

// WithWhitelist registers user-accepted false positives. Never flagged.
func WithWhitelist(names ...string) Option {
	return func(v *Validator) {
		for _, n := range names {
			v.white[n] = struct{}{}
		}
	}
}

// WithIndex supplies a shared project symbol index. Without one the
// validator builds its own from the config.
func WithIndex(ix *index.Index) Option {
	return func(v *Validator) { v.index = ix }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(v *Validator) { v.logger = l }
}

// New creates a validator rooted at the project directory. A nil config
// uses defaults; the config's mode and whitelist seed the instance
// before options apply.
func New(root string, cfg *config.Config, opts ...Option) *Validator {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	mode, err := ParseMode(cfg.Validation.Mode)
	if err != nil {
		mode = ModeWarn
	}

	v := &Validator{
		root:    root,
		cfg:     cfg,
		logger:  zap.NewNop(),
		calc:    confidence.New(),
		session: make(lang.Set),
		white:   make(lang.Set),
		mode:    mode,
	}
	for _, n := range cfg.Validation.Whitelist {
		v.white[n] = struct{}{}
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.index == nil {
		v.index = index.New(cfg, index.WithLogger(v.logger))
	}
	return v
}

// SetMode changes the validation mode. Explicit only; nothing escalates
// the mode implicitly.
func (v *Validator) SetMode(m Mode) {
	v.mu.Lock()
	v.mode = m
	v.mu.Unlock()
}

// Mode returns the current validation mode.
func (v *Validator) Mode() Mode {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.mode
}

// AddSessionSymbols records names defined during the session so later
// validations resolve them.
func (v *Validator) AddSessionSymbols(names ...string) {
	v.mu.Lock()
	for _, n := range names {
		v.session[n] = struct{}{}
	}
	v.mu.Unlock()
}

// AddWhitelist records user-reported false positives.
func (v *Validator) AddWhitelist(names ...string) {
	v.mu.Lock()
	for _, n := range names {
		v.white[n] = struct{}{}
	}
	v.mu.Unlock()
}

// knownSets copies the session and whitelist sets so lookups never
// race with AddSessionSymbols/AddWhitelist on a shared instance.
func (v *Validator) knownSets() (session, white lang.Set) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	session = make(lang.Set, len(v.session))
	for n := range v.session {
		session[n] = struct{}{}
	}
	white = make(lang.Set, len(v.white))
	for n := range v.white {
		white[n] = struct{}{}
	}
	return session, white
}

// Validate checks a unit of code against known symbols. This is the
// live editing-session entry point: common external names pass
// outright, no similarity lookup is done, and confidence is halved
// when the code leans on dynamic dispatch.
//
// An undetectable language or off mode yields an empty result, never
// an error.
func (v *Validator) Validate(code, filePath string, known lang.Set) Result {
	if v.Mode() == ModeOff {
		return Result{Issues: []Issue{}}
	}

	l, ok := lang.Detect(filePath)
	if !ok {
		return Result{Issues: []Issue{}}
	}

	ext := extractor.New(l)
	calls := ext.Calls(code)
	local := ext.Definitions(code)

	hasDynamic := lang.HasDynamicPatterns(code, l)
	lines := strings.Split(code, "\n")

	session, white := v.knownSets()

	issues := make([]Issue, 0)
	for _, call := range calls {
		if lang.IsBuiltin(call.Name, l) {
			continue
		}
		if known.Has(call.Name) || local.Has(call.Name) {
			continue
		}
		if session.Has(call.Name) || white.Has(call.Name) {
			continue
		}
		if lang.IsCommonExternal(call.Name) {
			continue
		}

		conf := v.calc.Score(confidence.Input{
			Name:    call.Name,
			Lang:    l,
			Content: code,
		})
		if hasDynamic {
			// Static resolution is unreliable here; halve on top of
			// the calculator's own dynamic-pattern reduction.
			conf *= 0.5
		}

		issues = append(issues, Issue{
			Name:       call.Name,
			File:       filePath,
			Line:       call.Line,
			Confidence: conf,
			MatchType:  "call",
			Context:    contextLine(lines, call.Line),
			Reason:     defaultReason,
		})
	}

	maxConf := 0.0
	for _, issue := range issues {
		if issue.Confidence > maxConf {
			maxConf = issue.Confidence
		}
	}

	return Result{
		Issues:      issues,
		Confidence:  maxConf,
		ShouldBlock: ShouldBlock(issues, v.Mode()),
	}
}

// ScanFile validates a file on disk against the project symbol index.
// This is the whole-file quality-review entry point: common external
// names only reduce confidence, and unresolved names carry
// similarity-ranked suggestions from the index.
//
// A missing or unreadable file yields no issues, never an error.
func (v *Validator) ScanFile(ctx context.Context, path string) ([]Issue, error) {
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(v.root, path)
	}

	l, ok := lang.Detect(abs)
	if !ok {
		return nil, nil
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		v.logger.Warn("file not readable, skipping", zap.String("path", abs), zap.Error(err))
		return nil, nil
	}
	content := string(data)
	if content == "" {
		return nil, nil
	}

	defs, err := v.index.Definitions(ctx, v.root, l)
	if err != nil {
		return nil, err
	}
	defNames := make([]string, 0, len(defs))
	for name := range defs {
		defNames = append(defNames, name)
	}

	ext := extractor.New(l)
	calls := ext.Calls(content)
	local := ext.Definitions(content)
	lines := strings.Split(content, "\n")

	session, white := v.knownSets()

	display := displayPath(abs, v.root)

	var issues []Issue
	for _, call := range calls {
		if lang.IsBuiltin(call.Name, l) {
			continue
		}
		if white.Has(call.Name) || session.Has(call.Name) {
			continue
		}
		if local.Has(call.Name) || defs.Has(call.Name) {
			continue
		}

		similar := similarity.Similar(call.Name, defNames, 5)

		conf := v.calc.Score(confidence.Input{
			Name:       call.Name,
			Lang:       l,
			Content:    content,
			HasSimilar: len(similar) > 0,
		})

		reason := defaultReason
		if len(similar) > 0 {
			top := similar
			if len(top) > 3 {
				top = top[:3]
			}
			reason = "Possibly misspelled. Similar: " + strings.Join(top, ", ")
		}

		issues = append(issues, Issue{
			Name:        call.Name,
			File:        display,
			Line:        call.Line,
			Confidence:  conf,
			MatchType:   "call",
			Context:     contextLine(lines, call.Line),
			Suggestions: similar,
			Reason:      reason,
		})
	}

	return issues, nil
}

// ScanFiles validates many files in parallel and returns all issues.
// Unreadable files are skipped.
func (v *Validator) ScanFiles(ctx context.Context, paths []string) ([]Issue, error) {
	return v.ScanFilesWithProgress(ctx, paths, nil)
}

// ScanFilesWithProgress is ScanFiles with a per-file progress callback.
func (v *Validator) ScanFilesWithProgress(ctx context.Context, paths []string, onProgress fileproc.ProgressFunc) ([]Issue, error) {
	results, procErrs := fileproc.ForEachFileWithContextAndProgress(ctx, paths, func(path string) ([]Issue, error) {
		return v.ScanFile(ctx, path)
	}, onProgress)
	if procErrs != nil {
		for _, pe := range procErrs.Errors {
			v.logger.Warn("scan failed", zap.String("path", pe.Path), zap.Error(pe.Err))
		}
	}

	var issues []Issue
	for _, r := range results {
		issues = append(issues, r...)
	}
	return issues, ctx.Err()
}

// Index exposes the validator's project symbol index.
func (v *Validator) Index() *index.Index { return v.index }

func contextLine(lines []string, line int) string {
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimSpace(lines[line-1])
}

func displayPath(abs, root string) string {
	if rel, err := filepath.Rel(root, abs); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return abs
}
