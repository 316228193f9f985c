package validator

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"mirage/pkg/lang"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	return New(t.TempDir(), nil)
}

func TestValidateFlagsUnknownCall(t *testing.T) {
	v := newTestValidator(t)
	code := "def known():\n    pass\n\nunknown_call()\n"

	res := v.Validate(code, "script.py", lang.Set{})
	if len(res.Issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(res.Issues), res.Issues)
	}
	issue := res.Issues[0]
	if issue.Name != "unknown_call" {
		t.Errorf("issue name = %q, want unknown_call", issue.Name)
	}
	if issue.Line != 4 {
		t.Errorf("issue line = %d, want 4", issue.Line)
	}
	if issue.Reason != "Symbol not found in codebase" {
		t.Errorf("issue reason = %q", issue.Reason)
	}
	if issue.Context != "unknown_call()" {
		t.Errorf("issue context = %q", issue.Context)
	}
	if res.Confidence != issue.Confidence {
		t.Errorf("result confidence %v != max issue confidence %v", res.Confidence, issue.Confidence)
	}
	if res.ShouldBlock {
		t.Error("warn mode must not block")
	}
}

func TestValidateSkipsBuiltins(t *testing.T) {
	v := newTestValidator(t)
	code := "<?php\nstrlen($x);\nmyCustomFunc($x);\n"

	res := v.Validate(code, "index.php", lang.Set{})
	if len(res.Issues) != 1 || res.Issues[0].Name != "myCustomFunc" {
		t.Errorf("got %+v, want only myCustomFunc", res.Issues)
	}
}

func TestValidateOffMode(t *testing.T) {
	v := newTestValidator(t)
	v.SetMode(ModeOff)

	res := v.Validate("ghost_fn()\n", "a.py", lang.Set{})
	if len(res.Issues) != 0 {
		t.Errorf("off mode returned issues: %+v", res.Issues)
	}
	if res.Confidence != 0 || res.ShouldBlock {
		t.Errorf("off mode result not empty: %+v", res)
	}
}

func TestValidateUndetectableLanguage(t *testing.T) {
	v := newTestValidator(t)
	res := v.Validate("ghost_fn()\n", "notes.txt", lang.Set{})
	if len(res.Issues) != 0 {
		t.Errorf("undetectable language returned issues: %+v", res.Issues)
	}
}

func TestValidateKnownSymbolsResolve(t *testing.T) {
	v := newTestValidator(t)
	known := lang.Set{"ghost_fn": {}}

	res := v.Validate("ghost_fn()\n", "a.py", known)
	if len(res.Issues) != 0 {
		t.Errorf("known symbol flagged: %+v", res.Issues)
	}
}

func TestValidateSessionAndWhitelist(t *testing.T) {
	v := newTestValidator(t)
	v.AddSessionSymbols("session_fn")
	v.AddWhitelist("accepted_fn")

	res := v.Validate("session_fn()\naccepted_fn()\n", "a.py", lang.Set{})
	if len(res.Issues) != 0 {
		t.Errorf("session/whitelist symbols flagged: %+v", res.Issues)
	}
}

func TestValidateSkipsCommonExternal(t *testing.T) {
	v := newTestValidator(t)
	res := v.Validate("findById(7)\n", "a.py", lang.Set{})
	if len(res.Issues) != 0 {
		t.Errorf("common external name flagged: %+v", res.Issues)
	}
}

func TestValidateDynamicCodeHalvesConfidence(t *testing.T) {
	v := newTestValidator(t)
	code := "getattr(obj, name)()\nmystery_func(x)\n"

	res := v.Validate(code, "a.py", lang.Set{})
	if len(res.Issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(res.Issues), res.Issues)
	}
	// Calculator: 1.0 - 0.25 for dynamic patterns; entry point halves.
	if got := res.Issues[0].Confidence; math.Abs(got-0.375) > 1e-9 {
		t.Errorf("confidence = %v, want 0.375", got)
	}
}

func TestValidateModeIsPerInstance(t *testing.T) {
	a := newTestValidator(t)
	b := newTestValidator(t)

	a.SetMode(ModeStrict)
	if b.Mode() != ModeWarn {
		t.Errorf("mode leaked across instances: %v", b.Mode())
	}

	c := New(t.TempDir(), nil, WithMode(ModeOff))
	if c.Mode() != ModeOff {
		t.Errorf("WithMode not applied: %v", c.Mode())
	}
}

func TestConcurrentFeedbackAndValidate(t *testing.T) {
	v := newTestValidator(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				v.AddSessionSymbols(fmt.Sprintf("helper_%d_%d", n, j))
				v.AddWhitelist(fmt.Sprintf("accepted_%d_%d", n, j))
			}
		}(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				v.Validate("mystery_call()\n", "app.py", nil)
			}
		}()
	}
	wg.Wait()

	// Symbols registered mid-flight resolve afterwards.
	res := v.Validate("helper_0_0()\n", "app.py", nil)
	if len(res.Issues) != 0 {
		t.Errorf("session symbol flagged after concurrent registration: %v", res.Issues)
	}
}

func TestSeverityBuckets(t *testing.T) {
	tests := []struct {
		conf float64
		want Severity
	}{
		{0.95, SeverityHigh},
		{0.81, SeverityHigh},
		{0.8, SeverityMedium},
		{0.51, SeverityMedium},
		{0.5, SeverityLow},
		{0.1, SeverityLow},
	}
	for _, tt := range tests {
		if got := (Issue{Confidence: tt.conf}).Severity(); got != tt.want {
			t.Errorf("Severity(%v) = %v, want %v", tt.conf, got, tt.want)
		}
	}
}

func writeProjectFile(t *testing.T, root, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestScanFileSuggestsNearMisses(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "lib.py", "def process_data(x):\n    return x\n")
	writeProjectFile(t, root, "app.py", "result = process_dta(7)\n")

	v := New(root, nil)
	issues, err := v.ScanFile(context.Background(), "app.py")
	if err != nil {
		t.Fatal(err)
	}
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1: %+v", len(issues), issues)
	}

	issue := issues[0]
	if issue.Name != "process_dta" {
		t.Errorf("issue name = %q, want process_dta", issue.Name)
	}
	if issue.File != "app.py" {
		t.Errorf("issue file = %q, want app.py", issue.File)
	}
	found := false
	for _, s := range issue.Suggestions {
		if s == "process_data" {
			found = true
		}
	}
	if !found {
		t.Errorf("suggestions %v missing process_data", issue.Suggestions)
	}
	if !strings.HasPrefix(issue.Reason, "Possibly misspelled. Similar: ") {
		t.Errorf("reason = %q", issue.Reason)
	}
	if issue.Severity() != SeverityHigh {
		t.Errorf("severity = %v (confidence %v), want HIGH", issue.Severity(), issue.Confidence)
	}
}

func TestScanFileResolvesAgainstIndex(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "lib.py", "def build_report(x):\n    return x\n")
	writeProjectFile(t, root, "app.py", "build_report(7)\n")

	v := New(root, nil)
	issues, err := v.ScanFile(context.Background(), "app.py")
	if err != nil {
		t.Fatal(err)
	}
	if len(issues) != 0 {
		t.Errorf("indexed symbol flagged: %+v", issues)
	}
}

func TestScanFileMissing(t *testing.T) {
	v := newTestValidator(t)
	issues, err := v.ScanFile(context.Background(), "does-not-exist.py")
	if err != nil || issues != nil {
		t.Errorf("missing file: issues=%v err=%v, want nil, nil", issues, err)
	}
}

func TestScanFiles(t *testing.T) {
	root := t.TempDir()
	writeProjectFile(t, root, "lib.py", "def shared_helper(x):\n    return x\n")
	writeProjectFile(t, root, "a.py", "shared_helper(1)\nphantom_one(2)\n")
	writeProjectFile(t, root, "b.py", "phantom_two(3)\n")

	v := New(root, nil)
	issues, err := v.ScanFiles(context.Background(), []string{"a.py", "b.py"})
	if err != nil {
		t.Fatal(err)
	}

	names := make(map[string]bool)
	for _, i := range issues {
		names[i.Name] = true
	}
	if !names["phantom_one"] || !names["phantom_two"] || names["shared_helper"] {
		t.Errorf("unexpected issue set: %+v", issues)
	}
}
