package mcpserver

// Tool descriptions with interpretation guidance for LLMs.
// Each description explains what the tool does, when to use it,
// how to interpret results, and key thresholds.

func describeValidate() string {
	return `Checks a unit of source code for hallucinated symbols: calls to functions, methods, or constructors that exist nowhere in the codebase, the language's standard vocabulary, or the current session.

USE WHEN:
- Validating generated or edited code before writing it to a file
- Catching made-up API calls during an editing session
- Double-checking refactors that rename functions

INTERPRETING RESULTS:
- Confidence 0.1-1.0: higher means more likely a genuine hallucination
- Confidence > 0.8: HIGH severity, likely fabricated
- Confidence > 0.5: MEDIUM severity, review recommended
- Confidence <= 0.5: LOW severity, often an external library call
- should_block is true only in strict mode with 5+ issues above 0.9
- Common external names (execute, findById, save, ...) pass automatically
- Files using eval/reflection get halved confidence across the board

RESULTS RETURNED:
- Issues: name, line, confidence, context line, reason
- Confidence: maximum across all issues
- Report: human-readable summary grouped by severity

Supported languages by extension: PHP, JavaScript, TypeScript, Python, C#, Go, Rust. Other extensions return zero issues.`
}

func describeScan() string {
	return `Deep-scans files on disk for unresolved symbol references, resolving against the full project symbol index and attaching did-you-mean suggestions.

USE WHEN:
- Running a quality review over a directory or changed file set
- Hunting for typos in symbol names after a large refactor
- Auditing a codebase for references to removed functions

INTERPRETING RESULTS:
- Same confidence scale as validate_symbols
- Suggestions list near-miss names from the project (similarity >= 0.6)
- "Possibly misspelled" reasons are the most actionable findings
- Common external names reduce confidence here instead of passing

RESULTS RETURNED:
- Files: number of files scanned
- Issues: per-file findings with suggestions
- Report: severity-grouped summary

Directories are walked recursively, honoring gitignore and skipping dependency/build directories.`
}

func describeProjectSymbols() string {
	return `Inspects the project symbol index for one language: every function, class, and method name defined anywhere in the tree.

USE WHEN:
- Checking what symbols the validator resolves against
- Verifying the index picked up newly added definitions
- Debugging why a name was (or was not) flagged

RESULTS RETURNED:
- Total symbol and file counts
- A sample of symbol names (default 50)

The index is cached for 5 minutes; pass refresh=true to force a rescan.`
}

func describeMode() string {
	return `Reads or sets the validation mode governing whether issues can block.

MODES:
- off: validation disabled, always empty results
- warn (default): issues reported, never blocks
- strict: blocks when 5+ issues exceed 0.9 confidence
- adaptive: currently identical to warn

Mode changes are explicit; nothing auto-escalates to strict.`
}

func describeModeForFile() string {
	return `Resolves the advisory validation mode for each file in a batch, plus the effective mode for the batch as a whole.

RULES:
- Files listed in strict_files config resolve to strict
- Files listed in ignore_files config resolve to off
- Test, config, migration, and seed paths resolve to warn
- Everything else defaults to warn
- The batch is strict only if every file resolves to strict`
}

func describeFeedback() string {
	return `Registers session symbols and whitelists false positives for the lifetime of this server.

USE WHEN:
- You just defined a function the index has not seen yet (session_symbols)
- The validator flagged a legitimate external call (whitelist)

Registered names are never flagged by later validate_symbols or scan_symbols calls.`
}
