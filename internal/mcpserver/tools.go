package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	toon "github.com/toon-format/toon-go"

	"mirage/internal/scanner"
	"mirage/pkg/config"
	"mirage/pkg/lang"
	"mirage/pkg/validator"
)

// Tool input structures

// ValidateInput carries one unit of code to check before it is applied.
type ValidateInput struct {
	Code         string   `json:"code" jsonschema:"Source code to validate."`
	FilePath     string   `json:"file_path" jsonschema:"Target file path. Determines the language by extension."`
	KnownSymbols []string `json:"known_symbols,omitempty" jsonschema:"Symbols known to exist beyond the project index (e.g. from earlier edits)."`
	UseIndex     bool     `json:"use_index,omitempty" jsonschema:"Resolve against the project symbol index in addition to known_symbols."`
	Format       string   `json:"format,omitempty" jsonschema:"Output format: toon (default), json, or markdown."`
}

// ScanInput selects files for a deep scan.
type ScanInput struct {
	Paths  []string `json:"paths,omitempty" jsonschema:"Files or directories to scan. Defaults to the project root."`
	Format string   `json:"format,omitempty" jsonschema:"Output format: toon (default), json, or markdown."`
}

// ProjectSymbolsInput selects a language for index inspection.
type ProjectSymbolsInput struct {
	Language string `json:"language" jsonschema:"Language to inspect: php, javascript, typescript, python, csharp, go, or rust."`
	Refresh  bool   `json:"refresh,omitempty" jsonschema:"Invalidate the cached snapshot and rescan."`
	Sample   int    `json:"sample,omitempty" jsonschema:"Number of symbol names to include. Default 50."`
	Format   string `json:"format,omitempty" jsonschema:"Output format: toon (default), json, or markdown."`
}

// ModeInput sets or reads the validation mode.
type ModeInput struct {
	Mode string `json:"mode,omitempty" jsonschema:"New mode: off, warn, strict, or adaptive. Empty reads the current mode."`
}

// ModeForFileInput resolves advisory modes for a batch of files.
type ModeForFileInput struct {
	Files  []string `json:"files" jsonschema:"File paths to resolve modes for."`
	Format string   `json:"format,omitempty" jsonschema:"Output format: toon (default), json, or markdown."`
}

// FeedbackInput registers session symbols or whitelists false positives.
type FeedbackInput struct {
	SessionSymbols []string `json:"session_symbols,omitempty" jsonschema:"Names defined during this session. Never flagged afterwards."`
	Whitelist      []string `json:"whitelist,omitempty" jsonschema:"False positives to suppress permanently for this session."`
}

// Helper functions

func formatOutput(data any, format string) (string, error) {
	if format == "json" {
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	out, err := toon.Marshal(data, toon.WithIndent(2))
	if err != nil {
		return "", err
	}
	if format == "markdown" || format == "md" {
		return "```\n" + string(out) + "\n```", nil
	}
	return string(out), nil
}

func toolResult(data any, format string) (*mcp.CallToolResult, any, error) {
	text, err := formatOutput(data, format)
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}

func toolText(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}, nil, nil
}

func toolError(msg string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + msg},
		},
		IsError: true,
	}, nil, nil
}

// Tool handlers

func (s *Server) handleValidateSymbols(ctx context.Context, req *mcp.CallToolRequest, input ValidateInput) (*mcp.CallToolResult, any, error) {
	if input.Code == "" {
		return toolError("code is required")
	}
	if input.FilePath == "" {
		return toolError("file_path is required")
	}

	known := make(lang.Set, len(input.KnownSymbols))
	for _, n := range input.KnownSymbols {
		known[n] = struct{}{}
	}

	if input.UseIndex {
		if l, ok := lang.Detect(input.FilePath); ok {
			defs, err := s.index.Definitions(ctx, s.root, l)
			if err != nil {
				return toolError(err.Error())
			}
			for n := range defs {
				known[n] = struct{}{}
			}
		}
	}

	result := s.validator.Validate(input.Code, input.FilePath, known)

	out := struct {
		Issues      []validator.Issue `json:"issues" toon:"issues"`
		Confidence  float64           `json:"confidence" toon:"confidence"`
		ShouldBlock bool              `json:"should_block" toon:"should_block"`
		Report      string            `json:"report" toon:"report"`
	}{
		Issues:      result.Issues,
		Confidence:  result.Confidence,
		ShouldBlock: result.ShouldBlock,
		Report:      validator.FormatReport(result.Issues, s.validator.Mode()),
	}
	return toolResult(out, input.Format)
}

func (s *Server) handleScanSymbols(ctx context.Context, req *mcp.CallToolRequest, input ScanInput) (*mcp.CallToolResult, any, error) {
	paths := input.Paths
	if len(paths) == 0 {
		paths = []string{s.root}
	}

	files, err := expandPaths(paths, s.cfg)
	if err != nil {
		return toolError(err.Error())
	}
	if len(files) == 0 {
		return toolError("no source files found")
	}

	issues, err := s.validator.ScanFiles(ctx, files)
	if err != nil {
		return toolError(err.Error())
	}

	out := struct {
		Files  int               `json:"files" toon:"files"`
		Issues []validator.Issue `json:"issues" toon:"issues"`
		Report string            `json:"report" toon:"report"`
	}{
		Files:  len(files),
		Issues: issues,
		Report: validator.FormatReport(issues, s.validator.Mode()),
	}
	return toolResult(out, input.Format)
}

func (s *Server) handleProjectSymbols(ctx context.Context, req *mcp.CallToolRequest, input ProjectSymbolsInput) (*mcp.CallToolResult, any, error) {
	l, ok := lang.Parse(input.Language)
	if !ok {
		return toolError(fmt.Sprintf("unsupported language %q", input.Language))
	}

	if input.Refresh {
		s.index.Invalidate(s.root)
	}

	snap, err := s.index.Snapshot(ctx, s.root, l)
	if err != nil {
		return toolError(err.Error())
	}

	sample := input.Sample
	if sample <= 0 {
		sample = 50
	}
	names := snap.Symbols
	if len(names) > sample {
		names = names[:sample]
	}

	out := struct {
		Language string   `json:"language" toon:"language"`
		Files    int      `json:"files" toon:"files"`
		Total    int      `json:"total_symbols" toon:"total_symbols"`
		Symbols  []string `json:"symbols" toon:"symbols"`
	}{
		Language: string(l),
		Files:    snap.Files,
		Total:    len(snap.Symbols),
		Symbols:  names,
	}
	return toolResult(out, input.Format)
}

func (s *Server) handleSymbolMode(ctx context.Context, req *mcp.CallToolRequest, input ModeInput) (*mcp.CallToolResult, any, error) {
	if input.Mode == "" {
		return toolText(fmt.Sprintf("Current mode: %s", s.validator.Mode()))
	}

	mode, err := validator.ParseMode(input.Mode)
	if err != nil {
		return toolError(err.Error())
	}

	s.validator.SetMode(mode)
	return toolText(fmt.Sprintf("Mode set to %s", mode))
}

func (s *Server) handleModeForFile(ctx context.Context, req *mcp.CallToolRequest, input ModeForFileInput) (*mcp.CallToolResult, any, error) {
	if len(input.Files) == 0 {
		return toolError("files is required")
	}

	strictFiles := s.cfg.Validation.StrictFiles
	ignoreFiles := s.cfg.Validation.IgnoreFiles

	type fileMode struct {
		File string `json:"file" toon:"file"`
		Mode string `json:"mode" toon:"mode"`
	}
	modes := make([]fileMode, len(input.Files))
	for i, f := range input.Files {
		modes[i] = fileMode{File: f, Mode: string(validator.ModeForFile(f, strictFiles, ignoreFiles))}
	}

	effective := validator.EffectiveMode(input.Files, s.validator.Mode(), strictFiles, ignoreFiles)

	out := struct {
		Files     []fileMode `json:"files" toon:"files"`
		Effective string     `json:"effective_mode" toon:"effective_mode"`
	}{modes, string(effective)}
	return toolResult(out, input.Format)
}

func (s *Server) handleSymbolFeedback(ctx context.Context, req *mcp.CallToolRequest, input FeedbackInput) (*mcp.CallToolResult, any, error) {
	if len(input.SessionSymbols) == 0 && len(input.Whitelist) == 0 {
		return toolError("nothing to register")
	}

	s.validator.AddSessionSymbols(input.SessionSymbols...)
	s.validator.AddWhitelist(input.Whitelist...)

	return toolText(fmt.Sprintf("Registered %d session symbols, %d whitelist entries",
		len(input.SessionSymbols), len(input.Whitelist)))
}

// expandPaths turns a mix of files and directories into a flat file
// list, filtered to supported languages.
func expandPaths(paths []string, cfg *config.Config) ([]string, error) {
	var files []string
	sc := scanner.New(cfg)

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if info.IsDir() {
			found, err := sc.ScanDir(p)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}
		if _, ok := lang.Detect(p); ok {
			files = append(files, p)
		}
	}
	return files, nil
}
