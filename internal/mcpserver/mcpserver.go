// Package mcpserver exposes symbol validation over the Model Context
// Protocol so coding agents can check generated code before applying it.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"mirage/pkg/config"
	"mirage/pkg/index"
	"mirage/pkg/validator"
)

// Server wraps the MCP server and registers all mirage tools.
type Server struct {
	server    *mcp.Server
	validator *validator.Validator
	index     *index.Index
	cfg       *config.Config
	root      string
}

// NewServer creates a new MCP server with all mirage tools registered.
// The validator and index live for the lifetime of the server, so
// session symbols and mode changes persist across tool calls.
func NewServer(version, root string, cfg *config.Config, logger *zap.Logger) *Server {
	if version == "" {
		version = "dev"
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "mirage",
			Version: version,
		},
		nil,
	)

	ix := index.New(cfg, index.WithLogger(logger))
	v := validator.New(root, cfg,
		validator.WithIndex(ix),
		validator.WithLogger(logger),
	)

	s := &Server{
		server:    server,
		validator: v,
		index:     ix,
		cfg:       cfg,
		root:      root,
	}
	s.registerTools()
	s.registerPrompts()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// registerTools adds all mirage validation tools to the server.
func (s *Server) registerTools() {
	// Validate a unit of code before it is applied
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_symbols",
		Description: describeValidate(),
	}, s.handleValidateSymbols)

	// Deep scan of files on disk
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "scan_symbols",
		Description: describeScan(),
	}, s.handleScanSymbols)

	// Project symbol index inspection
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "project_symbols",
		Description: describeProjectSymbols(),
	}, s.handleProjectSymbols)

	// Mode get/set
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "symbol_mode",
		Description: describeMode(),
	}, s.handleSymbolMode)

	// Per-file advisory mode resolution
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "mode_for_file",
		Description: describeModeForFile(),
	}, s.handleModeForFile)

	// Session symbol registration and whitelist feedback
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "symbol_feedback",
		Description: describeFeedback(),
	}, s.handleSymbolFeedback)
}
