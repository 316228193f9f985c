package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"mirage/internal/mcpserver"
	"mirage/pkg/lang"
)

func mcpCmd() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Start MCP (Model Context Protocol) server for LLM tool integration",
		Description: `Starts an MCP server over stdio transport that exposes symbol
validation as tools coding agents can invoke before applying generated
code.

To use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "mirage": {
        "command": "mirage",
        "args": ["mcp"]
      }
    }
  }

Available tools:
  - validate_symbols   Check a unit of code for hallucinated calls
  - scan_symbols       Deep scan of files with did-you-mean suggestions
  - project_symbols    Inspect the project symbol index
  - symbol_mode        Read or set the validation mode
  - mode_for_file      Resolve advisory modes for a file batch
  - symbol_feedback    Register session symbols and whitelist entries`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "root",
				Usage: "Project root to validate against (default: working directory)",
			},
			&cli.BoolFlag{
				Name:  "manifest",
				Usage: "Print the server manifest (server.json) and exit",
			},
		},
		Action: runMCPCmd,
	}
}

func runMCPCmd(c *cli.Context) error {
	if c.Bool("manifest") {
		data, err := mcpserver.GenerateManifest(version)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(c)
	lang.ConfigurePHPVocab(lang.NewPHPVocab(cfg.Vocab.PHPBuiltins, logger))

	root := c.String("root")
	if root == "" {
		root, err = os.Getwd()
		if err != nil {
			return err
		}
	}

	server := mcpserver.NewServer(version, root, cfg, logger)
	return server.Run(c.Context)
}
