package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"mirage/internal/output"
	"mirage/pkg/lang"
	"mirage/pkg/validator"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "Validate code for hallucinated symbols",
		ArgsUsage: "<file>",
		Description: `Validates one file (or code piped on stdin with --path for language
detection) against builtins, local definitions, and the project symbol
index. Exits 1 when the result blocks under strict mode.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "Virtual file path for stdin input (determines language)",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Validation mode override: off, warn, strict, adaptive",
			},
			&cli.StringSliceFlag{
				Name:  "known",
				Usage: "Additional known symbols, repeatable",
			},
			&cli.BoolFlag{
				Name:  "no-index",
				Usage: "Skip the project symbol index, resolve against builtins and local definitions only",
			},
		},
		Action: runValidateCmd,
	}
}

func runValidateCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(c)
	lang.ConfigurePHPVocab(lang.NewPHPVocab(cfg.Vocab.PHPBuiltins, logger))

	code, filePath, root, err := readValidateInput(c)
	if err != nil {
		return err
	}

	opts := []validator.Option{validator.WithLogger(logger)}
	if modeFlag := c.String("mode"); modeFlag != "" {
		mode, err := validator.ParseMode(modeFlag)
		if err != nil {
			return err
		}
		opts = append(opts, validator.WithMode(mode))
	}
	v := validator.New(root, cfg, opts...)

	known := make(lang.Set)
	for _, n := range c.StringSlice("known") {
		known[n] = struct{}{}
	}
	if !c.Bool("no-index") {
		if l, ok := lang.Detect(filePath); ok {
			defs, err := v.Index().Definitions(c.Context, root, l)
			if err != nil {
				return err
			}
			for n := range defs {
				known[n] = struct{}{}
			}
		}
	}

	result := v.Validate(code, filePath, known)

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), !c.Bool("no-color"))
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() == output.FormatJSON {
		if err := formatter.Output(result); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(formatter.Writer(), validator.FormatReport(result.Issues, v.Mode()))
	}

	if result.ShouldBlock {
		color.Red("Validation blocked: too many high-confidence issues in strict mode")
		return cli.Exit("", 1)
	}
	return nil
}

// readValidateInput resolves the code, its (virtual) path, and the
// project root from args or stdin.
func readValidateInput(c *cli.Context) (code, filePath, root string, err error) {
	if c.Args().Len() > 0 {
		filePath = c.Args().First()
		data, err := os.ReadFile(filePath)
		if err != nil {
			return "", "", "", fmt.Errorf("cannot read %s: %w", filePath, err)
		}
		root, err = os.Getwd()
		if err != nil {
			return "", "", "", err
		}
		return string(data), filePath, root, nil
	}

	filePath = c.String("path")
	if filePath == "" {
		return "", "", "", fmt.Errorf("reading from stdin requires --path for language detection")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", "", err
	}
	root, err = os.Getwd()
	if err != nil {
		return "", "", "", err
	}
	return string(data), filePath, root, nil
}
