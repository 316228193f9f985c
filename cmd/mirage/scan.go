package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"mirage/internal/output"
	"mirage/internal/progress"
	"mirage/pkg/lang"
	"mirage/pkg/validator"
)

func scanCmd() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "Scan files for unresolved symbol references",
		ArgsUsage: "[path...]",
		Description: `Deep scan: resolves every call site against the project symbol index
and attaches did-you-mean suggestions to unresolved names.`,
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:  "min-confidence",
				Usage: "Only report issues at or above this confidence",
			},
			&cli.StringSliceFlag{
				Name:  "whitelist",
				Usage: "Symbols to never flag, repeatable",
			},
		},
		Action: runScanCmd,
	}
}

func runScanCmd(c *cli.Context) error {
	paths := getPaths(c)

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(c)
	lang.ConfigurePHPVocab(lang.NewPHPVocab(cfg.Vocab.PHPBuiltins, logger))

	files, err := collectFiles(paths, cfg)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No source files found")
		return nil
	}

	root := paths[0]
	v := validator.New(root, cfg,
		validator.WithLogger(logger),
		validator.WithWhitelist(c.StringSlice("whitelist")...),
	)

	tracker := progress.NewTracker("Scanning symbols...", len(files))
	issues, err := v.ScanFilesWithProgress(c.Context, files, tracker.Tick)
	if err != nil {
		tracker.Fail(err)
		return fmt.Errorf("scan failed: %w", err)
	}
	tracker.Done()

	if min := c.Float64("min-confidence"); min > 0 {
		filtered := issues[:0]
		for _, issue := range issues {
			if issue.Confidence >= min {
				filtered = append(filtered, issue)
			}
		}
		issues = filtered
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), !c.Bool("no-color"))
	if err != nil {
		return err
	}
	defer formatter.Close()

	if len(issues) == 0 {
		formatter.Success("All symbols verified (%d files)", len(files))
		return nil
	}

	var rows [][]string
	var high, medium, low int
	for _, issue := range issues {
		sev := string(issue.Severity())
		switch issue.Severity() {
		case validator.SeverityHigh:
			high++
		case validator.SeverityMedium:
			medium++
		default:
			low++
		}
		if formatter.Colored() {
			sev = output.SeverityColor(sev, sev)
		}

		rows = append(rows, []string{
			fmt.Sprintf("%s:%d", issue.File, issue.Line),
			issue.Name,
			sev,
			fmt.Sprintf("%.0f%%", issue.Confidence*100),
			truncate(issue.Reason, 50),
		})
	}

	table := output.NewTable(
		"Unresolved Symbols",
		[]string{"Location", "Symbol", "Severity", "Confidence", "Reason"},
		rows,
		[]string{
			fmt.Sprintf("Total: %d", len(issues)),
			fmt.Sprintf("High: %d", high),
			fmt.Sprintf("Medium: %d", medium),
			fmt.Sprintf("Low: %d", low),
			"",
		},
		issues,
	)

	return formatter.Output(table)
}
