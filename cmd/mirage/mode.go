package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"mirage/internal/output"
	"mirage/pkg/validator"
)

func modeCmd() *cli.Command {
	return &cli.Command{
		Name:      "mode",
		Usage:     "Show the advisory validation mode for files",
		ArgsUsage: "[file...]",
		Description: `Without arguments, prints the configured default mode. With file
arguments, resolves the advisory mode for each file (user overrides,
then test/config path heuristics) and the effective mode for the batch.`,
		Action: runModeCmd,
	}
}

func runModeCmd(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	userMode, err := validator.ParseMode(cfg.Validation.Mode)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), !c.Bool("no-color"))
	if err != nil {
		return err
	}
	defer formatter.Close()

	if c.Args().Len() == 0 {
		formatter.Info("Configured mode: %s", userMode)
		return nil
	}

	files := c.Args().Slice()
	strictFiles := cfg.Validation.StrictFiles
	ignoreFiles := cfg.Validation.IgnoreFiles

	var rows [][]string
	for _, f := range files {
		m := validator.ModeForFile(f, strictFiles, ignoreFiles)
		rows = append(rows, []string{f, string(m)})
	}

	effective := validator.EffectiveMode(files, userMode, strictFiles, ignoreFiles)

	table := output.NewTable(
		"Validation Modes",
		[]string{"File", "Mode"},
		rows,
		[]string{fmt.Sprintf("Effective: %s", effective), ""},
		map[string]any{"files": rows, "effective_mode": string(effective)},
	)
	return formatter.Output(table)
}
