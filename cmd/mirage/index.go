package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"mirage/internal/output"
	"mirage/internal/progress"
	"mirage/internal/scanner"
	"mirage/pkg/index"
	"mirage/pkg/lang"
)

func indexCmd() *cli.Command {
	return &cli.Command{
		Name:      "index",
		Usage:     "Build and inspect the project symbol index",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "Only index one language (php, javascript, typescript, python, csharp, go, rust)",
			},
			&cli.IntFlag{
				Name:  "sample",
				Value: 20,
				Usage: "Symbol names to show per language",
			},
		},
		Action: runIndexCmd,
	}
}

func runIndexCmd(c *cli.Context) error {
	root := "."
	if c.Args().Len() > 0 {
		root = c.Args().First()
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", root, err)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	logger := newLogger(c)

	languages := lang.All()
	if langFlag := c.String("lang"); langFlag != "" {
		l, ok := lang.Parse(langFlag)
		if !ok {
			return fmt.Errorf("unsupported language %q", langFlag)
		}
		languages = []lang.Language{l}
	} else {
		// Only index languages that actually appear in the tree.
		sc := scanner.New(cfg)
		files, err := sc.ScanDir(absRoot)
		if err != nil {
			return err
		}
		groups := scanner.GroupByLanguage(files)
		languages = languages[:0]
		for l := range groups {
			languages = append(languages, l)
		}
		sort.Slice(languages, func(i, j int) bool { return languages[i] < languages[j] })
	}

	if len(languages) == 0 {
		color.Yellow("No source files found")
		return nil
	}

	ix := index.New(cfg, index.WithLogger(logger))
	sample := c.Int("sample")

	var rows [][]string
	var snaps []*index.Snapshot
	for _, l := range languages {
		spin := progress.NewSpinner(fmt.Sprintf("Indexing %s...", l))
		snap, err := ix.Snapshot(c.Context, absRoot, l)
		if err != nil {
			spin.Fail(err)
			return fmt.Errorf("indexing %s failed: %w", l, err)
		}
		spin.Done()
		snaps = append(snaps, snap)

		names := snap.Symbols
		if len(names) > sample {
			names = names[:sample]
		}
		preview := ""
		for i, n := range names {
			if i > 0 {
				preview += ", "
			}
			preview += n
		}

		rows = append(rows, []string{
			string(l),
			fmt.Sprintf("%d", snap.Files),
			fmt.Sprintf("%d", len(snap.Symbols)),
			snap.Duration.Round(1e6).String(),
			truncate(preview, 60),
		})
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), !c.Bool("no-color"))
	if err != nil {
		return err
	}
	defer formatter.Close()

	table := output.NewTable(
		"Project Symbol Index",
		[]string{"Language", "Files", "Symbols", "Scan Time", "Sample"},
		rows,
		nil,
		snaps,
	)
	return formatter.Output(table)
}
