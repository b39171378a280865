// Command mcdctree is the CLI collaborator of spec §6: it takes file or
// directory paths, analyzes every source file of the host language found
// under them, and reports each decision's tree classification, following
// kanso's cmd/kanso-cli/main.go argument-handling shape.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/comar2012/mcdctree/internal/analysis"
	"github.com/comar2012/mcdctree/internal/cparse"
	"github.com/comar2012/mcdctree/internal/report"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("mcdctree", flag.ContinueOnError)
	jsonOutput := fs.Bool("json", false, "emit structured JSON instead of text")
	summaryOnly := fs.Bool("summary", false, "print only the aggregate summary, not per-decision detail")
	maxReorderVars := fs.Int("max-reorder-vars", 5, "upper bound on decision arity attempted by the reorder search")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	paths := fs.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: mcdctree [--json] [--summary] [--max-reorder-vars N] <file-or-dir>...")
		return 2
	}

	sources, err := collectSources(paths)
	if err != nil {
		color.Red("mcdctree: %s", err)
		return 1
	}

	cfg := report.Config{
		JSON:                *jsonOutput,
		SummaryOnly:         *summaryOnly,
		MaxReorderVariables: *maxReorderVars,
	}
	results := analysis.AnalyzeFiles(context.Background(), sources, cfg.AnalysisConfig())
	mf := report.Build(results)

	if err := report.Write(os.Stdout, mf, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "mcdctree: failed to write report:", err)
		return 1
	}
	return 0
}

// collectSources expands paths into analysis.Source entries, scanning
// directories recursively for *.c-family files (spec §6 CLI contract).
func collectSources(paths []string) ([]analysis.Source, error) {
	var sources []analysis.Source
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if !info.IsDir() {
			sources = append(sources, analysis.Source{Path: p, Parse: cparse.ParseFile})
			continue
		}
		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isSourceFile(path) {
				return nil
			}
			sources = append(sources, analysis.Source{Path: path, Parse: cparse.ParseFile})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", p, err)
		}
	}
	return sources, nil
}

func isSourceFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".c", ".h", ".cc", ".cpp", ".cxx", ".hpp":
		return true
	default:
		return false
	}
}
