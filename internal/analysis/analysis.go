// Package analysis implements the analysis façade (spec §4.5): orchestrate
// host parsing, decision finding, extraction and tree checking across the
// files and functions of an input set, and aggregate the results into the
// schema of spec §3 / §6.
//
// Each file is analyzed with its own decisions' worth of bdd.Diagram
// instances; nothing is shared across files, so AnalyzeFiles fans out over
// a bounded worker pool (spec §5: "each analysis owns a fresh BDD engine
// ... shares nothing mutable").
package analysis

import (
	"context"
	"errors"
	"io/fs"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/comar2012/mcdctree/internal/boolexpr"
	"github.com/comar2012/mcdctree/internal/decision"
	"github.com/comar2012/mcdctree/internal/extract"
	"github.com/comar2012/mcdctree/internal/hostsyntax"
	"github.com/comar2012/mcdctree/internal/mcdcerrors"
	"github.com/comar2012/mcdctree/internal/treecheck"
)

// DecisionAnalysis is one classified decision (spec §3).
type DecisionAnalysis struct {
	ConditionCount int
	NodeCount      int
	Classification treecheck.Classification
	OriginalOrder  []string
	SuggestedOrder []string
}

// FunctionAnalysis is one function or initializer and its decisions (spec
// §3). OverallClassification is the worst classification among Decisions,
// or Tree if the function has none.
type FunctionAnalysis struct {
	Name                   string
	Line                   int
	Decisions              []DecisionAnalysis
	OverallClassification  treecheck.Classification
}

// FileAnalysis is one source file's analysis (spec §6 Outbound).
type FileAnalysis struct {
	Path      string
	Functions []FunctionAnalysis
	Err       error // set on a fatal ErrIO/ErrParse for this file only, or to ctx.Err() when the file was skipped on cancellation
}

// Config bundles the knobs AnalyzeFiles/AnalyzeFile need (spec §6 CLI
// contract, §4.4 reorder bound).
type Config struct {
	// MaxReorderVariables bounds the tree checker's permutation search
	// (spec §4.4). Zero means DefaultMaxReorderVariables.
	MaxReorderVariables int
	// Workers bounds AnalyzeFiles' concurrency. AnalyzeFiles treats zero
	// or negative as 1.
	Workers int
	// Logger receives the cancellation-skip log entries of spec §4.5/§5.
	// Nil means logrus.StandardLogger(), following dolthub's
	// auth.AuditLog default-logger convention.
	Logger *logrus.Logger
}

func (c Config) maxReorderVariables() int {
	if c.MaxReorderVariables <= 0 {
		return treecheck.DefaultMaxReorderVariables
	}
	return c.MaxReorderVariables
}

func (c Config) logger() *logrus.Logger {
	if c.Logger == nil {
		return logrus.StandardLogger()
	}
	return c.Logger
}

// AnalyzeFile runs the façade algorithm of spec §4.5 over a single parsed
// file: for each function, find decisions, extract each into a BoolExpr,
// classify it, and aggregate.
func AnalyzeFile(ctx context.Context, file hostsyntax.File, cfg Config) FileAnalysis {
	result := FileAnalysis{Path: file.Path()}
	for _, fn := range file.Functions() {
		if ctx.Err() != nil {
			cfg.logger().WithFields(logrus.Fields{
				"file": file.Path(),
				"err":  ctx.Err(),
			}).Warn("context canceled, skipping remaining functions")
			break
		}
		body := fn.Body()
		if body == nil {
			// a declaration without a body (e.g. a protocol requirement)
			// produces no entry (spec §4.5).
			continue
		}
		result.Functions = append(result.Functions, analyzeFunction(fn, body, cfg))
	}
	return result
}

func analyzeFunction(fn hostsyntax.Function, body []hostsyntax.Node, cfg Config) FunctionAnalysis {
	fa := FunctionAnalysis{Name: fn.Name(), Line: fn.Line(), OverallClassification: treecheck.Tree}
	for _, found := range decision.Find(body) {
		expr := extract.Expr(found.Root)
		da := classifyDecision(expr, cfg)
		fa.Decisions = append(fa.Decisions, da)
		if da.Classification.Worse(fa.OverallClassification) {
			fa.OverallClassification = da.Classification
		}
	}
	return fa
}

func classifyDecision(expr boolexpr.Expr, cfg Config) DecisionAnalysis {
	order := boolexpr.CollectVariableOrder(expr)
	res := treecheck.Classify(expr, order, cfg.maxReorderVariables())
	return DecisionAnalysis{
		ConditionCount: res.ConditionCount,
		NodeCount:      res.NodeCount,
		Classification: res.Classification,
		OriginalOrder:  res.OriginalOrder,
		SuggestedOrder: res.SuggestedOrder,
	}
}

// Source is one input the façade must parse before analyzing: a path and
// a function that parses it into a hostsyntax.File (normally
// cparse.ParseFile, injected so analysis stays independent of any one host
// grammar).
type Source struct {
	Path  string
	Parse func(path string) (hostsyntax.File, error)
}

// AnalyzeFiles fans out over sources with a bounded worker pool (spec §5:
// the façade MAY analyze different files in parallel since each analysis
// shares nothing mutable). Results are returned in input order regardless
// of completion order. A context cancellation stops launching new work and
// surfaces as a logged skip, never a panic (spec §5, §7); a file already in
// flight stops before its next function and keeps the functions analyzed
// so far.
func AnalyzeFiles(ctx context.Context, sources []Source, cfg Config) []FileAnalysis {
	results := make([]FileAnalysis, len(sources))
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(sources) {
		workers = len(sources)
	}
	if workers == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = analyzeSource(ctx, sources[i], cfg)
			}
		}()
	}
	for i := range sources {
		select {
		case <-ctx.Done():
			cfg.logger().WithFields(logrus.Fields{
				"file": sources[i].Path,
				"err":  ctx.Err(),
			}).Warn("context canceled, skipping file")
			results[i] = FileAnalysis{Path: sources[i].Path, Err: ctx.Err()}
			continue
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	return results
}

func analyzeSource(ctx context.Context, src Source, cfg Config) FileAnalysis {
	if ctx.Err() != nil {
		cfg.logger().WithFields(logrus.Fields{
			"file": src.Path,
			"err":  ctx.Err(),
		}).Warn("context canceled, skipping file")
		return FileAnalysis{Path: src.Path, Err: ctx.Err()}
	}
	file, err := src.Parse(src.Path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return FileAnalysis{Path: src.Path, Err: mcdcerrors.ErrIO.Wrap(err, src.Path, err.Error())}
		}
		return FileAnalysis{Path: src.Path, Err: mcdcerrors.ErrParse.Wrap(err, src.Path, err.Error())}
	}
	return AnalyzeFile(ctx, file, cfg)
}
