// Package report implements the structured output schema of spec §6 and
// its two renderers: JSON (encoding/json) and a colored plain-text form
// via github.com/fatih/color, grounded on kanso's cmd/kanso-cli/main.go
// reportParseError coloring.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/comar2012/mcdctree/internal/analysis"
	"github.com/comar2012/mcdctree/internal/treecheck"
)

// Decision is the wire shape of spec §6's "decision".
type Decision struct {
	ConditionCount int      `json:"conditionCount"`
	NodeCount      int      `json:"nodeCount"`
	Classification string   `json:"classification"`
	OriginalOrder  []string `json:"originalOrder"`
	SuggestedOrder []string `json:"suggestedOrder"`
}

// Function is the wire shape of spec §6's "function".
type Function struct {
	Name      string     `json:"name"`
	Line      int        `json:"line"`
	Decisions []Decision `json:"decisions"`
}

// File is the wire shape of spec §6's "file".
type File struct {
	Path      string     `json:"path"`
	Functions []Function `json:"functions"`
	Error     string     `json:"error,omitempty"`
}

// NonTreeEntry is the wire shape of spec §6's "nonTreeEntry": one function
// that contributed at least one non-tree decision, surfaced in the
// summary so a reader does not have to walk every file to find the ones
// that matter.
type NonTreeEntry struct {
	File      string     `json:"file"`
	Function  string     `json:"function"`
	Line      int        `json:"line"`
	Decisions []Decision `json:"decisions"`
}

// Summary is the wire shape of spec §6's "summary".
type Summary struct {
	FilesAnalyzed           int            `json:"filesAnalyzed"`
	TotalFunctions          int            `json:"totalFunctions"`
	FunctionsWithDecisions  int            `json:"functionsWithDecisions"`
	TotalDecisions          int            `json:"totalDecisions"`
	TreeDecisions           int            `json:"treeDecisions"`
	CorrectableDecisions    int            `json:"correctableDecisions"`
	NonCorrectableDecisions int            `json:"nonCorrectableDecisions"`
	NonTreeEntries          []NonTreeEntry `json:"nonTreeEntries"`
}

// MultiFile is the wire shape of spec §6's "multi-file": the top-level
// result of analyzing an arbitrary number of input sources.
type MultiFile struct {
	Files   []File  `json:"files"`
	Summary Summary `json:"summary"`
}

// Config carries the CLI flags of spec §6 (--json, --summary,
// --max-reorder-vars) through to the façade and to this package's
// renderers, so cmd/mcdctree's main does nothing but parse flags into one
// of these and hand it off.
type Config struct {
	// JSON selects WriteJSON over WriteText.
	JSON bool
	// SummaryOnly suppresses per-decision detail in WriteText.
	SummaryOnly bool
	// MaxReorderVariables bounds the tree checker's permutation search
	// (spec §4.4). Zero means treecheck.DefaultMaxReorderVariables.
	MaxReorderVariables int
}

// AnalysisConfig projects the façade-relevant fields of Config into an
// analysis.Config.
func (c Config) AnalysisConfig() analysis.Config {
	return analysis.Config{MaxReorderVariables: c.MaxReorderVariables}
}

// Write renders mf per cfg: JSON if cfg.JSON, otherwise colored text,
// honoring cfg.SummaryOnly in the text case.
func Write(w io.Writer, mf MultiFile, cfg Config) error {
	if cfg.JSON {
		return WriteJSON(w, mf)
	}
	WriteText(w, mf, cfg.SummaryOnly)
	return nil
}

func classificationString(c treecheck.Classification) string {
	return c.String()
}

func toDecision(d analysis.DecisionAnalysis) Decision {
	return Decision{
		ConditionCount: d.ConditionCount,
		NodeCount:      d.NodeCount,
		Classification: classificationString(d.Classification),
		OriginalOrder:  d.OriginalOrder,
		SuggestedOrder: d.SuggestedOrder,
	}
}

func toFunction(f analysis.FunctionAnalysis) Function {
	decisions := make([]Decision, len(f.Decisions))
	for i, d := range f.Decisions {
		decisions[i] = toDecision(d)
	}
	return Function{Name: f.Name, Line: f.Line, Decisions: decisions}
}

func toFile(f analysis.FileAnalysis) File {
	out := File{Path: f.Path}
	if f.Err != nil {
		out.Error = f.Err.Error()
		return out
	}
	out.Functions = make([]Function, len(f.Functions))
	for i, fn := range f.Functions {
		out.Functions[i] = toFunction(fn)
	}
	return out
}

// Build assembles the wire-level MultiFile result from a façade run,
// computing the summary counters and non-tree entries of spec §6.
func Build(files []analysis.FileAnalysis) MultiFile {
	mf := MultiFile{Files: make([]File, len(files))}
	s := &mf.Summary
	for i, f := range files {
		wf := toFile(f)
		mf.Files[i] = wf
		if f.Err != nil {
			continue
		}
		s.FilesAnalyzed++
		s.TotalFunctions += len(wf.Functions)
		for _, fn := range wf.Functions {
			if len(fn.Decisions) == 0 {
				continue
			}
			s.FunctionsWithDecisions++
			var nonTree []Decision
			for _, d := range fn.Decisions {
				s.TotalDecisions++
				switch d.Classification {
				case treecheck.Tree.String():
					s.TreeDecisions++
				case treecheck.NonTreeCorrectable.String():
					s.CorrectableDecisions++
					nonTree = append(nonTree, d)
				case treecheck.NonTreeNonCorrectable.String():
					s.NonCorrectableDecisions++
					nonTree = append(nonTree, d)
				}
			}
			if len(nonTree) > 0 {
				s.NonTreeEntries = append(s.NonTreeEntries, NonTreeEntry{
					File:      wf.Path,
					Function:  fn.Name,
					Line:      fn.Line,
					Decisions: nonTree,
				})
			}
		}
	}
	return mf
}

// WriteJSON renders mf as indented JSON (spec §6 structured output).
func WriteJSON(w io.Writer, mf MultiFile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(mf)
}

// WriteText renders mf as colored plain text, grounded on kanso's
// cmd/kanso-cli/main.go reportParseError coloring: green for Tree, yellow
// for correctable, red for non-correctable.
func WriteText(w io.Writer, mf MultiFile, summaryOnly bool) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	colorFor := func(classification string) func(a ...interface{}) string {
		switch classification {
		case treecheck.Tree.String():
			return green
		case treecheck.NonTreeCorrectable.String():
			return yellow
		default:
			return red
		}
	}

	if !summaryOnly {
		for _, f := range mf.Files {
			fmt.Fprintf(w, "%s\n", bold(f.Path))
			if f.Error != "" {
				fmt.Fprintf(w, "  %s\n", red(f.Error))
				continue
			}
			for _, fn := range f.Functions {
				for _, d := range fn.Decisions {
					c := colorFor(d.Classification)
					fmt.Fprintf(w, "  %s:%d  %s  (%d conditions, %d nodes)\n",
						fn.Name, fn.Line, c(d.Classification), d.ConditionCount, d.NodeCount)
					if d.SuggestedOrder != nil {
						fmt.Fprintf(w, "    suggested order: %v\n", d.SuggestedOrder)
					}
				}
			}
		}
	}

	s := mf.Summary
	fmt.Fprintf(w, "\n%s\n", bold("summary"))
	fmt.Fprintf(w, "  files analyzed:        %d\n", s.FilesAnalyzed)
	fmt.Fprintf(w, "  functions:             %d (%d with decisions)\n", s.TotalFunctions, s.FunctionsWithDecisions)
	fmt.Fprintf(w, "  decisions:             %d\n", s.TotalDecisions)
	fmt.Fprintf(w, "  %s %d\n", green("tree:"), s.TreeDecisions)
	fmt.Fprintf(w, "  %s %d\n", yellow("correctable:"), s.CorrectableDecisions)
	fmt.Fprintf(w, "  %s %d\n", red("non-correctable:"), s.NonCorrectableDecisions)
}
