package analysis

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comar2012/mcdctree/internal/hostsyntax"
	"github.com/comar2012/mcdctree/internal/treecheck"
)

type fakeNode struct {
	kind     hostsyntax.Kind
	operator string
	children []hostsyntax.Node
	text     string
}

func (f *fakeNode) Kind() hostsyntax.Kind       { return f.kind }
func (f *fakeNode) Operator() string            { return f.operator }
func (f *fakeNode) Children() []hostsyntax.Node { return f.children }
func (f *fakeNode) Text() string                { return f.text }

func atom(text string) hostsyntax.Node {
	return &fakeNode{kind: hostsyntax.KindOther, text: text}
}

func infix(op string, left, right hostsyntax.Node) hostsyntax.Node {
	return &fakeNode{kind: hostsyntax.KindInfix, operator: op, children: []hostsyntax.Node{left, right}}
}

type fakeFunction struct {
	name string
	line int
	body []hostsyntax.Node
}

func (f *fakeFunction) Name() string           { return f.name }
func (f *fakeFunction) Line() int              { return f.line }
func (f *fakeFunction) Body() []hostsyntax.Node { return f.body }

type fakeFile struct {
	path      string
	functions []hostsyntax.Function
}

func (f *fakeFile) Path() string                     { return f.path }
func (f *fakeFile) Functions() []hostsyntax.Function { return f.functions }

// spec §8 scenario 7: "if a && b {…} if (b && c) || a {…}" -> 2 decisions;
// first Tree, second NonTreeCorrectable; overall NonTreeCorrectable.
func TestAnalyzeFileScenario7(t *testing.T) {
	file := &fakeFile{
		path: "f.c",
		functions: []hostsyntax.Function{
			&fakeFunction{
				name: "check",
				line: 10,
				body: []hostsyntax.Node{
					infix("&&", atom("a"), atom("b")),
					infix("||", infix("&&", atom("b"), atom("c")), atom("a")),
				},
			},
		},
	}
	result := AnalyzeFile(context.Background(), file, Config{})
	require.Len(t, result.Functions, 1)
	fn := result.Functions[0]
	require.Len(t, fn.Decisions, 2)
	assert.Equal(t, treecheck.Tree, fn.Decisions[0].Classification)
	assert.Equal(t, treecheck.NonTreeCorrectable, fn.Decisions[1].Classification)
	assert.Equal(t, treecheck.NonTreeCorrectable, fn.OverallClassification)
}

// a function declaration without a body produces no entry (spec §4.5).
func TestAnalyzeFileSkipsBodylessFunctions(t *testing.T) {
	file := &fakeFile{
		path: "f.c",
		functions: []hostsyntax.Function{
			&fakeFunction{name: "proto", line: 1, body: nil},
		},
	}
	result := AnalyzeFile(context.Background(), file, Config{})
	assert.Empty(t, result.Functions)
}

func TestAnalyzeFilesPreservesOrderAndParallelizes(t *testing.T) {
	sources := make([]Source, 0, 8)
	for i := 0; i < 8; i++ {
		sources = append(sources, Source{
			Path: fmt.Sprintf("file%d.c", i),
			Parse: func(path string) (hostsyntax.File, error) {
				return &fakeFile{path: path}, nil
			},
		})
	}
	results := AnalyzeFiles(context.Background(), sources, Config{Workers: 4})
	require.Len(t, results, 8)
	for i, r := range results {
		assert.Equal(t, fmt.Sprintf("file%d.c", i), r.Path, "order must match input")
		assert.NoError(t, r.Err)
	}
}

func TestAnalyzeFilesSurfacesParseErrorsPerFile(t *testing.T) {
	sources := []Source{
		{Path: "bad.c", Parse: func(path string) (hostsyntax.File, error) {
			return nil, fmt.Errorf("unexpected token")
		}},
		{Path: "good.c", Parse: func(path string) (hostsyntax.File, error) {
			return &fakeFile{path: path}, nil
		}},
	}
	results := AnalyzeFiles(context.Background(), sources, Config{})
	assert.Error(t, results[0].Err)
	assert.NoError(t, results[1].Err)
}
