package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comar2012/mcdctree/internal/analysis"
	"github.com/comar2012/mcdctree/internal/treecheck"
)

func TestBuildSummaryCounts(t *testing.T) {
	files := []analysis.FileAnalysis{
		{
			Path: "a.c",
			Functions: []analysis.FunctionAnalysis{
				{
					Name: "f", Line: 3,
					OverallClassification: treecheck.NonTreeCorrectable,
					Decisions: []analysis.DecisionAnalysis{
						{ConditionCount: 2, NodeCount: 2, Classification: treecheck.Tree, OriginalOrder: []string{"a", "b"}},
						{ConditionCount: 3, NodeCount: 3, Classification: treecheck.NonTreeCorrectable, OriginalOrder: []string{"b", "c", "a"}, SuggestedOrder: []string{"b", "a", "c"}},
					},
				},
			},
		},
		{Path: "bad.c", Err: errors.New("parse error")},
	}

	mf := Build(files)
	s := mf.Summary
	assert.Equal(t, 1, s.FilesAnalyzed, "bad.c must not count")
	assert.Equal(t, 2, s.TotalDecisions)
	assert.Equal(t, 1, s.TreeDecisions)
	assert.Equal(t, 1, s.CorrectableDecisions)
	assert.Equal(t, 0, s.NonCorrectableDecisions)
	require.Len(t, s.NonTreeEntries, 1)
	assert.Equal(t, "f", s.NonTreeEntries[0].Function)
	assert.NotEmpty(t, mf.Files[1].Error)
}

func TestWriteJSONRoundTrips(t *testing.T) {
	files := []analysis.FileAnalysis{{Path: "a.c"}}
	mf := Build(files)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, mf))
	var decoded MultiFile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded.Files, 1)
	assert.Equal(t, "a.c", decoded.Files[0].Path)
}

func TestWriteTextDoesNotPanic(t *testing.T) {
	files := []analysis.FileAnalysis{
		{
			Path: "a.c",
			Functions: []analysis.FunctionAnalysis{
				{Name: "f", Line: 1, Decisions: []analysis.DecisionAnalysis{
					{ConditionCount: 2, NodeCount: 2, Classification: treecheck.Tree, OriginalOrder: []string{"a", "b"}},
				}},
			},
		},
	}
	mf := Build(files)
	var buf bytes.Buffer
	WriteText(&buf, mf, false)
	assert.NotEmpty(t, buf.Bytes())
}
