// Package treecheck implements the tree classifier (spec §4.4): it builds
// a bdd.Diagram from a BoolExpr under a given variable order, decides
// whether the diagram is tree-shaped, and — when it is not — searches
// permutations of the order (bounded by MaxReorderVariables) for one that
// is.
package treecheck

import (
	"github.com/comar2012/mcdctree/bdd"
	"github.com/comar2012/mcdctree/internal/boolexpr"
)

// DefaultMaxReorderVariables is the default bound on the arity the reorder
// search will attempt (spec §4.4: 5, i.e. at most 120 permutations).
const DefaultMaxReorderVariables = 5

// Classification is the outcome of classifying one decision.
type Classification int

const (
	Tree Classification = iota
	NonTreeCorrectable
	NonTreeNonCorrectable
)

func (c Classification) String() string {
	switch c {
	case Tree:
		return "TREE"
	case NonTreeCorrectable:
		return "NON_TREE_CORRECTABLE"
	case NonTreeNonCorrectable:
		return "NON_TREE_NON_CORRECTABLE"
	default:
		return "UNKNOWN"
	}
}

// Worse reports whether c is a strictly worse classification than other,
// under Tree < NonTreeCorrectable < NonTreeNonCorrectable (spec §3,
// FunctionAnalysis.overall_classification).
func (c Classification) Worse(other Classification) bool {
	return c > other
}

// Result is the outcome of classifying one decision (spec §3
// DecisionAnalysis).
type Result struct {
	ConditionCount  int
	NodeCount       int
	Classification  Classification
	OriginalOrder   []string
	SuggestedOrder  []string // nil unless Classification == NonTreeCorrectable
}

// Build folds expr into a fresh bdd.Diagram ordered by order, sets its
// root, and returns the diagram. An unresolved Var (a name absent from
// order) resolves to the true terminal (spec §4.1) — this never happens
// when order is derived from expr itself via
// boolexpr.CollectVariableOrder.
func Build(expr boolexpr.Expr, order []string) *bdd.Diagram {
	d := bdd.New(order)
	d.SetRoot(fold(d, expr))
	return d
}

func fold(d *bdd.Diagram, expr boolexpr.Expr) bdd.Node {
	switch e := expr.(type) {
	case boolexpr.Var:
		index, ok := d.IndexOf(e.Name)
		if !ok {
			return bdd.True
		}
		return d.VariableNode(index)
	case boolexpr.And:
		return d.And(fold(d, e.Left), fold(d, e.Right))
	case boolexpr.Or:
		return d.Or(fold(d, e.Left), fold(d, e.Right))
	case boolexpr.Not:
		return d.Not(fold(d, e.Operand))
	default:
		return bdd.True
	}
}

// Classify runs the tree-checker algorithm of spec §4.4 for one decision.
func Classify(expr boolexpr.Expr, originalOrder []string, maxReorderVariables int) Result {
	d0 := Build(expr, originalOrder)
	res := Result{
		ConditionCount: len(d0.Variables(d0.Root())),
		NodeCount:      d0.NodeCount(d0.Root()),
		OriginalOrder:  originalOrder,
	}
	if d0.IsTree(d0.Root()) {
		res.Classification = Tree
		return res
	}
	if len(originalOrder) <= maxReorderVariables {
		for _, p := range permutations(originalOrder) {
			dp := Build(expr, p)
			if dp.IsTree(dp.Root()) {
				res.Classification = NonTreeCorrectable
				res.SuggestedOrder = p
				return res
			}
		}
	}
	res.Classification = NonTreeNonCorrectable
	return res
}

// permutations enumerates every permutation of order by recursive
// selection of each remaining element in index order, which gives a
// deterministic lexicographic enumeration over the input slice (spec §9:
// "recursive generation picking each remaining element in index order").
// The first element of the result is always the original order.
func permutations(order []string) [][]string {
	n := len(order)
	if n == 0 {
		return [][]string{{}}
	}
	var result [][]string
	used := make([]bool, n)
	current := make([]string, 0, n)
	var rec func()
	rec = func() {
		if len(current) == n {
			perm := make([]string, n)
			copy(perm, current)
			result = append(result, perm)
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			current = append(current, order[i])
			rec()
			current = current[:len(current)-1]
			used[i] = false
		}
	}
	rec()
	return result
}
