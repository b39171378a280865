// Package decision implements the decision finder (spec §4.3): it walks a
// function body and records the outermost && / || subtree of every decision,
// without descending further into it, while still descending into
// everything else — including ternary branches — to find other decisions
// nested elsewhere in the body.
package decision

import "github.com/comar2012/mcdctree/internal/hostsyntax"

// Found is one decision root as it appears in the host's syntax tree,
// ready to be folded by internal/extract.
type Found struct {
	Root hostsyntax.Node
}

// Find walks every root expression in body and returns the decisions found,
// in source order.
func Find(body []hostsyntax.Node) []Found {
	var found []Found
	for _, root := range body {
		walk(root, false, &found)
	}
	return found
}

// walk visits n. insideDecision is true once an ancestor && / || node has
// already been recorded as a decision root along this path — in that case
// a nested && / || is part of the same decision and must not be recorded
// again. A ternary's branches always reset insideDecision to false: they
// are not part of any enclosing decision's boolean function (spec §4.2
// rule 4), but they may contain decisions of their own (spec §9 open
// question on ternary branches).
func walk(n hostsyntax.Node, insideDecision bool, found *[]Found) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case hostsyntax.KindInfix:
		op := n.Operator()
		if (op == "&&" || op == "||") && !insideDecision {
			*found = append(*found, Found{Root: n})
			insideDecision = true
		}
		for _, c := range n.Children() {
			walk(c, insideDecision, found)
		}
	case hostsyntax.KindTernary:
		children := n.Children()
		if len(children) > 0 {
			walk(children[0], insideDecision, found)
		}
		for _, c := range children[1:] {
			walk(c, false, found)
		}
	default:
		for _, c := range n.Children() {
			walk(c, insideDecision, found)
		}
	}
}
