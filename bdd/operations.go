// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// VariableNode returns the node representing the bare variable at the given
// index (spec §4.1: variable(index) = make_node(index, false, true)).
func (d *Diagram) VariableNode(index int) Node {
	return d.variableNode(index)
}

// min3 returns the smallest of three levels, treating infinity (a
// terminal's level) as never the minimum unless all three operands are
// terminals. Adapted directly from rudd's min3, used here to pick the
// "top" variable among the operands of Ite.
func min3(p, q, r int) int {
	if p <= q {
		if p <= r {
			return p
		}
		return r
	}
	if q <= r {
		return q
	}
	return r
}

// restrict computes the cofactor of node x with respect to variable v set
// to bit (spec §4.1). On a terminal it is the identity. On an internal
// node whose variable is v, it follows the matching branch; on one whose
// variable is strictly below v in the order it is the identity (v does not
// occur below); a node whose variable is above v never occurs given I3 and
// the preconditions under which restrict is called from ite.
func (d *Diagram) restrict(x Node, v int, bit bool) Node {
	if d.IsTerminal(x) {
		return x
	}
	w := d.nodes[x].variable
	switch {
	case w == v:
		if bit {
			return d.nodes[x].high
		}
		return d.nodes[x].low
	case w > v:
		return x
	default:
		invariantViolation("restrict called with a variable above the node's own level")
		return x
	}
}

// Ite computes if f then g else h (spec §4.1), the node-constructing
// primitive for every compound function (VariableNode only allocates the
// single node of a bare variable); And, Or and Not are all expressed
// through it, following Bryant's original formulation and rudd's
// hoperations.go.
func (d *Diagram) Ite(f, g, h Node) Node {
	switch {
	case f == True:
		return g
	case f == False:
		return h
	case g == True && h == False:
		return f
	case g == h:
		return g
	}
	if res, ok := d.lookupIte(f, g, h); ok {
		return res
	}
	top := min3(d.levelOf(f), d.levelOf(g), d.levelOf(h))
	low := d.Ite(d.restrict(f, top, false), d.restrict(g, top, false), d.restrict(h, top, false))
	high := d.Ite(d.restrict(f, top, true), d.restrict(g, top, true), d.restrict(h, top, true))
	res := d.makeNode(top, low, high)
	return d.storeIte(f, g, h, res)
}

// levelOf returns a node's variable, or infinity for a terminal, so that
// min3 can pick the top variable among operands that mix internal nodes
// and terminals without a special case.
func (d *Diagram) levelOf(n Node) int {
	if d.IsTerminal(n) {
		return infinity
	}
	return d.nodes[n].variable
}

// And returns the conjunction of f and g.
func (d *Diagram) And(f, g Node) Node {
	return d.Ite(f, g, False)
}

// Or returns the disjunction of f and g.
func (d *Diagram) Or(f, g Node) Node {
	return d.Ite(f, True, g)
}

// Not returns the negation of f.
func (d *Diagram) Not(f Node) Node {
	return d.Ite(f, False, True)
}
