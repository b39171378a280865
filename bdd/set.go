// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// OrAll returns the disjunction of a sequence of nodes, following rudd's
// Set.Or. An empty sequence is False (the identity of disjunction).
func (d *Diagram) OrAll(n ...Node) Node {
	if len(n) == 0 {
		return False
	}
	res := n[0]
	for _, x := range n[1:] {
		res = d.Or(res, x)
	}
	return res
}
