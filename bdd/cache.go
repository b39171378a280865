// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// iteKey is the memoization key for the computed table: an Ite call is
// fully determined by its three operands. Unlike rudd's fixed-size,
// hash-bucketed applycache/itecache (sized and resized alongside the node
// table), a decision-sized Diagram never grows enough to justify a bucket
// table with collision handling, so we use a plain Go map. The computed
// table is advisory (spec §3): a miss just means recomputing, never a
// correctness issue.
type iteKey struct {
	f, g, h Node
}

func (d *Diagram) lookupIte(f, g, h Node) (Node, bool) {
	n, ok := d.computed[iteKey{f, g, h}]
	return n, ok
}

func (d *Diagram) storeIte(f, g, h, res Node) Node {
	d.computed[iteKey{f, g, h}] = res
	return res
}
