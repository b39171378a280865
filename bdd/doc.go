// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd implements Reduced Ordered Binary Decision Diagrams (ROBDD) for
the boolean decisions extracted from a single source-level expression.

Each decision gets its own Diagram, built once from a boolean expression and
a chosen variable order, queried, and discarded. Node identifiers 0 and 1 are
always the reserved false and true terminals; every other identifier is an
internal node allocated by makeNode in creation order, which enforces the two
canonical reductions: no node with low == high (elimination) and no two
nodes sharing the same (variable, low, high) triple (sharing, via the unique
table).

Unlike a long-lived BDD library such as BuDDy, a Diagram here is an arena: it
grows monotonically during construction and is released as a whole once the
decision's analysis is done. There is no reference counting and no garbage
collector, since nothing outlives the single analysis that built it.

Apart from VariableNode, which allocates the single node of a bare variable,
the only operation that constructs new internal nodes is Ite (if-then-else);
And, Or and Not are all expressed in terms of it, following Bryant's original
formulation.
*/
package bdd
