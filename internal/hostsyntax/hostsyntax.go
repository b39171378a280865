// Package hostsyntax is the inbound collaborator seam of spec §6: the
// minimal view of a parsed, operator-folded source tree that the decision
// finder and extractor need. A real front end (Go, C, Ada, Swift...) binds
// to this interface instead of handing this tool its own concrete AST;
// internal/cparse is the one reference implementation shipped here.
package hostsyntax

// Kind discriminates the expression node shapes the core cares about. Any
// node that is not one of Infix(&&/||)/Prefix(!)/Ternary/Parenthesized is
// Other — an atomic condition from the decision's point of view, per spec
// §4.2 rule 5.
type Kind int

const (
	KindParenthesized Kind = iota
	KindInfix
	KindPrefix
	KindTernary
	KindOther
)

// Node is a single expression node in the host's parsed tree.
type Node interface {
	// Kind reports which of the five shapes this node has.
	Kind() Kind

	// Operator returns the operator spelling ("&&", "||", "!") for Infix
	// and Prefix nodes; it is meaningless for the other kinds.
	Operator() string

	// Children returns the node's sub-expressions in source order: one
	// child for Parenthesized/Prefix, two for Infix, three
	// (condition, then, else) for Ternary, zero for Other.
	Children() []Node

	// Text returns the trimmed source text of an Other (atomic) node. It
	// is meaningless for the other kinds.
	Text() string
}

// Function is a function or initializer declaration as exposed by the host
// parser: a name, a starting line, and an optional body. A nil Body means
// a declaration without a body (e.g. a protocol/interface requirement),
// which the façade must skip (spec §4.5).
type Function interface {
	Name() string
	Line() int
	Body() []Node
}

// File is the root of one parsed source file: its path and the function
// declarations found in parser traversal order (spec §5 Ordering
// guarantees).
type File interface {
	Path() string
	Functions() []Function
}
