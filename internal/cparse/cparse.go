package cparse

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/comar2012/mcdctree/internal/hostsyntax"
)

// ParseFile reads and parses path, returning a hostsyntax.File backed by
// this package's grammar. It is the Parse function injected into
// analysis.Source for the CLI (grounded on kanso's grammar.ParseFile,
// which likewise builds a fresh parser per call).
func ParseFile(path string) (hostsyntax.File, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// ParseString parses source as if it were read from a file named name,
// without touching the filesystem. name is only used for error positions.
func ParseString(name, source string) (hostsyntax.File, error) {
	parser, err := participle.Build[File](
		participle.Lexer(exprLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(3),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	f, err := parser.ParseString(name, source)
	if err != nil {
		return nil, err
	}
	return &fileAdapter{path: name, file: f}, nil
}

type fileAdapter struct {
	path string
	file *File
}

func (f *fileAdapter) Path() string { return f.path }

func (f *fileAdapter) Functions() []hostsyntax.Function {
	out := make([]hostsyntax.Function, len(f.file.Functions))
	for i, fn := range f.file.Functions {
		out[i] = &functionAdapter{fn: fn}
	}
	return out
}

type functionAdapter struct {
	fn *FunctionDecl
}

func (f *functionAdapter) Name() string { return f.fn.Name }
func (f *functionAdapter) Line() int    { return f.fn.Pos.Line }

func (f *functionAdapter) Body() []hostsyntax.Node {
	if f.fn.Body == nil {
		return nil
	}
	return collectRoots(f.fn.Body)
}

// collectRoots flattens a block into the root expression nodes the
// decision finder walks: if/while conditions, return expressions,
// assignment right-hand sides and expression statements, recursing into
// nested blocks in source order.
func collectRoots(b *Block) []hostsyntax.Node {
	var roots []hostsyntax.Node
	for _, st := range b.Stmts {
		switch {
		case st.If != nil:
			roots = append(roots, foldExpr(st.If.Cond))
			roots = append(roots, collectRoots(st.If.Then)...)
			if st.If.Else != nil {
				roots = append(roots, collectRoots(st.If.Else)...)
			}
		case st.While != nil:
			roots = append(roots, foldExpr(st.While.Cond))
			roots = append(roots, collectRoots(st.While.Body)...)
		case st.Return != nil:
			if st.Return.Expr != nil {
				roots = append(roots, foldExpr(st.Return.Expr))
			}
		case st.Assign != nil:
			roots = append(roots, foldExpr(st.Assign.Value))
		case st.ExprStmt != nil:
			roots = append(roots, foldExpr(st.ExprStmt.Expr))
		}
	}
	return roots
}

// node is the concrete hostsyntax.Node this package produces.
type node struct {
	kind     hostsyntax.Kind
	operator string
	children []hostsyntax.Node
	text     string
}

func (n *node) Kind() hostsyntax.Kind       { return n.kind }
func (n *node) Operator() string            { return n.operator }
func (n *node) Children() []hostsyntax.Node { return n.children }
func (n *node) Text() string                { return n.text }

// foldExpr descends the precedence ladder, producing a structural node
// for &&, ||, !, ternary and parenthesization, and an opaque Other leaf
// (spec §4.2 rule 5) for anything else — including comparisons and
// arithmetic, which never contribute decision structure (spec §1
// Non-goals; spec §9 open question on the worstCase fixture: `==` is
// treated as an opaque atom here, the reference tool's current behavior).
func foldExpr(e *Expr) hostsyntax.Node {
	return foldTernary(e.Ternary)
}

func foldTernary(t *TernaryExpr) hostsyntax.Node {
	cond := foldOr(t.Cond)
	if t.Tail == nil {
		return cond
	}
	return &node{
		kind:     hostsyntax.KindTernary,
		children: []hostsyntax.Node{cond, foldExpr(t.Tail.Then), foldExpr(t.Tail.Else)},
	}
}

func foldOr(o *OrExpr) hostsyntax.Node {
	left := foldAnd(o.Left)
	for _, r := range o.Rest {
		left = &node{kind: hostsyntax.KindInfix, operator: "||", children: []hostsyntax.Node{left, foldAnd(r)}}
	}
	return left
}

func foldAnd(a *AndExpr) hostsyntax.Node {
	left := foldEq(a.Left)
	for _, r := range a.Rest {
		left = &node{kind: hostsyntax.KindInfix, operator: "&&", children: []hostsyntax.Node{left, foldEq(r)}}
	}
	return left
}

func foldEq(e *EqExpr) hostsyntax.Node {
	if e.Tail == nil {
		return foldRel(e.Left)
	}
	return &node{kind: hostsyntax.KindOther, text: renderEq(e)}
}

func foldRel(r *RelExpr) hostsyntax.Node {
	if r.Tail == nil {
		return foldAdd(r.Left)
	}
	return &node{kind: hostsyntax.KindOther, text: renderRel(r)}
}

func foldAdd(a *AddExpr) hostsyntax.Node {
	if len(a.Ops) == 0 {
		return foldMul(a.Left)
	}
	return &node{kind: hostsyntax.KindOther, text: renderAdd(a)}
}

func foldMul(m *MulExpr) hostsyntax.Node {
	if len(m.Ops) == 0 {
		return foldUnary(m.Left)
	}
	return &node{kind: hostsyntax.KindOther, text: renderMul(m)}
}

func foldUnary(u *UnaryExpr) hostsyntax.Node {
	if u.Not != nil {
		return &node{kind: hostsyntax.KindPrefix, operator: "!", children: []hostsyntax.Node{foldUnary(u.Not)}}
	}
	return foldPrimary(u.Primary)
}

func foldPrimary(p *PrimaryExpr) hostsyntax.Node {
	switch {
	case p.Paren != nil:
		return &node{kind: hostsyntax.KindParenthesized, children: []hostsyntax.Node{foldExpr(p.Paren)}}
	case p.Call != nil:
		return &node{kind: hostsyntax.KindOther, text: renderCall(p.Call)}
	case p.Ident != nil:
		return &node{kind: hostsyntax.KindOther, text: *p.Ident}
	case p.Number != nil:
		return &node{kind: hostsyntax.KindOther, text: *p.Number}
	default:
		return &node{kind: hostsyntax.KindOther, text: ""}
	}
}

// The render* functions reconstruct trimmed source text for a node that
// the extractor will treat as an atomic leaf (spec §4.2 rule 5: "source
// text with surrounding whitespace trimmed"). Spacing is normalized
// rather than byte-exact; textual identity only depends on the result
// being stable and consistent between two occurrences of the same
// condition.

func renderExpr(e *Expr) string { return renderTernary(e.Ternary) }

func renderTernary(t *TernaryExpr) string {
	if t.Tail == nil {
		return renderOr(t.Cond)
	}
	return renderOr(t.Cond) + " ? " + renderExpr(t.Tail.Then) + " : " + renderExpr(t.Tail.Else)
}

func renderOr(o *OrExpr) string {
	s := renderAnd(o.Left)
	for _, r := range o.Rest {
		s += " || " + renderAnd(r)
	}
	return s
}

func renderAnd(a *AndExpr) string {
	s := renderEq(a.Left)
	for _, r := range a.Rest {
		s += " && " + renderEq(r)
	}
	return s
}

func renderEq(e *EqExpr) string {
	s := renderRel(e.Left)
	if e.Tail != nil {
		s += " " + e.Tail.Op + " " + renderRel(e.Tail.Right)
	}
	return s
}

func renderRel(r *RelExpr) string {
	s := renderAdd(r.Left)
	if r.Tail != nil {
		s += " " + r.Tail.Op + " " + renderAdd(r.Tail.Right)
	}
	return s
}

func renderAdd(a *AddExpr) string {
	s := renderMul(a.Left)
	for _, op := range a.Ops {
		s += " " + op.Operator + " " + renderMul(op.Right)
	}
	return s
}

func renderMul(m *MulExpr) string {
	s := renderUnary(m.Left)
	for _, op := range m.Ops {
		s += " " + op.Operator + " " + renderUnary(op.Right)
	}
	return s
}

func renderUnary(u *UnaryExpr) string {
	if u.Not != nil {
		return "!" + renderUnary(u.Not)
	}
	return renderPrimary(u.Primary)
}

func renderPrimary(p *PrimaryExpr) string {
	switch {
	case p.Paren != nil:
		return "(" + renderExpr(p.Paren) + ")"
	case p.Call != nil:
		return renderCall(p.Call)
	case p.Ident != nil:
		return *p.Ident
	case p.Number != nil:
		return *p.Number
	default:
		return ""
	}
}

func renderCall(c *CallExpr) string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = renderExpr(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}
