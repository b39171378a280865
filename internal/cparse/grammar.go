// Package cparse is the reference hostsyntax.File/Function/Node binding
// (spec §6's "concrete parser binding is a collaborator"): a participle/v2
// grammar for a small C-family expression language, grounded on kanso's
// grammar/grammar.go and grammar/lexer.go.
package cparse

import "github.com/alecthomas/participle/v2/lexer"

// File is the root production: a sequence of function declarations.
type File struct {
	Functions []*FunctionDecl `@@*`
}

// FunctionDecl is a function definition or a bodyless declaration (e.g. a
// prototype), matching spec §4.5's "Function/init declarations without a
// body produce no entries".
type FunctionDecl struct {
	Pos lexer.Position

	ReturnType string   `@Ident`
	Name       string   `@Ident "("`
	Params     []*Param `[ @@ { "," @@ } ] ")"`
	Body       *Block   `@@?`
	NoBody     bool     `[ @";" ]`
}

// Param is a single function parameter; its structure does not matter to
// decision finding, only its presence in the parameter list.
type Param struct {
	Type string `@Ident`
	Name string `@Ident`
}

// Block is a brace-delimited statement sequence.
type Block struct {
	Stmts []*Stmt `"{" @@* "}"`
}

// Stmt is one statement. Its case determines which Expr fields are
// candidate decision roots.
type Stmt struct {
	If       *IfStmt     `  @@`
	While    *WhileStmt  `| @@`
	Return   *ReturnStmt `| @@`
	Assign   *AssignStmt `| @@`
	ExprStmt *ExprStmt   `| @@`
}

// IfStmt's Cond is a root expression; Then/Else are nested blocks whose
// own statements contribute further roots.
type IfStmt struct {
	Cond *Expr  `"if" "(" @@ ")"`
	Then *Block `@@`
	Else *Block `[ "else" @@ ]`
}

// WhileStmt's Cond is a root expression.
type WhileStmt struct {
	Cond *Expr  `"while" "(" @@ ")"`
	Body *Block `@@`
}

type ReturnStmt struct {
	Expr *Expr `"return" [ @@ ] ";"`
}

type AssignStmt struct {
	Target string `@Ident "="`
	Value  *Expr  `@@ ";"`
}

type ExprStmt struct {
	Expr *Expr `@@ ";"`
}

// Expr is the top of the precedence ladder: ternary, binding tighter than
// nothing else (spec §4.2 rule 4 extracts only the condition).
type Expr struct {
	Ternary *TernaryExpr `@@`
}

// TernaryExpr is `Cond [ "?" Then ":" Else ]`.
type TernaryExpr struct {
	Cond *OrExpr      `@@`
	Tail *TernaryTail `[ @@ ]`
}

// TernaryTail is the `"?" Then ":" Else` suffix of a ternary, split into
// its own struct so the whole suffix captures as one optional field.
type TernaryTail struct {
	Then *Expr `"?" @@`
	Else *Expr `":" @@`
}

// OrExpr is a left-associative chain of || over AndExpr operands.
type OrExpr struct {
	Left *AndExpr   `@@`
	Rest []*AndExpr `{ "||" @@ }`
}

// AndExpr is a left-associative chain of && over EqExpr operands.
type AndExpr struct {
	Left *EqExpr   `@@`
	Rest []*EqExpr `{ "&&" @@ }`
}

// EqExpr is an optional == / != comparison. Comparisons are opaque atoms
// from the decision's point of view (spec §9 open question on the
// worstCase fixture): when Tail is set, the whole comparison folds to one
// leaf, not a structural node.
type EqExpr struct {
	Left *RelExpr `@@`
	Tail *EqTail  `[ @@ ]`
}

type EqTail struct {
	Op    string   `@("==" | "!=")`
	Right *RelExpr `@@`
}

// RelExpr is an optional relational comparison; opaque like EqExpr.
type RelExpr struct {
	Left *AddExpr `@@`
	Tail *RelTail `[ @@ ]`
}

type RelTail struct {
	Op    string   `@("<=" | ">=" | "<" | ">")`
	Right *AddExpr `@@`
}

// AddExpr is a left-associative chain of + / -; arithmetic never
// contributes decision structure (spec §1 Non-goals).
type AddExpr struct {
	Left *MulExpr `@@`
	Ops  []*AddOp `{ @@ }`
}

type AddOp struct {
	Operator string   `@("+" | "-")`
	Right    *MulExpr `@@`
}

// MulExpr is a left-associative chain of * / /  / %.
type MulExpr struct {
	Left *UnaryExpr `@@`
	Ops  []*MulOp   `{ @@ }`
}

type MulOp struct {
	Operator string     `@("*" | "/" | "%")`
	Right    *UnaryExpr `@@`
}

// UnaryExpr is a (possibly repeated) prefix ! over a PrimaryExpr.
type UnaryExpr struct {
	Not     *UnaryExpr   `  "!" @@`
	Primary *PrimaryExpr `| @@`
}

// PrimaryExpr is a parenthesized expression, a call, a bare identifier, or
// a numeric literal.
type PrimaryExpr struct {
	Paren  *Expr     `  "(" @@ ")"`
	Call   *CallExpr `| @@`
	Ident  *string   `| @Ident`
	Number *string   `| @Number`
}

// CallExpr is a function-call atom (spec §9 Supplemented features: call
// atoms so multi-clause decisions like `a == 1 && isReady(x)` parse).
type CallExpr struct {
	Name string  `@Ident "("`
	Args []*Expr `[ @@ { "," @@ } ] ")"`
}
