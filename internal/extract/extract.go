// Package extract folds a host expression tree (internal/hostsyntax) into
// a language-independent boolean expression (internal/boolexpr), following
// the five rules of spec §4.2.
package extract

import (
	"strings"

	"github.com/comar2012/mcdctree/internal/boolexpr"
	"github.com/comar2012/mcdctree/internal/hostsyntax"
)

// Expr folds n into a BoolExpr, applying the extraction rules in order:
//
//  1. a single-element parenthesization unwraps to its inner expression;
//  2. infix && / || become And/Or over the recursively extracted operands;
//  3. prefix ! becomes Not over the recursively extracted operand;
//  4. a ternary c ? t : e extracts only its condition c — the branches are
//     atomic from the decision's perspective (spec §4.2 rule 4);
//  5. anything else is a leaf Var, named by its trimmed source text.
func Expr(n hostsyntax.Node) boolexpr.Expr {
	switch n.Kind() {
	case hostsyntax.KindParenthesized:
		children := n.Children()
		return Expr(children[0])
	case hostsyntax.KindInfix:
		children := n.Children()
		left, right := Expr(children[0]), Expr(children[1])
		switch n.Operator() {
		case "&&":
			return boolexpr.And{Left: left, Right: right}
		case "||":
			return boolexpr.Or{Left: left, Right: right}
		default:
			// a non-boolean infix operator produces no decision structure
			// of its own; it is an atomic condition (spec §4.3, §7).
			return leafFromText(n)
		}
	case hostsyntax.KindPrefix:
		if n.Operator() == "!" {
			children := n.Children()
			return boolexpr.Not{Operand: Expr(children[0])}
		}
		return leafFromText(n)
	case hostsyntax.KindTernary:
		children := n.Children()
		return Expr(children[0])
	default:
		return leafFromText(n)
	}
}

func leafFromText(n hostsyntax.Node) boolexpr.Expr {
	return boolexpr.Var{Name: strings.TrimSpace(n.Text())}
}
