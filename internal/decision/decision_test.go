package decision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comar2012/mcdctree/internal/hostsyntax"
)

type fakeNode struct {
	kind     hostsyntax.Kind
	operator string
	children []hostsyntax.Node
	text     string
}

func (f *fakeNode) Kind() hostsyntax.Kind       { return f.kind }
func (f *fakeNode) Operator() string            { return f.operator }
func (f *fakeNode) Children() []hostsyntax.Node { return f.children }
func (f *fakeNode) Text() string                { return f.text }

func atom(text string) hostsyntax.Node {
	return &fakeNode{kind: hostsyntax.KindOther, text: text}
}

func infix(op string, left, right hostsyntax.Node) hostsyntax.Node {
	return &fakeNode{kind: hostsyntax.KindInfix, operator: op, children: []hostsyntax.Node{left, right}}
}

func ternary(cond, then, els hostsyntax.Node) hostsyntax.Node {
	return &fakeNode{kind: hostsyntax.KindTernary, children: []hostsyntax.Node{cond, then, els}}
}

func ifStmt(cond hostsyntax.Node) hostsyntax.Node {
	// a stand-in for a plain "if" node: a single-child Other wrapper that
	// merely routes the walk into its condition.
	return &fakeNode{kind: hostsyntax.KindOther, children: []hostsyntax.Node{cond}}
}

// "if a && b {…} if b || c {…}" yields exactly two decisions (spec §4.3).
func TestFindTwoSiblingDecisions(t *testing.T) {
	body := []hostsyntax.Node{
		ifStmt(infix("&&", atom("a"), atom("b"))),
		ifStmt(infix("||", atom("b"), atom("c"))),
	}
	found := Find(body)
	require.Len(t, found, 2)
	assert.Equal(t, "&&", found[0].Root.Operator())
	assert.Equal(t, "||", found[1].Root.Operator())
}

// a nested && inside an outer || is one decision, not two.
func TestNestedConnectiveIsOneDecision(t *testing.T) {
	body := []hostsyntax.Node{
		ifStmt(infix("||", infix("&&", atom("a"), atom("b")), atom("c"))),
	}
	found := Find(body)
	require.Len(t, found, 1)
	assert.Equal(t, "||", found[0].Root.Operator(), "decision root should be the outermost ||")
}

// a bare Var and Not(Var) produce no decisions.
func TestNoDecisionWithoutConnective(t *testing.T) {
	body := []hostsyntax.Node{ifStmt(atom("a"))}
	assert.Empty(t, Find(body))
	notBody := []hostsyntax.Node{ifStmt(&fakeNode{kind: hostsyntax.KindPrefix, operator: "!", children: []hostsyntax.Node{atom("a")}})}
	assert.Empty(t, Find(notBody))
}

// a ternary that is not itself inside a decision yields no decision of its
// own, but a decision hiding in one of its branches is still found.
func TestTernaryBranchesStillSearched(t *testing.T) {
	body := []hostsyntax.Node{
		ifStmt(ternary(atom("x"), infix("&&", atom("p"), atom("q")), atom("r"))),
	}
	found := Find(body)
	require.Len(t, found, 1)
	assert.Equal(t, "&&", found[0].Root.Operator())
}

// A ternary nested inside a decision does not let its condition spawn a
// second decision, but its branches are still searched.
func TestTernaryInsideDecisionBranchesStillSearched(t *testing.T) {
	body := []hostsyntax.Node{
		ifStmt(infix("&&", ternary(atom("a"), infix("||", atom("p"), atom("q")), atom("c")), atom("d"))),
	}
	found := Find(body)
	require.Len(t, found, 2)
	assert.Equal(t, "&&", found[0].Root.Operator(), "first decision should be the outer &&")
	assert.Equal(t, "||", found[1].Root.Operator(), "second decision should be the || in the ternary's then-branch")
}
