package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWalkVisitsEveryChild(t *testing.T) {
	ident := &Identifier{Meta: Meta{ID: 1}, Name: "x"}
	lit := &Literal{Meta: Meta{ID: 2}, Kind: LitNumber, Raw: "1", IsInt: true, Int: 1}
	bin := &Binary{Meta: Meta{ID: 3}, Left: ident, Op: OpPlus, Right: lit}
	stat := &ExpStat{Meta: Meta{ID: 4}, Exp: bin}
	elements := &SourceElements{Meta: Meta{ID: 5}, Stats: []Stat{stat}}
	program := &Program{Meta: Meta{ID: 6}, Elements: elements}

	var visited []Node
	Inspect(program, func(n Node) bool {
		visited = append(visited, n)
		return true
	})

	require.Len(t, visited, 6)
	require.Same(t, program, visited[0])
}

func TestInspectStopsDescendingWhenFalseReturned(t *testing.T) {
	ident := &Identifier{Meta: Meta{ID: 1}, Name: "x"}
	bin := &Binary{Meta: Meta{ID: 2}, Left: ident, Op: OpPlus, Right: ident}
	stat := &ExpStat{Meta: Meta{ID: 3}, Exp: bin}

	var visited []Node
	Inspect(stat, func(n Node) bool {
		visited = append(visited, n)
		_, isBinary := n.(*Binary)
		return !isBinary
	})

	require.Len(t, visited, 2) // stat, then bin — not bin's children
}

func TestPreorderYieldsSameOrderAsInspect(t *testing.T) {
	ident := &Identifier{Meta: Meta{ID: 1}, Name: "x"}
	lit := &Literal{Meta: Meta{ID: 2}, Kind: LitNumber, Raw: "1", IsInt: true}
	bin := &Binary{Meta: Meta{ID: 3}, Left: ident, Op: OpPlus, Right: lit}

	var inspected []Node
	Inspect(bin, func(n Node) bool { inspected = append(inspected, n); return true })

	var preordered []Node
	for n := range Preorder(bin) {
		preordered = append(preordered, n)
	}

	require.Equal(t, inspected, preordered)
}

func TestChildrenOmitsNilOptionalFields(t *testing.T) {
	ifStat := &If{Meta: Meta{ID: 1}, Cond: &Identifier{Name: "x"}, Then: &Empty{}, Else: nil}
	kids := Children(ifStat)
	require.Len(t, kids, 2) // Cond, Then — no nil Else entry
}

func TestWalkHandlesNilNodeGracefully(t *testing.T) {
	require.NotPanics(t, func() {
		Inspect(nil, func(n Node) bool { return true })
	})
}

func TestUnaryNeverCarriesBothPrefixAndPostfix(t *testing.T) {
	u := &Unary{Meta: Meta{ID: 1}, Op: OpPreInc, Postfix: false, Operand: &Identifier{Name: "x"}}
	require.False(t, u.Postfix)
}

func TestOpPriorityTableMatchesTierOrdering(t *testing.T) {
	require.Less(t, OpAssign.Priority(), OpOr.Priority())
	require.Less(t, OpOr.Priority(), OpAnd.Priority())
	require.Less(t, OpEquals.Priority(), OpLessThan.Priority())
	require.Less(t, OpLessThan.Priority(), OpShl.Priority())
	require.Less(t, OpShl.Priority(), OpPlus.Priority())
	require.Less(t, OpPlus.Priority(), OpMul.Priority())
	require.Less(t, OpMul.Priority(), OpNot.Priority())
	require.Less(t, OpPostInc.Priority(), OpNew.Priority())
}

func TestAssignmentAndTernaryAreRightAssociative(t *testing.T) {
	require.True(t, OpAssign.RightAssociative())
	require.True(t, OpQuestionMark.RightAssociative())
	require.True(t, OpColon.RightAssociative())
	require.False(t, OpPlus.RightAssociative())
	require.False(t, OpMul.RightAssociative())
}

func TestHoldsRespectsAssociativity(t *testing.T) {
	// Left-associative `+` holds against an incoming `+` of equal priority
	// (so `a+b+c` reduces left-to-right).
	require.True(t, OpPlus.Holds(OpPlus))
	// Right-associative `=` does not hold against an incoming `=` of equal
	// priority (so `a=b=c` nests right-to-left instead of reducing early).
	require.False(t, OpAssign.Holds(OpAssign))
}
