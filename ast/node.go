// Package ast defines the syntax tree produced by parsing: one concrete Go
// struct per grammar variant, dispatched through small Stat/Expr marker
// interfaces with an exhaustive type switch at each consumer, and a Meta
// value embedded in every node carrying its session-unique identity and
// source span.
package ast

// Span is the inclusive range of 1-based source lines a node was built
// from. Begin is always <= End.
type Span struct {
	Begin int
	End   int
}

// Meta is embedded in every concrete node type. It supplies the identity
// and span every node must carry, without requiring Go's type system to
// express a closed sum type directly.
type Meta struct {
	ID   int
	Span Span
}

// Node is implemented by every AST node, statement or expression.
type Node interface {
	Pos() Span
	nodeID() int
}

// Stat is implemented by every statement-level node.
type Stat interface {
	Node
	stmtNode()
}

// Expr is implemented by every expression-level node.
type Expr interface {
	Node
	exprNode()
}

func (m Meta) Pos() Span  { return m.Span }
func (m Meta) nodeID() int { return m.ID }

// Program is the root of a parsed source file.
type Program struct {
	Meta
	Elements *SourceElements // nil for an empty source file
}

// SourceElements is an ordered, non-empty sequence of statements. The
// parser never constructs one with zero statements; an empty source file
// is represented by a nil SourceElements on Program instead.
type SourceElements struct {
	Meta
	Stats []Stat
}

// Unknown is the default-constructed statement sentinel. It must never
// appear in a tree returned from a successful parse; its presence always
// indicates a parser bug.
type Unknown struct {
	Meta
}

func (*Unknown) stmtNode() {}
