package ast

// Block is `{ Stat* }`.
type Block struct {
	Meta
	Stats []Stat
}

func (*Block) stmtNode() {}

// Empty is a bare `;`.
type Empty struct{ Meta }

func (*Empty) stmtNode() {}

// ExpStat is an expression used as a statement.
type ExpStat struct {
	Meta
	Exp Expr
}

func (*ExpStat) stmtNode() {}

// VarModifier distinguishes var/let/const.
type VarModifier int

const (
	VarVar VarModifier = iota
	VarLet
	VarConst
)

// VarDecl is one `name (: Type)? (= Exp)?` entry in a VarStat.
type VarDecl struct {
	Meta
	Name       *Identifier
	TypeAnnot  *TypeAnnotation // optional
	Init       Expr            // optional
}

// VarStat is `var|let|const readonly? decl (, decl)*;`.
type VarStat struct {
	Meta
	Modifier VarModifier
	ReadOnly bool
	Decls    []*VarDecl
}

func (*VarStat) stmtNode() {}

// If is `if (Cond) Then (else Else)?`.
type If struct {
	Meta
	Cond Expr
	Then Stat
	Else Stat // nil when there is no else clause
}

func (*If) stmtNode() {}

// IterKind distinguishes the five iteration-statement shapes.
type IterKind int

const (
	IterWhile IterKind = iota
	IterDoWhile
	IterFor
	IterForIn
	IterForVar
)

// Iter covers while/do-while/for/for-in/for-var-in. Fields not relevant to
// Kind are left nil/zero.
type Iter struct {
	Meta
	Kind IterKind

	// while / do-while
	Cond Expr
	Body Stat

	// classic for(Init; Test; Update) Body
	Init   Node // Expr, *VarStat, or nil
	Test   Expr
	Update Expr

	// for (Left in Right) Body / for (var Left in Right) Body
	ForInLeft  Expr
	ForInVar   *VarDecl
	ForInRight Expr
}

func (*Iter) stmtNode() {}

// Continue is `continue Label?;`.
type Continue struct {
	Meta
	Label *Identifier
}

func (*Continue) stmtNode() {}

// Break is `break Label?;`.
type Break struct {
	Meta
	Label *Identifier
}

func (*Break) stmtNode() {}

// Return is `return Exp?;`.
type Return struct {
	Meta
	Value Expr
}

func (*Return) stmtNode() {}

// Yield is `yield Exp?;`.
type Yield struct {
	Meta
	Value Expr
}

func (*Yield) stmtNode() {}

// With is `with (Exp) Body`.
type With struct {
	Meta
	Exp  Expr
	Body Stat
}

func (*With) stmtNode() {}

// CaseClause is one `case Exp: Stat*` arm of a switch.
type CaseClause struct {
	Meta
	Test  Expr
	Stats []Stat
}

// DefaultClause is the `default: Stat*` arm of a switch.
type DefaultClause struct {
	Meta
	Stats []Stat
}

// Switch is `switch (Exp) { CaseClause* DefaultClause? CaseClause* }`.
type Switch struct {
	Meta
	Disc     Expr
	Cases    []*CaseClause
	Default  *DefaultClause // nil if there is no default arm
}

func (*Switch) stmtNode() {}

// ThrowStat is `throw ExpSeq;`. The reference implementation never wires
// this production to a tree node; this is the obvious construction it was
// missing.
type ThrowStat struct {
	Meta
	Exps *ExpSeq
}

func (*ThrowStat) stmtNode() {}

// Try is `try Block (catch (Param?) Block)? (finally Block)?`.
type Try struct {
	Meta
	Block        *Block
	CatchParam   *Identifier // nil if there is no catch, or catch binds nothing
	CatchBlock   *Block      // nil if there is no catch clause
	FinallyBlock *Block      // nil if there is no finally clause
}

func (*Try) stmtNode() {}

// Debugger is a bare `debugger;`.
type Debugger struct{ Meta }

func (*Debugger) stmtNode() {}

// Labelled is `Label: Stat`.
type Labelled struct {
	Meta
	Label *Identifier
	Stat  Stat
}

func (*Labelled) stmtNode() {}

// EnumMember is one `Name (= Exp)?` entry in an EnumStat.
type EnumMember struct {
	Meta
	Name *Identifier
	Init Expr // optional
}

// EnumStat is `enum Name { EnumMember (, EnumMember)* }`.
type EnumStat struct {
	Meta
	Name    *Identifier
	Members []*EnumMember
}

func (*EnumStat) stmtNode() {}

// TypeAliasStat is `type Name = Type;`.
type TypeAliasStat struct {
	Meta
	Name *Identifier
	Type *Type
}

func (*TypeAliasStat) stmtNode() {}

// FuncDecl is a named function declaration.
type FuncDecl struct {
	Meta
	Name    *Identifier
	CallSig *CallSig
	Body    *FuncBody
}

func (*FuncDecl) stmtNode() {}

// FuncExpDecl wraps a function expression used in a statement position,
// e.g. as the right-hand side of a labelled or exported declaration.
type FuncExpDecl struct {
	Meta
	Func *Function
}

func (*FuncExpDecl) stmtNode() {}

// GenFuncDecl is a generator function declaration (`function* name(...)`).
// Its body is parsed the same as a regular function; generator-specific
// semantics (yield suspension) belong to a later evaluation stage.
type GenFuncDecl struct {
	Meta
	Name    *Identifier
	CallSig *CallSig
	Body    *FuncBody
}

func (*GenFuncDecl) stmtNode() {}

// PortedAlias is one `Name (as Alias)?` entry inside an import/export
// from-block's braces.
type PortedAlias struct {
	Meta
	Name  *Identifier
	Alias *Identifier // nil when there is no alias
}

// FromBlock is the `* (as Alias)? | Default?, ({Alias, ...})? from "mod"`
// grammar shared by import and export-from statements.
type FromBlock struct {
	Meta
	All        bool
	AllAlias   *Identifier
	Imported   *Identifier // default import, optional
	Aliases    []*PortedAlias
	FromValue  *Literal // string literal module specifier
}

// NamespaceName is `Identifier ('.' Identifier)*`.
type NamespaceName struct {
	Meta
	Names []*Identifier
}

// ImportAliasDecl is `import Name = NamespaceName;`.
type ImportAliasDecl struct {
	Meta
	Name      *Identifier
	Namespace *NamespaceName
}

// ImportStat is `import (FromBlock | ImportAliasDecl);`.
type ImportStat struct {
	Meta
	Alias     *ImportAliasDecl // set when this is the `import X = Y` form
	FromBlock *FromBlock       // set when this is the from-block form
}

func (*ImportStat) stmtNode() {}

// ExportStat is `export default? (FromBlock | Statement);`.
type ExportStat struct {
	Meta
	Default   bool
	FromBlock *FromBlock // set when exporting a from-block
	Stat      Stat       // set when exporting a statement
}

func (*ExportStat) stmtNode() {}

// NamespaceDecl is `namespace NamespaceName { SourceElements? }`.
type NamespaceDecl struct {
	Meta
	Name     *NamespaceName
	Elements *SourceElements
}

func (*NamespaceDecl) stmtNode() {}
