package ast

// TypeKind distinguishes the concrete shape of a Type node.
type TypeKind int

const (
	TypePredefined TypeKind = iota
	TypeReference
	TypeArray
	TypeTuple
	TypeObject
	TypeFunction
	TypeQuery
)

// PredefinedKind enumerates the built-in type names.
type PredefinedKind int

const (
	PredefAny PredefinedKind = iota
	PredefNumber
	PredefBoolean
	PredefString
	PredefVoid
)

// Type is a tagged union over the type-expression grammar. Exactly the
// fields relevant to Kind are populated; the rest are zero.
type Type struct {
	Meta
	Kind TypeKind

	Predefined PredefinedKind // TypePredefined

	RefName    *NamespaceName // TypeReference
	RefArgs    []*Type        // TypeReference, optional type arguments

	ElemType *Type // TypeArray: element type before the trailing []

	TupleElems []*Type // TypeTuple

	ObjectMembers []*TypeMember // TypeObject

	FuncParams *FormalParas // TypeFunction
	FuncResult *Type        // TypeFunction

	QueryExp *Identifier // TypeQuery: typeof Identifier
}

// TypeAnnotation is the `: Type` suffix attached to a parameter, variable,
// or property declaration.
type TypeAnnotation struct {
	Meta
	Type *Type
}

// TypeMemberKind distinguishes the five member-signature forms that can
// appear inside an object type or interface body.
type TypeMemberKind int

const (
	MemberProperty TypeMemberKind = iota
	MemberMethod
	MemberCallSig
	MemberConstructSig
	MemberIndexSig
)

// TypeMember is one entry of an object type or interface body.
type TypeMember struct {
	Meta
	Kind TypeMemberKind

	Name     *Identifier // MemberProperty, MemberMethod
	Optional bool        // MemberProperty, MemberMethod

	PropertyType *TypeAnnotation // MemberProperty

	CallSig *CallSig // MemberMethod, MemberCallSig, MemberConstructSig

	IndexParamName *Identifier     // MemberIndexSig
	IndexParamType *Type           // MemberIndexSig: string or number
	IndexResult    *TypeAnnotation // MemberIndexSig
}

// Para is one ordinary parameter: `Ident ?? (: Type)? (= Exp)?`.
type Para struct {
	Meta
	Name      *Identifier
	Optional  bool
	TypeAnnot *TypeAnnotation
	Init      Expr
}

// RestPara is the trailing `...Ident (: Type)?` parameter.
type RestPara struct {
	Meta
	Name      *Identifier
	TypeAnnot *TypeAnnotation
}

// FormalParas is a parameter list: zero or more ordinary parameters
// followed by an optional rest parameter.
type FormalParas struct {
	Meta
	Params []*Para
	Rest   *RestPara // nil if there is no rest parameter
}

// TypeParas is the `<T, U, ...>` clause recognised after a class, function,
// or interface name. Parsing always rejects it with a diag.Unsupported
// error once the opening `<` is consumed; this node exists only so the
// speculative parser has something to hand back before that rejection is
// raised.
type TypeParas struct {
	Meta
	Names []*Identifier
}

// CallSig is `TypeParas? (FormalParas?) (: Type)?`, shared by function
// declarations, function expressions, method signatures, and call/
// construct signatures inside object types.
type CallSig struct {
	Meta
	TypeParas  *TypeParas
	Params     *FormalParas
	ReturnType *TypeAnnotation
}

// FuncBody is a function's `{ SourceElements? }`. An arrow function whose
// source form was a bare expression is desugared into a FuncBody holding a
// single synthetic Return statement wrapping that expression.
type FuncBody struct {
	Meta
	Elements *SourceElements
}
