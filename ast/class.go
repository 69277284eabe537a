package ast

// AccessModifier is the public/private/protected prefix recognised on
// class members.
type AccessModifier int

const (
	AccessDefault AccessModifier = iota
	AccessPublic
	AccessPrivate
	AccessProtected
)

// Extends is the `extends TypeRef` clause of a class heritage.
type Extends struct {
	Meta
	Type *Type
}

// Implements is the `implements TypeRef (, TypeRef)*` clause of a class
// heritage.
type Implements struct {
	Meta
	Types []*Type
}

// ClassHeritage is the optional extends/implements pair following a class
// name and its type parameters.
type ClassHeritage struct {
	Meta
	Extends    *Extends
	Implements *Implements
}

// ClassElementKind distinguishes the seven member shapes a ClassTail holds.
type ClassElementKind int

const (
	ElementConstructor ClassElementKind = iota
	ElementProperty
	ElementMethod
	ElementGetter
	ElementSetter
	ElementIndex
	ElementAbstract
)

// ConstructorDecl is `constructor(FormalParas) Block`.
type ConstructorDecl struct {
	Meta
	Params *FormalParas
	Body   *Block
}

// PropertyDeclExp is a class property declaration:
// `modifier? static? readonly? Name ?? (: Type)? (= Exp)?;`.
type PropertyDeclExp struct {
	Meta
	Modifier  AccessModifier
	Static    bool
	ReadOnly  bool
	Name      *Identifier
	Optional  bool
	TypeAnnot *TypeAnnotation
	Init      Expr
}

// MethodDeclExp is a class method declaration:
// `modifier? static? async? Name CallSig (Block | ;)`.
type MethodDeclExp struct {
	Meta
	Modifier AccessModifier
	Static   bool
	Async    bool
	Name     *Identifier
	CallSig  *CallSig
	Body     *Block // nil for an abstract/overload signature with no body
}

// GetAccesser is `get Name(): Type Block`.
type GetAccesser struct {
	Meta
	Modifier   AccessModifier
	Static     bool
	Name       *Identifier
	ReturnType *TypeAnnotation
	Body       *Block
}

// SetAccesser is `set Name(Para) Block`.
type SetAccesser struct {
	Meta
	Modifier AccessModifier
	Static   bool
	Name     *Identifier
	Param    *Para
	Body     *Block
}

// IndexMemberDecl is `[Name: string|number]: Type;`, reusing the same
// index-signature shape as an object type member.
type IndexMemberDecl struct {
	Meta
	Sig *TypeMember
}

// AbsMemberDecl is an abstract member declaration inside an abstract
// class: `abstract modifier? Name CallSig;` with no body permitted.
type AbsMemberDecl struct {
	Meta
	Modifier AccessModifier
	Name     *Identifier
	CallSig  *CallSig
}

// ClassTail is the brace-delimited member list of a class body.
type ClassTail struct {
	Meta
	Constructor *ConstructorDecl // nil if the class declares none
	Members     []Node           // *PropertyDeclExp, *MethodDeclExp, *GetAccesser, *SetAccesser, *IndexMemberDecl, *AbsMemberDecl
}

// ClassDecl is `abstract? class Name TypeParas? ClassHeritage? ClassTail`.
type ClassDecl struct {
	Meta
	Abstract  bool
	Name      *Identifier
	TypeParas *TypeParas
	Heritage  *ClassHeritage
	Tail      *ClassTail
}

func (*ClassDecl) stmtNode() {}

// InterfaceDecl is
// `interface Name TypeParas? (extends TypeRef (, TypeRef)*)? ObjectType`.
type InterfaceDecl struct {
	Meta
	Name      *Identifier
	TypeParas *TypeParas
	Extends   []*Type
	Members   []*TypeMember
}

func (*InterfaceDecl) stmtNode() {}
