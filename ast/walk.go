package ast

import "iter"

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range children(node) {
		Walk(v, child)
	}
}

// Inspect traverses an AST in depth-first order. It calls f(node) for each
// node; if f returns true, Inspect invokes f recursively for each of the
// non-nil children of node.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Preorder returns an iterator over all the nodes of the AST rooted at node
// in depth-first preorder.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		var visit func(Node) bool
		visit = func(n Node) bool {
			if n == nil {
				return true
			}
			if !yield(n) {
				return false
			}
			for _, child := range children(n) {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(root)
	}
}

// Children returns the direct, non-nil child nodes of n in source order.
// It is the same traversal Walk/Preorder use internally, exported for
// consumers (such as the Graphviz visualiser) that need one level of
// structure without a full visitor.
func Children(n Node) []Node { return children(n) }

// children returns the direct, non-nil child nodes of n in source order.
// Nil interface values inside the slices below are filtered implicitly by
// Walk/Preorder's own nil check on entry, so callers need not pre-filter.
func children(n Node) []Node {
	switch n := n.(type) {
	case *Program:
		if n.Elements == nil {
			return nil
		}
		return []Node{n.Elements}
	case *SourceElements:
		out := make([]Node, len(n.Stats))
		for i, s := range n.Stats {
			out[i] = s
		}
		return out
	case *Unknown:
		return nil

	case *Block:
		out := make([]Node, len(n.Stats))
		for i, s := range n.Stats {
			out[i] = s
		}
		return out
	case *Empty:
		return nil
	case *ExpStat:
		return []Node{n.Exp}
	case *VarStat:
		out := make([]Node, 0, len(n.Decls))
		for _, d := range n.Decls {
			out = append(out, d)
		}
		return out
	case *VarDecl:
		out := []Node{n.Name}
		if n.TypeAnnot != nil {
			out = append(out, n.TypeAnnot)
		}
		if n.Init != nil {
			out = append(out, n.Init)
		}
		return out
	case *If:
		out := []Node{n.Cond, n.Then}
		if n.Else != nil {
			out = append(out, n.Else)
		}
		return out
	case *Iter:
		if n.Kind == IterDoWhile {
			return []Node{n.Body, n.Cond}
		}
		var out []Node
		if n.Init != nil {
			out = append(out, n.Init)
		}
		if n.Test != nil {
			out = append(out, n.Test)
		}
		if n.Update != nil {
			out = append(out, n.Update)
		}
		if n.Cond != nil {
			out = append(out, n.Cond)
		}
		if n.ForInVar != nil {
			out = append(out, n.ForInVar)
		}
		if n.ForInLeft != nil {
			out = append(out, n.ForInLeft)
		}
		if n.ForInRight != nil {
			out = append(out, n.ForInRight)
		}
		if n.Body != nil {
			out = append(out, n.Body)
		}
		return out
	case *Continue:
		if n.Label != nil {
			return []Node{n.Label}
		}
		return nil
	case *Break:
		if n.Label != nil {
			return []Node{n.Label}
		}
		return nil
	case *Return:
		if n.Value != nil {
			return []Node{n.Value}
		}
		return nil
	case *Yield:
		if n.Value != nil {
			return []Node{n.Value}
		}
		return nil
	case *With:
		return []Node{n.Exp, n.Body}
	case *Switch:
		out := []Node{n.Disc}
		for _, c := range n.Cases {
			out = append(out, c)
		}
		if n.Default != nil {
			out = append(out, n.Default)
		}
		return out
	case *CaseClause:
		out := []Node{n.Test}
		for _, s := range n.Stats {
			out = append(out, s)
		}
		return out
	case *DefaultClause:
		out := make([]Node, len(n.Stats))
		for i, s := range n.Stats {
			out[i] = s
		}
		return out
	case *ThrowStat:
		if n.Exps != nil {
			return []Node{n.Exps}
		}
		return nil
	case *Try:
		out := []Node{n.Block}
		if n.CatchParam != nil {
			out = append(out, n.CatchParam)
		}
		if n.CatchBlock != nil {
			out = append(out, n.CatchBlock)
		}
		if n.FinallyBlock != nil {
			out = append(out, n.FinallyBlock)
		}
		return out
	case *Debugger:
		return nil
	case *Labelled:
		return []Node{n.Label, n.Stat}
	case *EnumStat:
		out := []Node{n.Name}
		for _, m := range n.Members {
			out = append(out, m)
		}
		return out
	case *EnumMember:
		out := []Node{n.Name}
		if n.Init != nil {
			out = append(out, n.Init)
		}
		return out
	case *TypeAliasStat:
		return []Node{n.Name, n.Type}
	case *FuncDecl:
		out := []Node{n.Name, n.CallSig}
		if n.Body != nil {
			out = append(out, n.Body)
		}
		return out
	case *FuncExpDecl:
		return []Node{n.Func}
	case *GenFuncDecl:
		out := []Node{n.Name, n.CallSig}
		if n.Body != nil {
			out = append(out, n.Body)
		}
		return out
	case *ImportStat:
		if n.Alias != nil {
			return []Node{n.Alias}
		}
		if n.FromBlock != nil {
			return []Node{n.FromBlock}
		}
		return nil
	case *ImportAliasDecl:
		return []Node{n.Name, n.Namespace}
	case *ExportStat:
		if n.FromBlock != nil {
			return []Node{n.FromBlock}
		}
		if n.Stat != nil {
			return []Node{n.Stat}
		}
		return nil
	case *FromBlock:
		var out []Node
		if n.AllAlias != nil {
			out = append(out, n.AllAlias)
		}
		if n.Imported != nil {
			out = append(out, n.Imported)
		}
		for _, a := range n.Aliases {
			out = append(out, a)
		}
		if n.FromValue != nil {
			out = append(out, n.FromValue)
		}
		return out
	case *PortedAlias:
		out := []Node{n.Name}
		if n.Alias != nil {
			out = append(out, n.Alias)
		}
		return out
	case *NamespaceName:
		out := make([]Node, len(n.Names))
		for i, name := range n.Names {
			out[i] = name
		}
		return out
	case *NamespaceDecl:
		out := []Node{n.Name}
		if n.Elements != nil {
			out = append(out, n.Elements)
		}
		return out

	case *ClassDecl:
		out := []Node{n.Name}
		if n.Heritage != nil {
			out = append(out, n.Heritage)
		}
		if n.Tail != nil {
			out = append(out, n.Tail)
		}
		return out
	case *ClassHeritage:
		var out []Node
		if n.Extends != nil {
			out = append(out, n.Extends)
		}
		if n.Implements != nil {
			out = append(out, n.Implements)
		}
		return out
	case *Extends:
		return []Node{n.Type}
	case *Implements:
		out := make([]Node, len(n.Types))
		for i, t := range n.Types {
			out[i] = t
		}
		return out
	case *ClassTail:
		var out []Node
		if n.Constructor != nil {
			out = append(out, n.Constructor)
		}
		for _, m := range n.Members {
			out = append(out, m)
		}
		return out
	case *ConstructorDecl:
		out := []Node{n.Params}
		if n.Body != nil {
			out = append(out, n.Body)
		}
		return out
	case *PropertyDeclExp:
		out := []Node{n.Name}
		if n.TypeAnnot != nil {
			out = append(out, n.TypeAnnot)
		}
		if n.Init != nil {
			out = append(out, n.Init)
		}
		return out
	case *MethodDeclExp:
		out := []Node{n.Name, n.CallSig}
		if n.Body != nil {
			out = append(out, n.Body)
		}
		return out
	case *GetAccesser:
		out := []Node{n.Name}
		if n.ReturnType != nil {
			out = append(out, n.ReturnType)
		}
		out = append(out, n.Body)
		return out
	case *SetAccesser:
		return []Node{n.Name, n.Param, n.Body}
	case *IndexMemberDecl:
		return []Node{n.Sig}
	case *AbsMemberDecl:
		return []Node{n.Name, n.CallSig}
	case *InterfaceDecl:
		out := []Node{n.Name}
		for _, t := range n.Extends {
			out = append(out, t)
		}
		for _, m := range n.Members {
			out = append(out, m)
		}
		return out

	case *TypeMember:
		var out []Node
		if n.Name != nil {
			out = append(out, n.Name)
		}
		if n.PropertyType != nil {
			out = append(out, n.PropertyType)
		}
		if n.CallSig != nil {
			out = append(out, n.CallSig)
		}
		if n.IndexParamName != nil {
			out = append(out, n.IndexParamName)
		}
		if n.IndexParamType != nil {
			out = append(out, n.IndexParamType)
		}
		if n.IndexResult != nil {
			out = append(out, n.IndexResult)
		}
		return out
	case *Type:
		var out []Node
		if n.RefName != nil {
			out = append(out, n.RefName)
		}
		for _, a := range n.RefArgs {
			out = append(out, a)
		}
		if n.ElemType != nil {
			out = append(out, n.ElemType)
		}
		for _, t := range n.TupleElems {
			out = append(out, t)
		}
		for _, m := range n.ObjectMembers {
			out = append(out, m)
		}
		if n.FuncParams != nil {
			out = append(out, n.FuncParams)
		}
		if n.FuncResult != nil {
			out = append(out, n.FuncResult)
		}
		if n.QueryExp != nil {
			out = append(out, n.QueryExp)
		}
		return out
	case *TypeAnnotation:
		return []Node{n.Type}
	case *Para:
		var out []Node
		out = append(out, n.Name)
		if n.TypeAnnot != nil {
			out = append(out, n.TypeAnnot)
		}
		if n.Init != nil {
			out = append(out, n.Init)
		}
		return out
	case *RestPara:
		out := []Node{n.Name}
		if n.TypeAnnot != nil {
			out = append(out, n.TypeAnnot)
		}
		return out
	case *FormalParas:
		out := make([]Node, 0, len(n.Params)+1)
		for _, p := range n.Params {
			out = append(out, p)
		}
		if n.Rest != nil {
			out = append(out, n.Rest)
		}
		return out
	case *TypeParas:
		out := make([]Node, len(n.Names))
		for i, name := range n.Names {
			out[i] = name
		}
		return out
	case *CallSig:
		var out []Node
		if n.TypeParas != nil {
			out = append(out, n.TypeParas)
		}
		if n.Params != nil {
			out = append(out, n.Params)
		}
		if n.ReturnType != nil {
			out = append(out, n.ReturnType)
		}
		return out
	case *FuncBody:
		if n.Elements != nil {
			return []Node{n.Elements}
		}
		return nil

	case *Unary:
		return []Node{n.Operand}
	case *Binary:
		return []Node{n.Left, n.Right}
	case *Ternary:
		return []Node{n.Cond, n.Consequent, n.Alternate}
	case *Assign:
		return []Node{n.Target, n.Value}
	case *Group:
		return []Node{n.Inner}
	case *ExpSeq:
		out := make([]Node, len(n.Exps))
		for i, e := range n.Exps {
			out[i] = e
		}
		return out
	case *Args:
		if n.Exps != nil {
			return []Node{n.Exps}
		}
		return nil
	case *Call:
		out := []Node{n.Callee}
		if n.Args != nil {
			out = append(out, n.Args)
		}
		return out
	case *Index:
		return []Node{n.Target, n.Index}
	case *Dot:
		return []Node{n.Target, n.Name}
	case *New:
		out := []Node{n.Callee}
		if n.Args != nil {
			out = append(out, n.Args)
		}
		return out
	case *ArrowFunc:
		out := []Node{n.Params}
		if n.Body != nil {
			out = append(out, n.Body)
		}
		return out
	case *Function:
		var out []Node
		if n.Name != nil {
			out = append(out, n.Name)
		}
		out = append(out, n.CallSig)
		if n.Body != nil {
			out = append(out, n.Body)
		}
		return out
	case *Array:
		out := make([]Node, len(n.Elements))
		for i, e := range n.Elements {
			out[i] = e
		}
		return out
	case *This:
		return nil
	case *Super:
		return nil
	case *Identifier:
		return nil
	case *Literal:
		return nil
	}
	return nil
}
