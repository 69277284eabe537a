package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theSprog/astfront/ast"
)

func TestVarDeclWithPredefinedAndArrayTypes(t *testing.T) {
	stat := singleStat(t, "let xs: number[] = [1, 2, 3];")
	varStat, ok := stat.(*ast.VarStat)
	require.True(t, ok)
	require.Equal(t, ast.VarLet, varStat.Modifier)
	require.Len(t, varStat.Decls, 1)
	annot := varStat.Decls[0].TypeAnnot
	require.NotNil(t, annot)
	require.Equal(t, ast.TypeArray, annot.Type.Kind)
	require.Equal(t, ast.TypePredefined, annot.Type.ElemType.Kind)
	require.Equal(t, ast.PredefNumber, annot.Type.ElemType.Predefined)
}

func TestObjectTypeAnnotation(t *testing.T) {
	stat := singleStat(t, "let p: { x: number; y: number }; ")
	varStat := stat.(*ast.VarStat)
	typ := varStat.Decls[0].TypeAnnot.Type
	require.Equal(t, ast.TypeObject, typ.Kind)
	require.Len(t, typ.ObjectMembers, 2)
	require.Equal(t, "x", typ.ObjectMembers[0].Name.Name)
}

func TestFunctionTypeAnnotation(t *testing.T) {
	stat := singleStat(t, "let f: (a: number) => string;")
	varStat := stat.(*ast.VarStat)
	typ := varStat.Decls[0].TypeAnnot.Type
	require.Equal(t, ast.TypeFunction, typ.Kind)
	require.Len(t, typ.FuncParams.Params, 1)
	require.Equal(t, ast.TypePredefined, typ.FuncResult.Kind)
	require.Equal(t, ast.PredefString, typ.FuncResult.Predefined)
}

func TestTupleTypeAnnotation(t *testing.T) {
	stat := singleStat(t, "let pair: [number, string];")
	varStat := stat.(*ast.VarStat)
	typ := varStat.Decls[0].TypeAnnot.Type
	require.Equal(t, ast.TypeTuple, typ.Kind)
	require.Len(t, typ.TupleElems, 2)
}

func TestTypeofQueryType(t *testing.T) {
	stat := singleStat(t, "let y: typeof x;")
	varStat := stat.(*ast.VarStat)
	typ := varStat.Decls[0].TypeAnnot.Type
	require.Equal(t, ast.TypeQuery, typ.Kind)
	require.Equal(t, "x", typ.QueryExp.Name)
}

func TestIndexSignatureInInterface(t *testing.T) {
	stat := singleStat(t, `
interface Dict {
	[key: string]: number;
}
`)
	iface := stat.(*ast.InterfaceDecl)
	require.Len(t, iface.Members, 1)
	require.Equal(t, ast.MemberIndexSig, iface.Members[0].Kind)
	require.Equal(t, "key", iface.Members[0].IndexParamName.Name)
}

func TestFunctionDeclarationWithTypedParamsAndReturn(t *testing.T) {
	stat := singleStat(t, "function add(a: number, b: number): number { return a + b; }")
	fn, ok := stat.(*ast.FuncDecl)
	require.True(t, ok)
	require.Equal(t, "add", fn.Name.Name)
	require.Len(t, fn.CallSig.Params.Params, 2)
	require.NotNil(t, fn.CallSig.ReturnType)
	require.NotNil(t, fn.Body.Elements)
}

func TestGeneratorFunctionDeclaration(t *testing.T) {
	stat := singleStat(t, "function* gen() { yield 1; }")
	_, ok := stat.(*ast.GenFuncDecl)
	require.True(t, ok)
}

func TestRestParameter(t *testing.T) {
	stat := singleStat(t, "function f(...rest: number[]) { rest; }")
	fn := stat.(*ast.FuncDecl)
	require.Nil(t, fn.CallSig.Params.Params)
	require.NotNil(t, fn.CallSig.Params.Rest)
	require.Equal(t, "rest", fn.CallSig.Params.Rest.Name.Name)
}

func TestOptionalParameterAndDefaultValue(t *testing.T) {
	stat := singleStat(t, "function f(a?: number, b: number = 1) { a; }")
	fn := stat.(*ast.FuncDecl)
	require.True(t, fn.CallSig.Params.Params[0].Optional)
	require.NotNil(t, fn.CallSig.Params.Params[1].Init)
}
