package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theSprog/astfront/ast"
	"github.com/theSprog/astfront/internal/lexer"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, err := Parse(src)
	require.NoError(t, err, "source: %s", src)
	require.NotNil(t, program)
	return program
}

func singleStat(t *testing.T, src string) ast.Stat {
	t.Helper()
	program := mustParse(t, src)
	require.NotNil(t, program.Elements)
	require.Len(t, program.Elements.Stats, 1)
	return program.Elements.Stats[0]
}

func TestEmptySourceProducesNilElements(t *testing.T) {
	program := mustParse(t, "")
	require.Nil(t, program.Elements)
}

func TestSpanBeginNeverAfterEnd(t *testing.T) {
	program := mustParse(t, "let x = 1;\nlet y = 2;\n")
	ast.Inspect(program, func(n ast.Node) bool {
		if n == nil {
			return true
		}
		span := n.Pos()
		require.LessOrEqual(t, span.Begin, span.End, "%T", n)
		return true
	})
}

func TestNodeIDsAreUniqueAndOrdered(t *testing.T) {
	program := mustParse(t, "let x = 1 + 2 * 3;\nif (x) { x = x - 1; }")
	seen := make(map[int]bool)
	var last int
	require.NotNil(t, program.Elements)
	for _, s := range program.Elements.Stats {
		switch v := s.(type) {
		case *ast.VarStat:
			require.False(t, seen[v.ID])
			seen[v.ID] = true
			require.Greater(t, v.ID, last)
			last = v.ID
		case *ast.If:
			require.False(t, seen[v.ID])
			seen[v.ID] = true
			require.Greater(t, v.ID, last)
			last = v.ID
		}
	}
}

func TestUnknownNeverAppearsInASuccessfulParse(t *testing.T) {
	program := mustParse(t, "let x = 1;")
	ast.Inspect(program, func(n ast.Node) bool {
		if _, ok := n.(*ast.Unknown); ok {
			t.Fatalf("Unknown sentinel present in a successful parse")
		}
		return true
	})
}

func TestParseConsumesInputThroughEOF(t *testing.T) {
	program := mustParse(t, "let x = 1;")
	require.NotNil(t, program)
}

func TestOperatorPrecedenceMulBindsTighterThanAdd(t *testing.T) {
	stat := singleStat(t, "1 + 2 * 3;")
	exp := stat.(*ast.ExpStat).Exp
	bin, ok := exp.(*ast.Binary)
	require.True(t, ok, "%T", exp)
	require.Equal(t, ast.OpPlus, bin.Op)
	require.IsType(t, &ast.Literal{}, bin.Left)
	rhs, ok := bin.Right.(*ast.Binary)
	require.True(t, ok, "%T", bin.Right)
	require.Equal(t, ast.OpMul, rhs.Op)
}

func TestTernaryChainsRightAssociatively(t *testing.T) {
	stat := singleStat(t, "a ? b : c ? d : e;")
	exp := stat.(*ast.ExpStat).Exp
	outer, ok := exp.(*ast.Ternary)
	require.True(t, ok, "%T", exp)
	require.IsType(t, &ast.Identifier{}, outer.Cond)
	require.IsType(t, &ast.Identifier{}, outer.Consequent)
	inner, ok := outer.Alternate.(*ast.Ternary)
	require.True(t, ok, "%T", outer.Alternate)
	require.IsType(t, &ast.Identifier{}, inner.Cond)
}

func TestAssignmentNestsRightAssociatively(t *testing.T) {
	stat := singleStat(t, "a = b = c;")
	exp := stat.(*ast.ExpStat).Exp
	outer, ok := exp.(*ast.Assign)
	require.True(t, ok, "%T", exp)
	require.Equal(t, ast.OpAssign, outer.Op)
	inner, ok := outer.Value.(*ast.Assign)
	require.True(t, ok, "%T", outer.Value)
	require.Equal(t, ast.OpAssign, inner.Op)
}

func TestParenGroupVsArrowDisambiguation(t *testing.T) {
	stat := singleStat(t, "(x) => x + 1;")
	exp := stat.(*ast.ExpStat).Exp
	arrow, ok := exp.(*ast.ArrowFunc)
	require.True(t, ok, "%T", exp)
	require.Len(t, arrow.Params.Params, 1)
	require.Equal(t, "x", arrow.Params.Params[0].Name.Name)

	stat2 := singleStat(t, "(x + 1);")
	exp2 := stat2.(*ast.ExpStat).Exp
	group, ok := exp2.(*ast.Group)
	require.True(t, ok, "%T", exp2)
	require.IsType(t, &ast.Binary{}, group.Inner)
}

func TestSingleParamArrowShortcut(t *testing.T) {
	stat := singleStat(t, "x => x * 2;")
	arrow, ok := stat.(*ast.ExpStat).Exp.(*ast.ArrowFunc)
	require.True(t, ok)
	require.Len(t, arrow.Params.Params, 1)
	require.Equal(t, "x", arrow.Params.Params[0].Name.Name)
}

func TestUnaryCannotBeBothPrefixAndPostfix(t *testing.T) {
	// `++x++` would require chaining a postfix operator onto a node that
	// already carries a prefix operator; the grammar makes this
	// structurally unreachable by recursing to parseBaseExp (no postfix
	// chase) after consuming a prefix operator.
	stat := singleStat(t, "++x;")
	unary, ok := stat.(*ast.ExpStat).Exp.(*ast.Unary)
	require.True(t, ok)
	require.Equal(t, ast.OpPreInc, unary.Op)
	require.False(t, unary.Postfix)
}

func TestImportDefaultAndAliasedFromBlock(t *testing.T) {
	stat := singleStat(t, `import Def, { A as B, C } from "mod";`)
	imp, ok := stat.(*ast.ImportStat)
	require.True(t, ok)
	require.Nil(t, imp.Alias)
	require.NotNil(t, imp.FromBlock)
	require.Equal(t, "Def", imp.FromBlock.Imported.Name)
	require.Len(t, imp.FromBlock.Aliases, 2)
	require.Equal(t, "A", imp.FromBlock.Aliases[0].Name.Name)
	require.Equal(t, "B", imp.FromBlock.Aliases[0].Alias.Name)
	require.Nil(t, imp.FromBlock.Aliases[1].Alias)
	require.Equal(t, "mod", imp.FromBlock.FromValue.String)
}

func TestImportAliasDeclForm(t *testing.T) {
	stat := singleStat(t, "import X = A.B.C;")
	imp, ok := stat.(*ast.ImportStat)
	require.True(t, ok)
	require.NotNil(t, imp.Alias)
	require.Equal(t, "X", imp.Alias.Name.Name)
	require.Equal(t, []string{"A", "B", "C"}, namesOf(imp.Alias.Namespace))
}

func namesOf(ns *ast.NamespaceName) []string {
	var out []string
	for _, n := range ns.Names {
		out = append(out, n.Name)
	}
	return out
}

func TestBareExportIsRejected(t *testing.T) {
	_, err := Parse("export;")
	require.Error(t, err)
}

func TestNestedExportIsRejected(t *testing.T) {
	_, err := Parse("export export let x = 1;")
	require.Error(t, err)
}

func TestClassWithHeritageAndMembers(t *testing.T) {
	src := `
class Dog extends Animal implements Named {
	static readonly kind: string = "dog";
	private name: string;
	constructor(name: string) {
		this.name = name;
	}
	get label(): string {
		return this.name;
	}
}
`
	stat := singleStat(t, src)
	decl, ok := stat.(*ast.ClassDecl)
	require.True(t, ok)
	require.False(t, decl.Abstract)
	require.Equal(t, "Dog", decl.Name.Name)
	require.NotNil(t, decl.Heritage)
	require.NotNil(t, decl.Heritage.Extends)
	require.NotNil(t, decl.Heritage.Implements)
	require.Len(t, decl.Heritage.Implements.Types, 1)
	require.NotNil(t, decl.Tail.Constructor)
	require.Len(t, decl.Tail.Constructor.Params.Params, 1)

	var sawField, sawGetter bool
	for _, member := range decl.Tail.Members {
		switch v := member.(type) {
		case *ast.PropertyDeclExp:
			if v.Name.Name == "kind" {
				require.True(t, v.Static)
				require.True(t, v.ReadOnly)
				sawField = true
			}
		case *ast.GetAccesser:
			require.Equal(t, "label", v.Name.Name)
			sawGetter = true
		}
	}
	require.True(t, sawField, "static readonly field not found")
	require.True(t, sawGetter, "getter not found")
}

func TestTypeGenericsAreRecognizedThenRejected(t *testing.T) {
	_, err := Parse("class Box<T> {}")
	require.Error(t, err)
}

func TestThrowStatBuildsExpSeqNode(t *testing.T) {
	stat := singleStat(t, `throw new Error("boom");`)
	throw, ok := stat.(*ast.ThrowStat)
	require.True(t, ok)
	require.NotNil(t, throw.Exps)
	require.Len(t, throw.Exps.Exps, 1)
	require.IsType(t, &ast.New{}, throw.Exps.Exps[0])
}

func TestLabelledStatementIsReachable(t *testing.T) {
	stat := singleStat(t, "outer: while (true) { break outer; }")
	labelled, ok := stat.(*ast.Labelled)
	require.True(t, ok)
	require.Equal(t, "outer", labelled.Label.Name)
	require.IsType(t, &ast.Iter{}, labelled.Stat)
}

func TestForVariants(t *testing.T) {
	classic := singleStat(t, "for (let i = 0; i < 10; i = i + 1) { i; }")
	iter, ok := classic.(*ast.Iter)
	require.True(t, ok)
	require.Equal(t, ast.IterFor, iter.Kind)
	require.NotNil(t, iter.Init)
	require.NotNil(t, iter.Test)
	require.NotNil(t, iter.Update)

	forVar := singleStat(t, "for (let k in obj) { k; }")
	iter2, ok := forVar.(*ast.Iter)
	require.True(t, ok)
	require.Equal(t, ast.IterForVar, iter2.Kind)
	require.NotNil(t, iter2.ForInVar)

	forIn := singleStat(t, "for (k in obj) { k; }")
	iter3, ok := forIn.(*ast.Iter)
	require.True(t, ok)
	require.Equal(t, ast.IterForIn, iter3.Kind)
	require.NotNil(t, iter3.ForInLeft)
}

func TestTryCatchFinally(t *testing.T) {
	stat := singleStat(t, `
try {
	risky();
} catch (e) {
	handle(e);
} finally {
	cleanup();
}
`)
	try, ok := stat.(*ast.Try)
	require.True(t, ok)
	require.NotNil(t, try.CatchParam)
	require.Equal(t, "e", try.CatchParam.Name)
	require.NotNil(t, try.CatchBlock)
	require.NotNil(t, try.FinallyBlock)
}

func TestSwitchWithSingleDefault(t *testing.T) {
	stat := singleStat(t, `
switch (x) {
	case 1:
		a();
	case 2:
		b();
	default:
		c();
}
`)
	sw, ok := stat.(*ast.Switch)
	require.True(t, ok)
	require.Len(t, sw.Cases, 2)
	require.NotNil(t, sw.Default)
}

func TestSwitchRejectsMultipleDefaults(t *testing.T) {
	_, err := Parse(`
switch (x) {
	default: a();
	default: b();
}
`)
	require.Error(t, err)
}

func TestEnumDecl(t *testing.T) {
	stat := singleStat(t, "enum Color { Red, Green = 2, Blue }")
	enum, ok := stat.(*ast.EnumStat)
	require.True(t, ok)
	require.Equal(t, "Color", enum.Name.Name)
	require.Len(t, enum.Members, 3)
	require.Nil(t, enum.Members[0].Init)
	require.NotNil(t, enum.Members[1].Init)
}

func TestNamespaceDecl(t *testing.T) {
	stat := singleStat(t, "namespace A.B { let x = 1; }")
	ns, ok := stat.(*ast.NamespaceDecl)
	require.True(t, ok)
	require.Equal(t, []string{"A", "B"}, namesOf(ns.Name))
	require.NotNil(t, ns.Elements)
}

func TestInterfaceDecl(t *testing.T) {
	stat := singleStat(t, `
interface Named {
	name: string;
	greet(): void;
}
`)
	iface, ok := stat.(*ast.InterfaceDecl)
	require.True(t, ok)
	require.Equal(t, "Named", iface.Name.Name)
	require.Len(t, iface.Members, 2)
}

func TestLexerErrorPropagatesWithNormativeMessage(t *testing.T) {
	_, err := Parse("let x = $;")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Line[")
}

func TestParserErrorHasNormativeFormat(t *testing.T) {
	_, err := Parse("let = 1;", WithFilename("bad.ts"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad.ts: SyntaxError: near Line[")
}

func TestMissingSemicolonHint(t *testing.T) {
	_, err := Parse("let x = 1 let y = 2;")
	require.Error(t, err)
	require.Contains(t, err.Error(), "semicolon was probably omitted")
}

func TestTryToRewindsCursorOnFailure(t *testing.T) {
	// parseForVarInStat consumes `for (` before discovering this is really
	// a for-in (not for-var-in) header and failing; tryTo must rewind the
	// cursor (and the lexer) all the way back so the next attempt can
	// still see the whole statement.
	p := New(lexer.New("for (a in b) { a; }"))
	_, err := tryTo(p, (*Parser).parseForVarInStat)
	require.Error(t, err)

	stat, err := p.parseStat()
	require.NoError(t, err)
	iter, ok := stat.(*ast.Iter)
	require.True(t, ok, "%T", stat)
	require.Equal(t, ast.IterForIn, iter.Kind)
}
