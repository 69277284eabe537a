package astdump

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theSprog/astfront/parser"
)

func TestDotContainsOneNodePerASTNode(t *testing.T) {
	program, err := parser.Parse("let x = 1 + 2;")
	require.NoError(t, err)

	dot := Dot(program)
	require.Contains(t, dot, "graph vis {")
	require.Contains(t, dot, `label="x"`)
	require.Contains(t, dot, `label="1"`)
	require.Contains(t, dot, `label="*ast.Binary"`)
}

func TestDotStylesKeywordsRed(t *testing.T) {
	program, err := parser.Parse("if (true) { x; }")
	require.NoError(t, err)

	dot := Dot(program)
	require.Contains(t, dot, `label="if", color=red`)
}

func TestDotHasOneEdgePerParentChildPair(t *testing.T) {
	program, err := parser.Parse("x + y;")
	require.NoError(t, err)

	dot := Dot(program)
	require.Contains(t, dot, "--")
}

func TestRenderPNGIsNoopWithoutDotBinary(t *testing.T) {
	// RenderPNG must not error when the dot binary cannot be resolved; it
	// simply skips rendering.
	t.Setenv("PATH", "")
	err := RenderPNG("/tmp/does-not-matter.dot")
	require.NoError(t, err)
}
