// Package astdump renders a parsed syntax tree as Graphviz DOT, one node
// per ast.Node and one edge per parent/child relationship, with
// keyword-bearing nodes styled in red — the same convention the reference
// compiler's own visualiser uses.
package astdump

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/theSprog/astfront/ast"
	"github.com/theSprog/astfront/internal/token"
)

// Dot renders root as a standalone Graphviz DOT graph.
func Dot(root ast.Node) string {
	var b strings.Builder
	b.WriteString("graph vis {\n")
	writeNode(&b, root)
	writeEdges(&b, root)
	b.WriteString("}\n")
	return b.String()
}

func nodeName(n ast.Node) string {
	return fmt.Sprintf("node%p", n)
}

func writeNode(b *strings.Builder, n ast.Node) {
	b.WriteString(label(n))
	for _, child := range ast.Children(n) {
		writeNode(b, child)
	}
}

func writeEdges(b *strings.Builder, n ast.Node) {
	for _, child := range ast.Children(n) {
		fmt.Fprintf(b, "\t%s -- %s\n", nodeName(n), nodeName(child))
		writeEdges(b, child)
	}
}

// label renders one node's DOT declaration. A node whose description
// matches a reserved word in the fixed keyword table is styled red.
func label(n ast.Node) string {
	desc := describe(n)
	if token.IsKeyword(token.Type(desc)) {
		return fmt.Sprintf("\t%s[label=%q, color=red]\n", nodeName(n), desc)
	}
	return fmt.Sprintf("\t%s[label=%q]\n", nodeName(n), desc)
}

// describe returns a short human-readable tag for a node: the name of an
// identifier, the raw text of a literal, the keyword of a keyword-led
// node, or its Go type name otherwise.
func describe(n ast.Node) string {
	switch v := n.(type) {
	case *ast.Identifier:
		return v.Name
	case *ast.Literal:
		return v.Raw
	case *ast.This:
		return "this"
	case *ast.Super:
		return "super"
	case *ast.If:
		return "if"
	case *ast.Iter:
		switch v.Kind {
		case ast.IterWhile:
			return "while"
		case ast.IterDoWhile:
			return "do"
		default:
			return "for"
		}
	case *ast.Continue:
		return "continue"
	case *ast.Break:
		return "break"
	case *ast.Return:
		return "return"
	case *ast.Yield:
		return "yield"
	case *ast.With:
		return "with"
	case *ast.Switch:
		return "switch"
	case *ast.ThrowStat:
		return "throw"
	case *ast.Try:
		return "try"
	case *ast.Debugger:
		return "debugger"
	case *ast.ClassDecl:
		return "class"
	case *ast.InterfaceDecl:
		return "interface"
	case *ast.NamespaceDecl:
		return "namespace"
	case *ast.ImportStat:
		return "import"
	case *ast.ExportStat:
		return "export"
	case *ast.EnumStat:
		return "enum"
	case *ast.TypeAliasStat:
		return "type"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// RenderPNG renders the DOT file already written at dotPath to a sibling
// .png file if the `dot` binary is on $PATH. A missing `dot` binary is not
// an error; the DOT file alone is still useful.
func RenderPNG(dotPath string) error {
	if _, err := exec.LookPath("dot"); err != nil {
		return nil
	}
	pngPath := strings.TrimSuffix(dotPath, ".dot") + ".png"
	cmd := exec.Command("dot", "-Tpng", dotPath, "-o", pngPath)
	return cmd.Run()
}
