package diag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexerErrorMessageFormat(t *testing.T) {
	err := &LexerError{Line: 12, Message: "unterminated string"}
	require.Equal(t, "Line[12]: unterminated string", err.Error())
}

func TestParserErrorMessageFormat(t *testing.T) {
	err := &ParserError{Filename: "main.ts", Line: 3, Message: "expected [;] but found EOF"}
	require.Equal(t, "main.ts: SyntaxError: near Line[3]:\nexpected [;] but found EOF", err.Error())
}

func TestUnsupportedBuildsNormativeMessage(t *testing.T) {
	err := Unsupported("main.ts", 7, "Type Generic")
	require.Equal(t, "Sorry, but now Type Generic is not supported", err.Message)
	require.Equal(t, CategoryUnsupported, err.Category)
	require.Equal(t, "main.ts: SyntaxError: near Line[7]:\nSorry, but now Type Generic is not supported", err.Error())
}

func TestMismatchOmitsWherePrefixWhenEmpty(t *testing.T) {
	err := Mismatch("main.ts", 1, "", "IDENT", "NUMBER '1'")
	require.Equal(t, "expected [IDENT] but found NUMBER '1'", err.Message)
	require.Equal(t, CategoryMismatch, err.Category)
}

func TestMismatchPrependsWhereWhenPresent(t *testing.T) {
	err := Mismatch("main.ts", 1, "formal parameter", "IDENT", "NUMBER '1'")
	require.Equal(t, "formal parameter: expected [IDENT] but found NUMBER '1'", err.Message)
}

func TestMissingSemicolonMentionsPreviousLine(t *testing.T) {
	err := MissingSemicolon("main.ts", 5, 4)
	require.Equal(t, "a semicolon was probably omitted at the end of line 4", err.Message)
	require.Equal(t, CategoryMissingSemicolon, err.Category)
}
