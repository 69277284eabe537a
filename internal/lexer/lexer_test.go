package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theSprog/astfront/internal/token"
)

func TestNextTokenPunctuationAndOperators(t *testing.T) {
	input := `a = 1 + 2 * (3 - 4) / 5 % 6;
b += 1; b -= 1; b *= 1; b /= 1; b %= 1;
c &= 1; c |= 1; c ^= 1; c <<= 1; c >>= 1; c >>>= 1;
d == e != f === g !== h;
i <= j >= k << l >> m >>> n;
o && p || !q;
r++ s-- ~t;
u?v:w;
x => x;
y.z[0];
...rest;`

	tests := []struct {
		typ     token.Type
		literal string
	}{
		{token.IDENT, "a"}, {token.ASSIGN, "="}, {token.NUMBER, "1"},
		{token.PLUS, "+"}, {token.NUMBER, "2"}, {token.MUL, "*"},
		{token.LPAREN, "("}, {token.NUMBER, "3"}, {token.MINUS, "-"},
		{token.NUMBER, "4"}, {token.RPAREN, ")"}, {token.DIV, "/"},
		{token.NUMBER, "5"}, {token.MOD, "%"}, {token.NUMBER, "6"}, {token.SEMICOLON, ";"},

		{token.IDENT, "b"}, {token.PLUS_ASSIGN, "+="}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"},
		{token.IDENT, "b"}, {token.MINUS_ASSIGN, "-="}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"},
		{token.IDENT, "b"}, {token.MUL_ASSIGN, "*="}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"},
		{token.IDENT, "b"}, {token.DIV_ASSIGN, "/="}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"},
		{token.IDENT, "b"}, {token.MOD_ASSIGN, "%="}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"},

		{token.IDENT, "c"}, {token.AND_ASSIGN, "&="}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"},
		{token.IDENT, "c"}, {token.OR_ASSIGN, "|="}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"},
		{token.IDENT, "c"}, {token.XOR_ASSIGN, "^="}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"},
		{token.IDENT, "c"}, {token.SHL_ASSIGN, "<<="}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"},
		{token.IDENT, "c"}, {token.SAR_ASSIGN, ">>="}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"},
		{token.IDENT, "c"}, {token.SHR_ASSIGN, ">>>="}, {token.NUMBER, "1"}, {token.SEMICOLON, ";"},

		{token.IDENT, "d"}, {token.EQ, "=="}, {token.IDENT, "e"}, {token.NEQ, "!="},
		{token.IDENT, "f"}, {token.IDEQ, "==="}, {token.IDENT, "g"}, {token.IDNEQ, "!=="},
		{token.IDENT, "h"}, {token.SEMICOLON, ";"},

		{token.IDENT, "i"}, {token.LE, "<="}, {token.IDENT, "j"}, {token.GE, ">="},
		{token.IDENT, "k"}, {token.SHL, "<<"}, {token.IDENT, "l"}, {token.SAR, ">>"},
		{token.IDENT, "m"}, {token.SHR, ">>>"}, {token.IDENT, "n"}, {token.SEMICOLON, ";"},

		{token.IDENT, "o"}, {token.AND, "&&"}, {token.IDENT, "p"}, {token.OR, "||"},
		{token.NOT, "!"}, {token.IDENT, "q"}, {token.SEMICOLON, ";"},

		{token.IDENT, "r"}, {token.INC, "++"}, {token.IDENT, "s"}, {token.DEC, "--"},
		{token.BITNOT, "~"}, {token.IDENT, "t"}, {token.SEMICOLON, ";"},

		{token.IDENT, "u"}, {token.QUESTION, "?"}, {token.IDENT, "v"}, {token.COLON, ":"},
		{token.IDENT, "w"}, {token.SEMICOLON, ";"},

		{token.IDENT, "x"}, {token.ARROW, "=>"}, {token.IDENT, "x"}, {token.SEMICOLON, ";"},

		{token.IDENT, "y"}, {token.DOT, "."}, {token.IDENT, "z"}, {token.LBRACKET, "["},
		{token.NUMBER, "0"}, {token.RBRACKET, "]"}, {token.SEMICOLON, ";"},

		{token.ELLIPSIS, "..."}, {token.IDENT, "rest"}, {token.SEMICOLON, ";"},

		{token.EOF, "$"},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.Next()
		require.NoError(t, err, "token %d", i)
		require.Equal(t, tt.typ, tok.Type, "token %d literal=%q", i, tok.Literal)
		require.Equal(t, tt.literal, tok.Literal, "token %d", i)
	}
}

func TestKeywordsLexAsKeywordsNotIdent(t *testing.T) {
	input := "class interface namespace enum readonly"
	want := []token.Type{token.CLASS, token.INTERFACE, token.NAMESPACE, token.ENUM, token.READONLY}
	l := New(input)
	for i, w := range want {
		tok, err := l.Next()
		require.NoError(t, err)
		require.Equal(t, w, tok.Type, "token %d", i)
	}
}

func TestNumberLiteralRadixForms(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0x1F", "0x1F"},
		{"0o17", "0o17"},
		{"017", "017"},
		{"0b101", "0b101"},
		{"42", "42"},
		{"3.14", "3.14"},
		{".5", ".5"},
		{"1e10", "1e10"},
		{"1.5e-3", "1.5e-3"},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok, err := l.Next()
		require.NoError(t, err, tt.input)
		require.Equal(t, token.NUMBER, tok.Type, tt.input)
		require.Equal(t, tt.want, tok.Literal, tt.input)
	}
}

func TestStringLiteralUnescaped(t *testing.T) {
	l := New(`"hello world"`)
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, token.STRING, tok.Type)
	require.Equal(t, "hello world", tok.Literal)
}

func TestStringLiteralEscapeIsFatal(t *testing.T) {
	l := New(`"bad \n escape"`)
	_, err := l.Next()
	require.Error(t, err)
}

func TestUnclosedStringIsFatal(t *testing.T) {
	l := New(`"unterminated`)
	_, err := l.Next()
	require.Error(t, err)
}

func TestCommentsAreSkipped(t *testing.T) {
	input := "a // line comment\n/* block\ncomment */ b"
	l := New(input)
	tok, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, "a", tok.Literal)
	require.Equal(t, 1, tok.Line)

	tok, err = l.Next()
	require.NoError(t, err)
	require.Equal(t, "b", tok.Literal)
	require.Equal(t, 3, tok.Line)
}

func TestLineTrackingAcrossNewlines(t *testing.T) {
	input := "a\nb\n\nc"
	l := New(input)
	var lines []int
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		require.NoError(t, err)
		lines = append(lines, tok.Line)
	}
	require.Equal(t, []int{1, 2, 4}, lines)
}

func TestEOFIsSticky(t *testing.T) {
	l := New("")
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		require.NoError(t, err)
		require.Equal(t, token.EOF, tok.Type)
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := New("$")
	_, err := l.Next()
	require.Error(t, err)
}
