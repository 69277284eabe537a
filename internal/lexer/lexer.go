// Package lexer turns source bytes into a stream of tokens.
package lexer

import (
	"regexp"
	"strings"

	"github.com/theSprog/astfront/diag"
	"github.com/theSprog/astfront/internal/token"
)

// Lexer scans one source file. It holds no resources beyond the byte slice
// it was constructed with, so a Lexer never outlives the function that
// created it.
type Lexer struct {
	bytes []byte
	line  int
}

// New returns a Lexer positioned at the start of src, on line 1.
func New(src string) *Lexer {
	return &Lexer{bytes: []byte(src), line: 1}
}

var (
	singleLineComment = regexp.MustCompile(`^//.*`)
	multiLineComment  = regexp.MustCompile(`(?s)^/\*.*?\*/`)
	identifierRe      = regexp.MustCompile(`^[_\w]+`)
	hexRe             = regexp.MustCompile(`^0[xX][0-9a-fA-F]+`)
	octRe             = regexp.MustCompile(`^0[oO][0-7]+`)
	legacyOctRe       = regexp.MustCompile(`^0[0-7]+`)
	binRe             = regexp.MustCompile(`^0[bB][01]+`)
	decimalIntPart    = `0|[1-9][0-9]*`
	exponentPart      = `[eE][+-]?[0-9]+`
	decimal1Re        = regexp.MustCompile(`^(?:` + decimalIntPart + `)[.][0-9]*(?:` + exponentPart + `)?`)
	decimal2Re        = regexp.MustCompile(`^\.[0-9]+(?:` + exponentPart + `)?`)
	decimal3Re        = regexp.MustCompile(`^(?:` + decimalIntPart + `)(?:` + exponentPart + `)?`)
)

// Next scans and returns the next token. Once it returns an EOF token it
// will keep returning EOF tokens forever; callers stop at the first one.
func (l *Lexer) Next() (token.Token, error) {
	l.skipUnrelated()

	if len(l.bytes) == 0 {
		return token.Token{Type: token.EOF, Literal: "$", Line: l.line}, nil
	}

	line := l.line
	c := l.bytes[0]

	switch {
	case c == '(':
		return l.simple(token.LPAREN, "("), nil
	case c == ')':
		return l.simple(token.RPAREN, ")"), nil
	case c == '[':
		return l.simple(token.LBRACKET, "["), nil
	case c == ']':
		return l.simple(token.RBRACKET, "]"), nil
	case c == '{':
		return l.simple(token.LBRACE, "{"), nil
	case c == '}':
		return l.simple(token.RBRACE, "}"), nil
	case c == ',':
		return l.simple(token.COMMA, ","), nil
	case c == ';':
		return l.simple(token.SEMICOLON, ";"), nil
	case c == '?':
		return l.simple(token.QUESTION, "?"), nil
	case c == ':':
		return l.simple(token.COLON, ":"), nil
	case c == '~':
		return l.simple(token.BITNOT, "~"), nil
	case c == '@':
		return l.simple(token.AT, "@"), nil

	case isLetter(c):
		return l.identifier(), nil
	case isDigit(c) || (c == '.' && len(l.bytes) > 1 && isDigit(l.bytes[1])):
		return l.number()
	case c == '"' || c == '\'':
		return l.stringLiteral()

	case c == '!':
		switch {
		case l.has("!=="):
			return l.simple(token.IDNEQ, "!=="), nil
		case l.has("!="):
			return l.simple(token.NEQ, "!="), nil
		default:
			return l.simple(token.NOT, "!"), nil
		}

	case c == '*':
		if l.has("*=") {
			return l.simple(token.MUL_ASSIGN, "*="), nil
		}
		return l.simple(token.MUL, "*"), nil

	case c == '/':
		if l.has("/*") {
			return token.Token{}, l.errorf("unclosed multi-line comment")
		}
		if l.has("/=") {
			return l.simple(token.DIV_ASSIGN, "/="), nil
		}
		return l.simple(token.DIV, "/"), nil

	case c == '%':
		if l.has("%=") {
			return l.simple(token.MOD_ASSIGN, "%="), nil
		}
		return l.simple(token.MOD, "%"), nil

	case c == '.':
		if l.has("...") {
			return l.simple(token.ELLIPSIS, "..."), nil
		}
		return l.simple(token.DOT, "."), nil

	case c == '+':
		switch {
		case l.has("++"):
			return l.simple(token.INC, "++"), nil
		case l.has("+="):
			return l.simple(token.PLUS_ASSIGN, "+="), nil
		default:
			return l.simple(token.PLUS, "+"), nil
		}

	case c == '-':
		switch {
		case l.has("--"):
			return l.simple(token.DEC, "--"), nil
		case l.has("-="):
			return l.simple(token.MINUS_ASSIGN, "-="), nil
		default:
			return l.simple(token.MINUS, "-"), nil
		}

	case c == '>':
		switch {
		case l.has(">>>="):
			return l.simple(token.SHR_ASSIGN, ">>>="), nil
		case l.has(">>="):
			return l.simple(token.SAR_ASSIGN, ">>="), nil
		case l.has(">>>"):
			return l.simple(token.SHR, ">>>"), nil
		case l.has(">>"):
			return l.simple(token.SAR, ">>"), nil
		case l.has(">="):
			return l.simple(token.GE, ">="), nil
		default:
			return l.simple(token.GT, ">"), nil
		}

	case c == '<':
		switch {
		case l.has("<<="):
			return l.simple(token.SHL_ASSIGN, "<<="), nil
		case l.has("<<"):
			return l.simple(token.SHL, "<<"), nil
		case l.has("<="):
			return l.simple(token.LE, "<="), nil
		default:
			return l.simple(token.LT, "<"), nil
		}

	case c == '=':
		switch {
		case l.has("==="):
			return l.simple(token.IDEQ, "==="), nil
		case l.has("=="):
			return l.simple(token.EQ, "=="), nil
		case l.has("=>"):
			return l.simple(token.ARROW, "=>"), nil
		default:
			return l.simple(token.ASSIGN, "="), nil
		}

	case c == '&':
		switch {
		case l.has("&&"):
			return l.simple(token.AND, "&&"), nil
		case l.has("&="):
			return l.simple(token.AND_ASSIGN, "&="), nil
		default:
			return l.simple(token.BITAND, "&"), nil
		}

	case c == '^':
		if l.has("^=") {
			return l.simple(token.XOR_ASSIGN, "^="), nil
		}
		return l.simple(token.BITXOR, "^"), nil

	case c == '|':
		switch {
		case l.has("|="):
			return l.simple(token.OR_ASSIGN, "|="), nil
		case l.has("||"):
			return l.simple(token.OR, "||"), nil
		default:
			return l.simple(token.BITOR, "|"), nil
		}

	default:
		return token.Token{}, &diag.LexerError{
			Line:    line,
			Message: "unexpected character (only ASCII source is supported)",
		}
	}
}

func (l *Lexer) has(prefix string) bool {
	return len(l.bytes) >= len(prefix) && string(l.bytes[:len(prefix)]) == prefix
}

func (l *Lexer) simple(typ token.Type, literal string) token.Token {
	line := l.line
	l.advance(len(literal))
	return token.Token{Type: typ, Literal: literal, Line: line}
}

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *Lexer) skipUnrelated() {
	for {
		switch {
		case l.isWhitespace():
			l.skipWhitespace()
		case l.isComment():
			before := len(l.bytes)
			l.skipComment()
			if len(l.bytes) == before {
				// An unterminated `/*`: Next reports it.
				return
			}
		default:
			return
		}
	}
}

func (l *Lexer) isWhitespace() bool {
	if len(l.bytes) == 0 {
		return false
	}
	switch l.bytes[0] {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

func (l *Lexer) isComment() bool {
	if len(l.bytes) < 2 || l.bytes[0] != '/' {
		return false
	}
	return l.bytes[1] == '/' || l.bytes[1] == '*'
}

func (l *Lexer) skipWhitespace() {
	for len(l.bytes) > 0 {
		switch l.bytes[0] {
		case '\n', '\r':
			l.line++
			l.advance(1)
		case ' ', '\t':
			l.advance(1)
		default:
			return
		}
	}
}

func (l *Lexer) skipComment() {
	for {
		src := string(l.bytes)
		if loc := singleLineComment.FindString(src); loc != "" {
			l.advance(len(loc))
			continue
		}
		if m := multiLineComment.FindString(src); m != "" {
			l.line += strings.Count(m, "\n")
			l.advance(len(m))
			continue
		}
		return
	}
}

func (l *Lexer) identifier() token.Token {
	src := string(l.bytes)
	m := identifierRe.FindString(src)
	line := l.line
	l.advance(len(m))
	return token.Token{Type: token.LookupIdentifier(m), Literal: m, Line: line}
}

func (l *Lexer) number() (token.Token, error) {
	src := string(l.bytes)
	line := l.line

	if len(l.bytes) >= 2 && l.bytes[0] == '0' {
		switch l.bytes[1] {
		case 'x', 'X':
			if m := hexRe.FindString(src); m != "" {
				l.advance(len(m))
				return token.Token{Type: token.NUMBER, Literal: m, Line: line}, nil
			}
			return token.Token{}, l.errorf("unknown number character")
		case 'o', 'O':
			if m := octRe.FindString(src); m != "" {
				l.advance(len(m))
				return token.Token{Type: token.NUMBER, Literal: m, Line: line}, nil
			}
			return token.Token{}, l.errorf("unknown number character")
		case 'b', 'B':
			if m := binRe.FindString(src); m != "" {
				l.advance(len(m))
				return token.Token{Type: token.NUMBER, Literal: m, Line: line}, nil
			}
			return token.Token{}, l.errorf("unknown number character")
		}
		if l.bytes[1] >= '0' && l.bytes[1] <= '7' {
			if m := legacyOctRe.FindString(src); m != "" {
				l.advance(len(m))
				return token.Token{Type: token.NUMBER, Literal: m, Line: line}, nil
			}
			return token.Token{}, l.errorf("unknown number character")
		}
	}

	return l.decimalNumber(src)
}

func (l *Lexer) decimalNumber(src string) (token.Token, error) {
	line := l.line

	if l.bytes[0] == '.' {
		if m := decimal2Re.FindString(src); m != "" {
			l.advance(len(m))
			return token.Token{Type: token.NUMBER, Literal: m, Line: line}, nil
		}
		return token.Token{}, l.errorf("unknown decimal")
	}

	if m := decimal1Re.FindString(src); m != "" {
		l.advance(len(m))
		return token.Token{Type: token.NUMBER, Literal: m, Line: line}, nil
	}
	if m := decimal3Re.FindString(src); m != "" {
		l.advance(len(m))
		return token.Token{Type: token.NUMBER, Literal: m, Line: line}, nil
	}
	return token.Token{}, l.errorf("unknown decimal")
}

func (l *Lexer) stringLiteral() (token.Token, error) {
	terminal := l.bytes[0]
	line := l.line
	l.advance(1)

	var value []byte
	for {
		if len(l.bytes) == 0 {
			return token.Token{}, l.errorf("unclosed string literal")
		}
		c := l.bytes[0]
		switch {
		case c == terminal:
			l.advance(1)
			return token.Token{Type: token.STRING, Literal: string(value), Line: line}, nil
		case c == '\\':
			return token.Token{}, l.errorf("escape sequences in string literals are not supported")
		case c == '\n':
			value = append(value, c)
			l.line++
			l.advance(1)
		default:
			value = append(value, c)
			l.advance(1)
		}
	}
}

func (l *Lexer) advance(n int) {
	if n > len(l.bytes) {
		n = len(l.bytes)
	}
	l.bytes = l.bytes[n:]
}

func (l *Lexer) errorf(msg string) error {
	return &diag.LexerError{Line: l.line, Message: msg}
}
