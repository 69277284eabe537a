package parser

import (
	"strconv"
	"strings"

	"github.com/theSprog/astfront/ast"
	"github.com/theSprog/astfront/internal/token"
)

// parseLiteral parses a number, string, boolean, or null literal. Numbers
// try integer parsing first (after stripping radix prefixes and
// underscore-free legacy-octal digits) and fall back to float on failure.
func (p *Parser) parseLiteral() (*ast.Literal, error) {
	begin := p.markBegin()
	tok := p.curToken
	if err := p.advanceOK(); err != nil {
		return nil, err
	}

	switch tok.Type {
	case token.TRUE:
		return &ast.Literal{Meta: p.meta(begin), Kind: ast.LitBoolean, Raw: tok.Literal, Bool: true}, nil
	case token.FALSE:
		return &ast.Literal{Meta: p.meta(begin), Kind: ast.LitBoolean, Raw: tok.Literal, Bool: false}, nil
	case token.NULL:
		return &ast.Literal{Meta: p.meta(begin), Kind: ast.LitNull, Raw: tok.Literal}, nil
	case token.STRING:
		return &ast.Literal{Meta: p.meta(begin), Kind: ast.LitString, Raw: tok.Literal, String: tok.Literal}, nil
	case token.NUMBER:
		return p.numberLiteral(begin, tok.Literal)
	default:
		return nil, p.mismatch("literal", tok.Literal)
	}
}

func (p *Parser) numberLiteral(begin int, raw string) (*ast.Literal, error) {
	text := raw
	base := 10
	switch {
	case strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X"):
		base = 16
		text = text[2:]
	case strings.HasPrefix(text, "0o") || strings.HasPrefix(text, "0O"):
		base = 8
		text = text[2:]
	case strings.HasPrefix(text, "0b") || strings.HasPrefix(text, "0B"):
		base = 2
		text = text[2:]
	case len(raw) > 1 && raw[0] == '0' && raw[1] >= '0' && raw[1] <= '7':
		base = 8
		text = raw[1:]
	}

	if base != 10 {
		n, err := strconv.ParseInt(text, base, 64)
		if err != nil {
			return nil, p.mismatch("numeric literal", raw)
		}
		return &ast.Literal{Meta: p.meta(begin), Kind: ast.LitNumber, Raw: raw, IsInt: true, Int: n}, nil
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return &ast.Literal{Meta: p.meta(begin), Kind: ast.LitNumber, Raw: raw, IsInt: true, Int: n}, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, p.mismatch("numeric literal", raw)
	}
	return &ast.Literal{Meta: p.meta(begin), Kind: ast.LitNumber, Raw: raw, Float: f}, nil
}
