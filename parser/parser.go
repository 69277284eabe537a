// Package parser turns a token stream into an *ast.Program, or a single
// located diagnostic. A Parser is created with New() and used exactly
// once, by calling Parse().
package parser

import (
	"github.com/theSprog/astfront/ast"
	"github.com/theSprog/astfront/diag"
	"github.com/theSprog/astfront/internal/lexer"
	"github.com/theSprog/astfront/internal/token"
)

// Option configures a Parser.
type Option func(*Parser)

// WithFilename sets the file name reported in every diagnostic.
func WithFilename(filename string) Option {
	return func(p *Parser) { p.filename = filename }
}

// Parser consumes a token stream produced by a *lexer.Lexer and builds an
// *ast.Program. A Parser value is single-use: construct one with New and
// call Parse exactly once.
type Parser struct {
	l        *lexer.Lexer
	filename string

	prevToken token.Token
	curToken  token.Token
	peekTok   token.Token
	peekTok2  token.Token

	nextID int

	// tokenPos counts tokens consumed by advance(), giving track() a cursor
	// position to compare speculative branches by instead of node count.
	tokenPos int

	// furthest records the deepest-advancing failed tryTo attempt seen so
	// far in this session, so the final reported error is the most
	// informative one rather than whichever alternative failed last.
	furthest      *diag.ParserError
	furthestDepth int
}

// Parse reads input in full, lexes and parses it, and returns the
// resulting AST or the single located diagnostic that stopped parsing.
func Parse(input string, options ...Option) (*ast.Program, error) {
	p := New(lexer.New(input), options...)
	return p.Parse()
}

// New constructs a Parser reading tokens from l.
func New(l *lexer.Lexer, options ...Option) *Parser {
	p := &Parser{l: l}
	for _, opt := range options {
		opt(p)
	}
	if err := p.advance(); err != nil {
		// A lexer error on the very first token still needs somewhere to
		// surface; stash it as curToken EOF and let Parse's first eat fail.
		p.curToken = token.Token{Type: token.EOF, Literal: "$"}
	}
	if err := p.advance(); err != nil {
		p.peekTok = token.Token{Type: token.EOF, Literal: "$"}
	}
	if err := p.advance(); err != nil {
		p.peekTok2 = token.Token{Type: token.EOF, Literal: "$"}
	}
	return p
}

// advance shifts the token window forward by reading one more token from
// the lexer into peekTok2, after rotating prevToken/curToken/peekTok.
func (p *Parser) advance() error {
	p.prevToken = p.curToken
	p.curToken = p.peekTok
	p.peekTok = p.peekTok2
	p.tokenPos++
	tok, err := p.l.Next()
	if err != nil {
		return err
	}
	p.peekTok2 = tok
	return nil
}

func (p *Parser) peek() token.Token      { return p.curToken }
func (p *Parser) peekKind() token.Type   { return p.curToken.Type }
func (p *Parser) lookAhead() token.Token  { return p.peekTok }
func (p *Parser) lookAhead2() token.Token { return p.peekTok2 }

// allocID returns the next session-unique node id.
func (p *Parser) allocID() int {
	p.nextID++
	return p.nextID
}

func (p *Parser) markBegin() int { return p.curToken.Line }

func (p *Parser) meta(begin int) ast.Meta {
	end := p.prevToken.Line
	if end < begin {
		end = begin
	}
	return ast.Meta{ID: p.allocID(), Span: ast.Span{Begin: begin, End: end}}
}

// Parse drives the top-level grammar: Program -> SourceElements?.
func (p *Parser) Parse() (*ast.Program, error) {
	begin := p.markBegin()
	if p.peekKind() == token.EOF {
		return &ast.Program{Meta: p.meta(begin)}, nil
	}
	elements, err := p.parseSourceElements()
	if err != nil {
		return nil, err
	}
	if p.peekKind() != token.EOF {
		return nil, p.mismatch("end of input", "top-level statement")
	}
	return &ast.Program{Meta: p.meta(begin), Elements: elements}, nil
}

// parseSourceElements parses one or more statements until a terminator
// (EOF, or `}` when inside a block) is reached.
func (p *Parser) parseSourceElements() (*ast.SourceElements, error) {
	begin := p.markBegin()
	var stats []ast.Stat
	for p.peekKind() != token.EOF && p.peekKind() != token.RBRACE {
		stat, err := p.parseStat()
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	if len(stats) == 0 {
		return nil, p.mismatch("statement", "end of input")
	}
	return &ast.SourceElements{Meta: p.meta(begin), Stats: stats}, nil
}

// eat consumes the current token if it matches kind, or returns a located
// diagnostic. A missing `;` gets the friendlier missing-semicolon message
// when the current token already starts a new source line.
func (p *Parser) eat(kind token.Type) (token.Token, error) {
	if p.peekKind() != kind {
		if kind == token.SEMICOLON && p.curToken.Line > p.prevToken.Line {
			return token.Token{}, p.missingSemicolon()
		}
		return token.Token{}, p.mismatch(string(kind), p.describeCur())
	}
	tok := p.curToken
	if err := p.advance(); err != nil {
		return token.Token{}, p.lexErr(err)
	}
	return tok, nil
}

// isEOS reports whether the current token can end a statement without
// being consumed: `;`, a token starting a new line, `}`, or EOF.
func (p *Parser) isEOS() bool {
	switch p.peekKind() {
	case token.SEMICOLON, token.RBRACE, token.EOF:
		return true
	}
	return p.curToken.Line > p.prevToken.Line
}

// eatEOS consumes a trailing `;` if present; any other end-of-statement
// condition requires no token consumption.
func (p *Parser) eatEOS() error {
	if !p.isEOS() {
		return p.missingSemicolon()
	}
	if p.peekKind() == token.SEMICOLON {
		_, err := p.eat(token.SEMICOLON)
		return err
	}
	return nil
}

func (p *Parser) describeCur() string {
	if p.peekKind() == token.EOF {
		return "end of input"
	}
	return p.curToken.Literal
}

func (p *Parser) lexErr(err error) error {
	if le, ok := err.(*diag.LexerError); ok {
		return le
	}
	return &diag.LexerError{Line: p.curToken.Line, Message: err.Error()}
}

func (p *Parser) mismatch(expected, got string) error {
	return p.track(diag.Mismatch(p.filename, p.curToken.Line, "", expected, got))
}

func (p *Parser) missingSemicolon() error {
	return p.track(diag.MissingSemicolon(p.filename, p.curToken.Line, p.prevToken.Line))
}

func (p *Parser) unsupported(what string) error {
	return p.track(diag.Unsupported(p.filename, p.curToken.Line, what))
}

// track feeds err into the furthest-error cache: the failure seen after the
// most token consumption in this session wins, even if a shallower one is
// raised later by a different speculative branch.
func (p *Parser) track(err *diag.ParserError) *diag.ParserError {
	depth := p.tokenPos
	if p.furthest == nil || depth >= p.furthestDepth {
		p.furthest = err
		p.furthestDepth = depth
	}
	return p.furthest
}

// tryTo speculatively attempts fn. On success it returns fn's result. On
// failure it rewinds the cursor (and the underlying lexer's scan position)
// exactly to where it started and returns the zero value and the
// (possibly furthest-substituted) error.
func tryTo[T any](p *Parser, fn func(*Parser) (T, error)) (T, error) {
	snapshot := *p
	lexerSnapshot := *p.l
	val, err := fn(p)
	if err != nil {
		furthest, furthestDepth := p.furthest, p.furthestDepth
		*p = snapshot
		*p.l = lexerSnapshot
		p.furthest, p.furthestDepth = furthest, furthestDepth
		var zero T
		return zero, err
	}
	return val, nil
}
