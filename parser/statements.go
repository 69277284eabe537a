package parser

import (
	"github.com/theSprog/astfront/ast"
	"github.com/theSprog/astfront/internal/token"
)

// parseStat dispatches directly on the current token's kind. Keywords
// select their statement form outright; `{` selects a Block, `;` selects
// Empty, an Identifier followed by `:` selects a Labelled statement, and
// anything else falls through to an expression statement.
func (p *Parser) parseStat() (ast.Stat, error) {
	switch p.peekKind() {
	case token.IMPORT:
		return p.parseImportStat()
	case token.EXPORT:
		return p.parseExportStat()
	case token.CLASS:
		return p.parseClassDecl(false)
	case token.ABSTRACT:
		return p.parseAbstractClassDecl()
	case token.INTERFACE:
		return p.parseInterfaceDecl()
	case token.NAMESPACE:
		return p.parseNamespaceDecl()
	case token.FUNCTION:
		return p.parseFuncDeclStat()
	case token.IF:
		return p.parseIfStat()
	case token.FOR:
		return p.parseForLikeStat()
	case token.WHILE:
		return p.parseWhileStat()
	case token.DO:
		return p.parseDoWhileStat()
	case token.CONTINUE:
		return p.parseContinueStat()
	case token.BREAK:
		return p.parseBreakStat()
	case token.RETURN:
		return p.parseReturnStat()
	case token.YIELD:
		return p.parseYieldStat()
	case token.WITH:
		return p.parseWithStat()
	case token.SWITCH:
		return p.parseSwitchStat()
	case token.THROW:
		return p.parseThrowStat()
	case token.TRY:
		return p.parseTryStat()
	case token.DEBUGGER:
		return p.parseDebuggerStat()
	case token.ENUM:
		return p.parseEnumStat()
	case token.VAR, token.LET, token.CONST:
		return p.parseVarStat()
	case token.TYPE:
		return p.parseTypeAliasStat()
	case token.LBRACE:
		return p.parseBlock()
	case token.SEMICOLON:
		return p.parseEmptyStat()
	case token.IDENT:
		if p.lookAhead().Type == token.COLON {
			return p.parseLabelledStat()
		}
		return p.parseExpStat()
	default:
		return p.parseExpStat()
	}
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	begin := p.markBegin()
	if _, err := p.eat(token.LBRACE); err != nil {
		return nil, err
	}
	var stats []ast.Stat
	for p.peekKind() != token.RBRACE && p.peekKind() != token.EOF {
		stat, err := p.parseStat()
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	if _, err := p.eat(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.Block{Meta: p.meta(begin), Stats: stats}, nil
}

func (p *Parser) parseEmptyStat() (*ast.Empty, error) {
	begin := p.markBegin()
	if _, err := p.eat(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.Empty{Meta: p.meta(begin)}, nil
}

func (p *Parser) parseExpStat() (*ast.ExpStat, error) {
	begin := p.markBegin()
	exp, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.ExpStat{Meta: p.meta(begin), Exp: exp}, nil
}

func (p *Parser) parseLabelledStat() (*ast.Labelled, error) {
	begin := p.markBegin()
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.COLON); err != nil {
		return nil, err
	}
	stat, err := p.parseStat()
	if err != nil {
		return nil, err
	}
	return &ast.Labelled{Meta: p.meta(begin), Label: name, Stat: stat}, nil
}

func (p *Parser) parseIdentifier() (*ast.Identifier, error) {
	begin := p.markBegin()
	tok := p.curToken
	if token.IsKeyword(tok.Type) {
		return nil, p.mismatch("identifier", tok.Literal)
	}
	if _, err := p.eat(token.IDENT); err != nil {
		return nil, err
	}
	return &ast.Identifier{Meta: p.meta(begin), Name: tok.Literal}, nil
}

// --- var/let/const ---------------------------------------------------

func (p *Parser) varModifierFor(kind token.Type) ast.VarModifier {
	switch kind {
	case token.LET:
		return ast.VarLet
	case token.CONST:
		return ast.VarConst
	default:
		return ast.VarVar
	}
}

func (p *Parser) parseVarStat() (*ast.VarStat, error) {
	begin := p.markBegin()
	kindTok := p.curToken
	if err := p.advanceKeyword(kindTok.Type); err != nil {
		return nil, err
	}
	readOnly := false
	if p.peekKind() == token.READONLY {
		readOnly = true
		if err := p.advanceKeyword(token.READONLY); err != nil {
			return nil, err
		}
	}
	var decls []*ast.VarDecl
	for {
		decl, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
		if p.peekKind() != token.COMMA {
			break
		}
		if _, err := p.eat(token.COMMA); err != nil {
			return nil, err
		}
	}
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.VarStat{
		Meta:     p.meta(begin),
		Modifier: p.varModifierFor(kindTok.Type),
		ReadOnly: readOnly,
		Decls:    decls,
	}, nil
}

func (p *Parser) parseVarDecl() (*ast.VarDecl, error) {
	begin := p.markBegin()
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	var typeAnnot *ast.TypeAnnotation
	if p.peekKind() == token.COLON {
		typeAnnot, err = p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
	}
	var init ast.Expr
	if p.peekKind() == token.ASSIGN {
		if _, err := p.eat(token.ASSIGN); err != nil {
			return nil, err
		}
		init, err = p.parseSingleExp()
		if err != nil {
			return nil, err
		}
	}
	return &ast.VarDecl{Meta: p.meta(begin), Name: name, TypeAnnot: typeAnnot, Init: init}, nil
}

// advanceKeyword consumes the current token, asserting it has kind k.
func (p *Parser) advanceKeyword(k token.Type) error {
	if p.peekKind() != k {
		return p.mismatch(string(k), p.describeCur())
	}
	return p.advanceOK()
}

func (p *Parser) advanceOK() error {
	if err := p.advance(); err != nil {
		return p.lexErr(err)
	}
	return nil
}

// --- if/for/while/do-while ---------------------------------------------

func (p *Parser) parseIfStat() (*ast.If, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.IF); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	then, err := p.parseStat()
	if err != nil {
		return nil, err
	}
	var elseStat ast.Stat
	if p.peekKind() == token.ELSE {
		if err := p.advanceKeyword(token.ELSE); err != nil {
			return nil, err
		}
		elseStat, err = p.parseStat()
		if err != nil {
			return nil, err
		}
	}
	return &ast.If{Meta: p.meta(begin), Cond: cond, Then: then, Else: elseStat}, nil
}

func (p *Parser) parseWhileStat() (*ast.Iter, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.WHILE); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStat()
	if err != nil {
		return nil, err
	}
	return &ast.Iter{Meta: p.meta(begin), Kind: ast.IterWhile, Cond: cond, Body: body}, nil
}

func (p *Parser) parseDoWhileStat() (*ast.Iter, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.DO); err != nil {
		return nil, err
	}
	body, err := p.parseStat()
	if err != nil {
		return nil, err
	}
	if err := p.advanceKeyword(token.WHILE); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.Iter{Meta: p.meta(begin), Kind: ast.IterDoWhile, Cond: cond, Body: body}, nil
}

// parseForLikeStat resolves the classic/for-in/for-var ambiguity by
// speculatively trying each shape in turn.
func (p *Parser) parseForLikeStat() (*ast.Iter, error) {
	if iter, err := tryTo(p, (*Parser).parseForVarInStat); err == nil {
		return iter, nil
	}
	if iter, err := tryTo(p, (*Parser).parseForInStat); err == nil {
		return iter, nil
	}
	return p.parseClassicForStat()
}

func (p *Parser) parseClassicForStat() (*ast.Iter, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.FOR); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	var init ast.Node
	if p.peekKind() != token.SEMICOLON {
		switch p.peekKind() {
		case token.VAR, token.LET, token.CONST:
			v, err := p.parseVarDeclList()
			if err != nil {
				return nil, err
			}
			init = v
		default:
			exp, err := p.parseExp()
			if err != nil {
				return nil, err
			}
			init = exp
		}
	}
	if _, err := p.eat(token.SEMICOLON); err != nil {
		return nil, err
	}
	var test ast.Expr
	if p.peekKind() != token.SEMICOLON {
		var err error
		test, err = p.parseExp()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.SEMICOLON); err != nil {
		return nil, err
	}
	var update ast.Expr
	if p.peekKind() != token.RPAREN {
		var err error
		update, err = p.parseExp()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStat()
	if err != nil {
		return nil, err
	}
	return &ast.Iter{Meta: p.meta(begin), Kind: ast.IterFor, Init: init, Test: test, Update: update, Body: body}, nil
}

// parseVarDeclList parses `var|let|const decl (, decl)*` without consuming
// a trailing `;` (used inside a classic for-header).
func (p *Parser) parseVarDeclList() (*ast.VarStat, error) {
	begin := p.markBegin()
	kindTok := p.curToken
	if err := p.advanceKeyword(kindTok.Type); err != nil {
		return nil, err
	}
	var decls []*ast.VarDecl
	for {
		decl, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
		if p.peekKind() != token.COMMA {
			break
		}
		if _, err := p.eat(token.COMMA); err != nil {
			return nil, err
		}
	}
	return &ast.VarStat{Meta: p.meta(begin), Modifier: p.varModifierFor(kindTok.Type), Decls: decls}, nil
}

func (p *Parser) parseForInStat() (*ast.Iter, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.FOR); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	left, err := p.parseBaseExp()
	if err != nil {
		return nil, err
	}
	if err := p.advanceKeyword(token.IN); err != nil {
		return nil, err
	}
	right, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStat()
	if err != nil {
		return nil, err
	}
	return &ast.Iter{Meta: p.meta(begin), Kind: ast.IterForIn, ForInLeft: left, ForInRight: right, Body: body}, nil
}

func (p *Parser) parseForVarInStat() (*ast.Iter, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.FOR); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	if p.peekKind() != token.VAR && p.peekKind() != token.LET && p.peekKind() != token.CONST {
		return nil, p.mismatch("var|let|const", p.describeCur())
	}
	if err := p.advanceKeyword(p.peekKind()); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	decl := &ast.VarDecl{Meta: ast.Meta{ID: p.allocID(), Span: name.Span}, Name: name}
	if err := p.advanceKeyword(token.IN); err != nil {
		return nil, err
	}
	right, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStat()
	if err != nil {
		return nil, err
	}
	return &ast.Iter{Meta: p.meta(begin), Kind: ast.IterForVar, ForInVar: decl, ForInRight: right, Body: body}, nil
}

// --- continue/break/return/yield/with -----------------------------------

func (p *Parser) parseOptionalLabel() (*ast.Identifier, error) {
	if p.peekKind() == token.IDENT && !p.isEOS() {
		return p.parseIdentifier()
	}
	return nil, nil
}

func (p *Parser) parseContinueStat() (*ast.Continue, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.CONTINUE); err != nil {
		return nil, err
	}
	label, err := p.parseOptionalLabel()
	if err != nil {
		return nil, err
	}
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.Continue{Meta: p.meta(begin), Label: label}, nil
}

func (p *Parser) parseBreakStat() (*ast.Break, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.BREAK); err != nil {
		return nil, err
	}
	label, err := p.parseOptionalLabel()
	if err != nil {
		return nil, err
	}
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.Break{Meta: p.meta(begin), Label: label}, nil
}

func (p *Parser) parseReturnStat() (*ast.Return, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.RETURN); err != nil {
		return nil, err
	}
	var value ast.Expr
	if !p.isEOS() {
		var err error
		value, err = p.parseExp()
		if err != nil {
			return nil, err
		}
	}
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.Return{Meta: p.meta(begin), Value: value}, nil
}

func (p *Parser) parseYieldStat() (*ast.Yield, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.YIELD); err != nil {
		return nil, err
	}
	var value ast.Expr
	if !p.isEOS() {
		var err error
		value, err = p.parseExp()
		if err != nil {
			return nil, err
		}
	}
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.Yield{Meta: p.meta(begin), Value: value}, nil
}

func (p *Parser) parseWithStat() (*ast.With, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.WITH); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	exp, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseStat()
	if err != nil {
		return nil, err
	}
	return &ast.With{Meta: p.meta(begin), Exp: exp, Body: body}, nil
}

// --- switch --------------------------------------------------------------

func (p *Parser) parseSwitchStat() (*ast.Switch, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.SWITCH); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	disc, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LBRACE); err != nil {
		return nil, err
	}
	var cases []*ast.CaseClause
	var def *ast.DefaultClause
	for p.peekKind() != token.RBRACE {
		switch p.peekKind() {
		case token.CASE:
			c, err := p.parseCaseClause()
			if err != nil {
				return nil, err
			}
			cases = append(cases, c)
		case token.DEFAULT:
			if def != nil {
				return nil, p.mismatch("at most one default clause", "default")
			}
			d, err := p.parseDefaultClause()
			if err != nil {
				return nil, err
			}
			def = d
		default:
			return nil, p.mismatch("case or default", p.describeCur())
		}
	}
	if _, err := p.eat(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.Switch{Meta: p.meta(begin), Disc: disc, Cases: cases, Default: def}, nil
}

func (p *Parser) parseCaseStats() ([]ast.Stat, error) {
	var stats []ast.Stat
	for p.peekKind() != token.CASE && p.peekKind() != token.DEFAULT && p.peekKind() != token.RBRACE {
		stat, err := p.parseStat()
		if err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

func (p *Parser) parseCaseClause() (*ast.CaseClause, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.CASE); err != nil {
		return nil, err
	}
	test, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.COLON); err != nil {
		return nil, err
	}
	stats, err := p.parseCaseStats()
	if err != nil {
		return nil, err
	}
	return &ast.CaseClause{Meta: p.meta(begin), Test: test, Stats: stats}, nil
}

func (p *Parser) parseDefaultClause() (*ast.DefaultClause, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.DEFAULT); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.COLON); err != nil {
		return nil, err
	}
	stats, err := p.parseCaseStats()
	if err != nil {
		return nil, err
	}
	return &ast.DefaultClause{Meta: p.meta(begin), Stats: stats}, nil
}

// --- throw/try/debugger ---------------------------------------------------

func (p *Parser) parseThrowStat() (*ast.ThrowStat, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.THROW); err != nil {
		return nil, err
	}
	exps, err := p.parseExpSeq()
	if err != nil {
		return nil, err
	}
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.ThrowStat{Meta: p.meta(begin), Exps: exps}, nil
}

func (p *Parser) parseTryStat() (*ast.Try, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.TRY); err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var catchParam *ast.Identifier
	var catchBlock *ast.Block
	if p.peekKind() == token.CATCH {
		if err := p.advanceKeyword(token.CATCH); err != nil {
			return nil, err
		}
		if p.peekKind() == token.LPAREN {
			if _, err := p.eat(token.LPAREN); err != nil {
				return nil, err
			}
			catchParam, err = p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			if _, err := p.eat(token.RPAREN); err != nil {
				return nil, err
			}
		}
		catchBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	var finallyBlock *ast.Block
	if p.peekKind() == token.FINALLY {
		if err := p.advanceKeyword(token.FINALLY); err != nil {
			return nil, err
		}
		finallyBlock, err = p.parseBlock()
		if err != nil {
			return nil, err
		}
	}
	if catchBlock == nil && finallyBlock == nil {
		return nil, p.mismatch("catch or finally", p.describeCur())
	}
	return &ast.Try{Meta: p.meta(begin), Block: block, CatchParam: catchParam, CatchBlock: catchBlock, FinallyBlock: finallyBlock}, nil
}

func (p *Parser) parseDebuggerStat() (*ast.Debugger, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.DEBUGGER); err != nil {
		return nil, err
	}
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.Debugger{Meta: p.meta(begin)}, nil
}

// --- enum / type alias -----------------------------------------------------

func (p *Parser) parseEnumStat() (*ast.EnumStat, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.ENUM); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LBRACE); err != nil {
		return nil, err
	}
	var members []*ast.EnumMember
	for p.peekKind() != token.RBRACE {
		m, err := p.parseEnumMember()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
		if p.peekKind() != token.COMMA {
			break
		}
		if _, err := p.eat(token.COMMA); err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.EnumStat{Meta: p.meta(begin), Name: name, Members: members}, nil
}

func (p *Parser) parseEnumMember() (*ast.EnumMember, error) {
	begin := p.markBegin()
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.peekKind() == token.ASSIGN {
		if _, err := p.eat(token.ASSIGN); err != nil {
			return nil, err
		}
		init, err = p.parseSingleExp()
		if err != nil {
			return nil, err
		}
	}
	return &ast.EnumMember{Meta: p.meta(begin), Name: name, Init: init}, nil
}

func (p *Parser) parseTypeAliasStat() (*ast.TypeAliasStat, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.TYPE); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.ASSIGN); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.TypeAliasStat{Meta: p.meta(begin), Name: name, Type: typ}, nil
}

// --- namespace -------------------------------------------------------------

func (p *Parser) parseNamespaceName() (*ast.NamespaceName, error) {
	begin := p.markBegin()
	var names []*ast.Identifier
	first, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	names = append(names, first)
	for p.peekKind() == token.DOT {
		if _, err := p.eat(token.DOT); err != nil {
			return nil, err
		}
		next, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		names = append(names, next)
	}
	return &ast.NamespaceName{Meta: p.meta(begin), Names: names}, nil
}

func (p *Parser) parseNamespaceDecl() (*ast.NamespaceDecl, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.NAMESPACE); err != nil {
		return nil, err
	}
	name, err := p.parseNamespaceName()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LBRACE); err != nil {
		return nil, err
	}
	var elements *ast.SourceElements
	if p.peekKind() != token.RBRACE {
		elements, err = p.parseSourceElements()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.NamespaceDecl{Meta: p.meta(begin), Name: name, Elements: elements}, nil
}

// --- import / export ---------------------------------------------------

func (p *Parser) parseImportStat() (*ast.ImportStat, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.IMPORT); err != nil {
		return nil, err
	}
	if alias, err := tryTo(p, (*Parser).parseImportAliasTail); err == nil {
		if err := p.eatEOS(); err != nil {
			return nil, err
		}
		return &ast.ImportStat{Meta: p.meta(begin), Alias: alias}, nil
	}
	fromBlock, err := p.parseFromBlock()
	if err != nil {
		return nil, err
	}
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.ImportStat{Meta: p.meta(begin), FromBlock: fromBlock}, nil
}

// parseImportAliasTail parses `Name = NamespaceName` after `import` has
// already been consumed.
func (p *Parser) parseImportAliasTail() (*ast.ImportAliasDecl, error) {
	begin := p.markBegin()
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.ASSIGN); err != nil {
		return nil, err
	}
	ns, err := p.parseNamespaceName()
	if err != nil {
		return nil, err
	}
	return &ast.ImportAliasDecl{Meta: p.meta(begin), Name: name, Namespace: ns}, nil
}

// parseFromBlock parses the `Default?, ({Alias, ...} | *)? from "module"`
// grammar shared by import and export-from statements.
func (p *Parser) parseFromBlock() (*ast.FromBlock, error) {
	begin := p.markBegin()
	fb := &ast.FromBlock{}

	if p.peekKind() == token.MUL {
		if _, err := p.eat(token.MUL); err != nil {
			return nil, err
		}
		fb.All = true
		if p.peekKind() == token.AS {
			if err := p.advanceKeyword(token.AS); err != nil {
				return nil, err
			}
			alias, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			fb.AllAlias = alias
		}
	} else {
		if p.peekKind() == token.IDENT {
			def, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			fb.Imported = def
			if p.peekKind() == token.COMMA {
				if _, err := p.eat(token.COMMA); err != nil {
					return nil, err
				}
			}
		}
		if p.peekKind() == token.LBRACE {
			if _, err := p.eat(token.LBRACE); err != nil {
				return nil, err
			}
			for p.peekKind() != token.RBRACE {
				alias, err := p.parsePortedAlias()
				if err != nil {
					return nil, err
				}
				fb.Aliases = append(fb.Aliases, alias)
				if p.peekKind() != token.COMMA {
					break
				}
				if _, err := p.eat(token.COMMA); err != nil {
					return nil, err
				}
			}
			if _, err := p.eat(token.RBRACE); err != nil {
				return nil, err
			}
		}
	}

	if err := p.advanceKeyword(token.FROM); err != nil {
		return nil, err
	}
	if p.peekKind() != token.STRING {
		return nil, p.mismatch("string module specifier", p.describeCur())
	}
	strTok := p.curToken
	if err := p.advanceOK(); err != nil {
		return nil, err
	}
	fb.FromValue = &ast.Literal{Meta: ast.Meta{ID: p.allocID(), Span: ast.Span{Begin: strTok.Line, End: strTok.Line}}, Kind: ast.LitString, Raw: strTok.Literal, String: strTok.Literal}
	fb.Meta = p.meta(begin)
	return fb, nil
}

func (p *Parser) parsePortedAlias() (*ast.PortedAlias, error) {
	begin := p.markBegin()
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	var alias *ast.Identifier
	if p.peekKind() == token.AS {
		if err := p.advanceKeyword(token.AS); err != nil {
			return nil, err
		}
		alias, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}
	return &ast.PortedAlias{Meta: p.meta(begin), Name: name, Alias: alias}, nil
}

func (p *Parser) parseExportStat() (*ast.ExportStat, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.EXPORT); err != nil {
		return nil, err
	}
	isDefault := false
	if p.peekKind() == token.DEFAULT {
		isDefault = true
		if err := p.advanceKeyword(token.DEFAULT); err != nil {
			return nil, err
		}
	}
	if p.peekKind() == token.EXPORT {
		return nil, p.mismatch("statement", "export")
	}
	if p.peekKind() == token.SEMICOLON {
		return nil, p.mismatch("from-block or statement", ";")
	}

	if fb, err := tryTo(p, (*Parser).parseFromBlock); err == nil {
		if err := p.eatEOS(); err != nil {
			return nil, err
		}
		return &ast.ExportStat{Meta: p.meta(begin), Default: isDefault, FromBlock: fb}, nil
	}
	stat, err := p.parseStat()
	if err != nil {
		return nil, err
	}
	return &ast.ExportStat{Meta: p.meta(begin), Default: isDefault, Stat: stat}, nil
}

// --- functions -------------------------------------------------------------

func (p *Parser) parseFuncDeclStat() (ast.Stat, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.FUNCTION); err != nil {
		return nil, err
	}
	generator := false
	if p.peekKind() == token.MUL {
		generator = true
		if _, err := p.eat(token.MUL); err != nil {
			return nil, err
		}
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	callSig, err := p.parseCallSig()
	if err != nil {
		return nil, err
	}
	body, err := p.parseFuncBody()
	if err != nil {
		return nil, err
	}
	if generator {
		return &ast.GenFuncDecl{Meta: p.meta(begin), Name: name, CallSig: callSig, Body: body}, nil
	}
	return &ast.FuncDecl{Meta: p.meta(begin), Name: name, CallSig: callSig, Body: body}, nil
}

func (p *Parser) parseFuncBody() (*ast.FuncBody, error) {
	begin := p.markBegin()
	if _, err := p.eat(token.LBRACE); err != nil {
		return nil, err
	}
	var elements *ast.SourceElements
	if p.peekKind() != token.RBRACE {
		var err error
		elements, err = p.parseSourceElements()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.FuncBody{Meta: p.meta(begin), Elements: elements}, nil
}
