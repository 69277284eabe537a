package parser

import (
	"github.com/theSprog/astfront/ast"
	"github.com/theSprog/astfront/internal/token"
)

func (p *Parser) parseAbstractClassDecl() (*ast.ClassDecl, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.ABSTRACT); err != nil {
		return nil, err
	}
	decl, err := p.parseClassDecl(true)
	if err != nil {
		return nil, err
	}
	decl.Meta = p.meta(begin)
	return decl, nil
}

func (p *Parser) parseClassDecl(abstract bool) (*ast.ClassDecl, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.CLASS); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	var typeParas *ast.TypeParas
	if p.peekKind() == token.LT {
		tp, err := p.parseTypeParas()
		if err != nil {
			return nil, err
		}
		typeParas = tp
	}
	heritage, err := p.parseClassHeritage()
	if err != nil {
		return nil, err
	}
	tail, err := p.parseClassTail()
	if err != nil {
		return nil, err
	}
	return &ast.ClassDecl{
		Meta:      p.meta(begin),
		Abstract:  abstract,
		Name:      name,
		TypeParas: typeParas,
		Heritage:  heritage,
		Tail:      tail,
	}, nil
}

func (p *Parser) parseClassHeritage() (*ast.ClassHeritage, error) {
	if p.peekKind() != token.EXTENDS && p.peekKind() != token.IMPLEMENTS {
		return nil, nil
	}
	begin := p.markBegin()
	heritage := &ast.ClassHeritage{}
	if p.peekKind() == token.EXTENDS {
		extBegin := p.markBegin()
		if err := p.advanceKeyword(token.EXTENDS); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		heritage.Extends = &ast.Extends{Meta: p.meta(extBegin), Type: typ}
	}
	if p.peekKind() == token.IMPLEMENTS {
		implBegin := p.markBegin()
		if err := p.advanceKeyword(token.IMPLEMENTS); err != nil {
			return nil, err
		}
		var types []*ast.Type
		for {
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			types = append(types, typ)
			if p.peekKind() != token.COMMA {
				break
			}
			if _, err := p.eat(token.COMMA); err != nil {
				return nil, err
			}
		}
		heritage.Implements = &ast.Implements{Meta: p.meta(implBegin), Types: types}
	}
	heritage.Meta = p.meta(begin)
	return heritage, nil
}

func (p *Parser) parseClassTail() (*ast.ClassTail, error) {
	begin := p.markBegin()
	if _, err := p.eat(token.LBRACE); err != nil {
		return nil, err
	}
	tail := &ast.ClassTail{}
	for p.peekKind() != token.RBRACE {
		if p.peekKind() == token.SEMICOLON {
			if _, err := p.eat(token.SEMICOLON); err != nil {
				return nil, err
			}
			continue
		}
		member, err := p.parseClassElement()
		if err != nil {
			return nil, err
		}
		if ctor, ok := member.(*ast.ConstructorDecl); ok {
			tail.Constructor = ctor
			continue
		}
		tail.Members = append(tail.Members, member)
	}
	if _, err := p.eat(token.RBRACE); err != nil {
		return nil, err
	}
	tail.Meta = p.meta(begin)
	return tail, nil
}

// parseClassElement parses one member of a class body: a constructor,
// property, method, accessor, index signature, or abstract member.
func (p *Parser) parseClassElement() (ast.Node, error) {
	begin := p.markBegin()

	if p.peekKind() == token.ABSTRACT {
		return p.parseAbstractMember(begin)
	}
	if p.peekKind() == token.LBRACKET {
		return p.parseIndexMember(begin)
	}

	modifier := ast.AccessDefault
	switch p.peekKind() {
	case token.PUBLIC:
		modifier = ast.AccessPublic
		if err := p.advanceKeyword(token.PUBLIC); err != nil {
			return nil, err
		}
	case token.PRIVATE:
		modifier = ast.AccessPrivate
		if err := p.advanceKeyword(token.PRIVATE); err != nil {
			return nil, err
		}
	case token.PROTECTED:
		modifier = ast.AccessProtected
		if err := p.advanceKeyword(token.PROTECTED); err != nil {
			return nil, err
		}
	}

	static := false
	if p.peekKind() == token.STATIC {
		static = true
		if err := p.advanceKeyword(token.STATIC); err != nil {
			return nil, err
		}
	}

	if p.peekKind() == token.CONSTRUCTOR {
		return p.parseConstructorDecl(begin)
	}
	if p.peekKind() == token.GET {
		return p.parseGetAccesser(begin, modifier, static)
	}
	if p.peekKind() == token.SET {
		return p.parseSetAccesser(begin, modifier, static)
	}

	readOnly := false
	if p.peekKind() == token.READONLY {
		readOnly = true
		if err := p.advanceKeyword(token.READONLY); err != nil {
			return nil, err
		}
	}

	async := false
	if p.peekKind() == token.ASYNC {
		async = true
		if err := p.advanceKeyword(token.ASYNC); err != nil {
			return nil, err
		}
	}

	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}

	if p.peekKind() == token.LPAREN || p.peekKind() == token.LT {
		callSig, err := p.parseCallSig()
		if err != nil {
			return nil, err
		}
		var body *ast.Block
		if p.peekKind() == token.LBRACE {
			body, err = p.parseBlock()
			if err != nil {
				return nil, err
			}
		} else {
			if _, err := p.eat(token.SEMICOLON); err != nil {
				return nil, err
			}
		}
		return &ast.MethodDeclExp{
			Meta:     p.meta(begin),
			Modifier: modifier,
			Static:   static,
			Async:    async,
			Name:     name,
			CallSig:  callSig,
			Body:     body,
		}, nil
	}

	optional := false
	if p.peekKind() == token.QUESTION {
		optional = true
		if _, err := p.eat(token.QUESTION); err != nil {
			return nil, err
		}
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
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.PropertyDeclExp{
		Meta:      p.meta(begin),
		Modifier:  modifier,
		Static:    static,
		ReadOnly:  readOnly,
		Name:      name,
		Optional:  optional,
		TypeAnnot: typeAnnot,
		Init:      init,
	}, nil
}

func (p *Parser) parseConstructorDecl(begin int) (*ast.ConstructorDecl, error) {
	if err := p.advanceKeyword(token.CONSTRUCTOR); err != nil {
		return nil, err
	}
	params, err := p.parseFormalParas()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.ConstructorDecl{Meta: p.meta(begin), Params: params, Body: body}, nil
}

func (p *Parser) parseGetAccesser(begin int, modifier ast.AccessModifier, static bool) (*ast.GetAccesser, error) {
	if err := p.advanceKeyword(token.GET); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	var ret *ast.TypeAnnotation
	if p.peekKind() == token.COLON {
		ret, err = p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.GetAccesser{Meta: p.meta(begin), Modifier: modifier, Static: static, Name: name, ReturnType: ret, Body: body}, nil
}

func (p *Parser) parseSetAccesser(begin int, modifier ast.AccessModifier, static bool) (*ast.SetAccesser, error) {
	if err := p.advanceKeyword(token.SET); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	param, err := p.parsePara()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.SetAccesser{Meta: p.meta(begin), Modifier: modifier, Static: static, Name: name, Param: param, Body: body}, nil
}

func (p *Parser) parseIndexMember(begin int) (*ast.IndexMemberDecl, error) {
	sig, err := p.parseIndexSig(begin)
	if err != nil {
		return nil, err
	}
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.IndexMemberDecl{Meta: p.meta(begin), Sig: sig}, nil
}

func (p *Parser) parseAbstractMember(begin int) (*ast.AbsMemberDecl, error) {
	if err := p.advanceKeyword(token.ABSTRACT); err != nil {
		return nil, err
	}
	modifier := ast.AccessDefault
	switch p.peekKind() {
	case token.PUBLIC:
		modifier = ast.AccessPublic
		if err := p.advanceKeyword(token.PUBLIC); err != nil {
			return nil, err
		}
	case token.PROTECTED:
		modifier = ast.AccessProtected
		if err := p.advanceKeyword(token.PROTECTED); err != nil {
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
	if err := p.eatEOS(); err != nil {
		return nil, err
	}
	return &ast.AbsMemberDecl{Meta: p.meta(begin), Modifier: modifier, Name: name, CallSig: callSig}, nil
}

// --- interface -------------------------------------------------------------

func (p *Parser) parseInterfaceDecl() (*ast.InterfaceDecl, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.INTERFACE); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	var typeParas *ast.TypeParas
	if p.peekKind() == token.LT {
		tp, err := p.parseTypeParas()
		if err != nil {
			return nil, err
		}
		typeParas = tp
	}
	var extends []*ast.Type
	if p.peekKind() == token.EXTENDS {
		if err := p.advanceKeyword(token.EXTENDS); err != nil {
			return nil, err
		}
		for {
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			extends = append(extends, typ)
			if p.peekKind() != token.COMMA {
				break
			}
			if _, err := p.eat(token.COMMA); err != nil {
				return nil, err
			}
		}
	}
	members, err := p.parseTypeMemberList()
	if err != nil {
		return nil, err
	}
	return &ast.InterfaceDecl{Meta: p.meta(begin), Name: name, TypeParas: typeParas, Extends: extends, Members: members}, nil
}
