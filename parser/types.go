package parser

import (
	"github.com/theSprog/astfront/ast"
	"github.com/theSprog/astfront/internal/token"
)

var predefinedNames = map[string]ast.PredefinedKind{
	"any":     ast.PredefAny,
	"number":  ast.PredefNumber,
	"boolean": ast.PredefBoolean,
	"string":  ast.PredefString,
}

func (p *Parser) parseTypeAnnotation() (*ast.TypeAnnotation, error) {
	begin := p.markBegin()
	if _, err := p.eat(token.COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.TypeAnnotation{Meta: p.meta(begin), Type: typ}, nil
}

// parseType parses a primary type and then greedily consumes trailing
// `[]` array markers.
func (p *Parser) parseType() (*ast.Type, error) {
	begin := p.markBegin()
	typ, err := p.parsePrimaryType()
	if err != nil {
		return nil, err
	}
	for p.peekKind() == token.LBRACKET && p.lookAhead().Type == token.RBRACKET {
		if _, err := p.eat(token.LBRACKET); err != nil {
			return nil, err
		}
		if _, err := p.eat(token.RBRACKET); err != nil {
			return nil, err
		}
		typ = &ast.Type{Meta: p.meta(begin), Kind: ast.TypeArray, ElemType: typ}
	}
	return typ, nil
}

func (p *Parser) parsePrimaryType() (*ast.Type, error) {
	begin := p.markBegin()
	switch p.peekKind() {
	case token.VOID:
		if err := p.advanceKeyword(token.VOID); err != nil {
			return nil, err
		}
		return &ast.Type{Meta: p.meta(begin), Kind: ast.TypePredefined, Predefined: ast.PredefVoid}, nil
	case token.TYPEOF:
		if err := p.advanceKeyword(token.TYPEOF); err != nil {
			return nil, err
		}
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.Type{Meta: p.meta(begin), Kind: ast.TypeQuery, QueryExp: name}, nil
	case token.LBRACKET:
		return p.parseTupleType()
	case token.LBRACE:
		return p.parseObjectType()
	case token.LPAREN:
		return p.parseFuncType()
	case token.IDENT:
		if kind, ok := predefinedNames[p.curToken.Literal]; ok {
			if err := p.advanceOK(); err != nil {
				return nil, err
			}
			return &ast.Type{Meta: p.meta(begin), Kind: ast.TypePredefined, Predefined: kind}, nil
		}
		return p.parseTypeRef()
	default:
		return nil, p.mismatch("type", p.describeCur())
	}
}

func (p *Parser) parseTypeRef() (*ast.Type, error) {
	begin := p.markBegin()
	name, err := p.parseNamespaceName()
	if err != nil {
		return nil, err
	}
	typ := &ast.Type{Kind: ast.TypeReference, RefName: name}
	if p.peekKind() == token.LT {
		if _, err := p.parseTypeParas(); err != nil {
			return nil, err
		}
	}
	typ.Meta = p.meta(begin)
	return typ, nil
}

// parseTypeParas recognises `<T, U, ...>` and then unconditionally rejects
// it: the reference implementation's own generics production is a stub
// that always gives up once the opening `<` is consumed, so this mirrors
// that exactly rather than accepting type parameters into the tree.
func (p *Parser) parseTypeParas() (*ast.TypeParas, error) {
	if _, err := p.eat(token.LT); err != nil {
		return nil, err
	}
	return nil, p.unsupported("Type Generic")
}

func (p *Parser) parseTupleType() (*ast.Type, error) {
	begin := p.markBegin()
	if _, err := p.eat(token.LBRACKET); err != nil {
		return nil, err
	}
	var elems []*ast.Type
	for p.peekKind() != token.RBRACKET {
		t, err := p.parseType()
		if err != nil {
			return nil, err
		}
		elems = append(elems, t)
		if p.peekKind() != token.COMMA {
			break
		}
		if _, err := p.eat(token.COMMA); err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.Type{Meta: p.meta(begin), Kind: ast.TypeTuple, TupleElems: elems}, nil
}

func (p *Parser) parseFuncType() (*ast.Type, error) {
	begin := p.markBegin()
	params, err := p.parseFormalParas()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.ARROW); err != nil {
		return nil, err
	}
	result, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.Type{Meta: p.meta(begin), Kind: ast.TypeFunction, FuncParams: params, FuncResult: result}, nil
}

func (p *Parser) parseObjectType() (*ast.Type, error) {
	begin := p.markBegin()
	members, err := p.parseTypeMemberList()
	if err != nil {
		return nil, err
	}
	return &ast.Type{Meta: p.meta(begin), Kind: ast.TypeObject, ObjectMembers: members}, nil
}

func (p *Parser) parseTypeMemberList() ([]*ast.TypeMember, error) {
	if _, err := p.eat(token.LBRACE); err != nil {
		return nil, err
	}
	var members []*ast.TypeMember
	for p.peekKind() != token.RBRACE {
		m, err := p.parseTypeMember()
		if err != nil {
			return nil, err
		}
		members = append(members, m)
		if p.peekKind() == token.COMMA || p.peekKind() == token.SEMICOLON {
			if _, err := p.eat(p.peekKind()); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.eat(token.RBRACE); err != nil {
		return nil, err
	}
	return members, nil
}

func (p *Parser) parseTypeMember() (*ast.TypeMember, error) {
	begin := p.markBegin()
	switch p.peekKind() {
	case token.LPAREN:
		sig, err := p.parseCallSig()
		if err != nil {
			return nil, err
		}
		return &ast.TypeMember{Meta: p.meta(begin), Kind: ast.MemberCallSig, CallSig: sig}, nil
	case token.NEW:
		if err := p.advanceKeyword(token.NEW); err != nil {
			return nil, err
		}
		sig, err := p.parseCallSig()
		if err != nil {
			return nil, err
		}
		return &ast.TypeMember{Meta: p.meta(begin), Kind: ast.MemberConstructSig, CallSig: sig}, nil
	case token.LBRACKET:
		return p.parseIndexSig(begin)
	default:
		name, err := p.parseIdentifier()
		if err != nil {
			return nil, err
		}
		optional := false
		if p.peekKind() == token.QUESTION {
			optional = true
			if _, err := p.eat(token.QUESTION); err != nil {
				return nil, err
			}
		}
		if p.peekKind() == token.LPAREN {
			sig, err := p.parseCallSig()
			if err != nil {
				return nil, err
			}
			return &ast.TypeMember{Meta: p.meta(begin), Kind: ast.MemberMethod, Name: name, Optional: optional, CallSig: sig}, nil
		}
		var typeAnnot *ast.TypeAnnotation
		if p.peekKind() == token.COLON {
			typeAnnot, err = p.parseTypeAnnotation()
			if err != nil {
				return nil, err
			}
		}
		return &ast.TypeMember{Meta: p.meta(begin), Kind: ast.MemberProperty, Name: name, Optional: optional, PropertyType: typeAnnot}, nil
	}
}

func (p *Parser) parseIndexSig(begin int) (*ast.TypeMember, error) {
	if _, err := p.eat(token.LBRACKET); err != nil {
		return nil, err
	}
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.COLON); err != nil {
		return nil, err
	}
	indexParamType, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RBRACKET); err != nil {
		return nil, err
	}
	result, err := p.parseTypeAnnotation()
	if err != nil {
		return nil, err
	}
	return &ast.TypeMember{
		Meta:           p.meta(begin),
		Kind:           ast.MemberIndexSig,
		IndexParamName: name,
		IndexParamType: indexParamType,
		IndexResult:    result,
	}, nil
}

// --- formal parameters / call signatures --------------------------------

func (p *Parser) parseFormalParas() (*ast.FormalParas, error) {
	begin := p.markBegin()
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	fp := &ast.FormalParas{}
	for p.peekKind() != token.RPAREN {
		if p.peekKind() == token.ELLIPSIS {
			rest, err := p.parseRestPara()
			if err != nil {
				return nil, err
			}
			fp.Rest = rest
			break
		}
		para, err := p.parsePara()
		if err != nil {
			return nil, err
		}
		fp.Params = append(fp.Params, para)
		if p.peekKind() != token.COMMA {
			break
		}
		if _, err := p.eat(token.COMMA); err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	fp.Meta = p.meta(begin)
	return fp, nil
}

func (p *Parser) parsePara() (*ast.Para, error) {
	begin := p.markBegin()
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
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
	return &ast.Para{Meta: p.meta(begin), Name: name, Optional: optional, TypeAnnot: typeAnnot, Init: init}, nil
}

func (p *Parser) parseRestPara() (*ast.RestPara, error) {
	begin := p.markBegin()
	if _, err := p.eat(token.ELLIPSIS); err != nil {
		return nil, err
	}
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
	return &ast.RestPara{Meta: p.meta(begin), Name: name, TypeAnnot: typeAnnot}, nil
}

func (p *Parser) parseCallSig() (*ast.CallSig, error) {
	begin := p.markBegin()
	var typeParas *ast.TypeParas
	if p.peekKind() == token.LT {
		tp, err := p.parseTypeParas()
		if err != nil {
			return nil, err
		}
		typeParas = tp
	}
	params, err := p.parseFormalParas()
	if err != nil {
		return nil, err
	}
	var ret *ast.TypeAnnotation
	if p.peekKind() == token.COLON {
		ret, err = p.parseTypeAnnotation()
		if err != nil {
			return nil, err
		}
	}
	return &ast.CallSig{Meta: p.meta(begin), TypeParas: typeParas, Params: params, ReturnType: ret}, nil
}
