package parser

import (
	"github.com/theSprog/astfront/ast"
	"github.com/theSprog/astfront/internal/token"
)

// assignOps maps a compound-assignment token to its Op tag.
var assignOps = map[token.Type]ast.Op{
	token.ASSIGN:       ast.OpAssign,
	token.PLUS_ASSIGN:  ast.OpPlusAssign,
	token.MINUS_ASSIGN: ast.OpMinusAssign,
	token.MUL_ASSIGN:   ast.OpMulAssign,
	token.DIV_ASSIGN:   ast.OpDivAssign,
	token.MOD_ASSIGN:   ast.OpModAssign,
	token.AND_ASSIGN:   ast.OpAndAssign,
	token.OR_ASSIGN:    ast.OpOrAssign,
	token.XOR_ASSIGN:   ast.OpXorAssign,
	token.SHL_ASSIGN:   ast.OpShlAssign,
	token.SAR_ASSIGN:   ast.OpSarAssign,
	token.SHR_ASSIGN:   ast.OpShrAssign,
}

// binaryOps maps every binary/ternary-marker token to its Op tag.
var binaryOps = map[token.Type]ast.Op{
	token.QUESTION: ast.OpQuestionMark,
	token.COLON:    ast.OpColon,
	token.OR:       ast.OpOr,
	token.AND:      ast.OpAnd,
	token.BITOR:    ast.OpBitOr,
	token.BITXOR:   ast.OpBitXor,
	token.BITAND:   ast.OpBitAnd,
	token.EQ:       ast.OpEquals,
	token.NEQ:      ast.OpNotEquals,
	token.IDEQ:     ast.OpIdentityEquals,
	token.IDNEQ:    ast.OpIdentityNotEquals,
	token.LT:       ast.OpLessThan,
	token.LE:       ast.OpLessThanEquals,
	token.GT:       ast.OpMoreThan,
	token.GE:       ast.OpGreaterThanEquals,
	token.IN:       ast.OpIn,
	token.INSTANCEOF: ast.OpInstanceof,
	token.AS:       ast.OpAs,
	token.SHL:      ast.OpShl,
	token.SAR:      ast.OpSar,
	token.SHR:      ast.OpShr,
	token.PLUS:     ast.OpPlus,
	token.MINUS:    ast.OpMinus,
	token.MUL:      ast.OpMul,
	token.DIV:      ast.OpDiv,
	token.MOD:      ast.OpMod,
}

var prefixOps = map[token.Type]ast.Op{
	token.DELETE: ast.OpDelete,
	token.TYPEOF: ast.OpTypeof,
	token.INC:    ast.OpPreInc,
	token.DEC:    ast.OpPreDec,
	token.PLUS:   ast.OpUnaryPlus,
	token.MINUS:  ast.OpUnaryMinus,
	token.BITNOT: ast.OpBitNot,
	token.NOT:    ast.OpNot,
}

// parseExp parses a comma-free top-level expression: the assignment layer.
func (p *Parser) parseExp() (ast.Expr, error) {
	return p.parseSingleExp()
}

// parseExpSeq parses a comma-separated expression sequence, used for call
// arguments and throw operands.
func (p *Parser) parseExpSeq() (*ast.ExpSeq, error) {
	begin := p.markBegin()
	var exps []ast.Expr
	first, err := p.parseSingleExp()
	if err != nil {
		return nil, err
	}
	exps = append(exps, first)
	for p.peekKind() == token.COMMA {
		if _, err := p.eat(token.COMMA); err != nil {
			return nil, err
		}
		next, err := p.parseSingleExp()
		if err != nil {
			return nil, err
		}
		exps = append(exps, next)
	}
	return &ast.ExpSeq{Meta: p.meta(begin), Exps: exps}, nil
}

// parseSingleExp is the assignment layer: parse a binary/ternary
// expression, and if followed by an assignment operator, recurse right by
// direct recursion (assignment is right-associative and is not handled by
// the stack climber).
func (p *Parser) parseSingleExp() (ast.Expr, error) {
	begin := p.markBegin()
	left, err := p.parseBinaryExp()
	if err != nil {
		return nil, err
	}
	if op, ok := assignOps[p.peekKind()]; ok {
		if _, err := p.eat(p.peekKind()); err != nil {
			return nil, err
		}
		value, err := p.parseSingleExp()
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Meta: p.meta(begin), Target: left, Op: op, Value: value}, nil
	}
	return left, nil
}

// opStackEntry is one operator pending reduction in the stack-climbing
// loop, alongside the span-begin line its left operand started at.
type opStackEntry struct {
	op    ast.Op
	begin int
}

// parseBinaryExp runs the operator-priority stack-climbing algorithm: push
// unary operands and incoming operators, reducing (climb) whenever the
// incoming operator holds against the operator on top of the stack.
func (p *Parser) parseBinaryExp() (ast.Expr, error) {
	begin := p.markBegin()
	first, err := p.parseUnaryExp()
	if err != nil {
		return nil, err
	}
	exps := []ast.Expr{first}
	var ops []opStackEntry

	for {
		op, ok := binaryOps[p.peekKind()]
		if !ok {
			break
		}
		// A `:` with no pending `?` is not a ternary marker; it ends the
		// expression (as after a `case` test).
		if op == ast.OpColon {
			open := 0
			for _, e := range ops {
				if e.op == ast.OpQuestionMark {
					open++
				} else if e.op == ast.OpColon {
					open--
				}
			}
			if open <= 0 {
				break
			}
		}
		if _, err := p.eat(p.peekKind()); err != nil {
			return nil, err
		}
		for len(ops) > 0 && op.Holds(ops[len(ops)-1].op) {
			reduced, err := p.climb(&exps, &ops)
			if err != nil {
				return nil, err
			}
			exps = append(exps, reduced)
		}
		ops = append(ops, opStackEntry{op: op, begin: begin})
		operand, err := p.parseUnaryExp()
		if err != nil {
			return nil, err
		}
		exps = append(exps, operand)
	}

	for len(ops) > 0 {
		reduced, err := p.climb(&exps, &ops)
		if err != nil {
			return nil, err
		}
		exps = append(exps, reduced)
	}
	if len(exps) != 1 {
		return nil, p.mismatch("one reduced expression", "unbalanced operator stack")
	}
	return exps[0], nil
}

// climb pops one operator and reduces it against the pending operand
// stack: a binary operator consumes its two most recent operands; a
// ternary `:` marker consumes the alternate, consequent, and condition
// operands built up since the matching `?`.
func (p *Parser) climb(exps *[]ast.Expr, ops *[]opStackEntry) (ast.Expr, error) {
	top := (*ops)[len(*ops)-1]
	*ops = (*ops)[:len(*ops)-1]

	if top.op == ast.OpColon {
		if len(*exps) < 3 {
			return nil, p.mismatch("ternary operands", "incomplete ternary")
		}
		n := len(*exps)
		alternate, consequent, cond := (*exps)[n-1], (*exps)[n-2], (*exps)[n-3]
		*exps = (*exps)[:n-3]
		// The matching `?` marker was already pushed and must be dropped.
		if len(*ops) == 0 || (*ops)[len(*ops)-1].op != ast.OpQuestionMark {
			return nil, p.mismatch("?", "unmatched :")
		}
		*ops = (*ops)[:len(*ops)-1]
		return &ast.Ternary{Meta: ast.Meta{ID: p.allocID(), Span: ast.Span{Begin: top.begin, End: p.prevToken.Line}}, Cond: cond, Consequent: consequent, Alternate: alternate}, nil
	}
	if top.op == ast.OpQuestionMark {
		return nil, p.mismatch(":", "unmatched ?")
	}

	n := len(*exps)
	if n < 2 {
		return nil, p.mismatch("two operands", "incomplete binary expression")
	}
	right, left := (*exps)[n-1], (*exps)[n-2]
	*exps = (*exps)[:n-2]
	return &ast.Binary{Meta: ast.Meta{ID: p.allocID(), Span: ast.Span{Begin: top.begin, End: p.prevToken.Line}}, Left: left, Op: top.op, Right: right}, nil
}

// parseUnaryExp parses at most one prefix operator XOR one postfix
// operator around a base expression.
func (p *Parser) parseUnaryExp() (ast.Expr, error) {
	begin := p.markBegin()
	if op, ok := prefixOps[p.peekKind()]; ok {
		if _, err := p.eat(p.peekKind()); err != nil {
			return nil, err
		}
		// Only one prefix operator is ever consumed here, and the operand
		// is a base expression with no postfix chase: prefix and postfix
		// may never both apply to the same base.
		operand, err := p.parseBaseExp()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Meta: p.meta(begin), Op: op, Operand: operand}, nil
	}

	base, err := p.parseBaseExp()
	if err != nil {
		return nil, err
	}
	switch p.peekKind() {
	case token.INC:
		if _, err := p.eat(token.INC); err != nil {
			return nil, err
		}
		return &ast.Unary{Meta: p.meta(begin), Op: ast.OpPostInc, Postfix: true, Operand: base}, nil
	case token.DEC:
		if _, err := p.eat(token.DEC); err != nil {
			return nil, err
		}
		return &ast.Unary{Meta: p.meta(begin), Op: ast.OpPostDec, Postfix: true, Operand: base}, nil
	}
	return base, nil
}

// parseBaseExp parses one atom, then loops consuming call/index/member
// chains in any order until none apply.
func (p *Parser) parseBaseExp() (ast.Expr, error) {
	begin := p.markBegin()
	atom, err := p.parseAtomExp()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peekKind() {
		case token.LPAREN:
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			atom = &ast.Call{Meta: p.meta(begin), Callee: atom, Args: args}
		case token.LBRACKET:
			if _, err := p.eat(token.LBRACKET); err != nil {
				return nil, err
			}
			idx, err := p.parseExp()
			if err != nil {
				return nil, err
			}
			if _, err := p.eat(token.RBRACKET); err != nil {
				return nil, err
			}
			atom = &ast.Index{Meta: p.meta(begin), Target: atom, Index: idx}
		case token.DOT:
			if _, err := p.eat(token.DOT); err != nil {
				return nil, err
			}
			name, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			atom = &ast.Dot{Meta: p.meta(begin), Target: atom, Name: name}
		default:
			return atom, nil
		}
	}
}

func (p *Parser) parseArgs() (*ast.Args, error) {
	begin := p.markBegin()
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	var exps *ast.ExpSeq
	if p.peekKind() != token.RPAREN {
		var err error
		exps, err = p.parseExpSeq()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Args{Meta: p.meta(begin), Exps: exps}, nil
}

// parseAtomExp parses the smallest expression units: identifiers (with the
// single-parameter arrow shortcut), literals, this/super, array literals,
// function expressions, new expressions, and parenthesized groups/arrow
// parameter lists.
func (p *Parser) parseAtomExp() (ast.Expr, error) {
	begin := p.markBegin()
	switch p.peekKind() {
	case token.IDENT:
		if p.lookAhead().Type == token.ARROW {
			return p.parseSingleParamArrow()
		}
		return p.parseIdentifier()
	case token.NUMBER, token.STRING, token.TRUE, token.FALSE, token.NULL:
		return p.parseLiteral()
	case token.THIS:
		if err := p.advanceKeyword(token.THIS); err != nil {
			return nil, err
		}
		return &ast.This{Meta: p.meta(begin)}, nil
	case token.SUPER:
		if err := p.advanceKeyword(token.SUPER); err != nil {
			return nil, err
		}
		return &ast.Super{Meta: p.meta(begin)}, nil
	case token.LBRACKET:
		return p.parseArrayLiteral()
	case token.FUNCTION:
		return p.parseFunctionExp()
	case token.NEW:
		return p.parseNewExp()
	case token.LPAREN:
		if arrow, err := tryTo(p, (*Parser).parseArrowFunc); err == nil {
			return arrow, nil
		}
		return p.parseGroupExp()
	default:
		return nil, p.mismatch("expression", p.describeCur())
	}
}

func (p *Parser) parseSingleParamArrow() (*ast.ArrowFunc, error) {
	begin := p.markBegin()
	name, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.ARROW); err != nil {
		return nil, err
	}
	para := &ast.Para{Meta: ast.Meta{ID: p.allocID(), Span: name.Span}, Name: name}
	params := &ast.FormalParas{Meta: ast.Meta{ID: p.allocID(), Span: name.Span}, Params: []*ast.Para{para}}
	body, err := p.parseArrowBody()
	if err != nil {
		return nil, err
	}
	return &ast.ArrowFunc{Meta: p.meta(begin), Params: params, Body: body}, nil
}

func (p *Parser) parseArrowFunc() (*ast.ArrowFunc, error) {
	begin := p.markBegin()
	params, err := p.parseFormalParas()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.ARROW); err != nil {
		return nil, err
	}
	body, err := p.parseArrowBody()
	if err != nil {
		return nil, err
	}
	return &ast.ArrowFunc{Meta: p.meta(begin), Params: params, Body: body}, nil
}

// parseArrowBody accepts either a real block or a bare expression, which
// is desugared into a FuncBody wrapping a single synthetic Return.
func (p *Parser) parseArrowBody() (*ast.FuncBody, error) {
	if p.peekKind() == token.LBRACE {
		return p.parseFuncBody()
	}
	begin := p.markBegin()
	exp, err := p.parseSingleExp()
	if err != nil {
		return nil, err
	}
	ret := &ast.Return{Meta: p.meta(begin), Value: exp}
	elements := &ast.SourceElements{Meta: ast.Meta{ID: p.allocID(), Span: ret.Span}, Stats: []ast.Stat{ret}}
	return &ast.FuncBody{Meta: p.meta(begin), Elements: elements}, nil
}

func (p *Parser) parseGroupExp() (*ast.Group, error) {
	begin := p.markBegin()
	if _, err := p.eat(token.LPAREN); err != nil {
		return nil, err
	}
	inner, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.Group{Meta: p.meta(begin), Inner: inner}, nil
}

func (p *Parser) parseArrayLiteral() (*ast.Array, error) {
	begin := p.markBegin()
	if _, err := p.eat(token.LBRACKET); err != nil {
		return nil, err
	}
	var elements []ast.Expr
	for p.peekKind() != token.RBRACKET {
		exp, err := p.parseSingleExp()
		if err != nil {
			return nil, err
		}
		elements = append(elements, exp)
		if p.peekKind() != token.COMMA {
			break
		}
		if _, err := p.eat(token.COMMA); err != nil {
			return nil, err
		}
		if p.peekKind() == token.RBRACKET {
			return nil, p.mismatch("array element", p.describeCur())
		}
	}
	if _, err := p.eat(token.RBRACKET); err != nil {
		return nil, err
	}
	return &ast.Array{Meta: p.meta(begin), Elements: elements}, nil
}

func (p *Parser) parseFunctionExp() (*ast.Function, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.FUNCTION); err != nil {
		return nil, err
	}
	if p.peekKind() == token.MUL {
		if _, err := p.eat(token.MUL); err != nil {
			return nil, err
		}
	}
	var name *ast.Identifier
	if p.peekKind() == token.IDENT {
		var err error
		name, err = p.parseIdentifier()
		if err != nil {
			return nil, err
		}
	}
	callSig, err := p.parseCallSig()
	if err != nil {
		return nil, err
	}
	body, err := p.parseFuncBody()
	if err != nil {
		return nil, err
	}
	return &ast.Function{Meta: p.meta(begin), Name: name, CallSig: callSig, Body: body}, nil
}

func (p *Parser) parseNewExp() (*ast.New, error) {
	begin := p.markBegin()
	if err := p.advanceKeyword(token.NEW); err != nil {
		return nil, err
	}
	callee, err := p.parseBaseExpNoCall()
	if err != nil {
		return nil, err
	}
	var args *ast.Args
	if p.peekKind() == token.LPAREN {
		args, err = p.parseArgs()
		if err != nil {
			return nil, err
		}
	}
	return &ast.New{Meta: p.meta(begin), Callee: callee, Args: args}, nil
}

// parseBaseExpNoCall parses a chain of `.`/`[]` accesses without
// consuming a trailing `(...)`, so `new` can claim the argument list
// itself.
func (p *Parser) parseBaseExpNoCall() (ast.Expr, error) {
	begin := p.markBegin()
	atom, err := p.parseAtomExp()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peekKind() {
		case token.LBRACKET:
			if _, err := p.eat(token.LBRACKET); err != nil {
				return nil, err
			}
			idx, err := p.parseExp()
			if err != nil {
				return nil, err
			}
			if _, err := p.eat(token.RBRACKET); err != nil {
				return nil, err
			}
			atom = &ast.Index{Meta: p.meta(begin), Target: atom, Index: idx}
		case token.DOT:
			if _, err := p.eat(token.DOT); err != nil {
				return nil, err
			}
			name, err := p.parseIdentifier()
			if err != nil {
				return nil, err
			}
			atom = &ast.Dot{Meta: p.meta(begin), Target: atom, Name: name}
		default:
			return atom, nil
		}
	}
}
