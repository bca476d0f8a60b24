package fhirpath

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Binding powers, lowest to highest. Unary minus and path-join bind tighter
// than every binary operator and are handled by parseUnary and parsePathTerm.
const (
	precLowest = iota
	precOr
	precAnd
	precComparison
	precAdditive
	precMultiplicative
)

func precedence(op Operator) int {
	switch op {
	case OpOr, OpXor:
		return precOr
	case OpAnd:
		return precAnd
	case OpIs, OpAs, OpEq, OpNotEq, OpEquiv, OpNotEquiv, OpGt, OpGte, OpLt, OpLte:
		return precComparison
	case OpAdd, OpSub:
		return precAdditive
	case OpMul, OpDiv:
		return precMultiplicative
	default:
		return precLowest
	}
}

type parser struct {
	tokens []Token
	pos    int
	// end is the length of the source, used to position errors at end of input.
	end int
}

func parseTokens(tokens []Token, srcLen int) (Node, error) {
	if len(tokens) == 0 {
		return nil, newError(Syntax, 0, "empty expression")
	}

	p := &parser{tokens: tokens, end: srcLen}
	node, err := p.parseExpression(precOr)
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, newError(Syntax, tok.Pos, "unexpected %s", tok)
	}
	return node, nil
}

func (p *parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) peekKind(kind TokenKind) bool {
	tok, ok := p.peek()
	return ok && tok.Kind == kind
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

func isBinaryOperator(tok Token) bool {
	return (tok.Kind == TokenOperator || tok.Kind == TokenComparator) && tok.Op != OpDot
}

func (p *parser) parseExpression(minPrec int) (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek()
		if !ok || !isBinaryOperator(tok) {
			return left, nil
		}
		prec := precedence(tok.Op)
		if prec < minPrec {
			return left, nil
		}
		p.next()

		if err := p.expectOperand(tok); err != nil {
			return nil, err
		}

		var right Node
		if tok.Op == OpIs || tok.Op == OpAs {
			right, err = p.parseTypeSpecifier()
		} else {
			right, err = p.parseExpression(prec + 1)
		}
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{Offset: tok.Pos, Op: tok.Op, Left: left, Right: right}

		if prec == precComparison {
			if next, ok := p.peek(); ok && isBinaryOperator(next) && precedence(next.Op) == precComparison {
				return nil, symbolError(Syntax, next.Pos, next.Op.String(),
					"comparison operators are not associative, %q cannot follow %q", next.Op, tok.Op)
			}
		}
	}
}

// expectOperand checks that a right operand follows the binary operator op.
func (p *parser) expectOperand(op Token) error {
	tok, ok := p.peek()
	missing := !ok
	if ok {
		switch tok.Kind {
		case TokenCloseParen, TokenCloseBracket, TokenComma:
			missing = true
		case TokenComparator:
			missing = true
		case TokenOperator:
			missing = tok.Op != OpSub
		}
	}
	if missing {
		return symbolError(Syntax, op.Pos, op.Op.String(), "operator %q has no right operand", op.Op)
	}
	return nil
}

func (p *parser) parseUnary() (Node, error) {
	tok, ok := p.peek()
	if !ok || tok.Kind != TokenOperator || tok.Op != OpSub {
		return p.parsePathTerm()
	}
	p.next()

	// Fold the sign into a plain numeric literal, so that the smallest
	// integer can be written as a literal.
	if num, ok := p.peek(); ok && num.Kind == TokenNumber && !p.followedByDot(p.pos+1) {
		p.next()
		lit, err := parseNumber(num.Pos, "-"+num.Text)
		if err != nil {
			return nil, err
		}
		lit.Offset = tok.Pos
		return lit, nil
	}

	if err := p.expectOperand(tok); err != nil {
		return nil, err
	}
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &UnaryNode{Offset: tok.Pos, Op: OpSub, Operand: operand}, nil
}

func (p *parser) followedByDot(i int) bool {
	return i < len(p.tokens) && p.tokens[i].Kind == TokenOperator && p.tokens[i].Op == OpDot
}

func (p *parser) parsePathTerm() (Node, error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.followedByDot(p.pos) {
		dot := p.next()
		right, err := p.parseInvocation(dot)
		if err != nil {
			return nil, err
		}
		node = &BinaryNode{Offset: dot.Pos, Op: OpDot, Left: node, Right: right}
	}
	return node, nil
}

// parseInvocation parses the identifier or function call after a '.'.
func (p *parser) parseInvocation(dot Token) (Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, newError(Syntax, dot.Pos, "expected identifier after '.'")
	}
	if tok.Kind != TokenSymbol {
		return nil, newError(Syntax, tok.Pos, "expected identifier after '.', got %s", tok)
	}
	p.next()

	if p.peekKind(TokenOpenParen) {
		return p.parseFunction(tok)
	}

	index, err := p.parseIndex()
	if err != nil {
		return nil, err
	}
	return &PathNode{Offset: tok.Pos, Name: tok.Text, Index: index}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, newError(Syntax, p.end, "unexpected end of expression")
	}

	switch tok.Kind {
	case TokenNumber:
		p.next()
		return parseNumber(tok.Pos, tok.Text)

	case TokenText:
		p.next()
		return &LiteralNode{Offset: tok.Pos, Value: String(tok.Text)}, nil

	case TokenDateTime:
		p.next()
		dt, err := ParseDateTime(tok.Text)
		if err != nil {
			return nil, newError(Lexical, tok.Pos, "invalid datetime literal @%s: %v", tok.Text, err)
		}
		return &LiteralNode{Offset: tok.Pos, Value: dt}, nil

	case TokenSymbol:
		p.next()
		if p.peekKind(TokenOpenParen) {
			return p.parseFunction(tok)
		}
		switch tok.Text {
		case "true":
			return &LiteralNode{Offset: tok.Pos, Value: Boolean(true)}, nil
		case "false":
			return &LiteralNode{Offset: tok.Pos, Value: Boolean(false)}, nil
		}
		index, err := p.parseIndex()
		if err != nil {
			return nil, err
		}
		return &RootNode{Offset: tok.Pos, Name: tok.Text, Index: index}, nil

	case TokenOpenParen:
		p.next()
		inner, err := p.parseExpression(precOr)
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok {
			return nil, newError(Syntax, tok.Pos, "unclosed parenthesis")
		}
		if closing.Kind != TokenCloseParen {
			return nil, newError(Syntax, closing.Pos, "expected ')', got %s", closing)
		}
		p.next()
		index, err := p.parseIndex()
		if err != nil {
			return nil, err
		}
		return &ParenNode{Offset: tok.Pos, Expr: inner, Index: index}, nil

	default:
		return nil, newError(Syntax, tok.Pos, "unexpected %s", tok)
	}
}

// parseFunction parses the argument list of the function named by name.
// The current token is the opening parenthesis.
func (p *parser) parseFunction(name Token) (Node, error) {
	open := p.next()

	var args []Node
	if p.peekKind(TokenCloseParen) {
		p.next()
	} else {
	loop:
		for {
			arg, err := p.parseExpression(precOr)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			tok, ok := p.peek()
			if !ok {
				return nil, newError(Syntax, open.Pos, "unclosed parenthesis in call of %s", name.Text)
			}
			switch tok.Kind {
			case TokenComma:
				p.next()
			case TokenCloseParen:
				p.next()
				break loop
			default:
				return nil, newError(Syntax, tok.Pos, "missing comma between arguments of %s", name.Text)
			}
		}
	}

	index, err := p.parseIndex()
	if err != nil {
		return nil, err
	}
	return &FunctionNode{Offset: name.Pos, Name: name.Text, Args: args, Index: index}, nil
}

// parseIndex parses an optional "[n]" selector and returns NoIndex if there is none.
func (p *parser) parseIndex() (int, error) {
	if !p.peekKind(TokenOpenBracket) {
		return NoIndex, nil
	}
	open := p.next()

	tok, ok := p.peek()
	if !ok {
		return 0, newError(Syntax, open.Pos, "unclosed bracket")
	}
	if tok.Kind != TokenNumber || strings.Contains(tok.Text, ".") {
		return 0, newError(Syntax, tok.Pos, "index must be a non-negative integer literal")
	}
	index, err := strconv.Atoi(tok.Text)
	if err != nil || index > maxIndex {
		return 0, newError(Syntax, tok.Pos, "index %s out of range", tok.Text)
	}
	p.next()

	closing, ok := p.peek()
	if !ok {
		return 0, newError(Syntax, open.Pos, "unclosed bracket")
	}
	if closing.Kind != TokenCloseBracket {
		return 0, newError(Syntax, closing.Pos, "expected ']', got %s", closing)
	}
	p.next()

	return index, nil
}

const maxIndex = 1<<31 - 1

// parseTypeSpecifier parses the right operand of is and as.
func (p *parser) parseTypeSpecifier() (Node, error) {
	tok := p.next()
	if tok.Kind != TokenSymbol {
		return nil, newError(Syntax, tok.Pos, "expected type name, got %s", tok)
	}

	if (tok.Text == "System" || tok.Text == "FHIR") && p.followedByDot(p.pos) &&
		p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Kind == TokenSymbol {
		p.next()
		name := p.next()
		return &TypeSpecifierNode{Offset: tok.Pos, Namespace: tok.Text, Name: name.Text}, nil
	}
	return &TypeSpecifierNode{Offset: tok.Pos, Name: tok.Text}, nil
}

func parseNumber(pos int, text string) (*LiteralNode, error) {
	if strings.Contains(text, ".") {
		d, _, err := apd.NewFromString(text)
		if err != nil {
			return nil, newError(Lexical, pos, "invalid decimal literal %s", text)
		}
		return &LiteralNode{Offset: pos, Value: Decimal{Value: d}}, nil
	}

	i, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return nil, newError(Lexical, pos, "integer literal %s out of range", text)
	}
	return &LiteralNode{Offset: pos, Value: Integer(i)}, nil
}
