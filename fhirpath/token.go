package fhirpath

import "fmt"

type TokenKind uint8

const (
	TokenComma TokenKind = iota + 1
	TokenOpenParen
	TokenCloseParen
	TokenOpenBracket
	TokenCloseBracket
	// TokenSymbol is an identifier, either plain or delimited by backticks.
	TokenSymbol
	// TokenText is a quoted string literal. Token.Text holds the unescaped value.
	TokenText
	// TokenDateTime is an @-prefixed literal. Token.Text holds the part after the @.
	TokenDateTime
	TokenNumber
	TokenOperator
	TokenComparator
)

var tokenKindNames = [...]string{
	TokenComma:        "comma",
	TokenOpenParen:    "'('",
	TokenCloseParen:   "')'",
	TokenOpenBracket:  "'['",
	TokenCloseBracket: "']'",
	TokenSymbol:       "identifier",
	TokenText:         "string literal",
	TokenDateTime:     "datetime literal",
	TokenNumber:       "number",
	TokenOperator:     "operator",
	TokenComparator:   "comparator",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) && tokenKindNames[k] != "" {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// Operator identifies operator and comparator tokens and binary AST nodes.
type Operator uint8

const (
	OpNone Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpDot
	OpAnd
	OpOr
	OpXor
	OpAs
	OpIs
	OpEq
	OpNotEq
	OpEquiv
	OpNotEquiv
	OpGt
	OpGte
	OpLt
	OpLte
)

var operatorText = [...]string{
	OpNone:     "",
	OpAdd:      "+",
	OpSub:      "-",
	OpMul:      "*",
	OpDiv:      "/",
	OpDot:      ".",
	OpAnd:      "and",
	OpOr:       "or",
	OpXor:      "xor",
	OpAs:       "as",
	OpIs:       "is",
	OpEq:       "=",
	OpNotEq:    "!=",
	OpEquiv:    "~",
	OpNotEquiv: "!~",
	OpGt:       ">",
	OpGte:      ">=",
	OpLt:       "<",
	OpLte:      "<=",
}

func (o Operator) String() string {
	if int(o) < len(operatorText) {
		return operatorText[o]
	}
	return fmt.Sprintf("Operator(%d)", o)
}

// IsComparator reports whether o is one of = != ~ !~ > >= < <=.
func (o Operator) IsComparator() bool {
	return o >= OpEq && o <= OpLte
}

var keywordOperators = map[string]Operator{
	"and": OpAnd,
	"or":  OpOr,
	"xor": OpXor,
	"as":  OpAs,
	"is":  OpIs,
}

// Token is a lexical unit of an expression.
type Token struct {
	// Pos is the byte offset of the first character of the token.
	Pos  int
	Kind TokenKind
	Text string
	// Op is set for TokenOperator and TokenComparator.
	Op Operator
}

func (t Token) String() string {
	switch t.Kind {
	case TokenOperator, TokenComparator:
		return fmt.Sprintf("%s %q", t.Kind, t.Op.String())
	case TokenSymbol, TokenText, TokenDateTime, TokenNumber:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}
