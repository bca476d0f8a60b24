package fhirpath

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Tokenize splits src into tokens. Whitespace is dropped.
//
// A lexical error aborts tokenization; no partial token stream is returned.
func Tokenize(src string) ([]Token, error) {
	var tokens []Token
	i := 0

	for i < len(src) {
		ch := src[i]

		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			i++

		case ch == ',':
			tokens = append(tokens, Token{Pos: i, Kind: TokenComma, Text: ","})
			i++
		case ch == '(':
			tokens = append(tokens, Token{Pos: i, Kind: TokenOpenParen, Text: "("})
			i++
		case ch == ')':
			tokens = append(tokens, Token{Pos: i, Kind: TokenCloseParen, Text: ")"})
			i++
		case ch == '[':
			tokens = append(tokens, Token{Pos: i, Kind: TokenOpenBracket, Text: "["})
			i++
		case ch == ']':
			tokens = append(tokens, Token{Pos: i, Kind: TokenCloseBracket, Text: "]"})
			i++

		case ch == '+' || ch == '-' || ch == '*' || ch == '/' || ch == '.':
			tokens = append(tokens, Token{Pos: i, Kind: TokenOperator, Text: string(ch), Op: singleCharOperators[ch]})
			i++

		case ch == '=':
			tokens = append(tokens, Token{Pos: i, Kind: TokenComparator, Text: "=", Op: OpEq})
			i++
		case ch == '~':
			tokens = append(tokens, Token{Pos: i, Kind: TokenComparator, Text: "~", Op: OpEquiv})
			i++
		case ch == '!':
			if i+1 < len(src) && src[i+1] == '=' {
				tokens = append(tokens, Token{Pos: i, Kind: TokenComparator, Text: "!=", Op: OpNotEq})
				i += 2
			} else if i+1 < len(src) && src[i+1] == '~' {
				tokens = append(tokens, Token{Pos: i, Kind: TokenComparator, Text: "!~", Op: OpNotEquiv})
				i += 2
			} else {
				return nil, newError(Lexical, i, "'!' must be followed by '=' or '~'")
			}
		case ch == '<' || ch == '>':
			op := OpLt
			if ch == '>' {
				op = OpGt
			}
			if i+1 < len(src) && src[i+1] == '=' {
				op++
				tokens = append(tokens, Token{Pos: i, Kind: TokenComparator, Text: src[i : i+2], Op: op})
				i += 2
			} else {
				tokens = append(tokens, Token{Pos: i, Kind: TokenComparator, Text: string(ch), Op: op})
				i++
			}

		case ch == '\'' || ch == '"':
			text, end, err := scanQuoted(src, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Pos: i, Kind: TokenText, Text: text})
			i = end
		case ch == '`':
			name, end, err := scanQuoted(src, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Token{Pos: i, Kind: TokenSymbol, Text: name})
			i = end

		case isDigit(ch):
			start := i
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			if i+1 < len(src) && src[i] == '.' && isDigit(src[i+1]) {
				i++
				for i < len(src) && isDigit(src[i]) {
					i++
				}
			}
			tokens = append(tokens, Token{Pos: start, Kind: TokenNumber, Text: src[start:i]})

		case isIdentStart(ch):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			word := src[start:i]
			if op, ok := keywordOperators[word]; ok {
				tokens = append(tokens, Token{Pos: start, Kind: TokenOperator, Text: word, Op: op})
			} else {
				tokens = append(tokens, Token{Pos: start, Kind: TokenSymbol, Text: word})
			}

		case ch == '@':
			start := i
			i++
			for i < len(src) && isDateTimePart(src, i) {
				i++
			}
			if i == start+1 {
				return nil, newError(Lexical, start, "'@' must be followed by a date or date time")
			}
			tokens = append(tokens, Token{Pos: start, Kind: TokenDateTime, Text: src[start+1 : i]})

		default:
			r, _ := utf8.DecodeRuneInString(src[i:])
			return nil, newError(Lexical, i, "unexpected character %q", r)
		}
	}

	return tokens, nil
}

var singleCharOperators = map[byte]Operator{
	'+': OpAdd,
	'-': OpSub,
	'*': OpMul,
	'/': OpDiv,
	'.': OpDot,
}

// scanQuoted reads the literal delimited by src[start] and returns its unescaped
// value and the offset just after the closing delimiter.
func scanQuoted(src string, start int) (string, int, error) {
	quote := src[start]
	var b strings.Builder

	i := start + 1
	for i < len(src) {
		ch := src[i]
		switch ch {
		case quote:
			return b.String(), i + 1, nil
		case '\\':
			if i+1 >= len(src) {
				return "", 0, newError(Lexical, start, "unterminated literal")
			}
			switch esc := src[i+1]; esc {
			case '\'', '"', '`', '\\', '/':
				b.WriteByte(esc)
				i += 2
			case 'f':
				b.WriteByte('\f')
				i += 2
			case 'n':
				b.WriteByte('\n')
				i += 2
			case 'r':
				b.WriteByte('\r')
				i += 2
			case 't':
				b.WriteByte('\t')
				i += 2
			case 'u':
				r, err := scanUnicodeEscape(src, i)
				if err != nil {
					return "", 0, err
				}
				if utf16.IsSurrogate(r) {
					// a high surrogate must be followed by an escaped low surrogate
					low, err := scanUnicodeEscape(src, i+6)
					if err != nil {
						return "", 0, newError(Lexical, i, "unpaired surrogate %q", src[i:i+6])
					}
					r = utf16.DecodeRune(r, low)
					if r == unicode.ReplacementChar {
						return "", 0, newError(Lexical, i, "invalid surrogate pair %q", src[i:i+12])
					}
					i += 6
				}
				b.WriteRune(r)
				i += 6
			default:
				return "", 0, newError(Lexical, i, "unknown escape sequence \\%c", esc)
			}
		default:
			b.WriteByte(ch)
			i++
		}
	}

	return "", 0, newError(Lexical, start, "unterminated literal")
}

// scanUnicodeEscape decodes the \uXXXX escape starting at src[i].
func scanUnicodeEscape(src string, i int) (rune, error) {
	if i+6 > len(src) || src[i] != '\\' || src[i+1] != 'u' {
		return 0, newError(Lexical, i, "incomplete unicode escape")
	}
	code, err := strconv.ParseUint(src[i+2:i+6], 16, 32)
	if err != nil {
		return 0, newError(Lexical, i, "invalid unicode escape %q", src[i:i+6])
	}
	return rune(code), nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// isDateTimePart reports whether src[i] continues a datetime literal.
// Separators that could also start an operator only count when a digit follows.
func isDateTimePart(src string, i int) bool {
	switch ch := src[i]; {
	case isDigit(ch), ch == 'T', ch == 'Z', ch == ':':
		return true
	case ch == '-' || ch == '+' || ch == '.':
		return i+1 < len(src) && isDigit(src[i+1])
	default:
		return false
	}
}
