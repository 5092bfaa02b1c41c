package kaleido

import "fmt"

// Token is the unit produced by the lexer. Lexeme holds the raw text of the
// token, Value is only meaningful for NUMBER tokens.
type Token struct {
	Typ    TokenType
	Lexeme string
	Value  float64
	Line   int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, value float64, line int) Token {
	return Token{typ, lexeme, value, line}
}

// Char returns the raw byte of a CHAR token, or 0 for every other kind.
func (t Token) Char() byte {
	if t.Typ != CHAR || len(t.Lexeme) == 0 {
		return 0
	}
	return t.Lexeme[0]
}

// Is reports whether the token is the single character c.
func (t Token) Is(c byte) bool {
	return t.Typ == CHAR && t.Char() == c
}

func (t Token) String() string {
	switch t.Typ {
	case NUMBER:
		return fmt.Sprintf("%s %s %v", t.Typ, t.Lexeme, t.Value)
	case EOF:
		return t.Typ.String()
	default:
		return fmt.Sprintf("%s %s", t.Typ, t.Lexeme)
	}
}

// KeywordTokens maps the reserved words to their token type.
var KeywordTokens = map[string]TokenType{
	"def":    DEF,
	"extern": EXTERN,
}

const (
	EOF TokenType = iota

	// Keywords
	DEF
	EXTERN

	// Literals
	IDENTIFIER
	NUMBER

	// Any other single byte: operators, parentheses, comma, semicolon and
	// unrecognized characters.
	CHAR
)

// TokenType is the lexical category of a token
type TokenType uint

func (tt TokenType) String() string {
	switch tt {
	case EOF:
		return "EOF"
	case DEF:
		return "DEF"
	case EXTERN:
		return "EXTERN"
	case IDENTIFIER:
		return "IDENTIFIER"
	case NUMBER:
		return "NUMBER"
	case CHAR:
		return "CHAR"
	}
	return ""
}
