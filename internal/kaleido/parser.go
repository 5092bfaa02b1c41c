package kaleido

import "fmt"

const (
	// AnonName is the reserved name given to top-level expressions.
	AnonName = "__anon_expr"
	// DefaultMaxDepth bounds how deeply expressions may nest.
	DefaultMaxDepth = 512
)

// Options configures a parser. The zero value of every field falls back to
// the default, except MaxDepth where a negative value disables the guard.
type Options struct {
	Precedence    Precedence
	AnonName      string
	MaxDepth      int
	StrictNumbers bool
}

// DefaultOptions returns the standard operator set with the default names
// and limits.
func DefaultOptions() Options {
	return Options{
		Precedence: DefaultPrecedence(),
		AnonName:   AnonName,
		MaxDepth:   DefaultMaxDepth,
	}
}

// Parser builds syntax trees from the tokens of a Lexer, pulling one token at
// a time. It follows the grammar
//
//	program      --> ( definition | external | toplevelexpr | ";" )* ;
//	definition   --> "def" prototype expression ;
//	external     --> "extern" prototype ;
//	prototype    --> IDENT "(" IDENT* ")" ;
//	toplevelexpr --> expression ;
//	expression   --> primary ( BINOP primary )* ;
//	primary      --> IDENT
//	               | IDENT "(" ( expression ( "," expression )* )? ")"
//	               | NUMBER
//	               | "(" expression ")" ;
//
// Binary operators are not spelled out as grammar rules, their grouping comes
// from the precedence table.
type Parser struct {
	lexer         *Lexer
	tok           Token
	primed        bool
	prec          Precedence
	anonName      string
	maxDepth      int
	depth         int
	strictNumbers bool
}

// NewParser creates a new parser reading from lexer. The precedence table in
// opts is copied, later changes to it do not affect the parser.
func NewParser(lexer *Lexer, opts Options) *Parser {
	parser := new(Parser)
	parser.lexer = lexer
	parser.prec = opts.Precedence
	if parser.prec == nil {
		parser.prec = DefaultPrecedence()
	}
	parser.prec = parser.prec.clone()
	parser.anonName = opts.AnonName
	if parser.anonName == "" {
		parser.anonName = AnonName
	}
	switch {
	case opts.MaxDepth == 0:
		parser.maxDepth = DefaultMaxDepth
	case opts.MaxDepth < 0:
		parser.maxDepth = 0
	default:
		parser.maxDepth = opts.MaxDepth
	}
	parser.strictNumbers = opts.StrictNumbers
	return parser
}

// ParseExpression parses a single expression.
//
//	expression --> primary ( BINOP primary )* ;
func (parser *Parser) ParseExpression() (Expr, error) {
	parser.prime()
	return parser.expression()
}

// ParsePrototype parses a function name and its parameter list.
func (parser *Parser) ParsePrototype() (*Prototype, error) {
	parser.prime()
	return parser.prototype()
}

// ParseDefinition parses a function definition.
//
//	definition --> "def" prototype expression ;
func (parser *Parser) ParseDefinition() (*Function, error) {
	parser.prime()
	parser.advance() // eat def
	proto, err := parser.prototype()
	if err != nil {
		return nil, err
	}
	body, err := parser.expression()
	if err != nil {
		return nil, err
	}
	return NewFunction(proto, body), nil
}

// ParseExtern parses the declaration of a function defined elsewhere.
//
//	external --> "extern" prototype ;
func (parser *Parser) ParseExtern() (*Prototype, error) {
	parser.prime()
	parser.advance() // eat extern
	return parser.prototype()
}

// ParseTopLevelExpr parses a bare expression and wraps it in a function
// without parameters, named with the reserved anonymous name.
func (parser *Parser) ParseTopLevelExpr() (*Function, error) {
	parser.prime()
	body, err := parser.expression()
	if err != nil {
		return nil, err
	}
	return NewFunction(NewPrototype(parser.anonName, []string{}), body), nil
}

func (parser *Parser) expression() (Expr, error) {
	if parser.maxDepth > 0 && parser.depth >= parser.maxDepth {
		return nil, NewParseError(parser.tok, "expression nesting too deep")
	}
	parser.depth++
	defer func() { parser.depth-- }()

	lhs, err := parser.primary()
	if err != nil {
		return nil, err
	}
	return parser.binOpRHS(0, lhs)
}

// binOpRHS consumes ( BINOP primary )* as long as the operators bind at least
// as tightly as minPrec. A primary followed by an operator of higher
// precedence than the one before it becomes the left operand of that operator
// instead, which keeps equal precedences left-associative.
func (parser *Parser) binOpRHS(minPrec int, lhs Expr) (Expr, error) {
	for {
		tokPrec := parser.prec.Of(parser.tok)
		if tokPrec < minPrec {
			return lhs, nil
		}

		op := parser.tok.Char()
		parser.advance() // eat binop

		rhs, err := parser.primary()
		if err != nil {
			return nil, err
		}

		if nextPrec := parser.prec.Of(parser.tok); tokPrec < nextPrec {
			rhs, err = parser.binOpRHS(tokPrec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = NewBinaryExpr(op, lhs, rhs)
	}
}

// primary --> identifierexpr | NUMBER | "(" expression ")" ;
func (parser *Parser) primary() (Expr, error) {
	switch {
	case parser.tok.Typ == IDENTIFIER:
		return parser.identifierExpr()
	case parser.tok.Typ == NUMBER:
		return parser.numberExpr()
	case parser.tok.Is('('):
		return parser.parenExpr()
	}
	return nil, NewParseError(parser.tok, "unknown token when expecting an expression")
}

// identifierExpr --> IDENT | IDENT "(" ( expression ( "," expression )* )? ")" ;
func (parser *Parser) identifierExpr() (Expr, error) {
	name := parser.tok.Lexeme
	parser.advance() // eat identifier

	if !parser.tok.Is('(') {
		return NewVariableExpr(name), nil
	}

	parser.advance() // eat (
	args := make([]Expr, 0)
	if !parser.tok.Is(')') {
		for {
			arg, err := parser.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if parser.tok.Is(')') {
				break
			}
			if !parser.tok.Is(',') {
				return nil, NewParseError(parser.tok, "Expected ')' or ',' in argument list")
			}
			parser.advance() // eat ,
		}
	}
	parser.advance() // eat )

	return NewCallExpr(name, args), nil
}

func (parser *Parser) numberExpr() (Expr, error) {
	tok := parser.tok
	if parser.strictNumbers && !isWellFormedNumber(tok.Lexeme) {
		return nil, NewParseError(tok, fmt.Sprintf("malformed number literal '%s'", tok.Lexeme))
	}
	parser.advance() // eat number
	return NewNumberExpr(tok.Value), nil
}

// parenExpr --> "(" expression ")" ;
func (parser *Parser) parenExpr() (Expr, error) {
	parser.advance() // eat (
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(')', "expected ')'"); err != nil {
		return nil, err
	}
	return expr, nil
}

// prototype --> IDENT "(" IDENT* ")" ;
func (parser *Parser) prototype() (*Prototype, error) {
	if parser.tok.Typ != IDENTIFIER {
		return nil, NewParseError(parser.tok, "Expected function name in prototype")
	}
	name := parser.tok.Lexeme
	parser.advance()

	if !parser.tok.Is('(') {
		return nil, NewParseError(parser.tok, "Expected '(' in prototype")
	}

	params := make([]string, 0)
	for parser.advance().Typ == IDENTIFIER {
		params = append(params, parser.tok.Lexeme)
	}
	if err := parser.consume(')', "Expected ')' in prototype"); err != nil {
		return nil, err
	}

	return NewPrototype(name, params), nil
}

// consume eats the current token if it is the character c, otherwise it
// fails with message.
func (parser *Parser) consume(c byte, message string) error {
	if parser.tok.Is(c) {
		parser.advance()
		return nil
	}
	return NewParseError(parser.tok, message)
}

// peek returns the current token, reading the first one if needed.
func (parser *Parser) peek() Token {
	parser.prime()
	return parser.tok
}

// advance moves the lookahead to the next token and returns it.
func (parser *Parser) advance() Token {
	parser.tok = parser.lexer.Next()
	parser.primed = true
	return parser.tok
}

func (parser *Parser) prime() {
	if !parser.primed {
		parser.advance()
	}
}
