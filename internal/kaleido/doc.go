/*
Package kaleido is the front end of a small expression language: a lexer that
pulls one token at a time from a byte source, a precedence-climbing parser and
a driver that keeps going past malformed input.

Grammars

	program      --> ( definition | external | toplevelexpr | ";" )* EOF ;
	definition   --> "def" prototype expression ;
	external     --> "extern" prototype ;
	prototype    --> IDENT "(" IDENT* ")" ;
	toplevelexpr --> expression ;
	expression   --> primary ( BINOP primary )* ;
	primary      --> IDENT
	               | IDENT "(" ( expression ( "," expression )* )? ")"
	               | NUMBER
	               | "(" expression ")" ;

Lexical rules

	IDENT   --> [a-zA-Z][a-zA-Z0-9]*     ("def" and "extern" are keywords)
	NUMBER  --> [0-9.]+
	comment --> "#" up to the end of the line

Any other byte is a token on its own. The binary operators and how tightly
they bind come from a Precedence table, by default

	<   10
	+ - 20
	*   40

Numbers with more than one '.' are accepted and take the value of their
longest valid prefix unless the parser runs with StrictNumbers.
*/
package kaleido
