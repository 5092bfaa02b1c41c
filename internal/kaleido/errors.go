package kaleido

import "fmt"

// ParseError is returned when the tokens do not follow the grammar. Token is
// the lookahead at the point of failure.
type ParseError struct {
	Token   Token
	Message string
}

// NewParseError creates a new parse error
func NewParseError(token Token, message string) error {
	return &ParseError{token, message}
}

func (err *ParseError) Error() string {
	if err.Token.Typ == EOF {
		return fmt.Sprintf(
			"[line %d] Error at end: %s",
			err.Token.Line,
			err.Message,
		)
	}
	return fmt.Sprintf(
		"[line %d] Error at '%s': %s",
		err.Token.Line,
		err.Token.Lexeme,
		err.Message,
	)
}

// SourceError wraps a failure of the character source with the line the
// lexer had reached.
type SourceError struct {
	Line int
	Err  error
}

func (err *SourceError) Error() string {
	return fmt.Sprintf("[line %d] Error reading source: %v", err.Line, err.Err)
}

func (err *SourceError) Unwrap() error {
	return err.Err
}
