package kaleido

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// eofChar marks the exhausted source in the lookahead slot.
const eofChar = -1

// Lexer pulls bytes from a character source and hands out one token per call
// to Next. It owns the single byte of lookahead, there is no token buffer.
type Lexer struct {
	reader io.ByteReader
	last   int
	line   int
	err    error
}

// NewLexer creates a lexer reading from r. Readers that are not already byte
// readers get wrapped in a bufio.Reader.
func NewLexer(r io.Reader) *Lexer {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	lexer := new(Lexer)
	lexer.reader = br
	lexer.last = ' '
	lexer.line = 1
	return lexer
}

// Err returns the read failure that ended the input, if the source failed
// with anything other than io.EOF.
func (lexer *Lexer) Err() error {
	return lexer.err
}

// Next returns the next token in the source. Once the source is exhausted
// every call returns an EOF token.
func (lexer *Lexer) Next() Token {
	for {
		for isSpace(lexer.last) {
			lexer.advance()
		}
		line := lexer.line

		switch {
		case isAlpha(lexer.last):
			return lexer.scanIdentifier(line)
		case isDigit(lexer.last) || lexer.last == '.':
			return lexer.scanNumber(line)
		case lexer.last == '#':
			lexer.skipComment()
			continue
		case lexer.last == eofChar:
			return NewToken(EOF, "", 0, line)
		}

		c := byte(lexer.last)
		lexer.advance()
		return NewToken(CHAR, string([]byte{c}), 0, line)
	}
}

// Tokens drains the source and returns every token up to and including EOF.
func (lexer *Lexer) Tokens() []Token {
	tokens := make([]Token, 0)
	for {
		tok := lexer.Next()
		tokens = append(tokens, tok)
		if tok.Typ == EOF {
			return tokens
		}
	}
}

// identifier: [a-zA-Z][a-zA-Z0-9]*
func (lexer *Lexer) scanIdentifier(line int) Token {
	var sb strings.Builder
	for {
		sb.WriteByte(byte(lexer.last))
		lexer.advance()
		if !isAlphanumeric(lexer.last) {
			break
		}
	}
	lexeme := sb.String()
	if tokenType, isKeyword := KeywordTokens[lexeme]; isKeyword {
		return NewToken(tokenType, lexeme, 0, line)
	}
	return NewToken(IDENTIFIER, lexeme, 0, line)
}

// number: [0-9.]+
func (lexer *Lexer) scanNumber(line int) Token {
	var sb strings.Builder
	for {
		sb.WriteByte(byte(lexer.last))
		lexer.advance()
		if !isDigit(lexer.last) && lexer.last != '.' {
			break
		}
	}
	lexeme := sb.String()
	return NewToken(NUMBER, lexeme, parseNumber(lexeme), line)
}

// skipComment consumes everything up to the end of the line. The line break
// itself is left for the whitespace loop.
func (lexer *Lexer) skipComment() {
	for {
		lexer.advance()
		if lexer.last == eofChar || lexer.last == '\n' || lexer.last == '\r' {
			return
		}
	}
}

// advance replaces the lookahead with the next byte of the source.
func (lexer *Lexer) advance() {
	if lexer.last == eofChar {
		return
	}
	if lexer.last == '\n' {
		lexer.line++
	}
	b, err := lexer.reader.ReadByte()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			lexer.err = &SourceError{lexer.line, err}
		}
		lexer.last = eofChar
		return
	}
	lexer.last = int(b)
}

// parseNumber converts the longest valid prefix of a [0-9.]+ lexeme, so
// "1.2.3" reads as 1.2 and "." reads as 0.
func parseNumber(lexeme string) float64 {
	if dot := strings.IndexByte(lexeme, '.'); dot >= 0 {
		if next := strings.IndexByte(lexeme[dot+1:], '.'); next >= 0 {
			lexeme = lexeme[:dot+1+next]
		}
	}
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return value
}

// isWellFormedNumber reports whether the lexeme is a plain decimal literal
// with at most one '.' and at least one digit.
func isWellFormedNumber(lexeme string) bool {
	if strings.Count(lexeme, ".") > 1 {
		return false
	}
	_, err := strconv.ParseFloat(lexeme, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

func isSpace(c int) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlpha(c int) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c int) bool {
	return '0' <= c && c <= '9'
}

func isAlphanumeric(c int) bool {
	return isAlpha(c) || isDigit(c)
}
