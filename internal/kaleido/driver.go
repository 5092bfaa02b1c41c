package kaleido

import (
	"fmt"
	"io"
)

// Handler receives every entity the driver parses successfully. It is the
// hand-off point to whatever consumes the syntax trees.
type Handler interface {
	HandleDefinition(fn *Function)
	HandleExtern(proto *Prototype)
	HandleTopLevelExpr(fn *Function)
}

type nopHandler struct{}

func (nopHandler) HandleDefinition(*Function) {}
func (nopHandler) HandleExtern(*Prototype) {}
func (nopHandler) HandleTopLevelExpr(*Function) {}

// Driver runs the top-level loop: it dispatches on the current token until
// the input is exhausted. A failed entity is reported, one token is skipped
// and parsing carries on.
type Driver struct {
	parser    *Parser
	handler   Handler
	reporter  Reporter
	promptOut io.Writer
	prompt    string
}

// NewDriver creates a driver on top of parser. A nil handler discards the
// parsed entities.
func NewDriver(parser *Parser, handler Handler, reporter Reporter) *Driver {
	if handler == nil {
		handler = nopHandler{}
	}
	return &Driver{parser: parser, handler: handler, reporter: reporter}
}

// SetPrompt makes the driver write prompt to out before every dispatch.
func (d *Driver) SetPrompt(out io.Writer, prompt string) {
	d.promptOut = out
	d.prompt = prompt
}

// Run parses until the end of input. Syntax errors never stop it, the only
// error returned is a failure of the character source.
//
//	top --> definition | external | expression | ";" ;
func (d *Driver) Run() error {
	for {
		if d.promptOut != nil {
			fmt.Fprint(d.promptOut, d.prompt)
		}

		tok := d.parser.peek()
		switch {
		case tok.Typ == EOF:
			return d.parser.lexer.Err()
		case tok.Is(';'):
			// ignore top-level semicolons
			d.parser.advance()
		case tok.Typ == DEF:
			d.handleDefinition()
		case tok.Typ == EXTERN:
			d.handleExtern()
		default:
			d.handleTopLevelExpr()
		}
	}
}

func (d *Driver) handleDefinition() {
	fn, err := d.parser.ParseDefinition()
	if err != nil {
		d.skip(err)
		return
	}
	d.reporter.Progress("Parsed a function definition.")
	d.handler.HandleDefinition(fn)
}

func (d *Driver) handleExtern() {
	proto, err := d.parser.ParseExtern()
	if err != nil {
		d.skip(err)
		return
	}
	d.reporter.Progress("Parsed an extern")
	d.handler.HandleExtern(proto)
}

func (d *Driver) handleTopLevelExpr() {
	fn, err := d.parser.ParseTopLevelExpr()
	if err != nil {
		d.skip(err)
		return
	}
	d.reporter.Progress("Parsed a top-level expr")
	d.handler.HandleTopLevelExpr(fn)
}

// skip reports err and skips a single token.
func (d *Driver) skip(err error) {
	d.reporter.Report(err)
	d.parser.advance()
}
