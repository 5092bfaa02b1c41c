package kaleido

import "strings"

type mockReporter struct {
	errors   []error
	progress []string
	hadErr   bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), make([]string, 0), false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	reporter.hadErr = true
}

func (reporter *mockReporter) Progress(msg string) {
	reporter.progress = append(reporter.progress, msg)
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

// collector records the entities handed over by the driver, in order, as
// s-expressions.
type collector struct {
	printer  AstPrinter
	entities []string
	funcs    []*Function
	externs  []*Prototype
}

func (c *collector) HandleDefinition(fn *Function) {
	c.funcs = append(c.funcs, fn)
	c.entities = append(c.entities, c.printer.PrintFunction(fn))
}

func (c *collector) HandleExtern(proto *Prototype) {
	c.externs = append(c.externs, proto)
	c.entities = append(c.entities, c.printer.PrintPrototype(proto))
}

func (c *collector) HandleTopLevelExpr(fn *Function) {
	c.funcs = append(c.funcs, fn)
	c.entities = append(c.entities, c.printer.PrintFunction(fn))
}

func newStringParser(src string, opts Options) *Parser {
	return NewParser(NewLexer(strings.NewReader(src)), opts)
}

func tokEOF(line int) Token {
	return NewToken(EOF, "", 0, line)
}

func tokChar(c byte, line int) Token {
	return NewToken(CHAR, string([]byte{c}), 0, line)
}

func tokIdent(name string, line int) Token {
	return NewToken(IDENTIFIER, name, 0, line)
}

func tokNumber(lexeme string, value float64, line int) Token {
	return NewToken(NUMBER, lexeme, value, line)
}
