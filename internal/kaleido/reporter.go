package kaleido

import (
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display diagnostics
// to the user. Reporting is kept apart from displaying so the driver does not
// care whether messages end up on a terminal, in a file or in a test buffer.
type Reporter interface {
	Report(err error)
	Progress(msg string)
	HadError() bool
	Reset()
}

// SimpleReporter writes every diagnostic as-is to inner writer, one per line
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) Progress(msg string) {
	fmt.Fprintln(reporter.writer, msg)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}
