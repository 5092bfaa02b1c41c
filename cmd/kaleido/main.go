package main

// This is the front end of the Kaleidoscope language written in Go.

import (
	"errors"
	"fmt"
	"os"

	"github.com/ltungv/kaleido/cmd/kaleido/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil && !errors.Is(err, cmd.ErrSyntax) {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(cmd.ExitCode(err))
}
