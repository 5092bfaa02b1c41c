package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ltungv/kaleido/internal/kaleido"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of the source",
		Long: `Print one token per line, prefixed with the line it starts on. The stream
always ends with an EOF token.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer in.Close()

			lexer := kaleido.NewLexer(in)
			out := cmd.OutOrStdout()
			for _, tok := range lexer.Tokens() {
				fmt.Fprintf(out, "%d\t%s\n", tok.Line, tok)
			}
			return lexer.Err()
		},
	}
}
