package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ltungv/kaleido/internal/config"
	"github.com/ltungv/kaleido/internal/kaleido"
)

// ErrSyntax is returned once the input has been parsed when at least one
// syntax error was reported along the way.
var ErrSyntax = errors.New("input had syntax errors")

type rootOptions struct {
	cfgFile     string
	dump        bool
	interactive bool
}

func newRootCmd() *cobra.Command {
	opts := new(rootOptions)
	rootCmd := &cobra.Command{
		Use:   "kaleido [file]",
		Short: "Parse Kaleidoscope source into syntax trees",
		Long: `kaleido reads Kaleidoscope source from a file, or from stdin when no file
is given, and parses every definition, extern and top-level expression in it.

Progress and syntax errors go to stderr. A malformed entity is skipped and
parsing carries on with the rest of the input.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.Flags().BoolVar(&opts.dump, "dump", false, "print every parsed entity as an s-expression on stdout")
	rootCmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "print a prompt before every top-level entity")

	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the command line with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

// ExitCode maps the error returned by Execute to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrSyntax):
		return 65
	default:
		return 1
	}
}

func runParse(cmd *cobra.Command, args []string, opts *rootOptions) error {
	cfg, err := loadConfig(opts.cfgFile)
	if err != nil {
		return err
	}
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	reporter := kaleido.NewSimpleReporter(cmd.ErrOrStderr())
	parser := kaleido.NewParser(kaleido.NewLexer(in), cfg.ParserOptions())
	var handler kaleido.Handler
	if opts.dump {
		handler = &dumpHandler{out: cmd.OutOrStdout()}
	}
	driver := kaleido.NewDriver(parser, handler, reporter)
	if opts.interactive {
		driver.SetPrompt(cmd.ErrOrStderr(), cfg.Prompt)
	}

	if err := driver.Run(); err != nil {
		return err
	}
	if reporter.HadError() {
		return ErrSyntax
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	return f, nil
}

// dumpHandler prints every entity it receives.
type dumpHandler struct {
	out     io.Writer
	printer kaleido.AstPrinter
}

func (h *dumpHandler) HandleDefinition(fn *kaleido.Function) {
	fmt.Fprintln(h.out, h.printer.PrintFunction(fn))
}

func (h *dumpHandler) HandleExtern(proto *kaleido.Prototype) {
	fmt.Fprintln(h.out, h.printer.PrintPrototype(proto))
}

func (h *dumpHandler) HandleTopLevelExpr(fn *kaleido.Function) {
	fmt.Fprintln(h.out, h.printer.PrintFunction(fn))
}
