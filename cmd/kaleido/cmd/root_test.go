package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestParseStdin(t *testing.T) {
	stdout, stderr, err := execute(t, "def foo(x y) x+y*2;\nextern sin(x);\nfoo(1, 2)\n", "--dump")
	require.NoError(t, err)
	assert.Equal(t,
		"(def foo (x y) (+ x (* y 2)))\n(extern sin (x))\n(def __anon_expr () (call foo 1 2))\n",
		stdout,
	)
	assert.Equal(t,
		"Parsed a function definition.\nParsed an extern\nParsed a top-level expr\n",
		stderr,
	)
}

func TestParseWithoutDumpPrintsNothing(t *testing.T) {
	stdout, _, err := execute(t, "1+2")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestParseSyntaxError(t *testing.T) {
	_, stderr, err := execute(t, "(1+2;\n3\n")
	assert.ErrorIs(t, err, ErrSyntax)
	assert.Equal(t, 65, ExitCode(err))
	assert.Equal(t, "[line 1] Error at ';': expected ')'\nParsed a top-level expr\n", stderr)
}

func TestParseInteractive(t *testing.T) {
	_, stderr, err := execute(t, "1;", "-i")
	require.NoError(t, err)
	assert.Equal(t, "ready> Parsed a top-level expr\nready> ready> ", stderr)
}

func TestParseFileWithConfig(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.kal")
	cfgPath := filepath.Join(dir, "kaleido.yaml")
	require.NoError(t, os.WriteFile(src, []byte("a^b*c\n"), 0644))
	require.NoError(t, os.WriteFile(cfgPath, []byte("anon_name: main\noperators:\n  \"^\": 10\n  \"*\": 20\n"), 0644))

	stdout, _, err := execute(t, "", "--config", cfgPath, "--dump", src)
	require.NoError(t, err)
	assert.Equal(t, "(def main () (^ a (* b c)))\n", stdout)
}

func TestParseMissingFile(t *testing.T) {
	_, _, err := execute(t, "", filepath.Join(t.TempDir(), "missing.kal"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 1, ExitCode(err))
}

func TestParseBadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[operators]\n\"ab\" = 1\n"), 0644))

	_, _, err := execute(t, "1", "--config", cfgPath)
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrSyntax))
}

func TestTokens(t *testing.T) {
	stdout, _, err := execute(t, "def f(x)\n  x*1.5 # comment\n", "tokens")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"1\tDEF def",
		"1\tIDENTIFIER f",
		"1\tCHAR (",
		"1\tIDENTIFIER x",
		"1\tCHAR )",
		"2\tIDENTIFIER x",
		"2\tCHAR *",
		"2\tNUMBER 1.5 1.5",
		"3\tEOF",
		"",
	}, "\n"), stdout)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "kaleido v"+Version+"\n"))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 65, ExitCode(ErrSyntax))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
}
