package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltungv/kaleido/internal/kaleido"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()

	assert.Equal(map[string]int{"<": 10, "+": 20, "-": 20, "*": 40}, cfg.Operators)
	assert.Equal(kaleido.AnonName, cfg.AnonName)
	assert.Equal(kaleido.DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(DefaultPrompt, cfg.Prompt)
	assert.False(cfg.StrictNumbers)
	assert.NoError(cfg.Validate())
	assert.Equal(kaleido.DefaultOptions(), cfg.ParserOptions())
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		path := filepath.Join(tempDir, "kaleido.toml")
		content := `
anon_name = "__main"
max_depth = 64
strict_numbers = true

[operators]
"<" = 10
"+" = 20
"/" = 40
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"<": 10, "+": 20, "/": 40}, cfg.Operators)
		assert.Equal(t, "__main", cfg.AnonName)
		assert.Equal(t, 64, cfg.MaxDepth)
		assert.True(t, cfg.StrictNumbers)
		assert.Equal(t, DefaultPrompt, cfg.Prompt)
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := filepath.Join(tempDir, "kaleido.yaml")
		content := `
prompt: "kal> "
operators:
  "*": 40
  "%": 40
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"*": 40, "%": 40}, cfg.Operators)
		assert.Equal(t, "kal> ", cfg.Prompt)
		assert.Equal(t, kaleido.AnonName, cfg.AnonName)
		assert.Equal(t, kaleido.DefaultMaxDepth, cfg.MaxDepth)
	})

	t.Run("missing operators keep the defaults", func(t *testing.T) {
		path := filepath.Join(tempDir, "depth.yml")
		require.NoError(t, os.WriteFile(path, []byte("max_depth: 0\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, Default().Operators, cfg.Operators)
		assert.Equal(t, 0, cfg.MaxDepth)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "missing.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		format  Format
		msg     string
	}{
		{"bad TOML", "operators = [", FormatTOML, "TOML parse error"},
		{"bad YAML", "operators: [", FormatYAML, "YAML parse error"},
		{"long operator", "[operators]\n\"<=\" = 10\n", FormatTOML, "must be a single character"},
		{"letter operator", "[operators]\n\"x\" = 10\n", FormatTOML, "cannot be used as an operator"},
		{"digit operator", "operators:\n  \"1\": 10\n", FormatYAML, "cannot be used as an operator"},
		{"paren operator", "operators:\n  \"(\": 10\n", FormatYAML, "cannot be used as an operator"},
		{"zero precedence", "[operators]\n\"+\" = 0\n", FormatTOML, "non-positive precedence"},
		{"negative depth", "max_depth = -1\n", FormatTOML, "max_depth must not be negative"},
		{"empty anon name", "anon_name: \"\"\n", FormatYAML, "anon_name must not be empty"},
		{"unknown format", "", Format(42), "unsupported format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.content), tc.format)
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParserOptions(t *testing.T) {
	assert := assert.New(t)
	cfg, err := Parse([]byte("max_depth = 0\nstrict_numbers = true\n[operators]\n\"^\" = 60\n"), FormatTOML)
	require.NoError(t, err)

	opts := cfg.ParserOptions()
	assert.Equal(kaleido.Precedence{'^': 60}, opts.Precedence)
	assert.Equal(-1, opts.MaxDepth)
	assert.True(opts.StrictNumbers)

	parser := kaleido.NewParser(kaleido.NewLexer(strings.NewReader("a^b^c")), opts)
	expr, err := parser.ParseExpression()
	require.NoError(t, err)
	assert.Equal(
		kaleido.NewBinaryExpr('^',
			kaleido.NewBinaryExpr('^', kaleido.NewVariableExpr("a"), kaleido.NewVariableExpr("b")),
			kaleido.NewVariableExpr("c")),
		expr,
	)
}

func TestDetectFormat(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(FormatYAML, detectFormat("a.yaml"))
	assert.Equal(FormatYAML, detectFormat("a.YML"))
	assert.Equal(FormatTOML, detectFormat("a.toml"))
	assert.Equal(FormatTOML, detectFormat("a.conf"))
}
