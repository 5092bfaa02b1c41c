// Package config loads the parser settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ltungv/kaleido/internal/kaleido"
)

// Format is the encoding of a configuration file
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DefaultPrompt is written before every top-level dispatch in interactive mode.
const DefaultPrompt = "ready> "

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of a parsing session. Operators maps a single
// operator character to its precedence, MaxDepth of 0 turns the nesting guard
// off.
type Config struct {
	Operators     map[string]int `toml:"operators" yaml:"operators"`
	AnonName      string         `toml:"anon_name" yaml:"anon_name"`
	MaxDepth      int            `toml:"max_depth" yaml:"max_depth"`
	StrictNumbers bool           `toml:"strict_numbers" yaml:"strict_numbers"`
	Prompt        string         `toml:"prompt" yaml:"prompt"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	operators := make(map[string]int)
	for op, prec := range kaleido.DefaultPrecedence() {
		operators[string([]byte{op})] = prec
	}
	return &Config{
		Operators: operators,
		AnonName:  kaleido.AnonName,
		MaxDepth:  kaleido.DefaultMaxDepth,
		Prompt:    DefaultPrompt,
	}
}

// Load reads the file at path, picking the format from its extension.
// Settings missing from the file keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data, detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes content over the defaults and validates the result. An
// operators table in content replaces the default one entirely.
func Parse(content []byte, format Format) (*Config, error) {
	cfg := Default()
	defaults := cfg.Operators
	cfg.Operators = nil
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("%w: TOML parse error: %v", ErrInvalidConfig, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("%w: YAML parse error: %v", ErrInvalidConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %s", ErrInvalidConfig, format)
	}
	if cfg.Operators == nil {
		cfg.Operators = defaults
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every operator is a single byte the lexer hands out as
// a character token and that the limits make sense.
func (cfg *Config) Validate() error {
	for op, prec := range cfg.Operators {
		if len(op) != 1 {
			return fmt.Errorf("%w: operator %q must be a single character", ErrInvalidConfig, op)
		}
		if !isOperatorChar(op[0]) {
			return fmt.Errorf("%w: %q cannot be used as an operator", ErrInvalidConfig, op)
		}
		if prec <= 0 {
			return fmt.Errorf("%w: operator %q has non-positive precedence %d", ErrInvalidConfig, op, prec)
		}
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must not be negative", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.AnonName) == "" {
		return fmt.Errorf("%w: anon_name must not be empty", ErrInvalidConfig)
	}
	return nil
}

// ParserOptions converts the configuration into options for kaleido.NewParser.
func (cfg *Config) ParserOptions() kaleido.Options {
	prec := make(kaleido.Precedence, len(cfg.Operators))
	for op, p := range cfg.Operators {
		prec[op[0]] = p
	}
	maxDepth := cfg.MaxDepth
	if maxDepth == 0 {
		maxDepth = -1
	}
	return kaleido.Options{
		Precedence:    prec,
		AnonName:      cfg.AnonName,
		MaxDepth:      maxDepth,
		StrictNumbers: cfg.StrictNumbers,
	}
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// isOperatorChar rejects bytes the lexer would turn into something other
// than a character token, plus the punctuation of the grammar itself.
func isOperatorChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return false
	}
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', '(', ')', ',', ';', '#', '.':
		return false
	}
	return true
}
