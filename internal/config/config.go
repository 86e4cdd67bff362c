// Package config loads the TOML configuration file that drives the ductus
// CLI, using BurntSushi/toml struct tags to decode straight into Config.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Verbosity controls how much detail is logged about LALR(1) conflicts
// discovered during table construction.
type Verbosity string

const (
	// VerbosityQuiet logs nothing about conflicts; callers still get the
	// full list back from parse.Table.Conflicts.
	VerbosityQuiet Verbosity = "quiet"

	// VerbositySummary logs a single line with the conflict count.
	VerbositySummary Verbosity = "summary"

	// VerbosityDetailed logs every conflict diagnostic individually.
	VerbosityDetailed Verbosity = "detailed"
)

// Config is the configuration for a ductus CLI invocation. It is typically
// loaded from a ductus.toml file and then overridden by command-line flags.
type Config struct {
	// GrammarFile is the path to the grammar-text file describing the
	// productions to build an LALR(1) table from.
	GrammarFile string `toml:"grammar_file"`

	// LexFile is the path to the lexical-rule file describing the regex
	// rules the tokenizer is built from.
	LexFile string `toml:"lex_file"`

	// Minimize controls whether the lexer's DFA is run through
	// automaton.Minimize after subset construction.
	Minimize bool `toml:"minimize"`

	// ConflictVerbosity controls how LALR(1) conflicts are logged.
	ConflictVerbosity Verbosity `toml:"conflict_verbosity"`
}

// FillDefaults returns a copy of cfg with unset fields given their default
// values: summary-level conflict logging. Minimize is left as it is.
func (cfg Config) FillDefaults() Config {
	newCfg := cfg

	if newCfg.ConflictVerbosity == "" {
		newCfg.ConflictVerbosity = VerbositySummary
	}

	// Minimize has no reasonable "unset" sentinel for a bool loaded from
	// TOML, so it is left as whatever toml.Decode produced (false if the
	// key is absent); a bare ductus.toml with no "minimize" key still
	// means "don't minimize" rather than silently defaulting to true.

	return newCfg
}

// Validate returns an error if cfg does not have the fields required to
// run the CLI set.
func (cfg Config) Validate() error {
	if cfg.GrammarFile == "" {
		return fmt.Errorf("grammar_file: must be set to a path")
	}
	if cfg.LexFile == "" {
		return fmt.Errorf("lex_file: must be set to a path")
	}

	switch cfg.ConflictVerbosity {
	case VerbosityQuiet, VerbositySummary, VerbosityDetailed:
	default:
		return fmt.Errorf("conflict_verbosity: must be one of %q, %q, %q, got %q",
			VerbosityQuiet, VerbositySummary, VerbosityDetailed, cfg.ConflictVerbosity)
	}

	return nil
}

// Load reads and decodes a ductus.toml file at path, filling in defaults
// for any field the file leaves unset.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg.FillDefaults(), nil
}
