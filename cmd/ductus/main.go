/*
Ductus builds a lexer and an LALR(1) parser from a grammar-text file and a
lexical-rule file, logs a summary of the build (and, with --debug, prints
the table and DFA), and with --interactive drops into a REPL for
tokenizing and parsing lines by hand.

Usage:

	ductus [flags]
	ductus [flags] -i

If a ductus.toml config file is present in the working directory (or given
with --config), it supplies the grammar and lex file paths, the
minimization toggle, and the conflict-reporting verbosity; command-line
flags override whatever the file specifies.

The flags are:

	-v, --version
		Give the current version of ductus and then exit.

	-c, --config FILE
		Load configuration from FILE instead of ./ductus.toml.

	-g, --grammar FILE
		Use FILE as the grammar-text source, overriding config.

	-l, --lex FILE
		Use FILE as the lexical-rule source, overriding config.

	-m, --minimize
		Minimize the lexer's DFA, overriding config.

	-d, --debug
		Print the compiled ACTION/GOTO table and LALR(1) DFA dump before
		running.

	-i, --interactive
		Start an interactive readline REPL for tokenizing and parsing
		input lines after the table is built.

	--direct
		Force reading REPL input directly from stdin instead of through
		readline; useful for piped or non-tty input.
*/
package main

import (
	"fmt"
	"os"

	"github.com/corvid/ductus/grammar"
	"github.com/corvid/ductus/internal/config"
	"github.com/corvid/ductus/internal/logging"
	"github.com/corvid/ductus/internal/render"
	"github.com/corvid/ductus/internal/version"
	"github.com/corvid/ductus/lex"
	"github.com/corvid/ductus/parse"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitBuildError indicates a fatal error building the grammar, lexer,
	// or table.
	ExitBuildError

	// ExitConfigError indicates an invalid or missing configuration.
	ExitConfigError

	// ExitUsageError indicates the command line was used incorrectly.
	ExitUsageError
)

var (
	flagVersion     = pflag.BoolP("version", "v", false, "Give the current version of ductus and then exit.")
	flagConfig      = pflag.StringP("config", "c", "ductus.toml", "Path to a ductus.toml configuration file.")
	flagGrammar     = pflag.StringP("grammar", "g", "", "Path to the grammar-text file, overriding config.")
	flagLex         = pflag.StringP("lex", "l", "", "Path to the lexical-rule file, overriding config.")
	flagMinimize    = pflag.BoolP("minimize", "m", false, "Minimize the lexer's DFA, overriding config.")
	flagDebug       = pflag.BoolP("debug", "d", false, "Print the compiled ACTION/GOTO table and DFA dump.")
	flagInteractive = pflag.BoolP("interactive", "i", false, "Start an interactive REPL after building the table.")
	flagDirect      = pflag.Bool("direct", false, "Force reading REPL input directly from stdin instead of via readline.")
)

func main() {
	returnCode := ExitSuccess
	defer func() {
		os.Exit(returnCode)
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("ductus %s\n", version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		returnCode = ExitUsageError
		return
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		logging.Warnf("could not load %s, using flags and defaults only: %v", *flagConfig, err)
		cfg = config.Config{}.FillDefaults()
	}

	if pflag.Lookup("grammar").Changed {
		cfg.GrammarFile = *flagGrammar
	}
	if pflag.Lookup("lex").Changed {
		cfg.LexFile = *flagLex
	}
	if pflag.Lookup("minimize").Changed {
		cfg.Minimize = *flagMinimize
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: config: %s\n", err.Error())
		returnCode = ExitConfigError
		return
	}

	grammarSrc, err := os.ReadFile(cfg.GrammarFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitBuildError
		return
	}

	g, err := grammar.ParseText(string(grammarSrc))
	if err != nil {
		if gerr, ok := err.(grammar.GrammarError); ok {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", gerr.FullMessage())
		} else {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		}
		returnCode = ExitBuildError
		return
	}

	rules, err := loadLexicalRules(cfg.LexFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitBuildError
		return
	}

	lexer, warnings, err := lex.NewLexerOpts(rules, cfg.Minimize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitBuildError
		return
	}
	for _, w := range warnings {
		logging.Warnf("%s", w)
	}

	table := parse.NewTable(*g)
	logging.Infof("built LALR(1) table (build %s): %d states, %d conflicts", table.BuildID, len(table.States()), len(table.Conflicts))
	reportConflicts(cfg.ConflictVerbosity, table)

	if *flagDebug {
		fmt.Println(render.Table(table, *g))
		fmt.Println()
		fmt.Println(render.DFA(table.GetDFA()))
	}

	if *flagInteractive {
		if err := runREPL(*g, lexer, table, *flagDirect); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitBuildError
		}
		return
	}
}

func reportConflicts(verbosity config.Verbosity, table *parse.Table) {
	switch verbosity {
	case config.VerbosityQuiet:
		return
	case config.VerbosityDetailed:
		for _, c := range table.Conflicts {
			logging.Warnf("%s", c)
		}
	default: // VerbositySummary
		if len(table.Conflicts) > 0 {
			logging.Warnf("%d conflicts found; rerun with detailed verbosity to see each one", len(table.Conflicts))
		}
	}
}
