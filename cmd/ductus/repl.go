package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corvid/ductus/grammar"
	"github.com/corvid/ductus/internal/input"
	"github.com/corvid/ductus/internal/logging"
	"github.com/corvid/ductus/lex"
	"github.com/corvid/ductus/parse"
)

// runREPL drives an interactive console: each typed line is tokenized
// with lx and fed through table's shift-reduce parser, printing the token
// stream and the accept/reject verdict. ":reload" rebuilds the table from
// g, tagging the new build with a fresh UUID so its log lines and
// conflict report are distinguishable from the build it replaces, and
// reflects the new build ID in the prompt. ":quit" exits. direct forces
// input.NewDirectReader instead of readline, for piped stdin or non-tty
// sessions (mirroring cmd/tqi's --direct flag).
func runREPL(g grammar.Grammar, lx *lex.Lexer, table *parse.Table, direct bool) error {
	var reader input.LineReader
	if direct {
		reader = input.NewDirectReader(os.Stdin)
	} else {
		ilr, err := input.NewInteractiveReader("ductus> ")
		if err != nil {
			return fmt.Errorf("start readline console: %w", err)
		}
		reader = ilr
	}
	defer reader.Close()

	fmt.Printf("ductus REPL (build %s). Type a line to tokenize and parse it, :reload to rebuild the table, :quit to exit.\n", table.BuildID)

	for {
		line, err := reader.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read line %d: %w", reader.LineCount()+1, err)
		}

		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ":quit":
			return nil
		case line == ":reload":
			table = parse.NewTable(g)
			logging.Infof("rebuilt table (build %s): %d conflicts", table.BuildID, len(table.Conflicts))
			reader.SetPrompt(fmt.Sprintf("ductus[%s]> ", table.BuildID))
			continue
		}

		tokens := lx.Lex(line)
		fmt.Print("tokens:")
		for _, tok := range tokens {
			fmt.Printf(" %s", tok)
		}
		fmt.Println()

		parser := parse.NewParser(table)
		if parser.Parse(tokens) {
			fmt.Println("accept")
		} else {
			fmt.Println("reject")
		}
	}
}
