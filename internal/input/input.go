// Package input supplies the line sources the ductus REPL reads from:
// either a TTY via GNU readline, or any other stream for piped/non-tty
// sessions. Both implement LineReader so cmd/ductus can treat them
// interchangeably.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader is the common surface runREPL needs: read one line at a
// time, update the prompt shown before the next one (a no-op on readers
// with no visible prompt), and release resources on exit.
type LineReader interface {
	ReadLine() (string, error)
	SetPrompt(p string)
	LineCount() int
	Close() error
}

// DirectLineReader reads lines from any generic input stream directly. It
// can be used with any io.Reader but does not sanitize the input of
// control and escape sequences, so it is meant for piped/non-tty input
// rather than an interactive terminal. SetPrompt is a no-op, since a
// piped stream has nothing to print a prompt to.
//
// DirectLineReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectLineReader struct {
	r     *bufio.Reader
	lines int
}

// InteractiveLineReader reads lines from stdin using a Go implementation
// of the GNU Readline library, keeping input clear of editing escape
// sequences and enabling command history. This should generally only be
// used when directly connected to a TTY.
//
// InteractiveLineReader should not be used directly; instead, create one
// with [NewInteractiveReader].
type InteractiveLineReader struct {
	rl     *readline.Instance
	prompt string
	lines  int
}

// NewDirectReader creates a DirectLineReader wrapping a buffered reader on
// r. The returned reader must have Close called on it before disposal.
func NewDirectReader(r io.Reader) *DirectLineReader {
	return &DirectLineReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates an InteractiveLineReader and initializes
// readline with the given prompt. The returned reader must have Close
// called on it before disposal to properly tear down readline resources.
func NewInteractiveReader(prompt string) (*InteractiveLineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveLineReader{
		rl:     rl,
		prompt: prompt,
	}, nil
}

// Close cleans up resources associated with the DirectLineReader.
func (dlr *DirectLineReader) Close() error {
	return nil
}

// Close cleans up readline resources associated with the
// InteractiveLineReader.
func (ilr *InteractiveLineReader) Close() error {
	return ilr.rl.Close()
}

// ReadLine reads the next non-blank line from the underlying stream,
// skipping blank lines rather than returning them — a REPL has nothing
// useful to tokenize from one. At end of input, the returned error is
// io.EOF.
func (dlr *DirectLineReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dlr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
	}

	dlr.lines++
	return line, nil
}

// ReadLine reads the next non-blank line from the readline console,
// skipping blank lines. At end of input, the returned error is io.EOF.
func (ilr *InteractiveLineReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = ilr.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		line = strings.TrimSpace(line)
	}

	ilr.lines++
	return line, nil
}

// SetPrompt is a no-op: a piped, non-tty stream has no prompt to update.
func (dlr *DirectLineReader) SetPrompt(p string) {}

// LineCount returns how many lines have been read so far.
func (dlr *DirectLineReader) LineCount() int {
	return dlr.lines
}

// SetPrompt updates the prompt shown before the next line is read.
func (ilr *InteractiveLineReader) SetPrompt(p string) {
	ilr.prompt = p
	ilr.rl.SetPrompt(p)
}

// LineCount returns how many lines have been read so far.
func (ilr *InteractiveLineReader) LineCount() int {
	return ilr.lines
}
