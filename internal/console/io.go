package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Terminal reads user input line by line and writes view output. It backs
// the Confirmer used by the orchestrator.
type Terminal struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

// NewTerminal creates a Terminal over the given reader and writer
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewScanner(in), out: out}
}

// Prompt prints a label and returns the next input line, trimmed. Once the
// input stream is exhausted it returns "" and EOF reports true; view loops
// must stop prompting at that point.
func (t *Terminal) Prompt(label string) string {
	if t.eof {
		return ""
	}
	fmt.Fprintf(t.out, "%s: ", label)
	if !t.in.Scan() {
		t.eof = true
		return ""
	}
	return strings.TrimSpace(t.in.Text())
}

// EOF reports whether the input stream is exhausted.
func (t *Terminal) EOF() bool {
	return t.eof
}

// PromptDefault prompts with a default used when the user enters nothing.
func (t *Terminal) PromptDefault(label, def string) string {
	value := t.Prompt(fmt.Sprintf("%s [%s]", label, def))
	if value == "" {
		return def
	}
	return value
}

// Confirm asks a yes/no question. Only an explicit yes proceeds.
func (t *Terminal) Confirm(prompt string) bool {
	answer := strings.ToLower(t.Prompt(prompt + " [y/N]"))
	return answer == "y" || answer == "yes"
}

func (t *Terminal) Printf(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

// Success, Failure and Notice mirror the three notification levels every
// user-visible outcome is reported through.
func (t *Terminal) Success(format string, args ...any) {
	fmt.Fprintf(t.out, "✔ "+format+"\n", args...)
}

func (t *Terminal) Failure(format string, args ...any) {
	fmt.Fprintf(t.out, "✖ "+format+"\n", args...)
}

func (t *Terminal) Notice(format string, args ...any) {
	fmt.Fprintf(t.out, "• "+format+"\n", args...)
}
