package input

import (
	"os"

	"golang.org/x/term"
)

// StdinIsTerminal reports whether the standard input is attached to a
// terminal. When it is, and no file arguments were given, there is nothing
// to count.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
