package utils

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether the process can run interactive prompts: stdin and
// stdout must both be terminals, and /dev/tty must be openable (Bubble Tea
// reads keys from it).
func IsTTY() bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	tty, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	defer tty.Close()

	return true
}
