package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY returns true if f is an *os.File attached to a terminal. It accepts
// both readers and writers so stdin and stdout can be checked alike.
func IsTTY(f any) bool {
	file, ok := f.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
