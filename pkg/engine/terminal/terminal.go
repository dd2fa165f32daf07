// Package terminal wraps the host terminal: size, raw mode and escape
// sequences.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Control sequences
const (
	ClearScreen  = "\x1b[2J"
	CursorHome   = "\x1b[H"
	HideCursor   = "\x1b[?25l"
	ShowCursor   = "\x1b[?25h"
	EnableMouse  = "\x1b[?1003h\x1b[?1006h" // any-motion tracking, SGR coordinates
	DisableMouse = "\x1b[?1003l\x1b[?1006l"
)

// GetSize returns the current terminal width and height in cells.
func GetSize() (width, height int, err error) {
	width, height, err = term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("cannot read terminal size: %w", err)
	}
	return width, height, nil
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// RawMode holds the terminal state to restore after raw input.
type RawMode struct {
	fd    int
	state *term.State
}

// EnableRaw puts stdin into raw mode so single key presses arrive unbuffered.
func EnableRaw() (*RawMode, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return &RawMode{fd: fd, state: state}, nil
}

// Restore returns the terminal to the state it had before EnableRaw
func (r *RawMode) Restore() error {
	if err := term.Restore(r.fd, r.state); err != nil {
		return fmt.Errorf("cannot restore terminal: %w", err)
	}
	return nil
}
