// Package termsize reads the column count of the controlling terminal
package termsize

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// ErrNoTerminal is returned when no terminal could be measured
var ErrNoTerminal = errors.New("no terminal attached")

// Width returns the terminal width in columns. The controlling terminal is
// tried first because stdin and stdout are usually pipes for a statusline.
func Width() (int, bool) {
	if tty, err := os.Open("/dev/tty"); err == nil {
		w, err := Of(tty)
		tty.Close()
		if err == nil {
			return w, true
		}
	}
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if w, err := Of(f); err == nil {
			return w, true
		}
	}
	return 0, false
}

// Of returns the width of the terminal behind f
func Of(f *os.File) (int, error) {
	if f == nil {
		return 0, ErrNoTerminal
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, ErrNoTerminal
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0, err
	}
	if w <= 0 {
		return 0, ErrNoTerminal
	}
	return w, nil
}
