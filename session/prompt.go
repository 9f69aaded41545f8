package session

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ErrNotInteractive is returned when input is needed but stdin is not a
// terminal.
var ErrNotInteractive = errors.New("stdin is not a terminal")

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ReadPassword prompts on stderr and reads a password from the controlling
// terminal without echo.
func ReadPassword(label string) (string, error) {
	if !stdinIsTerminal() {
		return "", ErrNotInteractive
	}
	fmt.Fprint(os.Stderr, label)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadLine prompts on stderr and reads one line of input.
func ReadLine(label string) (string, error) {
	if !stdinIsTerminal() {
		return "", ErrNotInteractive
	}
	fmt.Fprint(os.Stderr, label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a [y/N] question. It answers no when stdin is not a terminal
// or on anything but an affirmative reply.
func Confirm(label string) bool {
	line, err := ReadLine(label + " [y/N]: ")
	if err != nil {
		return false
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true
	}
	return false
}
