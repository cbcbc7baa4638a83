package input

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Key codes produced by ReadKey for non-printable keys.
const (
	KeyArrowUp    = "arrow_up"
	KeyArrowDown  = "arrow_down"
	KeyArrowLeft  = "arrow_left"
	KeyArrowRight = "arrow_right"
	KeyEnter      = "enter"
	KeySpace      = "space"
	KeyEscape     = "escape"
	KeyCtrlC      = "ctrl_c"
)

// readByte reads a single byte from r
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// readEscape decodes the rest of an escape sequence after ESC.
// Handles both CSI sequences (ESC [) and SS3 sequences (ESC O).
func readEscape(r io.Reader) (string, error) {
	b2, err := readByte(r)
	if err != nil {
		// A lone ESC at end of input
		return KeyEscape, nil
	}
	if b2 != '[' && b2 != 'O' {
		return KeyEscape, nil
	}

	b3, err := readByte(r)
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return KeyArrowUp, nil
	case 'B':
		return KeyArrowDown, nil
	case 'C':
		return KeyArrowRight, nil
	case 'D':
		return KeyArrowLeft, nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}

// ReadKey reads one key press from r and returns its code: one of the Key*
// constants, or the character itself for printable ASCII. Unrecognised bytes
// yield an empty code.
func ReadKey(r io.Reader) (string, error) {
	b, err := readByte(r)
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return readEscape(r)
	case b == 3:
		return KeyCtrlC, nil
	case b == '\r' || b == '\n':
		return KeyEnter, nil
	case b == ' ':
		return KeySpace, nil
	case b > 32 && b < 127:
		return string(b), nil
	}
	return "", nil
}

// ReadTerminalKey puts stdin into raw mode, reads a single key press and
// restores the terminal.
func ReadTerminalKey() (string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	return ReadKey(os.Stdin)
}
