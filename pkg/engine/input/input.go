// Package input reads player commands from a terminal or any other stream.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl+C in raw mode.
var ErrInterrupted = errors.New("input interrupted")

// Reader reads one line at a time. On a real terminal it also recognises
// arrow keys, which return immediately without Enter.
type Reader struct {
	in  *bufio.Reader
	out io.Writer

	// tty is set when arrow keys can be read in raw mode.
	tty *os.File
}

// NewReader creates a Reader on in, echoing prompts to out.
func NewReader(in io.Reader, out io.Writer) *Reader {
	r := &Reader{
		in:  bufio.NewReader(in),
		out: out,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.tty = f
	}
	return r
}

// Arrows reports whether arrow keys are available.
func (r *Reader) Arrows() bool {
	return r.tty != nil
}

// ReadLine prints prompt and reads a line. The trailing newline is removed.
// At the end of the input the remaining text is returned with io.EOF.
func (r *Reader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	line, err := r.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return line, io.EOF
		}
		return line, fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

// ReadCommand prints prompt and reads a command. On a terminal an arrow key
// is translated to the command it is bound to.
func (r *Reader) ReadCommand(prompt string) (string, error) {
	if r.tty == nil {
		return r.ReadLine(prompt)
	}

	fmt.Fprint(r.out, prompt)
	code, err := r.readWithArrows()
	if err != nil {
		return "", err
	}
	if command, ok := Translate(code); ok {
		return command, nil
	}
	return code, nil
}

// decodeEscape reads the rest of an escape sequence after ESC and returns the
// arrow key code, or "" for anything else.
func decodeEscape(br io.ByteReader) string {
	b2, err := br.ReadByte()
	if err != nil {
		return ""
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}

	b3, err := br.ReadByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// readWithArrows reads input in raw mode. Arrow keys return immediately;
// typed text is echoed and collected until Enter.
func (r *Reader) readWithArrows() (string, error) {
	fd := int(r.tty.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	var input []byte
	for {
		b, err := r.in.ReadByte()
		if err != nil {
			return string(input), err
		}

		switch {
		case b == 0x1b:
			// Arrow keys only count on an empty line; otherwise they are discarded.
			if code := decodeEscape(r.in); code != "" && len(input) == 0 {
				fmt.Fprint(r.out, "\r\n")
				return code, nil
			}
		case b == 3:
			fmt.Fprint(r.out, "\r\n")
			return "", ErrInterrupted
		case b == '\n' || b == '\r':
			fmt.Fprint(r.out, "\r\n")
			return string(input), nil
		case b == 127 || b == 8:
			if len(input) > 0 {
				input = input[:len(input)-1]
				fmt.Fprint(r.out, "\b \b")
			}
		case b >= 32 && b < 127:
			input = append(input, b)
			fmt.Fprint(r.out, string(b))
		}
	}
}
