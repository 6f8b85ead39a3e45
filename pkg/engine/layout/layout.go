// Package layout fits narrative text into fixed-size terminal panels.
// Every function here is pure: the same text and dimensions always produce
// the same lines.
package layout

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Width returns the display width of s in terminal columns.
func Width(s string) int {
	return uniseg.StringWidth(s)
}

// Normalize collapses line breaks and runs of whitespace so text can be
// re-wrapped. Each physical line is trimmed before the lines are joined.
func Normalize(text string) []string {
	physical := strings.Split(text, "\n")
	for i, line := range physical {
		physical[i] = strings.TrimSpace(line)
	}
	return strings.Fields(strings.Join(physical, " "))
}

// WordWrap greedily packs words into lines of at most width columns.
// A word wider than width is kept on its own line rather than split.
func WordWrap(words []string, width int) []string {
	var lines []string
	var current strings.Builder

	for _, word := range words {
		if current.Len() > 0 && Width(current.String())+1+Width(word) <= width {
			current.WriteByte(' ')
			current.WriteString(word)
			continue
		}
		if current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		current.WriteString(word)
	}

	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	return lines
}

// wrap normalizes and wraps text. Empty text still yields one (empty) line
// so that it can serve as a blank separator.
func wrap(text string, width int) []string {
	lines := WordWrap(Normalize(text), width)
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// Center wraps text to width and centers each line. When the padding is odd
// the extra column goes on the right.
func Center(text string, width int) []string {
	lines := wrap(text, width)
	for i, line := range lines {
		gap := width - Width(line)
		if gap <= 0 {
			continue
		}
		left := gap / 2
		lines[i] = strings.Repeat(" ", left) + line + strings.Repeat(" ", gap-left)
	}
	return lines
}

// LeftAlign wraps text to width and right-pads each line with spaces.
func LeftAlign(text string, width int) []string {
	lines := wrap(text, width)
	for i, line := range lines {
		if gap := width - Width(line); gap > 0 {
			lines[i] = line + strings.Repeat(" ", gap)
		}
	}
	return lines
}

// Single reports whether lines is a one-line block and returns that line.
// Center and LeftAlign results are commonly used as a scalar when the text
// fits on a single line (labels, headings).
func Single(lines []string) (string, bool) {
	if len(lines) != 1 {
		return "", false
	}
	return lines[0], true
}

// VertPad appends blank lines of width columns until there are height lines.
// Input that already has height lines or more is returned unchanged.
func VertPad(lines []string, width, height int) []string {
	if len(lines) >= height {
		return lines
	}

	padded := make([]string, 0, height)
	padded = append(padded, lines...)
	blank := strings.Repeat(" ", width)
	for len(padded) < height {
		padded = append(padded, blank)
	}
	return padded
}

// Blank returns a line of width spaces.
func Blank(width int) string {
	return strings.Repeat(" ", width)
}
