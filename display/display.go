// Package display renders a binc register for the terminal.
//
// The register is drawn as a bit grid framed by index lines:
//
//	   7       0
//	u  0000 1111
//	  0   4 3
//
// The first column of the bit line is the sign marker ('u' unsigned, '+'
// or '-' signed) and the first column of the lower index line is the carry.
package display

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/ezrec/binc/word"
)

// Colors are escape sequences wrapped around parts of the output. The zero
// value renders plain text.
type Colors struct {
	Bits    []byte // Bit line.
	Summary []byte // Radix summary line.
	Reset   []byte // Restores the default color.
}

// TerminalColors returns the colors used on an interactive terminal.
func TerminalColors(codes *term.EscapeCodes) (c Colors) {
	if codes == nil {
		return
	}

	c.Bits = codes.Red
	c.Summary = codes.Green
	c.Reset = codes.Reset
	return
}

func (c Colors) paint(color []byte, text string) string {
	if len(color) == 0 {
		return text
	}

	return string(color) + text + string(c.Reset)
}

// Sign returns the sign marker of the register.
func Sign(w *word.Word) byte {
	switch {
	case !w.Signed():
		return 'u'
	case w.Negative():
		return '-'
	default:
		return '+'
	}
}

// Grid returns the upper index line, the bit line and the lower index line.
func Grid(w *word.Word) (lines []string) {
	width := w.Width()
	bits := w.Big()

	var upper strings.Builder
	upper.WriteString("   ")
	for n := width - 1; n >= 0; n -= 8 {
		fmt.Fprintf(&upper, "%-3d%6d  ", n, n-7)
	}

	var middle strings.Builder
	middle.WriteByte(Sign(w))
	middle.WriteString("  ")
	for n := width - 1; n >= 0; n-- {
		middle.WriteByte('0' + byte(bits.Bit(n)))
		if n%4 == 0 {
			middle.WriteByte(' ')
		}
		if n%8 == 0 {
			middle.WriteByte(' ')
		}
	}

	var lower strings.Builder
	lower.WriteString("  ")
	if w.Carry() {
		lower.WriteByte('1')
	} else {
		lower.WriteByte('0')
	}
	for n := width - 4; n >= 0; n -= 8 {
		fmt.Fprintf(&lower, "%4d %-4d  ", n, n-1)
	}

	for _, sb := range []*strings.Builder{&upper, &middle, &lower} {
		lines = append(lines, strings.TrimRight(sb.String(), " "))
	}

	return
}

// Summary returns the register as a character and in radix 16, 10 and 8,
// each column wide enough for any value of the register's width.
func Summary(w *word.Word) string {
	return fmt.Sprintf("%3s %*s %*s %*s",
		w.Char(),
		w.Digits(16)+2, w.MustFormat(16, true),
		w.Digits(10)+2, w.MustFormat(10, true),
		w.Digits(8)+2, w.MustFormat(8, true),
	)
}

// Render writes a blank line, the summary and the grid, and returns the
// number of lines written.
func Render(out io.Writer, w *word.Word, colors Colors) (lines int, err error) {
	grid := Grid(w)
	text := []string{
		"",
		colors.paint(colors.Summary, Summary(w)),
		grid[0],
		colors.paint(colors.Bits, grid[1]),
		grid[2],
	}

	for _, line := range text {
		_, err = io.WriteString(out, line+"\n")
		if err != nil {
			return
		}
		lines++
	}

	return
}

// Rewind returns the escape sequence that moves the cursor up n lines and
// clears everything below it.
func Rewind(n int) string {
	if n <= 0 {
		return ""
	}

	return fmt.Sprintf("\033[%dA\r\033[J", n)
}
