package term

import (
	"os"

	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

// CountRows returns the number of terminal rows the text occupies when
// wrapped at width columns. Counting is done over grapheme clusters so a
// combining sequence is one column. Carriage returns and byte-order marks
// are zero-width. The empty string occupies no rows; any other text ends
// on a still-open row, hence the +1.
func CountRows(text string, width int) int {
	if text == "" {
		return 0
	}
	if width < 1 {
		width = 1
	}
	rows, col := 0, 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		switch g.Str() {
		case "\r", "\ufeff":
			// zero-width, no column advance
		case "\n", "\r\n":
			rows++
			col = 0
		default:
			col++
			if col > width {
				// the overflowing cluster starts the new row
				rows++
				col = 1
			}
		}
	}
	return rows + 1
}

const fallbackWidth = 80

// Width returns the terminal's current column count, or a fallback when
// stdout is not a terminal.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallbackWidth
	}
	return w
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
