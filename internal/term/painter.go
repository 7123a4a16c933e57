package term

import (
	"fmt"
	"io"
	"strings"

	"chlog/internal/tokens"

	"github.com/charmbracelet/lipgloss"
)

const separatorWidth = 72

var (
	separatorStyle = lipgloss.NewStyle().Faint(true)
	costStyle      = lipgloss.NewStyle().Faint(true)
)

// PainterOptions configures a Painter.
type PainterOptions struct {
	Out io.Writer
	// Width supplies the terminal's current column count per redraw.
	Width func() int
	// PromptTokens is the estimated size of the dispatched prompt.
	PromptTokens int64
	Pricing      tokens.Pricing
	// OnFirstDelta runs once, before anything is written, so the caller
	// can stop the spinner and hand the cursor over.
	OnFirstDelta func()
}

// Painter owns the in-place redraw of the streamed changelog. Each Append
// moves the cursor back to the top of the previously written block, clears
// downward, and rewrites the whole block: a separator, a cost line, the
// accumulated text, and a trailing newline. The buffer only ever grows.
//
// Painter is driven sequentially by the stream loop; it is not safe for
// concurrent use and does not need to be.
type Painter struct {
	out          io.Writer
	width        func() int
	pricing      tokens.Pricing
	onFirstDelta func()

	buf           strings.Builder
	promptTokens  int64
	responseUnits int64
	moveUp        int
	started       bool
}

func NewPainter(opts PainterOptions) *Painter {
	width := opts.Width
	if width == nil {
		width = Width
	}
	return &Painter{
		out:          opts.Out,
		width:        width,
		pricing:      opts.Pricing,
		promptTokens: opts.PromptTokens,
		onFirstDelta: opts.OnFirstDelta,
	}
}

// Append consumes one streamed delta and redraws the block in place.
func (p *Painter) Append(delta string) error {
	var w strings.Builder

	if !p.started {
		if p.onFirstDelta != nil {
			p.onFirstDelta()
		}
		// room for the persistent output block
		w.WriteString("\n\n")
		p.started = true
	}

	if p.moveUp > 0 {
		fmt.Fprintf(&w, "\x1b[%dA", p.moveUp)
	}
	w.WriteString("\x1b[0J")

	p.buf.WriteString(delta)
	p.responseUnits++

	width := p.width()
	sep := separator(width)
	cost := p.costLine()
	plain := sep + "\n" + cost + "\n" + p.buf.String() + "\n"

	w.WriteString(separatorStyle.Render(sep))
	w.WriteString("\n")
	w.WriteString(costStyle.Render(cost))
	w.WriteString("\n")
	w.WriteString(p.buf.String())
	w.WriteString("\n")
	// save the cursor so Finish can come back here
	w.WriteString("\x1b7")

	// The trailing newline leaves the cursor on the open row counted as
	// the block's last, so the climb back to the top is rows minus one.
	p.moveUp = CountRows(plain, width) - 1

	_, err := io.WriteString(p.out, w.String())
	return err
}

// Finish restores the cursor to the position saved at the last redraw and
// closes the block with a final separator. Without any deltas it is a no-op.
func (p *Painter) Finish() error {
	if !p.started {
		return nil
	}
	sep := separator(p.width())
	_, err := io.WriteString(p.out, "\x1b8"+separatorStyle.Render(sep)+"\n")
	return err
}

// Text returns the accumulated changelog.
func (p *Painter) Text() string {
	return p.buf.String()
}

// ResponseUnits returns how many deltas were appended.
func (p *Painter) ResponseUnits() int64 {
	return p.responseUnits
}

// MoveUp returns the row count the next redraw will climb.
func (p *Painter) MoveUp() int {
	return p.moveUp
}

func (p *Painter) costLine() string {
	line := fmt.Sprintf("tokens: %d prompt + %d response", p.promptTokens, p.responseUnits)
	if !p.pricing.Zero() {
		line += fmt.Sprintf(" · $%.4f", p.pricing.CostUSD(p.promptTokens, p.responseUnits))
	}
	return line
}

func separator(width int) string {
	n := min(width, separatorWidth)
	if n < 1 {
		n = 1
	}
	return strings.Repeat("─", n)
}
