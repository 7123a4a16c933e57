package term

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// DefaultSpinnerInterval is the repaint period of the status line.
const DefaultSpinnerInterval = 150 * time.Millisecond

var spinnerFrames = []string{"-", "\\", "|", "/"}

var spinnerStyle = lipgloss.NewStyle().Faint(true)

// Spinner repaints a one-line status on a fixed interval until stopped.
// The terminal cursor is shared state: Stop cancels the repaint goroutine
// and joins it, so after Stop returns the caller owns the cursor.
type Spinner struct {
	out      io.Writer
	label    string
	interval time.Duration
	width    func() int

	cancel   chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// SpinnerOptions configures StartSpinner. Zero values get defaults.
type SpinnerOptions struct {
	Label    string
	Interval time.Duration
	Width    func() int
}

// StartSpinner begins repainting immediately in a background goroutine.
func StartSpinner(out io.Writer, opts SpinnerOptions) *Spinner {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultSpinnerInterval
	}
	width := opts.Width
	if width == nil {
		width = Width
	}
	s := &Spinner{
		out:      out,
		label:    opts.Label,
		interval: interval,
		width:    width,
		cancel:   make(chan struct{}),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Spinner) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	frame := 0
	if err := s.paint(frame); err != nil {
		return
	}
	for {
		select {
		case <-s.cancel:
			return
		case <-ticker.C:
			frame++
			if err := s.paint(frame); err != nil {
				// terminal gone; self-terminate
				return
			}
		}
	}
}

func (s *Spinner) paint(frame int) error {
	line := spinnerFrames[frame%len(spinnerFrames)]
	if s.label != "" {
		line += " " + s.label
	}
	line = runewidth.Truncate(line, max(s.width()-1, 1), "")
	_, err := io.WriteString(s.out, "\r\x1b[2K"+spinnerStyle.Render(line))
	return err
}

// Stop cancels the spinner, waits for any in-flight paint to finish, and
// clears the status line. It is safe to call more than once.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		close(s.cancel)
		<-s.done
		_, _ = io.WriteString(s.out, "\r\x1b[2K")
	})
}
