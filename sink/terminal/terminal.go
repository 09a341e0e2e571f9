// Package terminal provides a text sink that prints rendered output as a
// bordered, word-wrapped card on an ANSI terminal.
package terminal

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
)

const (
	defaultWidth = 100
	minWidth     = 24
)

// ErrClosed is returned when writing to a closed Writer.
var ErrClosed = errors.New("terminal: write to closed writer")

// Writer buffers text written through WriteString and prints it as a card
// on Close.
type Writer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
	// Title is printed above the card when set.
	Title string
	// Meta is printed dimmed after the title, e.g. the content type.
	Meta string

	w      io.Writer
	buf    strings.Builder
	closed bool
}

// New creates a terminal Writer printing to w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteString appends rendered text.
func (tw *Writer) WriteString(s string) (int, error) {
	if tw.closed {
		return 0, ErrClosed
	}
	return tw.buf.WriteString(s)
}

// Close wraps the buffered text to the card width and prints it. Closing
// twice is a no-op.
func (tw *Writer) Close() error {
	if tw.closed {
		return nil
	}
	tw.closed = true

	width := tw.termWidth()
	// Two columns of border and two of padding.
	inner := width - 4

	body := strings.TrimRight(tw.buf.String(), "\n")
	body = ansi.Wordwrap(body, inner, "")

	var out strings.Builder
	if tw.Title != "" {
		header := styleTitle.Render(tw.Title)
		if tw.Meta != "" {
			header += "  " + styleMeta.Render(tw.Meta)
		}
		out.WriteString(header + "\n")
	}
	out.WriteString(styleCard.Width(width - 2).Render(styleBody.Render(body)))
	out.WriteString("\n")

	_, err := io.WriteString(tw.w, out.String())
	return err
}

func (tw *Writer) termWidth() int {
	if tw.Width > 0 {
		return max(tw.Width, minWidth)
	}
	if f, ok := tw.w.(interface{ Fd() uintptr }); ok {
		if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 {
			return max(w, minWidth)
		}
	}
	return defaultWidth
}
