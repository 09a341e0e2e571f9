// Package markdown provides a text sink that collects Markdown and writes
// it to a byte sink as HTML, with fenced code highlighted by chroma.
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

// ErrClosed is returned when writing to a closed Writer.
var ErrClosed = errors.New("markdown: write to closed writer")

const defaultStyle = "dracula"

// Option configures a Writer.
type Option func(*config)

type config struct {
	style  string
	unsafe bool
}

// WithStyle sets the chroma style used for fenced code blocks.
func WithStyle(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.style = name
		}
	}
}

// WithUnsafeHTML passes raw HTML in the Markdown through to the output.
// By default goldmark replaces it with a comment.
func WithUnsafeHTML() Option {
	return func(cfg *config) {
		cfg.unsafe = true
	}
}

// Writer buffers Markdown written through WriteString and converts it on
// Close. Nothing reaches the underlying writer before Close.
type Writer struct {
	w      io.Writer
	md     goldmark.Markdown
	buf    bytes.Buffer
	closed bool
}

// New creates a Writer that writes HTML to w. goldmark is configured for
// GFM with inline-styled syntax highlighting.
func New(w io.Writer, opts ...Option) *Writer {
	cfg := config{style: defaultStyle}
	for _, opt := range opts {
		opt(&cfg)
	}

	var rendererOpts []goldmark.Option
	if cfg.unsafe {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(gmhtml.WithUnsafe()))
	}

	md := goldmark.New(append([]goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(cfg.style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles, no stylesheet needed
				),
			),
		),
	}, rendererOpts...)...)

	return &Writer{w: w, md: md}
}

// WriteString appends Markdown source.
func (mw *Writer) WriteString(s string) (int, error) {
	if mw.closed {
		return 0, ErrClosed
	}
	return mw.buf.WriteString(s)
}

// Close converts the buffered Markdown and writes the HTML. Closing twice
// is a no-op.
func (mw *Writer) Close() error {
	if mw.closed {
		return nil
	}
	mw.closed = true
	if err := mw.md.Convert(mw.buf.Bytes(), mw.w); err != nil {
		return fmt.Errorf("markdown: goldmark convert: %w", err)
	}
	return nil
}
