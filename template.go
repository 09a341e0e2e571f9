// Package tmplrt is the runtime side of a compiled template system. A code
// generator turns every template into a Go type implementing [Template];
// this package provides the entry points that render such a type into a new
// string, a text sink ([io.StringWriter]) or a byte sink ([io.Writer]),
// optionally with a [values.Values] store of extra data.
//
// The package-level functions are generic over the template type so calls
// on a concrete template are statically dispatched. [Dyn] wraps a template
// in the non-generic [DynTemplate] interface when templates of different
// types need to share one handle.
package tmplrt

import (
	"io"
	"strings"

	"github.com/sonnes/tmplrt/values"
)

// maxSizeHint caps how much Render preallocates from a template's hint.
const maxSizeHint = 16 << 20

// Template is implemented by generated template types.
type Template interface {
	// RenderIntoWithValues writes the rendered template to w, reading
	// injected data from v. It is the only method generated code has to
	// provide a body for; every entry point in this package ends here.
	RenderIntoWithValues(w io.StringWriter, v values.Values) error

	// SizeHint returns a constant estimate of the rendered length. It only
	// sizes the buffer allocated by Render and RenderWithValues and is
	// never treated as a limit.
	SizeHint() int
}

// ContentTyper is optionally implemented by templates that know the media
// type of their output, usually derived from the template file extension.
type ContentTyper interface {
	ContentType() string
}

// Render renders t into a new string with an empty value store.
func Render[T Template](t T) (string, error) {
	return RenderWithValues(t, values.None)
}

// RenderWithValues renders t into a new string, preallocated from
// t.SizeHint(). On error the partial output is discarded.
func RenderWithValues[T Template](t T, v values.Values) (string, error) {
	var b strings.Builder
	if n := t.SizeHint(); n > 0 {
		b.Grow(min(n, maxSizeHint))
	}
	if err := RenderIntoWithValues(t, &b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderInto renders t into w with an empty value store.
func RenderInto[T Template](t T, w io.StringWriter) error {
	return RenderIntoWithValues(t, w, values.None)
}

// RenderIntoWithValues renders t into w. A nil v is replaced by an empty
// store. Output written before a failure stays in w.
func RenderIntoWithValues[T Template](t T, w io.StringWriter, v values.Values) error {
	if v == nil {
		v = values.None
	}
	return t.RenderIntoWithValues(w, v)
}
