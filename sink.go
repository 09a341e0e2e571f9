package tmplrt

import (
	"errors"
	"fmt"
	"io"

	"github.com/sonnes/tmplrt/values"
)

var (
	// ErrFmt is the generic failure a text sink reports. It carries no cause;
	// WriteInto recovers the underlying byte sink error separately.
	ErrFmt = errors.New("tmplrt: formatting error")

	// ErrIO is returned by WriteInto when the render failed but the byte sink
	// itself reported no error, so there is no original error to surface.
	ErrIO = errors.New("tmplrt: i/o error")
)

// byteSink drives an io.Writer through the text sink interface. The first
// error from w is kept in err and every later write fails without touching w.
type byteSink struct {
	w   io.Writer
	err error
}

func (s *byteSink) WriteString(str string) (int, error) {
	if s.err != nil {
		return 0, ErrFmt
	}
	n, err := io.WriteString(s.w, str)
	if err == nil && n < len(str) {
		err = io.ErrShortWrite
	}
	if err != nil {
		s.err = err
		return n, ErrFmt
	}
	return n, nil
}

// result maps the outcome of a render through s to the byte sink's domain.
func (s *byteSink) result(renderErr error) error {
	if s.err != nil {
		return s.err
	}
	if renderErr != nil {
		return fmt.Errorf("%w: %w", ErrIO, renderErr)
	}
	return nil
}

// WriteInto renders t into the byte sink w with an empty value store.
func WriteInto[T Template](t T, w io.Writer) error {
	return WriteIntoWithValues(t, w, values.None)
}

// WriteIntoWithValues renders t into the byte sink w.
//
// If w fails, that exact error is returned, even when the template went on
// to return nil. If the render fails for any other reason the error wraps
// both ErrIO and the render error.
func WriteIntoWithValues[T Template](t T, w io.Writer, v values.Values) error {
	s := &byteSink{w: w}
	return s.result(RenderIntoWithValues(t, s, v))
}
