package tmplrt

import (
	"fmt"
	"io"
)

// DynTemplate is the non-generic counterpart of Template. It lets templates
// of different types be stored in one slice, map or return value at the cost
// of dynamic dispatch on every sink write. Every method renders with an
// empty value store.
type DynTemplate interface {
	DynRender() (string, error)
	DynRenderInto(w io.StringWriter) error
	DynWriteInto(w io.Writer) error
	SizeHint() int
}

// Dyn wraps t as a DynTemplate. If t already is one it is returned as is.
//
// The returned handle also implements fmt.Formatter and fmt.Stringer; see
// Display.
func Dyn[T Template](t T) DynTemplate {
	if d, ok := any(t).(DynTemplate); ok {
		return d
	}
	return dynTemplate[T]{t: t}
}

type dynTemplate[T Template] struct {
	t T
}

func (d dynTemplate[T]) DynRender() (string, error) {
	return Render(d.t)
}

func (d dynTemplate[T]) DynRenderInto(w io.StringWriter) error {
	return RenderInto(d.t, w)
}

func (d dynTemplate[T]) DynWriteInto(w io.Writer) error {
	return WriteInto(d.t, w)
}

func (d dynTemplate[T]) SizeHint() int {
	return d.t.SizeHint()
}

func (d dynTemplate[T]) Format(f fmt.State, verb rune) {
	Display(d).Format(f, verb)
}

func (d dynTemplate[T]) String() string {
	return fmt.Sprint(Display(d))
}

// errDisplay is printed in place of a template that failed to render while
// being formatted.
const errDisplay = "tmplrt: render failed"

// Display adapts d to the fmt package. Formatting renders d with any verb;
// if rendering fails the output written so far is followed by a marker in
// fmt's usual "%!v(...)" style. The underlying error is not reported.
func Display(d DynTemplate) fmt.Formatter {
	return display{d: d}
}

type display struct {
	d DynTemplate
}

func (p display) Format(f fmt.State, verb rune) {
	if err := p.d.DynRenderInto(stateWriter{f}); err != nil {
		fmt.Fprintf(f, "%%!%c(%s)", verb, errDisplay)
	}
}

// stateWriter gives a fmt.State the text sink interface.
type stateWriter struct {
	w io.Writer
}

func (s stateWriter) WriteString(str string) (int, error) {
	return io.WriteString(s.w, str)
}
