package tmplrt

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/sonnes/tmplrt/values"
)

// ErrNoTemplate is returned when rendering a wrapper that holds no template.
var ErrNoTemplate = errors.New("tmplrt: no template")

// The wrappers below implement Template by handing every call to the
// wrapped value, so rendering through them is identical to rendering the
// value directly. A plain *T needs no wrapper: it already has T's value
// receiver methods.

// forward renders *p into w.
func forward[T Template](p *T, w io.StringWriter, v values.Values) error {
	if p == nil {
		return ErrNoTemplate
	}
	return (*p).RenderIntoWithValues(w, v)
}

// sizeHint returns the hint of *p, or zero when there is nothing to render.
func sizeHint[T Template](p *T) int {
	if p == nil {
		return 0
	}
	return (*p).SizeHint()
}

// Ref is a borrowed template.
type Ref[T Template] struct {
	P *T
}

func (r Ref[T]) RenderIntoWithValues(w io.StringWriter, v values.Values) error {
	return forward(r.P, w, v)
}

func (r Ref[T]) SizeHint() int { return sizeHint(r.P) }

// Shared is a template that can be rendered from many goroutines while
// another replaces it with Store. Each render uses the template that was
// current when it started. The zero value holds nothing.
type Shared[T Template] struct {
	p atomic.Pointer[T]
}

// NewShared returns a Shared holding t.
func NewShared[T Template](t T) *Shared[T] {
	s := &Shared[T]{}
	s.Store(t)
	return s
}

// Load returns the current template, or nil.
func (s *Shared[T]) Load() *T { return s.p.Load() }

// Store replaces the current template.
func (s *Shared[T]) Store(t T) { s.p.Store(&t) }

func (s *Shared[T]) RenderIntoWithValues(w io.StringWriter, v values.Values) error {
	return forward(s.p.Load(), w, v)
}

func (s *Shared[T]) SizeHint() int { return sizeHint(s.p.Load()) }

// Locked guards a template with a mutex held for the whole render.
type Locked[T Template] struct {
	mu sync.Mutex
	t  T
}

// NewLocked returns a Locked holding t.
func NewLocked[T Template](t T) *Locked[T] {
	return &Locked[T]{t: t}
}

// Update calls fn with exclusive access to the template.
func (l *Locked[T]) Update(fn func(*T)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&l.t)
}

func (l *Locked[T]) RenderIntoWithValues(w io.StringWriter, v values.Values) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return forward(&l.t, w, v)
}

func (l *Locked[T]) SizeHint() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return sizeHint(&l.t)
}

// RWLocked guards a template with a read lock during renders, so renders
// run concurrently, and a write lock during Update.
type RWLocked[T Template] struct {
	mu sync.RWMutex
	t  T
}

// NewRWLocked returns a RWLocked holding t.
func NewRWLocked[T Template](t T) *RWLocked[T] {
	return &RWLocked[T]{t: t}
}

// Update calls fn with exclusive access to the template.
func (l *RWLocked[T]) Update(fn func(*T)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&l.t)
}

func (l *RWLocked[T]) RenderIntoWithValues(w io.StringWriter, v values.Values) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return forward(&l.t, w, v)
}

func (l *RWLocked[T]) SizeHint() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return sizeHint(&l.t)
}
