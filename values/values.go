// Package values implements the runtime value store that lets callers pass
// extra, arbitrarily typed data into a template render without changing the
// template's fields.
//
// Three stores are provided and they differ on duplicate keys:
//
//   - [Map] owns its entries and is last-write-wins.
//   - [Slice] is a read-only list of pairs and is first-match-wins.
//   - [Empty] holds nothing; Add is a no-op and every lookup misses.
//
// Values are read back with [Get], which checks the stored value's dynamic
// type against the requested one.
package values

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
)

var (
	// ErrNotPresent is returned by Get when the store has no entry for the key.
	ErrNotPresent = errors.New("value not present")
	// ErrWrongType is returned by Get when the entry's dynamic type does not
	// match the requested type.
	ErrWrongType = errors.New("value has wrong type")
)

// Values is a string-keyed store of arbitrarily typed values.
type Values interface {
	// Add stores value under key. Whether an existing entry is replaced
	// depends on the implementation.
	Add(key string, value any)
	// Lookup returns the raw value stored under key.
	Lookup(key string) (any, bool)
}

// Error describes a failed Get. It matches ErrNotPresent or ErrWrongType
// through errors.Is.
type Error struct {
	Key string
	Err error

	// Want and Have are set for ErrWrongType. Have is nil when the stored
	// value is an untyped nil.
	Want reflect.Type
	Have reflect.Type
}

func (e *Error) Error() string {
	if e.Want != nil {
		return fmt.Sprintf("values: get %q: %s (have %v, want %v)", e.Key, e.Err, e.Have, e.Want)
	}
	return fmt.Sprintf("values: get %q: %s", e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Get returns the value stored under key as a T.
//
// It fails with ErrNotPresent when the key is missing (or v is nil) and with
// ErrWrongType when the stored value is not a T. When T is an interface type
// any value implementing it matches.
func Get[T any](v Values, key string) (T, error) {
	var zero T
	if v == nil {
		return zero, &Error{Key: key, Err: ErrNotPresent}
	}
	raw, ok := v.Lookup(key)
	if !ok {
		return zero, &Error{Key: key, Err: ErrNotPresent}
	}
	t, ok := raw.(T)
	if !ok {
		return zero, &Error{
			Key:  key,
			Err:  ErrWrongType,
			Want: reflect.TypeOf((*T)(nil)).Elem(),
			Have: reflect.TypeOf(raw),
		}
	}
	return t, nil
}

// Map is an owning store. Adding a key that already exists replaces the
// previous value. The zero value is ready to use.
//
// A Map is not safe for concurrent mutation.
type Map struct {
	m map[string]any
}

// New creates an empty Map.
func New() *Map {
	return &Map{m: make(map[string]any)}
}

// FromMap wraps a caller-owned map. Add writes through to m. A nil m reads
// as empty and is replaced by a private map on the first Add.
func FromMap(m map[string]any) *Map {
	return &Map{m: m}
}

// Add stores value under key, replacing any previous value.
func (m *Map) Add(key string, value any) {
	if m.m == nil {
		m.m = make(map[string]any)
	}
	m.m[key] = value
}

// Lookup returns the value stored under key.
func (m *Map) Lookup(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.m[key]
	return v, ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.m)
}

// Clone returns a shallow copy that can be mutated independently.
func (m *Map) Clone() *Map {
	if m == nil || m.m == nil {
		return New()
	}
	return &Map{m: maps.Clone(m.m)}
}

// Pair is a single Slice entry.
type Pair struct {
	Key   string
	Value any
}

// Slice is a read-only store over a fixed list of pairs. Lookup returns the
// first pair with a matching key, so earlier entries shadow later ones.
type Slice []Pair

// Add does nothing; a Slice cannot be mutated through the Values interface.
func (Slice) Add(string, any) {}

// Lookup scans the pairs in order and returns the first match.
func (s Slice) Lookup(key string) (any, bool) {
	for _, p := range s {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// Empty is a store that never holds anything. It is the store used when a
// render is started without one.
type Empty struct{}

// None is the shared Empty store.
var None Empty

// Add does nothing.
func (Empty) Add(string, any) {}

// Lookup always misses.
func (Empty) Lookup(string) (any, bool) { return nil, false }
