package tmplrt

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/sonnes/tmplrt/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// limitWriter accepts n bytes and then fails with err.
type limitWriter struct {
	buf bytes.Buffer
	n   int
	err error
}

func (l *limitWriter) Write(p []byte) (int, error) {
	if len(p) <= l.n {
		l.n -= len(p)
		return l.buf.Write(p)
	}
	k, _ := l.buf.Write(p[:l.n])
	l.n = 0
	return k, l.err
}

// shortWriter drops the last byte of every write without reporting an error.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return len(p) - 1, nil
}

// swallowing ignores write errors and reports success.
type swallowing struct{}

func (swallowing) RenderIntoWithValues(w io.StringWriter, _ values.Values) error {
	_, _ = w.WriteString("abcdef")
	_, _ = w.WriteString("ghi")
	return nil
}

func (swallowing) SizeHint() int { return 9 }

func TestWriteInto(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteInto(hello{name: "world"}, &buf))
	assert.Equal(t, "Hello, world!", buf.String())
}

func TestWriteIntoWithValues(t *testing.T) {
	v := values.New()
	v.Add("a", uint32(12))

	var buf bytes.Buffer
	require.NoError(t, WriteIntoWithValues(counter{}, &buf, v))
	assert.Equal(t, "12", buf.String())
}

func TestWriteIntoSurfacesWriterError(t *testing.T) {
	errDisk := errors.New("disk full")
	w := &limitWriter{n: 3, err: errDisk}

	err := WriteInto(hello{name: "world"}, w)
	require.Error(t, err)
	assert.Equal(t, errDisk, err)
	assert.NotErrorIs(t, err, ErrFmt)
	assert.Equal(t, "Hel", w.buf.String())
}

func TestWriteIntoKeepsFirstWriterError(t *testing.T) {
	errDisk := errors.New("disk full")
	w := &limitWriter{n: 3, err: errDisk}

	err := WriteInto(swallowing{}, w)
	assert.Equal(t, errDisk, err)
	assert.Equal(t, "abc", w.buf.String())
}

func TestWriteIntoShortWrite(t *testing.T) {
	err := WriteInto(hello{name: "world"}, shortWriter{})
	assert.Equal(t, io.ErrShortWrite, err)
}

func TestWriteIntoSynthesizesIOError(t *testing.T) {
	var buf bytes.Buffer
	err := WriteInto(failing{}, &buf)
	require.ErrorIs(t, err, ErrIO)
	require.ErrorIs(t, err, errBody)
	assert.Equal(t, "abc", buf.String())

	err = WriteInto(required{}, &buf)
	require.ErrorIs(t, err, ErrIO)
	require.ErrorIs(t, err, values.ErrNotPresent)
}

func TestByteSinkReportsGenericError(t *testing.T) {
	errDisk := errors.New("disk full")
	s := &byteSink{w: &limitWriter{n: 0, err: errDisk}}

	_, err := s.WriteString("x")
	assert.Equal(t, ErrFmt, err)
	assert.Equal(t, errDisk, s.err)
}
