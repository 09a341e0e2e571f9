package tmplrt

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynRender(t *testing.T) {
	tmpl := hello{name: "world"}
	want, err := Render(tmpl)
	require.NoError(t, err)

	d := Dyn(tmpl)

	t.Run("render", func(t *testing.T) {
		got, err := d.DynRender()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("render into", func(t *testing.T) {
		var sb strings.Builder
		require.NoError(t, d.DynRenderInto(&sb))
		assert.Equal(t, want, sb.String())
	})

	t.Run("write into", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, d.DynWriteInto(&buf))
		assert.Equal(t, []byte(want), buf.Bytes())
	})

	t.Run("size hint", func(t *testing.T) {
		assert.Equal(t, 13, d.SizeHint())
	})
}

func TestDynHeterogeneous(t *testing.T) {
	templates := []DynTemplate{
		Dyn(hello{name: "a"}),
		Dyn(counter{}),
		Dyn(&hello{name: "b"}),
	}

	var out []string
	for _, d := range templates {
		s, err := d.DynRender()
		require.NoError(t, err)
		out = append(out, s)
	}
	assert.Equal(t, []string{"Hello, a!", "", "Hello, b!"}, out)
}

func TestDynFormat(t *testing.T) {
	d := Dyn(hello{name: "world"})

	assert.Equal(t, "Hello, world!", fmt.Sprint(d))
	assert.Equal(t, "Hello, world!", fmt.Sprintf("%v", d))
	assert.Equal(t, "Hello, world!", fmt.Sprintf("%s", d))
	assert.Equal(t, "Hello, world!", d.(fmt.Stringer).String())
	assert.Equal(t, "<Hello, world!>", fmt.Sprintf("<%v>", Display(d)))
}

func TestDynFormatFailure(t *testing.T) {
	d := Dyn(failing{})

	_, err := d.DynRender()
	require.ErrorIs(t, err, errBody)

	assert.Equal(t, "abc%!v(tmplrt: render failed)", fmt.Sprint(d))
	assert.Equal(t, "abc%!s(tmplrt: render failed)", fmt.Sprintf("%s", d))
}

// selfDyn implements both Template and DynTemplate.
type selfDyn struct {
	hello
}

func (selfDyn) DynRender() (string, error)           { return "custom", nil }
func (selfDyn) DynRenderInto(w io.StringWriter) error { _, err := w.WriteString("custom"); return err }
func (selfDyn) DynWriteInto(w io.Writer) error        { _, err := io.WriteString(w, "custom"); return err }

func TestDynKeepsExistingHandle(t *testing.T) {
	d := Dyn(selfDyn{hello: hello{name: "x"}})

	_, ok := d.(selfDyn)
	require.True(t, ok)

	got, err := d.DynRender()
	require.NoError(t, err)
	assert.Equal(t, "custom", got)
}
