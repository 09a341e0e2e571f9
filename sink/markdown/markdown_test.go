package markdown

import (
	"bytes"
	"testing"

	"github.com/sonnes/tmplrt"
	"github.com/sonnes/tmplrt/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNote(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)

	note := demo.Note{
		Title: "Sinks",
		Body:  "Write into `io.StringWriter`.",
		Code:  "x := 1",
	}
	require.NoError(t, tmplrt.RenderInto(note, w))
	assert.Empty(t, buf.String(), "nothing is written before Close")

	require.NoError(t, w.Close())
	html := buf.String()

	t.Run("heading", func(t *testing.T) {
		assert.Contains(t, html, "<h1>Sinks</h1>")
	})

	t.Run("inline code", func(t *testing.T) {
		assert.Contains(t, html, "<code>io.StringWriter</code>")
	})

	t.Run("highlighted code block", func(t *testing.T) {
		assert.Contains(t, html, "<pre ")
		assert.Contains(t, html, `style="`)
		assert.NotContains(t, html, `class="chroma"`)
	})
}

func TestRawHTML(t *testing.T) {
	t.Run("omitted by default", func(t *testing.T) {
		var buf bytes.Buffer
		w := New(&buf)
		_, err := w.WriteString("<div>raw</div>\n")
		require.NoError(t, err)
		require.NoError(t, w.Close())
		assert.NotContains(t, buf.String(), "<div>raw</div>")
	})

	t.Run("unsafe", func(t *testing.T) {
		var buf bytes.Buffer
		w := New(&buf, WithUnsafeHTML(), WithStyle("github"))
		_, err := w.WriteString("<div>raw</div>\n")
		require.NoError(t, err)
		require.NoError(t, w.Close())
		assert.Contains(t, buf.String(), "<div>raw</div>")
	})
}

func TestWriteAfterClose(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, err := w.WriteString("late")
	require.ErrorIs(t, err, ErrClosed)

	err = tmplrt.RenderInto(demo.Note{Title: "x"}, w)
	require.ErrorIs(t, err, ErrClosed)
}
