// Package demo contains templates written the way the template compiler
// emits them. The CLI renders and serves them, and tests use them as
// realistic Template implementations.
package demo

import (
	"html"
	"io"
	"sort"
	"strconv"

	"github.com/sonnes/tmplrt"
	"github.com/sonnes/tmplrt/values"
)

const (
	contentTypeHTML     = "text/html; charset=utf-8"
	contentTypeText     = "text/plain; charset=utf-8"
	contentTypeMarkdown = "text/markdown; charset=utf-8"
)

// Entry describes a template in the catalog.
type Entry struct {
	Name        string
	Description string
	Template    tmplrt.Template
}

// Catalog returns every demo template, sorted by name.
func Catalog() []Entry {
	entries := []Entry{
		{
			Name:        "hello",
			Description: "hello.html: Hello, {{ name }}!",
			Template:    Hello{Name: "world"},
		},
		{
			Name:        "counter",
			Description: `counter.txt: prints the uint32 value "a" when present`,
			Template:    Counter{},
		},
		{
			Name:        "greeting",
			Description: `greeting.txt: greets the string value "name", "!" when bool "excited" is true`,
			Template:    Greeting{},
		},
		{
			Name:        "note",
			Description: "note.md: a Markdown note with a code sample",
			Template: Note{
				Title: "Rendering into sinks",
				Body:  "Templates write into any `io.StringWriter`; byte sinks go through an adapter.",
				Code:  "out, err := tmplrt.Render(demo.Hello{Name: \"world\"})",
			},
		},
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Lookup returns the catalog template with the given name.
func Lookup(name string) (tmplrt.Template, bool) {
	for _, e := range Catalog() {
		if e.Name == name {
			return e.Template, true
		}
	}
	return nil, false
}

// Hello is hello.html:
//
//	Hello, {{ name }}!
type Hello struct {
	Name string
}

func (t Hello) RenderIntoWithValues(w io.StringWriter, _ values.Values) error {
	if _, err := w.WriteString("Hello, "); err != nil {
		return err
	}
	if _, err := w.WriteString(html.EscapeString(t.Name)); err != nil {
		return err
	}
	_, err := w.WriteString("!")
	return err
}

func (Hello) SizeHint() int       { return 8 }
func (Hello) ContentType() string { return contentTypeHTML }

// Counter is counter.txt:
//
//	{% if let Ok(n) = VALUES.get::<u32>("a") %}{{ n }}{% endif %}
type Counter struct{}

func (Counter) RenderIntoWithValues(w io.StringWriter, v values.Values) error {
	if n, err := values.Get[uint32](v, "a"); err == nil {
		if _, err := w.WriteString(strconv.FormatUint(uint64(n), 10)); err != nil {
			return err
		}
	}
	return nil
}

func (Counter) SizeHint() int       { return 2 }
func (Counter) ContentType() string { return contentTypeText }

// Greeting is greeting.txt:
//
//	Hello, {% if let Ok(name) = VALUES.get::<&str>("name") %}{{ name }}{% else %}world{% endif -%}
//	{% if let Ok(true) = VALUES.get::<bool>("excited") %}!{% else %}.{% endif %}
type Greeting struct{}

func (Greeting) RenderIntoWithValues(w io.StringWriter, v values.Values) error {
	if _, err := w.WriteString("Hello, "); err != nil {
		return err
	}
	name, err := values.Get[string](v, "name")
	if err != nil {
		name = "world"
	}
	if _, err := w.WriteString(name); err != nil {
		return err
	}
	end := "."
	if excited, err := values.Get[bool](v, "excited"); err == nil && excited {
		end = "!"
	}
	_, err = w.WriteString(end)
	return err
}

func (Greeting) SizeHint() int       { return 13 }
func (Greeting) ContentType() string { return contentTypeText }

// Note is note.md:
//
//	# {{ title }}
//
//	{{ body }}
//
//	```go
//	{{ code }}
//	```
type Note struct {
	Title string
	Body  string
	Code  string
}

func (t Note) RenderIntoWithValues(w io.StringWriter, _ values.Values) error {
	parts := [...]string{
		"# ", t.Title, "\n\n",
		t.Body, "\n\n",
		"```go\n", t.Code, "\n```\n",
	}
	for _, p := range parts {
		if _, err := w.WriteString(p); err != nil {
			return err
		}
	}
	return nil
}

func (Note) SizeHint() int       { return 32 }
func (Note) ContentType() string { return contentTypeMarkdown }

// Index is index.html:
//
//	<ul>{% for e in entries %}<li><a href="/{{ e.name }}">{{ e.name }}</a> {{ e.description }}</li>{% endfor %}</ul>
type Index struct {
	Entries []Entry
}

func (t Index) RenderIntoWithValues(w io.StringWriter, _ values.Values) error {
	if _, err := w.WriteString("<ul>"); err != nil {
		return err
	}
	for _, e := range t.Entries {
		name := html.EscapeString(e.Name)
		parts := [...]string{
			`<li><a href="/`, name, `">`, name, "</a> ",
			html.EscapeString(e.Description), "</li>",
		}
		for _, p := range parts {
			if _, err := w.WriteString(p); err != nil {
				return err
			}
		}
	}
	_, err := w.WriteString("</ul>")
	return err
}

func (Index) SizeHint() int       { return 64 }
func (Index) ContentType() string { return contentTypeHTML }
