package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sonnes/tmplrt/demo"
	"github.com/sonnes/tmplrt/httprender"
	"github.com/sonnes/tmplrt/sink/markdown"
	"github.com/sonnes/tmplrt/sink/terminal"
	"github.com/sonnes/tmplrt/values"
)

// sink is a text sink that buffers until closed.
type sink interface {
	io.StringWriter
	Close() error
}

// app holds the template catalog and sink registry used by CLI commands.
type app struct {
	catalog   []demo.Entry
	templates map[string]demo.Entry
	sinks     map[string]func(w io.Writer, e demo.Entry) sink
}

func newApp() *app {
	a := &app{
		catalog:   demo.Catalog(),
		templates: make(map[string]demo.Entry),
		sinks: map[string]func(w io.Writer, e demo.Entry) sink{
			"terminal": func(w io.Writer, e demo.Entry) sink {
				tw := terminal.New(w)
				tw.Title = e.Name
				tw.Meta = httprender.ContentType(e.Template)
				return tw
			},
			"markdown": func(w io.Writer, _ demo.Entry) sink { return markdown.New(w) },
		},
	}
	for _, e := range a.catalog {
		a.templates[e.Name] = e
	}
	return a
}

func (a *app) template(name string) (demo.Entry, error) {
	e, ok := a.templates[name]
	if !ok {
		return demo.Entry{}, fmt.Errorf("unknown template %q", name)
	}
	return e, nil
}

func (a *app) sink(name string, w io.Writer, e demo.Entry) (sink, error) {
	fn, ok := a.sinks[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(w, e), nil
}

// loadValues builds the value store from an optional YAML file and
// key=value assignments. Assignments win over the file.
func loadValues(path string, assignments []string) (*values.Map, error) {
	v := values.New()
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open values: %w", err)
		}
		defer f.Close()
		if err := values.LoadYAML(f, v); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := values.ParseAssignments(assignments, v); err != nil {
		return nil, err
	}
	return v, nil
}
