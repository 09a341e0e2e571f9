package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sonnes/tmplrt"
	"github.com/sonnes/tmplrt/httprender"
	"github.com/urfave/cli/v3"
)

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the available templates",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return newApp().list(os.Stdout)
		},
	}
}

// list prints one line per template: name, size hint, content type and
// description.
func (a *app) list(w io.Writer) error {
	for _, e := range a.catalog {
		d := tmplrt.Dyn(e.Template)
		_, err := fmt.Fprintf(w, "%-10s %4d  %-32s %s\n",
			e.Name, d.SizeHint(), httprender.ContentType(e.Template), e.Description)
		if err != nil {
			return err
		}
	}
	return nil
}
