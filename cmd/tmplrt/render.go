package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/sonnes/tmplrt"
	"github.com/sonnes/tmplrt/demo"
	"github.com/sonnes/tmplrt/values"
	"github.com/urfave/cli/v3"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Render a template to stdout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "template",
				Aliases:  []string{"t"},
				Usage:    "Template name (see list)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "values",
				Usage: "Path to a YAML file of values to inject",
			},
			&cli.StringSliceFlag{
				Name:  "set",
				Usage: "Inject a string value. Example: --set name=world",
			},
			&cli.StringFlag{
				Name:  "o",
				Usage: "Output format: text, terminal, markdown",
				Value: "text",
			},
			&cli.BoolFlag{
				Name:  "dyn",
				Usage: "Render through the dynamic template interface (values are ignored)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a := newApp()

			e, err := a.template(cmd.String("template"))
			if err != nil {
				return err
			}

			v, err := loadValues(cmd.String("values"), cmd.StringSlice("set"))
			if err != nil {
				return err
			}

			dyn := cmd.Bool("dyn")
			if dyn && v.Len() > 0 {
				log.Warn("values are ignored with --dyn", "count", v.Len())
			}

			log.Debug("rendering", "template", e.Name, "output", cmd.String("o"), "dyn", dyn)
			if err := a.render(os.Stdout, e, v, cmd.String("o"), dyn); err != nil {
				return fmt.Errorf("render: %w", err)
			}
			return nil
		},
	}
}

// render writes e to w in the given output format. The dynamic path drops v.
func (a *app) render(w io.Writer, e demo.Entry, v values.Values, output string, dyn bool) error {
	if output == "text" {
		if dyn {
			return tmplrt.Dyn(e.Template).DynWriteInto(w)
		}
		return tmplrt.WriteIntoWithValues(e.Template, w, v)
	}

	s, err := a.sink(output, w, e)
	if err != nil {
		return err
	}
	if dyn {
		err = tmplrt.Dyn(e.Template).DynRenderInto(s)
	} else {
		err = tmplrt.RenderIntoWithValues(e.Template, s, v)
	}
	if err != nil {
		return err
	}
	return s.Close()
}
