package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/sonnes/tmplrt/demo"
	"github.com/sonnes/tmplrt/httprender"
	"github.com/sonnes/tmplrt/values"
	"github.com/urfave/cli/v3"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve every template over HTTP",
		Description: `Each template is served at /<name>. Query parameters are injected
as string values on top of the values file, e.g. /greeting?name=world.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "values",
				Usage: "Path to a YAML file of values to inject",
			},
			&cli.IntFlag{
				Name:  "port",
				Usage: "Port to listen on",
				Value: 8080,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a := newApp()

			base, err := loadValues(cmd.String("values"), nil)
			if err != nil {
				return err
			}

			addr := fmt.Sprintf(":%d", cmd.Int("port"))
			log.Info("serving", "addr", "http://localhost"+addr, "templates", len(a.catalog))
			return http.ListenAndServe(addr, a.mux(base))
		},
	}
}

// mux routes GET /{name} to each template and GET / to the index.
func (a *app) mux(base *values.Map) *http.ServeMux {
	mux := http.NewServeMux()
	logger := log.Default()

	mux.Handle("GET /{$}", httprender.Handler(demo.Index{Entries: a.catalog}, httprender.WithLogger(logger)))
	for _, e := range a.catalog {
		mux.Handle("GET /"+e.Name, httprender.Handler(e.Template,
			httprender.WithValues(httprender.QueryValues(base)),
			httprender.WithLogger(logger.With("template", e.Name)),
		))
	}
	return mux
}
