// Package httprender serves templates as HTTP responses.
package httprender

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/sonnes/tmplrt"
	"github.com/sonnes/tmplrt/values"
)

// DefaultContentType is used for templates that do not implement
// tmplrt.ContentTyper.
const DefaultContentType = "text/plain; charset=utf-8"

// Option configures a Handler.
type Option func(*config)

type config struct {
	values func(*http.Request) values.Values
	logger *log.Logger
}

// WithValues sets the function that builds the value store for each
// request. Without it templates render with an empty store.
func WithValues(fn func(*http.Request) values.Values) Option {
	return func(cfg *config) {
		cfg.values = fn
	}
}

// WithLogger sets the logger render failures are reported to. The default
// is log.Default().
func WithLogger(l *log.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// Handler returns an http.Handler that renders t for every request.
func Handler[T tmplrt.Template](t T, opts ...Option) http.Handler {
	cfg := config{logger: log.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var v values.Values
		if cfg.values != nil {
			v = cfg.values(req)
		}
		if err := Respond(w, req, t, v); err != nil {
			cfg.logger.Error("render template", "path", req.URL.Path, "err", err)
		}
	})
}

// Respond renders t and writes it as the response.
//
// The body is rendered into memory first, so a failing render is answered
// with 500 Internal Server Error instead of a truncated 200. HEAD requests
// get the headers of the full response without a body.
func Respond[T tmplrt.Template](w http.ResponseWriter, req *http.Request, t T, v values.Values) error {
	body, err := tmplrt.RenderWithValues(t, v)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return fmt.Errorf("httprender: %w", err)
	}

	h := w.Header()
	h.Set("Content-Type", ContentType(t))
	h.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)

	if req != nil && req.Method == http.MethodHead {
		return nil
	}
	if _, err := io.WriteString(w, body); err != nil {
		return fmt.Errorf("httprender: write body: %w", err)
	}
	return nil
}

// ContentType returns the media type of t's output.
func ContentType(t any) string {
	if ct, ok := t.(tmplrt.ContentTyper); ok {
		if s := ct.ContentType(); s != "" {
			return s
		}
	}
	return DefaultContentType
}

// QueryValues is a WithValues function that exposes the first value of each
// query parameter as a string, layered over base. base is copied per
// request and never modified.
func QueryValues(base *values.Map) func(*http.Request) values.Values {
	return func(req *http.Request) values.Values {
		v := base.Clone()
		for k, vs := range req.URL.Query() {
			if len(vs) > 0 {
				v.Add(k, vs[0])
			}
		}
		return v
	}
}
