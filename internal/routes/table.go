// Package routes holds the demo server's route tables. A table is a plain
// value mapping (method, path) to a handler, so it can be listed and tested
// without a listener, and is mounted onto a chi router for serving.
package routes

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var errNoHostname = errors.New("hello variant needs a hostname")

// Route maps one method and path to a handler.
type Route struct {
	Method  string
	Path    string
	Summary string
	Handler http.HandlerFunc
}

// Table is the ordered set of routes served by one variant.
type Table []Route

// Options carries the dependencies handlers are built from.
type Options struct {
	// Hostname is embedded in the hello greeting. Required for VariantHello.
	Hostname string
	// Echo receives a copy of every hello greeting. Defaults to io.Discard.
	Echo io.Writer
	// Now is the greeting clock. Defaults to time.Now.
	Now func() time.Time
	// Burn is the /cpu busy-wait duration. Defaults to DefaultBurn.
	Burn time.Duration
}

// New builds the route table for v.
func New(v Variant, opts Options) (Table, error) {
	if opts.Echo == nil {
		opts.Echo = io.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Burn <= 0 {
		opts.Burn = DefaultBurn
	}

	switch v {
	case VariantHello:
		if opts.Hostname == "" {
			return nil, errNoHostname
		}
		return Table{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Summary: "greeting with hostname and current time",
				Handler: Greeting(opts.Hostname, opts.Now, opts.Echo),
			},
		}, nil
	case VariantCPU:
		return Table{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Summary: "static greeting",
				Handler: Static(StaticGreeting),
			},
			{
				Method:  http.MethodGet,
				Path:    "/cpu",
				Summary: fmt.Sprintf("busy-wait one core for %s", opts.Burn),
				Handler: CPU(opts.Burn),
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown variant %q", v)
	}
}

// Lookup finds the route registered for method and path.
func (t Table) Lookup(method, path string) (Route, bool) {
	for _, r := range t {
		if r.Method == method && r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Router mounts the table on a chi router. Middlewares run before routing, in
// order. GET routes also answer HEAD; anything unmatched gets chi's default
// 404 or 405.
func (t Table) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares...)
	r.Use(middleware.GetHead)
	for _, rt := range t {
		r.Method(rt.Method, rt.Path, rt.Handler)
	}
	return r
}
