// Package commands implements what the cmd package exposes: building the
// route table for a config, serving it, and listing it.
package commands

import (
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/0xDVC/hellocpu/internal/config"
	"github.com/0xDVC/hellocpu/internal/host"
	"github.com/0xDVC/hellocpu/internal/routes"
)

var lookupHostname = host.Hostname

// Table builds the route table selected by cfg. The hello variant reads the
// hostname here, once, and fails if it cannot.
func Table(cfg config.Config, echo io.Writer) (routes.Table, error) {
	v, err := routes.ParseVariant(cfg.Variant)
	if err != nil {
		return nil, err
	}
	opts := routes.Options{
		Echo: echo,
		Burn: cfg.Burn(),
	}
	if v == routes.VariantHello {
		name, err := lookupHostname()
		if err != nil {
			return nil, err
		}
		opts.Hostname = name
	}
	return routes.New(v, opts)
}

// Handler is the full request pipeline: logger injection, request IDs,
// access logging, then the route table.
func Handler(cfg config.Config, logger zerolog.Logger, echo io.Writer) (http.Handler, error) {
	tbl, err := Table(cfg, echo)
	if err != nil {
		return nil, err
	}
	return tbl.Router(
		hlog.NewHandler(logger),
		requestID,
		accessLog(),
	), nil
}
