package modkit

import (
	"net/http"
	"strings"

	phttp "dconv/internal/platform/net/http"
)

// Option mutates build configuration for a module
type Option func(*buildCfg)

// buildCfg is internal wiring state for options
type buildCfg struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	register func(phttp.Router)
}

// WithName sets a module name used in logs
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPrefix mounts a module under a path prefix
func WithPrefix(prefix string) Option {
	return func(c *buildCfg) { c.prefix = prefix }
}

// WithMiddlewares attaches per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithRegister adds extra endpoints to the module router after its own
func WithRegister(fn func(phttp.Router)) Option {
	return func(c *buildCfg) { c.register = fn }
}

// Built is a plain struct with the fields modules care about
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Register func(phttp.Router)
}

// Build applies options and returns the resolved configuration
// Prefix is normalized to a single leading slash and no trailing slash
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   "/" + strings.Trim(strings.TrimSpace(c.prefix), "/"),
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Register: c.register,
	}
}

// Base implements Module on top of a Built config and a route registration func
// Concrete modules embed it and supply their own routes
type Base struct {
	cfg    Built
	routes func(phttp.Router)
}

// NewBase pairs a Built config with the module's own routes
func NewBase(b Built, routes func(phttp.Router)) Base {
	return Base{cfg: b, routes: routes}
}

// Name implements Module
func (b Base) Name() string { return b.cfg.Name }

// Prefix implements Module
func (b Base) Prefix() string { return b.cfg.Prefix }

// MountRoutes implements Module
func (b Base) MountRoutes(r phttp.Router) {
	r.Route(b.cfg.Prefix, func(rr phttp.Router) {
		if len(b.cfg.Mw) > 0 {
			rr.Use(b.cfg.Mw...)
		}
		if b.routes != nil {
			b.routes(rr)
		}
		b.cfg.Register(rr)
	})
}
