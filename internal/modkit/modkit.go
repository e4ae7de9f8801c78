// Package modkit provides module wiring for the HTTP API
package modkit

import (
	"net/http"
	"strings"

	phttp "dconv/internal/platform/net/http"
)

// Module is the common surface for API modules that mount routes under a prefix
// keep this tiny so modules stay decoupled
type Module interface {
	// Name returns the module name used in logs
	Name() string
	// Prefix is the path the module mounts under, e.g. "/convert"
	Prefix() string
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

// MountAPI mounts a subrouter under /api/{version}, applies mw,
// then mounts every module under its own prefix
func MountAPI(r phttp.Router, version string, mw []func(http.Handler) http.Handler, mods ...Module) {
	prefix := "/api/" + strings.Trim(version, "/")
	r.Route(prefix, func(api phttp.Router) {
		if len(mw) > 0 {
			api.Use(mw...)
		}
		for _, m := range mods {
			m.MountRoutes(api)
		}
	})
}

// MountAPIV1 is a convenience for MountAPI with version v1
func MountAPIV1(r phttp.Router, mw []func(http.Handler) http.Handler, mods ...Module) {
	MountAPI(r, "v1", mw, mods...)
}
