// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"dconv/internal/modkit"
	phttp "dconv/internal/platform/net/http"

	metahttp "dconv/internal/services/api/meta/http"
)

// ServiceName is reported by /meta/health and /meta/service
const ServiceName = "dconv-api"

// Module implements modkit.Module for /meta
type Module struct {
	modkit.Base
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{Base: modkit.NewBase(b, func(r phttp.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   deps.StartedAt,
		})
	})}
}
