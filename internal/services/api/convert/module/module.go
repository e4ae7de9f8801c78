// Package module wires the convert endpoints into the API
package module

import (
	"dconv/internal/modkit"
	phttp "dconv/internal/platform/net/http"

	converthttp "dconv/internal/services/api/convert/http"
)

// Module implements modkit.Module for /convert
type Module struct {
	modkit.Base
}

// New constructs the convert module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("convert"),
		modkit.WithPrefix("/convert"),
	}, opts...)...)

	return &Module{Base: modkit.NewBase(b, func(r phttp.Router) {
		converthttp.Register(r, converthttp.Deps{Converter: deps.Converter})
	})}
}
