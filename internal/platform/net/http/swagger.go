package http

import (
	"encoding/json"
	stdhttp "net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the Swagger UI and its JSON live
const DocsPath = "/api/docs"

// SpecMutator adjusts the parsed OpenAPI document before it is served
type SpecMutator func(map[string]any)

// MountSwagger mounts the Swagger UI over doc when enabled
func MountSwagger(r Router, enabled bool, doc []byte, mutators ...SpecMutator) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		stdhttp.Redirect(w, req, DocsPath+"/", stdhttp.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDocJSON(doc, mutators))
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("dconv"),
		httpSwagger.URL(DocsPath+"/doc.json"),
	))
}

// serveDocJSON parses doc per request so mutators see a fresh copy
func serveDocJSON(doc []byte, mutators []SpecMutator) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
		var parsed map[string]any
		if err := json.Unmarshal(doc, &parsed); err != nil {
			stdhttp.Error(w, "openapi parse error", stdhttp.StatusInternalServerError)
			return
		}
		for _, m := range mutators {
			m(parsed)
		}
		w.Header().Set("Cache-Control", "no-store")
		JSON(w, stdhttp.StatusOK, parsed)
	}
}
