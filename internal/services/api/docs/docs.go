// Package docs embeds the OpenAPI document served by the Swagger UI
package docs

import (
	_ "embed"

	"dconv/internal/core/version"
)

//go:embed openapi.json
var openapi []byte

// Doc returns the raw OpenAPI document
func Doc() []byte { return openapi }

// StampVersion replaces info.version with the running build's version
func StampVersion(doc map[string]any) {
	if info, ok := doc["info"].(map[string]any); ok {
		info["version"] = version.Info().Version
	}
}
