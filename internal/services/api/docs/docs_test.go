package docs

import (
	"encoding/json"
	"testing"
)

func TestDoc_IsValidJSONWithPaths(t *testing.T) {
	var doc map[string]any
	if err := json.Unmarshal(Doc(), &doc); err != nil {
		t.Fatalf("embedded doc is not JSON: %v", err)
	}
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		t.Fatalf("paths missing")
	}
	for _, p := range []string{"/convert", "/meta/health", "/meta/version"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("path %s missing from doc", p)
		}
	}
}

func TestStampVersion(t *testing.T) {
	doc := map[string]any{"info": map[string]any{"version": "x"}}
	StampVersion(doc)
	if v := doc["info"].(map[string]any)["version"]; v != "dev" {
		t.Fatalf("version = %v, want dev", v)
	}
	StampVersion(map[string]any{}) // no info block is a no-op
}
