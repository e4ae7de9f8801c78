package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	phttp "dconv/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestMetaRoutes(t *testing.T) {
	started := time.Date(2025, 6, 24, 20, 0, 0, 0, time.UTC)
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, Deps{
		ServiceName: "dconv-api",
		StartedAt:   started,
		Now:         func() time.Time { return started.Add(5 * time.Minute) },
	})

	tests := []struct {
		path string
		want []string
	}{
		{"/health", []string{`"ok":true`, `"service":"dconv-api"`, `"now":"2025-06-24T20:05:00Z"`}},
		{"/service", []string{`"name":"dconv-api"`, `"uptime":300`, `"started":"2025-06-24T20:00:00Z"`}},
		{"/version", []string{`"service":"dconv"`, `"version":"dev"`}},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s = %d", tt.path, rec.Code)
		}
		for _, w := range tt.want {
			if !strings.Contains(rec.Body.String(), w) {
				t.Fatalf("GET %s body %s missing %s", tt.path, rec.Body.String(), w)
			}
		}
	}
}
