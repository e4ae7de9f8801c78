package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pnet "dconv/internal/platform/net"
	kit "dconv/internal/platform/testkit"
)

func TestRequestID_MintsAndEchoes(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &newRequestID, func() string { return "minted-1" })

	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen != "minted-1" {
		t.Fatalf("context id = %q, want minted-1", seen)
	}
	if got := rr.Header().Get(pnet.HeaderRequestID); got != "minted-1" {
		t.Fatalf("response header = %q", got)
	}
}

func TestRequestID_PropagatesInbound(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.RequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(pnet.HeaderRequestID, "upstream-7")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if seen != "upstream-7" || rr.Header().Get(pnet.HeaderRequestID) != "upstream-7" {
		t.Fatalf("inbound id not propagated: ctx=%q header=%q", seen, rr.Header().Get(pnet.HeaderRequestID))
	}
}

func TestCORS_PreflightAndDefaults(t *testing.T) {
	h := CORS(CORSOptions{AllowedOrigins: []string{" https://app.example ", ""}})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { _, _ = io.WriteString(w, "ok") }),
	)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/convert", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Fatalf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/convert", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("foreign origin allowed: %q", got)
	}
}

func TestDefaults_StackServes(t *testing.T) {
	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if pnet.RequestID(r.Context()) == "" {
			t.Errorf("request id missing inside the stack")
		}
		_, _ = io.WriteString(w, "ok")
	})
	mws := Defaults(Options{Timeout: time.Second})
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/meta/health/", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("unexpected response %d %q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get(pnet.HeaderRequestID) == "" {
		t.Fatalf("X-Request-ID not echoed")
	}
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatalf("NoCache headers missing")
	}
}
