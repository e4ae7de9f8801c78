package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	kit "dconv/internal/platform/testkit"
)

func TestAccessLogZerolog_PassThroughStatusAndBody(t *testing.T) {
	mw := AccessLogZerolog(AccessLogOptions{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, "bad")
	})

	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422 got %d", rr.Code)
	}
	if rr.Body.String() != "bad" {
		t.Fatalf("expected body bad got %q", rr.Body.String())
	}
}

func TestAccessLogZerolog_SlowMarkDoesNotAffectResponse(t *testing.T) {
	kit.Serial(t)
	tick := time.Date(2025, 6, 24, 20, 18, 0, 0, time.UTC)
	kit.Swap(t, &now, func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	})

	mw := AccessLogZerolog(AccessLogOptions{Slow: time.Millisecond})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "slow")
	})

	rr := httptest.NewRecorder()
	mw(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/slow", nil))

	if rr.Code != http.StatusOK || rr.Body.String() != "slow" {
		t.Fatalf("unexpected response %d %q", rr.Code, rr.Body.String())
	}
}

func TestCaptureWriter_CountsBytes(t *testing.T) {
	rr := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rr, status: http.StatusOK}
	_, _ = cw.Write([]byte("hi"))
	_, _ = cw.Write([]byte("there"))

	if cw.bytes != 7 {
		t.Fatalf("bytes = %d, want 7", cw.bytes)
	}
	if cw.Unwrap() != rr {
		t.Fatalf("Unwrap should return the wrapped writer")
	}
	cw.WriteHeader(http.StatusTeapot)
	if cw.status != http.StatusTeapot {
		t.Fatalf("status = %d", cw.status)
	}
}
