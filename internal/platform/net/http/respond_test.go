package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "dconv/internal/platform/errors"
	pnet "dconv/internal/platform/net"
	phttp "dconv/internal/platform/net/http"
)

// helper to build a request with a request_id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v (body %q)", err, rec.Body.String())
	}
	return env
}

func TestJSON_SetsContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", ct)
	}
}

func TestRespondOK(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondOK(rec, reqWithReqID("GET", "/x", "rid-1"), map[string]string{"a": "b"})
	if rec.Code != http.StatusOK {
		t.Fatalf("RespondOK code: %d", rec.Code)
	}
	env := decode(t, rec)
	if env.StatusCode != 200 || env.Status != "OK" || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestRespondError_Mapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   perr.ErrorCode
		kind   string
		field  string
	}{
		{"conversion", perr.Newf(perr.ErrorCodeUnsupportedUnit, "Unsupported unit y"), 422, perr.ErrorCodeUnsupportedUnit, "unsupported_unit", ""},
		{"validation", perr.WithField(perr.Validationf("date is a required field"), "date"), 400, perr.ErrorCodeValidation, "validation", "date"},
		{"json", perr.JSONErrf("empty body"), 400, perr.ErrorCodeJSON, "json", ""},
		{"foreign", errors.New("boom"), 500, perr.ErrorCodeUnknown, "unknown", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			phttp.RespondError(rec, reqWithReqID("GET", "/e", "rid-e"), tt.err)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			env := decode(t, rec)
			if env.Code != tt.code || env.Kind != tt.kind || env.Field != tt.field || env.RequestID != "rid-e" {
				t.Fatalf("bad envelope: %+v", env)
			}
			if env.Data != nil {
				t.Fatalf("error envelope carries data: %+v", env.Data)
			}
		})
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.NotFound(rec, reqWithReqID("GET", "/nope", "rid-nf"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("NotFound status = %d", rec.Code)
	}
	if env := decode(t, rec); env.Code != perr.ErrorCodeNotFound || env.Error != "no route for GET /nope" {
		t.Fatalf("bad envelope: %+v", env)
	}

	rec = httptest.NewRecorder()
	phttp.MethodNotAllowed(rec, reqWithReqID("DELETE", "/api/v1/convert", ""))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("MethodNotAllowed status = %d", rec.Code)
	}
	if env := decode(t, rec); env.Error != "method DELETE not allowed" {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestHandle_ReturnStyle(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		if r.URL.Query().Get("fail") != "" {
			return phttp.Error(perr.Newf(perr.ErrorCodeInvalidOperation, "Invalid operation +"))
		}
		return phttp.Response{
			Status: http.StatusAccepted,
			Body:   map[string]int{"n": 1},
			Header: http.Header{"X-Extra": []string{"1"}},
		}
	})

	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/h", "rid-h"))
	if rec.Code != http.StatusAccepted || rec.Header().Get("X-Extra") != "1" {
		t.Fatalf("success path: %d %v", rec.Code, rec.Header())
	}

	rec = httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/h?fail=1", "rid-h"))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("error path status = %d", rec.Code)
	}
	if env := decode(t, rec); env.Error != "Invalid operation +" {
		t.Fatalf("bad envelope: %+v", env)
	}

	rec = httptest.NewRecorder()
	phttp.Handle(func(*http.Request) phttp.Response { return phttp.Response{Body: "x"} })(rec, reqWithReqID("GET", "/", ""))
	if rec.Code != http.StatusOK {
		t.Fatalf("zero status should default to 200, got %d", rec.Code)
	}
}
