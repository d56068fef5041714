package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"explain-this/api/internal/handle"
	"explain-this/api/internal/logging"
	"explain-this/api/internal/simplify"
)

func newTestRouter(t *testing.T, s simplify.Simplifier) http.Handler {
	t.Helper()
	log := logging.Discard()
	return NewRouter(handle.New(simplify.New(s), log), log)
}

func echoUpper() simplify.Simplifier {
	return simplify.SimplifierFunc(func(ctx context.Context, text string, level simplify.Complexity) (string, error) {
		return strings.ToUpper(text), nil
	})
}

func TestRoutes(t *testing.T) {
	router := newTestRouter(t, echoUpper())

	cases := []struct {
		method string
		path   string
		body   string
		code   int
	}{
		{http.MethodGet, "/", "", http.StatusOK},
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodPost, "/analyze", `{"text":"hi"}`, http.StatusOK},
		{http.MethodPost, "/login", "", http.StatusOK},
		{http.MethodPost, "/save", "", http.StatusOK},
		{http.MethodGet, "/analyze", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/missing", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != tc.code {
			t.Errorf("%s %s: expected %d, got %d", tc.method, tc.path, tc.code, rr.Code)
		}
	}
}

func TestAnalyzeThroughRouter(t *testing.T) {
	router := newTestRouter(t, echoUpper())

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"text":"hi","complexity":"adult"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var res simplify.AnalyzeResult
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Success || res.Simplified != "HI" || res.Complexity != simplify.Adult || res.Original != "hi" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestUnavailableServiceThroughRouter(t *testing.T) {
	router := newTestRouter(t, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(`{"text":"hi"}`)))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if !strings.Contains(rr.Body.String(), `"ai_service":false`) {
		t.Fatalf("health body = %s", rr.Body.String())
	}
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	router := newTestRouter(t, echoUpper())

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	req.Header.Set("Origin", "https://explain.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://other.example")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t, echoUpper())

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Header().Get(requestIDHeader) == "" {
		t.Fatal("missing generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if got := rr.Header().Get(requestIDHeader); got != "abc-123" {
		t.Fatalf("request id = %q", got)
	}
}

func TestServerShutdown(t *testing.T) {
	s := New(Options{Addr: "127.0.0.1:0"}, http.NotFoundHandler(), logging.Discard())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("ListenAndServe: %v", err)
	}
}
