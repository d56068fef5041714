package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"explain-this/api/internal/simplify"
)

func newTestEngine(t *testing.T, h http.HandlerFunc) *Engine {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New("test-key", "gpt-4o-mini").WithBaseURL(srv.URL + "/").WithTimeout(2 * time.Second)
}

func TestSimplifySendsPromptAndReturnsContent(t *testing.T) {
	var got chatRequest
	e := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("authorization = %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"` + "```\\nSimple words.\\n```" + `"}}]}`))
	})

	out, err := e.Simplify(context.Background(), "Complicated words.", simplify.Teenager)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	if out != "Simple words." {
		t.Fatalf("out = %q", out)
	}
	if got.Model != "gpt-4o-mini" || len(got.Messages) != 2 {
		t.Fatalf("unexpected request %+v", got)
	}
	if got.Messages[0].Role != "system" || !strings.Contains(got.Messages[0].Content, "teenager") {
		t.Fatalf("system message = %+v", got.Messages[0])
	}
	if !strings.Contains(got.Messages[1].Content, "Complicated words.") {
		t.Fatalf("user message = %+v", got.Messages[1])
	}
}

func TestSimplifyHTTPError(t *testing.T) {
	e := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})
	_, err := e.Simplify(context.Background(), "x", simplify.Adult)
	if err == nil || !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("err = %v", err)
	}
}

func TestSimplifyEmptyChoices(t *testing.T) {
	e := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})
	if _, err := e.Simplify(context.Background(), "x", simplify.Adult); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestSimplifyBadJSON(t *testing.T) {
	e := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})
	_, err := e.Simplify(context.Background(), "x", simplify.Adult)
	if err == nil || !strings.Contains(err.Error(), "bad JSON") {
		t.Fatalf("err = %v", err)
	}
}

func TestSimplifyWithoutKey(t *testing.T) {
	if _, err := New("", "m").Simplify(context.Background(), "x", simplify.Adult); err == nil {
		t.Fatal("expected error for empty API key")
	}
}
