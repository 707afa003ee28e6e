package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_API_URL", server.URL)
	return NewGeminiClient()
}

func TestGenerateReturnsCandidateText(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"ok\":"},{"text":"true}"}]}}]}`))
	})

	out, err := client.Generate(
		context.Background(),
		"Rank the dishes.",
		&InlineImage{MIMEType: "image/jpeg", Data: "aGVsbG8="},
		MenuGenerationConfig(),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != `{"ok":true}` {
		t.Fatalf("expected concatenated parts, got %q", out)
	}

	if !strings.Contains(gotPath, ":generateContent") {
		t.Fatalf("unexpected request path %q", gotPath)
	}
	if _, ok := gotBody["generationConfig"]; !ok {
		t.Fatal("expected generationConfig in request payload")
	}
	contents, ok := gotBody["contents"].([]any)
	if !ok || len(contents) != 1 {
		t.Fatalf("unexpected contents payload: %v", gotBody["contents"])
	}
}

func TestGenerateFailsOnAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), "prompt", nil, nil)
	if err == nil {
		t.Fatal("expected error on non-200 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status code in error, got %v", err)
	}
}

func TestGenerateFailsOnEmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := client.Generate(context.Background(), "prompt", nil, nil)
	if err == nil || !strings.Contains(err.Error(), "empty gemini response") {
		t.Fatalf("expected empty response error, got %v", err)
	}
}

func TestGenerateRequiresAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	client := NewGeminiClient()

	_, err := client.Generate(context.Background(), "prompt", nil, nil)
	if err == nil || !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Fatalf("expected missing key error, got %v", err)
	}
}

func TestHasAPIKeyIgnoresPlaceholder(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "your_key_here")
	if HasAPIKey() {
		t.Fatal("expected placeholder credential to count as missing")
	}

	t.Setenv("GEMINI_API_KEY", "real-key")
	if !HasAPIKey() {
		t.Fatal("expected credential to be detected")
	}
}
