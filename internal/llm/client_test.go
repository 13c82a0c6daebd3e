package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCompleteSuccess(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"hello keywords"},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "test-key", "test-model", 5*time.Second)
	got, err := c.Complete(context.Background(), Request{SystemPrompt: "sys", UserPrompt: "user"})
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if got != "hello keywords" {
		t.Errorf("Complete() = %q, want %q", got, "hello keywords")
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "k", "m", 5*time.Second)
	if _, err := c.Complete(context.Background(), Request{}); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestCompleteAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "k", "m", 5*time.Second)
	_, err := c.Complete(context.Background(), Request{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429", apiErr.StatusCode)
	}
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
		auth      bool
	}{
		{"rate limit", &APIError{StatusCode: 429}, true, false},
		{"server error", &APIError{StatusCode: 500}, true, false},
		{"bad gateway", &APIError{StatusCode: 502}, true, false},
		{"unauthorized", &APIError{StatusCode: 401}, false, true},
		{"forbidden", &APIError{StatusCode: 403}, false, true},
		{"bad request", &APIError{StatusCode: 400}, false, false},
		{"network error", errors.New("connection refused"), true, false},
		{"context canceled", context.Canceled, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.transient {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.transient)
			}
			if got := IsAuthError(tt.err); got != tt.auth {
				t.Errorf("IsAuthError(%v) = %v, want %v", tt.err, got, tt.auth)
			}
		})
	}
}
