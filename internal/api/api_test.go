package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClientOptionsApply(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(
		WithBaseURL(srv.URL),
		WithTimeout(5*time.Second),
		WithHeader("Authorization", "Bearer token"),
	)
	if c.httpClient.Timeout != 5*time.Second {
		t.Errorf("timeout = %v", c.httpClient.Timeout)
	}

	resp, err := c.GET(context.Background(), "/models/finbert")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if gotPath != "/models/finbert" {
		t.Errorf("base URL not prepended, server saw %q", gotPath)
	}
	if gotAuth != "Bearer token" {
		t.Errorf("default header not sent, got %q", gotAuth)
	}

	var body struct {
		OK bool `json:"ok"`
	}
	if err := resp.DecodeJSON(&body); err != nil || !body.OK {
		t.Errorf("DecodeJSON: %v, body %+v", err, body)
	}
}

func TestClientErrorStatusReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model is currently loading", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.POST(context.Background(), "/models/finbert", map[string]any{"inputs": "x"})
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Fatalf("expected HTTP 503 error, got %v", err)
	}
}
