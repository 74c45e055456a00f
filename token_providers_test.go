package sdk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStaticTokenProvider(t *testing.T) {
	provider := NewStaticTokenProvider("  tok-1  ")
	token, err := provider.Token(context.Background())
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("token %q", token)
	}

	if _, err := NewStaticTokenProvider("").Token(context.Background()); err == nil {
		t.Fatal("expected empty token error")
	}
}

func TestAntiforgeryTokenProviderFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != defaultTokenPath {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte("\n  antiforgery-token-1  \n"))
	}))
	defer srv.Close()

	provider, err := NewAntiforgeryTokenProvider(AntiforgeryTokenProviderConfig{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	token, err := provider.Token(context.Background())
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token != "antiforgery-token-1" {
		t.Fatalf("token %q", token)
	}
}

func TestAntiforgeryTokenProviderCustomPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte("tok"))
	}))
	defer srv.Close()

	provider, err := NewAntiforgeryTokenProvider(AntiforgeryTokenProviderConfig{
		BaseURL:    srv.URL,
		Path:       "token",
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if _, err := provider.Token(context.Background()); err != nil {
		t.Fatalf("token: %v", err)
	}
}

func TestAntiforgeryTokenProviderErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	provider, err := NewAntiforgeryTokenProvider(AntiforgeryTokenProviderConfig{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	_, err = provider.Token(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusForbidden {
		t.Fatalf("expected forbidden APIError, got %v", err)
	}
}

func TestAntiforgeryTokenProviderEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("   "))
	}))
	defer srv.Close()

	provider, err := NewAntiforgeryTokenProvider(AntiforgeryTokenProviderConfig{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
	})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if _, err := provider.Token(context.Background()); err == nil {
		t.Fatal("expected empty token error")
	}
}

func TestAntiforgeryTokenProviderRequiresBaseURL(t *testing.T) {
	if _, err := NewAntiforgeryTokenProvider(AntiforgeryTokenProviderConfig{}); err == nil {
		t.Fatal("expected base URL error")
	}
}
