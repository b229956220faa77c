package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			if r.Header.Get("User-Agent") != "test-agent" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte("hello world"))
		case "/slow":
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte("late"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	fetcher := NewHTTPFetcher(server.Client(), "test-agent", 10)

	t.Run("success", func(t *testing.T) {
		page, err := fetcher.Fetch(context.Background(), server.URL+"/ok")
		if err != nil {
			t.Fatalf("Fetch() failed: %v", err)
		}
		if string(page.Body) != "hello worl" {
			t.Errorf("Expected body truncated to 10 bytes, got %q", page.Body)
		}
		if page.ContentType != "text/plain; charset=utf-8" {
			t.Errorf("Unexpected content type %q", page.ContentType)
		}
	})

	t.Run("non-200 status", func(t *testing.T) {
		_, err := fetcher.Fetch(context.Background(), server.URL+"/missing")
		if !errors.Is(err, ErrUnexpectedStatus) {
			t.Fatalf("Expected ErrUnexpectedStatus, got %v", err)
		}
		var fetchErr *Error
		if !errors.As(err, &fetchErr) || fetchErr.URL != server.URL+"/missing" {
			t.Errorf("Expected *Error carrying the URL, got %v", err)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := fetcher.Fetch(ctx, server.URL+"/slow")
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("Expected deadline exceeded, got %v", err)
		}
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := fetcher.Fetch(context.Background(), "://bad")
		if err == nil {
			t.Fatal("Expected error for invalid URL")
		}
	})
}
