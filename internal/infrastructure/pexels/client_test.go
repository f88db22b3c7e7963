package pexels

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"NewsPublisher/internal/config"
)

func TestSearchBuildsQueryAndMapsCandidates(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "pexels-key" {
			t.Errorf("unexpected auth header: %s", got)
		}
		q := r.URL.Query()
		if q.Get("query") != "Bitcoin" {
			t.Errorf("unexpected query: %s", q.Get("query"))
		}
		if q.Get("orientation") != "landscape" || q.Get("size") != "medium" {
			t.Errorf("unexpected filters: %v", q)
		}
		if q.Get("per_page") != "4" {
			t.Errorf("unexpected per_page: %s", q.Get("per_page"))
		}
		_, _ = w.Write([]byte(`{"photos": [
			{"id": 101, "photographer": "Ana", "src": {"medium": "https://img.example.com/101.jpeg"}}
		]}`))
	}))
	defer server.Close()

	client := NewClient(config.ImageConfig{Endpoint: server.URL, APIKey: "pexels-key"}, server.Client())
	candidates, err := client.Search(context.Background(), "Bitcoin", 4)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	got := candidates[0]
	if got.ID != 101 || got.Keyword != "Bitcoin" || got.URL != "https://img.example.com/101.jpeg" {
		t.Fatalf("unexpected candidate: %+v", got)
	}
	if got.Alt != "Bitcoin - Ana" {
		t.Fatalf("unexpected alt text: %s", got.Alt)
	}
}

func TestSearchNonOKFails(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(config.ImageConfig{Endpoint: server.URL, APIKey: "k"}, server.Client())
	if _, err := client.Search(context.Background(), "Bitcoin", 4); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestFetchReturnsBytes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))
	defer server.Close()

	client := NewClient(config.ImageConfig{Endpoint: server.URL, APIKey: "k"}, server.Client())
	data, err := client.Fetch(context.Background(), server.URL+"/photo.jpeg")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Fatalf("unexpected bytes: %q", data)
	}
}
