package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewsAPIMissingKey(t *testing.T) {
	n := NewNewsAPI(testClient(), "", testLogger())
	articles, err := n.Fetch(context.Background(), 5)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(articles) != 0 {
		t.Fatalf("got %d articles, want 0 without an api key", len(articles))
	}
}

func TestNewsAPIFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apiKey") != "test-key" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("country") {
		case "us":
			w.Write([]byte(`{"status":"ok","articles":[
				{"source":{"name":"Ars Technica"},"title":"GPU shortage eases as supply catches up","url":"https://example.com/gpu","publishedAt":"2026-08-29T12:00:00Z"}]}`))
		case "mx":
			w.Write([]byte(`{"status":"ok","articles":[
				{"source":{"name":"El Universal"},"title":"Fintech mexicana expande operaciones a Colombia","url":"https://example.com/fintech","publishedAt":"2026-08-29T11:00:00Z"},
				{"source":{"name":""},"title":"","url":"https://example.com/empty"}]}`))
		default:
			w.Write([]byte(`{"status":"ok","articles":[]}`))
		}
	}))
	defer srv.Close()

	n := NewNewsAPI(testClient(), "test-key", testLogger())
	n.endpoint = srv.URL

	articles, err := n.Fetch(context.Background(), 10)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2: %+v", len(articles), articles)
	}
	seen := map[string]bool{}
	for _, a := range articles {
		seen[a.Source] = true
	}
	if !seen["Ars Technica"] || !seen["El Universal"] {
		t.Errorf("missing expected sources, got %+v", articles)
	}
}

func TestNewsDataMissingKey(t *testing.T) {
	n := NewNewsData(testClient(), "", testLogger())
	articles, err := n.Fetch(context.Background(), 5)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(articles) != 0 {
		t.Fatalf("got %d articles, want 0 without an api key", len(articles))
	}
}

func TestNewsDataFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","results":[
			{"title":"Battery maker opens plant in Monterrey","link":"https://example.com/battery","description":"Production starts in Q4.","pubDate":"2026-08-29 09:30:00","source_name":"Reuters"},
			{"title":"","link":"https://example.com/skip"}]}`))
	}))
	defer srv.Close()

	n := NewNewsData(testClient(), "test-key", testLogger())
	n.endpoint = srv.URL

	articles, err := n.Fetch(context.Background(), 10)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1", len(articles))
	}
	if articles[0].Source != "Reuters" {
		t.Errorf("source = %q", articles[0].Source)
	}
	if articles[0].PublishedAt.IsZero() {
		t.Error("publishedAt should be parsed")
	}
}
