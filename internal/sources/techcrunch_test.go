package sources

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"kiosco/internal/config"
	"kiosco/internal/fetcher"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testClient() *fetcher.Client {
	cfg := config.DefaultConfig()
	return fetcher.New(&cfg.Fetch, testLogger())
}

const techCrunchPage = `<!DOCTYPE html>
<html><body>
<nav><a href="/about">About TechCrunch and its editors</a></nav>
<article>
  <a href="https://techcrunch.com/2026/08/29/robotics-startup-raises-40m/">Robotics startup raises $40M to automate warehouses</a>
  <p>The round was led by a new growth fund.</p>
</article>
<article>
  <a href="https://techcrunch.com/2026/08/28/chipmaker-earnings/">Chipmaker beats earnings expectations on data center demand</a>
</article>
<div>
  <a href="https://techcrunch.com/category/venture/">Venture</a>
  <a href="https://techcrunch.com/2026/08/29/robotics-startup-raises-40m/">Robotics startup raises $40M to automate warehouses</a>
  <a href="https://techcrunch.com/events/">TC Events and conferences page</a>
</div>
</body></html>`

func TestTechCrunchFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(techCrunchPage))
	}))
	defer srv.Close()

	tc := NewTechCrunch(testClient(), testLogger())
	tc.baseURL = srv.URL

	articles, err := tc.Fetch(context.Background(), 10)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2: %+v", len(articles), articles)
	}

	first := articles[0]
	if first.Title != "Robotics startup raises $40M to automate warehouses" {
		t.Errorf("title = %q", first.Title)
	}
	if first.Description != "The round was led by a new growth fund." {
		t.Errorf("description = %q", first.Description)
	}
	wantDate := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	if !first.PublishedAt.Equal(wantDate) {
		t.Errorf("publishedAt = %v, want %v", first.PublishedAt, wantDate)
	}
	if first.Source != "TechCrunch" {
		t.Errorf("source = %q", first.Source)
	}
}

func TestTechCrunchFetchLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(techCrunchPage))
	}))
	defer srv.Close()

	tc := NewTechCrunch(testClient(), testLogger())
	tc.baseURL = srv.URL

	articles, err := tc.Fetch(context.Background(), 1)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1", len(articles))
	}
}

func TestTechCrunchFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	tc := NewTechCrunch(testClient(), testLogger())
	tc.baseURL = srv.URL

	if _, err := tc.Fetch(context.Background(), 5); err == nil {
		t.Fatal("expected error on 503")
	}
}
