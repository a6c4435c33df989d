package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/strategic-council/screener/config"
)

func rssDocument(itemCount int) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Test Wire</title>`)
	for i := 0; i < itemCount; i++ {
		fmt.Fprintf(&b, `<item>
<title>Headline %d &lt;b&gt;bold&lt;/b&gt;</title>
<link>https://example.com/%d</link>
<description>&lt;p&gt;Body %d with &lt;a href="x"&gt;markup&lt;/a&gt;&lt;/p&gt;</description>
<pubDate>Wed, 12 Mar 2025 07:00:00 GMT</pubDate>
</item>`, i, i, i)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func testSources(url string, limit int) config.SourcesConfig {
	return config.SourcesConfig{
		Feeds:        []config.FeedSource{{Name: "Test Wire", URL: url}},
		PerFeedLimit: limit,
		FetchTimeout: 5 * time.Second,
	}
}

func TestCollectParsesAndSanitizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssDocument(3))
	}))
	defer srv.Close()

	items, err := NewRSSCollector(testSources(srv.URL, 15)).Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	first := items[0]
	if first.Source != "Test Wire" {
		t.Errorf("source = %q", first.Source)
	}
	if first.Title != "Headline 0 bold" {
		t.Errorf("title not sanitized: %q", first.Title)
	}
	if strings.Contains(first.Content, "<") || !strings.Contains(first.Content, "Body 0 with markup") {
		t.Errorf("content not sanitized: %q", first.Content)
	}
	if first.Link != "https://example.com/0" {
		t.Errorf("link = %q", first.Link)
	}
	if first.PublishedLabel == "" {
		t.Error("published label missing")
	}
}

func TestCollectHonorsPerFeedLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssDocument(30))
	}))
	defer srv.Close()

	items, err := NewRSSCollector(testSources(srv.URL, 15)).Collect(context.Background())
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(items) != 15 {
		t.Errorf("got %d items, want per-feed limit 15", len(items))
	}
}

func TestCollectSkipsFailingSource(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssDocument(2))
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer bad.Close()

	cfg := config.SourcesConfig{
		Feeds: []config.FeedSource{
			{Name: "Broken", URL: bad.URL},
			{Name: "Good", URL: good.URL},
		},
		PerFeedLimit: 15,
		FetchTimeout: 5 * time.Second,
	}

	items, err := NewRSSCollector(cfg).Collect(context.Background())
	if err != nil {
		t.Fatalf("one bad source must not fail the collection: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 from the good source", len(items))
	}
	if items[0].Source != "Good" {
		t.Errorf("source = %q", items[0].Source)
	}
}

func TestCleanText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"<p>hello <b>world</b></p>", "hello world"},
		{"a b", "a b"},
		{"a​b", "ab"},
		{"  spaced \n\t out  ", "spaced out"},
		{"", ""},
	}
	for _, c := range cases {
		if got := CleanText(c.in); got != c.want {
			t.Errorf("CleanText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCapContentRuneBoundary(t *testing.T) {
	long := strings.Repeat("é", 2000) // 4000 bytes, 2000 runes: over the byte cap, under the rune cap
	if got := capContent(long); got != long {
		t.Errorf("content under the rune cap must be untouched, got %d runes", len([]rune(got)))
	}

	over := strings.Repeat("é", 3200)
	capped := capContent(over)
	if !utf8.ValidString(capped) {
		t.Fatal("truncation split a rune")
	}
	if got := len([]rune(capped)); got != 3000 {
		t.Errorf("capped to %d runes, want 3000", got)
	}
}

func TestEnricherExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>Article</title></head><body>
<article><h1>Big Move</h1><p>`+strings.Repeat("Markets repriced sharply today. ", 40)+`</p></article>
</body></html>`)
	}))
	defer srv.Close()

	text, err := NewEnricher(5 * time.Second).Extract(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(text, "Markets repriced sharply today.") {
		t.Errorf("article text missing: %q", text)
	}
	if len(text) > 3000 {
		t.Errorf("text not capped: %d chars", len(text))
	}
}

func TestEnricherNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := NewEnricher(5 * time.Second).Extract(context.Background(), srv.URL); err == nil {
		t.Fatal("404 must surface an error")
	}
}
