package knowledge

import (
	"context"
	"strings"
	"testing"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/pkg/logger"
)

type stubStructured struct {
	text   string
	ok     bool
	called bool
}

func (s *stubStructured) Summary(context.Context, string, int) (string, bool) {
	s.called = true
	return s.text, s.ok
}

type stubWeb struct {
	result domain.WebResult
	ok     bool
	urls   []string
	called bool
}

func (s *stubWeb) Discover(context.Context, string, int) []string {
	return s.urls
}

func (s *stubWeb) FirstSnippet(context.Context, string) (domain.WebResult, bool) {
	s.called = true
	return s.result, s.ok
}

type memoryCache struct {
	entries map[string]domain.CacheEntry
}

func (m *memoryCache) Get(key string) (domain.CacheEntry, bool, error) {
	entry, ok := m.entries[key]
	return entry, ok, nil
}

func (m *memoryCache) Set(entry domain.CacheEntry) error {
	if m.entries == nil {
		m.entries = map[string]domain.CacheEntry{}
	}
	m.entries[entry.Key] = entry
	return nil
}

func TestResolvePrefersStructured(t *testing.T) {
	structured := &stubStructured{text: "Turing was a mathematician.", ok: true}
	web := &stubWeb{}
	r := &Resolver{Structured: structured, Web: web, Logger: logger.New(false), MaxSentences: 2}

	outcome := r.Resolve(context.Background(), "turing")
	if !outcome.Found || outcome.Source != domain.LookupSourceStructured {
		t.Fatalf("Resolve() = %+v, want structured answer", outcome)
	}
	if web.called {
		t.Fatal("web stage ran despite structured success")
	}
}

func TestResolveFallsBackToWeb(t *testing.T) {
	structured := &stubStructured{ok: false}
	web := &stubWeb{
		result: domain.WebResult{Title: "Turing", Snippet: "X", SourceURL: "https://example.com/t"},
		ok:     true,
	}
	r := &Resolver{Structured: structured, Web: web, Logger: logger.New(false)}

	outcome := r.Resolve(context.Background(), "turing")
	if !outcome.Found || outcome.Source != domain.LookupSourceWeb {
		t.Fatalf("Resolve() = %+v, want web answer", outcome)
	}
	if !structured.called {
		t.Fatal("structured stage was skipped")
	}
	if !strings.Contains(outcome.Text, "X") || outcome.URL != "https://example.com/t" {
		t.Fatalf("Resolve() text/url = %q / %q", outcome.Text, outcome.URL)
	}
}

func TestResolveNotFound(t *testing.T) {
	r := &Resolver{
		Structured: &stubStructured{ok: false},
		Web:        &stubWeb{ok: false},
		Logger:     logger.New(false),
	}
	outcome := r.Resolve(context.Background(), "nothing anywhere")
	if outcome.Found {
		t.Fatalf("Resolve() = %+v, want NotFound", outcome)
	}
}

func TestResolveEmptyQuery(t *testing.T) {
	r := &Resolver{Logger: logger.New(false)}
	if outcome := r.Resolve(context.Background(), ""); outcome.Found {
		t.Fatal("Resolve(\"\") found an answer")
	}
}

func TestResolveUsesCache(t *testing.T) {
	structured := &stubStructured{text: "Answer one.", ok: true}
	cacheStore := &memoryCache{}
	r := &Resolver{Structured: structured, Cache: cacheStore, Logger: logger.New(false)}

	first := r.Resolve(context.Background(), "repeated question")
	if !first.Found || first.Source != domain.LookupSourceStructured {
		t.Fatalf("first Resolve() = %+v", first)
	}

	structured.ok = false // source goes away; cache should cover
	second := r.Resolve(context.Background(), "repeated question")
	if !second.Found || second.Source != domain.LookupSourceCache {
		t.Fatalf("second Resolve() = %+v, want cache hit", second)
	}
	if second.Text != "Answer one." {
		t.Fatalf("cached text = %q", second.Text)
	}
}

func TestComposeWebAnswer(t *testing.T) {
	got := ComposeWebAnswer(domain.WebResult{Title: "T", Snippet: "S", SourceURL: "u"})
	if got != "T\n\nS\n\nSource: u" {
		t.Fatalf("ComposeWebAnswer() = %q", got)
	}
	got = ComposeWebAnswer(domain.WebResult{Title: "T", SourceURL: "u"})
	if got != "T\n\nSource: u" {
		t.Fatalf("ComposeWebAnswer() without snippet = %q", got)
	}
}
