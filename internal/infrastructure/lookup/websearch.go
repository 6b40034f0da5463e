package lookup

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// WebSearcher implements the WebSearcher port on top of the DuckDuckGo HTML
// endpoint for URL discovery and goquery for page extraction. Discovery and
// fetch failures are absorbed: the dispatch pipeline only ever sees an empty
// candidate list or ok == false.
type WebSearcher struct {
	httpClient     *http.Client
	searchEndpoint string
	userAgent      string
	maxCandidates  int
}

// NewWebSearcher builds a searcher with the configured page timeout and
// candidate budget.
func NewWebSearcher(settings domain.LookupSettings) *WebSearcher {
	max := settings.MaxCandidates
	if max <= 0 {
		max = domain.DefaultMaxCandidates
	}
	ua := settings.UserAgent
	if ua == "" {
		ua = domain.DefaultLookupUA
	}
	return &WebSearcher{
		httpClient:     &http.Client{Timeout: settings.HTTPTimeout()},
		searchEndpoint: "https://html.duckduckgo.com/html/",
		userAgent:      ua,
		maxCandidates:  max,
	}
}

// Discover returns up to max candidate result URLs for the query. A failed
// or empty search yields a nil slice.
func (s *WebSearcher) Discover(ctx context.Context, query string, max int) []string {
	if max <= 0 || max > s.maxCandidates {
		max = s.maxCandidates
	}
	endpoint := s.searchEndpoint + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil
	}

	var urls []string
	doc.Find("a.result__a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok {
			return true
		}
		if resolved := resolveResultURL(href); resolved != "" {
			urls = append(urls, resolved)
		}
		return len(urls) < max
	})
	return urls
}

// FirstSnippet fetches discovered candidates in order and returns the first
// page that yields non-empty extracted text.
func (s *WebSearcher) FirstSnippet(ctx context.Context, query string) (domain.WebResult, bool) {
	for _, candidate := range s.Discover(ctx, query, s.maxCandidates) {
		result, ok := s.extract(ctx, candidate)
		if ok {
			return result, true
		}
	}
	return domain.WebResult{}, false
}

func (s *WebSearcher) extract(ctx context.Context, pageURL string) (domain.WebResult, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return domain.WebResult{}, false
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.WebResult{}, false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.WebResult{}, false
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return domain.WebResult{}, false
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = pageURL
	}

	var snippet string
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			snippet = text
			return false
		}
		return true
	})
	if snippet == "" {
		return domain.WebResult{}, false
	}

	return domain.WebResult{Title: title, Snippet: snippet, SourceURL: pageURL}, true
}

// resolveResultURL unwraps DuckDuckGo's redirect links (the uddg query
// parameter) and passes direct links through.
func resolveResultURL(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}
	// Query().Get already unescapes the redirect target.
	if uddg := parsed.Query().Get("uddg"); uddg != "" {
		return uddg
	}
	if parsed.Scheme == "http" || parsed.Scheme == "https" {
		return href
	}
	return ""
}

var _ ports.WebSearcher = (*WebSearcher)(nil)
