// Package lookup implements the knowledge lookup collaborators: a structured
// Wikipedia summary client and a web search + page snippet extractor.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// WikipediaClient implements the StructuredLookup port against the Wikipedia
// REST summary API. Every failure, including transport errors and missing
// pages, is absorbed and reported as ok == false.
type WikipediaClient struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
}

// NewWikipediaClient builds a client for the configured language edition.
func NewWikipediaClient(settings domain.LookupSettings) *WikipediaClient {
	lang := settings.WikiLanguage
	if lang == "" {
		lang = domain.DefaultWikiLanguage
	}
	ua := settings.UserAgent
	if ua == "" {
		ua = domain.DefaultLookupUA
	}
	return &WikipediaClient{
		httpClient: &http.Client{Timeout: settings.HTTPTimeout()},
		endpoint:   fmt.Sprintf("https://%s.wikipedia.org/api/rest_v1/page/summary/", lang),
		userAgent:  ua,
	}
}

type summaryResponse struct {
	Type    string `json:"type"`
	Extract string `json:"extract"`
}

// Summary implements ports.StructuredLookup.
func (c *WikipediaClient) Summary(ctx context.Context, query string, maxSentences int) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}

	title := url.PathEscape(strings.ReplaceAll(query, " ", "_"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+title, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", false
	}

	var summary summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return "", false
	}
	if summary.Type == "disambiguation" || summary.Extract == "" {
		return "", false
	}
	return clampSentences(summary.Extract, maxSentences), true
}

// clampSentences trims an extract to at most max sentences. Sentence
// boundaries are approximated by ". " runs, matching the summary style the
// API returns.
func clampSentences(text string, max int) string {
	if max <= 0 {
		return text
	}
	remaining := text
	var b strings.Builder
	for i := 0; i < max; i++ {
		idx := strings.Index(remaining, ". ")
		if idx < 0 {
			b.WriteString(remaining)
			return b.String()
		}
		b.WriteString(remaining[:idx+1])
		b.WriteString(" ")
		remaining = remaining[idx+2:]
	}
	return strings.TrimSpace(b.String())
}

var _ ports.StructuredLookup = (*WikipediaClient)(nil)
