// Package knowledge implements the lookup fallback chain that answers
// free-text queries.
package knowledge

import (
	"context"
	"fmt"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/infrastructure/cache"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// Resolver runs the two-stage lookup chain: structured lookup first, web
// lookup second, NotFound last. The stages are strictly ordered and never
// run concurrently for a single query. Resolve has no side effects beyond
// network I/O; browser fallbacks belong to the dispatcher.
type Resolver struct {
	Structured   ports.StructuredLookup
	Web          ports.WebSearcher
	Cache        ports.CacheRepository
	Logger       ports.Logger
	MaxSentences int
}

// Resolve answers the query or reports NotFound. Every failure in either
// stage is absorbed and downgraded to the next stage; Resolve never errors.
func (r *Resolver) Resolve(ctx context.Context, query string) domain.LookupOutcome {
	if query == "" {
		return domain.NoAnswer()
	}

	key := cache.KeyFor(query)
	if r.Cache != nil {
		if entry, hit, err := r.Cache.Get(key); err == nil && hit {
			r.Logger.Debug("answer served from cache", map[string]interface{}{"query": query})
			return domain.Answer(entry.Answer, domain.LookupSourceCache)
		}
	}

	if r.Structured != nil {
		if text, ok := r.Structured.Summary(ctx, query, r.MaxSentences); ok {
			r.remember(key, query, text, domain.LookupSourceStructured)
			return domain.Answer(text, domain.LookupSourceStructured)
		}
		r.Logger.Debug("structured lookup missed", map[string]interface{}{"query": query})
	}

	if r.Web != nil {
		if result, ok := r.Web.FirstSnippet(ctx, query); ok {
			text := ComposeWebAnswer(result)
			r.remember(key, query, text, domain.LookupSourceWeb)
			outcome := domain.Answer(text, domain.LookupSourceWeb)
			outcome.URL = result.SourceURL
			return outcome
		}
		r.Logger.Debug("web lookup missed", map[string]interface{}{"query": query})
	}

	return domain.NoAnswer()
}

func (r *Resolver) remember(key, query, answer string, source domain.LookupSource) {
	if r.Cache == nil {
		return
	}
	err := r.Cache.Set(domain.CacheEntry{Key: key, Query: query, Answer: answer, Source: source})
	if err != nil {
		r.Logger.Warn("answer cache write failed", map[string]interface{}{"error": err.Error()})
	}
}

// ComposeWebAnswer formats an extracted page for speech and logs: title,
// snippet, and the source URL.
func ComposeWebAnswer(result domain.WebResult) string {
	if result.Snippet == "" {
		return fmt.Sprintf("%s\n\nSource: %s", result.Title, result.SourceURL)
	}
	return fmt.Sprintf("%s\n\n%s\n\nSource: %s", result.Title, result.Snippet, result.SourceURL)
}

var _ ports.Resolver = (*Resolver)(nil)
