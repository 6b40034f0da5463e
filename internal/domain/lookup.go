package domain

import "time"

// LookupSource identifies which resolver stage produced an answer.
type LookupSource string

const (
	LookupSourceStructured LookupSource = "structured"
	LookupSourceWeb        LookupSource = "web"
	LookupSourceCache      LookupSource = "cache"
)

// LookupOutcome is the tagged result of a knowledge resolution. It always
// resolves to one of two shapes: Found with text and a source, or NotFound
// (the zero value). Resolution never raises.
type LookupOutcome struct {
	Found  bool
	Text   string
	Source LookupSource
	URL    string
}

// Answer builds a Found outcome.
func Answer(text string, source LookupSource) LookupOutcome {
	return LookupOutcome{Found: true, Text: text, Source: source}
}

// NoAnswer is the NotFound outcome.
func NoAnswer() LookupOutcome {
	return LookupOutcome{}
}

// WebResult is one extracted page from the web lookup stage: its title, the
// first meaningful paragraph, and the page the text came from.
type WebResult struct {
	Title     string
	Snippet   string
	SourceURL string
}

// CacheEntry is a stored resolver answer addressed by hashed query key.
type CacheEntry struct {
	Key       string       `json:"key"`
	Query     string       `json:"query"`
	Answer    string       `json:"answer"`
	Source    LookupSource `json:"source"`
	CreatedAt time.Time    `json:"created_at"`
}
