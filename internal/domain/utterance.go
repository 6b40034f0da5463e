// Package domain defines core business entities and value objects for Jarvis.
//
// The domain layer is independent of infrastructure concerns and represents
// pure data structures: utterances, intents, lookup outcomes, and the
// configuration tree.
package domain

// Source tags where an utterance originated.
type Source string

const (
	SourceVoice Source = "voice"
	SourceTyped Source = "typed"
)

// Utterance is one captured unit of speech or typed text. It is immutable
// once produced and consumed exactly once by the dispatch pipeline. Text
// keeps the original casing for logs and speech; matching always happens on
// a normalized projection.
type Utterance struct {
	Text   string
	Source Source
}

// Empty reports whether the utterance carries no usable text.
func (u Utterance) Empty() bool {
	return u.Text == ""
}

// WakewordMatch is the result of checking an utterance against the wake
// phrase. Command holds the remainder after stripping, possibly empty when
// the user said only the bare wakeword.
type WakewordMatch struct {
	Matched bool
	Command string
}
