package domain

import "time"

// HistoryRecord captures one dispatched command for the history store.
type HistoryRecord struct {
	ID        string     `json:"id"`
	Timestamp time.Time  `json:"timestamp"`
	Source    Source     `json:"source"`
	RawText   string     `json:"raw_text"`
	Command   string     `json:"command"`
	Intent    IntentKind `json:"intent"`
	Handled   bool       `json:"handled"`
	Feedback  string     `json:"feedback"`
}
