package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/doeshing/jarvis-go/internal/domain"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return store
}

func TestSQLiteSaveFillsDefaults(t *testing.T) {
	store := newTestSQLiteStore(t)

	err := store.Save(domain.HistoryRecord{
		Source:  domain.SourceTyped,
		RawText: "open folder downloads",
		Command: "open folder downloads",
		Intent:  domain.IntentOpenFolder,
		Handled: true,
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	got := records[0]
	if got.ID == "" || got.Timestamp.IsZero() {
		t.Fatalf("defaults not filled: %+v", got)
	}
	if got.Intent != domain.IntentOpenFolder || !got.Handled || got.Source != domain.SourceTyped {
		t.Fatalf("round trip lost fields: %+v", got)
	}
}

func TestSQLiteRecordsNewestFirstWithLimit(t *testing.T) {
	store := newTestSQLiteStore(t)
	base := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		err := store.Save(domain.HistoryRecord{
			RawText:   text,
			Command:   text,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Save(%s) error = %v", text, err)
		}
	}

	records, err := store.Records(2, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want limit applied", len(records))
	}
	if records[0].RawText != "third" || records[1].RawText != "second" {
		t.Fatalf("order = [%s %s], want newest first", records[0].RawText, records[1].RawText)
	}
}

func TestSQLiteRecordsSearch(t *testing.T) {
	store := newTestSQLiteStore(t)
	for _, text := range []string{"open notepad", "take a screenshot", "open folder music"} {
		if err := store.Save(domain.HistoryRecord{RawText: text, Command: text}); err != nil {
			t.Fatalf("Save(%s) error = %v", text, err)
		}
	}

	records, err := store.Records(0, "open")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("search matches = %d, want 2: %+v", len(records), records)
	}
}

func TestSQLiteClear(t *testing.T) {
	store := newTestSQLiteStore(t)
	if err := store.Save(domain.HistoryRecord{RawText: "shutdown confirm"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil || len(records) != 0 {
		t.Fatalf("Records() after Clear = %v, %v", records, err)
	}
}

func TestSQLiteDegradesToFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store := &SQLiteStore{path: path}

	if err := store.Save(domain.HistoryRecord{RawText: "open notepad", Command: "open notepad"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(fallbackPath(path)); err != nil {
		t.Fatalf("fallback file missing: %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil || len(records) != 1 {
		t.Fatalf("Records() via fallback = %v, %v", records, err)
	}
}
