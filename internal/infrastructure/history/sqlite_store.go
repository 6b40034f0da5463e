// Package history persists dispatched commands. The primary store is a
// SQLite database; when the database cannot be opened it degrades to an
// append-only JSONL file.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// SQLiteStore persists dispatch history in ~/.jarvis/history/history.db.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the history database. On any open or
// schema error the store keeps working through the JSONL fallback.
func NewSQLiteStore() *SQLiteStore {
	path := filepath.Join(userHome(), ".jarvis", "history", "history.db")
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS dispatches (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		source TEXT,
		raw_text TEXT,
		command TEXT,
		intent TEXT,
		handled INTEGER,
		feedback TEXT
	);`)
	return err
}

// Save inserts a new record, generating an id and timestamp when absent.
func (s *SQLiteStore) Save(record domain.HistoryRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	if s.db == nil {
		return (&FileStore{path: fallbackPath(s.path)}).Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO dispatches
		(id, timestamp, source, raw_text, command, intent, handled, feedback)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.Format(time.RFC3339),
		string(record.Source),
		record.RawText,
		record.Command,
		string(record.Intent),
		boolToInt(record.Handled),
		record.Feedback,
	)
	return err
}

// Records returns history entries, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.HistoryRecord, error) {
	if s.db == nil {
		return (&FileStore{path: fallbackPath(s.path)}).Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT id, timestamp, source, raw_text, command, intent, handled, feedback FROM dispatches")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE raw_text LIKE ? OR command LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.HistoryRecord
	for rows.Next() {
		var rec domain.HistoryRecord
		var ts, source, intent string
		var handled int
		if err := rows.Scan(&rec.ID, &ts, &source, &rec.RawText, &rec.Command, &intent, &handled, &rec.Feedback); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Source = domain.Source(source)
		rec.Intent = domain.IntentKind(intent)
		rec.Handled = handled == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return (&FileStore{path: fallbackPath(s.path)}).Clear()
	}
	_, err := s.db.Exec("DELETE FROM dispatches")
	return err
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func fallbackPath(dbPath string) string {
	return strings.TrimSuffix(dbPath, ".db") + ".jsonl"
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func userHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
