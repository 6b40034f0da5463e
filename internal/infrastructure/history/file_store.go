package history

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// FileStore appends dispatch records to a JSONL file. It backs the SQLite
// store's degraded mode and is usable standalone.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store under ~/.jarvis/history/history.jsonl.
func NewFileStore() *FileStore {
	return &FileStore{
		path: filepath.Join(userHome(), ".jarvis", "history", "history.jsonl"),
	}
}

// Save implements ports.HistoryRepository.
func (f *FileStore) Save(record domain.HistoryRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = file.Write(data)
	return err
}

// Records loads entries newest first (best-effort), honoring limit/search.
func (f *FileStore) Records(limit int, search string) ([]domain.HistoryRecord, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	var records []domain.HistoryRecord
	for i := len(lines) - 1; i >= 0; i-- {
		if len(lines[i]) == 0 {
			continue
		}
		var rec domain.HistoryRecord
		if err := json.Unmarshal(lines[i], &rec); err != nil {
			continue
		}
		if search != "" && !matches(rec, search) {
			continue
		}
		records = append(records, rec)
		if limit > 0 && len(records) >= limit {
			break
		}
	}
	return records, nil
}

// Clear removes the history file.
func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

func matches(rec domain.HistoryRecord, search string) bool {
	search = strings.ToLower(search)
	return strings.Contains(strings.ToLower(rec.RawText), search) ||
		strings.Contains(strings.ToLower(rec.Command), search)
}

var _ ports.HistoryRepository = (*FileStore)(nil)
