// Package cache stores resolver answers as JSON blobs addressed by hashed
// query key, with TTL expiry and size-bounded eviction.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/doeshing/jarvis-go/internal/domain"
	"github.com/doeshing/jarvis-go/internal/ports"
)

// FileCache keeps answers under ~/.jarvis/cache/answers.
type FileCache struct {
	dir        string
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
}

// NewFileCache returns a cache configured from settings.
func NewFileCache(settings domain.CacheSettings) *FileCache {
	max := settings.MaxEntries
	if max <= 0 {
		max = domain.DefaultCacheMaxEntries
	}
	ttl := settings.TTL()
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTLMinutes * time.Minute
	}
	return &FileCache{
		dir:        filepath.Join(userHome(), ".jarvis", "cache", "answers"),
		maxEntries: max,
		ttl:        ttl,
	}
}

// KeyFor derives the cache key for a query: a hash of its lowercased,
// whitespace-collapsed form.
func KeyFor(query string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:16])
}

// Get retrieves a cache entry, expiring stale ones on read.
func (c *FileCache) Get(key string) (domain.CacheEntry, bool, error) {
	if key == "" {
		return domain.CacheEntry{}, false, nil
	}
	path := c.pathFor(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.CacheEntry{}, false, nil
		}
		return domain.CacheEntry{}, false, err
	}
	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return domain.CacheEntry{}, false, err
	}
	if c.ttl > 0 && time.Since(entry.CreatedAt) > c.ttl {
		_ = os.Remove(path)
		return domain.CacheEntry{}, false, nil
	}
	return entry, true, nil
}

// Set stores a cache entry.
func (c *FileCache) Set(entry domain.CacheEntry) error {
	if entry.Key == "" {
		return nil
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.pathFor(entry.Key), data, 0o644); err != nil {
		return err
	}
	return c.evictIfNeeded()
}

// Dir exposes the cache directory path.
func (c *FileCache) Dir() string {
	return c.dir
}

// Entries lists all stored entries, newest first. Unreadable files are
// skipped.
func (c *FileCache) Entries() ([]domain.CacheEntry, error) {
	files, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var entries []domain.CacheEntry
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(c.dir, file.Name()))
		if err != nil {
			continue
		}
		var entry domain.CacheEntry
		if err := json.Unmarshal(data, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	return entries, nil
}

// Clear removes every cached answer.
func (c *FileCache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	files, err := os.ReadDir(c.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, file := range files {
		_ = os.Remove(filepath.Join(c.dir, file.Name()))
	}
	return nil
}

func (c *FileCache) pathFor(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func (c *FileCache) evictIfNeeded() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	if len(entries) <= c.maxEntries {
		return nil
	}
	type aged struct {
		name string
		mod  time.Time
	}
	var files []aged
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, aged{name: entry.Name(), mod: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].mod.Before(files[j].mod) })
	for _, file := range files[:len(files)-c.maxEntries] {
		_ = os.Remove(filepath.Join(c.dir, file.name))
	}
	return nil
}

func userHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

var _ ports.CacheRepository = (*FileCache)(nil)
