package holiday

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultCacheDir is where FileStore keeps one JSON file per year
const DefaultCacheDir = "data/holidays"

// Store persists holiday maps keyed by year.
// Load returns ErrNotCached when nothing is stored for the year.
type Store interface {
	Load(ctx context.Context, year int) (Map, error)
	Save(ctx context.Context, year int, m Map) error
}

// FileStore keeps <dir>/<year>.json files
type FileStore struct {
	Dir string
}

// NewFileStore creates a store rooted at dir (DefaultCacheDir when empty)
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = DefaultCacheDir
	}
	return &FileStore{Dir: dir}
}

// Path returns the cache file for year
func (s *FileStore) Path(year int) string {
	return filepath.Join(s.Dir, strconv.Itoa(year)+".json")
}

// Load reads and parses the cached map for year
func (s *FileStore) Load(_ context.Context, year int) (Map, error) {
	data, err := os.ReadFile(s.Path(year))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read holiday cache: %w", err)
	}

	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse holiday cache %s: %w", s.Path(year), err)
	}
	return m, nil
}

// Save writes the map to a temp file in the same directory and renames it
// into place, so readers never observe a half-written cache.
func (s *FileStore) Save(_ context.Context, year int, m Map) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create holiday cache directory: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to marshal holiday map: %w", err)
	}

	tmp, err := os.CreateTemp(s.Dir, strconv.Itoa(year)+".json.*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write holiday cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write holiday cache: %w", err)
	}

	if err := os.Rename(tmpPath, s.Path(year)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save holiday cache: %w", err)
	}
	return nil
}
