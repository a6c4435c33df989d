package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/strategic-council/screener/models"
)

const historyFileName = "report_history.json"

// FileStore keeps the history as a single JSON document keyed by cadence
// name. It is the sole reader/writer of that file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed store under dataDir.
func NewFileStore(dataDir string) *FileStore {
	if dataDir == "" {
		dataDir = "data"
	}
	return &FileStore{path: filepath.Join(dataDir, historyFileName)}
}

// Path returns the location of the history document.
func (s *FileStore) Path() string { return s.path }

// Load reads the history document. A missing file is not an error: an empty
// snapshot is returned.
func (s *FileStore) Load(ctx context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var raw map[string][]models.HistoryEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing history: %w", err)
	}

	snap := NewSnapshot()
	for name, entries := range raw {
		c := models.Cadence(name)
		if !c.Valid() {
			continue
		}
		snap.Entries[c] = entries
	}
	return snap, nil
}

// Save writes the full document atomically: a temp file in the same directory
// is renamed over the previous one.
func (s *FileStore) Save(ctx context.Context, snap *Snapshot) error {
	raw := make(map[string][]models.HistoryEntry, len(snap.Entries))
	for _, c := range models.AllCadences() {
		entries := snap.Entries[c]
		if entries == nil {
			entries = []models.HistoryEntry{}
		}
		raw[string(c)] = entries
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, historyFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing history: %w", err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error { return nil }
