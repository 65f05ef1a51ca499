package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"ownership-watch/internal/model"
)

const (
	seenFile   = "seen.json"
	ledgerFile = "events.json"
)

// FileStore persists state as JSON files under a single directory:
// seen.json is a sorted array of keys, events.json the newest-first
// ledger. Writes go through a temp file and rename, so a run that dies
// mid-write leaves the previous state intact.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) LoadSeen() Seen {
	var keys []string
	if !readJSON(filepath.Join(f.dir, seenFile), &keys) {
		return Seen{}
	}
	seen := make(Seen, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	return seen
}

func (f *FileStore) SaveSeen(seen Seen) error {
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return writeJSON(filepath.Join(f.dir, seenFile), keys)
}

func (f *FileStore) LoadLedger() []model.Event {
	var events []model.Event
	if !readJSON(filepath.Join(f.dir, ledgerFile), &events) {
		return nil
	}
	return events
}

func (f *FileStore) SaveLedger(events []model.Event) error {
	if events == nil {
		events = []model.Event{}
	}
	return writeJSON(filepath.Join(f.dir, ledgerFile), events)
}

// readJSON reports whether v was populated. Missing files and corrupt
// content both count as "no state".
func readJSON(path string, v any) bool {
	b, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(b, v) == nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
