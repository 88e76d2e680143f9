// ABOUTME: JSON file storage backend for daily records.
// ABOUTME: Keeps the whole record set in one file, written atomically.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harperreed/lifestyle/internal/models"
)

// JSONFileName is the record file inside the data directory.
const JSONFileName = "lifestyle.json"

// JSONStore persists records as a single JSON object keyed by date, with
// optional fields serialized as explicit null so absent values survive a
// save/load cycle.
type JSONStore struct {
	path string
}

// Compile-time check that JSONStore implements Store.
var _ Store = (*JSONStore)(nil)

// NewJSONStore creates a JSON-backed store rooted at dataDir.
func NewJSONStore(dataDir string) (*JSONStore, error) {
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &JSONStore{path: filepath.Join(dataDir, JSONFileName)}, nil
}

// Path returns the record file path.
func (s *JSONStore) Path() string {
	return s.path
}

// LoadAll reads the record file. A missing file is an empty store, not an
// error; a file that exists but cannot be parsed is.
func (s *JSONStore) LoadAll() (map[string]*models.DailyRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*models.DailyRecord{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	records := map[string]*models.DailyRecord{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	// A null record value unmarshals to a nil entry without error; surface
	// it as corruption so callers degrade instead of dereferencing nil.
	for key, r := range records {
		if r == nil {
			return nil, fmt.Errorf("parse %s: record %q is null", s.path, key)
		}
	}
	return records, nil
}

// Upsert replaces the record for its date and rewrites the whole file.
func (s *JSONStore) Upsert(r *models.DailyRecord) error {
	records, err := s.LoadAll()
	if err != nil {
		return err
	}
	records[r.Key()] = r
	return s.writeAll(records)
}

// Close is a no-op for the JSON backend.
func (s *JSONStore) Close() error {
	return nil
}

// writeAll serializes the full record set through a temp file and rename so
// readers never see a partially written store.
func (s *JSONStore) writeAll(records map[string]*models.DailyRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".lifestyle-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return os.Chmod(s.path, 0600)
}
