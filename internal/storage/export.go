// ABOUTME: Export and import of the full record set.
// ABOUTME: Produces a versioned JSON envelope suitable for backup/restore.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harperreed/lifestyle/internal/models"
)

// ExportData is the full-dump format for lifestyle data. Records carry the
// same serialization as the JSON store, so absent optional fields stay null.
type ExportData struct {
	Version    string                         `json:"version"`
	ExportID   uuid.UUID                      `json:"export_id"`
	ExportedAt time.Time                      `json:"exported_at"`
	Tool       string                         `json:"tool"`
	Records    map[string]*models.DailyRecord `json:"records"`
}

// BuildExport wraps a record snapshot in an export envelope.
func BuildExport(records map[string]*models.DailyRecord) *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportID:   uuid.New(),
		ExportedAt: time.Now(),
		Tool:       "lifestyle",
		Records:    records,
	}
}

// ExportJSON dumps the entire store as indented JSON.
func ExportJSON(s Store) ([]byte, error) {
	records, err := s.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	return json.MarshalIndent(BuildExport(records), "", "  ")
}

// ImportJSON parses an export file and upserts every record it contains.
// Existing records for the same dates are fully replaced.
func ImportJSON(s Store, data []byte) (int, error) {
	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		return 0, fmt.Errorf("parse export: %w", err)
	}

	count := 0
	for key, r := range export.Records {
		if r == nil {
			return count, fmt.Errorf("record %q is null", key)
		}
		if err := r.Validate(); err != nil {
			return count, fmt.Errorf("record %s: %w", r.Key(), err)
		}
		if err := s.Upsert(r); err != nil {
			return count, fmt.Errorf("import record %s: %w", r.Key(), err)
		}
		count++
	}
	return count, nil
}
