// ABOUTME: Store interface for daily record persistence.
// ABOUTME: Defines the contract the reporting layer loads snapshots through.
package storage

import (
	"os"
	"path/filepath"

	"github.com/harperreed/lifestyle/internal/models"
)

// Store defines the persistence contract for daily records. Records are
// keyed by ISO date string (YYYY-MM-DD). This interface allows swapping
// backends (JSON file, SQLite, Charm KV) and faking storage in tests.
type Store interface {
	// LoadAll returns every persisted record keyed by date. Missing storage
	// yields an empty map and no error; only unreadable or corrupt storage
	// errors.
	LoadAll() (map[string]*models.DailyRecord, error)

	// Upsert fully replaces any existing record for the record's date. The
	// caller never observes a partially written store.
	Upsert(r *models.DailyRecord) error

	// Close releases backend resources.
	Close() error
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lifestyle")
}
