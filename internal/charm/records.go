// ABOUTME: Daily record operations for Charm KV storage.
// ABOUTME: Implements the Store contract with date-keyed JSON values.
package charm

import (
	"encoding/json"
	"fmt"

	"github.com/harperreed/lifestyle/internal/models"
	"github.com/harperreed/lifestyle/internal/storage"
)

// Compile-time check that Client implements the record Store.
var _ storage.Store = (*Client)(nil)

// RecordKey builds the KV key for a date.
func RecordKey(d models.Date) string {
	return RecordPrefix + d.String()
}

// LoadAll retrieves every daily record, keyed by ISO date. Entries that
// fail to parse are skipped rather than failing the whole load.
func (c *Client) LoadAll() (map[string]*models.DailyRecord, error) {
	allData, err := c.listByPrefix(RecordPrefix)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	records := map[string]*models.DailyRecord{}
	for _, data := range allData {
		var r models.DailyRecord
		if err := json.Unmarshal(data, &r); err != nil {
			continue // Skip invalid entries
		}
		records[r.Key()] = &r
	}
	return records, nil
}

// Upsert fully replaces the stored record for its date and syncs.
func (c *Client) Upsert(r *models.DailyRecord) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := c.set(RecordKey(r.Date), data); err != nil {
		return fmt.Errorf("store record %s: %w", r.Key(), err)
	}
	return nil
}
