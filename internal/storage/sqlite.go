// ABOUTME: SQLite storage backend for daily records.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/harperreed/lifestyle/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS daily_records (
	date TEXT PRIMARY KEY,
	week INTEGER NOT NULL,
	treadmill_minutes REAL NOT NULL DEFAULT 0,
	steps INTEGER NOT NULL DEFAULT 0,
	lunch_walk_minutes REAL NOT NULL DEFAULT 0,
	strength_training INTEGER NOT NULL DEFAULT 0,
	weight REAL,
	blood_sugar REAL,
	mood_note TEXT NOT NULL DEFAULT ''
);
`

// SQLiteStore persists daily records in a local SQLite database. Weight and
// blood sugar map to nullable columns so the absent-vs-zero distinction
// survives round-trips.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// Compile-time check that SQLiteStore implements Store.
var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens or creates a SQLite database at the given path.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}
	if err := s.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

// configurePragmas sets up SQLite for safe local use.
func (s *SQLiteStore) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// LoadAll reads every record into a date-keyed map.
func (s *SQLiteStore) LoadAll() (map[string]*models.DailyRecord, error) {
	rows, err := s.db.Query(`
		SELECT date, week, treadmill_minutes, steps, lunch_walk_minutes,
		       strength_training, weight, blood_sugar, mood_note
		FROM daily_records`)
	if err != nil {
		return nil, fmt.Errorf("query records in %s: %w", s.dbPath, err)
	}
	defer rows.Close()

	records := map[string]*models.DailyRecord{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records[r.Key()] = r
	}
	return records, rows.Err()
}

// Upsert fully replaces the row for the record's date.
func (s *SQLiteStore) Upsert(r *models.DailyRecord) error {
	var weight, bloodSugar sql.NullFloat64
	if r.Weight != nil {
		weight = sql.NullFloat64{Float64: *r.Weight, Valid: true}
	}
	if r.BloodSugar != nil {
		bloodSugar = sql.NullFloat64{Float64: *r.BloodSugar, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO daily_records
			(date, week, treadmill_minutes, steps, lunch_walk_minutes,
			 strength_training, weight, blood_sugar, mood_note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			week = excluded.week,
			treadmill_minutes = excluded.treadmill_minutes,
			steps = excluded.steps,
			lunch_walk_minutes = excluded.lunch_walk_minutes,
			strength_training = excluded.strength_training,
			weight = excluded.weight,
			blood_sugar = excluded.blood_sugar,
			mood_note = excluded.mood_note`,
		r.Key(), r.Week, r.TreadmillMinutes, r.Steps, r.LunchWalkMinutes,
		r.StrengthTraining, weight, bloodSugar, r.MoodNote)
	if err != nil {
		return fmt.Errorf("upsert record %s: %w", r.Key(), err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func scanRecord(rows *sql.Rows) (*models.DailyRecord, error) {
	var (
		r          models.DailyRecord
		dateStr    string
		weight     sql.NullFloat64
		bloodSugar sql.NullFloat64
	)
	err := rows.Scan(&dateStr, &r.Week, &r.TreadmillMinutes, &r.Steps,
		&r.LunchWalkMinutes, &r.StrengthTraining, &weight, &bloodSugar,
		&r.MoodNote)
	if err != nil {
		return nil, fmt.Errorf("scan record: %w", err)
	}

	r.Date, err = models.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("record date %q: %w", dateStr, err)
	}
	if weight.Valid {
		v := weight.Float64
		r.Weight = &v
	}
	if bloodSugar.Valid {
		v := bloodSugar.Float64
		r.BloodSugar = &v
	}
	return &r, nil
}
