// Package store reads SURFRAD observations from a sqlite database that keeps
// one table per station key (BON, DRA, ...). A missing station table is a
// skippable condition, not a failure.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lox/longwave/internal/models"
)

// ErrStationMissing is returned by LoadStation when the database has no table
// for the requested station key.
var ErrStationMissing = errors.New("station table missing")

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// validTableName restricts station keys to identifier characters, since table
// names cannot be bound as query parameters.
func validTableName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return true
}

// HasStation reports whether a table exists for the station key.
func (s *Store) HasStation(station string) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`,
		station,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check station %s: %w", station, err)
	}
	return n > 0, nil
}

// LoadStation reads every row of a station's table in insertion order. It
// returns ErrStationMissing when the table does not exist.
func (s *Store) LoadStation(station string) ([]models.SurfradRecord, error) {
	if !validTableName(station) {
		return nil, fmt.Errorf("invalid station key %q", station)
	}
	ok, err := s.HasStation(station)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStationMissing, station)
	}

	rows, err := s.db.Query(fmt.Sprintf(
		`SELECT ghi_m, ghi_c, clr_pct, dlw_m, t_m, pw_hpa FROM %s ORDER BY rowid`, station))
	if err != nil {
		return nil, fmt.Errorf("query station %s: %w", station, err)
	}
	defer rows.Close()

	var records []models.SurfradRecord
	for rows.Next() {
		r := models.SurfradRecord{Station: station}
		if err := rows.Scan(&r.GHIMeasured, &r.GHIClear, &r.ClearPct, &r.DLW, &r.TempK, &r.VaporPressure); err != nil {
			return nil, fmt.Errorf("scan station %s: %w", station, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CreateStation creates an empty observation table for a station key. Used
// when building demo databases and test fixtures.
func (s *Store) CreateStation(station string) error {
	if !validTableName(station) {
		return fmt.Errorf("invalid station key %q", station)
	}
	_, err := s.db.Exec(fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    ghi_m REAL NOT NULL,
    ghi_c REAL NOT NULL,
    clr_pct REAL,
    dlw_m REAL NOT NULL,
    t_m REAL NOT NULL,
    pw_hpa REAL NOT NULL
)`, station))
	if err != nil {
		return fmt.Errorf("create station %s: %w", station, err)
	}
	return nil
}

// InsertRecord appends one observation row to a station's table.
func (s *Store) InsertRecord(station string, r models.SurfradRecord) error {
	if !validTableName(station) {
		return fmt.Errorf("invalid station key %q", station)
	}
	_, err := s.db.Exec(fmt.Sprintf(
		`INSERT INTO %s (ghi_m, ghi_c, clr_pct, dlw_m, t_m, pw_hpa) VALUES (?, ?, ?, ?, ?, ?)`, station),
		r.GHIMeasured, r.GHIClear, r.ClearPct, r.DLW, r.TempK, r.VaporPressure)
	return err
}
