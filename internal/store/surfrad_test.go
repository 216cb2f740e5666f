package store

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/lox/longwave/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return New(db)
}

func sampleRecord() models.SurfradRecord {
	return models.SurfradRecord{
		GHIMeasured:   450,
		GHIClear:      600,
		ClearPct:      sql.NullFloat64{Float64: 0.7, Valid: true},
		DLW:           320,
		TempK:         288.15,
		VaporPressure: 12.5,
	}
}

func TestInsertAndLoadStation(t *testing.T) {
	s := setupTestStore(t)
	if err := s.CreateStation("BON"); err != nil {
		t.Fatalf("CreateStation: %v", err)
	}

	first := sampleRecord()
	second := sampleRecord()
	second.GHIMeasured = 300
	second.ClearPct = sql.NullFloat64{} // station row without a clear-sky fraction
	for _, r := range []models.SurfradRecord{first, second} {
		if err := s.InsertRecord("BON", r); err != nil {
			t.Fatalf("InsertRecord: %v", err)
		}
	}

	records, err := s.LoadStation("BON")
	if err != nil {
		t.Fatalf("LoadStation: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("loaded %d records, want 2", len(records))
	}
	if records[0].Station != "BON" {
		t.Errorf("record station = %q, want BON", records[0].Station)
	}
	if !records[0].ClearPct.Valid || records[0].ClearPct.Float64 != 0.7 {
		t.Errorf("record 0 ClearPct = %+v, want valid 0.7", records[0].ClearPct)
	}
	if records[1].ClearPct.Valid {
		t.Errorf("record 1 ClearPct should be null, got %+v", records[1].ClearPct)
	}
	if records[1].GHIMeasured != 300 {
		t.Errorf("insertion order not preserved: record 1 ghi_m = %v", records[1].GHIMeasured)
	}
}

func TestLoadStationMissing(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.LoadStation("DRA")
	if !errors.Is(err, ErrStationMissing) {
		t.Fatalf("expected ErrStationMissing, got %v", err)
	}
}

func TestHasStation(t *testing.T) {
	s := setupTestStore(t)
	if err := s.CreateStation("FPK"); err != nil {
		t.Fatalf("CreateStation: %v", err)
	}

	ok, err := s.HasStation("FPK")
	if err != nil || !ok {
		t.Errorf("HasStation(FPK) = %v, %v; want true", ok, err)
	}
	ok, err = s.HasStation("TBL")
	if err != nil || ok {
		t.Errorf("HasStation(TBL) = %v, %v; want false", ok, err)
	}
}

func TestInvalidStationKey(t *testing.T) {
	s := setupTestStore(t)
	for _, key := range []string{"", "BON; DROP TABLE x", "a b"} {
		if _, err := s.LoadStation(key); err == nil {
			t.Errorf("LoadStation(%q) accepted an invalid key", key)
		}
		if err := s.CreateStation(key); err == nil {
			t.Errorf("CreateStation(%q) accepted an invalid key", key)
		}
	}
}
