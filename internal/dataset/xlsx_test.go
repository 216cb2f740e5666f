package dataset

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/tealeg/xlsx"

	"github.com/lox/longwave/internal/models"
)

func writeWorkbook(t *testing.T, header []string, rows [][]float64) string {
	t.Helper()
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("data")
	if err != nil {
		t.Fatalf("add sheet: %v", err)
	}
	hr := sheet.AddRow()
	for _, name := range header {
		hr.AddCell().Value = name
	}
	for _, row := range rows {
		r := sheet.AddRow()
		for _, v := range row {
			r.AddCell().SetFloat(v)
		}
	}
	path := filepath.Join(t.TempDir(), "station.xlsx")
	if err := f.Save(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

var testHeader = []string{
	"DHI", "GHI", "DNI", "Clearsky DNI",
	"temp", "dlw", "rh", "site_elev", "Solar Zenith Angle",
}

func TestLoadXLSX(t *testing.T) {
	path := writeWorkbook(t, testHeader, [][]float64{
		{100, 500, 400, 500, 20, 350, 60, 100, 45},
		{80, 450, 380, 510, 18.5, 340, 65, 100, 50},
	})

	rows, err := LoadXLSX(path)
	if err != nil {
		t.Fatalf("LoadXLSX: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("loaded %d rows, want 2", len(rows))
	}
	want := models.Observation{
		DHI: 100, GHI: 500, DNI: 400, ClearskyDNI: 500,
		Temp: 20, DLW: 350, RH: 60, SiteElev: 100, SolarZenith: 45,
	}
	if rows[0] != want {
		t.Errorf("row 0 = %+v, want %+v", rows[0], want)
	}
	if rows[1].Temp != 18.5 || rows[1].SolarZenith != 50 {
		t.Errorf("row 1 = %+v", rows[1])
	}
}

func TestLoadXLSXColumnOrderIndependent(t *testing.T) {
	// Columns shuffled relative to the struct layout; mapping is by header.
	header := []string{"temp", "dlw", "GHI", "DHI", "DNI", "Clearsky DNI", "rh", "site_elev", "Solar Zenith Angle"}
	path := writeWorkbook(t, header, [][]float64{
		{20, 350, 500, 100, 400, 500, 60, 100, 45},
	})

	rows, err := LoadXLSX(path)
	if err != nil {
		t.Fatalf("LoadXLSX: %v", err)
	}
	if rows[0].GHI != 500 || rows[0].DHI != 100 || rows[0].Temp != 20 {
		t.Errorf("row 0 = %+v", rows[0])
	}
}

func TestLoadXLSXMissingColumn(t *testing.T) {
	header := []string{"DHI", "GHI", "DNI", "temp", "dlw", "rh", "site_elev", "Solar Zenith Angle"} // no Clearsky DNI
	path := writeWorkbook(t, header, nil)

	_, err := LoadXLSX(path)
	if err == nil {
		t.Fatal("expected schema error for missing column")
	}
	if !strings.Contains(err.Error(), "Clearsky DNI") {
		t.Errorf("error %q does not name the missing column", err)
	}
}
