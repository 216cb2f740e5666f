package dataset

import (
	"fmt"

	"github.com/tealeg/xlsx"

	"github.com/lox/longwave/internal/models"
)

// Source column headers expected in the first sheet of the Hawaii workbook.
const (
	colDHI         = "DHI"
	colGHI         = "GHI"
	colDNI         = "DNI"
	colClearskyDNI = "Clearsky DNI"
	colTemp        = "temp"
	colDLW         = "dlw"
	colRH          = "rh"
	colSiteElev    = "site_elev"
	colSolarZenith = "Solar Zenith Angle"
)

var requiredColumns = []string{
	colDHI, colGHI, colDNI, colClearskyDNI,
	colTemp, colDLW, colRH, colSiteElev, colSolarZenith,
}

// LoadXLSX reads the first sheet of a Hawaii station workbook into observation
// rows. The first row must be a header naming every required column; a missing
// column is a schema error and fails the whole table.
func LoadXLSX(path string) ([]models.Observation, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	if len(f.Sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	sheet := f.Sheets[0]
	if len(sheet.Rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet.Name)
	}

	index := make(map[string]int)
	for i, cell := range sheet.Rows[0].Cells {
		index[cell.Value] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("sheet %q: missing required column %q", sheet.Name, name)
		}
	}

	var rows []models.Observation
	for n, row := range sheet.Rows[1:] {
		// Trailing blank rows are common in exported workbooks.
		if len(row.Cells) == 0 {
			continue
		}
		cellFloat := func(name string) (float64, error) {
			i := index[name]
			if i >= len(row.Cells) {
				return 0, fmt.Errorf("row %d: missing value for %q", n+2, name)
			}
			v, err := row.Cells[i].Float()
			if err != nil {
				return 0, fmt.Errorf("row %d: column %q: %w", n+2, name, err)
			}
			return v, nil
		}

		var o models.Observation
		fields := []struct {
			name string
			dst  *float64
		}{
			{colDHI, &o.DHI},
			{colGHI, &o.GHI},
			{colDNI, &o.DNI},
			{colClearskyDNI, &o.ClearskyDNI},
			{colTemp, &o.Temp},
			{colDLW, &o.DLW},
			{colRH, &o.RH},
			{colSiteElev, &o.SiteElev},
			{colSolarZenith, &o.SolarZenith},
		}
		var rowErr error
		for _, fld := range fields {
			v, err := cellFloat(fld.name)
			if err != nil {
				rowErr = err
				break
			}
			*fld.dst = v
		}
		if rowErr != nil {
			return nil, rowErr
		}
		rows = append(rows, o)
	}
	return rows, nil
}
