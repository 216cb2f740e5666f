// Package dataset loads the Hawaii station spreadsheet, applies the quality
// filters, and writes the result table.
package dataset

import "github.com/lox/longwave/internal/models"

// Quality-filter identifiers, in the order the filters are applied. Rows must
// pass every filter; drop counts are reported per filter.
const (
	FilterSolarZenith = "solar_zenith"
	FilterIrradiance  = "ghi_dhi_positive"
	FilterClearness   = "clearness_ratio"
	FilterTempRange   = "temp_range"
	FilterDLW         = "dlw_positive"
)

// Filter limits. The zenith threshold excludes low-sun rows where the
// irradiance ratios degrade; the clearness ratio bound excludes cloud
// enhancement artifacts.
const (
	DefaultMaxZenith  = 72.5  // degrees
	maxClearnessRatio = 1.5   // DNI / Clearsky DNI
	minTemp           = -80.0 // degrees C
	maxTemp           = 90.0  // degrees C
)

// violations returns the names of every filter the row fails.
func violations(o models.Observation, maxZenith float64) []string {
	var failed []string

	if !(o.SolarZenith < maxZenith) {
		failed = append(failed, FilterSolarZenith)
	}

	if !(o.GHI > 0 && o.DHI > 0) {
		failed = append(failed, FilterIrradiance)
	}

	// Guard the ratio itself: ClearskyDNI == 0 must never reach the
	// cloud-fraction formula.
	if !(o.ClearskyDNI != 0 && o.DNI/o.ClearskyDNI > 0 && o.DNI/o.ClearskyDNI <= maxClearnessRatio) {
		failed = append(failed, FilterClearness)
	}

	if !(o.Temp >= minTemp && o.Temp <= maxTemp) {
		failed = append(failed, FilterTempRange)
	}

	if !(o.DLW > 0) {
		failed = append(failed, FilterDLW)
	}

	return failed
}

// ApplyFilters removes rows that fail any quality filter, preserving row
// order, and reports how many rows each filter rejected. A row failing
// several filters counts against each of them.
func ApplyFilters(rows []models.Observation, maxZenith float64) ([]models.Observation, map[string]int) {
	dropped := make(map[string]int)
	var kept []models.Observation
	for _, o := range rows {
		failed := violations(o, maxZenith)
		if len(failed) == 0 {
			kept = append(kept, o)
			continue
		}
		for _, name := range failed {
			dropped[name]++
		}
	}
	return kept, dropped
}
