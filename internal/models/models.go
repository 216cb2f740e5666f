package models

import "database/sql"

// Observation is one row of the Hawaii station dataset. Source columns come
// straight out of the spreadsheet; derived columns are appended by the
// pipeline after quality filtering.
type Observation struct {
	// Source columns
	DHI         float64 // diffuse horizontal irradiance, W/m^2
	GHI         float64 // global horizontal irradiance, W/m^2
	DNI         float64 // direct normal irradiance, W/m^2
	ClearskyDNI float64 // clear-sky direct normal irradiance, W/m^2
	Temp        float64 // air temperature, degrees C
	DLW         float64 // measured downwelling longwave, W/m^2
	RH          float64 // relative humidity, %
	SiteElev    float64 // site elevation, m
	SolarZenith float64 // solar zenith angle, degrees

	// Derived columns
	ActualEpsilon    float64
	EpsilonClearSky  float64
	CF               float64
	PredictedEpsilon float64
}

// SurfradRecord is one row of a SURFRAD station table. ClearPct is nullable:
// not every station reports a clear-sky fraction, in which case cloud fraction
// falls back to the GHI ratio.
type SurfradRecord struct {
	Station       string
	GHIMeasured   float64         // ghi_m, W/m^2
	GHIClear      float64         // ghi_c, W/m^2
	ClearPct      sql.NullFloat64 // clr_pct, fraction in [0,1]
	DLW           float64         // dlw_m, W/m^2
	TempK         float64         // t_m, K
	VaporPressure float64         // pw_hpa, hPa

	// Derived per-row values
	CloudFraction   float64
	MeasuredEpsilon float64
}

// StationResult records the outcome of loading one station partition: either
// its rows, or the reason it was skipped. Skipped stations are a normal,
// inspectable outcome, not an error.
type StationResult struct {
	Station string
	Records []SurfradRecord
	Skipped bool
	Reason  string
}
