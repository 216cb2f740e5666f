// Package pipeline wires the dataset, radiation, and verify layers into the
// two validation runs: the single-site Hawaii spreadsheet and the multi-station
// SURFRAD database.
package pipeline

import (
	"fmt"

	"github.com/lox/longwave/internal/dataset"
	"github.com/lox/longwave/internal/models"
	"github.com/lox/longwave/internal/radiation"
	"github.com/lox/longwave/internal/verify"
)

type HawaiiConfig struct {
	InputPath  string
	OutputPath string // optional CSV destination for retained rows
	// CloudEmissivity is the emissivity assigned to fully overcast sky,
	// 1.0 treats clouds as black bodies.
	CloudEmissivity float64
	MaxZenith       float64
	Constants       radiation.Constants
}

type HawaiiReport struct {
	RowsLoaded   int
	RowsRetained int
	Dropped      map[string]int // rows rejected, by filter name
	Stats        verify.Stats
	Fit          verify.Fit
}

// Hawaii runs the full spreadsheet pipeline: load, filter, derive, compare,
// and optionally write the result table.
func Hawaii(cfg HawaiiConfig) (*HawaiiReport, error) {
	rows, err := dataset.LoadXLSX(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	report, retained, err := EvaluateHawaii(rows, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.OutputPath != "" {
		if err := dataset.WriteCSV(cfg.OutputPath, retained); err != nil {
			return nil, err
		}
	}
	return report, nil
}

// EvaluateHawaii filters the rows, computes the derived columns, and compares
// predicted against measured sky emissivity. Derived columns are computed in
// dependency order: actual and clear-sky emissivity and CF come straight from
// source columns, predicted emissivity from CF and clear-sky emissivity.
func EvaluateHawaii(rows []models.Observation, cfg HawaiiConfig) (*HawaiiReport, []models.Observation, error) {
	retained, dropped := dataset.ApplyFilters(rows, cfg.MaxZenith)
	if len(retained) == 0 {
		return nil, nil, fmt.Errorf("no rows survive quality filtering (%d loaded)", len(rows))
	}

	k := cfg.Constants
	predicted := make([]float64, len(retained))
	actual := make([]float64, len(retained))
	for i := range retained {
		o := &retained[i]
		o.ActualEpsilon = radiation.ActualEmissivity(o.Temp, o.DLW)
		o.EpsilonClearSky = k.ClearSkyEmissivity(o.Temp, o.RH, o.SiteElev)
		o.CF = k.CloudFractionIndex(o.DHI, o.GHI, o.DNI, o.ClearskyDNI)
		o.PredictedEpsilon = radiation.PredictedSkyEmissivity(o.CF, o.EpsilonClearSky, cfg.CloudEmissivity)

		predicted[i] = o.PredictedEpsilon
		actual[i] = o.ActualEpsilon
	}

	stats, err := verify.Compute(predicted, actual)
	if err != nil {
		return nil, nil, err
	}

	return &HawaiiReport{
		RowsLoaded:   len(rows),
		RowsRetained: len(retained),
		Dropped:      dropped,
		Stats:        stats,
		Fit:          verify.Regression(predicted, actual),
	}, retained, nil
}
