package pipeline

import (
	"errors"
	"fmt"
	"log"

	"github.com/lox/longwave/internal/models"
	"github.com/lox/longwave/internal/radiation"
	"github.com/lox/longwave/internal/store"
	"github.com/lox/longwave/internal/verify"
)

// DefaultStations are the SURFRAD station keys evaluated when none are
// configured.
var DefaultStations = []string{"BON", "DRA", "FPK", "GWC", "PSU", "SXF", "TBL"}

type SurfradConfig struct {
	Store     *store.Store
	Stations  []string
	Models    []radiation.Model
	Constants radiation.Constants
}

// ModelReport is one model's statistics over the combined station table.
type ModelReport struct {
	Model radiation.Model
	Stats verify.Stats
	Fit   verify.Fit
}

type SurfradReport struct {
	Stations []models.StationResult
	Rows     int           // combined row count across loaded stations
	Reports  []ModelReport // in configured model order
	Best     radiation.Model
}

// Surfrad loads each configured station, skipping (with a warning) stations
// whose table is absent, combines the remaining rows, and evaluates every
// configured cloudy-sky model against the measured emissivity.
func Surfrad(cfg SurfradConfig) (*SurfradReport, error) {
	stations := cfg.Stations
	if len(stations) == 0 {
		stations = DefaultStations
	}
	mods := cfg.Models
	if len(mods) == 0 {
		mods = radiation.Models()
	}

	report := &SurfradReport{}
	var combined []models.SurfradRecord
	for _, name := range stations {
		records, err := cfg.Store.LoadStation(name)
		if errors.Is(err, store.ErrStationMissing) {
			log.Printf("warning: station %s not found in source, skipping", name)
			report.Stations = append(report.Stations, models.StationResult{
				Station: name,
				Skipped: true,
				Reason:  err.Error(),
			})
			continue
		}
		if err != nil {
			return nil, err
		}

		for i := range records {
			deriveSurfrad(&records[i])
		}
		report.Stations = append(report.Stations, models.StationResult{
			Station: name,
			Records: records,
		})
		combined = append(combined, records...)
	}
	if len(combined) == 0 {
		return nil, fmt.Errorf("no station data loaded (%d stations requested)", len(stations))
	}
	report.Rows = len(combined)

	measured := make([]float64, len(combined))
	for i, r := range combined {
		measured[i] = r.MeasuredEpsilon
	}

	byModel := make(map[radiation.Model]verify.Stats, len(mods))
	predicted := make([]float64, len(combined))
	for _, m := range mods {
		for i, r := range combined {
			flux, err := cfg.Constants.CloudyLongwave(m, r.TempK, r.VaporPressure, r.CloudFraction)
			if err != nil {
				return nil, err
			}
			predicted[i] = radiation.EmissivityFromFlux(flux, r.TempK)
		}
		stats, err := verify.Compute(predicted, measured)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", m, err)
		}
		byModel[m] = stats
		report.Reports = append(report.Reports, ModelReport{
			Model: m,
			Stats: stats,
			Fit:   verify.Regression(predicted, measured),
		})
	}

	report.Best = verify.Best(byModel)
	return report, nil
}

// deriveSurfrad fills the per-row derived values: cloud fraction (preferring a
// reported clear-sky fraction over the GHI ratio) and measured emissivity.
func deriveSurfrad(r *models.SurfradRecord) {
	if r.ClearPct.Valid {
		r.CloudFraction = radiation.CloudFractionFromClearPct(r.ClearPct.Float64)
	} else {
		r.CloudFraction = radiation.CloudFractionFromGHI(r.GHIMeasured, r.GHIClear)
	}
	r.MeasuredEpsilon = radiation.EmissivityFromFlux(r.DLW, r.TempK)
}
