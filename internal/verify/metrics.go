// Package verify computes the error statistics used to rank longwave models
// against ground-truth measurements.
package verify

import (
	"errors"
	"fmt"
	"math"

	"github.com/GaryBoone/GoStats/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/lox/longwave/internal/radiation"
)

var (
	// ErrZeroMean means the measured series has zero mean, so relative
	// errors are undefined.
	ErrZeroMean = errors.New("measured series has zero mean")

	// ErrDirtyInput means a NaN reached the metrics layer. Metrics assume
	// the quality filters already ran; they refuse unclean input rather
	// than silently skipping values.
	ErrDirtyInput = errors.New("input contains NaN")
)

// Stats is one error report for a predicted/measured column pair.
type Stats struct {
	MBE     float64 // mean bias error, predicted - measured
	RMSE    float64 // root-mean-square error
	RelMBE  float64 // MBE / mean(measured) * 100, %
	RelRMSE float64 // RMSE / mean(measured) * 100, %
}

// Fit is a least-squares regression of predicted on measured values.
type Fit struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

// Compute returns the error statistics for a predicted series against a
// measured series of the same length.
func Compute(predicted, measured []float64) (Stats, error) {
	if len(predicted) != len(measured) {
		return Stats{}, fmt.Errorf("length mismatch: %d predicted vs %d measured", len(predicted), len(measured))
	}
	if len(predicted) == 0 {
		return Stats{}, errors.New("empty series")
	}
	for i := range predicted {
		if math.IsNaN(predicted[i]) || math.IsNaN(measured[i]) {
			return Stats{}, fmt.Errorf("%w at row %d", ErrDirtyInput, i)
		}
	}

	diff := make([]float64, len(predicted))
	floats.SubTo(diff, predicted, measured)

	mbe := stat.Mean(diff, nil)
	var ss float64
	for _, d := range diff {
		ss += d * d
	}
	rmse := math.Sqrt(ss / float64(len(diff)))

	meanMeasured := stat.Mean(measured, nil)
	if meanMeasured == 0 {
		return Stats{}, ErrZeroMean
	}

	return Stats{
		MBE:     mbe,
		RMSE:    rmse,
		RelMBE:  mbe / meanMeasured * 100,
		RelRMSE: rmse / meanMeasured * 100,
	}, nil
}

// Regression fits predicted = Slope*measured + Intercept by least squares.
func Regression(predicted, measured []float64) Fit {
	var f Fit
	f.Slope, f.Intercept, f.RSquared, _, _, _ = stats.LinearRegression(measured, predicted)
	return f
}

// Best returns the model with minimum RMSE. Ties break in canonical model
// order so the result is deterministic. Returns "" for an empty report set.
func Best(reports map[radiation.Model]Stats) radiation.Model {
	var best radiation.Model
	bestRMSE := math.Inf(1)
	for _, m := range radiation.Models() {
		s, ok := reports[m]
		if !ok {
			continue
		}
		if s.RMSE < bestRMSE {
			best = m
			bestRMSE = s.RMSE
		}
	}
	return best
}
