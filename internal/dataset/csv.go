package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/lox/longwave/internal/models"
)

var outputHeader = []string{
	colDHI, colGHI, colDNI, colClearskyDNI,
	colTemp, colDLW, colRH, colSiteElev, colSolarZenith,
	"actual_epsilon", "epsilon_clear_sky", "CF", "predicted_epsilon",
}

// WriteCSV writes the retained rows, with their derived columns appended, to a
// CSV file at path.
func WriteCSV(path string, rows []models.Observation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(outputHeader); err != nil {
		return err
	}
	for _, o := range rows {
		record := []float64{
			o.DHI, o.GHI, o.DNI, o.ClearskyDNI,
			o.Temp, o.DLW, o.RH, o.SiteElev, o.SolarZenith,
			o.ActualEpsilon, o.EpsilonClearSky, o.CF, o.PredictedEpsilon,
		}
		fields := make([]string, len(record))
		for i, v := range record {
			fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(fields); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
