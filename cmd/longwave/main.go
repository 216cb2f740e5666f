package main

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"
	_ "modernc.org/sqlite"

	"github.com/lox/longwave/internal/pipeline"
	"github.com/lox/longwave/internal/radiation"
	"github.com/lox/longwave/internal/store"
)

type hawaiiCmd struct {
	Input           string  `arg:"" help:"Station workbook (.xlsx) with irradiance, temperature, humidity and DLW columns." type:"existingfile"`
	Output          string  `short:"o" help:"Optional CSV path for retained rows plus derived columns."`
	CloudEmissivity float64 `default:"1.0" env:"LW_CLOUD_EMISSIVITY" help:"Emissivity assigned to fully overcast sky (1.0 = black-body clouds)."`
	MaxZenith       float64 `default:"72.5" help:"Maximum solar zenith angle in degrees; rows at or above are dropped."`
}

func (c *hawaiiCmd) Run() error {
	report, err := pipeline.Hawaii(pipeline.HawaiiConfig{
		InputPath:       c.Input,
		OutputPath:      c.Output,
		CloudEmissivity: c.CloudEmissivity,
		MaxZenith:       c.MaxZenith,
		Constants:       radiation.Defaults(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("rows: %d loaded, %d retained\n", report.RowsLoaded, report.RowsRetained)
	names := make([]string, 0, len(report.Dropped))
	for name := range report.Dropped {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  dropped by %s: %d\n", name, report.Dropped[name])
	}
	fmt.Printf("MBE = %.4f, RMSE = %.4f, rMBE = %.2f%%, rRMSE = %.2f%%\n",
		report.Stats.MBE, report.Stats.RMSE, report.Stats.RelMBE, report.Stats.RelRMSE)
	fmt.Printf("fit: slope = %.3f, intercept = %.3f, R^2 = %.3f\n",
		report.Fit.Slope, report.Fit.Intercept, report.Fit.RSquared)
	if c.Output != "" {
		fmt.Printf("results written to %s\n", c.Output)
	}
	return nil
}

type surfradCmd struct {
	DB       string   `arg:"" help:"SURFRAD sqlite database with one table per station key." type:"existingfile"`
	Stations []string `default:"BON,DRA,FPK,GWC,PSU,SXF,TBL" env:"LW_STATIONS" help:"Station keys to evaluate; missing stations are skipped with a warning."`
	Models   []string `help:"Cloudy-sky models to evaluate (default: all six)."`
}

func (c *surfradCmd) Run() error {
	mods := make([]radiation.Model, 0, len(c.Models))
	for _, name := range c.Models {
		m, err := radiation.ParseModel(name)
		if err != nil {
			return err
		}
		mods = append(mods, m)
	}

	db, err := sql.Open("sqlite", c.DB)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	report, err := pipeline.Surfrad(pipeline.SurfradConfig{
		Store:     store.New(db),
		Stations:  c.Stations,
		Models:    mods,
		Constants: radiation.Defaults(),
	})
	if err != nil {
		return err
	}

	for _, st := range report.Stations {
		if st.Skipped {
			fmt.Printf("station %s: skipped (%s)\n", st.Station, st.Reason)
		} else {
			fmt.Printf("station %s: %d rows\n", st.Station, len(st.Records))
		}
	}
	fmt.Printf("combined rows: %d\n", report.Rows)
	for _, r := range report.Reports {
		fmt.Printf("%s: MBE = %.4f, RMSE = %.4f, rMBE = %.2f%%, rRMSE = %.2f%% (slope %.3f, R^2 %.3f)\n",
			r.Model, r.Stats.MBE, r.Stats.RMSE, r.Stats.RelMBE, r.Stats.RelRMSE, r.Fit.Slope, r.Fit.RSquared)
	}
	fmt.Printf("best model by RMSE: %s\n", report.Best)
	return nil
}

var cli struct {
	Hawaii  hawaiiCmd  `cmd:"" help:"Validate the cloud-fraction emissivity model against a Hawaii station workbook."`
	Surfrad surfradCmd `cmd:"" help:"Rank the six cloudy-sky longwave models against SURFRAD station data."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("longwave"),
		kong.Description("Validation of downwelling longwave radiation models against station measurements."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
