// Package radiation implements the closed-form atmospheric emissivity and
// downwelling longwave formulas validated by the Hawaii and SURFRAD pipelines.
// Every function is a pure scalar formula; callers map them over columns.
package radiation

// Physical constants shared by all formulas.
const (
	// StefanBoltzmann is the Stefan-Boltzmann constant, W/(m^2 K^4).
	StefanBoltzmann = 5.67e-8

	// KelvinOffset converts Celsius to Kelvin.
	KelvinOffset = 273.15

	// ReferencePressure is standard sea-level pressure, hPa.
	ReferencePressure = 1013.25

	// ScaleHeight is the atmospheric scale height used in the altitude
	// correction of the clear-sky emissivity fit, m.
	ScaleHeight = 8500.0
)

// Constants holds the empirical coefficients of the fitted formulas. They are
// injected rather than read from package globals so a pipeline run documents
// which fit it used and tests can perturb them in isolation.
type Constants struct {
	// Clear-sky emissivity fit: eps = Base + Vapor*sqrt(pw/p0) + Alt*(exp(-z/H)-1)
	ClearSkyBase  float64
	ClearSkyVapor float64
	ClearSkyAlt   float64

	// Cloud-fraction index fit: cf = A1*kd^A2 + M1*kt^M2 + N1
	A1 float64
	A2 float64
	M1 float64
	M2 float64
	N1 float64

	// Brutsaert (1975) clear-sky emissivity: eps0 = Coeff*(ea/Ta)^Exp
	BrutsaertCoeff float64
	BrutsaertExp   float64
}

// Defaults returns the published coefficient values used in production runs.
func Defaults() Constants {
	return Constants{
		ClearSkyBase:  0.6,
		ClearSkyVapor: 1.652,
		ClearSkyAlt:   0.15,

		A1: 0.42036059446739293,
		A2: 0.8335622813711547,
		M1: 0.24940266639537556,
		M2: -0.13137915252218796,
		N1: -0.31787964985255074,

		BrutsaertCoeff: 1.24,
		BrutsaertExp:   1.0 / 7.0,
	}
}
