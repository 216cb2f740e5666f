package radiation

import "math"

// SaturationVaporPressure returns the saturation vapor pressure in hPa for an
// air temperature in degrees C, using the Magnus-type fit from the clear-sky
// emissivity model.
func SaturationVaporPressure(tempC float64) float64 {
	return 6.112 * math.Exp(17.625*tempC/(tempC-30.11+KelvinOffset))
}

// VaporPressure returns the partial water vapor pressure in hPa given air
// temperature in degrees C and relative humidity in percent.
func VaporPressure(tempC, rhPct float64) float64 {
	return SaturationVaporPressure(tempC) * rhPct / 100
}

// ClearSkyEmissivity computes the fitted clear-sky atmospheric emissivity from
// air temperature (degrees C), relative humidity (%) and site altitude (m).
// The result is not clamped: extrapolated inputs can land outside [0,1] and
// callers must tolerate that.
func (k Constants) ClearSkyEmissivity(tempC, rhPct, altitudeM float64) float64 {
	pw := VaporPressure(tempC, rhPct)
	return k.ClearSkyBase +
		k.ClearSkyVapor*math.Sqrt(pw/ReferencePressure) +
		k.ClearSkyAlt*(math.Exp(-altitudeM/ScaleHeight)-1)
}

// ActualEmissivity inverts the Stefan-Boltzmann law to get the measured sky
// emissivity from air temperature (degrees C) and measured downwelling
// longwave flux (W/m^2).
func ActualEmissivity(tempC, dlw float64) float64 {
	return EmissivityFromFlux(dlw, tempC+KelvinOffset)
}

// EmissivityFromFlux returns flux / (sigma * Ta^4), the emissivity implied by
// a longwave flux at air temperature Ta in Kelvin.
func EmissivityFromFlux(flux, taK float64) float64 {
	return flux / (StefanBoltzmann * math.Pow(taK, 4))
}

// PredictedSkyEmissivity blends clear-sky and cloud emissivity linearly by
// cloud fraction.
func PredictedSkyEmissivity(cf, epsClearSky, epsCloud float64) float64 {
	return (1-cf)*epsClearSky + cf*epsCloud
}
