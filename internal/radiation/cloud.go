package radiation

import "math"

// CloudFractionIndex estimates cloud fraction from irradiance components via
// the fitted diffuse-fraction / clearness-index blend. ghi and dniClear must
// be nonzero; rows that would divide by zero are expected to be removed by the
// quality filters before this is called, otherwise the result is NaN/Inf.
func (k Constants) CloudFractionIndex(dhi, ghi, dni, dniClear float64) float64 {
	kd := dhi / ghi      // diffuse fraction
	kt := dni / dniClear // clearness index
	return k.A1*math.Pow(kd, k.A2) + k.M1*math.Pow(kt, k.M2) + k.N1
}

// CloudFractionFromGHI estimates cloud fraction as one minus the ratio of
// measured to clear-sky global irradiance, clipped to [0,1].
func CloudFractionFromGHI(ghiMeasured, ghiClear float64) float64 {
	cf := 1 - ghiMeasured/ghiClear
	if cf < 0 {
		return 0
	}
	if cf > 1 {
		return 1
	}
	return cf
}

// CloudFractionFromClearPct converts a reported clear-sky fraction into a
// cloud fraction. Preferred over the GHI ratio when the station reports one.
func CloudFractionFromClearPct(clrPct float64) float64 {
	return 1 - clrPct
}
