package radiation

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestActualEmissivity(t *testing.T) {
	// 350 W/m^2 at 20C: 350 / (sigma * 293.15^4)
	got := ActualEmissivity(20, 350)
	want := 0.8358443119671285
	if !almostEqual(got, want, 1e-12) {
		t.Errorf("ActualEmissivity(20, 350) = %v, want %v", got, want)
	}
}

func TestActualEmissivityDeterministic(t *testing.T) {
	first := ActualEmissivity(13.7, 312.4)
	for i := 0; i < 100; i++ {
		if got := ActualEmissivity(13.7, 312.4); got != first {
			t.Fatalf("call %d returned %v, first call returned %v", i, got, first)
		}
	}
}

func TestClearSkyEmissivity(t *testing.T) {
	k := Defaults()
	tests := []struct {
		name           string
		tempC, rh, alt float64
		want           float64
	}{
		{"warm humid low site", 20, 60, 100, 0.7924764487565668},
		{"freezing sea level", 0, 50, 0, 0.6907252997449825},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := k.ClearSkyEmissivity(tt.tempC, tt.rh, tt.alt)
			if !almostEqual(got, tt.want, 1e-9) {
				t.Errorf("ClearSkyEmissivity(%v, %v, %v) = %v, want %v", tt.tempC, tt.rh, tt.alt, got, tt.want)
			}
		})
	}
}

func TestSaturationVaporPressure(t *testing.T) {
	// Magnus fit at 0C is exactly the 6.112 hPa reference value.
	if got := SaturationVaporPressure(0); !almostEqual(got, 6.112, 1e-12) {
		t.Errorf("SaturationVaporPressure(0) = %v, want 6.112", got)
	}
	if got := SaturationVaporPressure(20); !almostEqual(got, 23.34433674073276, 1e-9) {
		t.Errorf("SaturationVaporPressure(20) = %v, want 23.344336...", got)
	}
}

func TestVaporPressure(t *testing.T) {
	es := SaturationVaporPressure(25)
	if got := VaporPressure(25, 50); !almostEqual(got, es/2, 1e-12) {
		t.Errorf("VaporPressure(25, 50) = %v, want half of saturation %v", got, es)
	}
}

func TestEmissivityFluxRoundTrip(t *testing.T) {
	const taK = 288.15
	for _, flux := range []float64{150, 280, 350, 420} {
		eps := EmissivityFromFlux(flux, taK)
		back := eps * StefanBoltzmann * math.Pow(taK, 4)
		if !almostEqual(back, flux, flux*1e-12) {
			t.Errorf("round trip for flux %v gave %v", flux, back)
		}
	}
}

func TestPredictedSkyEmissivity(t *testing.T) {
	tests := []struct {
		name                   string
		cf, epsClear, epsCloud float64
		want                   float64
	}{
		{"clear sky", 0, 0.75, 1.0, 0.75},
		{"overcast", 1, 0.75, 1.0, 1.0},
		{"half cover", 0.5, 0.7, 1.0, 0.85},
		{"grey clouds", 1, 0.7, 0.9, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictedSkyEmissivity(tt.cf, tt.epsClear, tt.epsCloud)
			if !almostEqual(got, tt.want, 1e-12) {
				t.Errorf("PredictedSkyEmissivity(%v, %v, %v) = %v, want %v", tt.cf, tt.epsClear, tt.epsCloud, got, tt.want)
			}
		})
	}
}
