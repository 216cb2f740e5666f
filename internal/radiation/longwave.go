package radiation

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownModel is returned when a model identifier does not name one of the
// enumerated cloudy-sky corrections. It is a configuration error: callers
// abort, they do not retry.
var ErrUnknownModel = errors.New("unknown longwave model")

// Model identifies one cloudy-sky longwave correction formula.
type Model string

const (
	MaykutChurch     Model = "maykut_church"
	Jacobs           Model = "jacobs"
	SuguitaBrutsaert Model = "suguita_brutsaert"
	Konzelmann       Model = "konzelmann"
	CrawfordDuchon   Model = "crawford_duchon"
	Lhomme           Model = "lhomme"
)

// Models returns all correction models in their canonical evaluation order.
func Models() []Model {
	return []Model{MaykutChurch, Jacobs, SuguitaBrutsaert, Konzelmann, CrawfordDuchon, Lhomme}
}

// ParseModel validates a model name from configuration.
func ParseModel(name string) (Model, error) {
	m := Model(name)
	switch m {
	case MaykutChurch, Jacobs, SuguitaBrutsaert, Konzelmann, CrawfordDuchon, Lhomme:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

// BrutsaertClearSky computes the Brutsaert (1975) clear-sky downwelling
// longwave flux in W/m^2 from air temperature Ta (K) and vapor pressure
// ea (hPa). Non-positive Ta or ea yields NaN.
func (k Constants) BrutsaertClearSky(taK, eaHPa float64) float64 {
	eps0 := k.BrutsaertCoeff * math.Pow(eaHPa/taK, k.BrutsaertExp)
	return eps0 * StefanBoltzmann * math.Pow(taK, 4)
}

// The cloudy-sky corrections below take the clear-sky flux and cloud fraction
// c in [0,1]. The zero-cloud behavior of each is part of its published form:
// lhomme in particular does not reduce to the clear-sky flux at c=0.

// MaykutChurchFlux applies the Maykut and Church (1973) correction.
func MaykutChurchFlux(clear, c float64) float64 {
	return clear * (1 + 0.22*math.Pow(c, 2.75))
}

// JacobsFlux applies the Jacobs (1978) correction.
func JacobsFlux(clear, c float64) float64 {
	return clear * (1 + 0.26*c)
}

// SuguitaBrutsaertFlux applies the Suguita and Brutsaert (1993) correction.
func SuguitaBrutsaertFlux(clear, c float64) float64 {
	return clear * (1 + 0.0496*math.Pow(c, 2.45))
}

// KonzelmannFlux applies the Konzelmann et al. (1994) correction, blending the
// clear-sky flux with near-black-body emission at air temperature Ta (K),
// weighted by c^4.
func KonzelmannFlux(clear, c, taK float64) float64 {
	c4 := math.Pow(c, 4)
	return clear*(1-c4) + 0.952*c4*StefanBoltzmann*math.Pow(taK, 4)
}

// CrawfordDuchonFlux applies the Crawford and Duchon (1999) correction, a
// linear blend between clear-sky and black-body flux at Ta (K).
func CrawfordDuchonFlux(clear, c, taK float64) float64 {
	return clear*(1-c) + c*StefanBoltzmann*math.Pow(taK, 4)
}

// LhommeFlux applies the Lhomme et al. (2007) correction.
func LhommeFlux(clear, c float64) float64 {
	return clear * (1.03 + 0.34*c)
}

// CloudyLongwave computes the predicted downwelling longwave flux under cloudy
// conditions: the Brutsaert clear-sky baseline corrected by the named model.
// Ta in K, ea in hPa, cf in [0,1].
func (k Constants) CloudyLongwave(m Model, taK, eaHPa, cf float64) (float64, error) {
	clear := k.BrutsaertClearSky(taK, eaHPa)
	switch m {
	case MaykutChurch:
		return MaykutChurchFlux(clear, cf), nil
	case Jacobs:
		return JacobsFlux(clear, cf), nil
	case SuguitaBrutsaert:
		return SuguitaBrutsaertFlux(clear, cf), nil
	case Konzelmann:
		return KonzelmannFlux(clear, cf, taK), nil
	case CrawfordDuchon:
		return CrawfordDuchonFlux(clear, cf, taK), nil
	case Lhomme:
		return LhommeFlux(clear, cf), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, m)
}
