// Package fixedpoint converts real-valued measurements and results to the
// scaled integers used for storage, and back.
//
// The scale table below is the only place the factors live; Encode and Decode
// both read it, so the write and read paths cannot drift apart.
package fixedpoint

import "math"

// Kind selects a scale class.
type Kind int

const (
	// Grams stores kilograms as integer grams.
	Grams Kind = iota + 1
	// Hundredths stores percentages and indices multiplied by 100.
	Hundredths
	// Density stores g/cm³ multiplied by 10000.
	Density
	// Centimetres stores height unscaled.
	Centimetres
	// Years stores age unscaled.
	Years
)

var scales = map[Kind]float64{
	Grams:       1000,
	Hundredths:  100,
	Density:     10000,
	Centimetres: 1,
	Years:       1,
}

// Kinds lists every scale class.
func Kinds() []Kind {
	return []Kind{Grams, Hundredths, Density, Centimetres, Years}
}

// Scale returns the factor for kind. Unknown kinds scale by 1.
func Scale(kind Kind) float64 {
	if factor, ok := scales[kind]; ok {
		return factor
	}
	return 1
}

// Resolution is the real-unit value of one stored step.
func Resolution(kind Kind) float64 {
	return 1 / Scale(kind)
}

// Encode scales value and rounds half away from zero. Ties are judged on the
// float64 product, not the decimal literal: 1.005 is stored as slightly less
// than 1.005, so Encode(1.005, Hundredths) is 100, while 22.505 gives 2251.
func Encode(value float64, kind Kind) int64 {
	return int64(math.Round(value * Scale(kind)))
}

// Decode divides by the same factor; it never rounds.
func Decode(stored int64, kind Kind) float64 {
	return float64(stored) / Scale(kind)
}

func (k Kind) String() string {
	switch k {
	case Grams:
		return "grams"
	case Hundredths:
		return "hundredths"
	case Density:
		return "density"
	case Centimetres:
		return "centimetres"
	case Years:
		return "years"
	default:
		return "unknown"
	}
}
