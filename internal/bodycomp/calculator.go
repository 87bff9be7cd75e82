// Package bodycomp estimates body composition from anthropometric measurements.
//
// Every function here is pure: no I/O, no retained state, and no rounding. Values are
// rounded only when they are encoded for storage (see package fixedpoint).
package bodycomp

import "math"

// MeasurementInput is the raw measurement bundle in real units.
type MeasurementInput struct {
	WeightKg  float64
	HeightCM  float64
	Age       int
	Gender    Gender
	Skinfolds Skinfolds

	// Read only by the Bioimpedance protocol.
	BioimpedanceBodyFatPercent *float64
	BioimpedanceLeanMassKg     *float64
}

// Result is the outcome of one computation.
type Result struct {
	// BodyDensity is g/cm³. Nil when the protocol does not go through density.
	BodyDensity       *float64
	BodyFatPercent    float64
	LeanMassKg        float64
	FatMassKg         float64
	BMI               float64
	BMRHarrisBenedict float64
	BMRKatchMcArdle   float64
}

// Assessment ties a result to the input and protocol that produced it.
type Assessment struct {
	Protocol Protocol
	Input    MeasurementInput
	Result   Result
}

// Compute runs the full pipeline for one assessment. It never fails: missing
// skinfolds count as 0 and degenerate densities yield a body-fat of 0.
func Compute(input MeasurementInput, protocol Protocol) Result {
	var result Result

	switch protocol {
	case Pollock3, Pollock7, Guedes:
		density := Density(input, protocol)
		result.BodyDensity = &density
		result.BodyFatPercent = BodyFatFromDensity(density)
	case Bioimpedance:
		if input.BioimpedanceBodyFatPercent != nil {
			// The device reading is used as is, except that a negative one is floored at 0.
			result.BodyFatPercent = math.Max(0, *input.BioimpedanceBodyFatPercent)
		}
	}

	result.FatMassKg = input.WeightKg * result.BodyFatPercent / 100
	result.LeanMassKg = input.WeightKg - result.FatMassKg
	result.BMI = BMI(input.WeightKg, input.HeightCM)
	result.BMRHarrisBenedict = HarrisBenedict(input.Gender, input.WeightKg, input.HeightCM, input.Age)
	result.BMRKatchMcArdle = KatchMcArdle(result.LeanMassKg)
	return result
}

// Density returns body density for the skinfold protocols and 0 for any other.
func Density(input MeasurementInput, protocol Protocol) float64 {
	sum := input.Skinfolds.Sum(protocol.Sites(input.Gender)...)
	age := float64(input.Age)
	male := input.Gender == Male

	switch protocol {
	case Pollock3:
		if male {
			return 1.10938 - 0.0008267*sum + 0.0000016*sum*sum - 0.0002574*age
		}
		return 1.0994921 - 0.0009929*sum + 0.0000023*sum*sum - 0.0001392*age
	case Pollock7:
		if male {
			return 1.112 - 0.00043499*sum + 0.00000055*sum*sum - 0.00028826*age
		}
		return 1.097 - 0.00046971*sum + 0.00000056*sum*sum - 0.00012828*age
	case Guedes:
		// log10(0) is undefined; no measured site means no estimate.
		if sum <= 0 {
			return 0
		}
		if male {
			return 1.17136 - 0.06706*math.Log10(sum)
		}
		return 1.16650 - 0.07063*math.Log10(sum)
	default:
		return 0
	}
}

// BodyFatFromDensity applies the Siri equation. Non-positive densities and
// results below zero both come out as 0.
func BodyFatFromDensity(density float64) float64 {
	if density <= 0 {
		return 0
	}
	return math.Max(0, (4.95/density-4.50)*100)
}

// BMI is weight over height in metres squared; 0 when height is missing.
func BMI(weightKg, heightCM float64) float64 {
	if heightCM <= 0 {
		return 0
	}
	h := heightCM / 100
	return weightKg / (h * h)
}
