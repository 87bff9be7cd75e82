package bodycomp

// HarrisBenedict is the revised Harris-Benedict BMR in kcal/day.
func HarrisBenedict(gender Gender, weightKg, heightCM float64, age int) float64 {
	if gender == Male {
		return 88.362 + 13.397*weightKg + 4.799*heightCM - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCM - 4.330*float64(age)
}

// KatchMcArdle is the lean-mass based BMR in kcal/day. When body-fat is 0 the
// lean mass equals total weight, so the estimate treats the person as all lean.
func KatchMcArdle(leanMassKg float64) float64 {
	return 370 + 21.6*leanMassKg
}
