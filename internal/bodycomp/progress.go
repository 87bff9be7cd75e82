package bodycomp

type BMIClass string

const (
	Underweight  BMIClass = "underweight"
	NormalWeight BMIClass = "normal_weight"
	Overweight   BMIClass = "overweight"
	ObesityI     BMIClass = "obesity_class_1"
	ObesityII    BMIClass = "obesity_class_2"
	ObesityIII   BMIClass = "obesity_class_3"
)

// ClassifyBMI maps a BMI to the WHO adult bands.
func ClassifyBMI(bmi float64) BMIClass {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25.0:
		return NormalWeight
	case bmi < 30.0:
		return Overweight
	case bmi < 35.0:
		return ObesityI
	case bmi < 40.0:
		return ObesityII
	default:
		return ObesityIII
	}
}

// Progress holds next minus previous for the tracked quantities.
type Progress struct {
	WeightKg       float64
	BodyFatPercent float64
	LeanMassKg     float64
	FatMassKg      float64
	BMI            float64
}

func Compare(prev, next Assessment) Progress {
	return Progress{
		WeightKg:       next.Input.WeightKg - prev.Input.WeightKg,
		BodyFatPercent: next.Result.BodyFatPercent - prev.Result.BodyFatPercent,
		LeanMassKg:     next.Result.LeanMassKg - prev.Result.LeanMassKg,
		FatMassKg:      next.Result.FatMassKg - prev.Result.FatMassKg,
		BMI:            next.Result.BMI - prev.Result.BMI,
	}
}
