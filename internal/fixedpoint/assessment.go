package fixedpoint

import (
	"github.com/AndersonLongara/AltraFitness-sub001/internal/bodycomp"
	"github.com/AndersonLongara/AltraFitness-sub001/internal/models"
)

// EncodeAssessment scales every input and result field of one assessment.
// Identity and timestamps are left to the caller.
func EncodeAssessment(protocol bodycomp.Protocol, input bodycomp.MeasurementInput, result bodycomp.Result) models.StoredAssessment {
	stored := models.StoredAssessment{
		Protocol:                   protocol.String(),
		Gender:                     string(input.Gender),
		WeightG:                    Encode(input.WeightKg, Grams),
		HeightCM:                   Encode(input.HeightCM, Centimetres),
		Age:                        Encode(float64(input.Age), Years),
		BioimpedanceBodyFatPercent: encodeOptional(input.BioimpedanceBodyFatPercent, Hundredths),
		BioimpedanceLeanMassG:      encodeOptional(input.BioimpedanceLeanMassKg, Grams),
		BodyDensity:                encodeOptional(result.BodyDensity, Density),
		BodyFatPercent:             Encode(result.BodyFatPercent, Hundredths),
		LeanMassG:                  Encode(result.LeanMassKg, Grams),
		FatMassG:                   Encode(result.FatMassKg, Grams),
		BMI:                        Encode(result.BMI, Hundredths),
	}

	if len(input.Skinfolds) > 0 {
		stored.Skinfolds = make(map[string]int64, len(input.Skinfolds))
		for site, mm := range input.Skinfolds {
			stored.Skinfolds[string(site)] = Encode(mm, Hundredths)
		}
	}

	return stored
}

// DecodeAssessment reverses EncodeAssessment. BMR values are not stored, so
// they are recomputed from the decoded fields.
func DecodeAssessment(stored models.StoredAssessment) bodycomp.Assessment {
	protocol, err := bodycomp.ParseProtocol(stored.Protocol)
	if err != nil {
		protocol = 0
	}

	input := bodycomp.MeasurementInput{
		WeightKg:                   Decode(stored.WeightG, Grams),
		HeightCM:                   Decode(stored.HeightCM, Centimetres),
		Age:                        int(stored.Age),
		Gender:                     bodycomp.Gender(stored.Gender),
		BioimpedanceBodyFatPercent: decodeOptional(stored.BioimpedanceBodyFatPercent, Hundredths),
		BioimpedanceLeanMassKg:     decodeOptional(stored.BioimpedanceLeanMassG, Grams),
	}
	if len(stored.Skinfolds) > 0 {
		input.Skinfolds = make(bodycomp.Skinfolds, len(stored.Skinfolds))
		for site, value := range stored.Skinfolds {
			input.Skinfolds[bodycomp.Site(site)] = Decode(value, Hundredths)
		}
	}

	result := bodycomp.Result{
		BodyDensity:    decodeOptional(stored.BodyDensity, Density),
		BodyFatPercent: Decode(stored.BodyFatPercent, Hundredths),
		LeanMassKg:     Decode(stored.LeanMassG, Grams),
		FatMassKg:      Decode(stored.FatMassG, Grams),
		BMI:            Decode(stored.BMI, Hundredths),
	}
	result.BMRHarrisBenedict = bodycomp.HarrisBenedict(input.Gender, input.WeightKg, input.HeightCM, input.Age)
	result.BMRKatchMcArdle = bodycomp.KatchMcArdle(result.LeanMassKg)

	return bodycomp.Assessment{
		Protocol: protocol,
		Input:    input,
		Result:   result,
	}
}

func encodeOptional(value *float64, kind Kind) *int64 {
	if value == nil {
		return nil
	}
	encoded := Encode(*value, kind)
	return &encoded
}

func decodeOptional(value *int64, kind Kind) *float64 {
	if value == nil {
		return nil
	}
	decoded := Decode(*value, kind)
	return &decoded
}
