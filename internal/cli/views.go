package cli

import (
	"github.com/AndersonLongara/AltraFitness-sub001/internal/bodycomp"
)

type assessmentView struct {
	ID                string             `json:"id,omitempty"`
	Protocol          string             `json:"protocol"`
	Gender            string             `json:"gender"`
	WeightKg          float64            `json:"weight_kg"`
	HeightCM          float64            `json:"height_cm"`
	Age               int                `json:"age"`
	Skinfolds         map[string]float64 `json:"skinfolds,omitempty"`
	BodyDensity       *float64           `json:"body_density"`
	BodyFatPercent    float64            `json:"body_fat_percent"`
	LeanMassKg        float64            `json:"lean_mass_kg"`
	FatMassKg         float64            `json:"fat_mass_kg"`
	BMI               float64            `json:"bmi"`
	BMIClass          bodycomp.BMIClass  `json:"bmi_class"`
	BMRHarrisBenedict float64            `json:"bmr_harris_benedict"`
	BMRKatchMcArdle   float64            `json:"bmr_katch_mcardle"`
}

func newAssessmentView(id string, assessment bodycomp.Assessment) assessmentView {
	view := assessmentView{
		ID:                id,
		Protocol:          assessment.Protocol.String(),
		Gender:            string(assessment.Input.Gender),
		WeightKg:          assessment.Input.WeightKg,
		HeightCM:          assessment.Input.HeightCM,
		Age:               assessment.Input.Age,
		BodyDensity:       assessment.Result.BodyDensity,
		BodyFatPercent:    assessment.Result.BodyFatPercent,
		LeanMassKg:        assessment.Result.LeanMassKg,
		FatMassKg:         assessment.Result.FatMassKg,
		BMI:               assessment.Result.BMI,
		BMIClass:          bodycomp.ClassifyBMI(assessment.Result.BMI),
		BMRHarrisBenedict: assessment.Result.BMRHarrisBenedict,
		BMRKatchMcArdle:   assessment.Result.BMRKatchMcArdle,
	}
	if len(assessment.Input.Skinfolds) > 0 {
		view.Skinfolds = make(map[string]float64, len(assessment.Input.Skinfolds))
		for site, mm := range assessment.Input.Skinfolds {
			view.Skinfolds[string(site)] = mm
		}
	}
	return view
}

type progressView struct {
	FromID         string  `json:"from_id,omitempty"`
	ToID           string  `json:"to_id,omitempty"`
	WeightKg       float64 `json:"weight_kg"`
	BodyFatPercent float64 `json:"body_fat_percent"`
	LeanMassKg     float64 `json:"lean_mass_kg"`
	FatMassKg      float64 `json:"fat_mass_kg"`
	BMI            float64 `json:"bmi"`
}

type protocolView struct {
	Protocol string              `json:"protocol"`
	Sites    map[string][]string `json:"sites"`
}

func newProtocolView(protocol bodycomp.Protocol) protocolView {
	view := protocolView{
		Protocol: protocol.String(),
		Sites:    make(map[string][]string, 2),
	}
	for _, gender := range []bodycomp.Gender{bodycomp.Male, bodycomp.Female} {
		sites := []string{}
		for _, site := range protocol.Sites(gender) {
			sites = append(sites, string(site))
		}
		view.Sites[string(gender)] = sites
	}
	return view
}
