package models

import "time"

// StoredAssessment is the persisted, scaled-integer form of one assessment.
// Masses are grams, percentages and BMI are hundredths, density is ten-thousandths.
type StoredAssessment struct {
	ID                         string           `json:"id,omitempty"`
	Protocol                   string           `json:"protocol"`
	Gender                     string           `json:"gender"`
	WeightG                    int64            `json:"weight_g"`
	HeightCM                   int64            `json:"height_cm"`
	Age                        int64            `json:"age"`
	Skinfolds                  map[string]int64 `json:"skinfolds,omitempty"`
	BioimpedanceBodyFatPercent *int64           `json:"bioimpedance_body_fat_percent,omitempty"`
	BioimpedanceLeanMassG      *int64           `json:"bioimpedance_lean_mass_g,omitempty"`
	BodyDensity                *int64           `json:"body_density,omitempty"`
	BodyFatPercent             int64            `json:"body_fat_percent"`
	LeanMassG                  int64            `json:"lean_mass_g"`
	FatMassG                   int64            `json:"fat_mass_g"`
	BMI                        int64            `json:"bmi"`
	RecordedAt                 time.Time        `json:"recorded_at"`
}
