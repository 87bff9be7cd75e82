package bodycomp

import (
	"math"
	"sync"
	"testing"
)

const tolerance = 1e-9

func assertClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Fatalf("expected %s %.12f, got %.12f", name, want, got)
	}
}

func floatPtr(value float64) *float64 {
	return &value
}

func TestComputePollock3MaleScenario(t *testing.T) {
	input := MeasurementInput{
		WeightKg: 80,
		HeightCM: 178,
		Age:      28,
		Gender:   Male,
		Skinfolds: Skinfolds{
			Chest:     10,
			Abdominal: 18,
			Thigh:     14,
			// Not part of the male three-site sum.
			Triceps: 30,
		},
	}

	result := Compute(input, Pollock3)

	if result.BodyDensity == nil {
		t.Fatal("expected body density to be set")
	}
	assertClose(t, "density", *result.BodyDensity, 1.0702738)
	assertClose(t, "body fat", result.BodyFatPercent, 12.498474689373928)
	assertClose(t, "fat mass", result.FatMassKg, 9.998779751499143)
	assertClose(t, "lean mass", result.LeanMassKg, 70.00122024850086)
	assertClose(t, "bmi", result.BMI, 25.24933720489837)
	assertClose(t, "harris-benedict", result.BMRHarrisBenedict, 1855.388)
	assertClose(t, "katch-mcardle", result.BMRKatchMcArdle, 1882.0263573676186)
}

func TestDensityFormulas(t *testing.T) {
	cases := []struct {
		name        string
		protocol    Protocol
		input       MeasurementInput
		wantDensity float64
		wantFat     float64
	}{
		{
			name:     "pollock3 female",
			protocol: Pollock3,
			input: MeasurementInput{Age: 30, Gender: Female, Skinfolds: Skinfolds{
				Triceps: 16, Suprailiac: 14, Thigh: 22, Chest: 40,
			}},
			wantDensity: 1.0499045,
			wantFat:     21.471452879761888,
		},
		{
			name:     "pollock7 male",
			protocol: Pollock7,
			input: MeasurementInput{Age: 35, Gender: Male, Skinfolds: Skinfolds{
				Triceps: 10, Subscapular: 10, Chest: 10, Axillary: 10, Suprailiac: 10, Abdominal: 10, Thigh: 10,
			}},
			wantDensity: 1.0741566,
			wantFat:     10.826661587332786,
		},
		{
			name:     "pollock7 female with missing axillary",
			protocol: Pollock7,
			input: MeasurementInput{Age: 40, Gender: Female, Skinfolds: Skinfolds{
				Triceps: 12, Subscapular: 12, Chest: 12, Suprailiac: 12, Abdominal: 12, Thigh: 12,
			}},
			wantDensity: 1.06095272,
			wantFat:     16.56178985996659,
		},
		{
			name:     "guedes male",
			protocol: Guedes,
			input: MeasurementInput{Age: 50, Gender: Male, Skinfolds: Skinfolds{
				Triceps: 10, Suprailiac: 15, Abdominal: 20, Thigh: 99,
			}},
			wantDensity: 1.0604955688262254,
			wantFat:     16.762912124069018,
		},
		{
			name:     "guedes female",
			protocol: Guedes,
			input: MeasurementInput{Age: 22, Gender: Female, Skinfolds: Skinfolds{
				Suprailiac: 20, Thigh: 25, Subscapular: 15, Triceps: 99,
			}},
			wantDensity: 1.0409091771854033,
			wantFat:     25.545812112512678,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Compute(tc.input, tc.protocol)
			if result.BodyDensity == nil {
				t.Fatal("expected body density to be set")
			}
			assertClose(t, "density", *result.BodyDensity, tc.wantDensity)
			assertClose(t, "body fat", result.BodyFatPercent, tc.wantFat)
		})
	}
}

func TestComputeBioimpedanceUsesReportedBodyFat(t *testing.T) {
	result := Compute(MeasurementInput{
		WeightKg:                   65,
		HeightCM:                   170,
		Age:                        33,
		Gender:                     Female,
		BioimpedanceBodyFatPercent: floatPtr(22.5),
		BioimpedanceLeanMassKg:     floatPtr(48.1),
	}, Bioimpedance)

	if result.BodyDensity != nil {
		t.Fatalf("expected no density for bioimpedance, got %v", *result.BodyDensity)
	}
	if result.BodyFatPercent != 22.5 {
		t.Fatalf("expected body fat 22.5, got %v", result.BodyFatPercent)
	}
	if result.FatMassKg != 14.625 {
		t.Fatalf("expected fat mass 14.625, got %v", result.FatMassKg)
	}
	if result.LeanMassKg != 50.375 {
		t.Fatalf("expected lean mass 50.375, got %v", result.LeanMassKg)
	}
}

func TestComputeBioimpedanceWithoutReadingIsZeroFat(t *testing.T) {
	result := Compute(MeasurementInput{WeightKg: 70, HeightCM: 175, Age: 40, Gender: Male}, Bioimpedance)

	if result.BodyFatPercent != 0 || result.LeanMassKg != 70 {
		t.Fatalf("expected 0%% fat and all-lean mass, got %v%% and %v kg", result.BodyFatPercent, result.LeanMassKg)
	}
}

func TestGuedesWithoutSkinfoldsReturnsZeroDensity(t *testing.T) {
	for _, gender := range []Gender{Male, Female} {
		result := Compute(MeasurementInput{WeightKg: 72, HeightCM: 170, Age: 30, Gender: gender}, Guedes)

		if result.BodyDensity == nil || *result.BodyDensity != 0 {
			t.Fatalf("%s: expected density 0, got %v", gender, result.BodyDensity)
		}
		if result.BodyFatPercent != 0 || math.IsNaN(result.BodyFatPercent) {
			t.Fatalf("%s: expected body fat 0, got %v", gender, result.BodyFatPercent)
		}
		if result.LeanMassKg != 72 {
			t.Fatalf("%s: expected lean mass to equal weight, got %v", gender, result.LeanMassKg)
		}
		assertClose(t, "katch-mcardle", result.BMRKatchMcArdle, 370+21.6*72)
	}
}

func TestBodyFatIsNeverNegative(t *testing.T) {
	cases := []struct {
		name     string
		protocol Protocol
		input    MeasurementInput
	}{
		{
			name:     "pollock3 empty bundle",
			protocol: Pollock3,
			input:    MeasurementInput{WeightKg: 70, HeightCM: 175, Age: 20, Gender: Male},
		},
		{
			name:     "pollock3 extreme sum",
			protocol: Pollock3,
			input: MeasurementInput{WeightKg: 70, HeightCM: 175, Age: 20, Gender: Male, Skinfolds: Skinfolds{
				Chest: 200, Abdominal: 200, Thigh: 200,
			}},
		},
		{
			name:     "pollock7 extreme sum",
			protocol: Pollock7,
			input: MeasurementInput{WeightKg: 70, HeightCM: 175, Age: 20, Gender: Female, Skinfolds: Skinfolds{
				Triceps: 300, Subscapular: 300, Chest: 300, Axillary: 300, Suprailiac: 300, Abdominal: 300, Thigh: 300,
			}},
		},
		{
			name:     "guedes tiny sum",
			protocol: Guedes,
			input: MeasurementInput{WeightKg: 70, HeightCM: 175, Age: 20, Gender: Male, Skinfolds: Skinfolds{
				Triceps: 0.01,
			}},
		},
		{
			name:     "bioimpedance negative reading",
			protocol: Bioimpedance,
			input: MeasurementInput{WeightKg: 70, HeightCM: 175, Age: 20, Gender: Male,
				BioimpedanceBodyFatPercent: floatPtr(-3),
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Compute(tc.input, tc.protocol)
			if result.BodyFatPercent < 0 {
				t.Fatalf("expected non-negative body fat, got %v", result.BodyFatPercent)
			}
			if result.FatMassKg < 0 {
				t.Fatalf("expected non-negative fat mass, got %v", result.FatMassKg)
			}
		})
	}
}

func TestBodyFatFromDensityClampsDegenerateDensities(t *testing.T) {
	for _, density := range []float64{0, -1, 1.2, 5} {
		if got := BodyFatFromDensity(density); got != 0 {
			t.Fatalf("expected 0 for density %v, got %v", density, got)
		}
	}
}

func TestMassIsConserved(t *testing.T) {
	weights := []float64{0, 45.3, 65, 80, 123.456, 210}
	for _, protocol := range Protocols() {
		for _, weight := range weights {
			input := MeasurementInput{
				WeightKg: weight,
				HeightCM: 172,
				Age:      41,
				Gender:   Female,
				Skinfolds: Skinfolds{
					Triceps: 18.5, Subscapular: 14, Chest: 9, Axillary: 11, Suprailiac: 16.2, Abdominal: 24, Thigh: 27,
				},
				BioimpedanceBodyFatPercent: floatPtr(28.7),
			}
			result := Compute(input, protocol)
			if diff := math.Abs(result.LeanMassKg + result.FatMassKg - weight); diff > tolerance {
				t.Fatalf("%s weight %v: lean+fat off by %v", protocol, weight, diff)
			}
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	input := MeasurementInput{
		WeightKg:  91.2,
		HeightCM:  183,
		Age:       37,
		Gender:    Male,
		Skinfolds: Skinfolds{Triceps: 12, Subscapular: 17, Chest: 13, Axillary: 15, Suprailiac: 19, Abdominal: 26, Thigh: 16},
	}

	for _, protocol := range Protocols() {
		first := Compute(input, protocol)

		var wg sync.WaitGroup
		results := make([]Result, 16)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = Compute(input, protocol)
			}(i)
		}
		wg.Wait()

		for _, got := range results {
			if !sameResult(first, got) {
				t.Fatalf("%s: expected identical results, got %+v and %+v", protocol, first, got)
			}
		}
	}
}

func TestComputeUnknownProtocolMatchesNoFormula(t *testing.T) {
	result := Compute(MeasurementInput{
		WeightKg:  70,
		HeightCM:  175,
		Age:       30,
		Gender:    Male,
		Skinfolds: Skinfolds{Chest: 10, Abdominal: 10, Thigh: 10},
	}, Protocol(0))

	if result.BodyDensity != nil {
		t.Fatalf("expected no density, got %v", *result.BodyDensity)
	}
	if result.BodyFatPercent != 0 {
		t.Fatalf("expected body fat 0, got %v", result.BodyFatPercent)
	}
}

func TestHarrisBenedictFemale(t *testing.T) {
	assertClose(t, "harris-benedict", HarrisBenedict(Female, 60, 165, 30), 1383.683)
}

func TestBMIWithoutHeightIsZero(t *testing.T) {
	if got := BMI(70, 0); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func sameResult(a, b Result) bool {
	if (a.BodyDensity == nil) != (b.BodyDensity == nil) {
		return false
	}
	if a.BodyDensity != nil && *a.BodyDensity != *b.BodyDensity {
		return false
	}
	return a.BodyFatPercent == b.BodyFatPercent &&
		a.LeanMassKg == b.LeanMassKg &&
		a.FatMassKg == b.FatMassKg &&
		a.BMI == b.BMI &&
		a.BMRHarrisBenedict == b.BMRHarrisBenedict &&
		a.BMRKatchMcArdle == b.BMRKatchMcArdle
}
