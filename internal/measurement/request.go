package measurement

import (
	"errors"
	"fmt"
	"math"

	"github.com/AndersonLongara/AltraFitness-sub001/internal/bodycomp"
	"github.com/tidwall/gjson"
)

var ErrInvalidPayload = errors.New("invalid measurement payload")

// Request is one measurement bundle as submitted by a caller, before validation.
type Request struct {
	Protocol     string
	WeightKg     *float64
	HeightCM     *float64
	Age          *int
	Gender       string
	Skinfolds    map[string]float64
	BioBodyFat   *float64
	BioLeanMass  *float64
	UnknownSites []string
}

// Parse reads a JSON bundle. Absent keys stay nil so validation can tell
// "not measured" apart from an explicit 0.
func Parse(body []byte) (Request, error) {
	if !gjson.ValidBytes(body) {
		return Request{}, fmt.Errorf("%w: malformed json", ErrInvalidPayload)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return Request{}, fmt.Errorf("%w: expected a json object", ErrInvalidPayload)
	}

	req := Request{
		Protocol: root.Get("protocol").String(),
		Gender:   root.Get("gender").String(),
	}
	numbers := []struct {
		key  string
		dest **float64
	}{
		{"weight", &req.WeightKg},
		{"height", &req.HeightCM},
		{"bioimpedance_body_fat_percent", &req.BioBodyFat},
		{"bioimpedance_lean_mass_kg", &req.BioLeanMass},
	}
	for _, field := range numbers {
		value, err := optionalFloat(field.key, root.Get(field.key))
		if err != nil {
			return Request{}, err
		}
		*field.dest = value
	}

	age, err := optionalFloat("age", root.Get("age"))
	if err != nil {
		return Request{}, err
	}
	if age != nil {
		if *age != math.Trunc(*age) {
			return Request{}, fmt.Errorf("%w: age must be a whole number", ErrInvalidPayload)
		}
		value := int(*age)
		req.Age = &value
	}

	skinfolds := root.Get("skinfolds")
	if skinfolds.Exists() && !skinfolds.IsObject() && skinfolds.Type != gjson.Null {
		return Request{}, fmt.Errorf("%w: skinfolds must be an object", ErrInvalidPayload)
	}
	skinfolds.ForEach(func(key, value gjson.Result) bool {
		mm, ferr := optionalFloat("skinfolds."+key.String(), value)
		if ferr != nil {
			err = ferr
			return false
		}
		if mm == nil {
			return true
		}
		if req.Skinfolds == nil {
			req.Skinfolds = make(map[string]float64)
		}
		req.Skinfolds[key.String()] = *mm
		if !bodycomp.Site(key.String()).Known() {
			req.UnknownSites = append(req.UnknownSites, key.String())
		}
		return true
	})
	if err != nil {
		return Request{}, err
	}

	return req, nil
}

// Input converts a validated request into the calculator's input.
func (r Request) Input() bodycomp.MeasurementInput {
	input := bodycomp.MeasurementInput{
		WeightKg:                   floatValue(r.WeightKg),
		HeightCM:                   floatValue(r.HeightCM),
		Gender:                     bodycomp.Gender(r.Gender),
		BioimpedanceBodyFatPercent: r.BioBodyFat,
		BioimpedanceLeanMassKg:     r.BioLeanMass,
	}
	if r.Age != nil {
		input.Age = *r.Age
	}
	for site, mm := range r.Skinfolds {
		if !bodycomp.Site(site).Known() {
			continue
		}
		if input.Skinfolds == nil {
			input.Skinfolds = make(bodycomp.Skinfolds, len(r.Skinfolds))
		}
		input.Skinfolds[bodycomp.Site(site)] = mm
	}
	return input
}

// optionalFloat returns nil for an absent or null value and rejects anything
// that is not a JSON number.
func optionalFloat(key string, result gjson.Result) (*float64, error) {
	if !result.Exists() || result.Type == gjson.Null {
		return nil, nil
	}
	if result.Type != gjson.Number {
		return nil, fmt.Errorf("%w: %s must be a number", ErrInvalidPayload, key)
	}
	value := result.Num
	return &value, nil
}

func floatValue(value *float64) float64 {
	if value == nil {
		return 0
	}
	return *value
}
