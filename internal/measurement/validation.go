package measurement

import (
	"fmt"
	"strings"

	"github.com/AndersonLongara/AltraFitness-sub001/internal/bodycomp"
)

// Validate returns the first problem found with req for the given protocol,
// or "" when the bundle can be computed. The calculator itself accepts
// anything; this is where incomplete submissions get rejected.
func Validate(req Request, protocol bodycomp.Protocol) string {
	if req.WeightKg == nil || *req.WeightKg <= 0 {
		return "weight must be greater than 0"
	}
	if req.HeightCM == nil || *req.HeightCM <= 0 {
		return "height must be greater than 0"
	}
	if req.Age == nil || *req.Age <= 0 {
		return "age must be greater than 0"
	}
	if err := validateGender(req.Gender); err != "" {
		return err
	}
	if len(req.UnknownSites) > 0 {
		return fmt.Sprintf("unknown skinfold sites: %s", strings.Join(req.UnknownSites, ", "))
	}
	for site, mm := range req.Skinfolds {
		if mm < 0 {
			return fmt.Sprintf("skinfolds.%s must be 0 or greater", site)
		}
	}

	switch protocol {
	case bodycomp.Pollock3, bodycomp.Pollock7, bodycomp.Guedes:
		return validateSites(req, protocol)
	case bodycomp.Bioimpedance:
		if req.BioBodyFat == nil {
			return "bioimpedance_body_fat_percent is required for bioimpedance"
		}
		if *req.BioBodyFat < 0 || *req.BioBodyFat >= 100 {
			return "bioimpedance_body_fat_percent must be between 0 and 100"
		}
		if req.BioLeanMass != nil && *req.BioLeanMass < 0 {
			return "bioimpedance_lean_mass_kg must be 0 or greater"
		}
		return ""
	default:
		return "protocol must be one of: " + protocolList()
	}
}

func validateSites(req Request, protocol bodycomp.Protocol) string {
	gender := bodycomp.Gender(req.Gender)
	measured := req.Input().Skinfolds
	for _, site := range protocol.Sites(gender) {
		if measured.Has(site) {
			return ""
		}
	}
	return fmt.Sprintf("%s requires at least one of the skinfolds: %s", protocol, siteList(protocol.Sites(gender)))
}

func validateGender(gender string) string {
	if _, err := bodycomp.ParseGender(gender); err != nil {
		return "gender must be one of: male, female"
	}
	return ""
}

func protocolList() string {
	names := make([]string, 0, len(bodycomp.Protocols()))
	for _, protocol := range bodycomp.Protocols() {
		names = append(names, protocol.String())
	}
	return strings.Join(names, ", ")
}

func siteList(sites []bodycomp.Site) string {
	names := make([]string, 0, len(sites))
	for _, site := range sites {
		names = append(names, string(site))
	}
	return strings.Join(names, ", ")
}
