package bodycomp

// Site names a caliper measurement location.
type Site string

const (
	Triceps     Site = "triceps"
	Subscapular Site = "subscapular"
	Chest       Site = "chest"
	Axillary    Site = "axillary"
	Suprailiac  Site = "suprailiac"
	Abdominal   Site = "abdominal"
	Thigh       Site = "thigh"
)

// AllSites returns the seven sites in the order Pollock7 lists them.
func AllSites() []Site {
	return []Site{Triceps, Subscapular, Chest, Axillary, Suprailiac, Abdominal, Thigh}
}

func (s Site) Known() bool {
	for _, site := range AllSites() {
		if site == s {
			return true
		}
	}
	return false
}

// Skinfolds holds fold thickness in millimetres per site.
// A site that was not measured is simply absent and contributes 0 to any sum.
type Skinfolds map[Site]float64

func (s Skinfolds) Get(site Site) float64 {
	if s == nil {
		return 0
	}
	return s[site]
}

func (s Skinfolds) Has(site Site) bool {
	if s == nil {
		return false
	}
	_, ok := s[site]
	return ok
}

func (s Skinfolds) Sum(sites ...Site) float64 {
	total := 0.0
	for _, site := range sites {
		total += s.Get(site)
	}
	return total
}
