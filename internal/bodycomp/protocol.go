package bodycomp

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownProtocol = errors.New("unknown protocol")
	ErrUnknownGender   = errors.New("unknown gender")
)

// Protocol selects how body density (or body-fat directly) is obtained.
type Protocol int

const (
	Pollock3 Protocol = iota + 1
	Pollock7
	Guedes
	Bioimpedance
)

var protocolNames = map[Protocol]string{
	Pollock3:     "pollock3",
	Pollock7:     "pollock7",
	Guedes:       "guedes",
	Bioimpedance: "bioimpedance",
}

// Protocols returns every supported protocol in declaration order.
func Protocols() []Protocol {
	return []Protocol{Pollock3, Pollock7, Guedes, Bioimpedance}
}

// ParseProtocol matches the exact, case-sensitive identifier.
func ParseProtocol(value string) (Protocol, error) {
	for _, protocol := range Protocols() {
		if protocolNames[protocol] == value {
			return protocol, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownProtocol, value)
}

func (p Protocol) String() string {
	if name, ok := protocolNames[p]; ok {
		return name
	}
	return fmt.Sprintf("protocol(%d)", int(p))
}

func (p Protocol) Valid() bool {
	_, ok := protocolNames[p]
	return ok
}

func (p Protocol) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProtocol, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Protocol) UnmarshalText(text []byte) error {
	parsed, err := ParseProtocol(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Sites lists the skinfold sites summed by the protocol for the given gender.
// Bioimpedance uses none.
func (p Protocol) Sites(gender Gender) []Site {
	switch p {
	case Pollock3:
		if gender == Male {
			return []Site{Chest, Abdominal, Thigh}
		}
		return []Site{Triceps, Suprailiac, Thigh}
	case Pollock7:
		return AllSites()
	case Guedes:
		if gender == Male {
			return []Site{Triceps, Suprailiac, Abdominal}
		}
		return []Site{Suprailiac, Thigh, Subscapular}
	case Bioimpedance:
		return nil
	default:
		return nil
	}
}

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

func ParseGender(value string) (Gender, error) {
	switch Gender(value) {
	case Male, Female:
		return Gender(value), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGender, value)
	}
}
