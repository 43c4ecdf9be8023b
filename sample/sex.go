package sample

import "strings"

// Sex is a parsed sex token.
type Sex uint8

const (
	// SexUnknown is any token that is not recognised.
	SexUnknown Sex = iota
	// SexMale is "M" or "male".
	SexMale
	// SexFemale is "F" or "female".
	SexFemale
)

// ParseSex parses a sex token case-insensitively.
// Unrecognised tokens yield SexUnknown; this is not an error.
func ParseSex(s string) Sex {
	switch {
	case strings.EqualFold(s, "M"), strings.EqualFold(s, "male"):
		return SexMale
	case strings.EqualFold(s, "F"), strings.EqualFold(s, "female"):
		return SexFemale
	default:
		return SexUnknown
	}
}

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	default:
		return "unknown"
	}
}
