package types

import "strings"

// UseType is the zoning use category of a building project.
type UseType string

const (
	UseResidential UseType = "Residential"
	UseCommercial  UseType = "Commercial"
	UseIndustrial  UseType = "Industrial"
	UseMixed       UseType = "Mixed"
)

// Known reports whether u is one of the recognized use types.
func (u UseType) Known() bool {
	switch u {
	case UseResidential, UseCommercial, UseIndustrial, UseMixed:
		return true
	}
	return false
}

// Keyword returns the lower-cased form used when matching a use type
// against free-text clause bodies.
func (u UseType) Keyword() string {
	return strings.ToLower(string(u))
}

func (u UseType) String() string {
	return string(u)
}

// ParseUseType normalizes a free-form use-type label.
func ParseUseType(s string) UseType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "residential":
		return UseResidential
	case "commercial":
		return UseCommercial
	case "industrial":
		return UseIndustrial
	case "mixed", "mixed use", "mixed-use":
		return UseMixed
	}
	return UseType(strings.TrimSpace(s))
}
