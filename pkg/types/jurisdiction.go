// Package types defines the closed enumerations shared across the
// evaluation engine: jurisdictions and building use types.
package types

import "strings"

// Jurisdiction identifies the governing regulatory document set.
type Jurisdiction string

// Known jurisdictions. The set is extensible: clause records carrying an
// unlisted jurisdiction tag are still loaded and matched by string
// equality, they just have no entry in the default tables.
const (
	JurisdictionMaharashtra Jurisdiction = "maharashtra_udcpr"
	JurisdictionMumbai      Jurisdiction = "mumbai_dcpr"
)

// Known reports whether j is one of the recognized jurisdictions.
func (j Jurisdiction) Known() bool {
	switch j {
	case JurisdictionMaharashtra, JurisdictionMumbai:
		return true
	}
	return false
}

// Normalized returns the lower-cased form used for comparisons against
// clause metadata, which arrives as free-form extracted text.
func (j Jurisdiction) Normalized() string {
	return strings.ToLower(strings.TrimSpace(string(j)))
}

// Equal compares two jurisdiction tags case-insensitively.
func (j Jurisdiction) Equal(other Jurisdiction) bool {
	return j.Normalized() == other.Normalized()
}

func (j Jurisdiction) String() string {
	return string(j)
}

// ParseJurisdiction normalizes a free-form jurisdiction tag. Unknown tags
// are returned as-is so callers can still match them against clause
// metadata by string equality.
func ParseJurisdiction(s string) Jurisdiction {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "maharashtra_udcpr", "maharashtra", "udcpr":
		return JurisdictionMaharashtra
	case "mumbai_dcpr", "mumbai", "dcpr":
		return JurisdictionMumbai
	}
	return Jurisdiction(normalized)
}
