package extract

import (
	"regexp"
	"strings"
)

var (
	setbackFrontPattern = regexp.MustCompile(`front\s+(?:setback|margin)\s+(?:of\s+)?(\d+\.?\d*)\s*(?:m|meter)`)
	setbackSidePattern  = regexp.MustCompile(`side\s+(?:setback|margin)\s+(?:of\s+)?(\d+\.?\d*)\s*(?:m|meter)`)
	setbackRearPattern  = regexp.MustCompile(`rear\s+(?:setback|margin)\s+(?:of\s+)?(\d+\.?\d*)\s*(?:m|meter)`)
)

// Setbacks holds per-side setback distances extracted from clause text.
// Each side is independent; a side the text does not mention stays nil
// (absent, not zero).
type Setbacks struct {
	FrontM *float64
	SideM  *float64
	RearM  *float64
}

// Any reports whether at least one side was extracted.
func (s Setbacks) Any() bool {
	return s.FrontM != nil || s.SideM != nil || s.RearM != nil
}

// Setback extracts front/side/rear setback distances (in meters) from
// clause text.
func Setback(text string) Setbacks {
	lower := strings.ToLower(text)

	extractSide := func(pattern *regexp.Regexp) *float64 {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			return nil
		}
		value, ok := parseFloat(match[1])
		if !ok {
			return nil
		}
		return &value
	}

	return Setbacks{
		FrontM: extractSide(setbackFrontPattern),
		SideM:  extractSide(setbackSidePattern),
		RearM:  extractSide(setbackRearPattern),
	}
}
