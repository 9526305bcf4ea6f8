package extract

import (
	"regexp"
	"strings"
)

// FSI context tags, recording which pattern produced the value.
const (
	ContextExplicit = "explicit"
	ContextBasic    = "basic"
	ContextMaximum  = "maximum"
)

// Acceptable FSI range. Values outside it are treated as noise from the
// extraction pipeline (page numbers, clause numbers) and ignored.
const (
	minFSI = 0.1
	maxFSI = 10.0
)

var (
	// "FSI shall be 1.5", "FSI permissible shall be 2.0", "FSI is 1.0"
	fsiExplicitPattern = regexp.MustCompile(`fsi\s+(?:permissible\s+)?(?:shall\s+be|is|of)\s+(\d+\.?\d*)`)
	// "basic FSI 1.1", "base FSI of 1.0"
	fsiBasicPattern = regexp.MustCompile(`(?:basic|base)\s+fsi\s+(?:of\s+)?(\d+\.?\d*)`)
	// "FSI up to 3.0"
	fsiMaximumPattern = regexp.MustCompile(`fsi\s+up\s+to\s+(\d+\.?\d*)`)
)

// FSIValue is an FSI ratio extracted from clause text, with the context
// tag of the pattern that matched.
type FSIValue struct {
	Value   float64
	Context string
}

// FSI extracts an FSI ratio from clause text. When several patterns
// match, a basic/explicit reading wins over a maximum ("up to") one.
func FSI(text string) (FSIValue, bool) {
	lower := strings.ToLower(text)

	var candidates []FSIValue
	collect := func(pattern *regexp.Regexp, context string) {
		for _, match := range pattern.FindAllStringSubmatch(lower, -1) {
			value, ok := parseFloat(match[1])
			if !ok || value < minFSI || value > maxFSI {
				continue
			}
			candidates = append(candidates, FSIValue{Value: value, Context: context})
		}
	}
	collect(fsiExplicitPattern, ContextExplicit)
	collect(fsiBasicPattern, ContextBasic)
	collect(fsiMaximumPattern, ContextMaximum)

	if len(candidates) == 0 {
		return FSIValue{}, false
	}
	for _, candidate := range candidates {
		if candidate.Context == ContextBasic || candidate.Context == ContextExplicit {
			return candidate, true
		}
	}
	return candidates[0], true
}
