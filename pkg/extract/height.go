package extract

import (
	"regexp"
	"strings"
)

// Height context tags.
const (
	ContextHeightMaximum   = "maximum"
	ContextHeightNotExceed = "not_exceed"
	ContextHeightUpTo      = "up_to"
)

var heightPatterns = []struct {
	pattern *regexp.Regexp
	context string
}{
	// "maximum height of 24 m"
	{regexp.MustCompile(`maximum\s+height\s+(?:of\s+)?(\d+\.?\d*)\s*(?:m|meter)`), ContextHeightMaximum},
	// "height shall not exceed 45 m"
	{regexp.MustCompile(`height\s+shall\s+not\s+exceed\s+(\d+\.?\d*)\s*(?:m|meter)`), ContextHeightNotExceed},
	// "up to 70 m height"
	{regexp.MustCompile(`up\s+to\s+(\d+\.?\d*)\s*(?:m|meter)\s+height`), ContextHeightUpTo},
}

// HeightLimit is a building height limit extracted from clause text.
type HeightLimit struct {
	Meters  float64
	Context string
}

// Height extracts a height limit from clause text. Patterns are tried
// in order and the first match wins.
func Height(text string) (HeightLimit, bool) {
	lower := strings.ToLower(text)

	for _, candidate := range heightPatterns {
		match := candidate.pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		value, ok := parseFloat(match[1])
		if !ok {
			continue
		}
		return HeightLimit{Meters: value, Context: candidate.context}, true
	}
	return HeightLimit{}, false
}
