package extract

import (
	"regexp"
	"strings"
)

var (
	// "1 ECS per 100 sqm", "1 equivalent car space per 50 sq.m"
	parkingPerECSPattern = regexp.MustCompile(`1\s+(?:ecs|equivalent\s+car\s+space)\s+per\s+(\d+)\s*(?:sq\.?\s*m|sqm)`)
	// "100 sqm per ECS"
	parkingInversePattern = regexp.MustCompile(`(\d+)\s*(?:sq\.?\s*m|sqm)\s+per\s+(?:ecs|equivalent\s+car\s+space)`)
)

// ParkingRatio is a parking norm in sqm of built-up area per ECS.
type ParkingRatio struct {
	SqmPerECS float64
	Context   string
}

// Parking extracts a parking ratio from clause text. Both phrasings
// ("1 ECS per X sqm" and "X sqm per ECS") yield the same ratio.
func Parking(text string) (ParkingRatio, bool) {
	lower := strings.ToLower(text)

	for _, pattern := range []*regexp.Regexp{parkingPerECSPattern, parkingInversePattern} {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		ratio, ok := parseFloat(match[1])
		if !ok || ratio <= 0 {
			continue
		}
		return ParkingRatio{SqmPerECS: ratio, Context: "per_ecs"}, true
	}
	return ParkingRatio{}, false
}
