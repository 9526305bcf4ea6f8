package engine

import (
	"fmt"
	"strings"

	"github.com/coolbeans/bylaw/pkg/types"
)

// Scan depth over ranked clauses before falling back to defaults.
const (
	fsiScanLimit     = 10
	setbackScanLimit = 10
	heightScanLimit  = 10
	parkingScanLimit = 5
)

// Candidate-gathering keyword sets per domain.
var (
	fsiCandidateKeywords     = []string{"fsi", "floor space index"}
	parkingCandidateKeywords = []string{"parking", "ecs"}
	setbackCandidateKeywords = []string{"setback", "margin", "building line"}
	heightCandidateKeywords  = []string{"height", "storey", "floor"}
)

// baseFSIDefaults is the fallback base-FSI table keyed by jurisdiction
// and use type, applied when no corpus clause yields a value.
var baseFSIDefaults = map[types.Jurisdiction]map[types.UseType]float64{
	types.JurisdictionMaharashtra: {
		types.UseCommercial:  2.0,
		types.UseResidential: 1.0,
		types.UseIndustrial:  1.0,
		types.UseMixed:       1.2,
	},
	types.JurisdictionMumbai: {
		types.UseCommercial:  2.5,
		types.UseResidential: 1.33,
		types.UseIndustrial:  1.0,
		types.UseMixed:       1.5,
	},
}

func defaultBaseFSI(jurisdiction types.Jurisdiction, useType types.UseType) float64 {
	if byUse, ok := baseFSIDefaults[jurisdiction]; ok {
		if value, ok := byUse[useType]; ok {
			return value
		}
	}
	return 1.0
}

// defaultRuleID is the synthetic citation used when a default table
// value applies instead of an extracted clause.
func defaultRuleID(jurisdiction types.Jurisdiction, useType types.UseType) string {
	return fmt.Sprintf("%s_default_%s", jurisdiction, strings.ToLower(string(useType)))
}

// parkingRatioDefaults is the fallback parking norm in sqm per ECS.
var parkingRatioDefaults = map[types.UseType]float64{
	types.UseResidential: 100,
	types.UseCommercial:  50,
	types.UseIndustrial:  150,
	types.UseMixed:       75,
}

func defaultParkingRatio(useType types.UseType) float64 {
	if ratio, ok := parkingRatioDefaults[useType]; ok {
		return ratio
	}
	return 100
}

// Parking constants: space per ECS including circulation, and the share
// of the plot usable for surface parking.
const (
	areaPerECSSqm        = 25.0
	parkingPlotShare     = 0.3
	mechanicalECSMinimum = 20
)

// frontSetbackM is the road-width-tiered front setback.
func frontSetbackM(roadWidthM float64) float64 {
	switch {
	case roadWidthM >= 30:
		return 9.0
	case roadWidthM >= 18:
		return 6.0
	case roadWidthM >= 12:
		return 4.5
	case roadWidthM >= 9:
		return 3.0
	case roadWidthM >= 6:
		return 1.5
	}
	return 1.0
}

// cornerRelaxation is the front-setback multiplier for corner plots.
const cornerRelaxation = 0.75

// sideSetbackM is the plot-area-tiered side setback, before the
// height surcharge.
func sideSetbackM(plotAreaSqm float64) float64 {
	switch {
	case plotAreaSqm <= 125:
		return 0.0
	case plotAreaSqm <= 250:
		return 1.0
	case plotAreaSqm <= 500:
		return 1.5
	}
	return 3.0
}

// rearSetbackM is the plot-area-tiered rear setback.
func rearSetbackM(plotAreaSqm float64) float64 {
	switch {
	case plotAreaSqm <= 125:
		return 1.0
	case plotAreaSqm <= 250:
		return 1.5
	case plotAreaSqm <= 500:
		return 2.0
	}
	return 3.0
}

const minOpenSpacePercent = 20.0

// heightTier returns the road-width-tiered height envelope.
func heightTier(roadWidthM float64) (maxHeightM float64, maxFloors int) {
	switch {
	case roadWidthM >= 30:
		return 100.0, 30
	case roadWidthM >= 18:
		return 70.0, 21
	case roadWidthM >= 12:
		return 45.0, 14
	case roadWidthM >= 9:
		return 24.0, 7
	case roadWidthM >= 6:
		return 15.0, 4
	}
	return 10.0, 3
}

// Height constants.
const (
	todHeightMultiplier      = 1.5
	defaultFloorHeightM      = 3.0
	minFloorHeightCommercial = 3.0
	minFloorHeightOther      = 2.75
)

// TDR constants.
const (
	tdrMinPlotAreaSqm = 1000.0
	tdrLoadableShare  = 0.20
	tdrCostPerSqm     = 15000.0
)

// FSI constants.
const premiumFSIShare = 0.20
