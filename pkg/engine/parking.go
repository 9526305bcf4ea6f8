package engine

import (
	"fmt"
	"math"

	"github.com/coolbeans/bylaw/pkg/extract"
	"github.com/coolbeans/bylaw/pkg/rank"
)

func (e *Evaluator) calculateParking(r *run, project ProjectInput) ParkingResult {
	ratio, source, applied := e.lookupParkingRatio(project)
	norm := fmt.Sprintf("1 ECS per %d sqm", int(ratio))

	requiredECS := int(math.Ceil(project.ProposedBuiltUpSqm / ratio))

	totalParkingArea := float64(requiredECS) * areaPerECSSqm
	availableArea := project.PlotAreaSqm * parkingPlotShare
	deficit := math.Max(0, totalParkingArea-availableArea)
	mechanicalAllowed := requiredECS > mechanicalECSMinimum
	parkingFloorsNeeded := int(totalParkingArea/project.PlotAreaSqm) + 1

	r.step(CalculationStep{
		StepID:      "parking_calc",
		Description: fmt.Sprintf("Parking requirement: %s (%s)", norm, source),
		RuleIDs:     applied,
		Inputs: map[string]any{
			"use_type":     string(project.UseType),
			"built_up_sqm": project.ProposedBuiltUpSqm,
		},
		Formula: "ceil(built_up_sqm / ratio_sqm_per_ecs)",
		Result:  requiredECS,
		Units:   "ECS",
	})

	return ParkingResult{
		RequiredECS:         requiredECS,
		Norm:                norm,
		RatioSqmPerECS:      ratio,
		AreaPerECSSqm:       areaPerECSSqm,
		TotalParkingAreaSqm: totalParkingArea,
		AvailableAreaSqm:    availableArea,
		DeficitSqm:          deficit,
		MechanicalAllowed:   mechanicalAllowed,
		ParkingFloorsNeeded: parkingFloorsNeeded,
		Source:              source,
		AppliedRules:        applied,
	}
}

// lookupParkingRatio scans ranked parking clauses for an extractable
// ECS ratio, falling back to the per-use-type default table.
func (e *Evaluator) lookupParkingRatio(project ProjectInput) (float64, string, []string) {
	candidates := candidateClauses(e.corpus, project.Jurisdiction, parkingCandidateKeywords)
	ranked := rank.Rank(candidates, rank.Query{
		UseType:        project.UseType,
		Jurisdiction:   project.Jurisdiction,
		DomainKeywords: rank.ParkingKeywords,
	})

	for index, candidate := range ranked {
		if index >= parkingScanLimit {
			break
		}
		if ratio, ok := extract.Parking(candidate.Clause.Text); ok {
			return ratio.SqmPerECS, SourceCorpus, []string{candidate.Clause.ID}
		}
	}

	ratio := defaultParkingRatio(project.UseType)
	return ratio, SourceDefault, []string{fmt.Sprintf("default_parking_%s", project.UseType.Keyword())}
}
