package engine

import (
	"fmt"

	"github.com/coolbeans/bylaw/pkg/extract"
	"github.com/coolbeans/bylaw/pkg/rank"
	"github.com/coolbeans/bylaw/pkg/types"
)

func (e *Evaluator) calculateHeight(r *run, project ProjectInput) HeightResult {
	maxHeight, maxFloors := heightTier(project.RoadWidthM)
	source := SourceFormula
	applied := []string{"udcpr_2020_7.2.1"}

	// A corpus clause with an explicit limit overrides the tier
	// height; the floor cap stays tier-derived.
	if limit, clauseID, ok := e.lookupHeightLimit(project); ok {
		maxHeight = limit.Meters
		source = SourceCorpus
		applied = []string{clauseID}
	}

	r.step(CalculationStep{
		StepID:      "height_calc",
		Description: fmt.Sprintf("Maximum permissible height for road width %gm (%s)", project.RoadWidthM, source),
		RuleIDs:     applied,
		Inputs: map[string]any{
			"road_width_m": project.RoadWidthM,
		},
		Result: maxHeight,
		Units:  "m",
	})

	if project.TODZone {
		maxHeight *= todHeightMultiplier
		maxFloors = int(float64(maxFloors) * todHeightMultiplier)
		r.step(CalculationStep{
			StepID:      "height_tod_bonus",
			Description: "TOD zone height bonus (50% increase)",
			RuleIDs:     []string{"udcpr_2020_6.1.6"},
			Inputs: map[string]any{
				"tod_zone":    true,
				"base_height": maxHeight / todHeightMultiplier,
			},
			Result: maxHeight,
			Units:  "m",
		})
	}

	avgFloorHeight := defaultFloorHeightM
	if project.ProposedFloors > 0 {
		avgFloorHeight = project.ProposedHeightM / float64(project.ProposedFloors)
	}
	minFloorHeight := minFloorHeightOther
	if project.UseType == types.UseCommercial {
		minFloorHeight = minFloorHeightCommercial
	}

	utilization := 0.0
	if maxHeight > 0 {
		utilization = project.ProposedHeightM / maxHeight * 100
	}

	return HeightResult{
		PermissibleHeightM:  maxHeight,
		ProposedHeightM:     project.ProposedHeightM,
		PermissibleFloors:   maxFloors,
		ProposedFloors:      project.ProposedFloors,
		AvgFloorHeightM:     avgFloorHeight,
		MinFloorHeightM:     minFloorHeight,
		FloorHeightAdequate: avgFloorHeight >= minFloorHeight,
		UtilizationPercent:  utilization,
		Source:              source,
		AppliedRules:        applied,
	}
}

// lookupHeightLimit scans ranked height clauses for an extractable
// height limit.
func (e *Evaluator) lookupHeightLimit(project ProjectInput) (extract.HeightLimit, string, bool) {
	candidates := candidateClauses(e.corpus, project.Jurisdiction, heightCandidateKeywords)
	ranked := rank.Rank(candidates, rank.Query{
		UseType:        project.UseType,
		Jurisdiction:   project.Jurisdiction,
		DomainKeywords: rank.HeightKeywords,
	})

	for index, candidate := range ranked {
		if index >= heightScanLimit {
			break
		}
		if limit, ok := extract.Height(candidate.Clause.Text); ok {
			return limit, candidate.Clause.ID, true
		}
	}
	return extract.HeightLimit{}, "", false
}
