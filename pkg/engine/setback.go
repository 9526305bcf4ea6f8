package engine

import (
	"fmt"

	"github.com/coolbeans/bylaw/pkg/extract"
	"github.com/coolbeans/bylaw/pkg/rank"
)

func (e *Evaluator) calculateSetbacks(r *run, project ProjectInput) SetbackResult {
	// Corpus first: any extracted side overrides its formula tier,
	// sides the clause does not mention keep the formula value.
	extracted, clauseID := e.lookupSetbacks(project)

	source := SourceFormula
	applied := []string{"udcpr_2020_4.2.1", "udcpr_2020_4.2.2", "udcpr_2020_4.2.3"}
	if extracted.Any() {
		source = SourceCorpus
		applied = []string{clauseID}
	}

	front := frontSetbackM(project.RoadWidthM)
	if extracted.FrontM != nil {
		front = *extracted.FrontM
	}
	if project.CornerPlot {
		original := front
		front *= cornerRelaxation
		r.step(CalculationStep{
			StepID:      "setback_corner_relaxation",
			Description: "Corner plot setback relaxation (25% reduction)",
			RuleIDs:     []string{"udcpr_2020_4.5.3"},
			Inputs: map[string]any{
				"corner_plot":      true,
				"original_setback": original,
			},
			Result: front,
			Units:  "m",
		})
	}
	r.step(CalculationStep{
		StepID:      "setback_front",
		Description: fmt.Sprintf("Front setback for road width %gm", project.RoadWidthM),
		RuleIDs:     applied,
		Inputs: map[string]any{
			"road_width_m": project.RoadWidthM,
			"corner_plot":  project.CornerPlot,
		},
		Result: front,
		Units:  "m",
	})

	side := sideSetbackM(project.PlotAreaSqm)
	if extracted.SideM != nil {
		side = *extracted.SideM
	}
	// Taller buildings push the side setback out: 1m per 3m of height
	// above 10m.
	if project.ProposedHeightM > 10 {
		side += (project.ProposedHeightM - 10) / 3.0
	}
	r.step(CalculationStep{
		StepID:      "setback_side",
		Description: fmt.Sprintf("Side setback for plot area %g sqm and height %gm", project.PlotAreaSqm, project.ProposedHeightM),
		RuleIDs:     applied,
		Inputs: map[string]any{
			"plot_area_sqm": project.PlotAreaSqm,
			"height_m":      project.ProposedHeightM,
		},
		Result: side,
		Units:  "m",
	})

	rear := rearSetbackM(project.PlotAreaSqm)
	if extracted.RearM != nil {
		rear = *extracted.RearM
	}
	r.step(CalculationStep{
		StepID:      "setback_rear",
		Description: fmt.Sprintf("Rear setback for plot area %g sqm", project.PlotAreaSqm),
		RuleIDs:     applied,
		Inputs: map[string]any{
			"plot_area_sqm": project.PlotAreaSqm,
		},
		Result: rear,
		Units:  "m",
	})

	depth := project.PlotAreaSqm / project.FrontageM
	totalSetbackArea := (front+rear)*project.FrontageM + 2*side*depth
	openSpacePercent := totalSetbackArea / project.PlotAreaSqm * 100

	return SetbackResult{
		FrontM:                      front,
		SideM:                       side,
		RearM:                       rear,
		TotalSetbackAreaSqm:         totalSetbackArea,
		OpenSpacePercent:            openSpacePercent,
		MinOpenSpaceRequiredPercent: minOpenSpacePercent,
		Source:                      source,
		AppliedRules:                applied,
	}
}

// lookupSetbacks scans ranked setback clauses for extractable per-side
// distances. Returns the first clause that yields at least one side.
func (e *Evaluator) lookupSetbacks(project ProjectInput) (extract.Setbacks, string) {
	candidates := candidateClauses(e.corpus, project.Jurisdiction, setbackCandidateKeywords)
	ranked := rank.Rank(candidates, rank.Query{
		UseType:        project.UseType,
		Jurisdiction:   project.Jurisdiction,
		PlotAreaSqm:    project.PlotAreaSqm,
		DomainKeywords: rank.SetbackKeywords,
	})

	for index, candidate := range ranked {
		if index >= setbackScanLimit {
			break
		}
		if setbacks := extract.Setback(candidate.Clause.Text); setbacks.Any() {
			return setbacks, candidate.Clause.ID
		}
	}
	return extract.Setbacks{}, ""
}
