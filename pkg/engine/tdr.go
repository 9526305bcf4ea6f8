package engine

import "math"

func (e *Evaluator) calculateTDR(r *run, project ProjectInput, fsi FSIResult) TDRResult {
	applied := []string{"udcpr_2020_10.2.1", "udcpr_2020_10.2.3"}

	canReceive := project.PlotAreaSqm >= tdrMinPlotAreaSqm

	maxLoadable := 0.0
	if canReceive {
		maxLoadable = fsi.BaseFSI * tdrLoadableShare
	}

	gap := fsi.ProposedFSI - fsi.PermissibleFSI
	needed := math.Max(0, gap)
	canSolve := needed > 0 && needed <= maxLoadable

	areaNeeded := needed * project.PlotAreaSqm
	estimatedCost := areaNeeded * tdrCostPerSqm

	r.step(CalculationStep{
		StepID:      "tdr_analysis",
		Description: "TDR eligibility and requirement analysis",
		RuleIDs:     applied,
		Inputs: map[string]any{
			"plot_area_sqm":   project.PlotAreaSqm,
			"can_receive_tdr": canReceive,
			"fsi_gap":         gap,
		},
		Result: maxLoadable,
		Units:  "FSI ratio",
	})

	return TDRResult{
		CanReceiveTDR:   canReceive,
		MaxLoadableFSI:  maxLoadable,
		NeededFSI:       needed,
		CanSolveDeficit: canSolve,
		CostPerSqm:      tdrCostPerSqm,
		AreaNeededSqm:   areaNeeded,
		EstimatedCost:   estimatedCost,
		AppliedRules:    applied,
	}
}
