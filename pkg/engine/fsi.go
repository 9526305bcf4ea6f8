package engine

import (
	"fmt"
	"regexp"
)

// fsiBonus pairs an eligibility flag with its fixed bonus value. Bonus
// handling is deliberately two-tier: detection (a project flag makes
// the bonus applicable) is separate from valuation (the fixed table
// below). A matched corpus clause contributes only the citation, never
// the value.
type fsiBonus struct {
	name         string
	slug         string
	stepID       string
	description  string
	value        float64
	keywords     []string
	fallbackRule string
	applies      func(ProjectInput) bool
}

var fsiBonuses = []fsiBonus{
	{
		name:         "TOD Zone",
		slug:         "tod_zone",
		stepID:       "fsi_tod_bonus",
		description:  "TOD zone FSI bonus (within 500m of transit station)",
		value:        0.5,
		keywords:     []string{"tod", "transit"},
		fallbackRule: "udcpr_2020_6.1.5",
		applies:      func(p ProjectInput) bool { return p.TODZone },
	},
	{
		name:         "Redevelopment",
		slug:         "redevelopment",
		stepID:       "fsi_redevelopment_bonus",
		description:  "Redevelopment project FSI bonus",
		value:        0.3,
		keywords:     []string{"redevelopment"},
		fallbackRule: "udcpr_2020_8.2.3",
		applies:      func(p ProjectInput) bool { return p.Redevelopment },
	},
	{
		name:         "Slum Rehab",
		slug:         "slum_rehab",
		stepID:       "fsi_slum_rehab_bonus",
		description:  "Slum rehabilitation FSI bonus",
		value:        1.0,
		keywords:     []string{"slum"},
		fallbackRule: "udcpr_2020_9.1.2",
		applies:      func(p ProjectInput) bool { return p.SlumRehab },
	},
	{
		name:        "Green Building",
		slug:        "green_building",
		stepID:      "fsi_green_building_bonus",
		description: "Green building certification FSI bonus",
		value:       0.5,
		keywords:    []string{"green building", "green"},
		applies:     func(p ProjectInput) bool { return p.GreenBuilding },
	},
	{
		name:        "Affordable Housing",
		slug:        "affordable_housing",
		stepID:      "fsi_affordable_housing_bonus",
		description: "Affordable housing FSI bonus",
		value:       0.75,
		keywords:    []string{"affordable"},
		applies:     func(p ProjectInput) bool { return p.AffordableHousing },
	},
}

var numericTokenPattern = regexp.MustCompile(`\d`)

func (e *Evaluator) calculateFSI(r *run, project ProjectInput) FSIResult {
	base := e.strategy.BaseFSI(e.corpus, project)

	r.step(CalculationStep{
		StepID:      "fsi_base",
		Description: fmt.Sprintf("Base FSI for %s (%s)", project.UseType, base.Source),
		RuleIDs:     base.AppliedRules,
		Inputs: map[string]any{
			"use_type":      string(project.UseType),
			"plot_area_sqm": project.PlotAreaSqm,
		},
		Result: base.Value,
		Units:  "ratio",
	})

	var bonusFSI float64
	var bonusDetails []string
	for _, bonus := range fsiBonuses {
		if !bonus.applies(project) {
			continue
		}
		bonusFSI += bonus.value
		bonusDetails = append(bonusDetails, fmt.Sprintf("%s: +%g", bonus.name, bonus.value))
		r.step(CalculationStep{
			StepID:      bonus.stepID,
			Description: bonus.description,
			RuleIDs:     []string{e.bonusCitation(bonus, project)},
			Inputs:      project.conditions(),
			Result:      bonus.value,
			Units:       "ratio",
		})
	}

	premiumAvailable := base.Value * premiumFSIShare
	permissible := base.Value + bonusFSI
	permissibleBuiltUp := project.PlotAreaSqm * permissible
	proposed := project.ProposedBuiltUpSqm / project.PlotAreaSqm

	r.step(CalculationStep{
		StepID:      "fsi_total",
		Description: "Total permissible FSI",
		RuleIDs:     base.AppliedRules,
		Inputs: map[string]any{
			"base_fsi":  base.Value,
			"bonus_fsi": bonusFSI,
		},
		Formula: "base_fsi + bonus_fsi",
		Result:  permissible,
		Units:   "ratio",
	})

	utilization := 0.0
	if permissible > 0 {
		utilization = proposed / permissible * 100
	}

	return FSIResult{
		BaseFSI:               base.Value,
		BonusFSI:              bonusFSI,
		BonusDetails:          bonusDetails,
		PremiumFSIAvailable:   premiumAvailable,
		PermissibleFSI:        permissible,
		PermissibleBuiltUpSqm: permissibleBuiltUp,
		ProposedFSI:           proposed,
		ProposedBuiltUpSqm:    project.ProposedBuiltUpSqm,
		UtilizationPercent:    utilization,
		Source:                base.Source,
		AppliedRules:          base.AppliedRules,
	}
}

// bonusCitation picks the clause id cited for an applicable bonus: the
// first "bonus" clause containing a bonus keyword and a numeric token.
// The returned id is a citation only; the bonus value always comes
// from the fixed table above, regardless of what the clause text says.
func (e *Evaluator) bonusCitation(bonus fsiBonus, project ProjectInput) string {
	for _, clause := range e.corpus.FilterAny("bonus") {
		if !clause.ContainsAny(bonus.keywords...) {
			continue
		}
		if numericTokenPattern.MatchString(clause.Text) {
			return clause.ID
		}
	}
	if bonus.fallbackRule != "" {
		return bonus.fallbackRule
	}
	return fmt.Sprintf("%s_bonus_%s", project.Jurisdiction, bonus.slug)
}
