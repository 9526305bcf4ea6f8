package engine

import (
	"github.com/coolbeans/bylaw/pkg/corpus"
	"github.com/coolbeans/bylaw/pkg/extract"
	"github.com/coolbeans/bylaw/pkg/rank"
	"github.com/coolbeans/bylaw/pkg/types"
)

// BaseFSI is the outcome of a base-FSI derivation: the ratio plus its
// provenance.
type BaseFSI struct {
	Value        float64
	Source       string
	AppliedRules []string
	Context      string
}

// FSIStrategy derives the base FSI for a project. The two
// implementations (closed-form formulas and corpus-backed extraction)
// are interchangeable so they can be compared against the same
// property suite.
type FSIStrategy interface {
	Name() string
	BaseFSI(c *corpus.Corpus, project ProjectInput) BaseFSI
}

// FixedFormula derives base FSI from closed-form use-type rules,
// ignoring the corpus.
type FixedFormula struct{}

func (FixedFormula) Name() string { return "fixed_formula" }

func (FixedFormula) BaseFSI(_ *corpus.Corpus, project ProjectInput) BaseFSI {
	var value float64
	switch project.UseType {
	case types.UseResidential:
		// Large plots get a reduced base.
		if project.PlotAreaSqm > 4000 {
			value = 0.8
		} else {
			value = 1.0
		}
	case types.UseCommercial:
		value = 1.5
	case types.UseIndustrial:
		value = 1.0
	case types.UseMixed:
		value = 1.2
	default:
		value = 1.0
	}
	return BaseFSI{
		Value:        value,
		Source:       SourceFormula,
		AppliedRules: []string{"udcpr_2020_3.1.1"},
		Context:      "formula",
	}
}

// CorpusBacked derives base FSI by ranking FSI clauses and extracting
// the first usable value, falling back to the default table.
type CorpusBacked struct{}

func (CorpusBacked) Name() string { return "corpus_backed" }

func (CorpusBacked) BaseFSI(c *corpus.Corpus, project ProjectInput) BaseFSI {
	candidates := candidateClauses(c, project.Jurisdiction, fsiCandidateKeywords)
	ranked := rank.Rank(candidates, rank.Query{
		UseType:        project.UseType,
		Jurisdiction:   project.Jurisdiction,
		PlotAreaSqm:    project.PlotAreaSqm,
		DomainKeywords: rank.FSIKeywords,
	})

	for index, candidate := range ranked {
		if index >= fsiScanLimit {
			break
		}
		if value, ok := extract.FSI(candidate.Clause.Text); ok {
			return BaseFSI{
				Value:        value.Value,
				Source:       SourceCorpus,
				AppliedRules: []string{candidate.Clause.ID},
				Context:      value.Context,
			}
		}
	}

	return BaseFSI{
		Value:        defaultBaseFSI(project.Jurisdiction, project.UseType),
		Source:       SourceDefault,
		AppliedRules: []string{defaultRuleID(project.Jurisdiction, project.UseType)},
		Context:      "default",
	}
}
