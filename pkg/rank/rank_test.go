package rank

import (
	"testing"

	"github.com/coolbeans/bylaw/pkg/corpus"
	"github.com/coolbeans/bylaw/pkg/types"
)

func TestPriorityString(t *testing.T) {
	tests := []struct {
		priority Priority
		want     string
	}{
		{PriorityExactMatch, "EXACT_MATCH"},
		{PriorityJurisdictionMatch, "JURISDICTION_MATCH"},
		{PriorityGeneral, "GENERAL"},
		{PriorityFallback, "FALLBACK"},
		{Priority(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.priority.String(); got != tt.want {
			t.Errorf("Priority(%d).String() = %q, want %q", tt.priority, got, tt.want)
		}
	}
}

func TestRankTiers(t *testing.T) {
	clauses := []corpus.Clause{
		{ID: "fallback", Jurisdiction: types.JurisdictionMumbai, Text: "Unrelated clause about drainage."},
		{ID: "sees-all", Jurisdiction: types.JurisdictionMumbai, Text: "Applicable to all building types."},
		{ID: "jurisdiction", Jurisdiction: types.JurisdictionMaharashtra, Text: "FSI norms for industrial sheds."},
		{ID: "exact", Jurisdiction: types.JurisdictionMaharashtra, Text: "FSI for residential buildings shall be 1.1."},
	}

	ranked := Rank(clauses, Query{
		UseType:        types.UseResidential,
		Jurisdiction:   types.JurisdictionMaharashtra,
		DomainKeywords: FSIKeywords,
	})

	if len(ranked) != len(clauses) {
		t.Fatalf("Rank returned %d entries, want %d", len(ranked), len(clauses))
	}

	wantOrder := []string{"exact", "jurisdiction", "sees-all", "fallback"}
	wantTiers := []Priority{PriorityExactMatch, PriorityJurisdictionMatch, PriorityGeneral, PriorityFallback}
	for i, want := range wantOrder {
		if ranked[i].Clause.ID != want {
			t.Errorf("ranked[%d] = %q, want %q", i, ranked[i].Clause.ID, want)
		}
		if ranked[i].Priority != wantTiers[i] {
			t.Errorf("ranked[%d].Priority = %v, want %v", i, ranked[i].Priority, wantTiers[i])
		}
	}
}

func TestRankRelevanceScoring(t *testing.T) {
	clause := corpus.Clause{
		ID:           "r1",
		Jurisdiction: types.JurisdictionMaharashtra,
		Text:         "Residential plots of 500 sqm: basic FSI permissible shall be 1.1.",
	}

	ranked := Rank([]corpus.Clause{clause}, Query{
		UseType:        types.UseResidential,
		Jurisdiction:   types.JurisdictionMaharashtra,
		PlotAreaSqm:    480,
		DomainKeywords: FSIKeywords,
	})

	// use_type 10 + jurisdiction 5 + plot area 3 + keywords
	// (residential, fsi, permissible, basic) at 0.5 each.
	want := 10.0 + 5.0 + 3.0 + 4*0.5
	if got := ranked[0].Relevance; got != want {
		t.Errorf("Relevance = %g, want %g", got, want)
	}
	if len(ranked[0].MatchReasons) != 3 {
		t.Errorf("MatchReasons = %v, want 3 reasons", ranked[0].MatchReasons)
	}
}

func TestRankPlotAreaTolerance(t *testing.T) {
	clause := corpus.Clause{
		ID:           "r1",
		Jurisdiction: types.JurisdictionMaharashtra,
		Text:         "For plots of 1000 sqm the margin shall be 3 m.",
	}

	within := Rank([]corpus.Clause{clause}, Query{
		UseType: types.UseResidential, Jurisdiction: types.JurisdictionMaharashtra, PlotAreaSqm: 900,
	})
	outside := Rank([]corpus.Clause{clause}, Query{
		UseType: types.UseResidential, Jurisdiction: types.JurisdictionMaharashtra, PlotAreaSqm: 500,
	})

	if within[0].Relevance <= outside[0].Relevance {
		t.Errorf("plot mention within 20%% should score higher: %g vs %g",
			within[0].Relevance, outside[0].Relevance)
	}
}

func TestRankStableOnTies(t *testing.T) {
	clauses := []corpus.Clause{
		{ID: "first", Jurisdiction: types.JurisdictionMaharashtra, Text: "General height norms."},
		{ID: "second", Jurisdiction: types.JurisdictionMaharashtra, Text: "General height norms."},
	}

	ranked := Rank(clauses, Query{
		UseType:      types.UseCommercial,
		Jurisdiction: types.JurisdictionMaharashtra,
	})
	if ranked[0].Clause.ID != "first" || ranked[1].Clause.ID != "second" {
		t.Errorf("ties must preserve input order, got [%s %s]",
			ranked[0].Clause.ID, ranked[1].Clause.ID)
	}
}

func TestRankEmptyInput(t *testing.T) {
	if got := Rank(nil, Query{UseType: types.UseResidential}); len(got) != 0 {
		t.Errorf("Rank(nil) = %v, want empty", got)
	}
}
