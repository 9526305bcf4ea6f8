package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolbeans/bylaw/pkg/corpus"
	"github.com/coolbeans/bylaw/pkg/engine"
	"github.com/coolbeans/bylaw/pkg/types"
)

func testProject() engine.ProjectInput {
	return engine.ProjectInput{
		Jurisdiction:       types.JurisdictionMaharashtra,
		UseType:            types.UseResidential,
		PlotAreaSqm:        500,
		RoadWidthM:         12,
		FrontageM:          20,
		ProposedFloors:     3,
		ProposedHeightM:    9,
		ProposedBuiltUpSqm: 500,
	}
}

// matchingCorpus corroborates the default tables: base FSI 1.0 and
// 1 ECS per 100 sqm for residential Maharashtra projects.
func matchingCorpus() *corpus.Corpus {
	return corpus.New([]corpus.Clause{
		{
			ID:           "udcpr_2020_3.1.1",
			Jurisdiction: types.JurisdictionMaharashtra,
			Text:         "For residential zones the basic FSI 1.0 shall apply.",
		},
		{
			ID:           "udcpr_2020_5.3.8",
			Jurisdiction: types.JurisdictionMaharashtra,
			Text:         "Residential parking: provide 1 ECS per 100 sqm of built-up area.",
		},
	})
}

func evaluate(t *testing.T, c *corpus.Corpus, project engine.ProjectInput) *engine.EvaluationResult {
	t.Helper()
	result, err := engine.New(c).Evaluate(project)
	require.NoError(t, err)
	return result
}

func TestValidateHighConfidence(t *testing.T) {
	c := matchingCorpus()
	project := testProject()
	result := evaluate(t, c, project)

	report := New(c).Validate(project, result)

	assert.Equal(t, ConfidenceHigh, report.OverallConfidence)
	assert.Equal(t, "4.0/4.0", report.ConfidenceScore)
	assert.Empty(t, report.Warnings)
	assert.Empty(t, report.Failures)
	assert.Contains(t, report.Recommendation, "APPROVED")

	require.Len(t, report.Checks, 3)
	for _, check := range report.Checks {
		assert.Equal(t, StatusPass, check.Status, check.Name)
	}
}

func TestValidateFSIMismatchYieldsAlternatives(t *testing.T) {
	// The corpus disagrees with the engine's fallback value of 1.0.
	c := corpus.New([]corpus.Clause{
		{
			ID:           "udcpr_2020_3.1.4",
			Jurisdiction: types.JurisdictionMaharashtra,
			Text:         "For residential zones the FSI shall be 2.0.",
		},
	})
	project := testProject()
	result := evaluate(t, corpus.New(nil), project)

	check := New(c).ValidateFSI(project, result.FSI)

	assert.Equal(t, StatusWarning, check.Status)
	assert.Equal(t, ConfidenceMedium, check.Confidence)
	require.NotEmpty(t, check.Alternatives)
	assert.Equal(t, 2.0, check.Alternatives[0].Value)
	assert.Equal(t, "udcpr_2020_3.1.4", check.Alternatives[0].RuleID)
}

func TestValidateEmptyCorpusUncertain(t *testing.T) {
	c := corpus.New(nil)
	project := testProject()
	result := evaluate(t, c, project)

	report := New(c).Validate(project, result)

	// FSI and parking cannot be corroborated; jurisdiction still
	// passes because no cited rule exists in the corpus to conflict.
	assert.Equal(t, ConfidenceMedium, report.OverallConfidence)
	assert.Contains(t, report.Recommendation, "ACCEPTABLE")

	fsiCheck := report.Checks[0]
	assert.Equal(t, StatusUncertain, fsiCheck.Status)
	assert.Equal(t, ConfidenceLow, fsiCheck.Confidence)
}

func TestValidateJurisdictionMismatchFails(t *testing.T) {
	// A Mumbai clause wins the lookup for a Maharashtra project once
	// the jurisdiction filter widens to the whole corpus.
	c := corpus.New([]corpus.Clause{
		{
			ID:           "dcpr_2034_3.2.1",
			Jurisdiction: types.JurisdictionMumbai,
			Text:         "For residential zones the basic FSI 1.33 shall apply.",
		},
	})
	project := testProject()
	result := evaluate(t, c, project)
	require.Equal(t, []string{"dcpr_2034_3.2.1"}, result.FSI.AppliedRules)

	report := New(c).Validate(project, result)

	assert.Contains(t, report.Failures, "jurisdiction")
	assert.Contains(t, report.Recommendation, "CAUTION")

	jurisdictionCheck := report.Checks[2]
	assert.Equal(t, StatusFail, jurisdictionCheck.Status)
	assert.Equal(t, ConfidenceLow, jurisdictionCheck.Confidence)
}

func TestValidateParkingCorroborated(t *testing.T) {
	c := corpus.New([]corpus.Clause{
		{
			ID:           "udcpr_2020_5.3.8",
			Jurisdiction: types.JurisdictionMaharashtra,
			Text:         "Provide 1 ECS per 100 sqm of built-up area.",
		},
	})
	project := testProject()
	result := evaluate(t, c, project)

	check := New(c).ValidateParking(project, result.Parking)
	assert.Equal(t, StatusPass, check.Status)
	assert.Equal(t, ConfidenceHigh, check.Confidence)
}

func TestConfidenceScores(t *testing.T) {
	tests := []struct {
		confidence Confidence
		want       float64
	}{
		{ConfidenceHigh, 4},
		{ConfidenceMedium, 3},
		{ConfidenceLow, 2},
		{ConfidenceUncertain, 1},
	}
	for _, tt := range tests {
		if got := tt.confidence.score(); got != tt.want {
			t.Errorf("%s.score() = %g, want %g", tt.confidence, got, tt.want)
		}
	}
}
