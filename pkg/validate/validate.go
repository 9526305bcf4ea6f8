// Package validate independently corroborates evaluation results
// against the regulation corpus. The validator re-derives candidate
// values with its own (deliberately looser) extraction instead of
// reusing the evaluator's pick, compares within per-domain tolerances,
// and scores confidence. It also verifies that every cited clause
// belongs to the project's jurisdiction.
package validate

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/coolbeans/bylaw/pkg/corpus"
	"github.com/coolbeans/bylaw/pkg/engine"
)

// Status is the outcome of a single validation check.
type Status string

const (
	StatusPass      Status = "pass"
	StatusWarning   Status = "warning"
	StatusFail      Status = "fail"
	StatusUncertain Status = "uncertain"
)

// Confidence grades how strongly the corpus supports a result.
type Confidence string

const (
	ConfidenceHigh      Confidence = "high"
	ConfidenceMedium    Confidence = "medium"
	ConfidenceLow       Confidence = "low"
	ConfidenceUncertain Confidence = "uncertain"
)

// score maps a confidence level onto the 4/3/2/1 scale used for the
// aggregate.
func (c Confidence) score() float64 {
	switch c {
	case ConfidenceHigh:
		return 4
	case ConfidenceMedium:
		return 3
	case ConfidenceLow:
		return 2
	}
	return 1
}

// Alternative is a corpus value that disagrees with the evaluator's
// pick, offered for manual review.
type Alternative struct {
	Value   float64 `json:"value"`
	RuleID  string  `json:"rule_id"`
	Excerpt string  `json:"excerpt"`
}

// CheckResult is the outcome of one validation check.
type CheckResult struct {
	Name         string         `json:"name"`
	Status       Status         `json:"status"`
	Confidence   Confidence     `json:"confidence"`
	Message      string         `json:"message"`
	Details      map[string]any `json:"details"`
	AppliedRules []string       `json:"applied_rules"`
	Alternatives []Alternative  `json:"alternative_values,omitempty"`
}

// Report aggregates all checks for one evaluation.
type Report struct {
	OverallConfidence Confidence    `json:"overall_confidence"`
	ConfidenceScore   string        `json:"confidence_score"`
	Checks            []CheckResult `json:"validations"`
	Warnings          []string      `json:"warnings"`
	Failures          []string      `json:"failures"`
	Recommendation    string        `json:"recommendation"`
}

// Tolerances for value corroboration.
const (
	fsiTolerance     = 0.1
	parkingTolerance = 1.0
)

// Validator re-checks evaluator output against a corpus snapshot.
type Validator struct {
	corpus *corpus.Corpus
}

// New creates a validator over the given corpus snapshot.
func New(c *corpus.Corpus) *Validator {
	return &Validator{corpus: c}
}

// clauseScanLimit bounds how many candidate clauses each check reads.
const clauseScanLimit = 10

// Loose value patterns: the validator intentionally casts a wider net
// than the evaluator's extraction so disagreements surface.
var (
	looseFSIPattern     = regexp.MustCompile(`(?i)fsi.*?(\d+\.?\d*)`)
	looseParkingPattern = regexp.MustCompile(`(?i)1\s+ecs\s+per\s+(\d+)`)
)

// Plausible FSI band for the loose pattern; values outside are noise.
const (
	looseFSIMin = 0.5
	looseFSIMax = 5.0
)

// ValidateFSI corroborates the evaluator's base FSI against the corpus.
func (v *Validator) ValidateFSI(project engine.ProjectInput, fsi engine.FSIResult) CheckResult {
	useKeyword := project.UseType.Keyword()

	var found []Alternative
	clauses := candidateClauses(v.corpus, project, "fsi", "floor space index")
	for index, clause := range clauses {
		if index >= clauseScanLimit {
			break
		}
		if !strings.Contains(clause.SearchText(), useKeyword) {
			continue
		}
		for _, match := range looseFSIPattern.FindAllStringSubmatch(clause.Text, -1) {
			value, err := strconv.ParseFloat(match[1], 64)
			if err != nil || value < looseFSIMin || value > looseFSIMax {
				continue
			}
			found = append(found, Alternative{
				Value:   value,
				RuleID:  clause.ID,
				Excerpt: excerpt(clause.Text),
			})
		}
	}

	var matching []Alternative
	for _, candidate := range found {
		if math.Abs(candidate.Value-fsi.BaseFSI) < fsiTolerance {
			matching = append(matching, candidate)
		}
	}

	switch {
	case len(matching) > 0:
		return CheckResult{
			Name:       "fsi",
			Status:     StatusPass,
			Confidence: ConfidenceHigh,
			Message:    fmt.Sprintf("FSI %g validated against %d regulation(s)", fsi.BaseFSI, len(matching)),
			Details: map[string]any{
				"engine_fsi":          fsi.BaseFSI,
				"matching_rules":      len(matching),
				"total_rules_checked": len(clauses),
			},
			AppliedRules: ruleIDs(matching),
		}
	case len(found) > 0:
		alternatives := closest(found, fsi.BaseFSI, 3)
		return CheckResult{
			Name:       "fsi",
			Status:     StatusWarning,
			Confidence: ConfidenceMedium,
			Message:    fmt.Sprintf("FSI %g does not match regulations; found %d alternative value(s)", fsi.BaseFSI, len(found)),
			Details: map[string]any{
				"engine_fsi":          fsi.BaseFSI,
				"alternatives_found":  len(found),
				"closest_alternative": alternatives[0].Value,
			},
			AppliedRules: fsi.AppliedRules,
			Alternatives: alternatives,
		}
	}
	return CheckResult{
		Name:       "fsi",
		Status:     StatusUncertain,
		Confidence: ConfidenceLow,
		Message:    fmt.Sprintf("Could not validate FSI %g - no matching regulations found", fsi.BaseFSI),
		Details: map[string]any{
			"engine_fsi":     fsi.BaseFSI,
			"rules_searched": len(clauses),
		},
		AppliedRules: fsi.AppliedRules,
	}
}

// ValidateParking corroborates the parking ratio against the corpus.
func (v *Validator) ValidateParking(project engine.ProjectInput, parking engine.ParkingResult) CheckResult {
	var found []Alternative
	clauses := candidateClauses(v.corpus, project, "parking", "ecs")
	for index, clause := range clauses {
		if index >= clauseScanLimit {
			break
		}
		for _, match := range looseParkingPattern.FindAllStringSubmatch(clause.Text, -1) {
			value, err := strconv.ParseFloat(match[1], 64)
			if err != nil || value <= 0 {
				continue
			}
			found = append(found, Alternative{
				Value:   value,
				RuleID:  clause.ID,
				Excerpt: excerpt(clause.Text),
			})
		}
	}

	var matching []Alternative
	for _, candidate := range found {
		if math.Abs(candidate.Value-parking.RatioSqmPerECS) < parkingTolerance {
			matching = append(matching, candidate)
		}
	}

	switch {
	case len(matching) > 0:
		return CheckResult{
			Name:       "parking",
			Status:     StatusPass,
			Confidence: ConfidenceHigh,
			Message:    fmt.Sprintf("Parking ratio 1 ECS per %g sqm validated", parking.RatioSqmPerECS),
			Details: map[string]any{
				"engine_ratio":   parking.RatioSqmPerECS,
				"matching_rules": len(matching),
			},
			AppliedRules: ruleIDs(matching),
		}
	case len(found) > 0:
		alternatives := closest(found, parking.RatioSqmPerECS, 3)
		return CheckResult{
			Name:       "parking",
			Status:     StatusWarning,
			Confidence: ConfidenceMedium,
			Message:    fmt.Sprintf("Parking ratio %g does not match regulations", parking.RatioSqmPerECS),
			Details: map[string]any{
				"engine_ratio":       parking.RatioSqmPerECS,
				"alternatives_found": len(found),
			},
			AppliedRules: parking.AppliedRules,
			Alternatives: alternatives,
		}
	}
	return CheckResult{
		Name:       "parking",
		Status:     StatusUncertain,
		Confidence: ConfidenceLow,
		Message:    fmt.Sprintf("Could not validate parking ratio %g", parking.RatioSqmPerECS),
		Details: map[string]any{
			"engine_ratio":   parking.RatioSqmPerECS,
			"rules_searched": len(clauses),
		},
		AppliedRules: parking.AppliedRules,
	}
}

// ValidateJurisdiction verifies that every cited clause present in the
// corpus belongs to the project's jurisdiction. Synthetic default rule
// ids are not in the corpus and are skipped. A mismatch is a failure,
// not a warning.
func (v *Validator) ValidateJurisdiction(project engine.ProjectInput, result *engine.EvaluationResult) CheckResult {
	cited := citedRules(result)

	var mismatched []map[string]string
	for _, ruleID := range cited {
		clause, ok := v.corpus.ByID(ruleID)
		if !ok {
			continue
		}
		if clause.Jurisdiction.Normalized() == "" {
			continue
		}
		if !clause.Jurisdiction.Equal(project.Jurisdiction) {
			mismatched = append(mismatched, map[string]string{
				"rule_id":              ruleID,
				"rule_jurisdiction":    string(clause.Jurisdiction),
				"project_jurisdiction": string(project.Jurisdiction),
			})
		}
	}

	if len(mismatched) == 0 {
		return CheckResult{
			Name:       "jurisdiction",
			Status:     StatusPass,
			Confidence: ConfidenceHigh,
			Message:    fmt.Sprintf("All applied rules match jurisdiction: %s", project.Jurisdiction),
			Details: map[string]any{
				"project_jurisdiction": string(project.Jurisdiction),
				"rules_checked":        len(cited),
			},
			AppliedRules: cited,
		}
	}
	return CheckResult{
		Name:       "jurisdiction",
		Status:     StatusFail,
		Confidence: ConfidenceLow,
		Message:    fmt.Sprintf("Jurisdiction mismatch: %d rule(s) from wrong jurisdiction", len(mismatched)),
		Details: map[string]any{
			"project_jurisdiction": string(project.Jurisdiction),
			"mismatched_rules":     mismatched,
		},
		AppliedRules: cited,
	}
}

// Validate runs all checks and aggregates them into a report.
func (v *Validator) Validate(project engine.ProjectInput, result *engine.EvaluationResult) *Report {
	checks := []CheckResult{
		v.ValidateFSI(project, result.FSI),
		v.ValidateParking(project, result.Parking),
		v.ValidateJurisdiction(project, result),
	}

	var total float64
	var warnings, failures []string
	for _, check := range checks {
		total += check.Confidence.score()
		switch check.Status {
		case StatusWarning:
			warnings = append(warnings, check.Name)
		case StatusFail:
			failures = append(failures, check.Name)
		}
	}
	average := total / float64(len(checks))

	var overall Confidence
	switch {
	case average >= 3.5:
		overall = ConfidenceHigh
	case average >= 2.5:
		overall = ConfidenceMedium
	case average >= 1.5:
		overall = ConfidenceLow
	default:
		overall = ConfidenceUncertain
	}

	return &Report{
		OverallConfidence: overall,
		ConfidenceScore:   fmt.Sprintf("%.1f/4.0", average),
		Checks:            checks,
		Warnings:          warnings,
		Failures:          failures,
		Recommendation:    recommendation(overall, warnings, failures),
	}
}

// recommendation applies the fixed decision table: failures dominate,
// then warnings, then the confidence tier.
func recommendation(confidence Confidence, warnings, failures []string) string {
	switch {
	case len(failures) > 0:
		return fmt.Sprintf("CAUTION: %d validation failure(s). Review applied rules and verify jurisdiction match.", len(failures))
	case len(warnings) > 0:
		return fmt.Sprintf("REVIEW: %d warning(s). Consider alternative values from regulations.", len(warnings))
	case confidence == ConfidenceHigh:
		return "APPROVED: High confidence. Results validated against regulations."
	case confidence == ConfidenceMedium:
		return "ACCEPTABLE: Medium confidence. Results appear reasonable but verify with authorities."
	}
	return "UNCERTAIN: Low confidence. Manual verification strongly recommended."
}

// candidateClauses mirrors the evaluator's widening lookup so the
// validator sees at least the same candidate pool.
func candidateClauses(c *corpus.Corpus, project engine.ProjectInput, keywords ...string) []corpus.Clause {
	clauses := corpus.FilterAny(c.ByJurisdiction(project.Jurisdiction), keywords...)
	if len(clauses) == 0 {
		clauses = c.FilterAny(keywords...)
	}
	return clauses
}

// citedRules collects every clause id the evaluator cited across domain
// results, de-duplicated in first-seen order.
func citedRules(result *engine.EvaluationResult) []string {
	seen := make(map[string]bool)
	var cited []string
	for _, group := range [][]string{
		result.FSI.AppliedRules,
		result.Setbacks.AppliedRules,
		result.Parking.AppliedRules,
		result.Height.AppliedRules,
		result.TDR.AppliedRules,
	} {
		for _, ruleID := range group {
			if ruleID == "" || seen[ruleID] {
				continue
			}
			seen[ruleID] = true
			cited = append(cited, ruleID)
		}
	}
	return cited
}

func ruleIDs(alternatives []Alternative) []string {
	ids := make([]string, 0, len(alternatives))
	for _, alternative := range alternatives {
		ids = append(ids, alternative.RuleID)
	}
	return ids
}

// closest returns up to n alternatives ordered by distance from the
// engine value.
func closest(alternatives []Alternative, target float64, n int) []Alternative {
	sorted := make([]Alternative, len(alternatives))
	copy(sorted, alternatives)
	sort.SliceStable(sorted, func(i, j int) bool {
		return math.Abs(sorted[i].Value-target) < math.Abs(sorted[j].Value-target)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

const excerptLength = 150

func excerpt(text string) string {
	if len(text) <= excerptLength {
		return text
	}
	return text[:excerptLength]
}
