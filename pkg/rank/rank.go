// Package rank orders candidate regulation clauses by how well they
// match a project query. Ranking never filters: the output has the same
// length as the input, ordered best-first.
package rank

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/coolbeans/bylaw/pkg/corpus"
	"github.com/coolbeans/bylaw/pkg/types"
)

// Priority is the coarse match tier, compared before the relevance
// score. Lower values rank first.
type Priority int

const (
	// PriorityExactMatch: clause jurisdiction equals the query
	// jurisdiction and the clause text mentions the use type.
	PriorityExactMatch Priority = iota + 1
	// PriorityJurisdictionMatch: only the jurisdiction matches.
	PriorityJurisdictionMatch
	// PriorityGeneral: the clause declares itself general ("all",
	// "general").
	PriorityGeneral
	// PriorityFallback: no structural match.
	PriorityFallback
)

func (p Priority) String() string {
	switch p {
	case PriorityExactMatch:
		return "EXACT_MATCH"
	case PriorityJurisdictionMatch:
		return "JURISDICTION_MATCH"
	case PriorityGeneral:
		return "GENERAL"
	case PriorityFallback:
		return "FALLBACK"
	}
	return "UNKNOWN"
}

// Query carries the project attributes a clause is ranked against.
type Query struct {
	UseType      types.UseType
	Jurisdiction types.Jurisdiction

	// PlotAreaSqm, when positive, rewards clauses that mention a
	// plot size within 20% of it.
	PlotAreaSqm float64

	// DomainKeywords is the domain-specific keyword set scored for
	// density (e.g. {"fsi", "permissible", "basic"} when ranking FSI
	// clauses). The use-type keyword is always scored in addition.
	DomainKeywords []string
}

// RankedClause wraps a clause with its computed tier and score.
// Instances are ephemeral: they live for one lookup and are discarded.
type RankedClause struct {
	Clause       corpus.Clause
	Priority     Priority
	Relevance    float64
	MatchReasons []string
}

// Relevance score weights.
const (
	useTypeWeight      = 10.0
	jurisdictionWeight = 5.0
	plotAreaWeight     = 3.0
	keywordWeight      = 0.5
)

var plotMentionPattern = regexp.MustCompile(`(\d+)\s*sq`)

// Rank orders clauses by (priority tier, then descending relevance).
// The sort is stable, so corpus insertion order breaks ties. An empty
// input yields an empty output.
func Rank(clauses []corpus.Clause, query Query) []RankedClause {
	useKeyword := query.UseType.Keyword()

	ranked := make([]RankedClause, 0, len(clauses))
	for _, clause := range clauses {
		text := clause.SearchText()
		jurisdictionMatches := clause.Jurisdiction.Equal(query.Jurisdiction)
		useTypeMatches := useKeyword != "" && strings.Contains(text, useKeyword)

		var priority Priority
		switch {
		case jurisdictionMatches && useTypeMatches:
			priority = PriorityExactMatch
		case jurisdictionMatches:
			priority = PriorityJurisdictionMatch
		case strings.Contains(text, "all") || strings.Contains(text, "general"):
			priority = PriorityGeneral
		default:
			priority = PriorityFallback
		}

		var score float64
		var reasons []string

		if useTypeMatches {
			score += useTypeWeight
			reasons = append(reasons, "use_type:"+string(query.UseType))
		}
		if jurisdictionMatches {
			score += jurisdictionWeight
			reasons = append(reasons, "jurisdiction:"+string(query.Jurisdiction))
		}
		if query.PlotAreaSqm > 0 {
			if mentioned, ok := plotAreaMention(text, query.PlotAreaSqm); ok {
				score += plotAreaWeight
				reasons = append(reasons, fmt.Sprintf("plot_area_match:%g", mentioned))
			}
		}

		keywords := append([]string{useKeyword}, query.DomainKeywords...)
		for _, keyword := range keywords {
			if keyword != "" && strings.Contains(text, strings.ToLower(keyword)) {
				score += keywordWeight
			}
		}

		ranked = append(ranked, RankedClause{
			Clause:       clause,
			Priority:     priority,
			Relevance:    score,
			MatchReasons: reasons,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Priority != ranked[j].Priority {
			return ranked[i].Priority < ranked[j].Priority
		}
		return ranked[i].Relevance > ranked[j].Relevance
	})

	return ranked
}

// plotAreaMention reports the first numeric "sqm" mention within 20% of
// the query plot area.
func plotAreaMention(text string, plotArea float64) (float64, bool) {
	for _, match := range plotMentionPattern.FindAllStringSubmatch(text, -1) {
		var mentioned float64
		if _, err := fmt.Sscanf(match[1], "%f", &mentioned); err != nil {
			continue
		}
		if math.Abs(mentioned-plotArea) < plotArea*0.2 {
			return mentioned, true
		}
	}
	return 0, false
}

// Keyword sets scored per ranked domain, mirroring the clause categories
// the evaluator queries.
var (
	FSIKeywords     = []string{"fsi", "permissible", "basic"}
	ParkingKeywords = []string{"parking", "ecs", "sqm"}
	SetbackKeywords = []string{"setback", "margin", "metre"}
	HeightKeywords  = []string{"height", "storey", "floor"}
)
