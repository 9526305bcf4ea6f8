// Package corpus holds the in-memory collection of extracted regulation
// clauses. A corpus is loaded once, indexed by id and jurisdiction, and
// never mutated afterwards; reloading produces a fresh snapshot.
package corpus

import (
	"strings"

	"github.com/coolbeans/bylaw/pkg/types"
)

// Clause is one atomic unit of extracted regulation text. The JSON field
// names are the wire shape produced by the ingestion pipeline.
type Clause struct {
	// ID is the unique citation id (e.g. "maharashtra_udcpr_2_00").
	ID string `json:"rule_id" yaml:"rule_id"`

	// Title is the clause heading as extracted.
	Title string `json:"title" yaml:"title"`

	// Jurisdiction tags the governing document set.
	Jurisdiction types.Jurisdiction `json:"jurisdiction" yaml:"jurisdiction"`

	// ClauseNumber is the hierarchical clause number (e.g. "3.1.2").
	ClauseNumber string `json:"clause_number" yaml:"clause_number"`

	// Text is the clause body as extracted.
	Text string `json:"clause_text" yaml:"clause_text"`

	// Chapter and Section are optional provenance fields.
	Chapter string `json:"chapter,omitempty" yaml:"chapter,omitempty"`
	Section string `json:"section,omitempty" yaml:"section,omitempty"`
}

// SearchText returns the lower-cased concatenation of title and body,
// the haystack every keyword filter and ranker operates on.
func (c Clause) SearchText() string {
	return strings.ToLower(c.Title + " " + c.Text)
}

// ContainsAny reports whether the clause text contains at least one of
// the given keywords (case-insensitive).
func (c Clause) ContainsAny(keywords ...string) bool {
	text := c.SearchText()
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// ContainsAll reports whether the clause text contains every one of the
// given keywords (case-insensitive).
func (c Clause) ContainsAll(keywords ...string) bool {
	text := c.SearchText()
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if !strings.Contains(text, strings.ToLower(keyword)) {
			return false
		}
	}
	return true
}

// FilterAny returns, in order, the clauses whose text contains at least
// one of the keywords.
func FilterAny(clauses []Clause, keywords ...string) []Clause {
	var matched []Clause
	for _, clause := range clauses {
		if clause.ContainsAny(keywords...) {
			matched = append(matched, clause)
		}
	}
	return matched
}

// FilterAll returns, in order, the clauses whose text contains every one
// of the keywords.
func FilterAll(clauses []Clause, keywords ...string) []Clause {
	var matched []Clause
	for _, clause := range clauses {
		if clause.ContainsAll(keywords...) {
			matched = append(matched, clause)
		}
	}
	return matched
}
