package corpus

import (
	"github.com/coolbeans/bylaw/pkg/types"
)

// Corpus is an immutable snapshot of regulation clauses with id and
// jurisdiction indexes. It is safe to share by reference across
// concurrent evaluations; swapping in new clauses means building a new
// Corpus.
type Corpus struct {
	clauses        []Clause
	byID           map[string]int
	byJurisdiction map[types.Jurisdiction][]int
}

// New builds a corpus from the given clauses, preserving their order.
// Clauses with a duplicate id keep the first occurrence.
func New(clauses []Clause) *Corpus {
	c := &Corpus{
		byID:           make(map[string]int, len(clauses)),
		byJurisdiction: make(map[types.Jurisdiction][]int),
	}
	for _, clause := range clauses {
		if _, exists := c.byID[clause.ID]; exists {
			continue
		}
		index := len(c.clauses)
		c.clauses = append(c.clauses, clause)
		c.byID[clause.ID] = index
		jurisdiction := types.Jurisdiction(clause.Jurisdiction.Normalized())
		c.byJurisdiction[jurisdiction] = append(c.byJurisdiction[jurisdiction], index)
	}
	return c
}

// Len returns the number of clauses in the corpus.
func (c *Corpus) Len() int {
	return len(c.clauses)
}

// All returns every clause in insertion order. Callers must treat the
// returned slice as read-only.
func (c *Corpus) All() []Clause {
	return c.clauses
}

// ByID looks up a clause by its citation id.
func (c *Corpus) ByID(id string) (Clause, bool) {
	index, ok := c.byID[id]
	if !ok {
		return Clause{}, false
	}
	return c.clauses[index], true
}

// ByJurisdiction returns, in insertion order, the clauses tagged with
// the given jurisdiction.
func (c *Corpus) ByJurisdiction(jurisdiction types.Jurisdiction) []Clause {
	indexes := c.byJurisdiction[types.Jurisdiction(jurisdiction.Normalized())]
	if len(indexes) == 0 {
		return nil
	}
	clauses := make([]Clause, 0, len(indexes))
	for _, index := range indexes {
		clauses = append(clauses, c.clauses[index])
	}
	return clauses
}

// FilterAny returns the clauses whose text contains at least one of the
// given keywords.
func (c *Corpus) FilterAny(keywords ...string) []Clause {
	return FilterAny(c.clauses, keywords...)
}

// FilterAll returns the clauses whose text contains every one of the
// given keywords.
func (c *Corpus) FilterAll(keywords ...string) []Clause {
	return FilterAll(c.clauses, keywords...)
}

// Stats summarizes the corpus contents.
type Stats struct {
	TotalClauses   int                        `json:"total_clauses"`
	ByJurisdiction map[types.Jurisdiction]int `json:"by_jurisdiction"`
	ByCategory     map[string]int             `json:"by_category"`
}

// categoryKeywords drives the per-category counts in Stats.
var categoryKeywords = map[string][]string{
	"fsi":     {"fsi", "floor space index"},
	"parking": {"parking", "ecs"},
	"setback": {"setback", "margin", "building line"},
	"height":  {"height", "storey"},
}

// Stats returns clause counts by jurisdiction and by regulatory
// category. Categories overlap: a clause mentioning both parking and
// height counts in both.
func (c *Corpus) Stats() Stats {
	stats := Stats{
		TotalClauses:   len(c.clauses),
		ByJurisdiction: make(map[types.Jurisdiction]int, len(c.byJurisdiction)),
		ByCategory:     make(map[string]int, len(categoryKeywords)),
	}
	for jurisdiction, indexes := range c.byJurisdiction {
		stats.ByJurisdiction[jurisdiction] = len(indexes)
	}
	for category, keywords := range categoryKeywords {
		stats.ByCategory[category] = len(c.FilterAny(keywords...))
	}
	return stats
}
