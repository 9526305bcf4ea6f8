// Package extract pulls numeric regulatory values out of free-text
// regulation clauses using fixed, prioritized pattern sets. Extraction
// is best-effort: absence of a match is reported as a missing value,
// never as an error, and the caller falls back to its default table.
package extract

import "strconv"

func parseFloat(s string) (float64, bool) {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
