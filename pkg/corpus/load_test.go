package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coolbeans/bylaw/pkg/types"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fsi.json", `{
		"rule_id": "udcpr_2020_3.1.1",
		"title": "Basic FSI",
		"jurisdiction": "maharashtra_udcpr",
		"clause_number": "3.1.1",
		"clause_text": "The basic FSI shall be 1.1 for residential zones."
	}`)
	writeFile(t, dir, "parking.yaml", `
rule_id: udcpr_2020_5.3.8
title: Parking norms
jurisdiction: maharashtra_udcpr
clause_number: 5.3.8
clause_text: Provide 1 ECS per 100 sqm of residential built-up area.
`)
	writeFile(t, dir, "notes.txt", "not a clause record")

	c, warnings, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	clause, ok := c.ByID("udcpr_2020_5.3.8")
	if !ok {
		t.Fatal("ByID(udcpr_2020_5.3.8) not found")
	}
	if clause.ClauseNumber != "5.3.8" {
		t.Errorf("ClauseNumber = %q, want %q", clause.ClauseNumber, "5.3.8")
	}
}

func TestLoadSkipsMalformedRecords(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.json", `{"rule_id": "r1", "jurisdiction": "mumbai_dcpr", "clause_text": "FSI shall be 1.33."}`)
	writeFile(t, dir, "broken.json", `{"rule_id": "r2", "clause_text": `)
	writeFile(t, dir, "no-id.json", `{"title": "orphan", "clause_text": "no id here"}`)

	c, warnings, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	c, warnings, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCorpusIndexes(t *testing.T) {
	c := New([]Clause{
		{ID: "a", Jurisdiction: types.JurisdictionMaharashtra, Text: "Front setback of 3 m."},
		{ID: "b", Jurisdiction: types.JurisdictionMumbai, Text: "Provide 1 ECS per 50 sqm."},
		{ID: "a", Jurisdiction: types.JurisdictionMumbai, Text: "duplicate id, dropped"},
	})

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	clause, ok := c.ByID("a")
	if !ok || !clause.Jurisdiction.Equal(types.JurisdictionMaharashtra) {
		t.Error("duplicate id should keep the first record")
	}

	mumbai := c.ByJurisdiction(types.JurisdictionMumbai)
	if len(mumbai) != 1 || mumbai[0].ID != "b" {
		t.Errorf("ByJurisdiction(mumbai) = %v, want [b]", mumbai)
	}

	if got := c.FilterAny("setback", "margin"); len(got) != 1 || got[0].ID != "a" {
		t.Errorf("FilterAny(setback) = %v, want [a]", got)
	}
	if got := c.FilterAll("ecs", "sqm"); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("FilterAll(ecs, sqm) = %v, want [b]", got)
	}
}

func TestStats(t *testing.T) {
	c := New([]Clause{
		{ID: "a", Jurisdiction: types.JurisdictionMaharashtra, Text: "The basic FSI shall be 1.1."},
		{ID: "b", Jurisdiction: types.JurisdictionMaharashtra, Text: "Provide 1 ECS per 100 sqm parking."},
		{ID: "c", Jurisdiction: types.JurisdictionMumbai, Text: "Maximum height of 24 m."},
	})

	stats := c.Stats()
	if stats.TotalClauses != 3 {
		t.Errorf("TotalClauses = %d, want 3", stats.TotalClauses)
	}
	if stats.ByJurisdiction[types.JurisdictionMaharashtra] != 2 {
		t.Errorf("maharashtra count = %d, want 2", stats.ByJurisdiction[types.JurisdictionMaharashtra])
	}
	if stats.ByCategory["fsi"] != 1 {
		t.Errorf("fsi category = %d, want 1", stats.ByCategory["fsi"])
	}
	if stats.ByCategory["parking"] != 1 {
		t.Errorf("parking category = %d, want 1", stats.ByCategory["parking"])
	}
}
