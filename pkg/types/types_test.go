package types

import "testing"

func TestParseJurisdiction(t *testing.T) {
	tests := []struct {
		input string
		want  Jurisdiction
	}{
		{"maharashtra_udcpr", JurisdictionMaharashtra},
		{"Maharashtra_UDCPR", JurisdictionMaharashtra},
		{"maharashtra", JurisdictionMaharashtra},
		{"udcpr", JurisdictionMaharashtra},
		{"  mumbai_dcpr  ", JurisdictionMumbai},
		{"DCPR", JurisdictionMumbai},
		{"Delhi_MPD", Jurisdiction("delhi_mpd")},
	}

	for _, tt := range tests {
		if got := ParseJurisdiction(tt.input); got != tt.want {
			t.Errorf("ParseJurisdiction(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestJurisdictionKnown(t *testing.T) {
	if !JurisdictionMaharashtra.Known() {
		t.Error("maharashtra_udcpr should be known")
	}
	if Jurisdiction("delhi_mpd").Known() {
		t.Error("delhi_mpd should not be known")
	}
}

func TestJurisdictionEqual(t *testing.T) {
	if !Jurisdiction("Maharashtra_UDCPR").Equal(JurisdictionMaharashtra) {
		t.Error("expected case-insensitive jurisdiction comparison")
	}
	if JurisdictionMaharashtra.Equal(JurisdictionMumbai) {
		t.Error("distinct jurisdictions must not compare equal")
	}
}

func TestParseUseType(t *testing.T) {
	tests := []struct {
		input string
		want  UseType
	}{
		{"Residential", UseResidential},
		{"residential", UseResidential},
		{"COMMERCIAL", UseCommercial},
		{"industrial", UseIndustrial},
		{"Mixed", UseMixed},
		{"mixed-use", UseMixed},
		{"mixed use", UseMixed},
		{"Agricultural", UseType("Agricultural")},
	}

	for _, tt := range tests {
		if got := ParseUseType(tt.input); got != tt.want {
			t.Errorf("ParseUseType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestUseTypeKeyword(t *testing.T) {
	if got := UseResidential.Keyword(); got != "residential" {
		t.Errorf("Keyword() = %q, want %q", got, "residential")
	}
}
