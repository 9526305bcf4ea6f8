package extract

import "testing"

func TestFSI(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantValue   float64
		wantContext string
		wantOK      bool
	}{
		{
			name:        "explicit shall be",
			text:        "The FSI shall be 1.5 for residential buildings.",
			wantValue:   1.5,
			wantContext: ContextExplicit,
			wantOK:      true,
		},
		{
			name:        "explicit permissible",
			text:        "FSI permissible shall be 2.0 in commercial zones.",
			wantValue:   2.0,
			wantContext: ContextExplicit,
			wantOK:      true,
		},
		{
			name:        "basic fsi",
			text:        "The basic FSI 1.1 applies to congested areas.",
			wantValue:   1.1,
			wantContext: ContextBasic,
			wantOK:      true,
		},
		{
			name:        "maximum up to",
			text:        "With premium, FSI up to 3.0 may be granted.",
			wantValue:   3.0,
			wantContext: ContextMaximum,
			wantOK:      true,
		},
		{
			name:        "basic preferred over maximum",
			text:        "Base FSI 1.0 applies, with TDR loading FSI up to 2.5.",
			wantValue:   1.0,
			wantContext: ContextBasic,
			wantOK:      true,
		},
		{
			name:   "out of range rejected",
			text:   "FSI shall be 42 as per table 12.",
			wantOK: false,
		},
		{
			name:   "no mention",
			text:   "Parking shall be provided at ground level.",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FSI(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("FSI(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Value != tt.wantValue {
				t.Errorf("value = %g, want %g", got.Value, tt.wantValue)
			}
			if got.Context != tt.wantContext {
				t.Errorf("context = %q, want %q", got.Context, tt.wantContext)
			}
		})
	}
}

func TestParking(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantRatio float64
		wantOK    bool
	}{
		{"per ecs", "Provide 1 ECS per 100 sqm of built-up area.", 100, true},
		{"per ecs sq.m", "1 ECS per 50 sq.m for commercial use.", 50, true},
		{"long form", "1 equivalent car space per 75 sqm.", 75, true},
		{"inverse", "At least 100 sqm per ECS shall be assumed.", 100, true},
		{"no mention", "Height shall not exceed 24 m.", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parking(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Parking(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && got.SqmPerECS != tt.wantRatio {
				t.Errorf("ratio = %g, want %g", got.SqmPerECS, tt.wantRatio)
			}
		})
	}
}

func TestSetback(t *testing.T) {
	got := Setback("Front setback of 4.5 m and rear margin 2 m shall be kept.")
	if got.FrontM == nil || *got.FrontM != 4.5 {
		t.Errorf("FrontM = %v, want 4.5", got.FrontM)
	}
	if got.RearM == nil || *got.RearM != 2 {
		t.Errorf("RearM = %v, want 2", got.RearM)
	}
	if got.SideM != nil {
		t.Errorf("SideM = %v, want absent", *got.SideM)
	}
	if !got.Any() {
		t.Error("Any() = false, want true")
	}

	if empty := Setback("FSI shall be 1.5."); empty.Any() {
		t.Error("expected no setbacks from unrelated text")
	}
}

func TestHeight(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantMeters  float64
		wantContext string
		wantOK      bool
	}{
		{"maximum height", "Maximum height of 24 m on 9 m roads.", 24, ContextHeightMaximum, true},
		{"shall not exceed", "The height shall not exceed 45 m.", 45, ContextHeightNotExceed, true},
		{"up to", "Buildings up to 70 m height are permitted.", 70, ContextHeightUpTo, true},
		{"first pattern wins", "Maximum height of 30 m; height shall not exceed 45 m.", 30, ContextHeightMaximum, true},
		{"no mention", "Provide 1 ECS per 100 sqm.", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Height(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Height(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Meters != tt.wantMeters {
				t.Errorf("meters = %g, want %g", got.Meters, tt.wantMeters)
			}
			if got.Context != tt.wantContext {
				t.Errorf("context = %q, want %q", got.Context, tt.wantContext)
			}
		})
	}
}
