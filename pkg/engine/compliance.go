package engine

import "fmt"

// Verdict is the compliance outcome of one evaluation: pass/fail plus
// ordered violation and warning messages.
type Verdict struct {
	Compliant  bool
	Violations []string
	Warnings   []string
}

// Check compares the proposed figures against the derived limits. It is
// a pure function of the domain results: violations fail the project,
// warnings do not.
func Check(fsi FSIResult, setbacks SetbackResult, parking ParkingResult, height HeightResult) Verdict {
	var violations, warnings []string

	if fsi.ProposedFSI > fsi.PermissibleFSI {
		excess := fsi.ProposedFSI - fsi.PermissibleFSI
		violations = append(violations, fmt.Sprintf(
			"FSI exceeds limit by %.2f: %.2f > %.2f (%s)",
			excess, fsi.ProposedFSI, fsi.PermissibleFSI, citation(fsi.AppliedRules, "UDCPR 3.1")))
	} else if fsi.UtilizationPercent < 50 {
		warnings = append(warnings, fmt.Sprintf(
			"Low FSI utilization: %.1f%% - consider optimizing design",
			fsi.UtilizationPercent))
	}

	if height.ProposedHeightM > height.PermissibleHeightM {
		excess := height.ProposedHeightM - height.PermissibleHeightM
		violations = append(violations, fmt.Sprintf(
			"Height exceeds limit by %.1fm: %.1fm > %.1fm (%s)",
			excess, height.ProposedHeightM, height.PermissibleHeightM, citation(height.AppliedRules, "UDCPR 7.2")))
	}

	if !height.FloorHeightAdequate {
		violations = append(violations, fmt.Sprintf(
			"Floor height inadequate: %.2fm < %.2fm minimum (UDCPR 7.3)",
			height.AvgFloorHeightM, height.MinFloorHeightM))
	}

	if setbacks.OpenSpacePercent < setbacks.MinOpenSpaceRequiredPercent {
		violations = append(violations, fmt.Sprintf(
			"Insufficient open space: %.1f%% < %.1f%% required (UDCPR 4.3)",
			setbacks.OpenSpacePercent, setbacks.MinOpenSpaceRequiredPercent))
	}

	if parking.DeficitSqm > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Parking deficit: %.0f sqm - consider mechanical parking (%s)",
			parking.DeficitSqm, citation(parking.AppliedRules, "UDCPR 5.3.8")))
	}

	return Verdict{
		Compliant:  len(violations) == 0,
		Violations: violations,
		Warnings:   warnings,
	}
}

// citation returns the governing rule id for a message, preferring the
// first applied rule over the static fallback citation.
func citation(appliedRules []string, fallback string) string {
	if len(appliedRules) > 0 && appliedRules[0] != "" {
		return appliedRules[0]
	}
	return fallback
}
