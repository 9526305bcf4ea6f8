// Package engine evaluates building-construction projects against
// zoning regulations. One evaluation derives FSI, setbacks, parking,
// height, and TDR figures, each either extracted from the regulation
// corpus or taken from a fallback default table, then checks the
// proposal against the derived limits and returns a verdict with a full
// calculation trace. Evaluations are pure per call: the only state an
// Evaluator holds is the immutable corpus snapshot and its
// configuration, so one Evaluator is safe for concurrent use.
package engine

import (
	"errors"
	"fmt"

	"github.com/coolbeans/bylaw/pkg/types"
)

// ErrInvalidInput marks a project description that fails basic
// validation. It is the only error Evaluate surfaces.
var ErrInvalidInput = errors.New("invalid project input")

// ProjectInput describes the project under evaluation. It is immutable
// per evaluation call.
type ProjectInput struct {
	Jurisdiction types.Jurisdiction `json:"jurisdiction" yaml:"jurisdiction"`
	UseType      types.UseType      `json:"use_type" yaml:"use_type"`

	// Plot details.
	PlotAreaSqm float64 `json:"plot_area_sqm" yaml:"plot_area_sqm"`
	RoadWidthM  float64 `json:"road_width_m" yaml:"road_width_m"`
	CornerPlot  bool    `json:"corner_plot" yaml:"corner_plot"`
	FrontageM   float64 `json:"frontage_m" yaml:"frontage_m"`

	// Building details.
	ProposedFloors     int     `json:"proposed_floors" yaml:"proposed_floors"`
	ProposedHeightM    float64 `json:"proposed_height_m" yaml:"proposed_height_m"`
	ProposedBuiltUpSqm float64 `json:"proposed_built_up_sqm" yaml:"proposed_built_up_sqm"`

	// Special conditions feeding FSI bonuses and height relaxations.
	TODZone           bool `json:"tod_zone" yaml:"tod_zone"`
	Redevelopment     bool `json:"redevelopment" yaml:"redevelopment"`
	SlumRehab         bool `json:"slum_rehab" yaml:"slum_rehab"`
	GreenBuilding     bool `json:"green_building" yaml:"green_building"`
	AffordableHousing bool `json:"affordable_housing" yaml:"affordable_housing"`
}

// Validate checks the numeric preconditions every domain computation
// relies on. It runs before any computation begins.
func (p ProjectInput) Validate() error {
	switch {
	case p.PlotAreaSqm <= 0:
		return fmt.Errorf("%w: plot_area_sqm must be positive, got %g", ErrInvalidInput, p.PlotAreaSqm)
	case p.RoadWidthM <= 0:
		return fmt.Errorf("%w: road_width_m must be positive, got %g", ErrInvalidInput, p.RoadWidthM)
	case p.FrontageM <= 0:
		return fmt.Errorf("%w: frontage_m must be positive, got %g", ErrInvalidInput, p.FrontageM)
	case p.ProposedFloors < 1:
		return fmt.Errorf("%w: proposed_floors must be at least 1, got %d", ErrInvalidInput, p.ProposedFloors)
	case p.ProposedHeightM <= 0:
		return fmt.Errorf("%w: proposed_height_m must be positive, got %g", ErrInvalidInput, p.ProposedHeightM)
	case p.ProposedBuiltUpSqm <= 0:
		return fmt.Errorf("%w: proposed_built_up_sqm must be positive, got %g", ErrInvalidInput, p.ProposedBuiltUpSqm)
	}
	return nil
}

// conditions returns the incentive flags as a trace input map.
func (p ProjectInput) conditions() map[string]any {
	return map[string]any{
		"tod_zone":           p.TODZone,
		"redevelopment":      p.Redevelopment,
		"slum_rehab":         p.SlumRehab,
		"green_building":     p.GreenBuilding,
		"affordable_housing": p.AffordableHousing,
	}
}
