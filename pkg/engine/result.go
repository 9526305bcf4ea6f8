package engine

import "time"

// Provenance tags recorded on every domain result.
const (
	// SourceCorpus: the authoritative value was extracted from a
	// ranked corpus clause.
	SourceCorpus = "database_enhanced"
	// SourceDefault: no clause yielded a value; the static default
	// table for (jurisdiction, use type) applied.
	SourceDefault = "fallback_default"
	// SourceFormula: the value comes from a closed-form tier formula
	// rather than corpus text.
	SourceFormula = "formula_fallback"
)

// FSIResult holds the floor-space-index figures for one evaluation.
type FSIResult struct {
	BaseFSI               float64  `json:"base_fsi"`
	BonusFSI              float64  `json:"bonus_fsi"`
	BonusDetails          []string `json:"bonus_details"`
	PremiumFSIAvailable   float64  `json:"premium_fsi_available"`
	PermissibleFSI        float64  `json:"permissible_fsi"`
	PermissibleBuiltUpSqm float64  `json:"permissible_built_up_sqm"`
	ProposedFSI           float64  `json:"proposed_fsi"`
	ProposedBuiltUpSqm    float64  `json:"proposed_built_up_sqm"`
	UtilizationPercent    float64  `json:"fsi_utilization_percent"`

	Source       string   `json:"source"`
	AppliedRules []string `json:"applied_rules"`
}

// SetbackResult holds required setbacks and the open-space check.
type SetbackResult struct {
	FrontM                      float64 `json:"front_m"`
	SideM                       float64 `json:"side_m"`
	RearM                       float64 `json:"rear_m"`
	TotalSetbackAreaSqm         float64 `json:"total_setback_area_sqm"`
	OpenSpacePercent            float64 `json:"open_space_percent"`
	MinOpenSpaceRequiredPercent float64 `json:"min_open_space_required_percent"`

	Source       string   `json:"source"`
	AppliedRules []string `json:"applied_rules"`
}

// ParkingResult holds the parking requirement derived from the norm
// ratio for the project's use type.
type ParkingResult struct {
	RequiredECS         int     `json:"required_ecs"`
	Norm                string  `json:"norm"`
	RatioSqmPerECS      float64 `json:"ratio_sqm_per_ecs"`
	AreaPerECSSqm       float64 `json:"area_per_ecs_sqm"`
	TotalParkingAreaSqm float64 `json:"total_parking_area_sqm"`
	AvailableAreaSqm    float64 `json:"available_area_sqm"`
	DeficitSqm          float64 `json:"parking_deficit_sqm"`
	MechanicalAllowed   bool    `json:"mechanical_parking_allowed"`
	ParkingFloorsNeeded int     `json:"parking_floors_needed"`

	Source       string   `json:"source"`
	AppliedRules []string `json:"applied_rules"`
}

// HeightResult holds the permissible height envelope and the
// floor-height adequacy check.
type HeightResult struct {
	PermissibleHeightM  float64 `json:"permissible_height_m"`
	ProposedHeightM     float64 `json:"proposed_height_m"`
	PermissibleFloors   int     `json:"permissible_floors"`
	ProposedFloors      int     `json:"proposed_floors"`
	AvgFloorHeightM     float64 `json:"avg_floor_height_m"`
	MinFloorHeightM     float64 `json:"min_floor_height_m"`
	FloorHeightAdequate bool    `json:"floor_height_adequate"`
	UtilizationPercent  float64 `json:"height_utilization_percent"`

	Source       string   `json:"source"`
	AppliedRules []string `json:"applied_rules"`
}

// TDRResult analyses whether transferable development rights can close
// the gap between proposed and permissible FSI.
type TDRResult struct {
	CanReceiveTDR   bool    `json:"can_receive_tdr"`
	MaxLoadableFSI  float64 `json:"max_tdr_loadable_fsi"`
	NeededFSI       float64 `json:"tdr_needed_fsi"`
	CanSolveDeficit bool    `json:"tdr_can_solve_deficit"`
	CostPerSqm      float64 `json:"tdr_cost_estimate_per_sqm"`
	AreaNeededSqm   float64 `json:"tdr_area_needed_sqm"`
	EstimatedCost   float64 `json:"estimated_tdr_cost"`

	AppliedRules []string `json:"applied_rules"`
}

// EvaluationResult aggregates the domain results, the compliance
// verdict, and the ordered calculation trace of one evaluation call.
// The caller owns it; the engine keeps no reference.
type EvaluationResult struct {
	EvaluationID string    `json:"evaluation_id"`
	RuleVersion  string    `json:"rule_version"`
	EvaluatedAt  time.Time `json:"evaluated_at"`

	FSI      FSIResult     `json:"fsi_result"`
	Setbacks SetbackResult `json:"setback_result"`
	Parking  ParkingResult `json:"parking_result"`
	Height   HeightResult  `json:"height_result"`
	TDR      TDRResult     `json:"tdr_result"`

	Compliant  bool     `json:"compliant"`
	Violations []string `json:"violations"`
	Warnings   []string `json:"warnings"`

	Trace []CalculationStep `json:"calculation_traces"`
}
