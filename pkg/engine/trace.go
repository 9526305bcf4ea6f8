package engine

// CalculationStep is one entry in the calculation trace. Every derived
// quantity appends at least one step citing the clause ids it rests on.
type CalculationStep struct {
	StepID      string         `json:"step_id"`
	Description string         `json:"description"`
	RuleIDs     []string       `json:"rule_ids"`
	Inputs      map[string]any `json:"inputs"`
	Formula     string         `json:"formula,omitempty"`
	Result      any            `json:"result"`
	Units       string         `json:"units,omitempty"`
}

// run owns the trace of a single evaluation call. A fresh run is
// created per call, so concurrent evaluations never share trace state.
type run struct {
	steps []CalculationStep
}

func (r *run) step(s CalculationStep) {
	r.steps = append(r.steps, s)
}
