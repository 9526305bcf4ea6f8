package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/coolbeans/bylaw/pkg/corpus"
	"github.com/coolbeans/bylaw/pkg/types"
)

// Evaluator computes regulation figures for projects against one corpus
// snapshot. It holds no per-call state; a single Evaluator may serve
// concurrent evaluations.
type Evaluator struct {
	corpus   *corpus.Corpus
	strategy FSIStrategy
	version  string
	clock    func() time.Time
	newID    func() string
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithStrategy selects the base-FSI strategy (default: CorpusBacked).
func WithStrategy(s FSIStrategy) Option {
	return func(e *Evaluator) { e.strategy = s }
}

// WithRuleVersion overrides the rule version recorded on results.
func WithRuleVersion(version string) Option {
	return func(e *Evaluator) { e.version = version }
}

// WithClock overrides the evaluation timestamp source, for tests.
func WithClock(clock func() time.Time) Option {
	return func(e *Evaluator) { e.clock = clock }
}

// WithIDFunc overrides evaluation id generation, for tests.
func WithIDFunc(newID func() string) Option {
	return func(e *Evaluator) { e.newID = newID }
}

// New creates an evaluator over the given corpus snapshot.
func New(c *corpus.Corpus, opts ...Option) *Evaluator {
	e := &Evaluator{
		corpus:   c,
		strategy: CorpusBacked{},
		version:  "udcpr_2020",
		clock:    time.Now,
		newID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs all five domains, checks compliance, and returns the
// aggregated result with its calculation trace. The only error surfaced
// is ErrInvalidInput; every corpus miss resolves through defaults.
func (e *Evaluator) Evaluate(project ProjectInput) (*EvaluationResult, error) {
	if err := project.Validate(); err != nil {
		return nil, err
	}

	r := &run{}
	fsi := e.calculateFSI(r, project)
	setbacks := e.calculateSetbacks(r, project)
	parking := e.calculateParking(r, project)
	height := e.calculateHeight(r, project)
	tdr := e.calculateTDR(r, project, fsi)

	verdict := Check(fsi, setbacks, parking, height)

	return &EvaluationResult{
		EvaluationID: e.newID(),
		RuleVersion:  e.version,
		EvaluatedAt:  e.clock(),
		FSI:          fsi,
		Setbacks:     setbacks,
		Parking:      parking,
		Height:       height,
		TDR:          tdr,
		Compliant:    verdict.Compliant,
		Violations:   verdict.Violations,
		Warnings:     verdict.Warnings,
		Trace:        r.steps,
	}, nil
}

// CalculateFSI computes only the FSI domain, with its trace.
func (e *Evaluator) CalculateFSI(project ProjectInput) (FSIResult, []CalculationStep, error) {
	if err := project.Validate(); err != nil {
		return FSIResult{}, nil, err
	}
	r := &run{}
	result := e.calculateFSI(r, project)
	return result, r.steps, nil
}

// CalculateSetbacks computes only the setback domain, with its trace.
func (e *Evaluator) CalculateSetbacks(project ProjectInput) (SetbackResult, []CalculationStep, error) {
	if err := project.Validate(); err != nil {
		return SetbackResult{}, nil, err
	}
	r := &run{}
	result := e.calculateSetbacks(r, project)
	return result, r.steps, nil
}

// CalculateParking computes only the parking domain, with its trace.
func (e *Evaluator) CalculateParking(project ProjectInput) (ParkingResult, []CalculationStep, error) {
	if err := project.Validate(); err != nil {
		return ParkingResult{}, nil, err
	}
	r := &run{}
	result := e.calculateParking(r, project)
	return result, r.steps, nil
}

// CalculateHeight computes only the height domain, with its trace.
func (e *Evaluator) CalculateHeight(project ProjectInput) (HeightResult, []CalculationStep, error) {
	if err := project.Validate(); err != nil {
		return HeightResult{}, nil, err
	}
	r := &run{}
	result := e.calculateHeight(r, project)
	return result, r.steps, nil
}

// candidateClauses gathers jurisdiction-filtered clauses containing any
// of the domain keywords, widening to the whole corpus when the
// jurisdiction yields nothing. The widened set may mix jurisdictions;
// ranking and the validator's jurisdiction check compensate.
func candidateClauses(c *corpus.Corpus, jurisdiction types.Jurisdiction, keywords []string) []corpus.Clause {
	clauses := corpus.FilterAny(c.ByJurisdiction(jurisdiction), keywords...)
	if len(clauses) == 0 {
		clauses = c.FilterAny(keywords...)
	}
	return clauses
}
