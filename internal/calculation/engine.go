package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/rollover-planner/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ErrNoFeasiblePlan is returned when no terminal state is reachable from the
// initial state.
var ErrNoFeasiblePlan = errors.New("no feasible plan reaches the end of the horizon")

// PlanningEngine orchestrates rollover planning runs.
type PlanningEngine struct {
	TaxCalc *FederalTaxCalculator
	Debug   bool
	Logger  Logger
}

// NewPlanningEngine creates a new planning engine.
func NewPlanningEngine() *PlanningEngine {
	return &PlanningEngine{
		TaxCalc: NewFederalTaxCalculator2019(),
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (pe *PlanningEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// RunScenario computes the optimal action path for one scenario: the
// sequence of account states from the initial state through the first state
// past the end year, plus the accumulated cost under the scenario's
// objective.
//
// The search is a pure in-memory computation with no shared state across
// calls. Its worst case is exponential in EndYear-StartYear (two actions per
// year); memoization collapses convergent states, but keeping the horizon to
// a few decades is the caller's responsibility.
func (pe *PlanningEngine) RunScenario(scenario *domain.Scenario) (*domain.PlanSummary, error) {
	if err := scenario.Parameters.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario parameters: %w", err)
	}

	objective := scenario.EffectiveObjective()
	searcher := newPathSearcher(&scenario.Parameters, objective, pe.TaxCalc)
	initial := domain.NewInitialState(&scenario.Parameters)

	result := searcher.solve(initial)
	if pe.Debug {
		pe.Logger.Debugf("scenario %q: expanded %d states, %d memo hits",
			scenario.Name, searcher.expanded, searcher.memoHits)
	}
	if !result.feasible {
		return nil, ErrNoFeasiblePlan
	}

	path := make([]domain.AccountState, 0, 1+len(result.suffix))
	path = append(path, initial)
	path = append(path, result.suffix...)

	return &domain.PlanSummary{
		Name:      scenario.Name,
		Objective: objective,
		Path:      path,
		TotalCost: result.cost,
	}, nil
}

// RunScenarios plans every scenario in the configuration and returns the
// combined results. Scenarios run concurrently; each search is itself
// single-threaded and owns its graph exclusively.
func (pe *PlanningEngine) RunScenarios(config *domain.Configuration) (*domain.PlanComparison, error) {
	summaries := make([]domain.PlanSummary, len(config.Scenarios))
	var g errgroup.Group
	for i := range config.Scenarios {
		i := i
		scenario := config.Scenarios[i]
		g.Go(func() error {
			summary, err := pe.RunScenario(&scenario)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", scenario.Name, err)
			}
			summaries[i] = *summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &domain.PlanComparison{Summaries: summaries}, nil
}
