package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Objective selects the cost function the planner optimizes. Exactly one
// objective applies per scenario run.
type Objective string

const (
	// ObjectiveMinimizeTax minimizes cumulative tax paid over the horizon.
	ObjectiveMinimizeTax Objective = "minimize_tax"
	// ObjectiveMaximizeCash maximizes the after-tax value of liquidating
	// everything at the end of the horizon.
	ObjectiveMaximizeCash Objective = "maximize_cash"
)

// DefaultRolloverIncrement is the conversion step size used when a scenario
// does not configure one.
var DefaultRolloverIncrement = decimal.NewFromInt(1000)

// ScenarioParameters holds the inputs for one planning run. The planner
// treats the struct as read-only for the lifetime of a search.
type ScenarioParameters struct {
	// ExternalIncome is yearly taxable income from sources other than the IRA.
	ExternalIncome decimal.Decimal `json:"external_income"`
	InflationRate  decimal.Decimal `json:"inflation_rate"`

	RothBalance    decimal.Decimal `json:"roth_balance"`
	RothGrowthRate decimal.Decimal `json:"roth_growth_rate"`

	IRABalance    decimal.Decimal `json:"ira_balance"`
	IRAGrowthRate decimal.Decimal `json:"ira_growth_rate"`
	// IRABasis is the already-taxed portion of the IRA balance.
	IRABasis decimal.Decimal `json:"ira_basis"`

	BirthYear  int `json:"birth_year"`
	BirthMonth int `json:"birth_month"`
	StartYear  int `json:"start_year"`
	EndYear    int `json:"end_year"`

	StartingCash decimal.Decimal `json:"starting_cash"`

	// RolloverIncrement is the fixed dollar amount converted per rollover
	// year. Zero means DefaultRolloverIncrement.
	RolloverIncrement decimal.Decimal `json:"rollover_increment"`
}

// Validate rejects out-of-range parameters before any search runs.
func (p *ScenarioParameters) Validate() error {
	one := decimal.NewFromInt(1)
	switch {
	case p.ExternalIncome.IsNegative():
		return fmt.Errorf("external taxable income must be >= 0")
	case p.InflationRate.IsNegative() || p.InflationRate.GreaterThan(one):
		return fmt.Errorf("inflation rate must be between 0 and 1")
	case p.RothBalance.IsNegative():
		return fmt.Errorf("Roth value must be >= 0")
	case p.RothGrowthRate.IsNegative() || p.RothGrowthRate.GreaterThan(one):
		return fmt.Errorf("Roth rate must be between 0 and 1")
	case p.IRABalance.IsNegative():
		return fmt.Errorf("IRA value must be >= 0")
	case p.IRABasis.IsNegative():
		return fmt.Errorf("IRA basis must be >= 0")
	case p.IRABalance.LessThan(p.IRABasis):
		return fmt.Errorf("IRA value must be greater than the basis")
	case p.IRAGrowthRate.IsNegative() || p.IRAGrowthRate.GreaterThan(one):
		return fmt.Errorf("IRA rate must be between 0 and 1")
	case p.BirthYear > p.StartYear:
		return fmt.Errorf("birth year must be <= start year")
	case p.StartYear > p.EndYear:
		return fmt.Errorf("end year must be >= start year")
	case p.BirthMonth < 1 || p.BirthMonth > 12:
		return fmt.Errorf("birth month must be between 1 and 12")
	case p.StartingCash.IsNegative():
		return fmt.Errorf("starting cash must be >= 0")
	case p.RolloverIncrement.IsNegative():
		return fmt.Errorf("rollover increment must be >= 0")
	}
	return nil
}

// EffectiveRolloverIncrement returns the configured conversion step, falling
// back to DefaultRolloverIncrement when unset.
func (p *ScenarioParameters) EffectiveRolloverIncrement() decimal.Decimal {
	if p.RolloverIncrement.IsZero() {
		return DefaultRolloverIncrement
	}
	return p.RolloverIncrement
}

// Scenario is one named planning run.
type Scenario struct {
	Name       string             `json:"name"`
	Objective  Objective          `json:"objective"`
	Parameters ScenarioParameters `json:"parameters"`
}

// EffectiveObjective defaults to minimizing tax when unspecified.
func (s *Scenario) EffectiveObjective() Objective {
	if s.Objective == "" {
		return ObjectiveMinimizeTax
	}
	return s.Objective
}

// Configuration is the top-level input: a list of scenarios to plan.
type Configuration struct {
	Scenarios []Scenario `json:"scenarios"`
}
