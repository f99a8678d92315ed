package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ActionType identifies the annual decision that produced a state.
type ActionType string

const (
	// ActionNone marks the initial state; no decision produced it.
	ActionNone ActionType = "none"
	// ActionContinue takes only the required minimum distribution.
	ActionContinue ActionType = "continue"
	// ActionRollover converts a fixed increment from the IRA to the Roth
	// before taking the required minimum distribution.
	ActionRollover ActionType = "rollover_then_continue"
)

// Action is the closed decision set attached to each state for path
// reconstruction. Amount is nonzero only for rollovers.
type Action struct {
	Type   ActionType      `json:"type"`
	Amount decimal.Decimal `json:"amount"`
}

// Continue is the RMD-only action.
func Continue() Action {
	return Action{Type: ActionContinue}
}

// RolloverThenContinue converts amount before taking the RMD.
func RolloverThenContinue(amount decimal.Decimal) Action {
	return Action{Type: ActionRollover, Amount: amount}
}

func (a Action) String() string {
	switch a.Type {
	case ActionContinue:
		return "continue"
	case ActionRollover:
		return fmt.Sprintf("rollover $%s then continue", a.Amount.StringFixed(0))
	default:
		return "start"
	}
}

// AccountState is one node of the planning graph. Balances are as of
// Dec 31 of the year before Year. States are immutable: every transition
// produces a new value.
type AccountState struct {
	Year int `json:"year"`
	// Action is the decision that produced this state (ActionNone for the
	// initial state). It is path metadata: state equality is by the numeric
	// fields alone.
	Action Action `json:"action"`

	RothBalance decimal.Decimal `json:"roth_balance"`
	IRABalance  decimal.Decimal `json:"ira_balance"`
	IRABasis    decimal.Decimal `json:"ira_basis"`

	// TotalCash is cumulative after-tax cash received through this state.
	TotalCash decimal.Decimal `json:"total_cash"`
	// TotalTax is cumulative tax paid through this state.
	TotalTax decimal.Decimal `json:"total_tax"`
}

// NewInitialState builds the search root from validated parameters.
func NewInitialState(p *ScenarioParameters) AccountState {
	return AccountState{
		Year:        p.StartYear,
		Action:      Action{Type: ActionNone},
		RothBalance: p.RothBalance,
		IRABalance:  p.IRABalance,
		IRABasis:    p.IRABasis,
		TotalCash:   p.StartingCash,
		TotalTax:    decimal.Zero,
	}
}

// SameValue reports whether two states carry identical numeric fields.
func (s AccountState) SameValue(o AccountState) bool {
	return s.Year == o.Year &&
		s.RothBalance.Equal(o.RothBalance) &&
		s.IRABalance.Equal(o.IRABalance) &&
		s.IRABasis.Equal(o.IRABasis) &&
		s.TotalCash.Equal(o.TotalCash) &&
		s.TotalTax.Equal(o.TotalTax)
}

// PlanSummary is the result of one scenario run: the optimal action path
// from the initial state to the terminal state, inclusive.
type PlanSummary struct {
	Name      string          `json:"name"`
	Objective Objective       `json:"objective"`
	Path      []AccountState  `json:"path"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// FinalState returns the terminal state of the path.
func (ps *PlanSummary) FinalState() AccountState {
	return ps.Path[len(ps.Path)-1]
}

// PlanComparison aggregates the results of every scenario in a configuration.
type PlanComparison struct {
	Summaries []PlanSummary `json:"summaries"`
}
