package calculation

import (
	"github.com/rpgo/rollover-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Transition is one edge of the planning graph: the state an action produced
// and the marginal cost the search engine attributes to taking it.
type Transition struct {
	Next domain.AccountState
	Cost decimal.Decimal
}

// applyAction advances one year under the given action. The returned bool is
// false when the action cannot be applied (the IRA cannot cover the rollover
// plus the required distribution); that is normal branch pruning, not an
// error.
//
// Order of operations mirrors the account model: rollover and RMD leave the
// IRA at the start of the year, growth applies to what remains, then basis is
// allocated across the year's distributions and tax is assessed.
func (ps *pathSearcher) applyAction(state domain.AccountState, action domain.Action) (Transition, bool) {
	rollover := decimal.Zero
	if action.Type == domain.ActionRollover {
		rollover = action.Amount
	}

	if state.IRABalance.LessThan(rollover) {
		return Transition{}, false
	}
	rmd := ps.rmdCalc.RequiredDistribution(state.Year, state.IRABalance)
	if state.IRABalance.LessThan(rollover.Add(rmd)) {
		return Transition{}, false
	}

	one := decimal.NewFromInt(1)
	rothFactor := one.Add(ps.params.RothGrowthRate).Sub(ps.params.InflationRate)
	iraFactor := one.Add(ps.params.IRAGrowthRate).Sub(ps.params.InflationRate)

	roth := state.RothBalance.Add(rollover).Mul(rothFactor).Floor()
	ira := state.IRABalance.Sub(rmd).Sub(rollover).Mul(iraFactor).Floor()

	// Pro-rata basis allocation over this year's distributions. The
	// denominator can be zero when the IRA empties out entirely.
	withdrawn := rmd.Add(rollover)
	nontaxable := decimal.Zero
	if denominator := ira.Add(withdrawn); denominator.IsPositive() && state.IRABasis.IsPositive() {
		nontaxable = state.IRABasis.Mul(withdrawn).Div(denominator).Floor()
		if nontaxable.GreaterThan(state.IRABasis) {
			nontaxable = state.IRABasis
		}
		if nontaxable.GreaterThan(withdrawn) {
			nontaxable = withdrawn
		}
	}
	basis := state.IRABasis.Sub(nontaxable)

	taxableIncome := withdrawn.Sub(nontaxable).Add(ps.params.ExternalIncome)
	tax := ps.taxCalc.CalculateTax(taxableIncome)
	// A conversion can owe more tax than the year produces in cash; the
	// cumulative balance absorbs the difference.
	cash := rmd.Add(ps.params.ExternalIncome).Sub(tax)

	next := domain.AccountState{
		Year:        state.Year + 1,
		Action:      action,
		RothBalance: roth,
		IRABalance:  ira,
		IRABasis:    basis,
		TotalCash:   state.TotalCash.Add(cash),
		TotalTax:    state.TotalTax.Add(tax),
	}

	cost := tax
	if ps.objective == domain.ObjectiveMaximizeCash {
		cost = ps.liquidationValue(next).Sub(ps.liquidationValue(state))
	}
	return Transition{Next: next, Cost: cost}, true
}

// successors enumerates the legal actions from a state: continue with only
// the RMD, or convert one increment first. Continue comes first, so cost
// ties resolve in its favor.
func (ps *pathSearcher) successors(state domain.AccountState) []Transition {
	out := make([]Transition, 0, 2)
	if t, ok := ps.applyAction(state, domain.Continue()); ok {
		out = append(out, t)
	}
	if t, ok := ps.applyAction(state, domain.RolloverThenContinue(ps.increment)); ok {
		out = append(out, t)
	}
	return out
}

// liquidationValue is the after-tax cash obtained by liquidating everything
// in the state's year: Roth and basis come out tax-free, the rest of the IRA
// plus the year's external income is taxed as ordinary income.
func (ps *pathSearcher) liquidationValue(state domain.AccountState) decimal.Decimal {
	taxableNow := state.IRABalance.Sub(state.IRABasis).Add(ps.params.ExternalIncome)
	tax := ps.taxCalc.CalculateTax(taxableNow)
	return state.RothBalance.
		Add(state.TotalCash).
		Add(state.IRABasis).
		Add(taxableNow).
		Sub(tax)
}
