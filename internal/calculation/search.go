package calculation

import (
	"github.com/rpgo/rollover-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// pathSearcher explores the planning graph for one scenario. Nodes are
// account states, edges are the successors of each state, and the graph is
// acyclic because the year strictly increases on every edge. The traversal
// is an exhaustive depth-first enumeration with memoization, which stays
// correct for both objectives (the maximizing variant's edge costs can be
// negative, ruling out non-negative-edge shortest-path search).
type pathSearcher struct {
	params    *domain.ScenarioParameters
	objective domain.Objective
	increment decimal.Decimal
	taxCalc   *FederalTaxCalculator
	rmdCalc   *RMDCalculator

	memo     map[stateKey]searchResult
	expanded int
	memoHits int
}

// stateKey is the memoization key: the state's numeric fields. Distinct
// action histories that converge on equal values share one entry.
type stateKey struct {
	year  int
	roth  string
	ira   string
	basis string
	cash  string
	tax   string
}

func keyOf(s domain.AccountState) stateKey {
	return stateKey{
		year:  s.Year,
		roth:  s.RothBalance.String(),
		ira:   s.IRABalance.String(),
		basis: s.IRABasis.String(),
		cash:  s.TotalCash.String(),
		tax:   s.TotalTax.String(),
	}
}

// searchResult is the best completion from a state: the suffix of states
// after it, the accumulated cost of that suffix, and whether any terminal
// state is reachable at all.
type searchResult struct {
	suffix   []domain.AccountState
	cost     decimal.Decimal
	feasible bool
}

func newPathSearcher(params *domain.ScenarioParameters, objective domain.Objective, taxCalc *FederalTaxCalculator) *pathSearcher {
	return &pathSearcher{
		params:    params,
		objective: objective,
		increment: params.EffectiveRolloverIncrement(),
		taxCalc:   taxCalc,
		rmdCalc:   NewRMDCalculator(params.BirthYear, params.BirthMonth),
		memo:      make(map[stateKey]searchResult),
	}
}

// solve returns the optimal completion from state. Suffixes stored in the
// memo are never mutated, so sharing them across paths is safe.
func (ps *pathSearcher) solve(state domain.AccountState) searchResult {
	if state.Year > ps.params.EndYear {
		return searchResult{cost: decimal.Zero, feasible: true}
	}
	key := keyOf(state)
	if r, ok := ps.memo[key]; ok {
		ps.memoHits++
		return r
	}
	ps.expanded++

	best := searchResult{}
	for _, edge := range ps.successors(state) {
		sub := ps.solve(edge.Next)
		if !sub.feasible {
			continue
		}
		total := edge.Cost.Add(sub.cost)
		if !best.feasible || ps.better(total, best.cost) {
			suffix := make([]domain.AccountState, 0, 1+len(sub.suffix))
			suffix = append(suffix, edge.Next)
			suffix = append(suffix, sub.suffix...)
			best = searchResult{suffix: suffix, cost: total, feasible: true}
		}
	}

	ps.memo[key] = best
	return best
}

// better reports whether cost a strictly improves on b under the scenario's
// objective. Strict comparison keeps the first path found on ties.
func (ps *pathSearcher) better(a, b decimal.Decimal) bool {
	if ps.objective == domain.ObjectiveMaximizeCash {
		return a.GreaterThan(b)
	}
	return a.LessThan(b)
}
