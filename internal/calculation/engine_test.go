package calculation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rpgo/rollover-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortHorizonScenario() domain.Scenario {
	return domain.Scenario{
		Name:      "short horizon",
		Objective: domain.ObjectiveMinimizeTax,
		Parameters: domain.ScenarioParameters{
			ExternalIncome: decimal.NewFromInt(10000),
			InflationRate:  decimal.NewFromFloat(0.03),
			RothBalance:    decimal.NewFromInt(5000),
			RothGrowthRate: decimal.NewFromFloat(0.08),
			IRABalance:     decimal.NewFromInt(6000),
			IRAGrowthRate:  decimal.NewFromFloat(0.08),
			IRABasis:       decimal.Zero,
			BirthYear:      1955,
			BirthMonth:     6,
			StartYear:      2035,
			EndYear:        2040,
			StartingCash:   decimal.NewFromInt(5000),
		},
	}
}

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestRunScenarioEndToEnd(t *testing.T) {
	engine := NewPlanningEngine()
	scenario := shortHorizonScenario()

	summary, err := engine.RunScenario(&scenario)
	require.NoError(t, err)
	require.NotNil(t, summary)

	// Initial state plus one state per action year 2035..2040.
	require.Len(t, summary.Path, 7)
	assert.Equal(t, 2035, summary.Path[0].Year)
	assert.Equal(t, domain.ActionNone, summary.Path[0].Action.Type)
	for i := 1; i < len(summary.Path); i++ {
		assert.Equal(t, summary.Path[i-1].Year+1, summary.Path[i].Year, "years advance one at a time")
		assert.NotEqual(t, domain.ActionNone, summary.Path[i].Action.Type)
	}
	assert.Equal(t, 2041, summary.FinalState().Year, "terminal state is the first past the end year")

	assert.True(t, summary.TotalCost.GreaterThanOrEqual(decimal.Zero))
	// In the minimizing variant the path cost is exactly the cumulative tax.
	assert.True(t, summary.TotalCost.Equal(summary.FinalState().TotalTax),
		"cost %s, final tax %s", summary.TotalCost, summary.FinalState().TotalTax)
}

func TestRunScenarioIdempotent(t *testing.T) {
	engine := NewPlanningEngine()
	scenario := shortHorizonScenario()

	first, err := engine.RunScenario(&scenario)
	require.NoError(t, err)
	second, err := engine.RunScenario(&scenario)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(first, second, decimalComparer))
}

func TestRunScenarioMaximizeCash(t *testing.T) {
	engine := NewPlanningEngine()
	scenario := shortHorizonScenario()
	scenario.Objective = domain.ObjectiveMaximizeCash

	summary, err := engine.RunScenario(&scenario)
	require.NoError(t, err)
	require.Len(t, summary.Path, 7)
	assert.Equal(t, domain.ObjectiveMaximizeCash, summary.Objective)
}

// TestRunScenarioHorizonMonotonic pins the closed-form property that with
// zero growth and inflation, adding a year can only add RMD-driven tax.
func TestRunScenarioHorizonMonotonic(t *testing.T) {
	engine := NewPlanningEngine()
	base := domain.Scenario{
		Name: "flat",
		Parameters: domain.ScenarioParameters{
			ExternalIncome: decimal.NewFromInt(10000),
			InflationRate:  decimal.Zero,
			RothBalance:    decimal.Zero,
			RothGrowthRate: decimal.Zero,
			IRABalance:     decimal.NewFromInt(100000),
			IRAGrowthRate:  decimal.Zero,
			IRABasis:       decimal.Zero,
			BirthYear:      1955,
			BirthMonth:     6,
			StartYear:      2030,
			EndYear:        2033,
			StartingCash:   decimal.Zero,
		},
	}

	prev := decimal.Zero
	for endYear := 2033; endYear <= 2039; endYear++ {
		scenario := base
		scenario.Parameters.EndYear = endYear
		summary, err := engine.RunScenario(&scenario)
		require.NoError(t, err, "end year %d", endYear)
		assert.True(t, summary.TotalCost.GreaterThanOrEqual(prev),
			"end year %d: cost %s dropped below %s", endYear, summary.TotalCost, prev)
		prev = summary.TotalCost
	}
}

func TestRunScenarioRejectsInvalidParameters(t *testing.T) {
	engine := NewPlanningEngine()
	scenario := shortHorizonScenario()
	scenario.Parameters.BirthMonth = 13

	summary, err := engine.RunScenario(&scenario)
	assert.Nil(t, summary)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "birth month")
}

func TestRunScenarioDefaultsObjective(t *testing.T) {
	engine := NewPlanningEngine()
	scenario := shortHorizonScenario()
	scenario.Objective = ""

	summary, err := engine.RunScenario(&scenario)
	require.NoError(t, err)
	assert.Equal(t, domain.ObjectiveMinimizeTax, summary.Objective)
}

func TestRunScenarios(t *testing.T) {
	engine := NewPlanningEngine()
	minimize := shortHorizonScenario()
	maximize := shortHorizonScenario()
	maximize.Name = "maximize"
	maximize.Objective = domain.ObjectiveMaximizeCash

	comparison, err := engine.RunScenarios(&domain.Configuration{
		Scenarios: []domain.Scenario{minimize, maximize},
	})
	require.NoError(t, err)
	require.Len(t, comparison.Summaries, 2)
	// Results stay in input order regardless of which goroutine finishes
	// first.
	assert.Equal(t, "short horizon", comparison.Summaries[0].Name)
	assert.Equal(t, "maximize", comparison.Summaries[1].Name)
}

func TestRunScenariosPropagatesFailure(t *testing.T) {
	engine := NewPlanningEngine()
	bad := shortHorizonScenario()
	bad.Name = "bad"
	bad.Parameters.InflationRate = decimal.NewFromInt(2)

	_, err := engine.RunScenarios(&domain.Configuration{
		Scenarios: []domain.Scenario{shortHorizonScenario(), bad},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "bad"`)
}

// TestSearchMemoizationConsistency runs the same long-ish scenario with a
// fresh engine and compares against a second run to guard against memo
// corruption across recursion.
func TestSearchMemoizationConsistency(t *testing.T) {
	scenario := shortHorizonScenario()
	scenario.Parameters.StartYear = 2030
	scenario.Parameters.EndYear = 2042

	a, err := NewPlanningEngine().RunScenario(&scenario)
	require.NoError(t, err)
	b, err := NewPlanningEngine().RunScenario(&scenario)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(a, b, decimalComparer))
}
