package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/rollover-planner/internal/domain"
)

// ConsoleFormatter renders one table of annual states per scenario.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	for i := range results.Summaries {
		s := &results.Summaries[i]
		fmt.Fprintf(buf, "Scenario: %s (%s)\n", s.Name, s.Objective)
		fmt.Fprintf(buf, "%-6s %-28s %12s %12s %10s %12s %12s\n",
			"Year", "Action", "Roth", "IRA", "Basis", "TotalCash", "TotalTax")
		for _, st := range s.Path {
			fmt.Fprintf(buf, "%-6d %-28s %12s %12s %10s %12s %12s\n",
				st.Year,
				st.Action.String(),
				st.RothBalance.StringFixed(0),
				st.IRABalance.StringFixed(0),
				st.IRABasis.StringFixed(0),
				st.TotalCash.StringFixed(0),
				st.TotalTax.StringFixed(0))
		}
		fmt.Fprintf(buf, "Total cost (%s): %s\n\n", s.Objective, s.TotalCost.StringFixed(0))
	}
	return buf.Bytes(), nil
}
