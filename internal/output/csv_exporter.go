package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/rollover-planner/internal/domain"
)

// CSVExporter writes one row per year per scenario.
type CSVExporter struct{}

func (c CSVExporter) Name() string { return "csv" }

func (c CSVExporter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Objective", "Year", "Action", "RolloverAmount", "RothBalance", "IRABalance", "IRABasis", "TotalCash", "TotalTax", "TotalCost"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range results.Summaries {
		s := &results.Summaries[i]
		for _, st := range s.Path {
			row := []string{
				s.Name,
				string(s.Objective),
				strconv.Itoa(st.Year),
				string(st.Action.Type),
				st.Action.Amount.StringFixed(0),
				st.RothBalance.StringFixed(0),
				st.IRABalance.StringFixed(0),
				st.IRABasis.StringFixed(0),
				st.TotalCash.StringFixed(0),
				st.TotalTax.StringFixed(0),
				s.TotalCost.StringFixed(0),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
