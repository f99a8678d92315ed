package output

import (
	"encoding/json"

	"github.com/rpgo/rollover-planner/internal/domain"
)

// JSONFormatter marshals the full comparison, indented for readability.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
