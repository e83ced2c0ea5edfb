package output

import (
	"encoding/json"

	"github.com/firecalc/compound-calculator/internal/domain"
)

// JSONFormatter emits the full comparison (per-scenario projections plus
// the merged chart series) as indented JSON. Numbers stay raw; the
// FormatConfig does not apply to machine output.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.Comparison, _ FormatConfig) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
