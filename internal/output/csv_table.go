package output

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/firecalc/compound-calculator/internal/calculation"
	"github.com/firecalc/compound-calculator/internal/domain"
)

// CSVTableExporter emits the yearly breakdown table, one row per scenario
// year boundary, with the withdrawal availability date resolved per row.
type CSVTableExporter struct{}

func (c CSVTableExporter) Name() string { return "csv" }

func (c CSVTableExporter) Format(results *domain.Comparison, cfg FormatConfig) ([]byte, error) {
	baseYear := cfg.BaseYear
	if baseYear == 0 {
		baseYear = time.Now().Year()
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "EndingBalance", "Contributions", "Growth", "AnnualInterest", "AllowedWithdrawal", "WithdrawalDate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, sc := range results.Scenarios {
		for _, row := range sc.Projection.Table {
			date, _ := calculation.WithdrawalDate(row.Year, baseYear)
			label := cfg.Date(date)
			record := []string{
				sc.Name,
				YearLabel(row.Year),
				Amount(row.EndingBalance),
				Amount(row.Contributions),
				Amount(row.Growth),
				Amount(row.AnnualInterest),
				Amount(row.AllowedWithdrawal),
				label,
			}
			if err := w.Write(record); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
