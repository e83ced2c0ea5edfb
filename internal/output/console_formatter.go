package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/firecalc/compound-calculator/internal/calculation"
	"github.com/firecalc/compound-calculator/internal/domain"
)

// ConsoleFormatter renders a human-readable comparison: per-scenario totals
// and FIRE metrics followed by the yearly table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.Comparison, cfg FormatConfig) ([]byte, error) {
	baseYear := cfg.BaseYear
	if baseYear == 0 {
		baseYear = time.Now().Year()
	}

	buf := &bytes.Buffer{}
	for i, sc := range results.Scenarios {
		if i > 0 {
			fmt.Fprintln(buf)
		}
		fmt.Fprintf(buf, "%s\n", sc.Name)
		fmt.Fprintf(buf, "  Ending balance (today's money): %s\n", cfg.Money(sc.Projection.Totals.EndingBalance))
		fmt.Fprintf(buf, "  Total contributions:            %s\n", cfg.Money(sc.Projection.Totals.Contributions))
		fmt.Fprintf(buf, "  Total growth:                   %s\n", cfg.Money(sc.Projection.Totals.Growth))

		fm := sc.Projection.FireMetrics
		if fm.FireNumber > 0 {
			fmt.Fprintf(buf, "  FIRE number:                    %s\n", cfg.Money(fm.FireNumber))
			switch {
			case fm.FireYear == nil:
				fmt.Fprintf(buf, "  FIRE target:                    not reached within the projection horizon\n")
			case *fm.FireYear == 0:
				fmt.Fprintf(buf, "  FIRE target:                    already met at start\n")
			default:
				fmt.Fprintf(buf, "  FIRE target:                    reached at year %s\n", YearLabel(*fm.FireYear))
			}
		}

		w := tabwriter.NewWriter(buf, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  Year\tEnd Balance\tContributions\tGrowth\tInterest\t4% Withdrawal\tAvailable")
		for _, row := range sc.Projection.Table {
			date, _ := calculation.WithdrawalDate(row.Year, baseYear)
			available := cfg.Date(date)
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				YearLabel(row.Year),
				cfg.Money(row.EndingBalance),
				cfg.Money(row.Contributions),
				cfg.Money(row.Growth),
				cfg.Money(row.AnnualInterest),
				cfg.Money(row.AllowedWithdrawal),
				available,
			)
		}
		if err := w.Flush(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
