package calculation

import (
	"math"
	"time"

	"github.com/firecalc/compound-calculator/pkg/dateutil"
)

// WithdrawalDate maps a projected year value to the concrete calendar date
// at which that year's allowed withdrawal becomes available, plus a
// DD/MM/YYYY label for tables and exports. The payout date is December 31
// of currentYear−1+ceil(yearValue), floored at the current year so that
// fractional first years never schedule a payout in the past.
func WithdrawalDate(yearValue float64, currentYear int) (time.Time, string) {
	payoutYear := currentYear - 1 + int(math.Ceil(yearValue))
	if payoutYear < currentYear {
		payoutYear = currentYear
	}
	date := time.Date(payoutYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	return date, date.Format(dateutil.SlashDate)
}
