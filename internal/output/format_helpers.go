package output

import (
	"math"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/firecalc/compound-calculator/pkg/dateutil"
)

// FormatConfig is the explicit formatting configuration handed to every
// formatter. There is no module-level locale state: the projection core
// returns numbers only, and rendering/export collaborators receive their
// currency and date choices through this value.
type FormatConfig struct {
	// Currency is a 3-letter ISO code driving symbol, grouping and decimal
	// rules for monetary strings.
	Currency string
	// DateFormat is the time layout for withdrawal date labels.
	DateFormat string
	// BaseYear anchors withdrawal scheduling ("current calendar year" of
	// the run); 0 means the wall-clock year.
	BaseYear int
}

// DefaultFormatConfig returns the formatting defaults used when the caller
// carries no preferences.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{Currency: money.EUR, DateFormat: "02/01/2006"}
}

// Date renders t using the configured layout, falling back to the
// DD/MM/YYYY default when no layout is set.
func (fc FormatConfig) Date(t time.Time) string {
	layout := fc.DateFormat
	if layout == "" {
		layout = dateutil.SlashDate
	}
	return t.Format(layout)
}

// Money renders v in the configured currency with that currency's locale
// conventions (symbol, thousands grouping, fraction digits).
func (fc FormatConfig) Money(v float64) string {
	cur := money.GetCurrency(fc.Currency)
	if cur == nil {
		cur = money.GetCurrency(money.EUR)
	}
	units := int64(math.Round(v * math.Pow10(cur.Fraction)))
	return money.New(units, cur.Code).Display()
}

// Amount renders v as a plain fixed-point number with two decimals, for
// CSV and other machine-read exports where currency symbols don't belong.
func Amount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// YearLabel renders a projection year without trailing zero decimals
// (2 stays "2", a fractional final year 2.5 stays "2.5").
func YearLabel(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// Percent renders a percentage value with two decimals and a % sign.
func Percent(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2) + "%"
}
