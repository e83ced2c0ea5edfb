package domain

// ContributionFrequencies is the set of supported nominal contribution
// cadences, in deposits per year.
var ContributionFrequencies = []int{1, 4, 12, 26, 52}

// CompoundingFrequencies is the set of supported compounding grids, in
// periods per year.
var CompoundingFrequencies = []int{1, 2, 4, 12, 52, 365}

// ValidContributionFrequency reports whether f is a supported cadence.
func ValidContributionFrequency(f int) bool {
	for _, v := range ContributionFrequencies {
		if f == v {
			return true
		}
	}
	return false
}

// ValidCompoundingFrequency reports whether f is a supported grid.
func ValidCompoundingFrequency(f int) bool {
	for _, v := range CompoundingFrequencies {
		if f == v {
			return true
		}
	}
	return false
}

// Settings is the immutable input of a single projection run. Rates are
// expressed in percent (5 means 5%), matching how they are entered.
type Settings struct {
	Principal             float64 `json:"principal" yaml:"principal"`
	Contribution          float64 `json:"contribution" yaml:"contribution"`
	ContributionFrequency int     `json:"contribution_frequency" yaml:"contribution_frequency"`
	AnnualReturn          float64 `json:"annual_return" yaml:"annual_return"`
	CompoundingFrequency  int     `json:"compounding_frequency" yaml:"compounding_frequency"`
	Years                 float64 `json:"years" yaml:"years"`
	FundExpenseRatio      float64 `json:"fund_expense_ratio" yaml:"fund_expense_ratio"`
	PlatformFee           float64 `json:"platform_fee" yaml:"platform_fee"`
	InflationRate         float64 `json:"inflation_rate" yaml:"inflation_rate"`
	AnnualExpenses        float64 `json:"annual_expenses" yaml:"annual_expenses"`

	// Identification fields, carried through for display and export. Only
	// PurchaseDate feeds the math: it determines first-year contribution
	// proration.
	PurchasePrice float64 `json:"purchase_price,omitempty" yaml:"purchase_price,omitempty"`
	PurchaseDate  string  `json:"purchase_date,omitempty" yaml:"purchase_date,omitempty"`
	Shares        float64 `json:"shares,omitempty" yaml:"shares,omitempty"`
	TargetBalance float64 `json:"target_balance,omitempty" yaml:"target_balance,omitempty"`
}

// Scenario is a named, independently-run configuration. Scenarios in a plan
// share nothing but the display timeline.
type Scenario struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Color    string   `json:"color,omitempty" yaml:"color,omitempty"`
	Settings Settings `json:"settings" yaml:"settings"`
}

// Plan is a set of scenarios loaded from a single plan file.
type Plan struct {
	Name      string     `json:"name" yaml:"name"`
	Currency  string     `json:"currency,omitempty" yaml:"currency,omitempty"`
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios"`
}

// ChartPoint is one point of a scenario's balance-over-time series. Balance
// is inflation-discounted (present value).
type ChartPoint struct {
	Year    float64 `json:"year"`
	Balance float64 `json:"balance"`
}

// YearlyBreakdown is one table row per year boundary. EndingBalance and
// AllowedWithdrawal are present-value; Contributions is nominal cumulative
// (principal included); AnnualInterest is the marginal growth since the
// previous boundary.
type YearlyBreakdown struct {
	Year              float64 `json:"year"`
	EndingBalance     float64 `json:"ending_balance"`
	Contributions     float64 `json:"contributions"`
	Growth            float64 `json:"growth"`
	AnnualInterest    float64 `json:"annual_interest"`
	AllowedWithdrawal float64 `json:"allowed_withdrawal"`
}

// Totals summarizes a full projection run.
type Totals struct {
	Contributions float64 `json:"contributions"`
	Growth        float64 `json:"growth"`
	EndingBalance float64 `json:"ending_balance"`
}

// FireMetrics reports the financial-independence target and when the
// discounted balance first reached it. FireYear is nil when the target was
// never reached (and always nil for a zero target). YearsToFire duplicates
// FireYear; the duplication is kept for compatibility with existing
// consumers, the two are not semantically distinct.
type FireMetrics struct {
	FireNumber  float64  `json:"fire_number"`
	FireYear    *float64 `json:"fire_year"`
	YearsToFire *float64 `json:"years_to_fire"`
}

// ProjectionResult is the pure output of one projection run. It is produced
// fresh on every settings change and owned by the caller.
type ProjectionResult struct {
	ChartPoints []ChartPoint      `json:"chart_points"`
	Table       []YearlyBreakdown `json:"table"`
	Totals      Totals            `json:"totals"`
	FireMetrics FireMetrics       `json:"fire_metrics"`
}

// ScenarioResult pairs a scenario's identity with its projection.
type ScenarioResult struct {
	ScenarioID string           `json:"scenario_id"`
	Name       string           `json:"name"`
	Color      string           `json:"color,omitempty"`
	Projection ProjectionResult `json:"projection"`
}

// MergedPoint is one time slot of the cross-scenario chart series. Balances
// holds one entry per scenario that reached a year boundary at this year;
// scenarios on a different compounding grid are simply absent. Renderers
// connect series across absent slots rather than treating them as zero.
type MergedPoint struct {
	Year     float64            `json:"year"`
	Balances map[string]float64 `json:"balances"`
}

// Comparison is the result of running every scenario of a plan: one
// projection per scenario plus the time-aligned chart merge.
type Comparison struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Chart     []MergedPoint    `json:"chart"`
}
