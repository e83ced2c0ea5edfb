package calculation

import (
	"fmt"
	"time"

	"github.com/firecalc/compound-calculator/internal/domain"
	"github.com/firecalc/compound-calculator/pkg/dateutil"
)

// Engine orchestrates projection runs across the scenarios of a plan. The
// engine itself holds no mutable state between runs; it exists to carry the
// logger and resolve per-scenario context (first-year proration) before
// handing off to the pure Project function.
type Engine struct {
	Debug  bool
	Logger Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the engine logger. If nil is provided, a no-op logger is
// used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunScenario projects a single scenario. The purchase date, when present
// and valid, determines how many months of the first year contributions
// apply to; an absent or invalid date means a full first year, and a future
// date means none.
func (e *Engine) RunScenario(sc domain.Scenario, today time.Time) domain.ScenarioResult {
	opts := &Options{RemainingContributionMonths: 12}
	if sc.Settings.PurchaseDate != "" {
		purchase := dateutil.Normalize(sc.Settings.PurchaseDate)
		if purchase.IsZero() {
			e.Logger.Warnf("scenario %q: unparseable purchase date %q, assuming full first year", sc.Name, sc.Settings.PurchaseDate)
		} else {
			opts.RemainingContributionMonths = float64(dateutil.MonthsRemainingInYear(purchase, today))
		}
	}

	if e.Debug {
		e.Logger.Debugf("scenario %q: remaining contribution months %.0f", sc.Name, opts.RemainingContributionMonths)
	}

	projection := Project(sc.Settings, opts)

	if e.Debug {
		e.Logger.Debugf("scenario %q: %d table rows, ending balance %.2f", sc.Name, len(projection.Table), projection.Totals.EndingBalance)
		if projection.FireMetrics.FireYear != nil {
			e.Logger.Debugf("scenario %q: FIRE target %.2f reached at year %.2f", sc.Name, projection.FireMetrics.FireNumber, *projection.FireMetrics.FireYear)
		}
	}

	return domain.ScenarioResult{
		ScenarioID: sc.ID,
		Name:       sc.Name,
		Color:      sc.Color,
		Projection: projection,
	}
}

// RunPlan projects every scenario of a plan and merges the results into a
// comparison with a shared chart timeline.
func (e *Engine) RunPlan(plan *domain.Plan, today time.Time) (*domain.Comparison, error) {
	if plan == nil || len(plan.Scenarios) == 0 {
		return nil, fmt.Errorf("plan has no scenarios")
	}

	results := make([]domain.ScenarioResult, len(plan.Scenarios))
	for i, sc := range plan.Scenarios {
		results[i] = e.RunScenario(sc, today)
	}

	return &domain.Comparison{
		Scenarios: results,
		Chart:     MergeForChart(results),
	}, nil
}
