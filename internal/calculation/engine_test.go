package calculation

import (
	"testing"
	"time"

	"github.com/firecalc/compound-calculator/internal/domain"
)

var engineToday = time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

func engineScenario(id string) domain.Scenario {
	return domain.Scenario{
		ID:   id,
		Name: id,
		Settings: domain.Settings{
			Principal:             1000,
			Contribution:          100,
			ContributionFrequency: 12,
			CompoundingFrequency:  12,
			Years:                 2,
		},
	}
}

func TestRunScenarioResolvesPurchaseDate(t *testing.T) {
	engine := NewEngine()

	sc := engineScenario("a")
	sc.Settings.PurchaseDate = "2024-01-20"
	result := engine.RunScenario(sc, engineToday)

	// 7 months remain in the reference year, so the first compounding year
	// carries 7/12 of the contributions.
	want := 1000 + 100*7.0/12.0*12 + 1200
	got := result.Projection.Totals.Contributions
	if got < want-1e-6 || got > want+1e-6 {
		t.Fatalf("expected contributions %v, got %v", want, got)
	}
}

func TestRunScenarioFuturePurchaseDate(t *testing.T) {
	engine := NewEngine()

	sc := engineScenario("a")
	sc.Settings.PurchaseDate = "2024-11-05"
	sc.Settings.Years = 1
	result := engine.RunScenario(sc, engineToday)

	if result.Projection.Totals.Contributions != 1000 {
		t.Fatalf("future purchase must suppress first-year contributions, got %v", result.Projection.Totals.Contributions)
	}
}

func TestRunScenarioInvalidPurchaseDateFallsBack(t *testing.T) {
	engine := NewEngine()

	sc := engineScenario("a")
	sc.Settings.PurchaseDate = "not a date"
	withBad := engine.RunScenario(sc, engineToday)

	sc.Settings.PurchaseDate = ""
	without := engine.RunScenario(sc, engineToday)

	if withBad.Projection.Totals.Contributions != without.Projection.Totals.Contributions {
		t.Fatalf("invalid purchase date must behave like no purchase date")
	}
}

func TestRunPlan(t *testing.T) {
	engine := NewEngine()
	plan := &domain.Plan{
		Name:      "test",
		Scenarios: []domain.Scenario{engineScenario("a"), engineScenario("b")},
	}

	comparison, err := engine.RunPlan(plan, engineToday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comparison.Scenarios) != 2 {
		t.Fatalf("expected 2 scenario results, got %d", len(comparison.Scenarios))
	}
	if len(comparison.Chart) == 0 {
		t.Fatalf("expected merged chart points")
	}
	for _, pt := range comparison.Chart {
		if len(pt.Balances) != 2 {
			t.Fatalf("identical grids must align at every year, got %v", pt.Balances)
		}
	}
}

func TestRunPlanEmpty(t *testing.T) {
	engine := NewEngine()
	if _, err := engine.RunPlan(&domain.Plan{}, engineToday); err == nil {
		t.Fatalf("expected error for empty plan")
	}
	if _, err := engine.RunPlan(nil, engineToday); err == nil {
		t.Fatalf("expected error for nil plan")
	}
}
