package calculation

import (
	"testing"

	"github.com/firecalc/compound-calculator/internal/domain"
)

func scenarioResult(id string, points ...domain.ChartPoint) domain.ScenarioResult {
	return domain.ScenarioResult{
		ScenarioID: id,
		Name:       id,
		Projection: domain.ProjectionResult{ChartPoints: points},
	}
}

func TestMergeForChartAlignsSharedYears(t *testing.T) {
	a := scenarioResult("a",
		domain.ChartPoint{Year: 0, Balance: 100},
		domain.ChartPoint{Year: 1, Balance: 110},
		domain.ChartPoint{Year: 2, Balance: 121},
	)
	b := scenarioResult("b",
		domain.ChartPoint{Year: 0, Balance: 200},
		domain.ChartPoint{Year: 1, Balance: 210},
		domain.ChartPoint{Year: 2, Balance: 220},
	)

	merged := MergeForChart([]domain.ScenarioResult{a, b})
	if len(merged) != 3 {
		t.Fatalf("expected 3 merged points, got %d", len(merged))
	}
	for i, pt := range merged {
		if len(pt.Balances) != 2 {
			t.Fatalf("point %d: expected both scenarios, got %v", i, pt.Balances)
		}
	}
	if merged[1].Balances["a"] != 110 || merged[1].Balances["b"] != 210 {
		t.Fatalf("year 1 balances wrong: %v", merged[1].Balances)
	}
}

func TestMergeForChartLeavesGapsForDifferentGrids(t *testing.T) {
	// Different compounding grids produce different year sets; a scenario
	// without a boundary at a year must be absent there, not zero.
	annual := scenarioResult("annual",
		domain.ChartPoint{Year: 0, Balance: 100},
		domain.ChartPoint{Year: 1, Balance: 105},
	)
	semi := scenarioResult("semi",
		domain.ChartPoint{Year: 0, Balance: 100},
		domain.ChartPoint{Year: 1, Balance: 104},
		domain.ChartPoint{Year: 1.5, Balance: 106},
	)

	merged := MergeForChart([]domain.ScenarioResult{annual, semi})
	if len(merged) != 3 {
		t.Fatalf("expected 3 merged points, got %d", len(merged))
	}

	last := merged[len(merged)-1]
	if last.Year != 1.5 {
		t.Fatalf("expected final year 1.5, got %v", last.Year)
	}
	if _, present := last.Balances["annual"]; present {
		t.Fatalf("annual scenario must be absent at year 1.5")
	}
	if last.Balances["semi"] != 106 {
		t.Fatalf("semi scenario missing at year 1.5: %v", last.Balances)
	}
}

func TestMergeForChartSortsAscending(t *testing.T) {
	sc := scenarioResult("s",
		domain.ChartPoint{Year: 2, Balance: 3},
		domain.ChartPoint{Year: 0, Balance: 1},
		domain.ChartPoint{Year: 1, Balance: 2},
	)
	merged := MergeForChart([]domain.ScenarioResult{sc})
	for i := 1; i < len(merged); i++ {
		if merged[i].Year <= merged[i-1].Year {
			t.Fatalf("merged series not ascending: %v after %v", merged[i].Year, merged[i-1].Year)
		}
	}
}

func TestMergeForChartEmpty(t *testing.T) {
	if got := MergeForChart(nil); len(got) != 0 {
		t.Fatalf("expected empty merge, got %v", got)
	}
}
