package calculation

import (
	"sort"

	"github.com/firecalc/compound-calculator/internal/domain"
)

// MergeForChart merges independent scenario projections into one
// time-aligned series for comparative charting. Each output record maps
// scenario ID to discounted balance for scenarios that reached a year
// boundary at that year; scenarios running on a different compounding grid
// leave their key absent rather than zero. Records are sorted ascending by
// year.
func MergeForChart(results []domain.ScenarioResult) []domain.MergedPoint {
	byYear := make(map[float64]map[string]float64)
	for _, sc := range results {
		for _, pt := range sc.Projection.ChartPoints {
			record, ok := byYear[pt.Year]
			if !ok {
				record = make(map[string]float64, len(results))
				byYear[pt.Year] = record
			}
			record[sc.ScenarioID] = pt.Balance
		}
	}

	years := make([]float64, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Float64s(years)

	merged := make([]domain.MergedPoint, 0, len(years))
	for _, year := range years {
		merged = append(merged, domain.MergedPoint{Year: year, Balances: byYear[year]})
	}
	return merged
}
