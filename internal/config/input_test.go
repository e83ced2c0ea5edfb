package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firecalc/compound-calculator/internal/domain"
)

const validPlanYAML = `
name: Test plan
currency: GBP
scenarios:
  - name: Baseline
    color: "#2563eb"
    settings:
      principal: 10000
      contribution: 500
      contribution_frequency: 12
      annual_return: 7
      compounding_frequency: 12
      years: 25
      fund_expense_ratio: 0.22
      platform_fee: 0.45
      inflation_rate: 2
      annual_expenses: 24000
      purchase_date: "20/01/2024"
  - name: No fees
    settings:
      principal: 10000
      contribution: 500
      contribution_frequency: 12
      annual_return: 7
      compounding_frequency: 1
      years: 25
`

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPlan(t *testing.T) {
	parser := NewInputParser()
	plan, err := parser.LoadPlan(writePlan(t, validPlanYAML))
	require.NoError(t, err)

	assert.Equal(t, "Test plan", plan.Name)
	assert.Equal(t, "GBP", plan.Currency)
	require.Len(t, plan.Scenarios, 2)
	assert.Equal(t, "Baseline", plan.Scenarios[0].Name)
	assert.Equal(t, 25.0, plan.Scenarios[0].Settings.Years)
	assert.Equal(t, "20/01/2024", plan.Scenarios[0].Settings.PurchaseDate)

	// IDs are assigned when the file omits them, and are unique.
	assert.NotEmpty(t, plan.Scenarios[0].ID)
	assert.NotEmpty(t, plan.Scenarios[1].ID)
	assert.NotEqual(t, plan.Scenarios[0].ID, plan.Scenarios[1].ID)
}

func TestLoadPlanMissingFile(t *testing.T) {
	_, err := NewInputParser().LoadPlan(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadPlanBadYAML(t *testing.T) {
	_, err := NewInputParser().LoadPlan(writePlan(t, "scenarios: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse YAML")
}

func TestValidatePlanRejections(t *testing.T) {
	valid := func() domain.Plan {
		return domain.Plan{
			Scenarios: []domain.Scenario{{
				ID:   "a",
				Name: "Baseline",
				Settings: domain.Settings{
					Principal:             1000,
					Contribution:          100,
					ContributionFrequency: 12,
					CompoundingFrequency:  12,
					Years:                 10,
				},
			}},
		}
	}

	parser := NewInputParser()
	require.NoError(t, parser.ValidatePlan(func() *domain.Plan { p := valid(); return &p }()))

	tests := map[string]func(*domain.Plan){
		"no scenarios":         func(p *domain.Plan) { p.Scenarios = nil },
		"bad currency":         func(p *domain.Plan) { p.Currency = "EURO" },
		"missing name":         func(p *domain.Plan) { p.Scenarios[0].Name = "" },
		"negative principal":   func(p *domain.Plan) { p.Scenarios[0].Settings.Principal = -1 },
		"bad cadence":          func(p *domain.Plan) { p.Scenarios[0].Settings.ContributionFrequency = 3 },
		"bad grid":             func(p *domain.Plan) { p.Scenarios[0].Settings.CompoundingFrequency = 7 },
		"zero years":           func(p *domain.Plan) { p.Scenarios[0].Settings.Years = 0 },
		"return below -100":    func(p *domain.Plan) { p.Scenarios[0].Settings.AnnualReturn = -150 },
		"negative fee":         func(p *domain.Plan) { p.Scenarios[0].Settings.PlatformFee = -1 },
		"fees above 100":       func(p *domain.Plan) { p.Scenarios[0].Settings.FundExpenseRatio = 101 },
		"extreme inflation":    func(p *domain.Plan) { p.Scenarios[0].Settings.InflationRate = 30 },
		"negative expenses":    func(p *domain.Plan) { p.Scenarios[0].Settings.AnnualExpenses = -1 },
		"invalid purchase":     func(p *domain.Plan) { p.Scenarios[0].Settings.PurchaseDate = "30/02/2024" },
		"duplicate ids":        func(p *domain.Plan) { p.Scenarios = append(p.Scenarios, p.Scenarios[0]) },
	}
	for name, mutate := range tests {
		p := valid()
		mutate(&p)
		assert.Error(t, parser.ValidatePlan(&p), name)
	}
}

func TestSavePlanRoundTrip(t *testing.T) {
	parser := NewInputParser()
	path := filepath.Join(t.TempDir(), "out.yaml")

	example := parser.CreateExamplePlan()
	require.NoError(t, parser.SavePlan(path, example))

	loaded, err := parser.LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, example.Name, loaded.Name)
	require.Len(t, loaded.Scenarios, len(example.Scenarios))
	assert.Equal(t, example.Scenarios[0].Settings, loaded.Scenarios[0].Settings)
}

func TestCreateExamplePlanIsValid(t *testing.T) {
	parser := NewInputParser()
	require.NoError(t, parser.ValidatePlan(parser.CreateExamplePlan()))
}
