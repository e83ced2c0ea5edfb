package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/firecalc/compound-calculator/internal/domain"
	"github.com/firecalc/compound-calculator/pkg/dateutil"
)

// InputParser handles parsing of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadPlan loads a plan from a YAML file, assigns IDs to scenarios that
// lack one, and validates the result.
func (ip *InputParser) LoadPlan(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	for i := range plan.Scenarios {
		if plan.Scenarios[i].ID == "" {
			plan.Scenarios[i].ID = uuid.NewString()
		}
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// SavePlan writes a plan back to a YAML file.
func (ip *InputParser) SavePlan(filename string, plan *domain.Plan) error {
	data, err := yaml.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ValidatePlan validates the loaded plan.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if len(plan.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	if plan.Currency != "" && len(plan.Currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter ISO code, got %q", plan.Currency)
	}

	seen := make(map[string]bool, len(plan.Scenarios))
	for i, scenario := range plan.Scenarios {
		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
		if seen[scenario.ID] {
			return fmt.Errorf("scenario %d (%s): duplicate id %q", i, scenario.Name, scenario.ID)
		}
		seen[scenario.ID] = true
	}

	return nil
}

// validateScenario validates a single scenario.
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	return ip.validateSettings(&scenario.Settings)
}

// validateSettings validates a scenario's projection settings. The
// projection engine clamps out-of-domain numbers instead of failing, so
// range enforcement for user input happens here.
func (ip *InputParser) validateSettings(s *domain.Settings) error {
	if s.Principal < 0 {
		return fmt.Errorf("principal cannot be negative")
	}
	if s.Contribution < 0 {
		return fmt.Errorf("contribution cannot be negative")
	}
	if !domain.ValidContributionFrequency(s.ContributionFrequency) {
		return fmt.Errorf("contribution frequency must be one of %v, got %d", domain.ContributionFrequencies, s.ContributionFrequency)
	}
	if !domain.ValidCompoundingFrequency(s.CompoundingFrequency) {
		return fmt.Errorf("compounding frequency must be one of %v, got %d", domain.CompoundingFrequencies, s.CompoundingFrequency)
	}
	if s.Years <= 0 {
		return fmt.Errorf("years must be positive")
	}
	if s.AnnualReturn < -100 {
		return fmt.Errorf("annual return cannot be below -100%%")
	}
	if s.FundExpenseRatio < 0 {
		return fmt.Errorf("fund expense ratio cannot be negative")
	}
	if s.PlatformFee < 0 {
		return fmt.Errorf("platform fee cannot be negative")
	}
	if s.FundExpenseRatio+s.PlatformFee > 100 {
		return fmt.Errorf("combined fees cannot exceed 100%%")
	}
	if s.InflationRate < -10 || s.InflationRate > 20 {
		return fmt.Errorf("inflation rate must be between -10%% and 20%%, got %.2f%%", s.InflationRate)
	}
	if s.AnnualExpenses < 0 {
		return fmt.Errorf("annual expenses cannot be negative")
	}
	if s.Shares < 0 {
		return fmt.Errorf("share count cannot be negative")
	}
	if s.PurchaseDate != "" && dateutil.Normalize(s.PurchaseDate).IsZero() {
		return fmt.Errorf("purchase date %q is not a valid date", s.PurchaseDate)
	}
	return nil
}

// CreateExamplePlan creates an example plan with two comparable scenarios.
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	return &domain.Plan{
		Name:     "Index fund vs aggressive saver",
		Currency: "EUR",
		Scenarios: []domain.Scenario{
			{
				ID:    uuid.NewString(),
				Name:  "Steady monthly",
				Color: "#2563eb",
				Settings: domain.Settings{
					Principal:             10000,
					Contribution:          500,
					ContributionFrequency: 12,
					AnnualReturn:          7,
					CompoundingFrequency:  12,
					Years:                 25,
					FundExpenseRatio:      0.22,
					PlatformFee:           0.45,
					InflationRate:         2,
					AnnualExpenses:        24000,
					PurchaseDate:          "2024-01-20",
				},
			},
			{
				ID:    uuid.NewString(),
				Name:  "Aggressive quarterly",
				Color: "#dc2626",
				Settings: domain.Settings{
					Principal:             25000,
					Contribution:          4500,
					ContributionFrequency: 4,
					AnnualReturn:          8,
					CompoundingFrequency:  4,
					Years:                 25,
					FundExpenseRatio:      0.6,
					PlatformFee:           0.25,
					InflationRate:         2,
					AnnualExpenses:        24000,
				},
			},
		},
	}
}
