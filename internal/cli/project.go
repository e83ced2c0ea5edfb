package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/firecalc/compound-calculator/internal/calculation"
	"github.com/firecalc/compound-calculator/internal/domain"
)

var flagScenario string

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project a single scenario from the plan",
	RunE:  runProject,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Project every scenario and merge them onto one timeline",
	RunE:  runCompare,
}

func init() {
	projectCmd.Flags().StringVarP(&flagScenario, "scenario", "s", "", "Scenario name (default: first in the plan)")
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(compareCmd)
}

func runProject(_ *cobra.Command, _ []string) error {
	plan, prefs, err := loadPlan()
	if err != nil {
		return err
	}

	scenario, err := pickScenario(plan, flagScenario)
	if err != nil {
		return err
	}

	engine := newEngine()
	result := engine.RunScenario(*scenario, time.Now())
	comparison := &domain.Comparison{
		Scenarios: []domain.ScenarioResult{result},
		Chart:     calculation.MergeForChart([]domain.ScenarioResult{result}),
	}
	return render(comparison, formatConfig(plan, prefs))
}

func runCompare(_ *cobra.Command, _ []string) error {
	plan, prefs, err := loadPlan()
	if err != nil {
		return err
	}

	engine := newEngine()
	comparison, err := engine.RunPlan(plan, time.Now())
	if err != nil {
		return err
	}
	return render(comparison, formatConfig(plan, prefs))
}

func pickScenario(plan *domain.Plan, name string) (*domain.Scenario, error) {
	if name == "" {
		return &plan.Scenarios[0], nil
	}
	for i := range plan.Scenarios {
		if plan.Scenarios[i].Name == name {
			return &plan.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("no scenario named %q in plan %q", name, plan.Name)
}
