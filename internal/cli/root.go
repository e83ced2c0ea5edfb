package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/firecalc/compound-calculator/internal/calculation"
	"github.com/firecalc/compound-calculator/internal/config"
	"github.com/firecalc/compound-calculator/internal/domain"
	"github.com/firecalc/compound-calculator/internal/output"
)

var (
	flagPlan     string
	flagFormat   string
	flagCurrency string
	flagBaseYear int
	flagWrite    bool
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "firecalc",
	Short: "Compound growth and FIRE projection calculator",
	Long:  "Project the growth of periodically-funded investment accounts under compound interest, fees and inflation, and compare scenarios against a financial-independence target.",
	RunE:  runCompare,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagPlan, "plan", "f", "", "Plan file (YAML); falls back to the preferences default")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "o", "console", "Output format (console, csv, json)")
	rootCmd.PersistentFlags().StringVar(&flagCurrency, "currency", "", "Display currency, 3-letter code; overrides plan and preferences")
	rootCmd.PersistentFlags().IntVar(&flagBaseYear, "base-year", 0, "Calendar year anchoring withdrawal dates (default: current year)")
	rootCmd.PersistentFlags().BoolVarP(&flagWrite, "write", "w", false, "Write output to a timestamped file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging to stderr")
}

// stderrLogger adapts the engine's Logger interface to stderr prints.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...) }
func (stderrLogger) Infof(format string, args ...any)  { fmt.Fprintf(os.Stderr, "INFO  "+format+"\n", args...) }
func (stderrLogger) Warnf(format string, args ...any)  { fmt.Fprintf(os.Stderr, "WARN  "+format+"\n", args...) }
func (stderrLogger) Errorf(format string, args ...any) { fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...) }

// newEngine is the shared engine construction path used by all commands.
func newEngine() *calculation.Engine {
	engine := calculation.NewEngine()
	if flagDebug {
		engine.Debug = true
		engine.SetLogger(stderrLogger{})
	}
	return engine
}

// loadPlan resolves the plan file from the flag or the saved preferences
// and parses it.
func loadPlan() (*domain.Plan, config.Preferences, error) {
	prefs, err := config.LoadPreferences()
	if err != nil {
		return nil, prefs, err
	}

	path := flagPlan
	if path == "" {
		path = prefs.Files.DefaultPlan
	}
	if path == "" {
		return nil, prefs, fmt.Errorf("no plan file: pass --plan or set a default with 'firecalc prefs'")
	}

	plan, err := config.NewInputParser().LoadPlan(path)
	if err != nil {
		return nil, prefs, err
	}
	return plan, prefs, nil
}

// formatConfig builds the formatter configuration with currency precedence
// flag > plan > preferences.
func formatConfig(plan *domain.Plan, prefs config.Preferences) output.FormatConfig {
	cfg := output.DefaultFormatConfig()
	if prefs.Display.Currency != "" {
		cfg.Currency = prefs.Display.Currency
	}
	if prefs.Display.DateFormat != "" {
		cfg.DateFormat = prefs.Display.DateFormat
	}
	if plan != nil && plan.Currency != "" {
		cfg.Currency = plan.Currency
	}
	if flagCurrency != "" {
		cfg.Currency = flagCurrency
	}
	cfg.BaseYear = flagBaseYear
	return cfg
}

// fileExtension maps a formatter name to a file extension for --write.
func fileExtension(name string) string {
	if name == "console" {
		return "txt"
	}
	return name
}

// render resolves the requested formatter and writes the result to stdout,
// or to a timestamped file when --write is set.
func render(comparison *domain.Comparison, cfg output.FormatConfig) error {
	formatter := output.GetFormatterByName(flagFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q, available: %v", flagFormat, output.AvailableFormatterNames())
	}
	if flagWrite {
		name, err := output.WriteFormatted(formatter, comparison, cfg, fileExtension(formatter.Name()))
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", name)
		return nil
	}
	data, err := formatter.Format(comparison, cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
