package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firecalc/compound-calculator/internal/config"
)

var (
	flagSetCurrency    string
	flagSetDefaultPlan string
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or update saved preferences",
	RunE:  runPrefs,
}

func init() {
	prefsCmd.Flags().StringVar(&flagSetCurrency, "set-currency", "", "Save a display currency (3-letter code)")
	prefsCmd.Flags().StringVar(&flagSetDefaultPlan, "set-default-plan", "", "Save a default plan file path")
	rootCmd.AddCommand(prefsCmd)
}

func runPrefs(_ *cobra.Command, _ []string) error {
	prefs, err := config.LoadPreferences()
	if err != nil {
		return err
	}

	changed := false
	if flagSetCurrency != "" {
		if len(flagSetCurrency) != 3 {
			return fmt.Errorf("currency must be a 3-letter ISO code, got %q", flagSetCurrency)
		}
		prefs.Display.Currency = flagSetCurrency
		changed = true
	}
	if flagSetDefaultPlan != "" {
		prefs.Files.DefaultPlan = flagSetDefaultPlan
		changed = true
	}

	if changed {
		if err := config.SavePreferences(prefs); err != nil {
			return err
		}
	}

	fmt.Printf("preferences file: %s\n", config.PrefsPath())
	fmt.Printf("  currency:     %s\n", prefs.Display.Currency)
	fmt.Printf("  date format:  %s\n", prefs.Display.DateFormat)
	fmt.Printf("  default plan: %s\n", prefs.Files.DefaultPlan)
	fmt.Printf("  autosave:     enabled=%v debounce=%dms\n", prefs.Autosave.Enabled, prefs.Autosave.DebounceMillis)
	return nil
}
