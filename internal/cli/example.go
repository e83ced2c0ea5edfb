package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/firecalc/compound-calculator/internal/config"
)

var exampleCmd = &cobra.Command{
	Use:   "example [file]",
	Short: "Write an example plan file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExample,
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}

func runExample(_ *cobra.Command, args []string) error {
	path := "plan.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}

	parser := config.NewInputParser()
	if err := parser.SavePlan(path, parser.CreateExamplePlan()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
