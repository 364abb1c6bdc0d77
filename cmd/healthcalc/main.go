// healthcalc runs the metrics calculators offline against a profile JSON
// file, without a server or database. Useful for sanity-checking profiles
// and for scripting.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "healthcalc",
	Short: "Offline health-metrics calculator",
	Long: `Offline health-metrics calculator.

Reads a user profile from a JSON file and runs the same calculation
pipeline the API serves: BMR, BMI, TDEE, hydration, macros, heart-rate
zones, VO2max, and the composite health score.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateGoalCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
