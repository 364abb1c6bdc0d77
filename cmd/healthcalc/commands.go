package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"lg/health-metrics-go-api/internal/metrics"
)

// loadProfileFile reads and decodes a profile JSON file.
func loadProfileFile(path string) (metrics.UserProfile, error) {
	var profile metrics.UserProfile
	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("reading profile: %w", err)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("invalid profile JSON: %w", err)
	}
	return profile, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// --- calculate ---

var calculateCmd = &cobra.Command{
	Use:   "calculate <profile.json>",
	Short: "Run the full metrics pipeline for a profile",
	Long: `Run the full metrics pipeline for a profile.

Examples:
  healthcalc calculate profile.json
  healthcalc calculate profile.json --export`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		export, _ := cmd.Flags().GetBool("export")

		profile, err := loadProfileFile(args[0])
		if err != nil {
			return err
		}

		m, err := metrics.CalculateAllMetrics(profile)
		if err != nil {
			return err
		}

		if export {
			return printJSON(metrics.ExportMetrics(m, time.Now()))
		}
		return printJSON(m)
	},
}

func init() {
	calculateCmd.Flags().Bool("export", false, "print the compact export shape instead of the full result")
}

// --- validate-goal ---

var validateGoalCmd = &cobra.Command{
	Use:   "validate-goal <profile.json>",
	Short: "Check a fitness goal against physiological rate limits",
	Long: `Check a fitness goal against physiological rate limits.

Examples:
  healthcalc validate-goal profile.json --type fat_loss --target-weight 75 --weeks 12
  healthcalc validate-goal profile.json --type muscle_gain --target-gain 5 --months 10
  healthcalc validate-goal profile.json --type maintenance`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goalType, _ := cmd.Flags().GetString("type")
		if goalType == "" {
			return fmt.Errorf("--type is required (fat_loss, muscle_gain, maintenance, recomp)")
		}

		profile, err := loadProfileFile(args[0])
		if err != nil {
			return err
		}

		goal := metrics.GoalInput{Type: metrics.GoalType(goalType)}
		if cmd.Flags().Changed("target-weight") {
			v, _ := cmd.Flags().GetFloat64("target-weight")
			goal.TargetWeightKG = &v
		}
		if cmd.Flags().Changed("target-gain") {
			v, _ := cmd.Flags().GetFloat64("target-gain")
			goal.TargetGainKG = &v
		}
		if cmd.Flags().Changed("weeks") {
			v, _ := cmd.Flags().GetInt("weeks")
			goal.TimelineWeeks = &v
		}
		if cmd.Flags().Changed("months") {
			v, _ := cmd.Flags().GetInt("months")
			goal.TimelineMonths = &v
		}

		return printJSON(metrics.ValidateGoal(profile, goal))
	},
}

func init() {
	validateGoalCmd.Flags().String("type", "", "goal type: fat_loss, muscle_gain, maintenance, recomp")
	validateGoalCmd.Flags().Float64("target-weight", 0, "target body weight in kg (fat_loss)")
	validateGoalCmd.Flags().Float64("target-gain", 0, "target muscle gain in kg (muscle_gain)")
	validateGoalCmd.Flags().Int("weeks", 0, "timeline in weeks (fat_loss)")
	validateGoalCmd.Flags().Int("months", 0, "timeline in months (muscle_gain)")
}
