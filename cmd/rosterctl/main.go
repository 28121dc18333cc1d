/*
main.go - Offline roster inspection CLI

PURPOSE:
  Runs the roster engine against plan and schedule JSON files without a
  server. Useful for checking a month from the command line or in CI
  before it is uploaded.

COMMANDS:
  rosterctl check    plan.json schedule.json   Labor-rule validation
  rosterctl coverage plan.json schedule.json   Shortage report

FILE FORMATS:
  plan.json       The monthly plan payload (same shape the API accepts)
  schedule.json   {"personID": ["EA", "", "NA", ...], ...}

SEE ALSO:
  - factory: Plan parsing
  - api/handlers.go: The same engine behind HTTP
*/
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/darumasanaz/v5-shift-creation-tool/factory"
	"github.com/darumasanaz/v5-shift-creation-tool/roster"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:           "rosterctl",
	Version:       version,
	Short:         "Inspect monthly rosters offline",
	Long:          `rosterctl runs coverage and labor-rule checks against plan and schedule JSON files, without a running server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var checkCmd = &cobra.Command{
	Use:   "check <plan.json> <schedule.json>",
	Short: "Validate a schedule against labor rules",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, schedule, err := loadInputs(args[0], args[1])
		if err != nil {
			return err
		}

		violations, err := plan.Violations(schedule)
		if err != nil {
			return err
		}

		if len(violations) == 0 {
			fmt.Println("OK: no rule violations")
			return nil
		}

		for _, v := range violations {
			if v.DayIndex != nil {
				fmt.Printf("%s  %s  day %d: %s\n", v.PersonID, v.Rule, *v.DayIndex+1, v.Message)
			} else {
				fmt.Printf("%s  %s: %s\n", v.PersonID, v.Rule, v.Message)
			}
		}
		return fmt.Errorf("%d rule violation(s)", len(violations))
	},
}

var coverageCmd = &cobra.Command{
	Use:   "coverage <plan.json> <schedule.json>",
	Short: "Report staffing shortages per day and time bucket",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, schedule, err := loadInputs(args[0], args[1])
		if err != nil {
			return err
		}

		_, shortages, err := plan.CoverageReport(schedule)
		if err != nil {
			return err
		}

		if len(shortages) == 0 {
			fmt.Println("OK: every time bucket is staffed")
			return nil
		}

		fmt.Printf("%d understaffed bucket(s):\n", len(shortages))
		for _, s := range shortages {
			fmt.Printf("  day %2d  %-5s  short by %d\n", s.Day, s.TimeRange, s.Shortage)
		}
		return nil
	},
}

func loadInputs(planPath, schedulePath string) (*factory.Plan, roster.Schedule, error) {
	planData, err := os.ReadFile(planPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read plan: %w", err)
	}
	plan, err := factory.ParsePlan(planData)
	if err != nil {
		return nil, nil, err
	}

	scheduleData, err := os.ReadFile(schedulePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read schedule: %w", err)
	}
	var schedule roster.Schedule
	if err := json.Unmarshal(scheduleData, &schedule); err != nil {
		return nil, nil, fmt.Errorf("failed to parse schedule: %w", err)
	}

	return plan, schedule, nil
}

func main() {
	rootCmd.AddCommand(checkCmd, coverageCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
