package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marbeck-dev/appdeck/pkg/model"
)

// NewPlanCmd creates the plan command.
func NewPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan APP",
		Short: "Show the install plan for an app",
		Long: `Resolve an app's dependency graph against the catalog and the
installed database, and print the resulting step list without executing
anything. Steps are ordered so dependencies come before dependents.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, args[0])
		},
	}

	return cmd
}

func runPlan(cmd *cobra.Command, appID string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	summary, err := orch.Plan(cmd.Context(), appID)
	if err != nil {
		return fmt.Errorf("failed to plan %s: %w", appID, err)
	}

	renderPlan(summary)
	return nil
}

func renderPlan(summary *model.PlanSummary) {
	fmt.Printf("Plan for %s:\n", summary.TargetAppID)
	fmt.Printf("%-*s %-*s %-10s %s\n", AppColumnWidth, "APP", VersionColumnWidth, "VERSION", "ACTION", "NOTES")
	fmt.Println(strings.Repeat("-", PlanRuleWidth))

	for _, step := range summary.Steps {
		fmt.Printf("%-*s %-*s %-10s %s\n",
			AppColumnWidth, step.Name,
			VersionColumnWidth, step.Version,
			string(step.Action),
			step.Notes,
		)
	}

	counts := summary.Counts()
	fmt.Printf("\n%d to install, %d already installed, %d blocked\n",
		counts.Install, counts.Skip, counts.Blocked)

	if len(summary.Warnings) > 0 {
		fmt.Println("\nWarnings:")
		for _, warning := range summary.Warnings {
			fmt.Printf("  - %s\n", warning)
		}
	}

	if summary.HasBlocked() {
		fmt.Println("\nPlan contains blocked steps and cannot be executed.")
	}
}
