package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var nameFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed apps",
		Long: `List all installed apps from the local state database.

By default, shows all installed apps with name and version.
Use --name to filter apps by name.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList(nameFilter)
		},
	}

	cmd.Flags().StringVar(&nameFilter, "name", "", "Filter apps by name (partial match)")

	return cmd
}

func runList(nameFilter string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	stateManager, err := loadStateManager(cfg)
	if err != nil {
		return err
	}

	apps := stateManager.Filtered(nameFilter)
	if len(apps) == 0 {
		fmt.Println("No apps installed")
		return nil
	}

	fmt.Printf("%-*s %-*s %s\n", AppColumnWidth, "APP", VersionColumnWidth, "VERSION", "INSTALLED")
	fmt.Println(strings.Repeat("-", ListRuleWidth))

	for _, app := range apps {
		fmt.Printf("%-*s %-*s %s\n",
			AppColumnWidth, app.Name,
			VersionColumnWidth, app.InstalledVersion,
			app.InstalledAt.Format("2006-01-02 15:04"),
		)
	}

	return nil
}
