package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewCatalogCmd creates the catalog command with its subcommands.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the app catalog",
	}

	cmd.AddCommand(
		newCatalogListCmd(),
		newCatalogShowCmd(),
		newCatalogValidateCmd(),
	)

	return cmd
}

func newCatalogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all apps in the catalog",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCatalogList()
		},
	}
}

func newCatalogShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show APP",
		Short: "Show catalog details for one app",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runCatalogShow(args[0])
		},
	}
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the catalog and report problems",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCatalogValidate()
		},
	}
}

func runCatalogList() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	catalogManager, err := loadCatalogManager(cfg)
	if err != nil {
		return err
	}

	apps := catalogManager.Apps()
	if len(apps) == 0 {
		fmt.Println("Catalog is empty")
		return nil
	}

	fmt.Printf("%-*s %-*s %-8s %s\n", AppColumnWidth, "APP", VersionColumnWidth, "VERSION", "KIND", "DEPENDENCIES")
	fmt.Println(strings.Repeat("-", PlanRuleWidth))

	for _, app := range apps {
		fmt.Printf("%-*s %-*s %-8s %s\n",
			AppColumnWidth, app.Name,
			VersionColumnWidth, app.Version,
			string(app.InstallerKind),
			strings.Join(app.Dependencies, ", "),
		)
	}

	return nil
}

func runCatalogShow(appID string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	catalogManager, err := loadCatalogManager(cfg)
	if err != nil {
		return err
	}

	app := catalogManager.Lookup(appID)
	if app == nil {
		return fmt.Errorf("app not found in catalog: %s", appID)
	}

	fmt.Printf("ID:        %s\n", app.ID)
	fmt.Printf("Name:      %s\n", app.Name)
	fmt.Printf("Version:   %s\n", app.Version)
	fmt.Printf("Kind:      %s\n", app.InstallerKind)
	fmt.Printf("URL:       %s\n", app.ArtifactURL)
	fmt.Printf("SHA-256:   %s\n", app.SHA256)
	if len(app.Dependencies) > 0 {
		fmt.Printf("Depends:   %s\n", strings.Join(app.Dependencies, ", "))
	}
	if app.SilentArgs != "" {
		fmt.Printf("Args:      %s\n", app.SilentArgs)
	}
	if len(app.Hooks) > 0 {
		events := make([]string, 0, len(app.Hooks))
		for event := range app.Hooks {
			events = append(events, event)
		}
		fmt.Printf("Hooks:     %s\n", strings.Join(events, ", "))
	}

	return nil
}

func runCatalogValidate() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	catalogManager, err := loadCatalogManager(cfg)
	if err != nil {
		return err
	}

	problems := catalogManager.Validate()
	if len(problems) == 0 {
		fmt.Println("Catalog is valid")
		return nil
	}

	fmt.Printf("Catalog has %d problem(s):\n", len(problems))
	for _, problem := range problems {
		fmt.Printf("  - %s\n", problem)
	}

	return fmt.Errorf("catalog validation failed")
}
