package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marbeck-dev/appdeck/pkg/orchestrator"
)

// NewInstallCmd creates the install command.
func NewInstallCmd() *cobra.Command {
	var (
		dryRun      bool
		concurrency int
		cacheDir    string
	)

	cmd := &cobra.Command{
		Use:   "install APP",
		Short: "Install an app",
		Long: `Install an app from the catalog. Dependencies are resolved and
installed first, leaf to root. Artifacts are downloaded into the verified
cache and checked against their catalog checksum before anything touches the
machine. A plan with blocked steps is refused.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, args[0], dryRun, concurrency, cacheDir)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Resolve and print actions without executing")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Number of parallel downloads (0=auto)")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "Download cache directory (defaults to config)")

	return cmd
}

func runInstall(cmd *cobra.Command, appID string, dryRun bool, concurrency int, cacheDir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cacheDir == "" {
		cacheDir = cfg.GetArtifactCacheDir()
	}
	if concurrency == 0 {
		concurrency = cfg.Settings.MaxConcurrent
	}

	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	opts := orchestrator.InstallOptions{CacheDir: cacheDir, Concurrency: concurrency, DryRun: dryRun}
	if err := orch.Install(cmd.Context(), appID, opts); err != nil {
		return fmt.Errorf("failed to install %s: %w", appID, err)
	}

	return nil
}
