package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	var cacheDir string

	cmd := &cobra.Command{
		Use:   "fetch APP",
		Short: "Download and verify an app's installer without installing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, args[0], cacheDir)
		},
	}

	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "directory to store the downloaded artifact (default: artifact cache)")

	return cmd
}

func runFetch(cmd *cobra.Command, appID, cacheDir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cacheDir == "" {
		cacheDir = cfg.GetArtifactCacheDir()
	}

	orch, err := buildOrchestrator(cfg)
	if err != nil {
		return err
	}

	res, err := orch.Fetch(cmd.Context(), appID, cacheDir)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", appID, err)
	}

	if res.CacheHit {
		fmt.Printf("Verified cached copy: %s\n", res.Path)
	} else {
		fmt.Printf("Downloaded and verified: %s\n", res.Path)
	}

	return nil
}
