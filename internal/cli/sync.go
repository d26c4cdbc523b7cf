package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marbeck-dev/appdeck/internal/logger"
	"github.com/marbeck-dev/appdeck/pkg/orchestrator"
)

// NewSyncCmd creates the sync command.
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Refresh the local catalog copy",
		Long: `Refresh the local catalog copy by downloading the latest catalog
file from the configured catalog URL.`,
		RunE: runSync,
	}

	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The catalog may not exist locally yet, so sync wires only the
	// download side of the orchestrator.
	orch := &orchestrator.Orchestrator{DL: loadDownloadManager(cfg)}

	logger.Debug("Synchronizing catalog", logger.Fields{"url": cfg.Settings.CatalogURL})

	path, err := orch.SyncCatalog(cmd.Context(), cfg.Settings.CatalogURL, orchestrator.SyncOptions{
		CatalogDir: cfg.GetCatalogCacheDir(),
	})
	if err != nil {
		return fmt.Errorf("failed to sync catalog: %w", err)
	}

	fmt.Printf("Catalog synchronized to %s\n", path)
	return nil
}
