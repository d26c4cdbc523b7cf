package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marbeck-dev/appdeck/pkg/cache"
)

// NewCacheCmd creates the cache command with subcommands.
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the download cache",
		Long:  "Clean, show information about, and manage the catalog and artifact caches",
	}

	cmd.AddCommand(
		newCacheCleanCmd(),
		newCacheInfoCmd(),
		newCacheDirCmd(),
	)

	return cmd
}

func newCacheCleanCmd() *cobra.Command {
	var (
		all       bool
		catalogs  bool
		artifacts bool
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clean the download cache",
		Long:  "Remove cached files to free up disk space",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCacheClean(all, catalogs, artifacts)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Clean all cached files")
	cmd.Flags().BoolVar(&catalogs, "catalogs", false, "Clean only cached catalog files")
	cmd.Flags().BoolVar(&artifacts, "artifacts", false, "Clean only downloaded artifacts")

	return cmd
}

func newCacheInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show cache information",
		Long:  "Display size and file counts for the catalog and artifact caches",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCacheInfo()
		},
	}
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Show cache directory path",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCacheDir()
		},
	}
}

func loadCacheOperation() (*cache.CacheOperation, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return cache.NewCacheOperation(cache.NewManager(cfg.GetCacheDir())), nil
}

func runCacheClean(all, catalogs, artifacts bool) error {
	cacheOp, err := loadCacheOperation()
	if err != nil {
		return err
	}

	message, err := cacheOp.Clean(all, catalogs, artifacts)
	if err != nil {
		return err
	}

	fmt.Println(message)
	return nil
}

func runCacheInfo() error {
	cacheOp, err := loadCacheOperation()
	if err != nil {
		return err
	}

	info, err := cacheOp.GetInfo()
	if err != nil {
		return err
	}

	fmt.Println(info)
	return nil
}

func runCacheDir() error {
	cacheOp, err := loadCacheOperation()
	if err != nil {
		return err
	}

	fmt.Println(cacheOp.GetDirectory())
	return nil
}
