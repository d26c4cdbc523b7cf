package cache

import (
	"fmt"

	"github.com/marbeck-dev/appdeck/internal/logger"
)

// CacheOperation wraps a Manager with human-readable output for the CLI.
type CacheOperation struct {
	manager Manager
}

// NewCacheOperation creates a new cache operation instance.
func NewCacheOperation(manager Manager) *CacheOperation {
	return &CacheOperation{
		manager: manager,
	}
}

// Clean cleans the cache based on the provided options.
func (op *CacheOperation) Clean(all, catalogs, artifacts bool) (string, error) {
	options := CleanOptions{
		All:       all,
		Catalogs:  catalogs,
		Artifacts: artifacts,
	}

	logger.Debug("Cleaning cache", logger.Fields{
		"all":       options.All,
		"catalogs":  options.Catalogs,
		"artifacts": options.Artifacts,
	})

	result, err := op.manager.Clean(options)
	if err != nil {
		return "", fmt.Errorf("failed to clean cache: %w", err)
	}

	var msg string
	if result.TotalFreed > 0 {
		msg = fmt.Sprintf("Successfully cleaned cache. Freed %s of disk space.", formatBytes(result.TotalFreed))
		if result.CatalogFreed > 0 {
			msg += fmt.Sprintf("\n- Catalogs: %s", formatBytes(result.CatalogFreed))
		}
		if result.ArtifactFreed > 0 {
			msg += fmt.Sprintf("\n- Artifacts: %s", formatBytes(result.ArtifactFreed))
		}
	} else {
		msg = "No files were removed from the cache."
	}

	return msg, nil
}

// GetInfo returns information about the cache.
func (op *CacheOperation) GetInfo() (string, error) {
	info, err := op.manager.GetInfo()
	if err != nil {
		return "", fmt.Errorf("failed to get cache info: %w", err)
	}

	return fmt.Sprintf(`Cache Information:
  Directory:  %s
  Total Size: %s
  Catalogs:   %s (%d files)
  Artifacts:  %s (%d files)`,
		info.Directory,
		formatBytes(info.TotalSize),
		formatBytes(info.CatalogSize),
		info.CatalogFiles,
		formatBytes(info.ArtifactSize),
		info.ArtifactFiles,
	), nil
}

// GetDirectory returns the cache directory path.
func (op *CacheOperation) GetDirectory() string {
	return op.manager.GetDirectory()
}

// SetDirectory sets a new cache directory.
func (op *CacheOperation) SetDirectory(dir string) error {
	if dir == "" {
		return fmt.Errorf("cache directory cannot be empty")
	}

	logger.Debug("Setting cache directory", logger.Fields{"directory": dir})
	return op.manager.SetDirectory(dir)
}

// formatBytes converts bytes to a human-readable string.
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"K", "M", "G", "T", "P", "E"}
	if exp < len(units) {
		return fmt.Sprintf("%.1f %sB", float64(bytes)/float64(div), units[exp])
	}
	return fmt.Sprintf("%d B", bytes)
}
