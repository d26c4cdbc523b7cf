package cache

import (
	"os"
	"path/filepath"

	"github.com/marbeck-dev/appdeck/pkg/errors"
	"github.com/marbeck-dev/appdeck/pkg/fsutil"
)

// DefaultManager implements the Manager interface for cache operations.
type DefaultManager struct {
	directory string
}

// NewManager creates a new cache manager.
func NewManager(directory string) *DefaultManager {
	return &DefaultManager{
		directory: directory,
	}
}

// NewDefaultManager creates a new cache manager rooted at the user cache
// directory.
func NewDefaultManager() (*DefaultManager, error) {
	cacheDir, err := fsutil.GetCacheDir()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get user cache directory")
	}

	if err := os.MkdirAll(cacheDir, fsutil.DirModeSecure); err != nil {
		return nil, errors.Wrapf(err, "failed to create cache directory")
	}

	return NewManager(cacheDir), nil
}

// Clean removes cached files according to the specified options.
func (cm *DefaultManager) Clean(options CleanOptions) (*CleanResult, error) {
	result := &CleanResult{}

	// Default to cleaning all if no specific flags are set
	if !options.Catalogs && !options.Artifacts {
		options.All = true
	}

	if options.All || options.Catalogs {
		size, err := cm.cleanCatalogCache()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to clean catalog cache")
		}
		result.CatalogFreed = size
		result.TotalFreed += size
	}

	if options.All || options.Artifacts {
		size, err := cm.cleanArtifactCache()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to clean artifact cache")
		}
		result.ArtifactFreed = size
		result.TotalFreed += size
	}

	return result, nil
}

// GetInfo returns information about the cache.
func (cm *DefaultManager) GetInfo() (*Info, error) {
	info := &Info{
		Directory: cm.directory,
	}

	catalogDir := filepath.Join(cm.directory, "catalogs")
	catalogSize, catalogFiles, err := getDirSizeAndFiles(catalogDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to get catalog cache info")
	}
	info.CatalogSize = catalogSize
	info.CatalogFiles = catalogFiles

	artifactDir := filepath.Join(cm.directory, "artifacts")
	artifactSize, artifactFiles, err := getDirSizeAndFiles(artifactDir)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to get artifact cache info")
	}
	info.ArtifactSize = artifactSize
	info.ArtifactFiles = artifactFiles

	info.TotalSize = info.CatalogSize + info.ArtifactSize

	return info, nil
}

// GetDirectory returns the cache directory path.
func (cm *DefaultManager) GetDirectory() string {
	return cm.directory
}

// SetDirectory sets the cache directory path.
func (cm *DefaultManager) SetDirectory(dir string) error {
	if dir == "" {
		return errors.ErrCacheDirectory
	}
	cm.directory = dir
	return nil
}

// cleanCatalogCache removes all cached catalog files.
func (cm *DefaultManager) cleanCatalogCache() (int64, error) {
	return cleanDirectory(filepath.Join(cm.directory, "catalogs"))
}

// cleanArtifactCache removes all cached artifact files.
func (cm *DefaultManager) cleanArtifactCache() (int64, error) {
	return cleanDirectory(filepath.Join(cm.directory, "artifacts"))
}

// cleanDirectory removes a directory and returns bytes freed.
func cleanDirectory(dir string) (int64, error) {
	var totalSize int64

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}

	err := filepath.Walk(dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			totalSize += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, errors.Wrapf(err, "error walking directory %s", dir)
	}

	if err := os.RemoveAll(dir); err != nil {
		return 0, errors.Wrapf(err, "failed to remove directory %s", dir)
	}

	// Recreate the empty directory so later fetches need no special casing
	if err := os.MkdirAll(dir, fsutil.DirModeSecure); err != nil {
		return totalSize, errors.Wrapf(err, "failed to recreate directory %s", dir)
	}

	return totalSize, nil
}

// getDirSizeAndFiles calculates directory size and file count.
func getDirSizeAndFiles(dir string) (size int64, count int, err error) {
	if _, err = os.Stat(dir); os.IsNotExist(err) {
		return 0, 0, nil
	}

	err = filepath.Walk(dir, func(_ string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.IsDir() {
			size += info.Size()
			count++
		}
		return nil
	})
	if err != nil {
		err = errors.Wrapf(err, "error walking directory %s", dir)
	}
	return size, count, err
}
