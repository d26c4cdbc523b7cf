package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// AppName is the name of the application used in paths
	AppName = "appdeck"
)

// GetCacheDir returns the platform-specific cache directory for the application
// On Windows: %LOCALAPPDATA%\appdeck\cache\
// On Linux: ~/.cache/appdeck/
// On macOS: ~/Library/Caches/appdeck/
func GetCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, AppName), nil
}

// getAppDataDir returns the platform-specific base data directory
// On Windows: %LOCALAPPDATA%
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
func getAppDataDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			return "", errors.New("LOCALAPPDATA environment variable not set")
		}
		return localAppData, nil

	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support"), nil

	default: // Linux, BSD, etc.
		if xdgDataHome := os.Getenv("XDG_DATA_HOME"); xdgDataHome != "" {
			return xdgDataHome, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// GetDataDir returns the platform-specific data directory for the application
func GetDataDir() (string, error) {
	baseDir, err := getAppDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, AppName), nil
}

// GetArtifactCacheDir returns the directory for storing downloaded installer artifacts
// Format: <cache_dir>/artifacts/
func GetArtifactCacheDir() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "artifacts"), nil
}

// GetCatalogCacheDir returns the directory for storing synced catalog files
// Format: <cache_dir>/catalogs/
func GetCatalogCacheDir() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "catalogs"), nil
}

// GetInstallDir returns the base directory for extracted application payloads
// Format: <data_dir>/apps/
func GetInstallDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "apps"), nil
}

// GetStateDir returns the directory for the installation state database
// Format: <data_dir>/state/
func GetStateDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "state"), nil
}

// EnsureDirs creates all necessary directories if they don't exist
func EnsureDirs() error {
	dirs := []func() (string, error){
		GetArtifactCacheDir,
		GetCatalogCacheDir,
		GetInstallDir,
		GetStateDir,
	}

	for _, dirFn := range dirs {
		dir, err := dirFn()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, DirModeDefault); err != nil {
			return err
		}
	}

	return nil
}
