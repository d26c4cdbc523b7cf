// Package state provides a simple JSON-backed store for installed applications.
package state

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/marbeck-dev/appdeck/pkg/errors"
	"github.com/marbeck-dev/appdeck/pkg/model"
)

//go:generate mockgen -destination=./mocks/state.go . Manager

// Manager defines the interface for managing installation state.
type Manager interface {
	Load(dbPath string) error
	Save(dbPath string) error
	Find(appID string) *model.InstalledApp
	IsInstalled(appID string) bool
	Add(app *model.InstalledApp)
	Remove(appID string) bool
	InstalledApps() []*model.InstalledApp
	Filtered(nameFilter string) []*model.InstalledApp
}

// ManagerImpl represents the database of installed applications.
type ManagerImpl struct {
	FormatVersion string                `json:"format_version"`
	LastUpdate    time.Time             `json:"last_update"`
	Apps          []*model.InstalledApp `json:"apps"`
	rwMutex       sync.RWMutex
}

const (
	// InitialAppCapacity defines the initial slice capacity for installed apps.
	InitialAppCapacity = 100
)

// NewDatabase creates a new installed applications database.
func NewDatabase() *ManagerImpl {
	return &ManagerImpl{
		FormatVersion: "1",
		LastUpdate:    time.Now(),
		Apps:          make([]*model.InstalledApp, 0, InitialAppCapacity),
	}
}

// Load loads the installed applications database from file. A missing file
// leaves the database empty rather than failing.
func (db *ManagerImpl) Load(dbPath string) error {
	cleanPath := filepath.Clean(dbPath)
	if !filepath.IsAbs(cleanPath) {
		return fmt.Errorf("database path must be absolute: %s: %w", dbPath, errors.ErrInvalidPath)
	}

	if _, err := os.Stat(cleanPath); os.IsNotExist(err) {
		return nil
	}

	file, err := os.Open(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to open database file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return db.parseFromReader(file)
}

// Save saves the installed applications database to file via a temporary file
// and an atomic rename.
func (db *ManagerImpl) Save(dbPath string) (err error) {
	cleanPath := filepath.Clean(dbPath)
	if !filepath.IsAbs(cleanPath) {
		return fmt.Errorf("database path must be absolute: %s: %w", dbPath, errors.ErrInvalidPath)
	}

	dbDir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
	}

	tmpFile, err := os.CreateTemp(dbDir, "appdeck-db-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dbDir, err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	db.rwMutex.RLock()
	data, err := json.MarshalIndent(db, "", "  ")
	db.rwMutex.RUnlock()
	if err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to marshal database to JSON: %w", err)
	}

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to write to temporary file: %w", err)
	}
	if err = tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to sync temporary file to disk: %w", err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err = os.Rename(tmpPath, cleanPath); err != nil {
		return fmt.Errorf("failed to rename temporary file to %s: %w", cleanPath, err)
	}

	return nil
}

// Find finds an installed application by id.
func (db *ManagerImpl) Find(appID string) *model.InstalledApp {
	db.rwMutex.RLock()
	defer db.rwMutex.RUnlock()

	for _, app := range db.Apps {
		if app.AppID == appID {
			return app
		}
	}
	return nil
}

// IsInstalled checks if an application is installed at any version.
func (db *ManagerImpl) IsInstalled(appID string) bool {
	return db.Find(appID) != nil
}

// Add adds an installed application to the database, replacing any existing
// record for the same id.
func (db *ManagerImpl) Add(app *model.InstalledApp) {
	db.rwMutex.Lock()
	defer db.rwMutex.Unlock()

	if app.InstalledAt.IsZero() {
		app.InstalledAt = time.Now()
	}

	for i, existing := range db.Apps {
		if existing.AppID == app.AppID {
			db.Apps[i] = app
			db.LastUpdate = time.Now()
			return
		}
	}

	db.Apps = append(db.Apps, app)
	db.LastUpdate = time.Now()
}

// Remove removes an installed application from the database.
func (db *ManagerImpl) Remove(appID string) bool {
	db.rwMutex.Lock()
	defer db.rwMutex.Unlock()

	for i, app := range db.Apps {
		if app.AppID == appID {
			db.Apps = append(db.Apps[:i], db.Apps[i+1:]...)
			db.LastUpdate = time.Now()
			return true
		}
	}
	return false
}

// InstalledApps returns all installed applications.
func (db *ManagerImpl) InstalledApps() []*model.InstalledApp {
	db.rwMutex.RLock()
	defer db.rwMutex.RUnlock()

	// Return a copy of the slice to prevent data races
	apps := make([]*model.InstalledApp, len(db.Apps))
	copy(apps, db.Apps)
	return apps
}

// Filtered returns installed applications filtered by name or id
// (partial match, case-insensitive).
func (db *ManagerImpl) Filtered(nameFilter string) []*model.InstalledApp {
	if nameFilter == "" {
		return db.InstalledApps()
	}

	db.rwMutex.RLock()
	defer db.rwMutex.RUnlock()

	needle := strings.ToLower(nameFilter)
	var filtered []*model.InstalledApp
	for _, app := range db.Apps {
		if strings.Contains(strings.ToLower(app.Name), needle) ||
			strings.Contains(strings.ToLower(app.AppID), needle) {
			filtered = append(filtered, app)
		}
	}

	return filtered
}

func (db *ManagerImpl) parseFromReader(reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read database: %w", err)
	}

	db.rwMutex.Lock()
	defer db.rwMutex.Unlock()

	if err := json.Unmarshal(data, db); err != nil {
		return fmt.Errorf("failed to parse database: %w", err)
	}
	return nil
}
