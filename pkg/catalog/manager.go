//go:generate mockgen -destination=./mocks/catalog.go . Manager
package catalog

import (
	"github.com/marbeck-dev/appdeck/pkg/errors"
	"github.com/marbeck-dev/appdeck/pkg/model"
)

// Manager defines the read surface of the catalog used by planners and CLIs.
type Manager interface {
	// Load reads and parses the catalog file. A read or parse failure is
	// fatal for every operation that needs the catalog.
	Load() error

	// Lookup returns the catalog entry for the given id, or nil if the id is
	// unknown.
	Lookup(id string) *model.AppMetadata

	// Apps returns all catalog entries in declared order.
	Apps() []*model.AppMetadata

	// Validate lints the loaded catalog and returns its findings.
	Validate() []string
}

// ManagerImpl is a file-backed catalog manager.
type ManagerImpl struct {
	path    string
	catalog *Catalog
}

// NewManager creates a catalog manager for the given catalog file path.
func NewManager(path string) *ManagerImpl {
	return &ManagerImpl{path: path}
}

// Load reads and parses the catalog file.
func (m *ManagerImpl) Load() error {
	cat, err := ParseFromFile(m.path)
	if err != nil {
		return err
	}
	m.catalog = cat
	return nil
}

// Lookup returns the catalog entry for the given id, or nil.
func (m *ManagerImpl) Lookup(id string) *model.AppMetadata {
	if m.catalog == nil {
		return nil
	}
	return m.catalog.FindApp(id)
}

// Apps returns all loaded catalog entries.
func (m *ManagerImpl) Apps() []*model.AppMetadata {
	if m.catalog == nil {
		return nil
	}
	return m.catalog.Apps
}

// Validate lints the loaded catalog.
func (m *ManagerImpl) Validate() []string {
	if m.catalog == nil {
		return []string{errors.ErrCatalogUnavailable.Error()}
	}
	return m.catalog.Validate()
}

// Catalog returns the loaded catalog, or nil before Load.
func (m *ManagerImpl) Catalog() *Catalog {
	return m.catalog
}
