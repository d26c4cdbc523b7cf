// Package catalog provides parsing, validation and lookup for the application
// catalog consumed by the install planner.
package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/marbeck-dev/appdeck/pkg/errors"
	"github.com/marbeck-dev/appdeck/pkg/model"
)

const (
	// InitialAppCapacity is the initial capacity for the apps slice.
	InitialAppCapacity = 100
)

// Catalog is the full set of known application metadata records.
type Catalog struct {
	FormatVersion string               `json:"format_version"`
	LastUpdate    time.Time            `json:"last_update"`
	Apps          []*model.AppMetadata `json:"apps"`
}

// New creates a new catalog with the current timestamp.
func New(formatVersion string) *Catalog {
	return &Catalog{
		FormatVersion: formatVersion,
		LastUpdate:    time.Now(),
		Apps:          make([]*model.AppMetadata, 0, InitialAppCapacity),
	}
}

// Parse parses a catalog from JSON data.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, errors.Wrap(errors.ErrCatalogUnavailable, err.Error())
	}

	if cat.FormatVersion == "" {
		return nil, fmt.Errorf("missing format version in catalog: %w", errors.ErrCatalogUnavailable)
	}

	return &cat, nil
}

// ParseFromReader parses a catalog from an io.Reader.
func ParseFromReader(reader io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCatalogUnavailable, err.Error())
	}

	return Parse(data)
}

// ParseFromFile parses a catalog from a file on disk.
func ParseFromFile(filePath string) (*Catalog, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCatalogUnavailable, "cannot open catalog file %s", filePath)
	}
	defer func() { _ = file.Close() }()
	return ParseFromReader(file)
}

// ToJSON converts the catalog to JSON bytes.
func (c *Catalog) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal catalog to JSON")
	}
	return data, nil
}

// FindApp returns the catalog entry with the given id, or nil.
func (c *Catalog) FindApp(id string) *model.AppMetadata {
	for _, app := range c.Apps {
		if app.ID == id {
			return app
		}
	}
	return nil
}

// AddApp adds an app to the catalog, replacing any entry with the same id.
func (c *Catalog) AddApp(app *model.AppMetadata) {
	for i := range c.Apps {
		if c.Apps[i].ID == app.ID {
			c.Apps[i] = app
			c.LastUpdate = time.Now()
			return
		}
	}

	c.Apps = append(c.Apps, app)
	c.LastUpdate = time.Now()
}

// RemoveApp removes an app from the catalog.
func (c *Catalog) RemoveApp(id string) bool {
	for i := range c.Apps {
		if c.Apps[i].ID == id {
			c.Apps = append(c.Apps[:i], c.Apps[i+1:]...)
			c.LastUpdate = time.Now()
			return true
		}
	}
	return false
}

// Validate checks every catalog entry for structural problems and returns the
// full list of findings. The planner tolerates missing dependency targets at
// plan time; Validate exists so operators can lint a catalog before
// publishing it.
func (c *Catalog) Validate() []string {
	var problems []string
	seen := make(map[string]struct{}, len(c.Apps))

	for _, app := range c.Apps {
		if app.ID == "" {
			problems = append(problems, "entry with empty id")
			continue
		}
		if _, dup := seen[app.ID]; dup {
			problems = append(problems, fmt.Sprintf("duplicate id %q", app.ID))
		}
		seen[app.ID] = struct{}{}

		if app.Version == "" {
			problems = append(problems, fmt.Sprintf("%s: empty version", app.ID))
		} else if app.GetVersion() == nil {
			problems = append(problems, fmt.Sprintf("%s: unparseable version %q", app.ID, app.Version))
		}
		if !app.HasValidChecksum() {
			problems = append(problems, fmt.Sprintf("%s: sha256 must be 64 lowercase hex characters", app.ID))
		}
		if app.ArtifactURL == "" || app.GetURL() == nil {
			problems = append(problems, fmt.Sprintf("%s: invalid artifact url %q", app.ID, app.ArtifactURL))
		}
		if !app.InstallerKind.IsValid() {
			problems = append(problems, fmt.Sprintf("%s: unknown installer kind %q", app.ID, app.InstallerKind))
		}
		for _, dep := range app.Dependencies {
			if c.FindApp(dep) == nil {
				problems = append(problems, fmt.Sprintf("%s: dependency %q has no catalog entry", app.ID, dep))
			}
		}
	}

	return problems
}
