//go:generate mockgen -destination=./mocks/orchestrator.go . InstallPlanner,CatalogLookup,Fetcher,AppInstaller

package orchestrator

import (
	"context"

	"github.com/marbeck-dev/appdeck/pkg/download"
	"github.com/marbeck-dev/appdeck/pkg/model"
)

// InstallPlanner is the subset of the planner used by the orchestrator.
type InstallPlanner interface {
	BuildPlan(ctx context.Context, targetAppID string) (*model.PlanSummary, error)
}

// CatalogLookup resolves plan step IDs back to their catalog entries.
type CatalogLookup interface {
	Lookup(id string) *model.AppMetadata
}

// Fetcher handles verified artifact downloading.
type Fetcher interface {
	FetchVerified(ctx context.Context, item download.Item, opts download.Options) (download.Result, error)
	FetchAll(ctx context.Context, items []download.Item, opts download.Options) (map[string]download.Result, error)
}

// AppInstaller applies a verified local artifact to the machine.
type AppInstaller interface {
	InstallApp(ctx context.Context, meta *model.AppMetadata, localPath string) error
}

// Orchestrator ties planner, catalog, downloader and installer together.
type Orchestrator struct {
	Planner   InstallPlanner
	Catalog   CatalogLookup
	DL        Fetcher
	Installer AppInstaller
	Hooks     Hooks // Hooks for progress and event notifications
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // planning|downloading|installing|skipping|done|error
	ID    string // step ID
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// InstallOptions control orchestrator install execution.
type InstallOptions struct {
	CacheDir    string
	Concurrency int
	DryRun      bool
}

// SyncOptions control catalog refresh execution.
type SyncOptions struct {
	CatalogDir string
}
