package cli

import (
	"context"
	"fmt"

	"github.com/marbeck-dev/appdeck/internal/logger"
	"github.com/marbeck-dev/appdeck/pkg/catalog"
	"github.com/marbeck-dev/appdeck/pkg/config"
	"github.com/marbeck-dev/appdeck/pkg/download"
	"github.com/marbeck-dev/appdeck/pkg/install"
	"github.com/marbeck-dev/appdeck/pkg/orchestrator"
	"github.com/marbeck-dev/appdeck/pkg/plan"
	"github.com/marbeck-dev/appdeck/pkg/state"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	OutputFormat *string
)

const userAgent = "appdeck/" + Version

// loadConfig loads the configuration, honoring the global --config flag and
// CLI output overrides.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}

	if configPath == "" {
		defaultPath, err := config.GetDefaultConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", err)
		}
		configPath = defaultPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	logger.InitLogger(cfg.Settings.LogLevel, logger.OutputFormat(cfg.Settings.OutputFormat))

	return cfg, nil
}

// loadCatalogManager loads the configured catalog file.
func loadCatalogManager(cfg *config.Config) (*catalog.ManagerImpl, error) {
	manager := catalog.NewManager(cfg.GetCatalogPath())
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", cfg.GetCatalogPath(), err)
	}
	return manager, nil
}

// loadStateManager loads the installed-apps database. A missing database
// file yields an empty database.
func loadStateManager(cfg *config.Config) (*state.ManagerImpl, error) {
	db := state.NewDatabase()
	if err := db.Load(cfg.GetStateDBPath()); err != nil {
		return nil, fmt.Errorf("failed to load installed database: %w", err)
	}
	return db, nil
}

// loadDownloadManager creates the verified download cache from config.
func loadDownloadManager(cfg *config.Config) *download.ManagerImpl {
	return download.NewManager(cfg.Settings.HTTPTimeout, userAgent)
}

// buildOrchestrator wires planner, catalog, downloader and installer
// together for commands that execute plans.
func buildOrchestrator(cfg *config.Config) (*orchestrator.Orchestrator, error) {
	catalogManager, err := loadCatalogManager(cfg)
	if err != nil {
		return nil, err
	}
	stateManager, err := loadStateManager(cfg)
	if err != nil {
		return nil, err
	}

	installer := install.NewManager(stateManager, cfg.GetStateDBPath(), cfg.GetInstallDir(), nativeRunner())

	return &orchestrator.Orchestrator{
		Planner:   plan.NewPlanner(catalogManager, stateManager),
		Catalog:   catalogManager,
		DL:        loadDownloadManager(cfg),
		Installer: installer,
		Hooks:     progressHooks(),
	}, nil
}

// nativeRunner returns the Runner used for exe/msi/appx artifacts. Process
// execution is not wired up; zip apps install end to end, native installers
// report what would have to run.
func nativeRunner() install.Runner {
	return install.RunnerFunc(func(_ context.Context, installerPath string, args []string) error {
		return fmt.Errorf("native installer execution is not enabled (would run %s %v)", installerPath, args)
	})
}

// progressHooks renders orchestrator events for humans.
func progressHooks() orchestrator.Hooks {
	return orchestrator.Hooks{OnEvent: func(e orchestrator.Event) {
		if e.ID != "" {
			fmt.Printf("%s: %s (%s)\n", e.Phase, e.Msg, e.ID)
		} else {
			fmt.Printf("%s: %s\n", e.Phase, e.Msg)
		}
	}}
}
