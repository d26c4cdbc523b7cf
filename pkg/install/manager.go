// Package install applies planned install steps to the local machine. Zip
// artifacts are extracted into the managed install directory; native
// installers are handed to a Runner. Every successful install is recorded in
// the installed-apps database.
package install

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marbeck-dev/appdeck/internal/logger"
	"github.com/marbeck-dev/appdeck/pkg/archive"
	"github.com/marbeck-dev/appdeck/pkg/errors"
	"github.com/marbeck-dev/appdeck/pkg/hooks"
	"github.com/marbeck-dev/appdeck/pkg/model"
	"github.com/marbeck-dev/appdeck/pkg/state"
)

// Manager installs apps from verified local artifacts.
type Manager struct {
	state      state.Manager
	dbPath     string
	installDir string
	runner     Runner
	extractor  *archive.Manager
}

// NewManager creates an install manager. dbPath is the installed-apps
// database file; installDir is the root under which zip apps are extracted.
func NewManager(stateManager state.Manager, dbPath, installDir string, runner Runner) *Manager {
	return &Manager{
		state:      stateManager,
		dbPath:     dbPath,
		installDir: installDir,
		runner:     runner,
		extractor:  archive.NewManager(),
	}
}

// InstallApp installs one app from its verified local artifact and records
// it in the installed database. The artifact must already be checksum
// verified; this layer never re-downloads.
func (m *Manager) InstallApp(ctx context.Context, meta *model.AppMetadata, artifactPath string) error {
	if meta == nil {
		return errors.Wrap(errors.ErrValidation, "app metadata is nil")
	}
	if _, err := os.Stat(artifactPath); err != nil {
		return errors.Wrapf(errors.ErrInvalidPath, "artifact not found: %s", artifactPath)
	}

	installPath := filepath.Join(m.installDir, meta.ID)

	hookManager := hooks.NewHookManager()
	if err := hooks.LoadHooksFromScripts(hookManager, meta.Hooks); err != nil {
		return errors.Wrapf(err, "invalid hooks for %s", meta.ID)
	}
	hookCtx := hooks.HookContext{
		AppID:        meta.ID,
		AppName:      meta.Name,
		AppVersion:   meta.Version,
		ArtifactPath: artifactPath,
		InstallPath:  installPath,
	}

	if err := hookManager.Execute(hooks.PreInstall, hookCtx); err != nil {
		return errors.Wrapf(err, "pre-install hook failed for %s", meta.ID)
	}

	logger.Info("Installing app", logger.Fields{
		"app":     meta.ID,
		"version": meta.Version,
		"kind":    string(meta.InstallerKind),
	})

	if err := m.applyArtifact(ctx, meta, artifactPath, installPath); err != nil {
		return err
	}

	if err := hookManager.Execute(hooks.PostInstall, hookCtx); err != nil {
		return errors.Wrapf(err, "post-install hook failed for %s", meta.ID)
	}

	m.state.Add(&model.InstalledApp{
		AppID:            meta.ID,
		Name:             meta.Name,
		InstalledVersion: meta.Version,
		InstalledFrom:    artifactPath,
	})
	if err := m.state.Save(m.dbPath); err != nil {
		return errors.Wrapf(err, "failed to record installation of %s", meta.ID)
	}

	return nil
}

// applyArtifact performs the kind-specific install action.
func (m *Manager) applyArtifact(ctx context.Context, meta *model.AppMetadata, artifactPath, installPath string) error {
	switch meta.InstallerKind {
	case model.KindZip:
		if err := m.extractor.ExtractAll(ctx, artifactPath, installPath); err != nil {
			return errors.Wrapf(err, "failed to extract %s", meta.ID)
		}
		return nil
	case model.KindExe, model.KindMsi, model.KindAppx, model.KindOther:
		if m.runner == nil {
			return fmt.Errorf("no runner configured for installer kind %s: %w", meta.InstallerKind, errors.ErrValidation)
		}
		if err := m.runner.Run(ctx, artifactPath, splitArgs(meta.SilentArgs)); err != nil {
			return errors.Wrapf(err, "installer failed for %s", meta.ID)
		}
		return nil
	default:
		return fmt.Errorf("unknown installer kind %q: %w", meta.InstallerKind, errors.ErrValidation)
	}
}

// splitArgs splits a silent-args string on whitespace. Catalog entries use
// simple flags like "/S" or "/quiet /norestart"; quoting is not supported.
func splitArgs(args string) []string {
	return strings.Fields(args)
}
