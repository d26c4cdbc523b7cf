//go:build integration

package main

import (
	"archive/zip"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/marbeck-dev/appdeck/pkg/config"
	"github.com/marbeck-dev/appdeck/pkg/model"
	"github.com/marbeck-dev/appdeck/pkg/state"
)

// appDef describes one zip app to publish in the test catalog.
type appDef struct {
	ID           string
	Version      string
	Dependencies []string
}

// buildCatalogDir fills catalogDir with one zip artifact per app plus a
// catalog.json whose artifact URLs point at baseURL.
func buildCatalogDir(t *testing.T, catalogDir, baseURL string, defs []appDef) {
	t.Helper()
	require.NoError(t, os.MkdirAll(catalogDir, 0o755))

	apps := make([]*model.AppMetadata, 0, len(defs))
	for _, def := range defs {
		filename := fmt.Sprintf("%s-%s.zip", def.ID, def.Version)
		path := filepath.Join(catalogDir, filename)
		data := writeAppZip(t, path, def.ID)

		sum := sha256.Sum256(data)
		apps = append(apps, &model.AppMetadata{
			ID:            def.ID,
			Name:          def.ID,
			Version:       def.Version,
			ArtifactURL:   baseURL + "/" + filename,
			SHA256:        hex.EncodeToString(sum[:]),
			InstallerKind: model.KindZip,
			Dependencies:  def.Dependencies,
		})
	}

	doc := map[string]interface{}{
		"format_version": "1",
		"last_update":    time.Now().UTC(),
		"apps":           apps,
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(catalogDir, "catalog.json"), data, 0o644))
}

// writeAppZip writes a small zip archive with app-flavored content and
// returns its raw bytes.
func writeAppZip(t *testing.T, path, appID string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(appID + ".txt")
	require.NoError(t, err)
	_, err = f.Write([]byte("payload for " + appID))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return buf.Bytes()
}

// startCatalogServer serves dir over HTTP and returns the server plus the
// catalog.json URL.
func startCatalogServer(t *testing.T, dir string) (*httptest.Server, string) {
	t.Helper()
	srv := httptest.NewServer(http.FileServer(http.Dir(dir)))
	t.Cleanup(srv.Close)
	return srv, srv.URL + "/catalog.json"
}

// writeTempConfig writes a config file whose cache, state and install
// directories all live under root.
func writeTempConfig(t *testing.T, cfgPath, catalogURL, root string) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Settings.CatalogURL = catalogURL
	cfg.Settings.CacheDir = filepath.Join(root, "cache")
	cfg.Settings.StateDir = filepath.Join(root, "state")
	cfg.Settings.InstallDir = filepath.Join(root, "apps")
	cfg.Settings.LogLevel = "error"
	require.NoError(t, cfg.SaveConfig(cfgPath))
}

// installedApps loads the installed database via the config at cfgPath.
func installedApps(t *testing.T, cfgPath string) []*model.InstalledApp {
	t.Helper()
	cfg, err := config.LoadConfig(cfgPath)
	require.NoError(t, err)

	db := state.NewDatabase()
	require.NoError(t, db.Load(cfg.GetStateDBPath()))
	return db.InstalledApps()
}

// runCommand executes the root command with args and returns captured stdout.
func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	cmd := newRootCmd()
	cmd.SetArgs(args)
	execErr := cmd.ExecuteContext(t.Context())

	_ = w.Close()
	os.Stdout = oldStdout
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	require.NoError(t, execErr, "command %v failed, output:\n%s", args, buf.String())
	return buf.String()
}
