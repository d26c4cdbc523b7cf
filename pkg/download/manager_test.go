package download

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/marbeck-dev/appdeck/pkg/errors"
)

func sha256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

// newArtifactServer serves content at /artifact.exe and counts hits.
func newArtifactServer(t *testing.T, content []byte) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/artifact.exe" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		_, _ = w.Write(content)
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func TestFetchVerified_DownloadsAndCaches(t *testing.T) {
	content := []byte("installer payload")
	server, hits := newArtifactServer(t, content)
	dir := t.TempDir()

	manager := NewManager(5*time.Second, "appdeck-test/1.0")
	item := Item{
		ID:       "vlc",
		Version:  "3.0.20",
		URL:      mustParseURL(t, server.URL+"/artifact.exe"),
		Checksum: sha256Hex(content),
	}

	res, err := manager.FetchVerified(context.Background(), item, Options{Dir: dir})
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	assert.Equal(t, filepath.Join(dir, "vlc-3.0.20.exe"), res.Path)
	got, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
	assert.Equal(t, int64(1), hits.Load())

	// Second fetch reuses the verified file without touching the server.
	res2, err := manager.FetchVerified(context.Background(), item, Options{Dir: dir})
	require.NoError(t, err)
	assert.True(t, res2.CacheHit)
	assert.Equal(t, res.Path, res2.Path)
	assert.Equal(t, int64(1), hits.Load())
}

func TestFetchVerified_ChecksumCaseInsensitive(t *testing.T) {
	content := []byte("payload")
	server, hits := newArtifactServer(t, content)
	dir := t.TempDir()

	manager := NewManager(5*time.Second, "")
	item := Item{
		ID:       "app",
		Version:  "1.0.0",
		URL:      mustParseURL(t, server.URL+"/artifact.exe"),
		Checksum: strings.ToUpper(sha256Hex(content)),
	}

	_, err := manager.FetchVerified(context.Background(), item, Options{Dir: dir})
	require.NoError(t, err)

	res, err := manager.FetchVerified(context.Background(), item, Options{Dir: dir})
	require.NoError(t, err)
	assert.True(t, res.CacheHit)
	assert.Equal(t, int64(1), hits.Load())
}

func TestFetchVerified_CorruptedCacheRedownloads(t *testing.T) {
	content := []byte("genuine bytes")
	server, hits := newArtifactServer(t, content)
	dir := t.TempDir()

	manager := NewManager(5*time.Second, "")
	item := Item{
		ID:       "app",
		Version:  "2.0.0",
		URL:      mustParseURL(t, server.URL+"/artifact.exe"),
		Checksum: sha256Hex(content),
	}

	// Pre-seed the destination with garbage.
	dest := filepath.Join(dir, "app-2.0.0.exe")
	require.NoError(t, os.WriteFile(dest, []byte("tampered"), 0o640))

	res, err := manager.FetchVerified(context.Background(), item, Options{Dir: dir})
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	assert.Equal(t, int64(1), hits.Load())
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestFetchVerified_MissingChecksum(t *testing.T) {
	manager := NewManager(5*time.Second, "")
	item := Item{
		ID:  "app",
		URL: mustParseURL(t, "http://localhost/artifact.exe"),
	}

	_, err := manager.FetchVerified(context.Background(), item, Options{Dir: t.TempDir()})
	require.ErrorIs(t, err, pkgerrors.ErrMissingChecksum)
}

func TestFetchVerified_SkipVerificationAlwaysDownloads(t *testing.T) {
	content := []byte(`{"format_version":"1","apps":[]}`)
	server, hits := newArtifactServer(t, content)
	dir := t.TempDir()

	manager := NewManager(5*time.Second, "")
	item := Item{
		ID:               "catalog",
		URL:              mustParseURL(t, server.URL+"/artifact.exe"),
		Filename:         "catalog.json",
		SkipVerification: true,
	}

	res, err := manager.FetchVerified(context.Background(), item, Options{Dir: dir})
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	assert.Equal(t, filepath.Join(dir, "catalog.json"), res.Path)

	// Unverifiable files are refreshed on every fetch.
	res, err = manager.FetchVerified(context.Background(), item, Options{Dir: dir})
	require.NoError(t, err)
	assert.False(t, res.CacheHit)
	assert.Equal(t, int64(2), hits.Load())
}

func TestFetchVerified_HashMismatchRemovesFile(t *testing.T) {
	server, _ := newArtifactServer(t, []byte("actual content"))
	dir := t.TempDir()

	manager := NewManager(5*time.Second, "")
	item := Item{
		ID:       "app",
		Version:  "1.0.0",
		URL:      mustParseURL(t, server.URL+"/artifact.exe"),
		Checksum: sha256Hex([]byte("expected content")),
	}

	_, err := manager.FetchVerified(context.Background(), item, Options{Dir: dir})
	require.ErrorIs(t, err, pkgerrors.ErrFileHashMismatch)

	// Neither the destination nor any staging file may survive.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFetchVerified_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	manager := NewManager(5*time.Second, "")
	item := Item{
		ID:       "app",
		URL:      mustParseURL(t, server.URL+"/missing.exe"),
		Checksum: sha256Hex([]byte("whatever")),
	}

	_, err := manager.FetchVerified(context.Background(), item, Options{Dir: t.TempDir()})
	require.ErrorIs(t, err, pkgerrors.ErrDownloadFailed)
}

func TestFetchVerified_RelativeDirRejected(t *testing.T) {
	manager := NewManager(5*time.Second, "")
	item := Item{
		ID:       "app",
		URL:      mustParseURL(t, "http://localhost/a.exe"),
		Checksum: sha256Hex([]byte("x")),
	}

	_, err := manager.FetchVerified(context.Background(), item, Options{Dir: "relative/cache"})
	require.ErrorIs(t, err, pkgerrors.ErrInvalidPath)
}

func TestFetchVerified_CanceledContext(t *testing.T) {
	server, _ := newArtifactServer(t, []byte("content"))
	dir := t.TempDir()

	manager := NewManager(5*time.Second, "")
	item := Item{
		ID:       "app",
		Version:  "1.0.0",
		URL:      mustParseURL(t, server.URL+"/artifact.exe"),
		Checksum: sha256Hex([]byte("content")),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := manager.FetchVerified(ctx, item, Options{Dir: dir})
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "app-1.0.0.exe"))
}

func TestFetchVerified_ConcurrentSameItem(t *testing.T) {
	content := []byte("shared artifact")
	var hits atomic.Int64
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		<-release
		_, _ = w.Write(content)
	}))
	defer server.Close()

	dir := t.TempDir()
	manager := NewManager(10*time.Second, "")
	item := Item{
		ID:       "app",
		Version:  "1.0.0",
		URL:      mustParseURL(t, server.URL+"/artifact.exe"),
		Checksum: sha256Hex(content),
	}

	var wg sync.WaitGroup
	results := make([]Result, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = manager.FetchVerified(context.Background(), item, Options{Dir: dir})
		}(i)
	}
	// Let both goroutines reach the fetch path, then unblock the server.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, int64(1), hits.Load(), "second caller must wait and reuse the first download")
	assert.NotEqual(t, results[0].CacheHit, results[1].CacheHit, "exactly one caller performs the download")
	assert.Equal(t, results[0].Path, results[1].Path)
}

func TestFetchAll_MultipleItems(t *testing.T) {
	contentA := []byte("content a")
	contentB := []byte("content b")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/a.exe":
			_, _ = w.Write(contentA)
		case "/b.msi":
			_, _ = w.Write(contentB)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	dir := t.TempDir()
	manager := NewManager(5*time.Second, "")
	items := []Item{
		{ID: "alpha", Version: "1.0.0", URL: mustParseURL(t, server.URL+"/a.exe"), Checksum: sha256Hex(contentA)},
		{ID: "beta", Version: "2.0.0", URL: mustParseURL(t, server.URL+"/b.msi"), Checksum: sha256Hex(contentB)},
	}

	results, err := manager.FetchAll(context.Background(), items, Options{Dir: dir, Concurrency: 2})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, filepath.Join(dir, "alpha-1.0.0.exe"), results["alpha"].Path)
	assert.Equal(t, filepath.Join(dir, "beta-2.0.0.msi"), results["beta"].Path)
	assert.FileExists(t, results["alpha"].Path)
	assert.FileExists(t, results["beta"].Path)
}

func TestFetchAll_FirstErrorWins(t *testing.T) {
	content := []byte("good")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/good.exe" {
			_, _ = w.Write(content)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	manager := NewManager(5*time.Second, "")
	items := []Item{
		{ID: "good", Version: "1.0.0", URL: mustParseURL(t, server.URL+"/good.exe"), Checksum: sha256Hex(content)},
		{ID: "bad", Version: "1.0.0", URL: mustParseURL(t, server.URL+"/bad.exe"), Checksum: sha256Hex(content)},
	}

	_, err := manager.FetchAll(context.Background(), items, Options{Dir: t.TempDir(), Concurrency: 2})
	require.ErrorIs(t, err, pkgerrors.ErrDownloadFailed)
}

func TestSelectFilename(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "explicit filename wins",
			item: Item{ID: "app", Version: "1.0.0", Filename: "custom.bin"},
			want: "custom.bin",
		},
		{
			name: "id and version with url extension",
			item: Item{ID: "app", Version: "1.2.3", URL: mustParseURL(t, "http://x/file.msi")},
			want: "app-1.2.3.msi",
		},
		{
			name: "id without version",
			item: Item{ID: "app", URL: mustParseURL(t, "http://x/file.exe")},
			want: "app.exe",
		},
		{
			name: "checksum fallback",
			item: Item{Checksum: "ABCDEF  "},
			want: "abcdef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, selectFilename(tt.item))
		})
	}
}
