package download

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/marbeck-dev/appdeck/pkg/errors"
	"github.com/marbeck-dev/appdeck/pkg/fsutil"
)

// ManagerImpl is an HTTP-backed verified artifact cache. Every returned path
// was hash-verified against the item's checksum within the same call; a
// cached file whose bytes no longer match is treated as corruption and
// replaced. Retry/backoff is the supplied http.Client's concern (wrap its
// Transport), not reimplemented here.
type ManagerImpl struct {
	client    *http.Client
	userAgent string

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex // destination path -> lock
}

// NewManager creates a verified cache with the given timeout and user agent.
func NewManager(timeout time.Duration, userAgent string) *ManagerImpl {
	return NewManagerWithClient(&http.Client{Timeout: timeout}, userAgent)
}

// NewManagerWithClient creates a verified cache around an existing client.
// The client carries the caller's retry and timeout policy.
func NewManagerWithClient(client *http.Client, userAgent string) *ManagerImpl {
	if userAgent == "" {
		userAgent = "appdeck/1.0"
	}
	return &ManagerImpl{
		client:    client,
		userAgent: userAgent,
		locks:     make(map[string]*sync.Mutex),
	}
}

// FetchVerified fetches a single item and returns its verified local path.
func (m *ManagerImpl) FetchVerified(ctx context.Context, item Item, opts Options) (Result, error) {
	if opts.Dir == "" || !filepath.IsAbs(opts.Dir) {
		return Result{}, fmt.Errorf("cache dir must be absolute: %s: %w", opts.Dir, pkgerrors.ErrInvalidPath)
	}
	if err := os.MkdirAll(opts.Dir, fsutil.DirModeSecure); err != nil {
		return Result{}, pkgerrors.Wrap(err, "could not create cache dir")
	}
	return m.fetchOne(ctx, item, opts)
}

// FetchAll fetches multiple items concurrently and returns a map of item IDs
// to results. Items sharing a destination path serialize on its lock; the
// loser observes a cache hit.
func (m *ManagerImpl) FetchAll(ctx context.Context, items []Item, opts Options) (map[string]Result, error) {
	if opts.Concurrency <= 0 {
		opts.Concurrency = max(2, runtime.NumCPU()/2)
	}
	if opts.Dir == "" || !filepath.IsAbs(opts.Dir) {
		return nil, fmt.Errorf("cache dir must be absolute: %w: %s", pkgerrors.ErrInvalidPath, opts.Dir)
	}
	if err := os.MkdirAll(opts.Dir, fsutil.DirModeSecure); err != nil {
		return nil, pkgerrors.Wrap(err, "could not create cache dir")
	}

	results := make(map[string]Result, len(items))
	var firstErr error
	var mu sync.Mutex

	tasks := make(chan Item)
	var wg sync.WaitGroup

	for w := 0; w < opts.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				res, err := m.fetchOne(ctx, item, opts)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					results[item.ID] = res
				}
				mu.Unlock()
			}
		}()
	}

	for _, item := range items {
		tasks <- item
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// fetchOne runs the reuse-or-download-and-verify sequence for one item under
// the destination path's lock.
func (m *ManagerImpl) fetchOne(ctx context.Context, item Item, opts Options) (Result, error) {
	if item.URL == nil {
		return Result{}, fmt.Errorf("nil URL for %s: %w", item.ID, pkgerrors.ErrDownloadFailed)
	}
	if item.Checksum == "" && !item.SkipVerification {
		return Result{}, fmt.Errorf("item %s: %w", item.ID, pkgerrors.ErrMissingChecksum)
	}

	absPath := filepath.Join(opts.Dir, selectFilename(item))

	lock := m.pathLock(absPath)
	lock.Lock()
	defer lock.Unlock()

	// Reuse only on a fresh hash match; existence alone is never trusted.
	// Unverifiable items always re-download.
	if st, err := os.Stat(absPath); err == nil && st.Size() > 0 && !item.SkipVerification {
		ok, verr := verifySHA256(absPath, item.Checksum)
		if verr == nil && ok {
			return Result{Path: absPath, CacheHit: true}, nil
		}
		// Stale or unreadable cached file: treat as corruption and replace.
		if rerr := os.Remove(absPath); rerr != nil {
			return Result{}, pkgerrors.Wrap(rerr, "could not remove corrupted cache file")
		}
	}

	resp, err := m.doRequest(ctx, item)
	if err != nil {
		return Result{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	tmpPath, err := writeBodyToTemp(resp, absPath)
	if err != nil {
		return Result{}, err
	}

	if !item.SkipVerification {
		ok, err := verifySHA256(tmpPath, item.Checksum)
		if err != nil {
			_ = os.Remove(tmpPath)
			return Result{}, err
		}
		if !ok {
			_ = os.Remove(tmpPath)
			return Result{}, fmt.Errorf("checksum mismatch for %s: %w", item.URL, pkgerrors.ErrFileHashMismatch)
		}
	}

	if err := finalizeFile(tmpPath, absPath); err != nil {
		_ = os.Remove(tmpPath)
		return Result{}, err
	}
	return Result{Path: absPath, CacheHit: false}, nil
}

// pathLock returns the lock guarding one destination path.
func (m *ManagerImpl) pathLock(absPath string) *sync.Mutex {
	m.locksMu.Lock()
	defer m.locksMu.Unlock()
	lock, ok := m.locks[absPath]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[absPath] = lock
	}
	return lock
}

// selectFilename derives the deterministic cache filename for an item. It is
// a pure function of id/version/filename so repeated calls always target the
// same path.
func selectFilename(item Item) string {
	if item.Filename != "" {
		return item.Filename
	}
	if item.ID != "" {
		name := item.ID
		if item.Version != "" {
			name += "-" + item.Version
		}
		if item.URL != nil {
			name += path.Ext(item.URL.Path)
		}
		return name
	}
	return strings.ToLower(strings.TrimSpace(item.Checksum))
}

func (m *ManagerImpl) doRequest(ctx context.Context, item Item) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, item.URL.String(), http.NoBody)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", m.userAgent)
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "download failed")
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d: %w", resp.StatusCode, pkgerrors.ErrDownloadFailed)
	}
	return resp, nil
}

// writeBodyToTemp stages the response body next to the destination so the
// final rename stays on one filesystem. The staging file is removed on any
// failure, including cancellation mid-copy.
func writeBodyToTemp(resp *http.Response, absPath string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(absPath), fsutil.DirModeSecure); err != nil {
		return "", pkgerrors.Wrap(err, "could not create cache dir")
	}
	tmp, err := os.CreateTemp(filepath.Dir(absPath), "dl-*.tmp")
	if err != nil {
		return "", pkgerrors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not write file")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not sync file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", pkgerrors.Wrap(err, "could not close file")
	}
	return tmpPath, nil
}

func finalizeFile(tmpPath, absPath string) error {
	if err := fsutil.Move(tmpPath, absPath); err != nil {
		return pkgerrors.Wrap(err, "could not finalize file")
	}
	if err := os.Chmod(absPath, fsutil.FileModeSecure); err != nil {
		return pkgerrors.Wrap(err, "could not set permissions")
	}
	return nil
}

func verifySHA256(path string, wantHex string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, pkgerrors.Wrap(err, "open for checksum")
	}
	defer func() { _ = f.Close() }()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return false, pkgerrors.Wrap(err, "hashing")
	}
	got := hex.EncodeToString(h.Sum(nil))
	return got == normalizeHex(wantHex), nil
}

func normalizeHex(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
