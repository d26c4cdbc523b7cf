//go:generate mockgen -destination=./mocks/download.go . Manager
package download

import (
	"context"
	"net/url"
)

// Manager defines the interface for the verified artifact cache. A fetch
// either returns a path whose contents were hash-verified during that same
// call, or an error; never an unverified path.
type Manager interface {
	// FetchVerified returns a verified local path for the item, reusing the
	// cached copy when its hash still matches and (re)downloading otherwise.
	FetchVerified(ctx context.Context, item Item, opts Options) (Result, error)

	// FetchAll fetches all items, respecting Options (e.g., concurrency and
	// cache dir). It returns a map from Item.ID to its Result.
	FetchAll(ctx context.Context, items []Item, opts Options) (map[string]Result, error)
}

// Item represents one remote installer artifact to fetch.
type Item struct {
	ID       string   // catalog app id. Must be unique within a batch.
	Version  string   // catalog version; part of the deterministic cache name
	URL      *url.URL // source URL to download
	Checksum string   // hex-encoded SHA-256 checksum; compared case-insensitively
	Filename string   // optional preferred filename; if empty, a name is derived

	// SkipVerification disables hash checking and cache reuse for files
	// that carry no published checksum (catalog refreshes). Artifact
	// fetches must never set it.
	SkipVerification bool
}

// Options control the behavior of the verified cache.
type Options struct {
	Dir         string // destination directory (cache). Must be absolute.
	Concurrency int    // number of parallel fetches; if <=0, a sane default is used
}

// Result is the outcome of one verified fetch.
type Result struct {
	Path     string // absolute path of the verified artifact
	CacheHit bool   // true when the cached copy was reused without network I/O
}
