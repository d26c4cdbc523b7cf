// Package model provides data structures and types for representing catalog
// applications, install plans, and installation state in appdeck.
package model

import (
	"net/url"
	"regexp"

	"github.com/hashicorp/go-version"
)

// InstallerKind identifies how an application artifact is applied.
type InstallerKind string

// Supported installer kinds.
const (
	KindExe   InstallerKind = "exe"
	KindMsi   InstallerKind = "msi"
	KindAppx  InstallerKind = "appx"
	KindZip   InstallerKind = "zip"
	KindOther InstallerKind = "other"
)

// IsValid reports whether the kind is one of the supported installer kinds.
func (k InstallerKind) IsValid() bool {
	switch k {
	case KindExe, KindMsi, KindAppx, KindZip, KindOther:
		return true
	}
	return false
}

// sha256HexPattern matches a lowercase hex encoded SHA-256 digest.
var sha256HexPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// AppMetadata represents one catalog entry. Entries are immutable once loaded;
// the planner and cache only read them.
type AppMetadata struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	ArtifactURL      string            `json:"artifact_url"`
	SHA256           string            `json:"sha256"`
	InstallerKind    InstallerKind     `json:"installer_kind"`
	Dependencies     []string          `json:"dependencies,omitempty"`
	SilentArgs       string            `json:"silent_args,omitempty"`
	UninstallCommand string            `json:"uninstall_command,omitempty"`
	Hooks            map[string]string `json:"hooks,omitempty"`
}

// GetVersion returns the parsed version of this app, or nil if it does not
// parse as a version.
func (a *AppMetadata) GetVersion() *version.Version {
	v, err := version.NewVersion(a.Version)
	if err != nil {
		return nil
	}
	return v
}

// MatchVersion checks if this app's version satisfies the given constraint.
func (a *AppMetadata) MatchVersion(versionConstraint string) bool {
	constraint, err := version.NewConstraint(versionConstraint)
	if err != nil {
		return false
	}
	v := a.GetVersion()
	if v == nil {
		return false
	}
	return constraint.Check(v)
}

// GetURL returns the parsed artifact URL, or nil if it does not parse.
func (a *AppMetadata) GetURL() *url.URL {
	parsed, err := url.Parse(a.ArtifactURL)
	if err != nil {
		return nil
	}
	return parsed
}

// HasValidChecksum reports whether SHA256 is a well-formed lowercase hex
// SHA-256 digest.
func (a *AppMetadata) HasValidChecksum() bool {
	return sha256HexPattern.MatchString(a.SHA256)
}
