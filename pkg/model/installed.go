package model

import "time"

// InstalledApp represents one entry in the persisted installation state.
// The planner treats these records as read-only input: a record satisfies a
// catalog entry only if InstalledVersion equals the catalog's current version
// for that id.
type InstalledApp struct {
	AppID            string    `json:"app_id"`
	Name             string    `json:"name"`
	InstalledVersion string    `json:"installed_version"`
	InstalledAt      time.Time `json:"installed_at"`
	InstalledFrom    string    `json:"installed_from,omitempty"`
}

// Satisfies reports whether this record satisfies the given catalog version.
// Version drift in either direction means the record does not satisfy.
func (r *InstalledApp) Satisfies(catalogVersion string) bool {
	return r.InstalledVersion == catalogVersion
}
