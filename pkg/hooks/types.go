// Package hooks runs Tengo scripts around app lifecycle events. Scripts are
// declared inline in the catalog entry and receive the app's identity and
// paths as script variables.
package hooks

// HookType represents the lifecycle event a script is attached to.
type HookType string

// Supported hook types.
const (
	PreInstall    HookType = "pre-install"
	PostInstall   HookType = "post-install"
	PreUninstall  HookType = "pre-uninstall"
	PostUninstall HookType = "post-uninstall"
)

// Hook represents a hook script with its type and content.
type Hook struct {
	Type    HookType
	Content string
}

// HookContext contains information passed to hook scripts.
type HookContext struct {
	AppID        string
	AppName      string
	AppVersion   string
	ArtifactPath string
	InstallPath  string
	Vars         map[string]interface{}
}
