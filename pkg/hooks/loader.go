package hooks

import (
	"github.com/marbeck-dev/appdeck/pkg/errors"
)

// knownHookTypes is the set of lifecycle events a catalog entry may attach
// scripts to.
var knownHookTypes = map[HookType]bool{
	PreInstall:    true,
	PostInstall:   true,
	PreUninstall:  true,
	PostUninstall: true,
}

// IsKnownHookType reports whether name is a supported lifecycle event.
func IsKnownHookType(name string) bool {
	return knownHookTypes[HookType(name)]
}

// LoadHooksFromScripts registers the inline scripts of a catalog entry with
// the manager. Keys are lifecycle event names; unknown names are rejected so
// a typo in the catalog surfaces instead of silently never running.
func LoadHooksFromScripts(manager HookManager, scripts map[string]string) error {
	for name, content := range scripts {
		hookType := HookType(name)
		if !knownHookTypes[hookType] {
			return errors.Wrapf(errors.ErrHookExecution, "unsupported hook event: %s", name)
		}
		if content == "" {
			continue
		}
		if err := manager.AddHook(Hook{Type: hookType, Content: content}); err != nil {
			return errors.Wrapf(err, "error adding hook %s", name)
		}
	}
	return nil
}
