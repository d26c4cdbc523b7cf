package hooks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marbeck-dev/appdeck/pkg/hooks"
)

func TestTengoExecutor(t *testing.T) {
	executor := hooks.NewTengoExecutor()
	ctx := hooks.HookContext{
		AppID:        "vlc",
		AppName:      "VLC media player",
		AppVersion:   "3.0.20",
		ArtifactPath: "/cache/vlc-3.0.20.exe",
		InstallPath:  "/apps/vlc",
		Vars: map[string]interface{}{
			"customVar": "customValue",
		},
	}

	t.Run("valid script", func(t *testing.T) {
		executor.AddScript(hooks.PreInstall, `// This is a valid script that does nothing`)

		err := executor.Execute(hooks.PreInstall, ctx)
		assert.NoError(t, err)
	})

	t.Run("runtime error", func(t *testing.T) {
		script := `
			non_existent_function()
		`
		executor.AddScript(hooks.PostInstall, script)

		err := executor.Execute(hooks.PostInstall, ctx)
		assert.Error(t, err)
	})

	t.Run("non-existent hook type is a no-op", func(t *testing.T) {
		err := executor.Execute("never-registered", ctx)
		assert.NoError(t, err)
	})

	t.Run("add remove has", func(t *testing.T) {
		hookType := hooks.HookType("scratch")
		assert.False(t, executor.HasScript(hookType))

		executor.AddScript(hookType, "// test script")
		assert.True(t, executor.HasScript(hookType))

		executor.RemoveScript(hookType)
		assert.False(t, executor.HasScript(hookType))
	})

	t.Run("context variables are accessible", func(t *testing.T) {
		script := `
			err := ""
			if appId == "" || appName == "" || appVersion == "" || artifactPath == "" || installPath == "" || customVar == "" {
				err = "missing context variable"
			}
		`
		executor.AddScript(hooks.PreUninstall, script)

		err := executor.Execute(hooks.PreUninstall, ctx)
		assert.NoError(t, err)
	})

	t.Run("script error variable surfaces", func(t *testing.T) {
		script := `
			err := "refusing to uninstall"
		`
		executor.AddScript(hooks.PostUninstall, script)

		err := executor.Execute(hooks.PostUninstall, ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "refusing to uninstall")
	})

	t.Run("basic operations", func(t *testing.T) {
		script := `
			err := ""
			a := 5
			b := 3
			if a+b != 8 {
				err = "arithmetic is broken"
			}
		`
		executor.AddScript(hooks.PostInstall, script)

		err := executor.Execute(hooks.PostInstall, ctx)
		assert.NoError(t, err)
	})
}
