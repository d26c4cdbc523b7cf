package hooks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marbeck-dev/appdeck/pkg/errors"
	"github.com/marbeck-dev/appdeck/pkg/hooks"
)

func TestNewHookManager(t *testing.T) {
	manager := hooks.NewHookManager()
	assert.NotNil(t, manager)
}

func TestAddAndExecuteHook(t *testing.T) {
	ctx := hooks.HookContext{
		AppID:      "test-app",
		AppName:    "Test App",
		AppVersion: "1.0.0",
		Vars: map[string]interface{}{
			"testVar": "testValue",
		},
	}

	tests := []struct {
		name    string
		hook    hooks.Hook
		wantErr error
	}{
		{
			name: "valid hook",
			hook: hooks.Hook{
				Type:    hooks.PreInstall,
				Content: `// Simple hook that does nothing`,
			},
		},
		{
			name: "empty hook type",
			hook: hooks.Hook{
				Type:    "",
				Content: `// Never registered`,
			},
			wantErr: errors.ErrHookTypeEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := hooks.NewHookManager()
			err := manager.AddHook(tt.hook)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, manager.HasHook(tt.hook.Type))
			assert.NoError(t, manager.Execute(tt.hook.Type, ctx))
		})
	}
}

func TestRemoveHook(t *testing.T) {
	manager := hooks.NewHookManager()
	require.NoError(t, manager.AddHook(hooks.Hook{Type: hooks.PostInstall, Content: "// noop"}))
	require.True(t, manager.HasHook(hooks.PostInstall))

	require.NoError(t, manager.RemoveHook(hooks.PostInstall))
	assert.False(t, manager.HasHook(hooks.PostInstall))

	err := manager.RemoveHook("")
	require.ErrorIs(t, err, errors.ErrHookTypeEmpty)
}

func TestExecute_UnregisteredTypeIsNoop(t *testing.T) {
	manager := hooks.NewHookManager()
	assert.NoError(t, manager.Execute(hooks.PreUninstall, hooks.HookContext{AppID: "x"}))
}

func TestLoadHooksFromScripts(t *testing.T) {
	manager := hooks.NewHookManager()
	scripts := map[string]string{
		"pre-install":  `// prepare`,
		"post-install": `// verify`,
		"pre-uninstall": ``, // empty scripts are skipped
	}

	require.NoError(t, hooks.LoadHooksFromScripts(manager, scripts))
	assert.True(t, manager.HasHook(hooks.PreInstall))
	assert.True(t, manager.HasHook(hooks.PostInstall))
	assert.False(t, manager.HasHook(hooks.PreUninstall))
}

func TestLoadHooksFromScripts_UnknownEvent(t *testing.T) {
	manager := hooks.NewHookManager()
	err := hooks.LoadHooksFromScripts(manager, map[string]string{
		"post-reboot": `// never supported`,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "post-reboot")
}

func TestIsKnownHookType(t *testing.T) {
	assert.True(t, hooks.IsKnownHookType("pre-install"))
	assert.True(t, hooks.IsKnownHookType("post-uninstall"))
	assert.False(t, hooks.IsKnownHookType("mid-install"))
	assert.False(t, hooks.IsKnownHookType(""))
}
