//go:generate mockgen -destination=./mocks/install.go . Runner

package install

import "context"

// Runner executes a native installer binary with the given arguments. The
// process handling itself lives behind this interface so install logic stays
// testable on any platform.
type Runner interface {
	Run(ctx context.Context, installerPath string, args []string) error
}

// RunnerFunc adapts a plain function to the Runner interface.
type RunnerFunc func(ctx context.Context, installerPath string, args []string) error

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, installerPath string, args []string) error {
	return f(ctx, installerPath, args)
}
