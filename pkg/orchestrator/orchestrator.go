// Package orchestrator ties the planner, the verified download cache and the
// installer together behind a small facade the CLI drives.
package orchestrator

import (
	"context"
	"fmt"
	"net/url"

	"github.com/marbeck-dev/appdeck/pkg/download"
	"github.com/marbeck-dev/appdeck/pkg/errors"
	"github.com/marbeck-dev/appdeck/pkg/model"
)

func emit(h Hooks, e Event) {
	if h.OnEvent != nil {
		h.OnEvent(e)
	}
}

// Plan builds the install plan for the target without executing anything.
func (o *Orchestrator) Plan(ctx context.Context, targetAppID string) (*model.PlanSummary, error) {
	if o.Planner == nil {
		return nil, fmt.Errorf("planner is not configured")
	}
	return o.Planner.BuildPlan(ctx, targetAppID)
}

// Install plans and executes the installation of the target app and its
// dependencies, leaf to root. A plan containing blocked steps is never
// executed.
func (o *Orchestrator) Install(ctx context.Context, targetAppID string, opts InstallOptions) error {
	if o.Planner == nil {
		return fmt.Errorf("planner is not configured")
	}

	emit(o.Hooks, Event{Phase: "planning", Msg: targetAppID})
	plan, err := o.Planner.BuildPlan(ctx, targetAppID)
	if err != nil {
		return err
	}

	for _, warning := range plan.Warnings {
		emit(o.Hooks, Event{Phase: "planning", Msg: warning})
	}

	if plan.HasBlocked() {
		for _, step := range plan.Steps {
			if step.Action == model.ActionBlocked {
				emit(o.Hooks, Event{Phase: "error", ID: step.AppID, Msg: step.Notes})
			}
		}
		return errors.Wrapf(errors.ErrPlanBlocked, "cannot install %s", targetAppID)
	}

	// Dry run: just emit steps and return
	if opts.DryRun {
		for _, step := range plan.Steps {
			emit(o.Hooks, Event{Phase: "planning", ID: step.AppID, Msg: describeStep(step)})
		}
		emit(o.Hooks, Event{Phase: "done", Msg: "dry-run"})
		return nil
	}

	if o.DL == nil {
		return fmt.Errorf("download manager is not configured")
	}
	if o.Installer == nil {
		return fmt.Errorf("installer is not configured")
	}
	if o.Catalog == nil {
		return fmt.Errorf("catalog is not configured")
	}

	// Prefetch all artifacts for install steps before touching the machine.
	items := make([]download.Item, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		if step.Action != model.ActionInstall {
			continue
		}
		meta := o.Catalog.Lookup(step.AppID)
		if meta == nil {
			return errors.Wrapf(errors.ErrAppNotFound, "catalog entry vanished for %s", step.AppID)
		}
		items = append(items, download.Item{
			ID:       meta.ID,
			Version:  meta.Version,
			URL:      meta.GetURL(),
			Checksum: meta.SHA256,
		})
	}

	var fetched map[string]download.Result
	if len(items) > 0 {
		emit(o.Hooks, Event{Phase: "downloading", Msg: "prefetching artifacts"})
		fetched, err = o.DL.FetchAll(ctx, items, download.Options{Dir: opts.CacheDir, Concurrency: opts.Concurrency})
		if err != nil {
			return err
		}
	}

	// Steps are already ordered leaf to root.
	for _, step := range plan.Steps {
		if step.Action == model.ActionSkip {
			emit(o.Hooks, Event{Phase: "skipping", ID: step.AppID, Msg: describeStep(step)})
			continue
		}
		res, ok := fetched[step.AppID]
		if !ok {
			return fmt.Errorf("no local file available for step %s: %w", step.AppID, errors.ErrDownloadFailed)
		}
		emit(o.Hooks, Event{Phase: "installing", ID: step.AppID, Msg: describeStep(step)})
		meta := o.Catalog.Lookup(step.AppID)
		if err := o.Installer.InstallApp(ctx, meta, res.Path); err != nil {
			emit(o.Hooks, Event{Phase: "error", ID: step.AppID, Msg: err.Error()})
			return err
		}
	}

	emit(o.Hooks, Event{Phase: "done", Msg: targetAppID})
	return nil
}

// Fetch downloads and verifies the artifact of a single app without
// installing it.
func (o *Orchestrator) Fetch(ctx context.Context, appID, cacheDir string) (download.Result, error) {
	if o.DL == nil {
		return download.Result{}, fmt.Errorf("download manager is not configured")
	}
	if o.Catalog == nil {
		return download.Result{}, fmt.Errorf("catalog is not configured")
	}
	meta := o.Catalog.Lookup(appID)
	if meta == nil {
		return download.Result{}, errors.Wrapf(errors.ErrAppNotFound, "unknown app: %s", appID)
	}
	return o.DL.FetchVerified(ctx, download.Item{
		ID:       meta.ID,
		Version:  meta.Version,
		URL:      meta.GetURL(),
		Checksum: meta.SHA256,
	}, download.Options{Dir: cacheDir})
}

// SyncCatalog downloads the catalog file from catalogURL into opts.CatalogDir.
// Catalog files carry no published checksum, so the fetch bypasses
// verification by going through a plain download item keyed by filename.
func (o *Orchestrator) SyncCatalog(ctx context.Context, catalogURL string, opts SyncOptions) (string, error) {
	if o.DL == nil {
		return "", fmt.Errorf("download manager is not configured")
	}
	if catalogURL == "" {
		return "", errors.Wrap(errors.ErrValidation, "catalog URL is not configured")
	}
	parsed, err := url.Parse(catalogURL)
	if err != nil {
		return "", errors.Wrapf(errors.ErrValidation, "invalid catalog URL: %s", catalogURL)
	}

	res, err := o.DL.FetchVerified(ctx, download.Item{
		ID:               "catalog",
		URL:              parsed,
		Filename:         "catalog.json",
		SkipVerification: true,
	}, download.Options{Dir: opts.CatalogDir})
	if err != nil {
		return "", err
	}
	return res.Path, nil
}

func describeStep(step model.PlanStep) string {
	return step.Name + "@" + step.Version
}
