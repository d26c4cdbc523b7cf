// Package plan builds ordered, diagnosed install plans for catalog
// applications. Planning is a pure query over the catalog and the
// installation state: it never downloads, installs, or mutates anything.
package plan

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/marbeck-dev/appdeck/pkg/errors"
	"github.com/marbeck-dev/appdeck/pkg/model"
)

// AppCatalog is the subset of the catalog manager used by the planner.
type AppCatalog interface {
	Lookup(id string) *model.AppMetadata
}

// StateReader is the subset of the state store used by the planner.
type StateReader interface {
	Find(appID string) *model.InstalledApp
}

// Planner resolves the dependency closure of a target application into a
// PlanSummary. It is stateless across calls; concurrent BuildPlan calls are
// independently safe.
type Planner struct {
	catalog AppCatalog
	state   StateReader
}

// NewPlanner creates a planner over the given catalog and state lookups.
func NewPlanner(catalog AppCatalog, state StateReader) *Planner {
	return &Planner{catalog: catalog, state: state}
}

// BuildPlan resolves targetAppID and its transitive dependencies into an
// ordered plan, dependencies before dependents. Cycles and missing catalog
// entries degrade to Blocked steps plus warnings; they never abort planning.
func (p *Planner) BuildPlan(ctx context.Context, targetAppID string) (*model.PlanSummary, error) { //nolint:revive // ctx reserved for future
	_ = ctx // planning does no I/O
	if p.catalog == nil {
		return nil, fmt.Errorf("planner has no catalog: %w", errors.ErrValidation)
	}
	if targetAppID == "" {
		return nil, fmt.Errorf("target app id cannot be empty: %w", errors.ErrValidation)
	}

	b := newBuilder(p.catalog, p.state)
	b.visit(targetAppID)

	return &model.PlanSummary{
		TargetAppID: targetAppID,
		Steps:       b.steps,
		Warnings:    b.warnings,
	}, nil
}

// --- Internal planning helpers ---

type builder struct {
	catalog      AppCatalog
	state        StateReader
	steps        []model.PlanStep
	resolved     map[string]struct{} // ids fully processed and emitted
	onStack      map[string]bool     // ids on the active traversal path
	path         []string            // active traversal path, root first
	blockReasons map[string][]string // id -> distinct block reasons
	warnings     []string
	warnSeen     map[string]struct{}
}

func newBuilder(catalog AppCatalog, state StateReader) *builder {
	return &builder{
		catalog:      catalog,
		state:        state,
		resolved:     make(map[string]struct{}),
		onStack:      make(map[string]bool),
		blockReasons: make(map[string][]string),
		warnSeen:     make(map[string]struct{}),
	}
}

// frame is one node on the explicit traversal stack. An explicit stack bounds
// memory on adversarial or very deep catalogs where call-stack recursion
// would not.
type frame struct {
	id   string
	meta *model.AppMetadata
	next int // index of the next dependency to visit
}

func (b *builder) visit(rootID string) {
	var frames []frame

	// push handles the already-resolved, cycle and missing cases inline;
	// only a live catalog entry gets a frame.
	push := func(id string) {
		if _, done := b.resolved[id]; done {
			return
		}
		if b.onStack[id] {
			b.recordCycle(id)
			return
		}
		meta := b.catalog.Lookup(id)
		if meta == nil {
			b.emitMissing(id)
			return
		}
		b.onStack[id] = true
		b.path = append(b.path, id)
		frames = append(frames, frame{id: id, meta: meta})
	}

	push(rootID)
	for len(frames) > 0 {
		f := &frames[len(frames)-1]
		if f.next < len(f.meta.Dependencies) {
			dep := f.meta.Dependencies[f.next]
			f.next++
			push(dep)
			continue
		}

		// All dependencies handled; emit post-order so dependencies land
		// before their dependents.
		b.finalize(f.id, f.meta)
		delete(b.onStack, f.id)
		b.path = b.path[:len(b.path)-1]
		frames = frames[:len(frames)-1]
	}
}

// recordCycle is called when id is found on the active traversal path. The
// cyclic slice of the path is reported once and every node on it is blocked.
func (b *builder) recordCycle(id string) {
	idx := slices.Index(b.path, id)
	if idx < 0 {
		idx = 0
	}
	cycle := append(slices.Clone(b.path[idx:]), id)
	b.addWarning("Circular dependency detected: " + strings.Join(cycle, " -> "))
	for _, node := range b.path[idx:] {
		b.addBlockReason(node, "Cycle detected")
	}
}

// emitMissing records a warning and a Blocked placeholder step for an id that
// has no catalog entry.
func (b *builder) emitMissing(id string) {
	b.addWarning(fmt.Sprintf("Missing catalog entry for dependency '%s'", id))
	b.addBlockReason(id, "Missing from catalog")
	b.steps = append(b.steps, model.PlanStep{
		AppID:   id,
		Name:    "(missing)",
		Version: "unknown",
		Action:  model.ActionBlocked,
		Notes:   "Missing from catalog",
	})
	b.resolved[id] = struct{}{}
}

// finalize decides installed/action/notes for a catalog-backed node and
// appends its step. Blocking is transitive: a node inherits a reason for
// every blocked dependency.
func (b *builder) finalize(id string, meta *model.AppMetadata) {
	for _, dep := range meta.Dependencies {
		if len(b.blockReasons[dep]) > 0 {
			b.addBlockReason(id, "Depends on blocked dependency: "+dep)
		}
	}

	installed := false
	if b.state != nil {
		if rec := b.state.Find(id); rec != nil && rec.Satisfies(meta.Version) {
			installed = true
		}
	}

	reasons := b.blockReasons[id]
	action := model.ActionInstall
	switch {
	case len(reasons) > 0:
		action = model.ActionBlocked
	case installed:
		action = model.ActionSkip
	}

	b.steps = append(b.steps, model.PlanStep{
		AppID:        id,
		Name:         meta.Name,
		Version:      meta.Version,
		Dependencies: slices.Clone(meta.Dependencies),
		Installed:    installed,
		Action:       action,
		Notes:        strings.Join(reasons, "; "),
	})
	b.resolved[id] = struct{}{}
}

func (b *builder) addWarning(warning string) {
	if _, seen := b.warnSeen[warning]; seen {
		return
	}
	b.warnSeen[warning] = struct{}{}
	b.warnings = append(b.warnings, warning)
}

func (b *builder) addBlockReason(id, reason string) {
	if slices.Contains(b.blockReasons[id], reason) {
		return
	}
	b.blockReasons[id] = append(b.blockReasons[id], reason)
}
