package model

// StepAction represents the action the plan prescribes for one app.
type StepAction string

const (
	// ActionInstall indicates the app should be installed.
	ActionInstall StepAction = "install"
	// ActionSkip indicates the app is already installed at the catalog version.
	ActionSkip StepAction = "skip"
	// ActionBlocked indicates the app cannot be installed due to a cycle,
	// a missing catalog entry, or a blocked dependency.
	ActionBlocked StepAction = "blocked"
)

// PlanStep is one node in a resolved install plan. Steps are created by the
// planner and immutable after creation.
type PlanStep struct {
	AppID        string     `json:"app_id"`
	Name         string     `json:"name"`
	Version      string     `json:"version"`
	Dependencies []string   `json:"dependencies,omitempty"`
	Installed    bool       `json:"installed"`
	Action       StepAction `json:"action"`
	Notes        string     `json:"notes,omitempty"`
}

// PlanSummary is the ordered, diagnosed result of resolving one target app's
// dependency closure. Steps are ordered leaf to root: dependencies appear
// before the apps that depend on them. Warnings are distinct and keep
// first-seen order.
type PlanSummary struct {
	TargetAppID string     `json:"target_app_id"`
	Steps       []PlanStep `json:"steps"`
	Warnings    []string   `json:"warnings,omitempty"`
}

// PlanCounts breaks a plan down by action. Blocked steps are counted on their
// own and never folded into the install or skip totals.
type PlanCounts struct {
	Install int
	Skip    int
	Blocked int
}

// Counts returns the per-action step totals for the plan.
func (p *PlanSummary) Counts() PlanCounts {
	var c PlanCounts
	for _, step := range p.Steps {
		switch step.Action {
		case ActionInstall:
			c.Install++
		case ActionSkip:
			c.Skip++
		case ActionBlocked:
			c.Blocked++
		}
	}
	return c
}

// HasBlocked reports whether any step in the plan is blocked. Callers must
// not execute a plan for which this returns true.
func (p *PlanSummary) HasBlocked() bool {
	for _, step := range p.Steps {
		if step.Action == ActionBlocked {
			return true
		}
	}
	return false
}

// FindStep returns the step for the given app id, or nil if the plan has none.
func (p *PlanSummary) FindStep(appID string) *PlanStep {
	for i := range p.Steps {
		if p.Steps[i].AppID == appID {
			return &p.Steps[i]
		}
	}
	return nil
}
