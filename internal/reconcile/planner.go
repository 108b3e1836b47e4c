package reconcile

import (
	"fmt"

	"warctl/internal/manager"
)

// BuildPlan is the pure planning function: it compares the desired spec
// against the observed snapshot and returns the ordered action plan,
// including the prospective change log reported on dry-run.
//
// Decision table, by lookup of the desired context path:
//
//   - absent                          -> [Deploy]
//   - present, version differs        -> [Undeploy, Deploy]
//   - present, force                  -> [Undeploy, Deploy] (force wins
//     over version equality, never the reverse)
//   - present, version matches, running -> [Noop]
//   - present, version matches, stopped -> [Start]
//
// Version equality is exact string equality. Anything that fails to read
// as a clean present record plans like absent: deploying is always safer
// than raising on a malformed observation.
func BuildPlan(desired DesiredSpec, version string, observed Observed) Plan {
	plan := Plan{}

	record, present := observed.Lookup(desired.ContextPath)
	if !present {
		plan.Actions = []Action{{Kind: ActionDeploy, ContextPath: desired.ContextPath}}
		plan.Changes.Set("deploy", fmt.Sprintf("deployed %s", versionedName(desired.ContextPath, version)))
		return plan
	}

	if desired.Force || record.Version != version {
		plan.Actions = []Action{
			{Kind: ActionUndeploy, ContextPath: desired.ContextPath},
			{Kind: ActionDeploy, ContextPath: desired.ContextPath},
		}
		plan.Changes.Set("undeploy", fmt.Sprintf("undeployed %s", versionedName(desired.ContextPath, record.Version)))
		plan.Changes.Set("deploy", fmt.Sprintf("will deploy %s", versionedName(desired.ContextPath, version)))
		return plan
	}

	plan.Comment = fmt.Sprintf("%s is already deployed", versionedName(desired.ContextPath, version))
	if record.Mode != manager.ModeRunning {
		plan.Actions = []Action{{Kind: ActionStart, ContextPath: desired.ContextPath}}
		plan.Changes.Set("start", fmt.Sprintf("starting %s", desired.ContextPath))
		return plan
	}

	plan.Actions = []Action{{Kind: ActionNoop, ContextPath: desired.ContextPath}}
	return plan
}
