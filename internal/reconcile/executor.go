package reconcile

import (
	"context"
	"fmt"

	"warctl/internal/artifact"
	"warctl/internal/manager"
	"warctl/pkg/logging"
)

// execute applies the plan's actions strictly in order against the
// manager, amending the report as it goes. The first failing action
// halts the plan; nothing is retried.
func (s *Session) execute(ctx context.Context, plan Plan, desired DesiredSpec, version string, report Report) (Report, error) {
	for _, action := range plan.Actions {
		logging.Debug("Reconcile", "pass %s: executing %s for %s", s.passID, action.Kind, action.ContextPath)

		switch action.Kind {
		case ActionNoop:
			// Observed state already matches; comment was set at plan time.
			return report, nil

		case ActionStart:
			res, err := s.Manager.Start(ctx, action.ContextPath)
			if err != nil {
				report.Result = ResultFailed
				report.Comment = err.Error()
				return report, err
			}
			report.Comment = res.Message
			if res.OK {
				report.Result = ResultSucceeded
			} else {
				report.Result = ResultFailed
			}
			return report, nil

		case ActionUndeploy:
			res, err := s.Manager.Undeploy(ctx, action.ContextPath)
			if err != nil {
				report.Result = ResultFailed
				report.Comment = err.Error()
				return report, err
			}
			if !res.OK {
				// The paired Deploy is never attempted.
				report.Result = ResultFailed
				report.Comment = res.Message
				return report, nil
			}

		case ActionDeploy:
			var err error
			report, err = s.deploy(ctx, desired, version, report)
			if err != nil || report.Result == ResultFailed {
				return report, err
			}

		default:
			report.Result = ResultFailed
			report.Comment = fmt.Sprintf("unknown action %q", action.Kind)
			return report, fmt.Errorf("unknown action %q", action.Kind)
		}
	}
	return report, nil
}

// deploy stages the WAR, uploads it, and on success re-queries observed
// state so the final comment reflects what the manager now reports. On
// failure the prospective "deploy" change entry is removed: it did not
// complete.
func (s *Session) deploy(ctx context.Context, desired DesiredSpec, version string, report Report) (Report, error) {
	staged, cleanup, err := artifact.Stage(ctx, desired.WAR, desired.TempDir)
	if err != nil {
		report.Result = ResultFailed
		report.Comment = err.Error()
		report.Changes.Remove("deploy")
		return report, err
	}
	defer cleanup()

	res, err := s.Manager.Deploy(ctx, manager.DeployRequest{
		ContextPath: desired.ContextPath,
		WARPath:     staged,
		Version:     version,
		Update:      true,
		Environment: s.Environment,
	})
	if err != nil {
		report.Result = ResultFailed
		report.Comment = err.Error()
		report.Changes.Remove("deploy")
		return report, err
	}
	if !res.OK {
		report.Result = ResultFailed
		report.Comment = res.Message
		report.Changes.Remove("deploy")
		return report, nil
	}

	report.Result = ResultSucceeded
	if version == "" {
		report.Changes.Set("deploy", fmt.Sprintf("deployed %s", desired.ContextPath))
	} else {
		report.Changes.Set("deploy", fmt.Sprintf("deployed %s in version %s", desired.ContextPath, version))
	}

	// Final comment comes from a fresh snapshot; if that snapshot fails
	// the deploy itself still counts as converged.
	if fresh, err := QueryState(ctx, s.Manager); err == nil {
		if record, ok := fresh.Lookup(desired.ContextPath); ok {
			report.Comment = record.String()
		}
	} else {
		logging.Warn("Reconcile", "pass %s: post-deploy state query failed: %v", s.passID, err)
	}
	return report, nil
}
