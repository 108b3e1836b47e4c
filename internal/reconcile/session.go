package reconcile

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"warctl/internal/manager"
	"warctl/pkg/logging"
)

// Session is the explicit per-invocation context: one manager client
// handle, the environment name, and the dry-run flag, constructed once
// and passed into every step of a pass. Nothing in this package reads
// ambient process state.
type Session struct {
	// Manager is the manager-client collaborator.
	Manager manager.Client

	// Environment names the artifact source environment, recorded on
	// deploy requests for diagnostics.
	Environment string

	// DryRun skips the executor: plans are computed against real state
	// but no mutation call is ever issued.
	DryRun bool

	passID string
}

// NewSession constructs the context object for one invocation.
func NewSession(client manager.Client, environment string, dryRun bool) *Session {
	return &Session{
		Manager:     client,
		Environment: environment,
		DryRun:      dryRun,
		passID:      uuid.NewString(),
	}
}

// PassID identifies this convergence pass in log lines.
func (s *Session) PassID() string {
	return s.passID
}

// Deploy runs one full deploy-reconciliation pass for the desired spec.
//
// The returned error is non-nil only for transport-level failures, which
// fail the whole pass and are never retried here. Manager rejections are
// reported through the Report with a failed result and the manager's raw
// message as comment.
func (s *Session) Deploy(ctx context.Context, desired DesiredSpec) (Report, error) {
	report := Report{Name: desired.ContextPath, Result: ResultSucceeded}

	version := desired.Version.Resolve(desired.WAR)
	logging.Debug("Reconcile", "pass %s: registered version for %s is %q", s.passID, desired.ContextPath, version)

	opctx, cancel := context.WithTimeout(ctx, desired.timeout())
	defer cancel()

	observed, err := QueryState(opctx, s.Manager)
	if err != nil {
		report.Result = ResultFailed
		report.Comment = err.Error()
		return report, err
	}

	plan := BuildPlan(desired, version, observed)
	report.Changes = plan.Changes
	report.Comment = plan.Comment
	logging.Info("Reconcile", "pass %s: planned %d action(s) for %s", s.passID, len(plan.Actions), desired.ContextPath)

	if s.DryRun {
		report.Result = ResultSkipped
		return report, nil
	}

	return s.execute(opctx, plan, desired, version, report)
}

// Undeploy enforces that no webapp is deployed at the context path.
//
// A non-responding manager is a failure distinct from already-absent; a
// context path missing from observed state is already satisfied and
// returns success with an empty change log.
func (s *Session) Undeploy(ctx context.Context, contextPath string, timeout time.Duration) (Report, error) {
	report := Report{Name: contextPath, Result: ResultSucceeded}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	opctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if !s.Manager.Status(opctx) {
		report.Result = ResultFailed
		report.Comment = "manager is not responding"
		return report, nil
	}

	observed, err := QueryState(opctx, s.Manager)
	if err != nil {
		report.Result = ResultFailed
		report.Comment = err.Error()
		return report, err
	}

	record, present := observed.Lookup(contextPath)
	if !present {
		return report, nil
	}
	report.Changes.Set("undeploy", record.Version)

	if s.DryRun {
		report.Result = ResultSkipped
		return report, nil
	}

	res, err := s.Manager.Undeploy(opctx, contextPath)
	if err != nil {
		report.Result = ResultFailed
		report.Comment = err.Error()
		return report, err
	}
	if !res.OK {
		report.Result = ResultFailed
		report.Comment = res.Message
	}
	return report, nil
}

// Wait probes the manager once and reports readiness. No retry, no
// polling: if the manager is not up yet, the pass fails immediately and
// the caller's next pass probes again.
func (s *Session) Wait(ctx context.Context, name string, timeout time.Duration) Report {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	opctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if s.Manager.Status(opctx) {
		return Report{Name: name, Result: ResultSucceeded, Comment: "manager is ready"}
	}
	return Report{Name: name, Result: ResultFailed, Comment: "manager is not ready"}
}

// Notify is the change-notification entry point: a declared dependency
// changed, so the webapp at the context path is reloaded in place.
func (s *Session) Notify(ctx context.Context, contextPath string, timeout time.Duration) (Report, error) {
	report := Report{Name: contextPath}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	opctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if s.DryRun {
		report.Result = ResultSkipped
		report.Changes.Set(contextPath, "would reload")
		return report, nil
	}

	res, err := s.Manager.Reload(opctx, contextPath)
	if err != nil {
		report.Result = ResultFailed
		report.Comment = err.Error()
		return report, err
	}

	if res.OK {
		report.Result = ResultSucceeded
	} else {
		report.Result = ResultFailed
	}
	report.Changes.Set(contextPath, strconv.FormatBool(res.OK))
	report.Comment = res.Message
	return report, nil
}
