// Package reconcile implements the convergence core: given a desired
// deployment spec and the observed state reported by the manager, it
// computes the minimal ordered action plan (undeploy, deploy, start,
// reload), executes it, and produces a structured outcome report.
//
// # Architecture
//
// One convergence pass flows through a fixed pipeline:
//
//   - Session: the explicit per-invocation context (manager client,
//     environment name, dry-run flag) passed into every step
//   - QueryState: snapshots observed state from the manager once per pass
//   - VersionSpec.Resolve: derives the effective desired version
//   - BuildPlan: pure planning function, (desired, observed) -> Plan
//   - execute: applies the plan in order, stopping on the first failure
//
// The dry-run gate sits between planning and execution: planning always
// queries real state, but when dry-run is active the plan's prospective
// change log is reported verbatim with a skipped result and no manager
// mutation is ever issued.
//
// # Failure model
//
// A manager rejection (reply with the FAIL prefix) halts the plan and is
// surfaced verbatim as the report comment; it is not a Go error. Transport
// failures are Go errors and fail the whole pass. Nothing is retried;
// convergence across repeated passes is the caller's job.
package reconcile
