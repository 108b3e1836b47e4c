// Package logging provides structured logging for warctl built on Go's
// standard slog package.
//
// All log entries carry a subsystem identifier for categorization
// (Bootstrap, Config, Manager, Reconcile, Artifact) plus a formatted
// message and optional error.
//
// Initialize once at startup:
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
// then log through the level helpers:
//
//	logging.Info("Reconcile", "pass %s: planned %d action(s)", passID, n)
//	logging.Error("Manager", err, "list request failed")
//
// Level filtering happens at the handler, so filtered-out messages cost
// no allocation. The package is safe for concurrent use.
package logging
