// Package manager wraps the application-server manager webapp.
//
// The manager speaks a line-oriented text protocol: every reply starts with a
// status line carrying a fixed "OK" or "FAIL" prefix followed by a free-form
// message. That line is parsed exactly once, at this boundary, into a typed
// Result; callers branch on Result.OK and pass Result.Message through verbatim
// into outcome comments.
//
// Two failure channels are kept apart deliberately:
//
//   - a manager rejection ("FAIL - ...") is a normal Result with OK=false
//   - a transport failure (timeout, connection refused, bad status code)
//     is a Go error and fails the whole convergence pass
//
// The Client interface is the narrow collaborator surface consumed by the
// reconcile package; HTTPClient is the production implementation.
package manager
