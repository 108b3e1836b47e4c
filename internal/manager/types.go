package manager

import (
	"fmt"
	"strings"
)

// Mode represents the reported run mode of a deployed webapp.
type Mode string

const (
	// ModeRunning means the webapp is deployed and serving requests.
	ModeRunning Mode = "running"

	// ModeStopped means the webapp is deployed but not started.
	ModeStopped Mode = "stopped"
)

// DeploymentRecord is one entry of observed state, produced from the
// manager's list reply. It is an immutable snapshot valid only for the
// duration of one convergence pass.
type DeploymentRecord struct {
	// ContextPath is the servlet context path, e.g. "/jenkins".
	ContextPath string

	// Version is the deployed version tag, empty when the webapp was
	// deployed without one.
	Version string

	// Mode is the reported run mode.
	Mode Mode

	// Sessions is the active session count from the list reply.
	Sessions int
}

// String renders the record the way it appears in outcome comments.
func (r DeploymentRecord) String() string {
	version := r.Version
	if version == "" {
		version = "null"
	}
	return fmt.Sprintf("{path: %s, version: %s, mode: %s, sessions: %d}",
		r.ContextPath, version, r.Mode, r.Sessions)
}

// Result is a manager reply with its success prefix parsed exactly once.
type Result struct {
	// OK reports whether the reply carried the fixed success prefix.
	OK bool

	// Message is the raw status line, preserved verbatim for outcome
	// comments.
	Message string
}

// ParseResult classifies the first line of a manager reply.
func ParseResult(reply string) Result {
	line := reply
	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	line = strings.TrimSpace(line)
	return Result{
		OK:      strings.HasPrefix(line, "OK"),
		Message: line,
	}
}
