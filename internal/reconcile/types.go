package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTimeout bounds a single manager operation when the desired spec
// does not say otherwise.
const DefaultTimeout = 180 * time.Second

// DesiredSpec is the caller-supplied desired state for one context path.
type DesiredSpec struct {
	// ContextPath is the servlet context path to converge, e.g. "/jenkins".
	ContextPath string

	// WAR is the artifact location: a local path or an http(s) URL.
	WAR string

	// Force redeploys even when the observed version matches.
	Force bool

	// Version selects how the desired version is derived. The zero value
	// derives it from the WAR filename.
	Version VersionSpec

	// Timeout bounds each manager call; DefaultTimeout when zero.
	Timeout time.Duration

	// TempDir overrides the staging location for the WAR copy.
	TempDir string
}

func (d DesiredSpec) timeout() time.Duration {
	if d.Timeout <= 0 {
		return DefaultTimeout
	}
	return d.Timeout
}

// ActionKind identifies one corrective action variant.
type ActionKind string

const (
	// ActionUndeploy removes the existing deployment first.
	ActionUndeploy ActionKind = "Undeploy"

	// ActionDeploy uploads and deploys the desired WAR.
	ActionDeploy ActionKind = "Deploy"

	// ActionStart starts a deployed but stopped webapp.
	ActionStart ActionKind = "Start"

	// ActionReload reloads a running webapp in place.
	ActionReload ActionKind = "Reload"

	// ActionNoop records that observed state already matches.
	ActionNoop ActionKind = "Noop"
)

// Action is one step of a Plan.
type Action struct {
	Kind        ActionKind
	ContextPath string
}

// Plan is the ordered action sequence for one pass, together with the
// prospective change log and comment recorded at planning time. Undeploy
// always precedes Deploy for the same context path when both appear.
type Plan struct {
	Actions []Action
	Changes Changes
	Comment string
}

// Contains reports whether the plan includes an action of the given kind.
func (p Plan) Contains(kind ActionKind) bool {
	for _, a := range p.Actions {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

// Result is the tri-state outcome of a pass: succeeded, failed, or
// skipped (dry-run / not executed). It marshals to true/false/null so
// reports keep the shape orchestrators expect.
type Result int

const (
	// ResultSkipped means no mutation was executed (dry-run).
	ResultSkipped Result = iota

	// ResultSucceeded means the pass converged.
	ResultSucceeded

	// ResultFailed means the pass stopped on a failure.
	ResultFailed
)

func (r Result) String() string {
	switch r {
	case ResultSucceeded:
		return "succeeded"
	case ResultFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// MarshalJSON renders the tri-state as true, false or null.
func (r Result) MarshalJSON() ([]byte, error) {
	switch r {
	case ResultSucceeded:
		return []byte("true"), nil
	case ResultFailed:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

// MarshalYAML renders the tri-state as true, false or null.
func (r Result) MarshalYAML() (interface{}, error) {
	switch r {
	case ResultSucceeded:
		return true, nil
	case ResultFailed:
		return false, nil
	default:
		return nil, nil
	}
}

// Change is one labeled entry of a report's change log.
type Change struct {
	Label  string
	Detail string
}

// Changes is an insertion-ordered change log. Order is significant: it
// mirrors the order actions were planned and executed.
type Changes []Change

// Set appends a new entry or updates an existing label in place.
func (c *Changes) Set(label, detail string) {
	for i := range *c {
		if (*c)[i].Label == label {
			(*c)[i].Detail = detail
			return
		}
	}
	*c = append(*c, Change{Label: label, Detail: detail})
}

// Remove deletes the entry with the given label, keeping order intact.
func (c *Changes) Remove(label string) {
	for i := range *c {
		if (*c)[i].Label == label {
			*c = append((*c)[:i], (*c)[i+1:]...)
			return
		}
	}
}

// Get returns the detail recorded under label.
func (c Changes) Get(label string) (string, bool) {
	for _, entry := range c {
		if entry.Label == label {
			return entry.Detail, true
		}
	}
	return "", false
}

// MarshalJSON renders the change log as an object preserving insertion
// order.
func (c Changes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(entry.Label)
		if err != nil {
			return nil, err
		}
		detail, err := json.Marshal(entry.Detail)
		if err != nil {
			return nil, err
		}
		buf.Write(label)
		buf.WriteByte(':')
		buf.Write(detail)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the change log as a mapping preserving insertion
// order.
func (c Changes) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range c {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Label},
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Detail},
		)
	}
	return node, nil
}

// Report is the structured outcome of one operation.
type Report struct {
	// Name identifies the operation target, usually the context path.
	Name string `json:"name" yaml:"name"`

	// Result is the tri-state outcome.
	Result Result `json:"result" yaml:"result"`

	// Changes is the ordered change log.
	Changes Changes `json:"changes" yaml:"changes"`

	// Comment is the human-readable summary; manager failure messages
	// pass through here verbatim.
	Comment string `json:"comment" yaml:"comment"`
}

func describeVersion(version string) string {
	if version == "" {
		return "no version"
	}
	return "version " + version
}

func versionedName(contextPath, version string) string {
	return fmt.Sprintf("%s with %s", contextPath, describeVersion(version))
}
