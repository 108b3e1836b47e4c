package manager

import "context"

// DeployRequest carries everything the manager needs to deploy one WAR.
type DeployRequest struct {
	// ContextPath is the target servlet context path.
	ContextPath string

	// WARPath is the local path of the staged archive to upload.
	WARPath string

	// Version is the version tag to deploy under, empty for none.
	Version string

	// Update asks the manager to replace an existing deployment.
	Update bool

	// Environment names the artifact source environment. It is recorded
	// for diagnostics only; the manager protocol does not carry it.
	Environment string
}

// Client is the abstract manager capability consumed by the reconcile
// package. Implementations must honor context deadlines on every call and
// must never retry on their own.
type Client interface {
	// List returns the observed deployment map keyed by context path.
	// At most one record exists per context path.
	List(ctx context.Context) (map[string]DeploymentRecord, error)

	// Status probes the manager once and reports whether it responded.
	// No retry, no polling.
	Status(ctx context.Context) bool

	// Deploy uploads and deploys a WAR.
	Deploy(ctx context.Context, req DeployRequest) (Result, error)

	// Undeploy removes the webapp at the given context path.
	Undeploy(ctx context.Context, contextPath string) (Result, error)

	// Start starts a deployed but stopped webapp.
	Start(ctx context.Context, contextPath string) (Result, error)

	// Reload reloads the webapp at the given context path.
	Reload(ctx context.Context, contextPath string) (Result, error)
}
