package reconcile

import (
	"context"
	"fmt"

	"warctl/internal/manager"
)

// Observed is the deployment snapshot for one pass, keyed by context
// path. It is read once per pass and used consistently for the whole
// plan; concurrent drift is corrected by the next pass.
type Observed map[string]manager.DeploymentRecord

// Lookup returns the record for a context path and whether one exists.
// Presence is an explicit second return, never an error.
func (o Observed) Lookup(contextPath string) (manager.DeploymentRecord, bool) {
	rec, ok := o[contextPath]
	return rec, ok
}

// QueryState snapshots observed state from the manager's listing.
func QueryState(ctx context.Context, client manager.Client) (Observed, error) {
	records, err := client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query observed state: %w", err)
	}
	return Observed(records), nil
}
