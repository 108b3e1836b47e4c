package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warctl/internal/manager"
)

func kinds(p Plan) []ActionKind {
	out := make([]ActionKind, 0, len(p.Actions))
	for _, a := range p.Actions {
		out = append(out, a.Kind)
	}
	return out
}

func TestBuildPlan_Absent(t *testing.T) {
	desired := DesiredSpec{ContextPath: "/app", WAR: "app-1.0.war"}
	plan := BuildPlan(desired, "1.0", Observed{})

	assert.Equal(t, []ActionKind{ActionDeploy}, kinds(plan))
	detail, ok := plan.Changes.Get("deploy")
	require.True(t, ok)
	assert.Equal(t, "deployed /app with version 1.0", detail)
}

func TestBuildPlan_VersionDiffers(t *testing.T) {
	observed := Observed{
		"/app": {ContextPath: "/app", Version: "1.0", Mode: manager.ModeRunning},
	}
	desired := DesiredSpec{ContextPath: "/app", WAR: "app-1.1.war"}
	plan := BuildPlan(desired, "1.1", observed)

	assert.Equal(t, []ActionKind{ActionUndeploy, ActionDeploy}, kinds(plan))

	undeploy, ok := plan.Changes.Get("undeploy")
	require.True(t, ok)
	assert.Equal(t, "undeployed /app with version 1.0", undeploy)

	deploy, ok := plan.Changes.Get("deploy")
	require.True(t, ok)
	assert.Equal(t, "will deploy /app with version 1.1", deploy)
}

func TestBuildPlan_ForceDominance(t *testing.T) {
	// Force always wins over version equality, never the reverse.
	observed := Observed{
		"/app": {ContextPath: "/app", Version: "1.0", Mode: manager.ModeRunning},
	}
	desired := DesiredSpec{ContextPath: "/app", WAR: "app-1.0.war", Force: true}
	plan := BuildPlan(desired, "1.0", observed)

	assert.Equal(t, []ActionKind{ActionUndeploy, ActionDeploy}, kinds(plan))
}

func TestBuildPlan_AlreadyDeployedRunning(t *testing.T) {
	// Scenario A: matching version, running mode.
	observed := Observed{
		"/app": {ContextPath: "/app", Version: "1.0", Mode: manager.ModeRunning},
	}
	desired := DesiredSpec{ContextPath: "/app", WAR: "app-1.0.war"}
	plan := BuildPlan(desired, "1.0", observed)

	assert.Equal(t, []ActionKind{ActionNoop}, kinds(plan))
	assert.Equal(t, "/app with version 1.0 is already deployed", plan.Comment)
	assert.Empty(t, plan.Changes)
}

func TestBuildPlan_AlreadyDeployedStopped(t *testing.T) {
	// Scenario B: matching version, stopped mode.
	observed := Observed{
		"/app": {ContextPath: "/app", Version: "1.0", Mode: manager.ModeStopped},
	}
	desired := DesiredSpec{ContextPath: "/app", WAR: "app-1.0.war"}
	plan := BuildPlan(desired, "1.0", observed)

	assert.Equal(t, []ActionKind{ActionStart}, kinds(plan))
	assert.Equal(t, "/app with version 1.0 is already deployed", plan.Comment)
	start, ok := plan.Changes.Get("start")
	require.True(t, ok)
	assert.Equal(t, "starting /app", start)
}

func TestBuildPlan_NoVersionAnywhere(t *testing.T) {
	observed := Observed{
		"/app": {ContextPath: "/app", Version: "", Mode: manager.ModeRunning},
	}
	desired := DesiredSpec{ContextPath: "/app", WAR: "app.war"}
	plan := BuildPlan(desired, "", observed)

	assert.Equal(t, []ActionKind{ActionNoop}, kinds(plan))
	assert.Equal(t, "/app with no version is already deployed", plan.Comment)
}

func TestBuildPlan_ObservedVersionedDesiredNot(t *testing.T) {
	observed := Observed{
		"/app": {ContextPath: "/app", Version: "1.0", Mode: manager.ModeRunning},
	}
	desired := DesiredSpec{ContextPath: "/app", WAR: "app.war"}
	plan := BuildPlan(desired, "", observed)

	assert.Equal(t, []ActionKind{ActionUndeploy, ActionDeploy}, kinds(plan))
	undeploy, _ := plan.Changes.Get("undeploy")
	assert.Equal(t, "undeployed /app with version 1.0", undeploy)
	deploy, _ := plan.Changes.Get("deploy")
	assert.Equal(t, "will deploy /app with no version", deploy)
}

func TestBuildPlan_UndeployPrecedesDeploy(t *testing.T) {
	observed := Observed{
		"/app": {ContextPath: "/app", Version: "1.0", Mode: manager.ModeRunning},
	}
	for _, force := range []bool{true, false} {
		plan := BuildPlan(DesiredSpec{ContextPath: "/app", Force: force}, "2.0", observed)
		if plan.Contains(ActionDeploy) && plan.Contains(ActionUndeploy) {
			assert.Equal(t, ActionUndeploy, plan.Actions[0].Kind)
		}
	}
}
