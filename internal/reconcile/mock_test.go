package reconcile

import (
	"context"
	"fmt"

	"warctl/internal/manager"
)

// MockManagerClient is an in-memory manager.Client for tests. It records
// every call so tests can assert on mutation ordering and dry-run purity,
// and it keeps its deployment map consistent with successful mutations so
// back-to-back passes see converged state.
type MockManagerClient struct {
	Deployments map[string]manager.DeploymentRecord
	Responding  bool

	Calls      []string
	LastDeploy manager.DeployRequest

	ListErr     error
	DeployErr   error
	UndeployErr error
	StartErr    error
	ReloadErr   error

	DeployReply   *manager.Result
	UndeployReply *manager.Result
	StartReply    *manager.Result
	ReloadReply   *manager.Result
}

// NewMockManagerClient returns a responding mock with no deployments.
func NewMockManagerClient() *MockManagerClient {
	return &MockManagerClient{
		Deployments: make(map[string]manager.DeploymentRecord),
		Responding:  true,
	}
}

// AddDeployment seeds one observed record.
func (m *MockManagerClient) AddDeployment(contextPath, version string, mode manager.Mode) {
	m.Deployments[contextPath] = manager.DeploymentRecord{
		ContextPath: contextPath,
		Version:     version,
		Mode:        mode,
	}
}

// MutationCalls returns the recorded calls that mutate manager state.
func (m *MockManagerClient) MutationCalls() []string {
	var out []string
	for _, call := range m.Calls {
		switch call {
		case "list", "status":
		default:
			out = append(out, call)
		}
	}
	return out
}

func (m *MockManagerClient) List(ctx context.Context) (map[string]manager.DeploymentRecord, error) {
	m.Calls = append(m.Calls, "list")
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make(map[string]manager.DeploymentRecord, len(m.Deployments))
	for k, v := range m.Deployments {
		out[k] = v
	}
	return out, nil
}

func (m *MockManagerClient) Status(ctx context.Context) bool {
	m.Calls = append(m.Calls, "status")
	return m.Responding
}

func (m *MockManagerClient) Deploy(ctx context.Context, req manager.DeployRequest) (manager.Result, error) {
	m.Calls = append(m.Calls, "deploy")
	m.LastDeploy = req
	if m.DeployErr != nil {
		return manager.Result{}, m.DeployErr
	}
	if m.DeployReply != nil {
		return *m.DeployReply, nil
	}
	m.Deployments[req.ContextPath] = manager.DeploymentRecord{
		ContextPath: req.ContextPath,
		Version:     req.Version,
		Mode:        manager.ModeRunning,
	}
	return manager.Result{OK: true, Message: fmt.Sprintf("OK - Deployed application at context path %s", req.ContextPath)}, nil
}

func (m *MockManagerClient) Undeploy(ctx context.Context, contextPath string) (manager.Result, error) {
	m.Calls = append(m.Calls, "undeploy")
	if m.UndeployErr != nil {
		return manager.Result{}, m.UndeployErr
	}
	if m.UndeployReply != nil {
		return *m.UndeployReply, nil
	}
	delete(m.Deployments, contextPath)
	return manager.Result{OK: true, Message: fmt.Sprintf("OK - Undeployed application at context path %s", contextPath)}, nil
}

func (m *MockManagerClient) Start(ctx context.Context, contextPath string) (manager.Result, error) {
	m.Calls = append(m.Calls, "start")
	if m.StartErr != nil {
		return manager.Result{}, m.StartErr
	}
	if m.StartReply != nil {
		return *m.StartReply, nil
	}
	if rec, ok := m.Deployments[contextPath]; ok {
		rec.Mode = manager.ModeRunning
		m.Deployments[contextPath] = rec
	}
	return manager.Result{OK: true, Message: fmt.Sprintf("OK - Started application at context path %s", contextPath)}, nil
}

func (m *MockManagerClient) Reload(ctx context.Context, contextPath string) (manager.Result, error) {
	m.Calls = append(m.Calls, "reload")
	if m.ReloadErr != nil {
		return manager.Result{}, m.ReloadErr
	}
	if m.ReloadReply != nil {
		return *m.ReloadReply, nil
	}
	return manager.Result{OK: true, Message: fmt.Sprintf("OK - Reloaded application at context path %s", contextPath)}, nil
}

var _ manager.Client = (*MockManagerClient)(nil)
