package manager

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"warctl/pkg/logging"
)

// DefaultURL is the manager webapp URL assumed when none is configured.
const DefaultURL = "http://localhost:8080/manager"

// HTTPClient talks to the manager webapp over its text protocol
// ({base}/text/list, {base}/text/deploy, ...), authenticating with HTTP
// basic auth. All calls are bounded by the caller's context deadline.
type HTTPClient struct {
	baseURL  string
	username string
	password string
	httpc    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient constructs a client bound to one manager base URL.
func NewHTTPClient(baseURL, username, password string) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	return &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		httpc:    &http.Client{},
	}
}

// List returns the observed deployment map keyed by context path.
func (c *HTTPClient) List(ctx context.Context) (map[string]DeploymentRecord, error) {
	body, err := c.get(ctx, "list", nil)
	if err != nil {
		return nil, err
	}
	return parseListReply(body)
}

// Status probes the manager once via serverinfo. Any transport error or
// rejected reply counts as not responding.
func (c *HTTPClient) Status(ctx context.Context) bool {
	body, err := c.get(ctx, "serverinfo", nil)
	if err != nil {
		logging.Debug("Manager", "status probe failed: %v", err)
		return false
	}
	return ParseResult(body).OK
}

// Deploy uploads the staged WAR with a PUT to the deploy endpoint.
func (c *HTTPClient) Deploy(ctx context.Context, req DeployRequest) (Result, error) {
	war, err := os.Open(req.WARPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to open staged WAR %s: %w", req.WARPath, err)
	}
	defer war.Close()

	info, err := war.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("failed to stat staged WAR %s: %w", req.WARPath, err)
	}

	params := url.Values{}
	params.Set("path", req.ContextPath)
	if req.Update {
		params.Set("update", "true")
	}
	if req.Version != "" {
		params.Set("version", req.Version)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, c.endpoint("deploy", params), war)
	if err != nil {
		return Result{}, err
	}
	httpReq.ContentLength = info.Size()
	httpReq.Header.Set("Content-Type", "application/octet-stream")
	httpReq.SetBasicAuth(c.username, c.password)

	logging.Debug("Manager", "deploying %s (%d bytes) to %s", req.WARPath, info.Size(), req.ContextPath)
	body, err := c.do(httpReq)
	if err != nil {
		return Result{}, err
	}
	return ParseResult(body), nil
}

// Undeploy removes the webapp at the given context path.
func (c *HTTPClient) Undeploy(ctx context.Context, contextPath string) (Result, error) {
	return c.command(ctx, "undeploy", contextPath)
}

// Start starts a deployed but stopped webapp.
func (c *HTTPClient) Start(ctx context.Context, contextPath string) (Result, error) {
	return c.command(ctx, "start", contextPath)
}

// Reload reloads the webapp at the given context path.
func (c *HTTPClient) Reload(ctx context.Context, contextPath string) (Result, error) {
	return c.command(ctx, "reload", contextPath)
}

func (c *HTTPClient) command(ctx context.Context, name, contextPath string) (Result, error) {
	params := url.Values{}
	params.Set("path", contextPath)
	body, err := c.get(ctx, name, params)
	if err != nil {
		return Result{}, err
	}
	return ParseResult(body), nil
}

func (c *HTTPClient) endpoint(name string, params url.Values) string {
	u := c.baseURL + "/text/" + name
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *HTTPClient) get(ctx context.Context, name string, params url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(name, params), nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.username, c.password)
	return c.do(req)
}

func (c *HTTPClient) do(req *http.Request) (string, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("manager request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("manager returned HTTP %d for %s", resp.StatusCode, req.URL.Path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read manager reply: %w", err)
	}
	return string(body), nil
}

// parseListReply turns the list reply body into the observed deployment map.
//
// Rows look like:
//
//	/jenkins:running:12:jenkins##1.2.4
//	/examples:stopped:0:examples
//
// Malformed rows are skipped rather than failing the snapshot; a context
// path that cannot be parsed simply reads as absent.
func parseListReply(body string) (map[string]DeploymentRecord, error) {
	lines := strings.Split(body, "\n")
	status := ParseResult(lines[0])
	if !status.OK {
		return nil, fmt.Errorf("manager list rejected: %s", status.Message)
	}

	records := make(map[string]DeploymentRecord)
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 4)
		if len(parts) != 4 || parts[0] == "" {
			logging.Warn("Manager", "skipping malformed list row: %q", line)
			continue
		}
		sessions, err := strconv.Atoi(parts[2])
		if err != nil {
			sessions = 0
		}
		version := ""
		if idx := strings.Index(parts[3], "##"); idx >= 0 {
			version = parts[3][idx+2:]
		}
		records[parts[0]] = DeploymentRecord{
			ContextPath: parts[0],
			Version:     version,
			Mode:        Mode(parts[1]),
			Sessions:    sessions,
		}
	}
	return records, nil
}
