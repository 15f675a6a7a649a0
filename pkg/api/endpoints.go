package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/nimbushq/nimbus/pkg/types"
)

// pagination is the cursor block the API attaches to list responses.
type pagination struct {
	Next string `json:"next,omitempty"`
}

// listQuery builds the shared pagination query string.
func listQuery(limit int, next string) string {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if next != "" {
		q.Set("next", next)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// ListDomains returns the account's domains and the next pagination
// cursor, if any.
func (c *Client) ListDomains(ctx context.Context, limit int, next string) ([]types.Domain, string, error) {
	var resp struct {
		Domains    []types.Domain `json:"domains"`
		Pagination pagination     `json:"pagination"`
	}
	if err := c.do(ctx, "GET", "/v1/domains"+listQuery(limit, next), nil, &resp); err != nil {
		return nil, "", fmt.Errorf("failed to list domains: %w", err)
	}
	return resp.Domains, resp.Pagination.Next, nil
}

// GetDomain returns one domain by name.
func (c *Client) GetDomain(ctx context.Context, name string) (*types.Domain, error) {
	var resp struct {
		Domain types.Domain `json:"domain"`
	}
	if err := c.do(ctx, "GET", "/v1/domains/"+url.PathEscape(name), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get domain: %w", err)
	}
	return &resp.Domain, nil
}

// AddDomain registers a domain with the account.
func (c *Client) AddDomain(ctx context.Context, name string) (*types.Domain, error) {
	var resp struct {
		Domain types.Domain `json:"domain"`
	}
	body := map[string]string{"name": name}
	if err := c.do(ctx, "POST", "/v1/domains", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to add domain: %w", err)
	}
	return &resp.Domain, nil
}

// RemoveDomain deletes a domain from the account.
func (c *Client) RemoveDomain(ctx context.Context, name string) error {
	if err := c.do(ctx, "DELETE", "/v1/domains/"+url.PathEscape(name), nil, nil); err != nil {
		return fmt.Errorf("failed to remove domain: %w", err)
	}
	return nil
}

// MoveDomain transfers a domain to another account or team.
func (c *Client) MoveDomain(ctx context.Context, name, destination string) error {
	body := map[string]string{"destination": destination}
	if err := c.do(ctx, "PATCH", "/v1/domains/"+url.PathEscape(name), body, nil); err != nil {
		return fmt.Errorf("failed to move domain: %w", err)
	}
	return nil
}

// ListDNSRecords returns the DNS records for a domain and the next
// pagination cursor, if any.
func (c *Client) ListDNSRecords(ctx context.Context, domain string, limit int, next string) ([]types.DNSRecord, string, error) {
	var resp struct {
		Records    []types.DNSRecord `json:"records"`
		Pagination pagination        `json:"pagination"`
	}
	path := "/v1/domains/" + url.PathEscape(domain) + "/records" + listQuery(limit, next)
	if err := c.do(ctx, "GET", path, nil, &resp); err != nil {
		return nil, "", fmt.Errorf("failed to list DNS records: %w", err)
	}
	return resp.Records, resp.Pagination.Next, nil
}

// AddDNSRecord creates a DNS record under a domain and returns its id.
func (c *Client) AddDNSRecord(ctx context.Context, domain string, record types.DNSRecord) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	path := "/v1/domains/" + url.PathEscape(domain) + "/records"
	if err := c.do(ctx, "POST", path, record, &resp); err != nil {
		return "", fmt.Errorf("failed to add DNS record: %w", err)
	}
	return resp.ID, nil
}

// RemoveDNSRecord deletes a DNS record by id.
func (c *Client) RemoveDNSRecord(ctx context.Context, domain, recordID string) error {
	path := "/v1/domains/" + url.PathEscape(domain) + "/records/" + url.PathEscape(recordID)
	if err := c.do(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("failed to remove DNS record: %w", err)
	}
	return nil
}

// ImportZone uploads a zone file for a domain. The file contents are
// passed through opaquely; parsing happens server-side. Returns the
// number of records created.
func (c *Client) ImportZone(ctx context.Context, domain string, zone []byte) (int, error) {
	var resp struct {
		RecordCount int `json:"recordCount"`
	}
	body := map[string]string{"zone": string(zone)}
	path := "/v1/domains/" + url.PathEscape(domain) + "/records/import"
	if err := c.do(ctx, "POST", path, body, &resp); err != nil {
		return 0, fmt.Errorf("failed to import zone file: %w", err)
	}
	return resp.RecordCount, nil
}

// ListCerts returns the account's TLS certificates.
func (c *Client) ListCerts(ctx context.Context, limit int) ([]types.Certificate, error) {
	var resp struct {
		Certs []types.Certificate `json:"certs"`
	}
	if err := c.do(ctx, "GET", "/v1/certs"+listQuery(limit, ""), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	return resp.Certs, nil
}

// IssueCert requests a certificate for the given common names.
// With challengeOnly the platform only prepares the DNS challenges
// without issuing.
func (c *Client) IssueCert(ctx context.Context, cns []string, challengeOnly bool) (*types.Certificate, error) {
	var resp struct {
		Cert types.Certificate `json:"cert"`
	}
	body := map[string]any{"cns": cns, "challengeOnly": challengeOnly}
	if err := c.do(ctx, "POST", "/v1/certs", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to issue certificate: %w", err)
	}
	return &resp.Cert, nil
}

// UploadCert uploads a custom certificate with its key and optional CA
// chain.
func (c *Client) UploadCert(ctx context.Context, cert, key, ca []byte) (*types.Certificate, error) {
	var resp struct {
		Cert types.Certificate `json:"cert"`
	}
	body := map[string]string{
		"cert": string(cert),
		"key":  string(key),
		"ca":   string(ca),
	}
	if err := c.do(ctx, "PUT", "/v1/certs", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to upload certificate: %w", err)
	}
	return &resp.Cert, nil
}

// RemoveCert deletes a certificate by id.
func (c *Client) RemoveCert(ctx context.Context, certID string) error {
	if err := c.do(ctx, "DELETE", "/v1/certs/"+url.PathEscape(certID), nil, nil); err != nil {
		return fmt.Errorf("failed to remove certificate: %w", err)
	}
	return nil
}

// CreateDeploymentRequest is the payload for CreateDeployment.
type CreateDeploymentRequest struct {
	Name     string            `json:"name"`
	Target   string            `json:"target,omitempty"`
	Regions  []string          `json:"regions,omitempty"`
	Meta     map[string]string `json:"meta,omitempty"`
	Env      map[string]string `json:"env,omitempty"`
	BuildEnv map[string]string `json:"buildEnv,omitempty"`
	Public   bool              `json:"public,omitempty"`
	Force    bool              `json:"force,omitempty"`
}

// ListDeployments returns recent deployments and the next pagination
// cursor, if any.
func (c *Client) ListDeployments(ctx context.Context, limit int, next string) ([]types.Deployment, string, error) {
	var resp struct {
		Deployments []types.Deployment `json:"deployments"`
		Pagination  pagination         `json:"pagination"`
	}
	if err := c.do(ctx, "GET", "/v1/deployments"+listQuery(limit, next), nil, &resp); err != nil {
		return nil, "", fmt.Errorf("failed to list deployments: %w", err)
	}
	return resp.Deployments, resp.Pagination.Next, nil
}

// CreateDeployment starts a new deployment.
func (c *Client) CreateDeployment(ctx context.Context, req CreateDeploymentRequest) (*types.Deployment, error) {
	var resp struct {
		Deployment types.Deployment `json:"deployment"`
	}
	if err := c.do(ctx, "POST", "/v1/deployments", req, &resp); err != nil {
		return nil, fmt.Errorf("failed to create deployment: %w", err)
	}
	return &resp.Deployment, nil
}

// GetProjectEnv returns the environment variables for a project scoped
// to a deployment target and optional git branch.
func (c *Client) GetProjectEnv(ctx context.Context, project, target, gitBranch string) ([]types.EnvVar, error) {
	q := url.Values{}
	q.Set("target", target)
	if gitBranch != "" {
		q.Set("gitBranch", gitBranch)
	}
	var resp struct {
		Env []types.EnvVar `json:"env"`
	}
	path := "/v1/projects/" + url.PathEscape(project) + "/env?" + q.Encode()
	if err := c.do(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to pull project environment: %w", err)
	}
	return resp.Env, nil
}

// ListTargets returns the deployment targets of a project.
func (c *Client) ListTargets(ctx context.Context, project string) ([]types.Target, error) {
	var resp struct {
		Targets []types.Target `json:"targets"`
	}
	path := "/v1/projects/" + url.PathEscape(project) + "/targets"
	if err := c.do(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}
	return resp.Targets, nil
}

// ListExamples returns the names of the starter templates init can
// scaffold from.
func (c *Client) ListExamples(ctx context.Context) ([]string, error) {
	var resp struct {
		Examples []string `json:"examples"`
	}
	if err := c.do(ctx, "GET", "/v1/examples", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list examples: %w", err)
	}
	return resp.Examples, nil
}
