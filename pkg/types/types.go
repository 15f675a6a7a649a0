// Package types provides the domain model for the Nimbus platform API.
package types

import "time"

// Domain is a custom domain attached to a Nimbus account.
type Domain struct {
	Name        string    `json:"name"`
	ProjectID   string    `json:"projectId,omitempty"`
	Verified    bool      `json:"verified"`
	Nameservers []string  `json:"nameservers,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt,omitempty"`
}

// DNSRecord is one DNS record under a domain managed by the platform.
type DNSRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Value    string `json:"value"`
	TTL      int    `json:"ttl,omitempty"`
	Priority int    `json:"priority,omitempty"`
}

// Certificate is a TLS certificate issued for one or more common names.
type Certificate struct {
	ID        string    `json:"id"`
	CNs       []string  `json:"cns"`
	AutoRenew bool      `json:"autoRenew"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Deployment states reported by the platform.
const (
	DeploymentStateQueued   = "QUEUED"
	DeploymentStateBuilding = "BUILDING"
	DeploymentStateReady    = "READY"
	DeploymentStateError    = "ERROR"
	DeploymentStateCanceled = "CANCELED"
)

// Deployment is one deployment of a project.
type Deployment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	State     string    `json:"state"`
	Target    string    `json:"target,omitempty"`
	Regions   []string  `json:"regions,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Project is a linked project on the platform.
type Project struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Framework string    `json:"framework,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Target is a deployment target (environment) of a project. Production
// and preview exist for every project; custom targets carry their own
// slug.
type Target struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// EnvVar is one environment variable scoped to a deployment target.
type EnvVar struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Target string `json:"target"`
}
