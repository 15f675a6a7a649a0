package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Reporter delivers a batch of recorded events to the reporting
// backend. Delivery is best-effort: the store logs a failed Report at
// debug level and moves on, so implementations must never depend on
// being retried.
type Reporter interface {
	Report(ctx context.Context, events []Event) error
}

// HTTPDoer is the subset of http.Client the reporter needs. Tests
// substitute a capturing fake.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// batchPayload is the wire shape handed to the reporting endpoint.
// Event order is preserved.
type batchPayload struct {
	ClientID string  `json:"client_id"`
	Version  string  `json:"version"`
	Events   []Event `json:"events"`
}

// HTTPReporter posts event batches to the platform telemetry endpoint.
type HTTPReporter struct {
	endpoint string
	clientID string
	version  string
	client   HTTPDoer
}

// NewHTTPReporter creates a reporter for the given endpoint. A nil
// client falls back to a short-timeout http.Client so a slow endpoint
// cannot hold up process exit.
func NewHTTPReporter(endpoint, clientID, version string, client HTTPDoer) *HTTPReporter {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPReporter{
		endpoint: endpoint,
		clientID: clientID,
		version:  version,
		client:   client,
	}
}

// Report posts the batch as JSON. Any non-2xx response is an error for
// the store to log.
func (r *HTTPReporter) Report(ctx context.Context, events []Event) error {
	payload := batchPayload{
		ClientID: r.clientID,
		Version:  r.version,
		Events:   events,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telemetry batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create telemetry request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "nimbus/"+r.version)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("telemetry request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telemetry endpoint returned status %d", resp.StatusCode)
	}

	return nil
}
