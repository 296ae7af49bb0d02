package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Caller is the single remote-caller abstraction shared by all typed
// service clients. It resolves a logical service name to a base URL,
// performs a JSON GET with a timeout, and applies one response policy:
// 2xx decodes into result, any 4xx is an absent result (found=false,
// no error), everything else is an error.
type Caller struct {
	httpClient *http.Client
	resolver   *Resolver
}

// NewCaller creates a Caller over the given resolver. A zero timeout
// falls back to 10 seconds.
func NewCaller(resolver *Resolver, timeout time.Duration) *Caller {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Caller{
		httpClient: &http.Client{Timeout: timeout},
		resolver:   resolver,
	}
}

// GetJSON issues a GET against service+path and decodes the JSON body into
// result. The returned bool reports whether the resource was present.
func (c *Caller) GetJSON(ctx context.Context, service, path string, result any) (bool, error) {
	baseURL, err := c.resolver.Resolve(service)
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build request for %s: %w", service, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("request to %s failed: %w", service, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if result != nil {
			if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
				return false, fmt.Errorf("failed to decode response from %s: %w", service, err)
			}
		}
		return true, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// Client errors are treated as "resource absent", mirroring how the
		// services consume each other: a missing product is a domain
		// condition, not a transport failure.
		io.Copy(io.Discard, resp.Body)
		return false, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode, service, string(body))
	}
}
