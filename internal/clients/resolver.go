package clients

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Resolver maps logical service names (e.g. "product-service") to concrete
// base URLs. A service may be configured with several instance URLs; calls
// are spread across them round-robin, which stands in for the discovery
// based load balancing the services would use in a full deployment.
type Resolver struct {
	services map[string]*instances
}

type instances struct {
	urls []string
	next uint64
}

// NewResolver builds a resolver from a service-name → URL-list map. Each
// list entry may itself be a comma-separated set of instance URLs.
func NewResolver(services map[string]string) *Resolver {
	r := &Resolver{services: make(map[string]*instances, len(services))}
	for name, raw := range services {
		var urls []string
		for _, u := range strings.Split(raw, ",") {
			u = strings.TrimRight(strings.TrimSpace(u), "/")
			if u != "" {
				urls = append(urls, u)
			}
		}
		if len(urls) > 0 {
			r.services[name] = &instances{urls: urls}
		}
	}
	return r
}

// Resolve returns the base URL to use for the next call to the named
// service, advancing the round-robin cursor.
func (r *Resolver) Resolve(service string) (string, error) {
	inst, ok := r.services[service]
	if !ok {
		return "", fmt.Errorf("no instances configured for service %q", service)
	}
	n := atomic.AddUint64(&inst.next, 1)
	return inst.urls[(n-1)%uint64(len(inst.urls))], nil
}
