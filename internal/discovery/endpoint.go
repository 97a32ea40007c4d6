package discovery

import (
	"fmt"
	"time"
)

// Endpoint is an editor server found on the local network.
type Endpoint struct {
	// Instance is the advertised instance name (e.g. "showroom")
	Instance string

	// Hostname is the mDNS hostname (e.g. "showroom-pc.local.")
	Hostname string

	// IP is the first usable address, IPv4 preferred
	IP string

	Port int

	// Metadata holds the TXT records. quotedesk servers publish
	// "version", "product" and "path".
	Metadata map[string]string

	DiscoveredAt time.Time
}

// String returns a human-readable description of the endpoint.
func (e *Endpoint) String() string {
	return fmt.Sprintf("%s at %s:%d", e.Instance, e.IP, e.Port)
}

// WebSocketURL returns the URL editor clients connect to.
func (e *Endpoint) WebSocketURL() string {
	path := e.GetMetadata("path")
	if path == "" {
		path = "/ws"
	}
	return fmt.Sprintf("ws://%s:%d%s", e.IP, e.Port, path)
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (e *Endpoint) GetMetadata(key string) string {
	if e.Metadata == nil {
		return ""
	}
	return e.Metadata[key]
}
