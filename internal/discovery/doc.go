// Package discovery advertises and finds quotedesk editor servers on the
// local network using mDNS (zeroconf).
//
// A server started with `quotedesk serve --advertise` registers an instance
// of _quotedesk._tcp with TXT records describing the product it prices and
// the websocket path. `quotedesk scan` browses for those instances.
//
//	ad, err := discovery.Advertise("showroom", 8765, map[string]string{"path": "/ws"})
//	if err != nil {
//	    return err
//	}
//	defer ad.Shutdown()
//
//	endpoints, err := discovery.ScanForServers(3 * time.Second)
//
// Browsing needs multicast on the local interface. Firewalls that drop
// UDP 5353 hide every server.
package discovery
