// Package discovery advertises the device's web page over mDNS.
//
// Stations that support multicast DNS can find the diagnostic page without
// knowing the gateway address. The device registers a single "_http._tcp"
// service in the "local." domain with a "path=/" TXT record:
//
//	adv, err := discovery.Advertise(discovery.DefaultInstance, 80)
//	if err != nil {
//	    // non-fatal: the page is still reachable at the gateway address
//	}
//	defer adv.Shutdown()
//
// # Network Requirements
//
// - Requires multicast support on the network interface
// - Firewall must allow mDNS (UDP port 5353)
package discovery
