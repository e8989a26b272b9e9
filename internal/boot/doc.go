// Package boot sequences device bring-up at process entry.
//
// Run drives the persistent state store, the access point, the web server
// and the mDNS advertisement exactly once, in that order, and applies the
// failure policy:
//
//	Stage          Failure
//	-----          -------
//	nvs            fatal, Run returns *FatalError
//	access point   fatal, Run returns *FatalError
//	web server     logged, access point stays up
//	mdns           logged
//
// Once every stage has run the summary (SSID, password, URL) is logged and
// the returned Result idles until its context ends.
package boot
