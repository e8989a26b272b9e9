// Package httpd serves the device's diagnostic web page.
//
// The server binds its listener synchronously in Start so that a bind
// failure is reported to the caller, then serves on its own goroutine. The
// route table is installed once with Handle.RegisterRoutes and is read-only
// afterwards; requests that match no route get the router's default
// not-found (or method-not-allowed) response.
//
//	srv := httpd.New(httpd.DefaultConfig())
//	h, err := srv.Start()
//	if err != nil {
//	    // non-fatal: the access point stays up without a web endpoint
//	}
//	h.RegisterRoutes([]httpd.Route{httpd.RootRoute("ESP Access Point")})
//
// # Thread Safety
//
// Handlers run on the server's per-connection goroutines. The root handler
// writes a page rendered once at construction and is safe for concurrent
// use.
package httpd
