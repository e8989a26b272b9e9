package httpd

import "fmt"

// ServerError reports a failure of the HTTP server lifecycle.
type ServerError struct {
	Op   string // "listen", "shutdown"
	Addr string
	Err  error
}

// Error implements the error interface
func (e *ServerError) Error() string {
	return fmt.Sprintf("http server %s %s: %v", e.Op, e.Addr, e.Err)
}

// Unwrap returns the underlying error
func (e *ServerError) Unwrap() error {
	return e.Err
}
