package boot

import "fmt"

// Stage names used in FatalError and boot logs.
const (
	StageNVS         = "nvs"
	StageAccessPoint = "access point"
	StageWebServer   = "web server"
	StageMDNS        = "mdns"
)

// FatalError aborts the boot sequence.
type FatalError struct {
	Stage string
	Err   error
}

// Error implements the error interface
func (e *FatalError) Error() string {
	return fmt.Sprintf("boot aborted at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the stage error
func (e *FatalError) Unwrap() error {
	return e.Err
}
