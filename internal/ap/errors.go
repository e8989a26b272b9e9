package ap

import "fmt"

// Step is one stage of the access point bring-up sequence.
type Step int

const (
	StepNetifInit Step = iota + 1
	StepEventLoop
	StepCreateNetif
	StepDriverInit
	StepSubscribe
	StepConfigure
	StepStart
)

// String returns a human-readable name for the step
func (s Step) String() string {
	switch s {
	case StepNetifInit:
		return "netif init"
	case StepEventLoop:
		return "event loop"
	case StepCreateNetif:
		return "create AP netif"
	case StepDriverInit:
		return "driver init"
	case StepSubscribe:
		return "event subscribe"
	case StepConfigure:
		return "configure"
	case StepStart:
		return "start"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// NetworkError reports the bring-up step that failed and the stack error
// it returned.
type NetworkError struct {
	Step Step
	Err  error
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return fmt.Sprintf("access point %s failed: %v", e.Step, e.Err)
}

// Unwrap returns the stack error
func (e *NetworkError) Unwrap() error {
	return e.Err
}
