package loop

import (
	"errors"
	"fmt"
)

// Lifecycle errors returned by Start.
var (
	ErrAlreadyRunning = errors.New("loop: already running")
	ErrStopping       = errors.New("loop: previous run has not finished")
)

// FaultKind classifies a loop failure.
type FaultKind uint8

const (
	// FaultSchedule is a failure inside the tick cycle, including a recovered panic.
	FaultSchedule FaultKind = iota + 1
	// FaultRender is an error returned by the render sink.
	FaultRender
	// FaultShutdown means Stop could not confirm the loop finished before its deadline.
	FaultShutdown
)

// String returns the fault kind name.
func (k FaultKind) String() string {
	switch k {
	case FaultSchedule:
		return "schedule"
	case FaultRender:
		return "render"
	case FaultShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Fault is a structured loop failure. The loop stops when one occurs.
type Fault struct {
	Kind FaultKind
	Tick uint64 // Tick being processed, 0 for shutdown faults
	Err  error
}

func (f *Fault) Error() string {
	if f.Tick > 0 {
		return fmt.Sprintf("loop: %s fault at tick %d: %v", f.Kind, f.Tick, f.Err)
	}
	return fmt.Sprintf("loop: %s fault: %v", f.Kind, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
