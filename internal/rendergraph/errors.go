package rendergraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArguments is returned for malformed declarations or calls.
	ErrInvalidArguments = errors.New("invalid arguments")
	// ErrIndexOutOfBounds is returned when an index exceeds its collection.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrInvalidOperation is returned when a call is not valid in the
	// graph's current state.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvalidProgram is returned when the declared commands cannot be
	// ordered, for example because explicit dependencies form a cycle.
	ErrInvalidProgram = errors.New("invalid program")
	// ErrNotSupported is returned by backends for unsupported requests.
	ErrNotSupported = errors.New("not supported")
)

// PhaseError reports the pipeline phase that failed an update.
type PhaseError struct {
	Phase string
	Index int
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("phase %d (%s) failed: %v", e.Index, e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// CmdError reports the command whose callback stopped recording.
type CmdError struct {
	CmdID        int
	RuntimeIndex int
	Node         string
	Err          error
}

func (e *CmdError) Error() string {
	return fmt.Sprintf("command %d (%s) at schedule index %d failed: %v", e.CmdID, e.Node, e.RuntimeIndex, e.Err)
}

func (e *CmdError) Unwrap() error {
	return e.Err
}
