package softframe

import (
	"errors"
	"fmt"
)

// Sentinel errors for the renderer.
var (
	// ErrNotInitialized is returned by calls on a closed renderer or one
	// whose last resize failed.
	ErrNotInitialized = errors.New("softframe: renderer not initialized")

	// ErrQueueFull is returned when a frame submits more commands than the
	// queue capacity.
	ErrQueueFull = errors.New("softframe: command queue full")

	// ErrInvalidScale is returned for non-positive DPI scale factors.
	ErrInvalidScale = errors.New("softframe: invalid scale")
)

// CapacityError reports a rejected command. It wraps ErrQueueFull.
type CapacityError struct {
	Capacity int
	Command  CommandType
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("softframe: %s command rejected, queue holds %d commands", e.Command, e.Capacity)
}

func (e *CapacityError) Unwrap() error { return ErrQueueFull }
