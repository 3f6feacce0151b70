package softframe

// CommandQueue holds this frame's commands and the previous frame's.
// The two lists swap roles at Begin; the new current list starts empty and
// only grows until the next Begin.
type CommandQueue struct {
	current  []RenderCommand
	previous []RenderCommand
	capacity int
}

// NewCommandQueue creates a queue accepting up to capacity commands per
// frame. Values below 1 use DefaultQueueCapacity.
func NewCommandQueue(capacity int) *CommandQueue {
	if capacity < 1 {
		capacity = DefaultQueueCapacity
	}
	return &CommandQueue{
		current:  make([]RenderCommand, 0, capacity),
		previous: make([]RenderCommand, 0, capacity),
		capacity: capacity,
	}
}

// Begin swaps the lists and empties the new current one. Its backing
// array is reused.
func (q *CommandQueue) Begin() {
	q.current, q.previous = q.previous, q.current
	clear(q.current)
	q.current = q.current[:0]
}

// Push appends a command to the current frame. A full queue rejects the
// command with a *CapacityError and leaves the frame unchanged.
func (q *CommandQueue) Push(cmd RenderCommand) error {
	if len(q.current) >= q.capacity {
		return &CapacityError{Capacity: q.capacity, Command: cmd.Type}
	}
	q.current = append(q.current, cmd)
	return nil
}

// Changed reports whether the current frame differs from the previous one.
// Commands are compared position by position; a reordered but otherwise
// identical frame counts as changed.
func (q *CommandQueue) Changed() bool {
	if len(q.current) != len(q.previous) {
		return true
	}
	for i := range q.current {
		if !q.current[i].Equal(&q.previous[i]) {
			return true
		}
	}
	return false
}

// Current returns the commands of the frame being built, in paint order.
// The slice is only valid until the next Begin.
func (q *CommandQueue) Current() []RenderCommand {
	return q.current
}

// Len returns the number of commands in the current frame.
func (q *CommandQueue) Len() int {
	return len(q.current)
}

// Cap returns the per-frame command limit.
func (q *CommandQueue) Cap() int {
	return q.capacity
}
