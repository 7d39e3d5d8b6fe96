package tetris

// QueueCapacity is the number of movement commands that can be pending.
// Enough to absorb a burst of input between two ticks, small enough that
// stale input does not pile up behind the visible board.
const QueueCapacity = 5

// CommandQueue is a fixed-size ring of pending movement commands.
// When full, Push overwrites the oldest entry. It is not synchronized;
// callers hold the engine lock.
type CommandQueue struct {
	items [QueueCapacity]Command
	first int // Index of the oldest command
	size  int
}

// Push appends cmd, discarding the oldest command if the queue is full.
func (q *CommandQueue) Push(cmd Command) {
	if q.size == QueueCapacity {
		q.first = (q.first + 1) % QueueCapacity
		q.size--
	}
	q.items[(q.first+q.size)%QueueCapacity] = cmd
	q.size++
}

// Pop removes and returns the oldest command. ok is false when the queue
// is empty and the returned command must not be used.
func (q *CommandQueue) Pop() (cmd Command, ok bool) {
	if q.size == 0 {
		return Command{}, false
	}
	cmd = q.items[q.first]
	q.first = (q.first + 1) % QueueCapacity
	q.size--
	return cmd, true
}

// Empty reports whether no commands are pending.
func (q *CommandQueue) Empty() bool {
	return q.size == 0
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int {
	return q.size
}

// Reset drops every pending command.
func (q *CommandQueue) Reset() {
	*q = CommandQueue{}
}
