// Package scheduler models the two deferral points of the page lifecycle as
// explicit tasks: "after this tick" and "after the next animation frame".
package scheduler

// Scheduler defers work without running it in the current turn.
type Scheduler interface {
	// NextTick runs fn after the current turn, before the next frame.
	NextTick(fn func())

	// NextFrame runs fn at the next rendering-frame boundary.
	NextFrame(fn func())
}

// Queue is a deterministic Scheduler. Nothing runs until the owner drains it,
// which makes it suitable for native builds and tests.
type Queue struct {
	ticks  []func()
	frames []func()
}

// Compile-time assertion to ensure Queue implements the Scheduler interface.
var _ Scheduler = (*Queue)(nil)

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) NextTick(fn func()) {
	q.ticks = append(q.ticks, fn)
}

func (q *Queue) NextFrame(fn func()) {
	q.frames = append(q.frames, fn)
}

// RunTicks runs queued tick tasks, including ticks queued while draining.
// It returns the number of tasks run.
func (q *Queue) RunTicks() int {
	n := 0
	for len(q.ticks) > 0 {
		fn := q.ticks[0]
		q.ticks = q.ticks[1:]
		fn()
		n++
	}
	return n
}

// RunFrame drains pending ticks, then runs the callbacks registered for the
// current frame. Callbacks requested during the frame wait for the next one.
func (q *Queue) RunFrame() int {
	n := q.RunTicks()
	frames := q.frames
	q.frames = nil
	for _, fn := range frames {
		fn()
		n++
	}
	return n + q.RunTicks()
}

// Flush runs ticks and frames until both queues are empty.
func (q *Queue) Flush() int {
	n := 0
	for q.Pending() > 0 {
		n += q.RunFrame()
	}
	return n
}

// Pending returns the number of queued tasks.
func (q *Queue) Pending() int {
	return len(q.ticks) + len(q.frames)
}
