package event

import "github.com/lixenwraith/skysail/parameter"

// EventQueue buffers the events of one tick until the router drains them
// Push and Consume both run on the tick goroutine; the queue is not safe for concurrent use
// Overflow drops the oldest pending event and counts it
type EventQueue struct {
	ring    [parameter.EventQueueSize]GameEvent
	head    int // Oldest pending slot
	n       int
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, evicting the oldest pending event when full
func (q *EventQueue) Push(ev GameEvent) {
	if q.n == parameter.EventQueueSize {
		q.head = (q.head + 1) & parameter.EventBufferMask
		q.n--
		q.dropped++
	}
	q.ring[(q.head+q.n)&parameter.EventBufferMask] = ev
	q.n++
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *EventQueue) Consume() []GameEvent {
	if q.n == 0 {
		return nil
	}
	out := make([]GameEvent, q.n)
	for i := range out {
		idx := (q.head + i) & parameter.EventBufferMask
		out[i] = q.ring[idx]
		q.ring[idx] = GameEvent{} // release payload
	}
	q.head = (q.head + q.n) & parameter.EventBufferMask
	q.n = 0
	return out
}

// Len returns the pending event count
func (q *EventQueue) Len() int {
	return q.n
}

// Dropped returns the number of events evicted before consumption
func (q *EventQueue) Dropped() uint64 {
	return q.dropped
}
