package event

import "github.com/lixenwraith/blade-toss/parameter"

// EventQueue collects a frame's events in FIFO order
// Single producer and single consumer, both on the frame loop
type EventQueue struct {
	events []GameEvent
	spare  []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make([]GameEvent, 0, parameter.EventQueueCapacity),
		spare:  make([]GameEvent, 0, parameter.EventQueueCapacity),
	}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events = append(eq.events, ev)
}

// Consume returns all pending events and empties the queue
// The returned slice is reused by the queue after the next Consume
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events, eq.spare = eq.spare[:0], out
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

// Clear drops pending events
func (eq *EventQueue) Clear() {
	eq.events = eq.events[:0]
}
