package control

import (
	"time"
)

const (
	DefaultRepeatDelay    = 500 * time.Millisecond
	DefaultRepeatInterval = 40 * time.Millisecond
)

// Repeater generates synthetic key-down events for held keys, the way a
// desktop key-repeat does: after Delay, then every Interval.
type Repeater struct {
	Delay    time.Duration
	Interval time.Duration

	next map[Key]time.Time
}

func NewRepeater() *Repeater {
	return &Repeater{
		Delay:    DefaultRepeatDelay,
		Interval: DefaultRepeatInterval,
	}
}

// Press starts repeating k.
func (r *Repeater) Press(k Key, now time.Time) {
	if r.next == nil {
		r.next = make(map[Key]time.Time)
	}
	r.next[k] = now.Add(r.Delay)
}

// Release stops repeating k.
func (r *Repeater) Release(k Key) {
	delete(r.next, k)
}

// Due appends a KeyDown event to events for every repeat that came due by
// now. A long stall yields at most one repeat per key.
func (r *Repeater) Due(now time.Time, events []Event) []Event {
	for k, next := range r.next {
		if now.Before(next) {
			continue
		}
		events = append(events, KeyDownEvent(k))

		next = next.Add(r.Interval)
		if next.Before(now) {
			next = now.Add(r.Interval)
		}
		r.next[k] = next
	}
	return events
}
