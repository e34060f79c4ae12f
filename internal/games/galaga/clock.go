package galaga

import "sort"

// EventKind names a deferred simulation transition.
type EventKind int

const (
	EventBossRemove EventKind = iota
	EventVictory
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventBossRemove:
		return "boss_remove"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

type scheduledEvent struct {
	at   int
	seq  int
	kind EventKind
}

// Scheduler is a queue of events keyed by the tick they fall due.
// It only advances with simulation ticks, so pausing freezes it.
type Scheduler struct {
	events []scheduledEvent
	seq    int
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules kind to fire delay ticks after now.
func (s *Scheduler) After(now, delay int, kind EventKind) {
	if delay < 1 {
		delay = 1
	}
	s.seq++
	ev := scheduledEvent{at: now + delay, seq: s.seq, kind: kind}

	i := sort.Search(len(s.events), func(i int) bool {
		return s.events[i].at > ev.at
	})
	s.events = append(s.events, scheduledEvent{})
	copy(s.events[i+1:], s.events[i:])
	s.events[i] = ev
}

// Drain removes and returns every event due at or before now, in schedule order.
func (s *Scheduler) Drain(now int) []EventKind {
	n := 0
	for n < len(s.events) && s.events[n].at <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]EventKind, n)
	for i := range n {
		due[i] = s.events[i].kind
	}
	s.events = append(s.events[:0], s.events[n:]...)
	return due
}

// Pending returns the number of queued events.
func (s *Scheduler) Pending() int {
	return len(s.events)
}

// Reset drops every queued event.
func (s *Scheduler) Reset() {
	s.events = s.events[:0]
}
