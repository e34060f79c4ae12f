package galaga

import "testing"

func TestSchedulerExactlyOnce(t *testing.T) {
	s := NewScheduler()
	s.After(0, 5, EventVictory)

	if due := s.Drain(4); len(due) != 0 {
		t.Fatalf("Drain(4) = %v, want nothing", due)
	}
	due := s.Drain(5)
	if len(due) != 1 || due[0] != EventVictory {
		t.Fatalf("Drain(5) = %v, want [victory]", due)
	}
	if due := s.Drain(6); len(due) != 0 {
		t.Errorf("event delivered twice: %v", due)
	}
}

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	s.After(0, 3, EventVictory)
	s.After(0, 3, EventBossRemove)
	s.After(0, 1, EventBossRemove)

	due := s.Drain(10)
	want := []EventKind{EventBossRemove, EventVictory, EventBossRemove}
	if len(due) != len(want) {
		t.Fatalf("Drain = %v, want %v", due, want)
	}
	for i := range want {
		if due[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, due[i], want[i])
		}
	}
}

func TestSchedulerLateTickDrainsOverdue(t *testing.T) {
	s := NewScheduler()
	s.After(10, 2, EventVictory)
	if due := s.Drain(100); len(due) != 1 {
		t.Errorf("overdue event not delivered: %v", due)
	}
}

func TestSchedulerResetCancelsPending(t *testing.T) {
	s := NewScheduler()
	s.After(0, 2, EventVictory)

	s.Reset()

	if s.Pending() != 0 {
		t.Errorf("Pending = %d after Reset", s.Pending())
	}
	if due := s.Drain(10); len(due) != 0 {
		t.Errorf("stale event fired after Reset: %v", due)
	}
}

func TestSchedulerMinimumDelay(t *testing.T) {
	s := NewScheduler()
	s.After(7, 0, EventBossRemove)
	if due := s.Drain(7); len(due) != 0 {
		t.Errorf("zero delay fired on the scheduling tick")
	}
	if due := s.Drain(8); len(due) != 1 {
		t.Errorf("zero delay not fired on the next tick")
	}
}
