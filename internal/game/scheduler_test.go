package game

import (
	"reflect"
	"testing"
	"time"
)

func TestSchedulerRunsDueInOrder(t *testing.T) {
	var s Scheduler
	t0 := time.Unix(0, 0)
	var got []string

	s.After(t0, 2*time.Second, func() { got = append(got, "late") })
	s.After(t0, time.Second, func() { got = append(got, "first") })
	s.After(t0, time.Second, func() { got = append(got, "second") })

	if n := s.Run(t0.Add(500 * time.Millisecond)); n != 0 {
		t.Errorf("nothing is due yet, fired %d", n)
	}
	if n := s.Run(t0.Add(time.Second)); n != 2 {
		t.Errorf("expected 2 callbacks to fire, got %d", n)
	}
	if !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Errorf("fired in order %v", got)
	}
	if s.Pending() != 1 {
		t.Errorf("expected 1 pending, got %d", s.Pending())
	}

	s.Run(t0.Add(time.Hour))
	if len(got) != 3 || got[2] != "late" {
		t.Errorf("late callback did not fire: %v", got)
	}
}

func TestSchedulerInvalidateDropsPending(t *testing.T) {
	var s Scheduler
	t0 := time.Unix(0, 0)
	fired := 0

	s.After(t0, time.Second, func() { fired++ })
	s.After(t0, time.Second, func() { fired++ })
	gen := s.Generation()
	s.Invalidate()

	if s.Generation() != gen+1 {
		t.Errorf("generation = %d, expected %d", s.Generation(), gen+1)
	}
	if s.Run(t0.Add(time.Minute)) != 0 || fired != 0 {
		t.Error("invalidated callbacks must not fire")
	}
	if s.Dropped() != 2 {
		t.Errorf("Dropped() = %d, expected 2", s.Dropped())
	}
}

func TestSchedulerInvalidateFromCallback(t *testing.T) {
	var s Scheduler
	t0 := time.Unix(0, 0)
	var got []string

	s.After(t0, time.Second, func() {
		got = append(got, "reset")
		s.Invalidate()
		s.After(t0.Add(time.Second), time.Second, func() { got = append(got, "fresh") })
	})
	s.After(t0, time.Second, func() { got = append(got, "stale") })

	s.Run(t0.Add(time.Second))
	if !reflect.DeepEqual(got, []string{"reset"}) {
		t.Fatalf("stale callback from the old generation fired: %v", got)
	}

	s.Run(t0.Add(2 * time.Second))
	if !reflect.DeepEqual(got, []string{"reset", "fresh"}) {
		t.Errorf("got %v", got)
	}
}

func TestIDGeneratorMonotonic(t *testing.T) {
	var ids IDGenerator
	if ids.NextPlayer() != 1 || ids.NextPlayer() != 2 {
		t.Error("player ids should count from 1")
	}
	if ids.NextPaddle() != 1 || ids.NextBall() != 1 {
		t.Error("each kind has its own counter")
	}
}
