package game

import (
	"sort"
	"time"
)

// Scheduler runs deferred one-shot callbacks on the simulation thread.
// Every callback is tagged with the generation current at scheduling time;
// Invalidate bumps the generation so callbacks from an abandoned session
// never fire.
type Scheduler struct {
	generation uint64
	seq        uint64
	pending    []scheduled
	dropped    int
}

type scheduled struct {
	due time.Time
	gen uint64
	seq uint64
	fn  func()
}

// After schedules fn to run on the first Run at or after now+d.
func (s *Scheduler) After(now time.Time, d time.Duration, fn func()) {
	s.seq++
	s.pending = append(s.pending, scheduled{
		due: now.Add(d),
		gen: s.generation,
		seq: s.seq,
		fn:  fn,
	})
}

// Invalidate discards all pending callbacks and starts a new generation.
func (s *Scheduler) Invalidate() {
	s.dropped += len(s.pending)
	s.pending = nil
	s.generation++
}

// Generation returns the current generation.
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

// Pending returns the number of callbacks waiting to fire.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Dropped returns how many callbacks were discarded as stale so far.
func (s *Scheduler) Dropped() int {
	return s.dropped
}

// Run fires every callback due at now, ordered by due time then by
// scheduling order, and returns how many fired. A callback that invalidates
// the scheduler stops the remaining due callbacks of the old generation.
func (s *Scheduler) Run(now time.Time) int {
	var due []scheduled
	keep := s.pending[:0]
	for _, item := range s.pending {
		if !item.due.After(now) {
			due = append(due, item)
		} else {
			keep = append(keep, item)
		}
	}
	s.pending = keep
	if len(due) == 0 {
		return 0
	}

	sort.Slice(due, func(i, j int) bool {
		if !due[i].due.Equal(due[j].due) {
			return due[i].due.Before(due[j].due)
		}
		return due[i].seq < due[j].seq
	})

	fired := 0
	for _, item := range due {
		if item.gen != s.generation {
			s.dropped++
			continue
		}
		item.fn()
		fired++
	}
	return fired
}
