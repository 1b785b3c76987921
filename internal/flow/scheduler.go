package flow

import (
	"sync"
	"time"
)

// Scheduler runs pending transitions on timers owned by one UI instance.
// Close stops every timer; nothing fires after Close returns.
type Scheduler struct {
	mu       sync.Mutex
	timers   map[uint64]*time.Timer
	closed   bool
	inflight sync.WaitGroup
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[uint64]*time.Timer)}
}

// Schedule calls fire with the pending seq after its delay. It reports false
// when the scheduler is already closed. fire runs on a timer goroutine and
// must not block.
func (s *Scheduler) Schedule(p Pending, fire func(seq uint64)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	if existing, ok := s.timers[p.Seq]; ok {
		existing.Stop()
	}
	seq := p.Seq
	s.timers[seq] = time.AfterFunc(p.Delay, func() {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return
		}
		if _, ok := s.timers[seq]; !ok {
			s.mu.Unlock()
			return
		}
		delete(s.timers, seq)
		s.inflight.Add(1)
		s.mu.Unlock()
		defer s.inflight.Done()
		fire(seq)
	})
	return true
}

// Cancel stops the timer for seq if it has not fired yet.
func (s *Scheduler) Cancel(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[seq]; ok {
		timer.Stop()
		delete(s.timers, seq)
	}
}

// Len returns the number of timers still waiting.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close stops all timers and waits for callbacks already running.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for seq, timer := range s.timers {
		timer.Stop()
		delete(s.timers, seq)
	}
	s.mu.Unlock()
	s.inflight.Wait()
}
