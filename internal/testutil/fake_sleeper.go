// Package testutil provides recording fakes shared by package tests.
package testutil

import (
	"sync"
	"time"
)

// FakeSleeper records requested waits without blocking.
type FakeSleeper struct {
	mu     sync.Mutex
	Waits  []time.Duration
	OnWait func(d time.Duration)
}

// Sleep records d.
func (s *FakeSleeper) Sleep(d time.Duration) {
	s.mu.Lock()
	s.Waits = append(s.Waits, d)
	hook := s.OnWait
	s.mu.Unlock()
	if hook != nil {
		hook(d)
	}
}

// Total returns the sum of recorded waits.
func (s *FakeSleeper) Total() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total time.Duration
	for _, d := range s.Waits {
		total += d
	}
	return total
}
