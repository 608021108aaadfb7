package stopwatch

import (
	"fmt"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// Stopwatch measures elapsed wall time minus time spent paused.
type Stopwatch struct {
	clock     Clock
	startedAt time.Time
	pausedAt  time.Time
	paused    time.Duration
	running   bool
	isPaused  bool
}

// New returns a stopped stopwatch. A nil clock uses the system clock.
func New(clock Clock) *Stopwatch {
	if clock == nil {
		clock = SystemClock
	}
	return &Stopwatch{clock: clock}
}

// Start (re)starts timing from zero.
func (s *Stopwatch) Start() {
	s.startedAt = s.clock.Now()
	s.pausedAt = time.Time{}
	s.paused = 0
	s.running = true
	s.isPaused = false
}

// Reset stops the stopwatch and clears accumulated time.
func (s *Stopwatch) Reset() {
	*s = Stopwatch{clock: s.clock}
}

// Started reports whether Start has been called since the last Reset.
func (s *Stopwatch) Started() bool {
	return s.running
}

// Paused reports whether the stopwatch is paused.
func (s *Stopwatch) Paused() bool {
	return s.isPaused
}

// Pause freezes the elapsed time. Pausing twice is a no-op.
func (s *Stopwatch) Pause() {
	if !s.running || s.isPaused {
		return
	}
	s.pausedAt = s.clock.Now()
	s.isPaused = true
}

// Resume continues timing after a pause. Resuming while running is a no-op.
func (s *Stopwatch) Resume() {
	if !s.running || !s.isPaused {
		return
	}
	s.paused += s.clock.Now().Sub(s.pausedAt)
	s.pausedAt = time.Time{}
	s.isPaused = false
}

// Toggle flips between paused and running.
func (s *Stopwatch) Toggle() {
	if s.isPaused {
		s.Resume()
		return
	}
	s.Pause()
}

// Elapsed returns wall time since start minus total paused time.
func (s *Stopwatch) Elapsed() time.Duration {
	if !s.running {
		return 0
	}
	now := s.clock.Now()
	if s.isPaused {
		now = s.pausedAt
	}
	elapsed := now.Sub(s.startedAt) - s.paused
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Format renders a duration as mm:ss.
func Format(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
