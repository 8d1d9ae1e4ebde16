package core

import "time"

// StepScheduler gates generation advances on wall-clock time so simulation
// speed does not depend on how often the caller ticks.
type StepScheduler struct {
	interval time.Duration
	last     time.Duration
}

// NewStepScheduler constructs a scheduler that allows one step per interval.
// A zero or negative interval makes every tick due.
func NewStepScheduler(interval time.Duration) *StepScheduler {
	if interval < 0 {
		interval = 0
	}
	return &StepScheduler{interval: interval}
}

// ShouldStep reports whether a step is due at now, the elapsed time since
// the clock started. A true result consumes the step: the last-step marker
// moves to now.
func (s *StepScheduler) ShouldStep(now time.Duration) bool {
	if now-s.last < s.interval || now < s.last {
		return false
	}
	s.last = now
	return true
}

// Interval returns the configured minimum time between steps.
func (s *StepScheduler) Interval() time.Duration { return s.interval }

// LastStep returns the elapsed time at which the last step was taken.
func (s *StepScheduler) LastStep() time.Duration { return s.last }

// Clock reports monotonic elapsed time since it was started.
type Clock struct {
	start time.Time
}

// NewClock starts a clock at the current instant.
func NewClock() *Clock { return &Clock{start: time.Now()} }

// Elapsed returns the time since the clock was started.
func (c *Clock) Elapsed() time.Duration { return time.Since(c.start) }
