package core

import (
	"testing"
	"time"
)

func TestShouldStepConsumesDueStep(t *testing.T) {
	s := NewStepScheduler(100 * time.Millisecond)

	if s.ShouldStep(99 * time.Millisecond) {
		t.Fatal("step due before the first interval")
	}
	if !s.ShouldStep(120 * time.Millisecond) {
		t.Fatal("step not due after the first interval")
	}
	if s.LastStep() != 120*time.Millisecond {
		t.Fatalf("LastStep() = %v, want 120ms", s.LastStep())
	}
	if s.ShouldStep(120 * time.Millisecond) {
		t.Fatal("step due twice at the same instant")
	}
	if s.ShouldStep(219 * time.Millisecond) {
		t.Fatal("step due before a full interval since the last one")
	}
	if s.LastStep() != 120*time.Millisecond {
		t.Fatal("a false answer must not move the last-step marker")
	}
	if !s.ShouldStep(220 * time.Millisecond) {
		t.Fatal("step not due a full interval after the last one")
	}
}

func TestShouldStepExtraTicksAreNoops(t *testing.T) {
	s := NewStepScheduler(time.Second)
	steps := 0
	// 60 ticks per second for three seconds.
	for frame := 0; frame <= 180; frame++ {
		if s.ShouldStep(time.Duration(frame) * time.Second / 60) {
			steps++
		}
	}
	if steps != 3 {
		t.Fatalf("took %d steps in three seconds, want 3", steps)
	}
}

func TestShouldStepZeroIntervalAlwaysDue(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		s := NewStepScheduler(interval)
		if s.Interval() != 0 {
			t.Fatalf("interval %v normalized to %v, want 0", interval, s.Interval())
		}
		for i := 0; i < 3; i++ {
			if !s.ShouldStep(5 * time.Millisecond) {
				t.Fatalf("zero interval not due on tick %d", i)
			}
		}
	}
}

func TestShouldStepIgnoresTimeGoingBackwards(t *testing.T) {
	s := NewStepScheduler(0)
	s.ShouldStep(time.Second)
	if s.ShouldStep(500 * time.Millisecond) {
		t.Fatal("stepped on an earlier timestamp")
	}
	if s.LastStep() != time.Second {
		t.Fatalf("last step moved backwards to %v", s.LastStep())
	}
}

func TestClockElapsedIsMonotonic(t *testing.T) {
	c := NewClock()
	a := c.Elapsed()
	b := c.Elapsed()
	if a < 0 || b < a {
		t.Fatalf("elapsed went from %v to %v", a, b)
	}
}
