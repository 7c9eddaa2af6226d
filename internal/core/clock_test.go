package core

import "testing"

func TestClockAdvance(t *testing.T) {
	c := NewClock()
	if c.Now() != 0 {
		t.Fatalf("new clock Now() = %v, want 0", c.Now())
	}

	c.Advance(1.0 / 60.0)
	c.Advance(1.0 / 60.0)
	if got := c.Now(); got < 0.033 || got > 0.034 {
		t.Errorf("Now() after two 60Hz ticks = %v", got)
	}
}

func TestClockIgnoresNegativeDelta(t *testing.T) {
	c := NewClock()
	c.Advance(2)
	c.Advance(-1)
	if c.Now() != 2 {
		t.Errorf("Now() = %v, want 2 (negative delta ignored)", c.Now())
	}
}

func TestClockReset(t *testing.T) {
	c := NewClock()
	c.Advance(5)
	c.Reset()
	if c.Now() != 0 {
		t.Errorf("Now() after Reset = %v, want 0", c.Now())
	}
}
