package core

// Clock is the simulation's notion of wall-clock time. It only advances when
// the game explicitly ticks it, so pausing the game freezes every duration
// that is compared against it: effect expiries, brick action intervals and
// scheduled events never burn down while the player sits on the pause screen.
//
// Time is measured in seconds since the start of the current game.
type Clock struct {
	now float64
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Advance moves the clock forward by dt seconds.
// Negative deltas are ignored.
func (c *Clock) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	c.now += dt
}

// Now returns the current simulation time in seconds.
// The game samples this once per tick and passes the value down, so every
// subsystem within a tick sees the same instant.
func (c *Clock) Now() float64 {
	return c.now
}

// Reset rewinds the clock to zero for a new game.
func (c *Clock) Reset() {
	c.now = 0
}
