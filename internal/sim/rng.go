package sim

// RNG is a deterministic pseudo-random number generator. Every random
// decision in the simulation (drop rolls, mimic dodge checks, pity targets,
// portal destinations, micro-drift, shrapnel spread) flows through one
// seeded instance so replays and tests are reproducible.
// Uses a simple LCG (Linear Congruential Generator).
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next generates the next random uint64.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// IntRange returns a random int in [lo, hi] inclusive.
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// FloatRange returns a random float64 in [lo, hi).
func (r *RNG) FloatRange(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with probability p (clamped to [0, 1]).
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// Sign returns -1 or 1 with equal probability.
func (r *RNG) Sign() float64 {
	if r.Next()&1 == 0 {
		return -1
	}
	return 1
}

// State exposes the internal state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}

// SetState restores the internal state from a snapshot.
func (r *RNG) SetState(s uint64) {
	if s == 0 {
		s = 1
	}
	r.state = s
}
