package arkanoid

// RNG is a deterministic pseudo-random number generator (64-bit LCG).
// Its whole state is one word, so snapshots can capture and restore it.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed. Seed 0 is mapped to 1.
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

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a random float64 in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// State returns the internal state word.
func (r *RNG) State() uint64 {
	return r.state
}
