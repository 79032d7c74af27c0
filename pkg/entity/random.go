package entity

import "math/rand/v2"

// Rand is the source of the uniform draws in [0,1) used for firing,
// projectile spread, enemy jitter and spawn placement.
type Rand interface {
	Float64() float64
}

// NewRand returns a PCG-backed source. A zero seed picks a random one.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
