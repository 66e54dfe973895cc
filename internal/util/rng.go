package util

import (
	"math/rand"
	"time"
)

// New returns a source seeded with seed; 0 is replaced by 1 so the zero value of a
// config still gives a reproducible run.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Derive gives run i of a batch its own seed. It does not depend on which worker
// picks the run up, so a batch is reproducible for any worker count.
func Derive(seed int64, run int) int64 {
	return seed + int64(run)*7919
}

// SeedOrNow returns seed, or a clock-based seed when seed is 0.
func SeedOrNow(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
