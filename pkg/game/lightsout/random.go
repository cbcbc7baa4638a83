package lightsout

import (
	"math/rand"
	"time"
)

// Source supplies the uniform values in [0, 1) used to light cells when a
// board is generated. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source seeded with seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSource returns a Source seeded from the wall clock.
func NewTimeSource() Source {
	return NewSource(time.Now().UnixNano())
}
