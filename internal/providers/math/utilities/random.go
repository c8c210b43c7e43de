package utilities

import (
	"math/rand/v2"
	"sync"

	"github.com/GriffinCanCode/mathkit/internal/providers/math/common"
)

// Generator draws uniform integers from an injectable source.
// It is safe for concurrent use.
type Generator struct {
	rng *rand.Rand
	mu  sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the process-wide generator, seeded from runtime entropy
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	})
	return defaultGenerator
}

// NewGenerator creates a generator over the given source
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeededGenerator creates a deterministic generator.
// Two generators with the same seed produce the same sequence.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomInt returns a uniformly distributed integer in [min, max], inclusive
func (g *Generator) RandomInt(min, max int) (int, error) {
	if min > max {
		return 0, common.InvalidArgument("randomInt", "min", "must not exceed max")
	}

	// Width computed in uint64 so the full int range does not overflow
	span := uint64(max-min) + 1

	g.mu.Lock()
	defer g.mu.Unlock()

	if span == 0 {
		return int(g.rng.Uint64()), nil
	}
	return min + int(g.rng.Uint64N(span)), nil
}

// RandomInt draws from the default generator
func RandomInt(min, max int) (int, error) {
	return Default().RandomInt(min, max)
}
