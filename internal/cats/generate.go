package cats

import (
	"math"
	"math/rand"
	"time"
)

// Generator produces snapshots from a seeded source. It is not safe for
// concurrent use; each producer owns one.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed. A zero seed uses the
// clock.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) state() State {
	return State(g.rng.Intn(StateCount))
}

// Random places n cats independently and uniformly in [0,1)² with a
// uniform state.
func (g *Generator) Random(n int) *Snapshot {
	start := time.Now()
	out := make([]Cat, n)
	for i := range out {
		out[i] = Cat{
			X:     g.rng.Float32(),
			Y:     g.rng.Float32(),
			State: g.state(),
		}
	}
	return &Snapshot{Cats: out, Generated: time.Now(), Took: time.Since(start)}
}

// Grid lays n cats out row by row on a side×side lattice with
// side = round(sqrt(n)); only the states are random.
func (g *Generator) Grid(n int) *Snapshot {
	start := time.Now()
	out := make([]Cat, n)
	side := int(math.Round(math.Sqrt(float64(n))))
	if side < 1 {
		side = 1
	}
	fs := float32(side)
	for i := range out {
		out[i] = Cat{
			X:     float32(i%side) / fs,
			Y:     float32(i/side) / fs,
			State: g.state(),
		}
	}
	return &Snapshot{Cats: out, Generated: time.Now(), Took: time.Since(start)}
}

// Float64 exposes the underlying source for callers that share the
// generator's seed, such as World.
func (g *Generator) Float64() float64 { return g.rng.Float64() }
