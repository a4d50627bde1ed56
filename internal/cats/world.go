package cats

import (
	"context"
	"math"
	"time"

	"github.com/pkg/errors"
)

// NeutralSpeed is the slider value at which deltas are unscaled.
const NeutralSpeed = 200

// SpeedFactor converts a slider value into a delta multiplier:
// 1.5^((slider-200)/20).
func SpeedFactor(slider int) float64 {
	return math.Pow(1.5, float64(slider-NeutralSpeed)/20)
}

// World is a persistent population that drifts and gets reclassified,
// as opposed to the throwaway batches of Generator.Random.
type World struct {
	gen    *Generator
	cats   []Cat
	dx, dy []float32
	speed  float64
}

// NewWorld places n cats uniformly and draws their first deltas. Moods
// start Calm until the first Reclassify.
func NewWorld(gen *Generator, n int, slider int) *World {
	w := &World{gen: gen, speed: SpeedFactor(slider)}
	w.Resize(n)
	return w
}

// Len returns the population size.
func (w *World) Len() int { return len(w.cats) }

// Resize regenerates the whole population with n cats.
func (w *World) Resize(n int) {
	w.cats = make([]Cat, n)
	w.dx = make([]float32, n)
	w.dy = make([]float32, n)
	for i := range w.cats {
		w.cats[i] = Cat{X: float32(w.gen.Float64()), Y: float32(w.gen.Float64())}
	}
	w.Retarget()
}

// SetSpeed applies a slider value; it takes effect at the next Retarget.
func (w *World) SetSpeed(slider int) {
	w.speed = SpeedFactor(slider)
}

// Retarget redraws every delta uniformly in [-speed/40, speed/40] per
// second.
func (w *World) Retarget() {
	span := w.speed / 40
	for i := range w.dx {
		w.dx[i] = float32((w.gen.Float64()*2 - 1) * span)
		w.dy[i] = float32((w.gen.Float64()*2 - 1) * span)
	}
}

// Step advances every cat by its delta over dt, wrapping into [0,1).
func (w *World) Step(dt time.Duration) {
	s := float32(dt.Seconds())
	for i := range w.cats {
		c := &w.cats[i]
		c.X = wrapUnit(c.X + w.dx[i]*s)
		c.Y = wrapUnit(c.Y + w.dy[i]*s)
	}
}

func wrapUnit(v float32) float32 {
	v -= float32(math.Floor(float64(v)))
	if v >= 1 {
		v = 0
	}
	return v
}

// Reclassify recomputes moods as they would appear on a width×height
// surface.
func (w *World) Reclassify(ctx context.Context, width, height int, scale, fight, hiss float64) error {
	states, err := Classify(ctx, ScalePoints(w.cats, width, height, scale), fight, hiss)
	if err != nil {
		return errors.Wrap(err, "classify moods")
	}
	for i, s := range states {
		w.cats[i].State = s
	}
	return nil
}

// Snapshot copies the population into a new snapshot. Seq is left for
// the producer to assign.
func (w *World) Snapshot() *Snapshot {
	out := make([]Cat, len(w.cats))
	copy(out, w.cats)
	return &Snapshot{Cats: out, Generated: time.Now()}
}
