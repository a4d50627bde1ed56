package feed

import (
	"context"
	"sync"
	"time"

	"github.com/iburimskiy/drunkcats/internal/cats"
)

// Source builds the next snapshot.
type Source interface {
	Produce(ctx context.Context) (*cats.Snapshot, error)
}

// RandomSource emits n uniformly scattered cats per snapshot.
type RandomSource struct {
	Gen *cats.Generator
	N   int
}

func (s *RandomSource) Produce(context.Context) (*cats.Snapshot, error) {
	return s.Gen.Random(s.N), nil
}

// GridSource emits n cats on a fixed lattice with fresh states.
type GridSource struct {
	Gen *cats.Generator
	N   int
}

func (s *GridSource) Produce(context.Context) (*cats.Snapshot, error) {
	return s.Gen.Grid(s.N), nil
}

// Surface describes the pixel space moods are computed in.
type Surface struct {
	Width, Height int
	Scale         float64
}

// WorldSource drives a cats.World: positions advance on every Produce,
// deltas are redrawn every RetargetEvery and moods recomputed every
// ReclassifyEvery. It is safe to adjust from another goroutine.
type WorldSource struct {
	FightRadius     float64
	HissRadius      float64
	RetargetEvery   time.Duration
	ReclassifyEvery time.Duration

	mu             sync.Mutex
	world          *cats.World
	surface        Surface
	lastStep       time.Time
	lastRetarget   time.Time
	lastReclassify time.Time
	now            func() time.Time
}

// WorldTimers sets how often a WorldSource redraws deltas and moods.
type WorldTimers struct {
	Retarget   time.Duration
	Reclassify time.Duration
}

// NewWorldSource wraps w. Moods are classified on the first Produce.
func NewWorldSource(w *cats.World, surface Surface, fight, hiss float64, timers WorldTimers) *WorldSource {
	return &WorldSource{
		FightRadius:     fight,
		HissRadius:      hiss,
		RetargetEvery:   timers.Retarget,
		ReclassifyEvery: timers.Reclassify,
		world:           w,
		surface:         surface,
		now:             time.Now,
	}
}

func (s *WorldSource) Produce(ctx context.Context) (*cats.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.now()
	if !s.lastStep.IsZero() {
		s.world.Step(start.Sub(s.lastStep))
	}
	s.lastStep = start

	if start.Sub(s.lastRetarget) >= s.RetargetEvery {
		s.world.Retarget()
		s.lastRetarget = start
	}
	if start.Sub(s.lastReclassify) >= s.ReclassifyEvery {
		sf := s.surface
		if err := s.world.Reclassify(ctx, sf.Width, sf.Height, sf.Scale, s.FightRadius, s.HissRadius); err != nil {
			return nil, err
		}
		s.lastReclassify = start
	}
	snap := s.world.Snapshot()
	snap.Took = s.now().Sub(start)
	return snap, nil
}

// SetSpeed forwards a speed slider value to the world.
func (s *WorldSource) SetSpeed(slider int) {
	s.mu.Lock()
	s.world.SetSpeed(slider)
	s.mu.Unlock()
}

// Resize regenerates the population and forces a reclassification.
func (s *WorldSource) Resize(n int) {
	s.mu.Lock()
	s.world.Resize(n)
	s.lastReclassify = time.Time{}
	s.mu.Unlock()
}

// Len returns the current population size.
func (s *WorldSource) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Len()
}

// SetSurface updates the pixel space used for the next classification.
func (s *WorldSource) SetSurface(sf Surface) {
	s.mu.Lock()
	s.surface = sf
	s.mu.Unlock()
}
