package cats

import (
	"context"
	"math"
	"testing"
	"time"
)

func TestSpeedFactor(t *testing.T) {
	tests := []struct {
		slider int
		want   float64
	}{
		{200, 1},
		{220, 1.5},
		{180, 1 / 1.5},
		{240, 2.25},
	}
	for _, tt := range tests {
		if got := SpeedFactor(tt.slider); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SpeedFactor(%d) = %v, want %v", tt.slider, got, tt.want)
		}
	}
}

func TestWorldStepStaysInUnitSquare(t *testing.T) {
	w := NewWorld(NewGenerator(5), 1000, 1000)
	for i := 0; i < 100; i++ {
		w.Step(time.Second)
	}
	for i, c := range w.Snapshot().Cats {
		if c.X < 0 || c.X >= 1 || c.Y < 0 || c.Y >= 1 {
			t.Fatalf("cat %d escaped to (%v, %v)", i, c.X, c.Y)
		}
	}
}

func TestWorldDeltaBounds(t *testing.T) {
	w := NewWorld(NewGenerator(5), 500, NeutralSpeed)
	limit := float32(1.0 / 40)
	for i := range w.dx {
		if w.dx[i] < -limit || w.dx[i] > limit || w.dy[i] < -limit || w.dy[i] > limit {
			t.Fatalf("delta %d = (%v, %v) outside ±%v", i, w.dx[i], w.dy[i], limit)
		}
	}
}

func TestWorldSnapshotIsCopy(t *testing.T) {
	w := NewWorld(NewGenerator(5), 10, NeutralSpeed)
	s := w.Snapshot()
	before := s.Cats[0]
	w.Step(time.Second)
	if s.Cats[0] != before {
		t.Error("Step mutated an already taken snapshot")
	}
}

func TestWorldReclassify(t *testing.T) {
	w := NewWorld(NewGenerator(5), 2, NeutralSpeed)
	w.cats[0] = Cat{X: 0, Y: 0}
	w.cats[1] = Cat{X: 0, Y: 0.1}
	// 0.1 of a 20px surface is 2px: inside a fight radius of 3.
	if err := w.Reclassify(context.Background(), 20, 20, 1, 3, 5); err != nil {
		t.Fatal(err)
	}
	for i, c := range w.Snapshot().Cats {
		if c.State != Fighting {
			t.Errorf("cat %d = %v, want fighting", i, c.State)
		}
	}
}

func TestWorldResize(t *testing.T) {
	w := NewWorld(NewGenerator(5), 10, NeutralSpeed)
	w.Resize(25)
	if w.Len() != 25 || len(w.dx) != 25 {
		t.Errorf("Resize(25): len=%d deltas=%d", w.Len(), len(w.dx))
	}
}

func TestWrapUnit(t *testing.T) {
	tests := []struct{ in, want float32 }{
		{0.25, 0.25},
		{1.25, 0.25},
		{-0.25, 0.75},
		{1, 0},
	}
	for _, tt := range tests {
		if got := wrapUnit(tt.in); math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("wrapUnit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
