package cats

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Calm, "calm"},
		{Angry, "angry"},
		{Fighting, "fighting"},
		{State(7), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
	if State(3).Valid() {
		t.Error("State(3) reported valid")
	}
}

func TestSnapshotCounts(t *testing.T) {
	s := &Snapshot{Cats: []Cat{
		{State: Calm}, {State: Fighting}, {State: Fighting}, {State: Angry}, {State: State(9)},
	}}
	got := s.Counts()
	want := [StateCount]int{1, 1, 2}
	if got != want {
		t.Errorf("Counts() = %v, want %v", got, want)
	}

	var nilSnap *Snapshot
	if nilSnap.Len() != 0 || nilSnap.Counts() != ([StateCount]int{}) {
		t.Error("nil snapshot should be empty")
	}
}

func TestRandomInUnitSquare(t *testing.T) {
	g := NewGenerator(42)
	s := g.Random(10000)
	if s.Len() != 10000 {
		t.Fatalf("Len() = %d, want 10000", s.Len())
	}
	for i, c := range s.Cats {
		if c.X < 0 || c.X >= 1 || c.Y < 0 || c.Y >= 1 {
			t.Fatalf("cat %d at (%v, %v) outside [0,1)", i, c.X, c.Y)
		}
		if !c.State.Valid() {
			t.Fatalf("cat %d has invalid state %d", i, c.State)
		}
	}
	counts := s.Counts()
	for st, n := range counts {
		// Uniform over three states: expect roughly 3333 each.
		if n < 3000 || n > 3700 {
			t.Errorf("state %v count %d far from uniform", State(st), n)
		}
	}
}

func TestRandomDeterministicSeed(t *testing.T) {
	a := NewGenerator(7).Random(64)
	b := NewGenerator(7).Random(64)
	for i := range a.Cats {
		if a.Cats[i] != b.Cats[i] {
			t.Fatalf("cat %d differs for the same seed: %+v vs %+v", i, a.Cats[i], b.Cats[i])
		}
	}
}

func TestGridLayout(t *testing.T) {
	s := NewGenerator(1).Grid(9)
	want := [][2]float32{
		{0, 0}, {1.0 / 3, 0}, {2.0 / 3, 0},
		{0, 1.0 / 3}, {1.0 / 3, 1.0 / 3}, {2.0 / 3, 1.0 / 3},
		{0, 2.0 / 3}, {1.0 / 3, 2.0 / 3}, {2.0 / 3, 2.0 / 3},
	}
	for i, c := range s.Cats {
		if c.X != want[i][0] || c.Y != want[i][1] {
			t.Errorf("cat %d at (%v, %v), want (%v, %v)", i, c.X, c.Y, want[i][0], want[i][1])
		}
	}
}

func TestGridEmpty(t *testing.T) {
	if n := NewGenerator(1).Grid(0).Len(); n != 0 {
		t.Errorf("Grid(0) has %d cats", n)
	}
	if n := NewGenerator(1).Random(0).Len(); n != 0 {
		t.Errorf("Random(0) has %d cats", n)
	}
}
