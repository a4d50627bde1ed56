package cats

import (
	"context"
	"math"
	"math/rand"
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	const fight, hiss = 3.0, 5.0
	tests := []struct {
		name string
		pts  []Point
		want []State
	}{
		{"single cat", []Point{{0, 0}}, []State{Calm}},
		{"two apart", []Point{{0, 0}, {0, 8}}, []State{Calm, Calm}},
		{"two hiss", []Point{{0, 0}, {0, 4}}, []State{Angry, Angry}},
		{"two fight", []Point{{0, 0}, {0, 2}}, []State{Fighting, Fighting}},
		{"fight on boundary", []Point{{0, 0}, {3, 0}}, []State{Fighting, Fighting}},
		{"hiss on boundary", []Point{{0, 0}, {0, 5}}, []State{Angry, Angry}},
		{"two fight one hiss", []Point{{0, 0}, {0, 2}, {0, 6}}, []State{Fighting, Fighting, Angry}},
		{"all fighting", []Point{{0, 0}, {0, 2}, {0, 6}, {0, 6.1}}, []State{Fighting, Fighting, Fighting, Fighting}},
		{"empty", nil, []State{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(context.Background(), tt.pts, fight, hiss)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify = %v, want %v", got, tt.want)
			}
		})
	}
}

// bruteForce is the quadratic definition Classify must agree with.
func bruteForce(pts []Point, fight, hiss float64) []State {
	out := make([]State, len(pts))
	for i := range pts {
		for j := range pts {
			if i == j {
				continue
			}
			d := math.Hypot(pts[i].X-pts[j].X, pts[i].Y-pts[j].Y)
			if d <= fight {
				out[i] = Fighting
				break
			}
			if d <= hiss {
				out[i] = Angry
			}
		}
	}
	return out
}

func TestClassifyMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{10, 500, 5000} {
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Point{rng.Float64() * 800, rng.Float64() * 600}
		}
		got, err := Classify(context.Background(), pts, 4, 9)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if want := bruteForce(pts, 4, 9); !reflect.DeepEqual(got, want) {
			t.Errorf("n=%d: grid classification disagrees with brute force", n)
		}
	}
}

func TestClassifySparseGrowsCell(t *testing.T) {
	// Huge extent with a tiny radius must not allocate extent/radius² cells.
	pts := []Point{{0, 0}, {1e9, 1e9}, {1e9 + 0.5, 1e9}}
	got, err := Classify(context.Background(), pts, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []State{Calm, Fighting, Fighting}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify = %v, want %v", got, want)
	}
}

func TestClassifyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pts := make([]Point, 10)
	if _, err := Classify(ctx, pts, 1, 2); err == nil {
		t.Error("expected context error")
	}
}

func TestScalePoints(t *testing.T) {
	got := ScalePoints([]Cat{{X: 0.5, Y: 0.25}}, 20, 40, 2)
	if got[0] != (Point{20, 20}) {
		t.Errorf("ScalePoints = %+v, want {20 20}", got[0])
	}
}

func BenchmarkClassify50k(b *testing.B) {
	s := NewGenerator(1).Random(50000)
	pts := ScalePoints(s.Cats, 800, 800, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Classify(context.Background(), pts, 15, 30); err != nil {
			b.Fatal(err)
		}
	}
}
