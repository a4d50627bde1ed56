package frametime

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestMarkPrintsElapsed(t *testing.T) {
	var buf bytes.Buffer
	t0 := time.Unix(0, 0)
	r := New(&buf, 4, t0)

	if got := r.Mark(t0.Add(40*time.Millisecond), 1, 50000); got != 40*time.Millisecond {
		t.Errorf("first Mark = %v, want 40ms", got)
	}
	if got := r.Mark(t0.Add(65*time.Millisecond), 2, 50000); got != 25*time.Millisecond {
		t.Errorf("second Mark = %v, want 25ms", got)
	}
	want := "frame=1 cats=50000 elapsed=40ms\nframe=2 cats=50000 elapsed=25ms\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestStatsOverRing(t *testing.T) {
	t0 := time.Unix(0, 0)
	r := New(nil, 4, t0)
	if st := r.Stats(); st.Count != 0 || st.String() != "no frames" {
		t.Fatalf("empty stats = %+v", st)
	}

	now := t0
	// Six frames into a ring of four: the first two (1ms, 2ms) are evicted.
	for _, ms := range []int{1, 2, 10, 20, 30, 40} {
		now = now.Add(time.Duration(ms) * time.Millisecond)
		r.Mark(now, 0, 0)
	}
	st := r.Stats()
	if st.Frames != 6 || st.Count != 4 {
		t.Fatalf("Frames=%d Count=%d, want 6 and 4", st.Frames, st.Count)
	}
	if st.Min != 10*time.Millisecond || st.Max != 40*time.Millisecond {
		t.Errorf("Min=%v Max=%v", st.Min, st.Max)
	}
	if st.Mean != 25*time.Millisecond {
		t.Errorf("Mean = %v, want 25ms", st.Mean)
	}
	if st.P95 != 40*time.Millisecond {
		t.Errorf("P95 = %v, want 40ms", st.P95)
	}
	if !strings.Contains(st.String(), "p95=40ms") {
		t.Errorf("String() = %q", st.String())
	}
}

func TestNewDefaultsRingSize(t *testing.T) {
	r := New(nil, 0, time.Now())
	if len(r.ring) != DefaultRingSize {
		t.Errorf("ring size = %d, want %d", len(r.ring), DefaultRingSize)
	}
}
