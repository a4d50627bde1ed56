// Package frametime records how long each snapshot took to reach the
// screen and prints it to the console.
package frametime

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"time"
)

// DefaultRingSize is the number of recent frames kept for Stats.
const DefaultRingSize = 512

// Recorder keeps the last N frame intervals in a ring buffer so the HUD
// and the exit summary can report on recent frames.
type Recorder struct {
	out io.Writer

	mu        sync.RWMutex
	ring      []time.Duration
	nextIndex int
	filled    int
	last      time.Time
	frames    uint64
}

// New returns a recorder writing one line per frame to out. A nil out
// disables printing. The first Mark measures from now.
func New(out io.Writer, ringSize int, now time.Time) *Recorder {
	if ringSize <= 0 {
		ringSize = DefaultRingSize
	}
	return &Recorder{
		out:  out,
		ring: make([]time.Duration, ringSize),
		last: now,
	}
}

// Mark records a drawn snapshot and returns the time since the previous
// Mark.
func (r *Recorder) Mark(now time.Time, seq uint64, cats int) time.Duration {
	r.mu.Lock()
	elapsed := now.Sub(r.last)
	r.last = now
	r.ring[r.nextIndex] = elapsed
	r.nextIndex++
	if r.nextIndex >= len(r.ring) {
		r.nextIndex = 0
	}
	if r.filled < len(r.ring) {
		r.filled++
	}
	r.frames++
	r.mu.Unlock()

	if r.out != nil {
		fmt.Fprintf(r.out, "frame=%d cats=%d elapsed=%dms\n", seq, cats, elapsed.Milliseconds())
	}
	return elapsed
}

// Stats summarizes the frames currently held in the ring.
type Stats struct {
	Frames uint64 // total marks, including those evicted from the ring
	Count  int
	Min    time.Duration
	Mean   time.Duration
	P95    time.Duration
	Max    time.Duration
}

func (s Stats) String() string {
	if s.Count == 0 {
		return "no frames"
	}
	return fmt.Sprintf("frames=%d min=%dms mean=%dms p95=%dms max=%dms",
		s.Frames, s.Min.Milliseconds(), s.Mean.Milliseconds(), s.P95.Milliseconds(), s.Max.Milliseconds())
}

// Stats returns a summary of the recent frames.
func (r *Recorder) Stats() Stats {
	r.mu.RLock()
	window := slices.Clone(r.ring[:r.filled])
	frames := r.frames
	r.mu.RUnlock()

	st := Stats{Frames: frames, Count: len(window)}
	if len(window) == 0 {
		return st
	}
	slices.Sort(window)
	var sum time.Duration
	for _, d := range window {
		sum += d
	}
	st.Min = window[0]
	st.Max = window[len(window)-1]
	st.Mean = sum / time.Duration(len(window))
	idx := (len(window)*95+99)/100 - 1
	st.P95 = window[max(idx, 0)]
	return st
}
