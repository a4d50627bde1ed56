// Package cats generates the point batches drawn by the benchmark and
// classifies their moods.
package cats

import "time"

// State is the mood tag carried by every cat.
type State uint8

const (
	Calm State = iota
	Angry
	Fighting

	// StateCount is the number of valid states.
	StateCount = 3
)

func (s State) String() string {
	switch s {
	case Calm:
		return "calm"
	case Angry:
		return "angry"
	case Fighting:
		return "fighting"
	}
	return "invalid"
}

// Valid reports whether s is one of the three moods.
func (s State) Valid() bool { return s < StateCount }

// Cat is one point in the unit square.
type Cat struct {
	X, Y  float32
	State State
}

// Snapshot is one generated batch. It is never mutated after it has been
// handed to a consumer.
type Snapshot struct {
	Seq       uint64
	Cats      []Cat
	Generated time.Time
	Took      time.Duration
}

// Len returns the number of cats, tolerating a nil snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Cats)
}

// Counts returns how many cats are in each state.
func (s *Snapshot) Counts() [StateCount]int {
	var out [StateCount]int
	if s == nil {
		return out
	}
	for _, c := range s.Cats {
		if c.State.Valid() {
			out[c.State]++
		}
	}
	return out
}
