// Package feed hands generated snapshots from a background producer to a
// rendering surface.
package feed

import (
	"sync"

	"github.com/iburimskiy/drunkcats/internal/cats"
)

// Slot holds exactly one snapshot: the newest. A Put overwrites whatever
// the consumer has not read yet.
type Slot struct {
	mu      sync.RWMutex
	latest  *cats.Snapshot
	updated chan struct{}
}

// NewSlot returns an empty slot.
func NewSlot() *Slot {
	return &Slot{updated: make(chan struct{}, 1)}
}

// Put replaces the held snapshot and signals Updated without blocking.
func (s *Slot) Put(snap *cats.Snapshot) {
	s.mu.Lock()
	s.latest = snap
	s.mu.Unlock()

	select {
	case s.updated <- struct{}{}:
	default:
	}
}

// Latest returns the held snapshot, or nil before the first Put.
func (s *Slot) Latest() *cats.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Next returns the held snapshot only if it is newer than lastSeq.
func (s *Slot) Next(lastSeq uint64) (*cats.Snapshot, bool) {
	snap := s.Latest()
	if snap == nil || snap.Seq <= lastSeq {
		return nil, false
	}
	return snap, true
}

// Updated is signalled after every Put. Several Puts between two reads
// collapse into one signal.
func (s *Slot) Updated() <-chan struct{} { return s.updated }
