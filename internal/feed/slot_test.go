package feed

import (
	"testing"

	"github.com/iburimskiy/drunkcats/internal/cats"
)

func TestSlotLatestWins(t *testing.T) {
	s := NewSlot()
	if s.Latest() != nil {
		t.Fatal("new slot is not empty")
	}
	for seq := uint64(1); seq <= 3; seq++ {
		s.Put(&cats.Snapshot{Seq: seq})
	}
	if got := s.Latest().Seq; got != 3 {
		t.Errorf("Latest().Seq = %d, want 3", got)
	}

	select {
	case <-s.Updated():
	default:
		t.Fatal("Updated not signalled")
	}
	select {
	case <-s.Updated():
		t.Fatal("three Puts produced more than one pending signal")
	default:
	}
}

func TestSlotNext(t *testing.T) {
	s := NewSlot()
	if _, ok := s.Next(0); ok {
		t.Fatal("Next on empty slot returned a snapshot")
	}
	s.Put(&cats.Snapshot{Seq: 5})
	tests := []struct {
		last uint64
		ok   bool
	}{
		{0, true},
		{4, true},
		{5, false},
		{6, false},
	}
	for _, tt := range tests {
		if _, ok := s.Next(tt.last); ok != tt.ok {
			t.Errorf("Next(%d) ok = %v, want %v", tt.last, ok, tt.ok)
		}
	}
}
