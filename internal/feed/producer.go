package feed

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/iburimskiy/drunkcats/internal/logging"
)

// Producer runs a Source in the background and publishes every snapshot
// into a Slot.
type Producer struct {
	Source   Source
	Slot     *Slot
	Interval time.Duration
	// Jitter replaces the fixed Interval with a uniform delay in
	// [0, Interval).
	Jitter bool
	Log    *slog.Logger

	seq uint64
	rng *rand.Rand
}

// Run publishes snapshots until ctx is cancelled. It returns ctx.Err() on
// cancellation and a wrapped error if the source fails.
func (p *Producer) Run(ctx context.Context) error {
	log := logging.OrNop(p.Log)
	if p.rng == nil {
		p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}

		snap, err := p.Source.Produce(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.Wrapf(err, "produce snapshot %d", p.seq+1)
		}
		p.seq++
		snap.Seq = p.seq
		p.Slot.Put(snap)
		log.Debug("snapshot published", "seq", snap.Seq, "cats", snap.Len(), "took", snap.Took)

		timer.Reset(p.delay())
	}
}

func (p *Producer) delay() time.Duration {
	if !p.Jitter || p.Interval <= 0 {
		return p.Interval
	}
	return time.Duration(p.rng.Int63n(int64(p.Interval)))
}
