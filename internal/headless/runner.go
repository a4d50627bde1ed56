package headless

import (
	"context"
	"log/slog"
	"time"

	"github.com/iburimskiy/drunkcats/internal/cats"
	"github.com/iburimskiy/drunkcats/internal/feed"
	"github.com/iburimskiy/drunkcats/internal/frametime"
	"github.com/iburimskiy/drunkcats/internal/logging"
	"github.com/iburimskiy/drunkcats/internal/render"
)

// Runner draws every snapshot that reaches the slot until Frames have been
// drawn or the context ends.
type Runner struct {
	Slot     *feed.Slot
	Canvas   *Canvas
	Renderer *render.Renderer
	Timing   *frametime.Recorder
	// Frames stops the run after that many snapshots; 0 runs until
	// cancelled.
	Frames int
	// Out, when set, receives the last drawn frame as PNG.
	Out string
	Log *slog.Logger
}

// Run consumes snapshots. It returns nil once Frames is reached and
// ctx.Err() when cancelled first.
func (r *Runner) Run(ctx context.Context) error {
	log := logging.OrNop(r.Log)
	var (
		lastSeq uint64
		drawn   int
		runErr  error
	)
loop:
	for {
		select {
		case <-ctx.Done():
			runErr = ctx.Err()
			break loop
		case <-r.Slot.Updated():
		}
		snap, ok := r.Slot.Next(lastSeq)
		if !ok {
			continue
		}
		if err := r.draw(snap); err != nil {
			return err
		}
		lastSeq = snap.Seq
		drawn++
		if r.Frames > 0 && drawn >= r.Frames {
			break loop
		}
	}
	log.Info("headless run finished", "frames", drawn, "stats", r.Timing.Stats().String())

	if r.Out != "" && drawn > 0 {
		if err := r.Canvas.SavePNG(r.Out); err != nil {
			return err
		}
		log.Info("last frame written", "path", r.Out)
	}
	return runErr
}

func (r *Runner) draw(snap *cats.Snapshot) error {
	r.Renderer.Draw(r.Canvas, snap, nil)
	if err := r.Canvas.Err(); err != nil {
		return err
	}
	r.Timing.Mark(time.Now(), snap.Seq, snap.Len())
	return nil
}
