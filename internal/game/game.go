// Package game is the windowed variant: an ebiten loop that redraws the
// latest snapshot under an inert "ok" button.
package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/drunkcats/internal/cats"
	"github.com/iburimskiy/drunkcats/internal/config"
	"github.com/iburimskiy/drunkcats/internal/feed"
	"github.com/iburimskiy/drunkcats/internal/frametime"
	"github.com/iburimskiy/drunkcats/internal/logging"
	"github.com/iburimskiy/drunkcats/internal/render"
	"github.com/iburimskiy/drunkcats/internal/sound"
)

// Options wires the game to the rest of the benchmark.
type Options struct {
	Config   config.Config
	Slot     *feed.Slot
	Renderer *render.Renderer
	Timing   *frametime.Recorder
	// World is set for the world profile only; it enables speed and
	// population controls.
	World *feed.WorldSource
	// Sound is nil when the hiss cue is disabled.
	Sound *sound.Player
	Log   *slog.Logger
}

type game struct {
	opts Options
	log  *slog.Logger
	done <-chan struct{}

	// surface
	width, height int
	canvas        *ebiten.Image
	dirty         bool

	// feed
	snap    *cats.Snapshot
	lastSeq uint64

	// view
	camera render.Camera
	button render.Button

	// input
	dragging       bool
	lastMX, lastMY int
	lastClick      time.Time
	clickX, clickY int
	speed          int
	showHUD        bool

	// dialog is nil while a file dialog is open; pending then holds it.
	dialog  chan dialogResult
	pending chan dialogResult
	started time.Time
	lastErr error
}

func newGame(ctx context.Context, opts Options) *game {
	g := &game{
		opts:    opts,
		log:     logging.OrNop(opts.Log),
		done:    ctx.Done(),
		camera:  render.NewCamera(),
		button:  render.NewButton(),
		speed:   opts.Config.Speed,
		showHUD: true,
		dialog:  make(chan dialogResult, 1),
		started: time.Now(),
	}
	// Only the world keeps cat identities across snapshots.
	g.camera.NoFollow = opts.World == nil
	return g
}

// Run opens the window and blocks until it is closed, the user quits, or
// ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	g := newGame(ctx, opts)
	ebiten.SetWindowSize(opts.Config.Width, opts.Config.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run window")
	}
	return nil
}

func (g *game) Update() error {
	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}
	if g.width == 0 || g.height == 0 {
		return nil
	}

	if quit := g.handleKeys(); quit {
		return ebiten.Termination
	}
	g.handlePointer()
	g.collectDialog()

	fresh := false
	if snap, ok := g.opts.Slot.Next(g.lastSeq); ok {
		g.accept(snap)
		fresh = true
	}
	if g.camera.Following() && g.snap != nil {
		g.camera.Track(g.snap)
		g.dirty = true
	}
	if g.dirty {
		g.redraw()
	}
	if fresh {
		g.opts.Timing.Mark(time.Now(), g.snap.Seq, g.snap.Len())
	}
	return nil
}

// accept makes snap current and fires the hiss cue when fights grew.
func (g *game) accept(snap *cats.Snapshot) {
	if g.opts.Sound != nil && g.opts.Sound.React(g.snap, snap, time.Now()) {
		g.log.Debug("hiss cue", "seq", snap.Seq)
	}
	g.snap = snap
	g.lastSeq = snap.Seq
	g.dirty = true
}

func (g *game) redraw() {
	if g.canvas != nil {
		if b := g.canvas.Bounds(); b.Dx() != g.width || b.Dy() != g.height {
			g.canvas.Deallocate()
			g.canvas = nil
		}
	}
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(g.width, g.height)
	}
	g.opts.Renderer.Draw(imageCanvas{g.canvas}, g.snap, &g.camera)
	g.dirty = false
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.canvas != nil {
		screen.DrawImage(g.canvas, nil)
	}
	g.drawButton(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

// Layout lets the canvas follow the window size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.dirty = true
		if g.opts.World != nil {
			g.opts.World.SetSurface(feed.Surface{
				Width:  outsideWidth,
				Height: outsideHeight,
				Scale:  ebiten.Monitor().DeviceScaleFactor(),
			})
		}
	}
	return outsideWidth, outsideHeight
}
