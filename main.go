// Command drunkcats is a rendering benchmark: a producer publishes snapshots
// of colored cats and a window or headless consumer redraws the latest one,
// printing how long each frame took.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/drunkcats/internal/cats"
	"github.com/iburimskiy/drunkcats/internal/config"
	"github.com/iburimskiy/drunkcats/internal/feed"
	"github.com/iburimskiy/drunkcats/internal/frametime"
	"github.com/iburimskiy/drunkcats/internal/game"
	"github.com/iburimskiy/drunkcats/internal/headless"
	"github.com/iburimskiy/drunkcats/internal/logging"
	"github.com/iburimskiy/drunkcats/internal/render"
	"github.com/iburimskiy/drunkcats/internal/sound"
)

func main() {
	flag.Parse()

	cfg, err := buildConfig()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "drunkcats:", err)
		flag.Usage()
		os.Exit(2)
	}

	log := logging.New(os.Stderr, cfg.Debug)
	slog.SetDefault(log)
	gg.SetLogger(log)

	if err := run(cfg, log); err != nil {
		log.Error("drunkcats failed", "err", err)
		if cfg.Backend == config.BackendWindow {
			game.ShowError(err)
		}
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	if cfg.CPUProfile != "" {
		stop, err := startCPUProfile(cfg.CPUProfile)
		if err != nil {
			return err
		}
		defer stop()
	}

	palette, ok := render.PaletteByName(cfg.Palette)
	if !ok {
		return errors.Errorf("unknown palette %q", cfg.Palette)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := cats.NewGenerator(cfg.Seed)
	var (
		source feed.Source
		world  *feed.WorldSource
	)
	switch cfg.Source {
	case config.SourceRandom:
		source = &feed.RandomSource{Gen: gen, N: cfg.Cats}
	case config.SourceGrid:
		source = &feed.GridSource{Gen: gen, N: cfg.Cats}
	case config.SourceWorld:
		world = feed.NewWorldSource(
			cats.NewWorld(gen, cfg.Cats, cfg.Speed),
			feed.Surface{Width: cfg.Width, Height: cfg.Height, Scale: 1},
			cfg.FightRadius, cfg.HissRadius,
			feed.WorldTimers{Retarget: config.RetargetInterval, Reclassify: config.StateInterval},
		)
		source = world
	}

	slot := feed.NewSlot()
	producer := &feed.Producer{
		Source:   source,
		Slot:     slot,
		Interval: cfg.Interval,
		Jitter:   cfg.Jitter,
		Log:      log.With("component", "producer"),
	}
	renderer := &render.Renderer{Radius: cfg.Radius, Palette: palette}
	timing := frametime.New(os.Stdout, config.FrameRingSize, time.Now())

	var player *sound.Player
	if cfg.Sound && cfg.Backend == config.BackendWindow {
		player = sound.NewPlayer(cfg.Volume, log.With("component", "sound"))
		if err := player.Init(); err != nil {
			log.Warn("sound disabled", "err", err)
			player = nil
		} else {
			defer player.Close()
			if cfg.SoundFile != "" {
				if err := player.Load(cfg.SoundFile); err != nil {
					log.Warn("using synthesized hiss", "err", err)
				}
			}
		}
	}

	log.Info("starting",
		"profile", cfg.Name, "backend", cfg.Backend, "source", cfg.Source,
		"cats", cfg.Cats, "interval", cfg.Interval, "jitter", cfg.Jitter)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return producer.Run(gctx) })

	var consumeErr error
	switch cfg.Backend {
	case config.BackendHeadless:
		canvas := headless.NewCanvas(cfg.Width, cfg.Height)
		defer canvas.Close()
		r := &headless.Runner{
			Slot:     slot,
			Canvas:   canvas,
			Renderer: renderer,
			Timing:   timing,
			Frames:   cfg.Frames,
			Out:      cfg.Out,
			Log:      log.With("component", "headless"),
		}
		consumeErr = r.Run(gctx)
	default:
		// ebiten owns the main goroutine until the window closes.
		consumeErr = game.Run(gctx, game.Options{
			Config:   cfg,
			Slot:     slot,
			Renderer: renderer,
			Timing:   timing,
			World:    world,
			Sound:    player,
			Log:      log.With("component", "window"),
		})
	}
	cancel()
	prodErr := g.Wait()

	fmt.Fprintln(os.Stdout, "summary:", timing.Stats())
	if consumeErr != nil && !errors.Is(consumeErr, context.Canceled) {
		return consumeErr
	}
	if prodErr != nil && !errors.Is(prodErr, context.Canceled) {
		return prodErr
	}
	return nil
}
