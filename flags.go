package main

import (
	"flag"

	"github.com/iburimskiy/drunkcats/internal/config"
)

// Command-line flags. Profile-backed flags only take effect when set
// explicitly; everything else falls back to the profile.
var (
	// profileFlag picks the preset that supplies population and timing.
	profileFlag = flag.String("profile", "compose", "preset: compose, fx or world")

	// backendFlag selects the ebiten window or the offscreen gg canvas.
	backendFlag = flag.String("backend", config.BackendWindow, "window or headless")

	catsFlag     = flag.Int("cats", 0, "number of cats per snapshot (default from profile)")
	radiusFlag   = flag.Float64("radius", 0, "circle radius in pixels (default from profile)")
	intervalFlag = flag.Duration("interval", 0, "snapshot interval (default from profile)")
	jitterFlag   = flag.Bool("jitter", false, "randomize the delay between snapshots in [0, interval)")
	sourceFlag   = flag.String("source", "", "random, grid or world (default from profile)")
	paletteFlag  = flag.String("palette", "", "compose or fx (default from profile)")

	widthFlag  = flag.Int("width", config.WindowWidth, "surface width in pixels")
	heightFlag = flag.Int("height", config.WindowHeight, "surface height in pixels")

	// fightRadiusFlag and hissRadiusFlag are the mood thresholds in pixels.
	fightRadiusFlag = flag.Float64("fight-radius", config.FightRadius, "distance at which cats fight")
	hissRadiusFlag  = flag.Float64("hiss-radius", config.HissRadius, "distance at which cats hiss")

	// speedFlag is the world profile's speed slider.
	speedFlag = flag.Int("speed", config.DefaultSpeed, "world speed slider, 1-1000")
	seedFlag  = flag.Int64("seed", 0, "random seed, 0 uses the clock")

	framesFlag = flag.Int("frames", 0, "headless: stop after this many frames, 0 runs until interrupted")
	outFlag    = flag.String("out", "", "headless: write the last frame to this PNG")

	// soundFlag enables the hiss cue played when fights break out.
	soundFlag     = flag.Bool("sound", false, "play a hiss when the number of fights grows")
	soundFileFlag = flag.String("sound-file", "", "wav, mp3 or flac file to use as the hiss")
	volumeFlag    = flag.Float64("volume", 0, "hiss volume, base-2 steps (-1 halves)")

	debugFlag      = flag.Bool("debug", false, "log at debug level")
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)

// buildConfig resolves the profile and applies the flags the user set.
func buildConfig() (config.Config, error) {
	cfg, err := config.Default(*profileFlag)
	if err != nil {
		return cfg, err
	}
	cfg.Backend = *backendFlag
	cfg.Width, cfg.Height = *widthFlag, *heightFlag
	cfg.FightRadius, cfg.HissRadius = *fightRadiusFlag, *hissRadiusFlag
	cfg.Speed = *speedFlag
	cfg.Seed = *seedFlag
	cfg.Frames = *framesFlag
	cfg.Out = *outFlag
	cfg.Sound = *soundFlag || *soundFileFlag != ""
	cfg.SoundFile = *soundFileFlag
	cfg.Volume = *volumeFlag
	cfg.Debug = *debugFlag
	cfg.CPUProfile = *cpuProfileFlag

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cats":
			cfg.Cats = *catsFlag
		case "radius":
			cfg.Radius = *radiusFlag
		case "interval":
			cfg.Interval = *intervalFlag
		case "jitter":
			cfg.Jitter = *jitterFlag
		case "source":
			cfg.Source = *sourceFlag
		case "palette":
			cfg.Palette = *paletteFlag
		}
	})
	return cfg, nil
}
