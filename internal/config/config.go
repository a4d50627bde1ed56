package config

import (
	"time"

	"github.com/pkg/errors"

	"github.com/iburimskiy/drunkcats/internal/cats"
)

const (
	WindowTitle   = "drunkcats"
	WindowWidth   = 800
	WindowHeight  = 800
	MaxCats       = 2_000_000
	FrameRingSize = 512

	// Mood radii in surface pixels.
	FightRadius = 15
	HissRadius  = 30

	// Speed slider.
	MinSpeed     = 1
	MaxSpeed     = 1000
	DefaultSpeed = cats.NeutralSpeed
	SpeedStep    = 20

	// World timers.
	RetargetInterval = 500 * time.Millisecond
	StateInterval    = 500 * time.Millisecond

	// Double-click window for follow mode.
	DoubleClickWindow = 300 * time.Millisecond
)

// Source kinds.
const (
	SourceRandom = "random"
	SourceGrid   = "grid"
	SourceWorld  = "world"
)

// Backends.
const (
	BackendWindow   = "window"
	BackendHeadless = "headless"
)

// Profile is a preset bundle of benchmark defaults.
type Profile struct {
	Name     string
	Cats     int
	Radius   float64
	Interval time.Duration
	Jitter   bool
	Source   string
	Palette  string
}

var profiles = map[string]Profile{
	"compose": {Name: "compose", Cats: 50_000, Radius: 8, Interval: 500 * time.Millisecond, Jitter: true, Source: SourceRandom, Palette: "compose"},
	"fx":      {Name: "fx", Cats: 500_000, Radius: 3, Interval: 500 * time.Millisecond, Source: SourceGrid, Palette: "fx"},
	"world":   {Name: "world", Cats: 500, Radius: 5, Interval: 16 * time.Millisecond, Source: SourceWorld, Palette: "compose"},
}

// LookupProfile returns the named preset.
func LookupProfile(name string) (Profile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// Config is the resolved run configuration.
type Config struct {
	Profile
	Backend     string
	Width       int
	Height      int
	FightRadius float64
	HissRadius  float64
	Speed       int
	Seed        int64
	Frames      int
	Out         string
	Sound       bool
	SoundFile   string
	Volume      float64
	Debug       bool
	CPUProfile  string
}

// Default returns the configuration of the named profile with every other
// field at its default.
func Default(profile string) (Config, error) {
	p, ok := LookupProfile(profile)
	if !ok {
		return Config{}, errors.Errorf("unknown profile %q", profile)
	}
	return Config{
		Profile:     p,
		Backend:     BackendWindow,
		Width:       WindowWidth,
		Height:      WindowHeight,
		FightRadius: FightRadius,
		HissRadius:  HissRadius,
		Speed:       DefaultSpeed,
	}, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Backend != BackendWindow && c.Backend != BackendHeadless:
		return errors.Errorf("unknown backend %q", c.Backend)
	case c.Source != SourceRandom && c.Source != SourceGrid && c.Source != SourceWorld:
		return errors.Errorf("unknown source %q", c.Source)
	case c.Cats < 0 || c.Cats > MaxCats:
		return errors.Errorf("cats must be in [0, %d], got %d", MaxCats, c.Cats)
	case c.Radius <= 0:
		return errors.Errorf("radius must be positive, got %v", c.Radius)
	case c.Interval <= 0:
		return errors.Errorf("interval must be positive, got %v", c.Interval)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("surface must be positive, got %dx%d", c.Width, c.Height)
	case c.FightRadius < 0:
		return errors.Errorf("fight radius must not be negative, got %v", c.FightRadius)
	case c.FightRadius >= c.HissRadius:
		return errors.Errorf("fight radius %v must be smaller than hiss radius %v", c.FightRadius, c.HissRadius)
	case c.Speed < MinSpeed || c.Speed > MaxSpeed:
		return errors.Errorf("speed must be in [%d, %d], got %d", MinSpeed, MaxSpeed, c.Speed)
	case c.Frames < 0:
		return errors.Errorf("frames must not be negative, got %d", c.Frames)
	}
	return nil
}
