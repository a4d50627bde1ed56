package config

import (
	"strings"
	"testing"

	"github.com/iburimskiy/drunkcats/internal/cats"
)

func TestDefaultProfiles(t *testing.T) {
	tests := []struct {
		name   string
		cats   int
		radius float64
		jitter bool
		source string
	}{
		{"compose", 50_000, 8, true, SourceRandom},
		{"fx", 500_000, 3, false, SourceGrid},
		{"world", 500, 5, false, SourceWorld},
	}
	for _, tt := range tests {
		c, err := Default(tt.name)
		if err != nil {
			t.Fatalf("Default(%q): %v", tt.name, err)
		}
		if c.Cats != tt.cats || c.Radius != tt.radius || c.Jitter != tt.jitter || c.Source != tt.source {
			t.Errorf("%s: got %+v", tt.name, c.Profile)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("%s: default config invalid: %v", tt.name, err)
		}
	}
	if _, err := Default("qt"); err == nil {
		t.Error("Default accepted an unknown profile")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"backend", func(c *Config) { c.Backend = "tty" }, "unknown backend"},
		{"source", func(c *Config) { c.Source = "file" }, "unknown source"},
		{"negative cats", func(c *Config) { c.Cats = -1 }, "cats must be"},
		{"too many cats", func(c *Config) { c.Cats = MaxCats + 1 }, "cats must be"},
		{"radius", func(c *Config) { c.Radius = 0 }, "radius must be positive"},
		{"interval", func(c *Config) { c.Interval = 0 }, "interval must be positive"},
		{"surface", func(c *Config) { c.Height = 0 }, "surface must be positive"},
		{"fight not below hiss", func(c *Config) { c.FightRadius, c.HissRadius = 11, 10 }, "must be smaller than hiss"},
		{"fight equals hiss", func(c *Config) { c.FightRadius, c.HissRadius = 10, 10 }, "must be smaller than hiss"},
		{"negative fight", func(c *Config) { c.FightRadius = -1 }, "must not be negative"},
		{"speed", func(c *Config) { c.Speed = 1001 }, "speed must be"},
		{"frames", func(c *Config) { c.Frames = -3 }, "frames must not be negative"},
		{"zero cats ok", func(c *Config) { c.Cats = 0 }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Default("compose")
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(&c)
			err = c.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestDefaultSpeedIsNeutral(t *testing.T) {
	if DefaultSpeed < MinSpeed || DefaultSpeed > MaxSpeed {
		t.Fatalf("DefaultSpeed %d outside [%d, %d]", DefaultSpeed, MinSpeed, MaxSpeed)
	}
	if f := cats.SpeedFactor(DefaultSpeed); f != 1 {
		t.Errorf("SpeedFactor(DefaultSpeed) = %v, want 1", f)
	}
	if RetargetInterval <= 0 || StateInterval <= 0 {
		t.Errorf("world timers must be positive: %v, %v", RetargetInterval, StateInterval)
	}
}
