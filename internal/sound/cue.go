// Package sound plays a short hiss cue when fights break out.
package sound

import (
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/iburimskiy/drunkcats/internal/cats"
	"github.com/iburimskiy/drunkcats/internal/logging"
)

const (
	// SampleRate is the speaker rate; file cues are resampled to it.
	SampleRate beep.SampleRate = 44100

	burstLength     = 180 * time.Millisecond
	defaultCooldown = time.Second
	resampleQuality = 4
)

var format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Player owns the speaker and the buffered cue.
type Player struct {
	// Volume in base-2 steps: 0 is unchanged, -1 halves the amplitude and
	// +1 doubles it.
	Volume   float64
	Cooldown time.Duration

	mu          sync.Mutex
	cue         *beep.Buffer
	last        time.Time
	initialized bool
	log         *slog.Logger
}

// NewPlayer returns a player loaded with the synthesized noise burst. The
// speaker is not opened until Init.
func NewPlayer(volume float64, log *slog.Logger) *Player {
	return &Player{
		Volume:   volume,
		Cooldown: defaultCooldown,
		cue:      synthCue(time.Now().UnixNano()),
		log:      logging.OrNop(log),
	}
}

// Init opens the audio device with a 50 ms buffer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return errors.Wrap(err, "init speaker")
	}
	p.initialized = true
	return nil
}

// CueLen returns the cue length in samples.
func (p *Player) CueLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cue.Len()
}

// Load replaces the cue with the decoded contents of a .wav, .mp3 or
// .flac file.
func (p *Player) Load(path string) error {
	buf, err := Decode(path)
	if err != nil {
		return err
	}
	p.SetCue(buf)
	p.log.Info("hiss cue loaded", "path", path, "samples", buf.Len())
	return nil
}

// SetCue replaces the cue with an already decoded buffer.
func (p *Player) SetCue(buf *beep.Buffer) {
	p.mu.Lock()
	p.cue = buf
	p.mu.Unlock()
}

// Decode reads a .wav, .mp3 or .flac file into a buffer at SampleRate.
// The extension is matched case-insensitively.
func Decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open cue")
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		ff       beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, ff, err = wav.Decode(f)
	case ".mp3":
		streamer, ff, err = mp3.Decode(f)
	case ".flac":
		streamer, ff, err = flac.Decode(f)
	default:
		return nil, errors.Errorf("unsupported cue type %q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if ff.SampleRate != SampleRate {
		src = beep.Resample(resampleQuality, ff.SampleRate, SampleRate, streamer)
	}
	buf := beep.NewBuffer(format)
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return buf, nil
}

// FightsGrew reports whether cur has more fighting cats than prev. The
// first snapshot, with no predecessor, never counts as growth.
func FightsGrew(prev, cur *cats.Snapshot) bool {
	if prev == nil || cur == nil {
		return false
	}
	return cur.Counts()[cats.Fighting] > prev.Counts()[cats.Fighting]
}

// ready applies the cooldown and reports whether a cue may start at now.
func (p *Player) ready(now time.Time) bool {
	if !p.last.IsZero() && now.Sub(p.last) < p.Cooldown {
		return false
	}
	p.last = now
	return true
}

// React plays the cue when fights grew from prev to cur and the cooldown
// allows it. It reports whether the cue was due; the cue is only audible
// once Init has succeeded.
func (p *Player) React(prev, cur *cats.Snapshot, now time.Time) bool {
	if !FightsGrew(prev, cur) {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready(now) {
		return false
	}
	if p.initialized {
		p.play()
	}
	return true
}

func (p *Player) play() {
	cue := p.cue.Streamer(0, p.cue.Len())
	speaker.Play(&effects.Volume{Streamer: cue, Base: 2, Volume: p.Volume})
}

// Close stops anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		speaker.Clear()
	}
}

// synthCue renders a white-noise burst with a linear fade-out.
func synthCue(seed int64) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(noiseBurst(SampleRate.N(burstLength), rand.New(rand.NewSource(seed))))
	return buf
}

func noiseBurst(total int, rng *rand.Rand) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := 1 - float64(pos)/float64(total)
			v := (rng.Float64()*2 - 1) * env * 0.6
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}
