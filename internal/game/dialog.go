package game

import (
	"github.com/faiface/beep"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/drunkcats/internal/config"
	"github.com/iburimskiy/drunkcats/internal/sound"
)

type dialogResult struct {
	path string
	cue  *beep.Buffer
	err  error
}

// openCueDialog asks for a hiss sound file and decodes it without blocking
// the game loop. Only one dialog is open at a time.
func (g *game) openCueDialog() {
	if g.dialog == nil {
		return
	}
	ch := g.dialog
	g.dialog = nil
	go func() {
		path, err := zenity.SelectFile(
			zenity.Title("Choose hiss sound"),
			zenity.FileFilters{{
				Name:     "Audio",
				Patterns: []string{"*.wav", "*.mp3", "*.flac"},
			}},
		)
		if err != nil {
			ch <- dialogResult{err: err}
			return
		}
		cue, err := sound.Decode(path)
		ch <- dialogResult{path: path, cue: cue, err: err}
	}()
	g.pending = ch
}

// collectDialog installs the decoded cue once the dialog has closed.
func (g *game) collectDialog() {
	if g.pending == nil {
		return
	}
	var res dialogResult
	select {
	case res = <-g.pending:
	default:
		return
	}
	g.dialog, g.pending = g.pending, nil

	switch {
	case errors.Is(res.err, zenity.ErrCanceled):
		return
	case res.err != nil:
		g.lastErr = errors.Wrap(res.err, "choose hiss cue")
		g.log.Warn("hiss cue not loaded", "err", g.lastErr)
	default:
		g.opts.Sound.SetCue(res.cue)
		g.lastErr = nil
		g.log.Info("hiss cue loaded", "path", res.path, "samples", res.cue.Len())
	}
}

// ShowError reports a fatal error in a native dialog. Failures to show the
// dialog are ignored; the caller logs the error anyway.
func ShowError(err error) {
	_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
}
