package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/drunkcats/internal/config"
)

const clickSlop = 4

// handleKeys processes keyboard shortcuts and reports whether to quit.
func (g *game) handleKeys() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.stopFollowing()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) && g.opts.Sound != nil {
		g.openCueDialog()
	}

	if g.opts.World == nil {
		return false
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.setSpeed(g.speed + config.SpeedStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.setSpeed(g.speed - config.SpeedStep)
	}
	// Population changes would invalidate the followed index.
	if !g.camera.Following() {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
			g.resize(g.opts.World.Len() / 2)
		case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
			g.resize(g.opts.World.Len() * 2)
		}
	}
	return false
}

func (g *game) setSpeed(v int) {
	g.speed = clampInt(v, config.MinSpeed, config.MaxSpeed)
	g.opts.World.SetSpeed(g.speed)
	g.log.Debug("speed changed", "slider", g.speed)
}

func (g *game) resize(n int) {
	n = clampInt(n, 1, config.MaxCats)
	g.opts.World.Resize(n)
	g.log.Info("population resized", "cats", n)
}

// handlePointer drives the button, panning, zooming and follow selection.
func (g *game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	if g.button.Update(float64(mx), float64(my), pressed, released, g.width, g.height) {
		g.log.Debug("ok button clicked")
	}

	if pressed && !g.button.Hovered {
		g.dragging = true
		g.handleClick(mx, my, time.Now())
	}
	if released {
		g.dragging = false
	}

	if !g.camera.Following() {
		if g.dragging && (mx != g.lastMX || my != g.lastMY) {
			g.camera.PanBy(float64(mx-g.lastMX), float64(my-g.lastMY), g.width, g.height)
			g.dirty = true
		}
		if _, wy := ebiten.Wheel(); wy != 0 {
			g.camera.ZoomBy(wy)
			g.dirty = true
		}
	}
	g.lastMX, g.lastMY = mx, my
}

// handleClick turns a second click close in time and space into a follow
// request.
func (g *game) handleClick(mx, my int, now time.Time) {
	double := !g.lastClick.IsZero() &&
		now.Sub(g.lastClick) <= config.DoubleClickWindow &&
		nearPoint(g.clickX, g.clickY, mx, my, clickSlop)
	if !double {
		g.lastClick, g.clickX, g.clickY = now, mx, my
		return
	}
	g.lastClick = time.Time{}
	if g.camera.Following() || g.snap == nil {
		return
	}
	x, y := g.camera.Unproject(float64(mx), float64(my), g.width, g.height)
	if g.camera.Follow(g.snap, x, y) {
		g.dragging = false
		g.dirty = true
		g.log.Info("following cat", "index", g.camera.Followed)
	}
}

func (g *game) stopFollowing() {
	if !g.camera.Following() {
		return
	}
	g.camera.Reset()
	g.dirty = true
	g.log.Info("stopped following")
}
