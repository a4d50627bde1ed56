package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/drunkcats/internal/cats"
)

var (
	background   = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hudBackdrop  = color.RGBA{R: 0x10, G: 0x12, B: 0x18, A: 0xc0}
	buttonBorder = color.RGBA{R: 150, G: 170, B: 200, A: 255}
)

// imageCanvas adapts an ebiten image to render.Canvas.
type imageCanvas struct{ img *ebiten.Image }

func (c imageCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c imageCanvas) Clear() { c.img.Fill(background) }

func (c imageCanvas) FillCircle(cx, cy, r float64, clr color.RGBA) {
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r), clr, false)
}

func (c imageCanvas) StrokeCircle(cx, cy, r, width float64, clr color.RGBA) {
	vector.StrokeCircle(c.img, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

func (g *game) drawButton(screen *ebiten.Image) {
	var bg color.Color
	switch {
	case g.button.Pressed:
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255}
	case g.button.Hovered:
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	default:
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	x, y, w, h := g.button.Rect(g.width, g.height)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, buttonBorder, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, g.button.Label)
	tx := int(x) + (int(w)-bounds.Dx())/2
	ty := int(y) + (int(h)+bounds.Dy())/2 - bounds.Max.Y
	text.Draw(screen, g.button.Label, face, tx, ty, color.White)
}

func (g *game) drawHUD(screen *ebiten.Image) {
	lines := g.hudLines()
	height := float32(len(lines)*16 + 8)
	vector.DrawFilledRect(screen, 4, 4, 420, height, hudBackdrop, false)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 10, 8)
}

func (g *game) hudLines() []string {
	cfg := g.opts.Config
	counts := g.snap.Counts()
	lines := []string{
		fmt.Sprintf("%s/%s  up %s  fps %.0f tps %.0f", cfg.Name, cfg.Source,
			formatDuration(time.Since(g.started)), ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("snapshot %d  cats %d  calm %d angry %d fighting %d",
			g.lastSeq, g.snap.Len(), counts[cats.Calm], counts[cats.Angry], counts[cats.Fighting]),
		g.opts.Timing.Stats().String(),
		fmt.Sprintf("zoom %.2f  pan %.2f,%.2f", g.camera.Zoom, g.camera.PanX, g.camera.PanY),
	}
	if g.camera.Following() {
		lines = append(lines, fmt.Sprintf("following cat %d (F to stop)", g.camera.Followed))
	}
	if g.opts.World != nil {
		lines = append(lines, fmt.Sprintf("speed %d  +/- speed  [/] cats", g.speed))
	}
	help := "wheel zoom  drag pan  dbl-click follow  H hud  Esc quit"
	if g.opts.Sound != nil {
		help += "  O cue"
	}
	lines = append(lines, help)
	if g.lastErr != nil {
		lines = append(lines, "error: "+g.lastErr.Error())
	}
	return lines
}
