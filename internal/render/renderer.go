package render

import (
	"image/color"

	"github.com/iburimskiy/drunkcats/internal/cats"
)

// Canvas is a surface that can be cleared and filled with circles.
type Canvas interface {
	Size() (width, height int)
	Clear()
	FillCircle(cx, cy, r float64, clr color.RGBA)
}

// Outliner is implemented by canvases that can stroke a circle; the
// followed cat is outlined when available.
type Outliner interface {
	StrokeCircle(cx, cy, r, width float64, clr color.RGBA)
}

var highlightColor = color.RGBA{R: 0x20, G: 0x20, B: 0x40, A: 0xff}

// Renderer draws snapshots with a fixed circle radius.
type Renderer struct {
	Radius  float64
	Palette Palette
}

// Draw clears c and draws every visible cat of snap. It returns the number
// of circles filled.
func (r *Renderer) Draw(c Canvas, snap *cats.Snapshot, cam *Camera) int {
	c.Clear()
	if snap == nil {
		return 0
	}
	if cam == nil {
		identity := NewCamera()
		cam = &identity
	}
	w, h := c.Size()
	fw, fh := float64(w), float64(h)
	drawn := 0
	for i, cat := range snap.Cats {
		if !cam.Visible(snap, i) {
			continue
		}
		x, y := cam.Project(float64(cat.X), float64(cat.Y), w, h)
		if x < -r.Radius || y < -r.Radius || x > fw+r.Radius || y > fh+r.Radius {
			continue
		}
		c.FillCircle(x, y, r.Radius, r.Palette.Color(cat.State))
		drawn++
	}
	if o, ok := c.(Outliner); ok && cam.Following() && cam.Followed < snap.Len() {
		f := snap.Cats[cam.Followed]
		x, y := cam.Project(float64(f.X), float64(f.Y), w, h)
		o.StrokeCircle(x, y, r.Radius+2, 1.5, highlightColor)
	}
	return drawn
}
