// Package headless renders snapshots with the gg software rasterizer, with
// no window or GPU.
package headless

import (
	"image/color"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"
)

// Canvas adapts a gg.Context to render.Canvas.
type Canvas struct {
	dc         *gg.Context
	background gg.RGBA
	// err keeps the first fill failure; gg reports errors per Fill.
	err error
}

// NewCanvas allocates a width×height software surface.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height), background: gg.White}
}

func (c *Canvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

func (c *Canvas) Clear() {
	c.err = nil
	c.dc.ClearWithColor(c.background)
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.RGBA) {
	c.dc.SetColor(clr)
	c.dc.DrawCircle(cx, cy, r)
	if err := c.dc.Fill(); err != nil && c.err == nil {
		c.err = errors.Wrap(err, "fill circle")
	}
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, clr color.RGBA) {
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(width)
	c.dc.DrawCircle(cx, cy, r)
	if err := c.dc.Stroke(); err != nil && c.err == nil {
		c.err = errors.Wrap(err, "stroke circle")
	}
}

// Err returns the first drawing error since the last Clear.
func (c *Canvas) Err() error { return c.err }

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) color.Color { return c.dc.Image().At(x, y) }

// SavePNG writes the current frame to path.
func (c *Canvas) SavePNG(path string) error {
	return errors.Wrapf(c.dc.SavePNG(path), "save frame to %s", path)
}

// Close releases the rasterizer.
func (c *Canvas) Close() error { return c.dc.Close() }
