package render

import (
	"math"

	"github.com/iburimskiy/drunkcats/internal/cats"
)

// Camera defaults.
const (
	MinZoom            = 0.05
	MaxZoom            = 200
	DefaultFollowRange = 0.25
	FollowSmoothness   = 0.1
	FollowZoomRatio    = 1.5
)

// Camera maps unit-square positions to surface pixels. The identity camera
// maps (x, y) to (x*width, y*height).
type Camera struct {
	Zoom         float64
	PanX, PanY   float64
	FollowRadius float64
	// Followed is the index of the tracked cat, or -1.
	Followed int
	// NoFollow disables Follow for sources that regenerate every cat per
	// snapshot, where an index names a different cat each time.
	NoFollow bool
}

// NewCamera returns the identity camera.
func NewCamera() Camera {
	return Camera{Zoom: 1, FollowRadius: DefaultFollowRange, Followed: -1}
}

// Following reports whether a cat is being tracked.
func (c *Camera) Following() bool { return c.Followed >= 0 }

// Reset restores the identity view and stops following.
func (c *Camera) Reset() {
	radius, noFollow := c.FollowRadius, c.NoFollow
	*c = NewCamera()
	c.NoFollow = noFollow
	if radius > 0 {
		c.FollowRadius = radius
	}
}

// Project maps a unit-square position to surface pixels.
func (c *Camera) Project(x, y float64, width, height int) (float64, float64) {
	sx := ((x-0.5+c.PanX)*c.Zoom + 0.5) * float64(width)
	sy := ((y-0.5+c.PanY)*c.Zoom + 0.5) * float64(height)
	return sx, sy
}

// Unproject is the inverse of Project.
func (c *Camera) Unproject(sx, sy float64, width, height int) (float64, float64) {
	x := (sx/float64(width)-0.5)/c.Zoom + 0.5 - c.PanX
	y := (sy/float64(height)-0.5)/c.Zoom + 0.5 - c.PanY
	return x, y
}

// ZoomBy applies one wheel notch: up zooms in by 10%, down zooms out by
// 10%.
func (c *Camera) ZoomBy(wheel float64) {
	switch {
	case wheel > 0:
		c.Zoom *= 1.1
	case wheel < 0:
		c.Zoom *= 0.9
	}
	c.Zoom = math.Max(MinZoom, math.Min(MaxZoom, c.Zoom))
}

// PanBy moves the view by a pixel drag.
func (c *Camera) PanBy(dx, dy float64, width, height int) {
	c.PanX += dx / float64(width) / c.Zoom
	c.PanY += dy / float64(height) / c.Zoom
}

// Follow starts tracking the cat nearest to the unit-square position
// (x, y) if it lies within FollowRadius. It reports whether following
// started. It never starts when NoFollow is set.
func (c *Camera) Follow(snap *cats.Snapshot, x, y float64) bool {
	if c.NoFollow {
		return false
	}
	best, bestDist := -1, math.Inf(1)
	for i, cat := range snap.Cats {
		d := math.Hypot(float64(cat.X)-x, float64(cat.Y)-y)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 || bestDist >= c.FollowRadius {
		return false
	}
	c.Followed = best
	return true
}

// Track eases the view toward the followed cat. It stops following when
// the cat no longer exists in snap.
func (c *Camera) Track(snap *cats.Snapshot) {
	if !c.Following() {
		return
	}
	if c.Followed >= snap.Len() {
		c.Reset()
		return
	}
	cat := snap.Cats[c.Followed]
	targetX := 0.5 - float64(cat.X)
	targetY := 0.5 - float64(cat.Y)
	c.PanX = c.PanX*(1-FollowSmoothness) + targetX*FollowSmoothness
	c.PanY = c.PanY*(1-FollowSmoothness) + targetY*FollowSmoothness
	c.Zoom = FollowZoomRatio / c.FollowRadius
}

// Visible reports whether cat i should be drawn: always, unless following,
// in which case only cats within FollowRadius of the followed one are.
func (c *Camera) Visible(snap *cats.Snapshot, i int) bool {
	if !c.Following() || c.Followed >= snap.Len() {
		return true
	}
	f := snap.Cats[c.Followed]
	cat := snap.Cats[i]
	return math.Hypot(float64(cat.X-f.X), float64(cat.Y-f.Y)) <= c.FollowRadius
}
