package render

// Default button geometry.
const (
	ButtonWidth  = 80
	ButtonHeight = 32
)

// Button is the inert "ok" overlay centered on the surface. It tracks
// hover and press so it can be drawn like a real control; clicking it
// changes nothing else.
type Button struct {
	Label   string
	W, H    float64
	Hovered bool
	Pressed bool
}

// NewButton returns the default "ok" button.
func NewButton() Button {
	return Button{Label: "ok", W: ButtonWidth, H: ButtonHeight}
}

// Rect returns the button bounds on a width×height surface.
func (b *Button) Rect(width, height int) (x, y, w, h float64) {
	x = (float64(width) - b.W) / 2
	y = (float64(height) - b.H) / 2
	return x, y, b.W, b.H
}

// Contains reports whether (px, py) falls on the button.
func (b *Button) Contains(px, py float64, width, height int) bool {
	x, y, w, h := b.Rect(width, height)
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// Update feeds one frame of pointer state into the button and reports
// whether a full click (press and release over the button) completed.
func (b *Button) Update(px, py float64, justPressed, justReleased bool, width, height int) bool {
	b.Hovered = b.Contains(px, py, width, height)
	if b.Hovered && justPressed {
		b.Pressed = true
	}
	clicked := false
	if justReleased {
		clicked = b.Pressed && b.Hovered
		b.Pressed = false
	}
	return clicked
}
