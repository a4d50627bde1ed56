package game

import (
	"fmt"
	"time"
)

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// nearPoint reports whether two cursor positions are within slop pixels.
func nearPoint(x0, y0, x1, y1, slop int) bool {
	dx, dy := x1-x0, y1-y0
	return dx*dx+dy*dy <= slop*slop
}
