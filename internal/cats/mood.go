package cats

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Point is a cat position in surface pixels.
type Point struct{ X, Y float64 }

// ScalePoints maps unit-square cats onto a width×height surface with the
// given device scale.
func ScalePoints(cs []Cat, width, height int, scale float64) []Point {
	sx := float64(width) * scale
	sy := float64(height) * scale
	out := make([]Point, len(cs))
	for i, c := range cs {
		out[i] = Point{X: float64(c.X) * sx, Y: float64(c.Y) * sy}
	}
	return out
}

// minChunk keeps tiny inputs on one goroutine.
const minChunk = 2048

// Classify assigns a mood to every point. A point is Fighting when another
// point lies within fight, otherwise Angry when another lies within hiss,
// otherwise Calm. Both bounds are inclusive.
func Classify(ctx context.Context, pts []Point, fight, hiss float64) ([]State, error) {
	states := make([]State, len(pts))
	if len(pts) < 2 {
		return states, nil
	}
	reach := math.Max(fight, hiss)
	bins := newBinGrid(pts, reach)
	f2, h2 := fight*fight, hiss*hiss

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(pts) + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(pts); lo += chunk {
		hi := min(lo+chunk, len(pts))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)&1023 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				states[i] = bins.mood(pts, i, f2, h2)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return states, nil
}

// binGrid is a counting-sorted uniform grid: the indices of the points in
// cell c are idx[start[c]:start[c+1]].
type binGrid struct {
	minX, minY float64
	cell       float64
	cols, rows int
	start      []int32
	idx        []int32
}

// maxCellsPerPoint bounds grid memory when points are sparse relative to
// the radius.
const maxCellsPerPoint = 4

func newBinGrid(pts []Point, reach float64) *binGrid {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	cell := reach
	if cell <= 0 {
		cell = 1
	}
	// The 3×3 scan stays exact for any cell >= reach, so growing the cell
	// only trades memory for comparisons.
	limit := float64(maxCellsPerPoint*len(pts) + 16)
	for (math.Floor((maxX-minX)/cell)+1)*(math.Floor((maxY-minY)/cell)+1) > limit {
		cell *= 2
	}
	b := &binGrid{
		minX: minX,
		minY: minY,
		cell: cell,
		cols: int((maxX-minX)/cell) + 1,
		rows: int((maxY-minY)/cell) + 1,
	}
	b.start = make([]int32, b.cols*b.rows+1)
	cells := make([]int32, len(pts))
	for i, p := range pts {
		c := int32(b.cellOf(p))
		cells[i] = c
		b.start[c+1]++
	}
	for c := 1; c < len(b.start); c++ {
		b.start[c] += b.start[c-1]
	}
	fill := make([]int32, b.cols*b.rows)
	copy(fill, b.start[:len(fill)])
	b.idx = make([]int32, len(pts))
	for i, c := range cells {
		b.idx[fill[c]] = int32(i)
		fill[c]++
	}
	return b
}

func (b *binGrid) coords(p Point) (int, int) {
	cx := int((p.X - b.minX) / b.cell)
	cy := int((p.Y - b.minY) / b.cell)
	return min(cx, b.cols-1), min(cy, b.rows-1)
}

func (b *binGrid) cellOf(p Point) int {
	cx, cy := b.coords(p)
	return cy*b.cols + cx
}

func (b *binGrid) mood(pts []Point, i int, f2, h2 float64) State {
	p := pts[i]
	cx, cy := b.coords(p)
	mood := Calm
	for y := max(cy-1, 0); y <= min(cy+1, b.rows-1); y++ {
		for x := max(cx-1, 0); x <= min(cx+1, b.cols-1); x++ {
			c := y*b.cols + x
			for _, j := range b.idx[b.start[c]:b.start[c+1]] {
				if int(j) == i {
					continue
				}
				dx := pts[j].X - p.X
				dy := pts[j].Y - p.Y
				d2 := dx*dx + dy*dy
				if d2 <= f2 {
					return Fighting
				}
				if d2 <= h2 {
					mood = Angry
				}
			}
		}
	}
	return mood
}
