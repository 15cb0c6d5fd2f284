package grid

import (
	"fmt"
	"math"
)

// Point is a pixel position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Rect is the geometry of a single unit in container space.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Position returns the top-left corner as a point (x = Left, y = Top).
func (r Rect) Position() Point { return Point{X: r.Left, Y: r.Top} }

// Aligned reports whether every field of r is a multiple of interval.
func (r Rect) Aligned(interval float64) bool {
	if interval <= 0 {
		return true
	}
	for _, v := range [...]float64{r.Top, r.Left, r.Width, r.Height} {
		if math.Mod(v, interval) != 0 {
			return false
		}
	}
	return true
}

func (r Rect) String() string {
	return fmt.Sprintf("%gx%g@(%g, %g)", r.Width, r.Height, r.Left, r.Top)
}

// Snap aligns p to the grid defined by interval. Each axis is handled
// independently by [SnapValue]. A non-positive interval returns p unchanged.
func Snap(p Point, interval float64, roundUp bool) Point {
	return Point{
		X: SnapValue(p.X, interval, roundUp),
		Y: SnapValue(p.Y, interval, roundUp),
	}
}

// SnapValue aligns a single coordinate. Rounding up from an aligned value
// moves to the next grid line.
func SnapValue(v, interval float64, roundUp bool) float64 {
	if interval <= 0 {
		return v
	}
	rem := math.Mod(v, interval)
	if roundUp {
		return v + (interval - rem)
	}
	return v - rem
}

// AtLeast returns v raised to lo if it is smaller.
func AtLeast(v, lo float64) float64 {
	if v < lo {
		return lo
	}
	return v
}

// Clamp limits v to [lo, hi]. The lower bound is applied first, so when
// lo > hi the result is hi.
func Clamp(v, lo, hi float64) float64 {
	v = AtLeast(v, lo)
	if v > hi {
		return hi
	}
	return v
}
