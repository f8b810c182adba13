package tray

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle with its top-left corner at X, Y.
type Rect struct {
	X, Y, W, H float64
}

func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Center() Point {
	return Point{r.X + r.W/2, r.Y + r.H/2}
}
