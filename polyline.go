package gear

import "math"

// snapTolerance is the distance below which two polyline points are
// considered the same coordinate and merged during composition.
const snapTolerance = 1e-9

// Rect represents an axis-aligned rectangle.
// Min holds the minimum coordinates, Max the maximum.
type Rect struct {
	Min, Max Point
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Polyline is an ordered sequence of points. A closed polyline implicitly
// connects the last point back to the first.
type Polyline struct {
	Points []Point
	Closed bool
}

// Clone returns a deep copy of the polyline.
func (p Polyline) Clone() Polyline {
	pts := make([]Point, len(p.Points))
	copy(pts, p.Points)
	return Polyline{Points: pts, Closed: p.Closed}
}

// Transform returns a new polyline with every point transformed by m.
// The receiver is not modified.
func (p Polyline) Transform(m Matrix) Polyline {
	pts := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = m.TransformPoint(pt)
	}
	return Polyline{Points: pts, Closed: p.Closed}
}

// Reverse returns a new polyline with the point order reversed.
func (p Polyline) Reverse() Polyline {
	pts := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		pts[len(pts)-1-i] = pt
	}
	return Polyline{Points: pts, Closed: p.Closed}
}

// Bounds returns the bounding rectangle of the polyline.
// An empty polyline returns the zero Rect.
func (p Polyline) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	b := Rect{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		b.Min.X = math.Min(b.Min.X, pt.X)
		b.Min.Y = math.Min(b.Min.Y, pt.Y)
		b.Max.X = math.Max(b.Max.X, pt.X)
		b.Max.Y = math.Max(b.Max.Y, pt.Y)
	}
	return b
}

// Area returns the signed area enclosed by the polyline using the shoelace
// formula, treating the polyline as closed. Counter-clockwise winding
// yields a positive area.
func (p Polyline) Area() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += p.Points[i].Cross(p.Points[(i+1)%n])
	}
	return sum / 2
}

// appendSnapped appends points to the polyline, merging any point that
// falls within snapTolerance of the current last point. Composition of
// tooth segments uses this to keep shared arc endpoints as a single
// coordinate.
func (p *Polyline) appendSnapped(pts ...Point) {
	for _, pt := range pts {
		if n := len(p.Points); n > 0 && p.Points[n-1].Distance(pt) < snapTolerance {
			continue
		}
		p.Points = append(p.Points, pt)
	}
}
