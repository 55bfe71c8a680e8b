package gear

import "math"

// The involute of a circle of radius r, parametrized by roll angle theta
// (the angle of string unwound from the base circle):
//
//	x = r*(cos(theta) + theta*sin(theta))
//	y = r*(sin(theta) - theta*cos(theta))
//
// The point lies at distance r*sqrt(1+theta^2) from the origin, so the
// roll angle at which the curve reaches a given radius has a closed form.

// involutePoint evaluates the involute of a circle of radius r at roll
// angle theta. theta=0 yields the point (r, 0) on the base circle.
func involutePoint(r, theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{
		X: r * (cos + theta*sin),
		Y: r * (sin - theta*cos),
	}
}

// rollAngleAt returns the roll angle at which the involute of a circle of
// radius r reaches distance d from the origin. Returns 0 when d <= r.
func rollAngleAt(r, d float64) float64 {
	if d <= r {
		return 0
	}
	q := d / r
	return math.Sqrt(q*q - 1)
}

// sampleInvolute approximates the involute curve of the base circle from
// the base circle out to the outer circle with steps evenly spaced roll
// angle increments, returning steps+1 points. The first point lies on the
// base circle at (base, 0).
//
// If outer <= base the curve is degenerate; a single point on the base
// circle is returned. This is a known limitation of simple involute
// generation, not an error.
func sampleInvolute(base, outer float64, steps int) []Point {
	thetaMax := rollAngleAt(base, outer)
	if thetaMax == 0 {
		return []Point{{X: base, Y: 0}}
	}
	if steps < 1 {
		steps = 1
	}
	inc := thetaMax / float64(steps)
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, involutePoint(base, float64(i)*inc))
	}
	return pts
}
