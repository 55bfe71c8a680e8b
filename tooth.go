package gear

import (
	"fmt"
	"math"
)

// toothPeriod builds the open point run covering one angular tooth pitch:
// the rising involute flank from the root circle to the outer circle, the
// tip arc, the mirrored falling flank, and the root arc of the following
// tooth space. The final root-arc endpoint is omitted; it coincides with
// the first flank point of the next copy, so rotational replication yields
// a closed loop with no duplicate coordinates.
//
// The run is laid out with the tooth space centered on the positive x axis
// and the tooth body centered on half the angular pitch, wound
// counter-clockwise. Kerf erodes the profile by half the kerf width along
// the local outward normal.
func toothPeriod(d Dimensions, steps int, kerf float64) ([]Point, error) {
	cp := d.AngularPitch

	flank := sampleInvolute(d.BaseRadius, d.OuterRadius, steps)
	switch {
	case d.RootRadius < d.BaseRadius:
		// Radial stub from the root circle to the involute start.
		flank = append([]Point{{X: d.RootRadius, Y: 0}}, flank...)
	case d.RootRadius > d.BaseRadius:
		// The involute starts inside the root circle; trim to it.
		var err error
		flank, err = snapStartToRadius(flank, d.RootRadius)
		if err != nil {
			return nil, fmt.Errorf("%w: flank does not reach root radius %.6g", ErrDegenerateGeometry, d.RootRadius)
		}
	}
	if len(flank) < 2 {
		return nil, fmt.Errorf("%w: involute flank collapsed between base radius %.6g and outer radius %.6g",
			ErrDegenerateGeometry, d.BaseRadius, d.OuterRadius)
	}

	// Rotate the flank so its pitch-circle crossing sits a quarter pitch
	// below the tooth center line, giving equal tooth and space widths at
	// the pitch circle.
	pitchRoll := rollAngleAt(d.BaseRadius, d.PitchRadius())
	rot := cp/4 - involutePoint(d.BaseRadius, pitchRoll).Angle()
	rotM := Rotate(rot)
	for i := range flank {
		flank[i] = rotM.TransformPoint(flank[i])
	}

	rootCut := d.RootRadius
	tipCut := d.OuterRadius
	if kerf != 0 {
		rootCut -= kerf / 2
		tipCut -= kerf / 2
		if rootCut <= 0 {
			return nil, fmt.Errorf("%w: kerf %.6g cuts below the gear center at root radius %.6g",
				ErrDegenerateGeometry, kerf, d.RootRadius)
		}
		flank = pruneFoldbacks(offsetPolyline(flank, -kerf/2))
		var err error
		if flank, err = snapStartToRadius(flank, rootCut); err != nil {
			return nil, fmt.Errorf("%w: kerf %.6g leaves no flank at root radius %.6g", ErrDegenerateGeometry, kerf, rootCut)
		}
		if flank, err = snapEndToRadius(flank, tipCut); err != nil {
			return nil, fmt.Errorf("%w: kerf %.6g leaves no flank at outer radius %.6g", ErrDegenerateGeometry, kerf, tipCut)
		}
	}

	rootA := flank[0].Angle()
	tipA := flank[len(flank)-1].Angle()
	if rootA <= 0 || rootA >= cp/2 {
		return nil, fmt.Errorf("%w: tooth space inverted at root radius %.6g (flank start angle %.6g rad)",
			ErrDegenerateGeometry, rootCut, rootA)
	}
	if tipA >= cp/2 {
		return nil, fmt.Errorf("%w: tooth tip inverted at outer radius %.6g (flank tip angle %.6g rad)",
			ErrDegenerateGeometry, tipCut, tipA)
	}

	// Mirror the offset flank across the tooth center line. Reflecting the
	// sampled points, rather than sampling a second curve, keeps the two
	// flanks exactly symmetric.
	mirror := Rotate(cp).Multiply(Scale(1, -1))
	falling := make([]Point, len(flank))
	for i, pt := range flank {
		falling[len(flank)-1-i] = mirror.TransformPoint(pt)
	}

	tipSegs := arcSegments(cp-2*tipA, cp, steps)
	rootSegs := arcSegments(2*rootA, cp, steps)

	period := make([]Point, 0, 2*len(flank)+tipSegs+rootSegs)
	period = append(period, flank...)
	period = append(period, arcInterior(tipCut, tipA, cp-tipA, tipSegs)...)
	period = append(period, falling...)
	period = append(period, arcInterior(rootCut, cp-rootA, cp+rootA, rootSegs)...)
	return period, nil
}

// arcInterior samples the interior of a circular arc about the origin from
// angle a0 to a1, excluding both endpoints, with segs segments.
func arcInterior(radius, a0, a1 float64, segs int) []Point {
	pts := make([]Point, 0, segs-1)
	for i := 1; i < segs; i++ {
		sin, cos := math.Sincos(a0 + (a1-a0)*float64(i)/float64(segs))
		pts = append(pts, Point{X: radius * cos, Y: radius * sin})
	}
	return pts
}

// arcSegments picks an arc resolution proportional to the flank resolution:
// a span covering the full angular pitch gets as many segments as the
// involute gets steps.
func arcSegments(span, angularPitch float64, steps int) int {
	n := int(math.Ceil(span / angularPitch * float64(steps)))
	if n < 2 {
		n = 2
	}
	return n
}

// offsetPolyline displaces each point of an open polyline perpendicular to
// the local direction of travel: interior points along the average of the
// two adjoining segment normals, end points along their single segment
// normal. Positive d displaces toward the right-hand side of travel.
func offsetPolyline(pts []Point, d float64) []Point {
	out := make([]Point, len(pts))
	if len(pts) < 2 {
		copy(out, pts)
		return out
	}
	angles := make([]float64, len(pts)-1)
	for i := range angles {
		angles[i] = math.Atan2(pts[i+1].Y-pts[i].Y, pts[i+1].X-pts[i].X)
	}
	normal := func(a float64) Point {
		sin, cos := math.Sincos(a - math.Pi/2)
		return Point{X: cos * d, Y: sin * d}
	}
	out[0] = pts[0].Add(normal(angles[0]))
	for i := 1; i < len(pts)-1; i++ {
		out[i] = pts[i].Add(normal((angles[i-1] + angles[i]) / 2))
	}
	out[len(pts)-1] = pts[len(pts)-1].Add(normal(angles[len(angles)-1]))
	return out
}

// pruneFoldbacks removes points at which the direction of travel reverses.
// Offsetting a polyline past a vertex whose local feature size is smaller
// than the offset distance folds the result back over itself; the folded
// points retrace the path and cross neighbouring segments once the loop is
// assembled. Near-duplicate points are merged along the way.
func pruneFoldbacks(pts []Point) []Point {
	if len(pts) < 3 {
		return pts
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if p.Distance(out[len(out)-1]) < snapTolerance {
			continue
		}
		for len(out) >= 2 {
			last, prev := out[len(out)-1], out[len(out)-2]
			if p.Sub(last).Dot(last.Sub(prev)) >= 0 {
				break
			}
			out = out[:len(out)-1]
		}
		out = append(out, p)
	}
	return out
}

// rayCircleHit returns the distance along the unit direction u from point o
// to the circle of radius r about the origin. far selects the second
// intersection, used when travelling outward from inside the circle.
func rayCircleHit(o, u Point, r float64, far bool) (float64, bool) {
	ou := o.Dot(u)
	disc := ou*ou + r*r - o.Dot(o)
	if disc < 0 {
		return 0, false
	}
	s := math.Sqrt(disc)
	if far {
		return -ou + s, true
	}
	return -ou - s, true
}

// snapEndToRadius trims or extends an open polyline whose distance from the
// origin grows toward its end, so that the final point lies exactly on the
// circle of radius r.
func snapEndToRadius(pts []Point, r float64) ([]Point, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: polyline too short to reach radius %.6g", ErrDegenerateGeometry, r)
	}
	last := pts[len(pts)-1]
	lr := last.Length()
	switch {
	case math.Abs(lr-r) < snapTolerance:
		out := append([]Point(nil), pts...)
		out[len(out)-1] = last.Mul(r / lr)
		return out, nil
	case lr > r:
		// Trim back to the segment crossing the circle.
		for i := len(pts) - 1; i > 0; i-- {
			a := pts[i-1]
			if a.Length() > r {
				continue
			}
			u := pts[i].Sub(a).Normalize()
			l, ok := rayCircleHit(a, u, r, true)
			if !ok {
				break
			}
			return append(append([]Point(nil), pts[:i]...), a.Add(u.Mul(l))), nil
		}
		return nil, fmt.Errorf("%w: polyline lies entirely outside radius %.6g", ErrDegenerateGeometry, r)
	default:
		// Slide the endpoint outward along the final segment line onto the
		// circle. The short sample it replaces lies on the same line.
		prev := pts[len(pts)-2]
		u := last.Sub(prev).Normalize()
		l, ok := rayCircleHit(last, u, r, true)
		if !ok {
			return nil, fmt.Errorf("%w: polyline cannot be extended to radius %.6g", ErrDegenerateGeometry, r)
		}
		out := append([]Point(nil), pts...)
		out[len(out)-1] = last.Add(u.Mul(l))
		return out, nil
	}
}

// snapStartToRadius trims or extends an open polyline whose distance from
// the origin grows away from its start, so that the first point lies
// exactly on the circle of radius r.
func snapStartToRadius(pts []Point, r float64) ([]Point, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("%w: polyline too short to reach radius %.6g", ErrDegenerateGeometry, r)
	}
	first := pts[0]
	fr := first.Length()
	switch {
	case math.Abs(fr-r) < snapTolerance:
		out := append([]Point(nil), pts...)
		out[0] = first.Mul(r / fr)
		return out, nil
	case fr < r:
		// Trim forward to the segment crossing the circle.
		for i := 0; i < len(pts)-1; i++ {
			if pts[i+1].Length() < r {
				continue
			}
			a := pts[i]
			u := pts[i+1].Sub(a).Normalize()
			l, ok := rayCircleHit(a, u, r, true)
			if !ok {
				break
			}
			return append([]Point{a.Add(u.Mul(l))}, pts[i+1:]...), nil
		}
		return nil, fmt.Errorf("%w: polyline lies entirely inside radius %.6g", ErrDegenerateGeometry, r)
	default:
		// Slide the first point backwards along the first segment line onto
		// the circle. Keeping the stale point as well would hang a seam
		// behind the new start.
		u := first.Sub(pts[1]).Normalize()
		l, ok := rayCircleHit(first, u, r, false)
		if !ok {
			return nil, fmt.Errorf("%w: polyline cannot be extended to radius %.6g", ErrDegenerateGeometry, r)
		}
		out := append([]Point(nil), pts...)
		out[0] = first.Add(u.Mul(l))
		return out, nil
	}
}
