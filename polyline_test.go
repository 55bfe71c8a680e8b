package gear

import (
	"math"
	"testing"
)

func unitSquare(ccw bool) Polyline {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	p := Polyline{Points: pts, Closed: true}
	if !ccw {
		p = p.Reverse()
	}
	return p
}

func TestPolylineArea(t *testing.T) {
	if got := unitSquare(true).Area(); math.Abs(got-1) > 1e-12 {
		t.Errorf("CCW unit square Area() = %v, want 1", got)
	}
	if got := unitSquare(false).Area(); math.Abs(got+1) > 1e-12 {
		t.Errorf("CW unit square Area() = %v, want -1", got)
	}
	if got := (Polyline{Points: []Point{Pt(0, 0), Pt(1, 1)}}).Area(); got != 0 {
		t.Errorf("two-point Area() = %v, want 0", got)
	}
}

func TestPolylineBounds(t *testing.T) {
	p := Polyline{Points: []Point{Pt(-1, 2), Pt(3, -4), Pt(0, 0)}}
	b := p.Bounds()
	if b.Min != Pt(-1, -4) || b.Max != Pt(3, 2) {
		t.Errorf("Bounds() = %+v, want Min(-1,-4) Max(3,2)", b)
	}
	if b.Width() != 4 || b.Height() != 6 {
		t.Errorf("Width/Height = %v/%v, want 4/6", b.Width(), b.Height())
	}
}

func TestPolylineTransformIsPure(t *testing.T) {
	orig := Polyline{Points: []Point{Pt(1, 0), Pt(0, 1)}}
	moved := orig.Transform(Translate(5, 5))
	if orig.Points[0] != Pt(1, 0) {
		t.Errorf("Transform mutated receiver: %v", orig.Points[0])
	}
	if moved.Points[0] != Pt(6, 5) {
		t.Errorf("Transform result = %v, want (6, 5)", moved.Points[0])
	}
}

func TestAppendSnapped(t *testing.T) {
	var p Polyline
	p.appendSnapped(Pt(0, 0), Pt(1, 0))
	// A point within snap tolerance of the current end is merged.
	p.appendSnapped(Pt(1, snapTolerance/2), Pt(2, 0))
	if len(p.Points) != 3 {
		t.Fatalf("appendSnapped kept %d points, want 3", len(p.Points))
	}
	if p.Points[2] != Pt(2, 0) {
		t.Errorf("last point = %v, want (2, 0)", p.Points[2])
	}
}

func TestPolylineClone(t *testing.T) {
	orig := Polyline{Points: []Point{Pt(1, 2)}, Closed: true}
	cl := orig.Clone()
	cl.Points[0] = Pt(9, 9)
	if orig.Points[0] != Pt(1, 2) {
		t.Errorf("Clone shares backing array with original")
	}
}
