package gear

// Geometry is the final artifact of a generation run: one closed
// counter-clockwise polyline for the outer tooth profile and an optional
// closed polyline for the bore, both centered on the origin in the gear's
// own length units. Immutable once built; exporters consume it read-only.
type Geometry struct {
	outline Polyline
	bore    *Polyline
	units   string
}

// Outline returns a copy of the closed outer tooth profile.
func (g *Geometry) Outline() Polyline {
	return g.outline.Clone()
}

// Bore returns a copy of the bore polyline and true, or a zero polyline
// and false when the geometry has no bore.
func (g *Geometry) Bore() (Polyline, bool) {
	if g.bore == nil {
		return Polyline{}, false
	}
	return g.bore.Clone(), true
}

// Units returns the informational unit tag, which may be empty.
func (g *Geometry) Units() string { return g.units }

// Loops returns copies of all closed loops in drawing order: the outline
// first, then the bore if present.
func (g *Geometry) Loops() []Polyline {
	loops := []Polyline{g.outline.Clone()}
	if g.bore != nil {
		loops = append(loops, g.bore.Clone())
	}
	return loops
}

// Bounds returns the bounding rectangle of all loops.
func (g *Geometry) Bounds() Rect {
	b := g.outline.Bounds()
	if g.bore != nil {
		b = b.Union(g.bore.Bounds())
	}
	return b
}

// BoundsWithMargin returns the drawing size and the offset that places the
// geometry inside it, with a margin specified as a ratio of the geometry's
// dimensions, all multiplied by scale. Exporters use this to size their
// canvas.
func (g *Geometry) BoundsWithMargin(marginFactor, scale float64) (width, height, offsetX, offsetY float64) {
	b := g.Bounds()
	marginX := b.Width() * marginFactor / 2
	marginY := b.Height() * marginFactor / 2
	width = (b.Width() + 2*marginX) * scale
	height = (b.Height() + 2*marginY) * scale
	offsetX = (-b.Min.X + marginX) * scale
	offsetY = (-b.Min.Y + marginY) * scale
	return width, height, offsetX, offsetY
}

// Scale returns a new geometry with every coordinate multiplied by factor.
// The receiver is not modified; the canonical unscaled geometry stays
// intact for other exports.
func (g *Geometry) Scale(factor float64) *Geometry {
	m := Scale(factor, factor)
	out := &Geometry{
		outline: g.outline.Transform(m),
		units:   g.units,
	}
	if g.bore != nil {
		bore := g.bore.Transform(m)
		out.bore = &bore
	}
	return out
}
