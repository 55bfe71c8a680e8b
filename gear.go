package gear

import (
	"fmt"
	"math"
)

// Standard full-depth tooth proportions and default sampling resolution.
const (
	DefaultAddendumFactor = 1.0
	DefaultDedendumFactor = 1.25
	DefaultSteps          = 20
)

// Gear describes an involute spur gear. Construct with New; the primary
// parameters and derived dimensions are immutable afterwards.
type Gear struct {
	pitch         float64
	teeth         int
	pressureAngle float64 // degrees
	dims          Dimensions
}

// Option configures a Gear during creation.
type Option func(*gearOptions)

type gearOptions struct {
	addendumFactor float64
	dedendumFactor float64
}

// WithAddendumFactor overrides the standard addendum proportion of 1/pitch.
// The addendum is factor/pitch.
func WithAddendumFactor(f float64) Option {
	return func(o *gearOptions) { o.addendumFactor = f }
}

// WithDedendumFactor overrides the standard dedendum proportion of
// 1.25/pitch. The dedendum is factor/pitch.
func WithDedendumFactor(f float64) Option {
	return func(o *gearOptions) { o.dedendumFactor = f }
}

// New creates a gear from its primary parameters: diametral pitch (teeth
// per unit of pitch diameter), tooth count, and pressure angle in degrees.
// All secondary dimensions are derived immediately; out-of-range parameters
// return an error wrapping [ErrInvalidParameter].
func New(pitch float64, teeth int, pressureAngleDeg float64, opts ...Option) (*Gear, error) {
	o := gearOptions{
		addendumFactor: DefaultAddendumFactor,
		dedendumFactor: DefaultDedendumFactor,
	}
	for _, opt := range opts {
		opt(&o)
	}

	dims, err := resolveDimensions(pitch, teeth, pressureAngleDeg, o.addendumFactor, o.dedendumFactor)
	if err != nil {
		return nil, err
	}
	logger().Debug("gear dimensions resolved",
		"teeth", teeth,
		"pitch", pitch,
		"pressure_angle_deg", pressureAngleDeg,
		"pitch_diameter", dims.PitchDiameter,
		"base_radius", dims.BaseRadius,
		"outer_radius", dims.OuterRadius,
		"root_radius", dims.RootRadius)

	return &Gear{
		pitch:         pitch,
		teeth:         teeth,
		pressureAngle: pressureAngleDeg,
		dims:          dims,
	}, nil
}

// Teeth returns the tooth count.
func (g *Gear) Teeth() int { return g.teeth }

// Pitch returns the diametral pitch.
func (g *Gear) Pitch() float64 { return g.pitch }

// PressureAngle returns the pressure angle in degrees.
func (g *Gear) PressureAngle() float64 { return g.pressureAngle }

// Dimensions returns the derived gear dimensions.
func (g *Gear) Dimensions() Dimensions { return g.dims }

// GeometryOption configures a single geometry generation run.
type GeometryOption func(*geometryOptions)

type geometryOptions struct {
	steps int
	kerf  float64
	bore  float64
	units string
}

// WithSteps sets the number of segments used to approximate the involute
// flank. More steps produce a smoother curve; fewer trade quality for
// point count. Must be at least 1.
func WithSteps(n int) GeometryOption {
	return func(o *geometryOptions) { o.steps = n }
}

// WithKerf sets the kerf: the total width of material removed by the
// cutting tool. The generated outline is eroded by half the kerf along its
// local outward normal, modelling the finished part. Negative kerf dilates
// the outline instead.
func WithKerf(k float64) GeometryOption {
	return func(o *geometryOptions) { o.kerf = k }
}

// WithBore sets the diameter of the center bore. Zero omits the bore.
func WithBore(diameter float64) GeometryOption {
	return func(o *geometryOptions) { o.bore = diameter }
}

// WithUnits tags the generated geometry with a unit name, e.g. "in" or
// "mm". Purely informational; all computation uses the caller's units.
func WithUnits(units string) GeometryOption {
	return func(o *geometryOptions) { o.units = units }
}

// Geometry generates the gear outline: one closed counter-clockwise
// polyline for the tooth profile, plus an optional closed polyline for the
// bore. The result is self-contained and immutable; regenerating with
// different options requires another call.
func (g *Gear) Geometry(opts ...GeometryOption) (*Geometry, error) {
	o := geometryOptions{steps: DefaultSteps}
	for _, opt := range opts {
		opt(&o)
	}
	if o.steps < 1 {
		return nil, fmt.Errorf("%w: involute steps must be at least 1, got %d", ErrInvalidParameter, o.steps)
	}
	if o.bore < 0 {
		return nil, fmt.Errorf("%w: bore diameter must not be negative, got %v", ErrInvalidParameter, o.bore)
	}
	if o.bore >= 2*g.dims.RootRadius {
		return nil, fmt.Errorf("%w: bore diameter %v breaches the tooth roots (root diameter %v)",
			ErrInvalidParameter, o.bore, 2*g.dims.RootRadius)
	}

	period, err := toothPeriod(g.dims, o.steps, o.kerf)
	if err != nil {
		return nil, err
	}

	// Replicate the tooth period around the gear. Each copy is a pure
	// rotation of the same immutable base run; appendSnapped merges any
	// coincident points at the copy boundaries.
	outline := Polyline{
		Points: make([]Point, 0, g.teeth*len(period)),
		Closed: true,
	}
	for k := 0; k < g.teeth; k++ {
		m := Rotate(float64(k) * g.dims.AngularPitch)
		for _, pt := range period {
			outline.appendSnapped(m.TransformPoint(pt))
		}
	}

	geom := &Geometry{outline: outline, units: o.units}
	if o.bore > 0 {
		bore := borePolyline(o.bore/2, o.steps)
		geom.bore = &bore
	}

	logger().Debug("gear geometry generated",
		"teeth", g.teeth,
		"steps", o.steps,
		"kerf", o.kerf,
		"bore", o.bore,
		"outline_points", len(outline.Points))
	return geom, nil
}

// borePolyline samples the bore circle as a closed polyline. The bore is
// wound clockwise, opposite to the outer profile, so nonzero fill rules
// treat it as a hole.
func borePolyline(radius float64, steps int) Polyline {
	segs := 4 * steps
	if segs < 32 {
		segs = 32
	}
	pts := make([]Point, 0, segs)
	for i := 0; i < segs; i++ {
		sin, cos := math.Sincos(-2 * math.Pi * float64(i) / float64(segs))
		pts = append(pts, Point{X: radius * cos, Y: radius * sin})
	}
	return Polyline{Points: pts, Closed: true}
}
