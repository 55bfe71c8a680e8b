// Package svg writes gear geometry as an SVG document with one path
// element per closed loop.
package svg

import (
	"fmt"
	"io"

	"github.com/gearcut/gear"
)

// Style controls how the gear loops are drawn.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64 // in geometry units; scaled with the drawing
}

// DefaultStyle returns a hairline black outline with no fill, suitable for
// cutting toolchains that follow strokes.
func DefaultStyle() Style {
	return Style{
		Fill:        "none",
		Stroke:      "black",
		StrokeWidth: 0.002,
	}
}

// Option configures a Write call.
type Option func(*options)

type options struct {
	scale        float64
	marginFactor float64
	style        Style
}

// WithScale multiplies all output coordinates by factor. The canonical
// geometry is never modified.
func WithScale(factor float64) Option {
	return func(o *options) { o.scale = factor }
}

// WithMarginFactor sets the margin around the geometry as a ratio of its
// dimensions. Default 0.2.
func WithMarginFactor(f float64) Option {
	return func(o *options) { o.marginFactor = f }
}

// WithStyle sets the drawing style for all loops.
func WithStyle(s Style) Option {
	return func(o *options) { o.style = s }
}

// Write renders the geometry as an SVG document. Each closed loop becomes
// one path element; coordinates are offset so the whole drawing lies in
// the positive quadrant with a margin around it.
func Write(w io.Writer, geom *gear.Geometry, opts ...Option) error {
	o := options{
		scale:        1,
		marginFactor: 0.2,
		style:        DefaultStyle(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.scale <= 0 {
		return fmt.Errorf("svg: scale must be positive, got %v", o.scale)
	}

	width, height, offX, offY, err := canvas(geom, o)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w,
		"<?xml version=\"1.0\" standalone=\"no\"?>\n"+
			"<svg version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n",
		width, height, width, height); err != nil {
		return err
	}
	for _, loop := range geom.Loops() {
		if err := writePath(w, loop, o, offX, offY); err != nil {
			return err
		}
	}
	_, err = fmt.Fprint(w, "</svg>\n")
	return err
}

func canvas(geom *gear.Geometry, o options) (width, height, offX, offY float64, err error) {
	width, height, offX, offY = geom.BoundsWithMargin(o.marginFactor, o.scale)
	if width <= 0 || height <= 0 {
		return 0, 0, 0, 0, fmt.Errorf("svg: geometry has empty bounds")
	}
	return width, height, offX, offY, nil
}

func writePath(w io.Writer, loop gear.Polyline, o options, offX, offY float64) error {
	if len(loop.Points) == 0 {
		return nil
	}
	p := loop.Points[0]
	if _, err := fmt.Fprintf(w, "  <path d=\"M%g %g", p.X*o.scale+offX, p.Y*o.scale+offY); err != nil {
		return err
	}
	for _, p := range loop.Points[1:] {
		if _, err := fmt.Fprintf(w, " L %g %g", p.X*o.scale+offX, p.Y*o.scale+offY); err != nil {
			return err
		}
	}
	if loop.Closed {
		if _, err := fmt.Fprint(w, " Z"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%g\"/>\n",
		o.style.Fill, o.style.Stroke, o.style.StrokeWidth*o.scale)
	return err
}
