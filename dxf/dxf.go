// Package dxf writes gear geometry as a minimal DXF R12 entity stream with
// one closed POLYLINE per loop, in the gear's native coordinate units.
package dxf

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gearcut/gear"
)

// DefaultLayer is the layer name entities are written to unless overridden.
const DefaultLayer = "GEOMETRY"

// Option configures a Write call.
type Option func(*options)

type options struct {
	layer string
}

// WithLayer sets the DXF layer name for all entities.
func WithLayer(name string) Option {
	return func(o *options) { o.layer = name }
}

// Write renders the geometry as a DXF document. Coordinates are emitted in
// the gear's own units with the y axis negated, matching the drawing-space
// convention of CAD consumers.
func Write(w io.Writer, geom *gear.Geometry, opts ...Option) error {
	o := options{layer: DefaultLayer}
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	group(bw, 0, "SECTION")
	group(bw, 2, "ENTITIES")
	for _, loop := range geom.Loops() {
		writePolyline(bw, loop, o.layer)
	}
	group(bw, 0, "ENDSEC")
	group(bw, 0, "EOF")
	return bw.Flush()
}

func writePolyline(w *bufio.Writer, loop gear.Polyline, layer string) {
	group(w, 0, "POLYLINE")
	group(w, 8, layer)
	group(w, 66, "1") // vertices follow
	if loop.Closed {
		group(w, 70, "1")
	} else {
		group(w, 70, "0")
	}
	for _, p := range loop.Points {
		group(w, 0, "VERTEX")
		group(w, 8, layer)
		groupf(w, 10, p.X)
		groupf(w, 20, -p.Y)
	}
	group(w, 0, "SEQEND")
}

// group writes one DXF group code / value pair.
func group(w *bufio.Writer, code int, value string) {
	fmt.Fprintf(w, "%d\n%s\n", code, value)
}

func groupf(w *bufio.Writer, code int, value float64) {
	fmt.Fprintf(w, "%d\n%.9f\n", code, value)
}
